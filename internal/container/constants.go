// Package container defines the chunk framing of coefficient dump files:
// FourCC values, header layout and size limits.
package container

// FourCC creates a FourCC value from four bytes (little-endian).
func FourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// Dump FourCC values.
var (
	FourCCTXFD = FourCC('T', 'X', 'F', 'D') // file signature
	FourCCINFO = FourCC('I', 'N', 'F', 'O') // producer description
	FourCCBLCK = FourCC('B', 'L', 'C', 'K') // 2-D transform block
	FourCCLWHT = FourCC('L', 'W', 'H', 'T') // lossless Walsh-Hadamard block
	FourCCDONE = FourCC('D', 'O', 'N', 'E') // end of stream, carries the record count
)

// Current format version.
const Version = 1

// Compression methods for the chunk stream following the file header.
const (
	CompressionNone = 0
	CompressionZstd = 1
	CompressionZlib = 2
	numCompressions = 3
)

// Structure sizes.
const (
	TagSize         = 4 // Size of a chunk tag (e.g. "BLCK")
	ChunkSizeBytes  = 4 // Size needed to store chunk's size
	ChunkHeaderSize = 8 // Size of a chunk header
	FileHeaderSize  = 8 // "TXFD", version, compression, reserved
	BlockHeaderSize = 4 // size, type, reserved
	DoneChunkSize   = 8 // record count
)

// Limits.
const (
	// MaxChunkPayload bounds a single chunk. The largest record, a 64x64
	// block, needs 4 + 64*64*2 + 32*32*4 bytes.
	MaxChunkPayload = 1 << 16
)
