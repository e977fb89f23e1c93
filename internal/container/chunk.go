package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Common errors.
var (
	ErrInvalidSignature = errors.New("txfd: invalid file signature")
	ErrVersion          = errors.New("txfd: unsupported version")
	ErrCompression      = errors.New("txfd: unknown compression method")
	ErrTruncated        = errors.New("txfd: truncated data")
	ErrTooLarge         = errors.New("txfd: chunk too large")
)

// Chunk is a single chunk with its FourCC tag and payload.
type Chunk struct {
	FourCC  uint32
	Payload []byte
}

// FileHeader is the uncompressed header that starts every dump.
type FileHeader struct {
	Version     uint8
	Compression uint8
}

// ParseFileHeader validates and parses the 8-byte file header from data.
func ParseFileHeader(data []byte) (FileHeader, error) {
	if len(data) < FileHeaderSize {
		return FileHeader{}, ErrTruncated
	}
	if binary.LittleEndian.Uint32(data[0:4]) != FourCCTXFD {
		return FileHeader{}, ErrInvalidSignature
	}
	h := FileHeader{Version: data[4], Compression: data[5]}
	if h.Version != Version {
		return FileHeader{}, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	if h.Compression >= numCompressions {
		return FileHeader{}, fmt.Errorf("%w: %d", ErrCompression, h.Compression)
	}
	return h, nil
}

// AppendFileHeader appends the encoded header h to buf.
func AppendFileHeader(buf []byte, h FileHeader) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, FourCCTXFD)
	return append(buf, h.Version, h.Compression, 0, 0)
}

// PaddedSize returns the payload size padded to an even number of bytes.
func PaddedSize(size uint32) uint32 {
	return size + (size & 1)
}

// FourCCString returns a human-readable string for a FourCC value.
func FourCCString(fourcc uint32) string {
	b := [4]byte{
		byte(fourcc),
		byte(fourcc >> 8),
		byte(fourcc >> 16),
		byte(fourcc >> 24),
	}
	return string(b[:])
}

// ReadChunk reads a complete chunk (header + padded payload) from r. A
// clean end of input before the header returns io.EOF.
func ReadChunk(r io.Reader) (Chunk, error) {
	var hdr [ChunkHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if err == io.EOF {
			return Chunk{}, io.EOF
		}
		return Chunk{}, fmt.Errorf("txfd: reading chunk header: %w", ErrTruncated)
	}

	fourcc := binary.LittleEndian.Uint32(hdr[0:4])
	payloadSize := binary.LittleEndian.Uint32(hdr[4:8])
	if payloadSize > MaxChunkPayload {
		return Chunk{}, fmt.Errorf("%w: %s payload %d bytes", ErrTooLarge, FourCCString(fourcc), payloadSize)
	}

	payload := make([]byte, PaddedSize(payloadSize))
	if _, err := io.ReadFull(r, payload); err != nil {
		return Chunk{}, fmt.Errorf("txfd: reading %s payload: %w", FourCCString(fourcc), ErrTruncated)
	}
	return Chunk{FourCC: fourcc, Payload: payload[:payloadSize]}, nil
}

// WriteChunk writes a chunk header, payload and padding byte to w.
func WriteChunk(w io.Writer, fourcc uint32, payload []byte) error {
	if len(payload) > MaxChunkPayload {
		return fmt.Errorf("%w: %s payload %d bytes", ErrTooLarge, FourCCString(fourcc), len(payload))
	}
	var hdr [ChunkHeaderSize + 1]byte
	binary.LittleEndian.PutUint32(hdr[0:4], fourcc)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(payload)))
	if _, err := w.Write(hdr[:ChunkHeaderSize]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	if len(payload)&1 != 0 {
		if _, err := w.Write(hdr[ChunkHeaderSize:]); err != nil {
			return err
		}
	}
	return nil
}
