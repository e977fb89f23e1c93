// Package coefdump reads and writes coefficient dump files.
//
// A dump records residual blocks together with the forward transform
// coefficients some implementation produced for them. Dumps are used to
// compare encoders, backends and releases: Verify recomputes every record
// with an av1txfm.Engine and reports the first coefficient that differs.
//
// A dump is an 8-byte header ("TXFD", version, compression method)
// followed by a stream of chunks, compressed with zstd (default) or zlib, or
// stored as is. Each chunk is a little-endian FourCC, a 32-bit payload size
// and the payload, padded to an even length:
//
//	INFO  free-form producer description
//	BLCK  size, type, 2 reserved bytes, width*height int16 residuals,
//	      CoeffCount int32 coefficients
//	LWHT  16 int16 residuals, 16 int32 Walsh-Hadamard coefficients
//	DONE  uint64 record count
package coefdump
