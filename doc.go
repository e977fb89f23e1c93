// Package av1txfm provides a pure Go implementation of the AV1 forward block
// transforms used by a video encoder.
//
// A forward transform turns a block of prediction residuals into frequency
// coefficients for the quantizer. The package implements every block shape
// from 4x4 to 64x64, square and rectangular, and all 16 transform types
// built from the DCT, the ADST, its flipped variant and the identity
// transform. The integer backend is bit-exact: it produces exactly the
// coefficients a conforming AV1 decoder's inverse transform expects.
//
// The package supports:
//   - 19 block shapes, including 64-length shapes whose high frequencies
//     are zeroed and repacked into a 32-wide coefficient block
//   - 16 transform types per shape, with flipped ADST realized by mirroring
//     the input block
//   - The reversible 4x4 Walsh-Hadamard transform used by lossless blocks,
//     with its inverse
//   - Parallel batch transforms over many independent blocks
//   - An experimental float64 backend for accuracy studies
//
// Basic usage:
//
//	coeffs := make([]int32, av1txfm.TX8x8.CoeffCount())
//	err := av1txfm.Forward(residual, stride, coeffs, av1txfm.TX8x8, av1txfm.DCTDCT)
//
// Coefficients are scaled by a per-shape gain, reported by Gain, that
// the dequantizer divides back out.
//
// Build with -tags txfmdebug to compile in the intermediate range checks.
// Without the tag an out-of-budget intermediate wraps silently, exactly as
// in the reference encoder.
package av1txfm
