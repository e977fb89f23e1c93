package av1txfm

import (
	"errors"

	"github.com/deepteams/av1txfm/internal/dsp"
)

// TxType selects the vertical and horizontal 1-D transforms of a block.
// Names list the vertical transform first: ADSTDCT runs the ADST down the
// columns and the DCT along the rows.
type TxType = dsp.TxType

// Transform types.
const (
	DCTDCT           = dsp.DCTDCT
	ADSTDCT          = dsp.ADSTDCT
	DCTADST          = dsp.DCTADST
	ADSTADST         = dsp.ADSTADST
	FlipADSTDCT      = dsp.FlipADSTDCT
	DCTFlipADST      = dsp.DCTFlipADST
	FlipADSTFlipADST = dsp.FlipADSTFlipADST
	ADSTFlipADST     = dsp.ADSTFlipADST
	FlipADSTADST     = dsp.FlipADSTADST
	IDTX             = dsp.IDTX
	VDCT             = dsp.VDCT
	HDCT             = dsp.HDCT
	VADST            = dsp.VADST
	HADST            = dsp.HADST
	VFlipADST        = dsp.VFlipADST
	HFlipADST        = dsp.HFlipADST

	// NumTxTypes is the number of transform types.
	NumTxTypes = dsp.NumTxTypes
)

// TxSize is a transform block shape.
type TxSize = dsp.TxSize

// Transform sizes, named width x height.
const (
	TX4x4   = dsp.TX4x4
	TX8x8   = dsp.TX8x8
	TX16x16 = dsp.TX16x16
	TX32x32 = dsp.TX32x32
	TX64x64 = dsp.TX64x64
	TX4x8   = dsp.TX4x8
	TX8x4   = dsp.TX8x4
	TX8x16  = dsp.TX8x16
	TX16x8  = dsp.TX16x8
	TX16x32 = dsp.TX16x32
	TX32x16 = dsp.TX32x16
	TX32x64 = dsp.TX32x64
	TX64x32 = dsp.TX64x32
	TX4x16  = dsp.TX4x16
	TX16x4  = dsp.TX16x4
	TX8x32  = dsp.TX8x32
	TX32x8  = dsp.TX32x8
	TX16x64 = dsp.TX16x64
	TX64x16 = dsp.TX64x16

	// NumTxSizes is the number of transform sizes.
	NumTxSizes = dsp.NumTxSizes
)

// UnitQuantFactor is the scale of Walsh-Hadamard coefficients.
const UnitQuantFactor = dsp.UnitQuantFactor

// SizeOf returns the transform size for a width x height block.
func SizeOf(w, h int) (TxSize, bool) { return dsp.SizeOf(w, h) }

// Gain returns the overall gain of size s relative to an orthonormal 2-D
// transform. A constant block of value v yields a DC coefficient close to
// v * Gain(s) * sqrt(w*h).
func Gain(s TxSize) int { return dsp.Gain(s) }

// Common errors.
var (
	ErrInvalidTxType  = errors.New("av1txfm: invalid transform type")
	ErrInvalidTxSize  = errors.New("av1txfm: invalid transform size")
	ErrInvalidStride  = errors.New("av1txfm: stride smaller than block width")
	ErrShortSource    = errors.New("av1txfm: source buffer too small for block")
	ErrShortOutput    = errors.New("av1txfm: output buffer too small for block")
	ErrSampleRange    = errors.New("av1txfm: residual sample outside bit-depth range")
	ErrDCTOnly        = errors.New("av1txfm: engine restricted to DCT_DCT")
	ErrNotIdentity    = errors.New("av1txfm: identity shift requires IDTX")
	ErrInvalidBackend = errors.New("av1txfm: invalid backend")
)

var defaultEngine *Engine

func init() {
	e, err := NewEngine(nil)
	if err != nil {
		panic(err)
	}
	defaultEngine = e
}

// Forward computes the forward transform of the size.Width() x
// size.Height() residual block at src (row stride stride) and writes
// size.CoeffCount() coefficients, row-major at stride size.CoeffWidth(),
// to out. It uses the default integer engine.
func Forward(src []int16, stride int, out []int32, size TxSize, t TxType) error {
	return defaultEngine.Forward(src, stride, out, size, t)
}

// ForwardWHT computes the lossless 4x4 Walsh-Hadamard transform of the block
// at src into out (16 coefficients, scaled by UnitQuantFactor).
func ForwardWHT(src []int16, stride int, out []int32) error {
	return defaultEngine.ForwardWHT(src, stride, out)
}

// InverseWHT reconstructs the 4x4 residual block from ForwardWHT output.
func InverseWHT(in []int32, dst []int16, stride int) error {
	return defaultEngine.InverseWHT(in, dst, stride)
}
