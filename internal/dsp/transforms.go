package dsp

import (
	"fmt"

	"github.com/deepteams/av1txfm/internal/pool"
)

// 2-D separable forward transforms.
//
// Every block shape has its own pass order and its own input, mid and
// output scaling. These are tuned per shape to the internal gain of the
// kernels involved and cannot be derived from the block dimensions, so
// they are kept as a table of shape records.

// inputScale is applied to each residual sample before the first pass.
type inputScale uint8

const (
	inScale1      inputScale = iota // x
	inScale4                        // x * 4
	inScale16Bias                   // x * 16, plus 1 on a nonzero top-left sample
	inScaleSqrt2                    // round(x * sqrt(2))
	inScale4Sqrt2                   // round(x * 4 * sqrt(2))
)

// roundMode is a rounding division applied after a pass.
type roundMode uint8

const (
	roundNone      roundMode = iota
	roundQuarter             // (x + 1) >> 2
	roundHalfTrunc           // (x + (x < 0)) >> 1, truncates toward zero
	roundQuarterDn           // (x + 1 + (x < 0)) >> 2
	roundQuarterUp           // (x + 1 + (x > 0)) >> 2
	roundSigned2             // divide by 4, ties away from zero
	roundSigned4             // divide by 16, ties away from zero
)

func (m roundMode) apply(x int32) int32 {
	switch m {
	case roundQuarter:
		return (x + 1) >> 2
	case roundHalfTrunc:
		return (x + b2i(x < 0)) >> 1
	case roundQuarterDn:
		return (x + 1 + b2i(x < 0)) >> 2
	case roundQuarterUp:
		return (x + 1 + b2i(x > 0)) >> 2
	case roundSigned2:
		return roundPow2Signed(x, 2)
	case roundSigned4:
		return roundPow2Signed(x, 4)
	}
	return x
}

// shapeConfig describes the fixed 2-D pipeline of one block shape.
type shapeConfig struct {
	rowsFirst bool // run the horizontal pass before the vertical one
	in        inputScale
	mid       roundMode
	out       roundMode
	colDCT64  bool // a 64-point DCT column pass runs at column precision
	gain      int  // overall gain as a multiple of an orthonormal transform
}

var shapeConfigs = [NumTxSizes]shapeConfig{
	TX4x4:   {in: inScale16Bias, out: roundQuarter, gain: 8},
	TX8x8:   {in: inScale4, out: roundHalfTrunc, gain: 8},
	TX16x16: {in: inScale4, mid: roundQuarterDn, gain: 8},
	TX32x32: {in: inScale4, mid: roundSigned4, gain: 4},
	TX64x64: {in: inScale1, mid: roundQuarterUp, out: roundQuarterDn, colDCT64: true, gain: 2},
	TX4x8:   {rowsFirst: true, in: inScale4Sqrt2, out: roundHalfTrunc, gain: 8},
	TX8x4:   {in: inScale4Sqrt2, out: roundHalfTrunc, gain: 8},
	TX8x16:  {rowsFirst: true, in: inScale4Sqrt2, mid: roundSigned2, gain: 8},
	TX16x8:  {in: inScale4Sqrt2, mid: roundSigned2, gain: 8},
	TX16x32: {rowsFirst: true, in: inScale4Sqrt2, mid: roundSigned4, gain: 4},
	TX32x16: {in: inScale4Sqrt2, mid: roundSigned4, gain: 4},
	TX32x64: {rowsFirst: true, in: inScaleSqrt2, mid: roundSigned2, out: roundSigned2, gain: 2},
	TX64x32: {in: inScaleSqrt2, mid: roundSigned2, out: roundSigned2, gain: 2},
	TX4x16:  {rowsFirst: true, in: inScale4, out: roundHalfTrunc, gain: 8},
	TX16x4:  {in: inScale4, out: roundHalfTrunc, gain: 8},
	TX8x32:  {rowsFirst: true, in: inScale4, out: roundSigned2, gain: 8},
	TX32x8:  {in: inScale4, out: roundSigned2, gain: 8},
	TX16x64: {rowsFirst: true, in: inScale1, out: roundSigned2, colDCT64: true, gain: 4},
	TX64x16: {in: inScale1, out: roundSigned2, gain: 4},
}

// Gain returns the overall gain of transforms of size s as a multiple of
// an orthonormal 2-D transform. Dequantization divides it back out.
func Gain(s TxSize) int { return shapeConfigs[s].gain }

func scaleInput(m inputScale, x int16) int32 {
	switch m {
	case inScale4:
		return int32(x) * 4
	case inScale16Bias:
		return int32(x) * 16
	case inScaleSqrt2:
		return int32(dctShift(int64(x) * sqrt2))
	case inScale4Sqrt2:
		return int32(dctShift(int64(x) * 4 * sqrt2))
	}
	return int32(x)
}

// transform2D is a (column kernel, row kernel) pair.
type transform2D struct {
	cols Kernel
	rows Kernel
}

// Pipeline runs 2-D forward transforms on one kernel backend. The dispatch
// table is built once and read-only afterwards, so a Pipeline is safe for
// concurrent use.
type Pipeline struct {
	kernels *KernelSet
	table   [NumTxSizes][NumTxTypes]transform2D
}

// NewPipeline builds the per-shape dispatch tables for ks.
func NewPipeline(ks *KernelSet) (*Pipeline, error) {
	if err := ks.validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{kernels: ks}
	for s := TxSize(0); s < NumTxSizes; s++ {
		cfg := &shapeConfigs[s]
		for t := TxType(0); t < NumTxTypes; t++ {
			vert, horiz := t.Axes()
			p.table[s][t] = transform2D{
				cols: ks.Kernel(vert, s.Height(), cfg.colDCT64),
				rows: ks.Kernel(horiz, s.Width(), false),
			}
		}
	}
	return p, nil
}

// Name returns the name of the backend driving p.
func (p *Pipeline) Name() string { return p.kernels.Name }

// Forward transforms the residual block at src (row stride stride) and
// writes s.CoeffCount() packed coefficients to out.
func (p *Pipeline) Forward(src []int16, stride int, out []int32, s TxSize, t TxType) {
	n := s.Width() * s.Height()
	if n == s.CoeffCount() {
		p.forwardFull(src, stride, out[:n], s, t)
		return
	}
	full := pool.GetInt32(n)
	p.forwardFull(src, stride, full, s, t)
	copy(out[:s.CoeffCount()], full)
	pool.PutInt32(full)
}

// forwardFull writes the complete width x height coefficient buffer,
// including the always-zero region of 64-length shapes, to out.
func (p *Pipeline) forwardFull(src []int16, stride int, out []int32, s TxSize, t TxType) {
	if s >= NumTxSizes {
		panic(fmt.Sprintf("dsp: invalid transform size %d", uint8(s)))
	}
	fc := FlipClassOf(t)
	cfg := &shapeConfigs[s]
	ht := p.table[s][t]
	w, h := s.Width(), s.Height()
	_ = out[w*h-1]

	blk := pool.GetInt16(w * h)
	CopyFlipped(blk, src, stride, h, w, fc)
	mid := pool.GetInt32(w * h)

	var tmpIn, tmpOut [64]int32
	if cfg.rowsFirst {
		// Rows, stored transposed so each column is contiguous.
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				tmpIn[c] = scaleInput(cfg.in, blk[r*w+c])
			}
			ht.rows(tmpIn[:w], tmpOut[:w])
			for c := 0; c < w; c++ {
				mid[c*h+r] = cfg.mid.apply(tmpOut[c])
			}
		}
		// Columns.
		for c := 0; c < w; c++ {
			ht.cols(mid[c*h:c*h+h], tmpOut[:h])
			for r := 0; r < h; r++ {
				out[r*w+c] = cfg.out.apply(tmpOut[r])
			}
		}
	} else {
		// Columns.
		for c := 0; c < w; c++ {
			for r := 0; r < h; r++ {
				tmpIn[r] = scaleInput(cfg.in, blk[r*w+c])
			}
			if cfg.in == inScale16Bias && c == 0 && tmpIn[0] != 0 {
				tmpIn[0]++
			}
			ht.cols(tmpIn[:h], tmpOut[:h])
			for r := 0; r < h; r++ {
				mid[r*w+c] = cfg.mid.apply(tmpOut[r])
			}
		}
		// Rows.
		for r := 0; r < h; r++ {
			ht.rows(mid[r*w:r*w+w], tmpOut[:w])
			for c := 0; c < w; c++ {
				out[r*w+c] = cfg.out.apply(tmpOut[c])
			}
		}
	}

	pool.PutInt32(mid)
	pool.PutInt16(blk)
	zeroAndRepack(out, w, h)
}

// zeroAndRepack clears the frequencies a 64-length dimension never codes
// and packs the surviving (at most 32x32) region at row stride min(w, 32).
// Every position past the packed region is zero on return.
func zeroAndRepack(out []int32, w, h int) {
	if w < 64 && h < 64 {
		return
	}
	cw, ch := min(w, 32), min(h, 32)
	if w == 64 {
		for r := 1; r < ch; r++ {
			copy(out[r*cw:r*cw+cw], out[r*w:r*w+cw])
		}
	}
	clear(out[cw*ch : w*h])
}
