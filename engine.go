package av1txfm

import (
	"fmt"
	"sync"

	"github.com/deepteams/av1txfm/internal/dsp"
)

var (
	floatOnce     sync.Once
	floatPipeline *dsp.Pipeline
	floatErr      error
)

func pipelineFor(b Backend) (*dsp.Pipeline, error) {
	switch b {
	case BackendInteger:
		return dsp.Reference, nil
	case BackendFloat:
		floatOnce.Do(func() {
			floatPipeline, floatErr = dsp.NewPipeline(&dsp.FloatKernels)
		})
		return floatPipeline, floatErr
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidBackend, int(b))
}

// Engine runs forward transforms with a fixed configuration. An Engine
// holds no per-call state and is safe for concurrent use.
type Engine struct {
	opts     Options
	pipeline *dsp.Pipeline
}

// NewEngine returns an Engine configured by opts. A nil opts selects
// DefaultOptions.
func NewEngine(opts *Options) (*Engine, error) {
	o := withDefaults(opts)
	if err := validateOptions(&o); err != nil {
		return nil, err
	}
	p, err := pipelineFor(o.Backend)
	if err != nil {
		return nil, err
	}
	return &Engine{opts: o, pipeline: p}, nil
}

// Options returns a copy of the engine configuration.
func (e *Engine) Options() Options { return e.opts }

// Backend returns the name of the kernel backend.
func (e *Engine) Backend() string { return e.pipeline.Name() }

// Forward computes the forward transform of the size.Width() x
// size.Height() residual block at src (row stride stride) and writes
// size.CoeffCount() coefficients to out, row-major at stride
// size.CoeffWidth(). Shapes with a 64-sample dimension keep only their 32
// lowest frequencies in that dimension. src is never modified.
func (e *Engine) Forward(src []int16, stride int, out []int32, size TxSize, t TxType) error {
	if err := e.checkBlock(src, stride, size, t); err != nil {
		return err
	}
	if len(out) < size.CoeffCount() {
		return fmt.Errorf("%w: have %d, need %d", ErrShortOutput, len(out), size.CoeffCount())
	}
	if e.pipeline == dsp.Reference {
		dsp.FwdTxfm2D(src, stride, out, size, t)
	} else {
		e.pipeline.Forward(src, stride, out, size, t)
	}
	return nil
}

// ForwardWHT computes the reversible 4x4 Walsh-Hadamard transform used by
// lossless blocks. The 16 coefficients written to out are scaled by
// UnitQuantFactor. The transform is the same on every backend.
func (e *Engine) ForwardWHT(src []int16, stride int, out []int32) error {
	if err := e.checkBlock(src, stride, TX4x4, DCTDCT); err != nil {
		return err
	}
	if len(out) < 16 {
		return fmt.Errorf("%w: have %d, need 16", ErrShortOutput, len(out))
	}
	dsp.FwdWHT4x4(src, stride, out)
	return nil
}

// InverseWHT reconstructs the 4x4 residual block from ForwardWHT
// coefficients and writes it to dst (row stride stride). For any input
// block, InverseWHT(ForwardWHT(block)) returns the block exactly.
func (e *Engine) InverseWHT(in []int32, dst []int16, stride int) error {
	if len(in) < 16 {
		return fmt.Errorf("%w: have %d coefficients, need 16", ErrShortSource, len(in))
	}
	if stride < 4 {
		return fmt.Errorf("%w: stride %d, width 4", ErrInvalidStride, stride)
	}
	if need := 3*stride + 4; len(dst) < need {
		return fmt.Errorf("%w: have %d, need %d", ErrShortOutput, len(dst), need)
	}
	dsp.InvWHT4x4(in, dst, stride)
	return nil
}

// ForwardIdentity applies the shift-only identity transform to an IDTX
// block: each sample is shifted left by 3, less one above 256 samples and
// one more above 1024. It
// writes all size.Width()*size.Height() values to out, row-major, with no
// high-frequency zeroing. Types other than IDTX return ErrNotIdentity, and
// an engine restricted to DCT_DCT returns ErrDCTOnly.
func (e *Engine) ForwardIdentity(src []int16, stride int, out []int32, size TxSize, t TxType) error {
	if t != IDTX {
		if t >= NumTxTypes {
			return fmt.Errorf("%w: %d", ErrInvalidTxType, uint8(t))
		}
		return fmt.Errorf("%w: got %v", ErrNotIdentity, t)
	}
	if e.opts.DCTOnly {
		return fmt.Errorf("%w: got %v", ErrDCTOnly, t)
	}
	if size >= NumTxSizes {
		return fmt.Errorf("%w: %d", ErrInvalidTxSize, uint8(size))
	}
	w, h := size.Width(), size.Height()
	if err := e.checkSource(src, stride, w, h); err != nil {
		return err
	}
	if len(out) < w*h {
		return fmt.Errorf("%w: have %d, need %d", ErrShortOutput, len(out), w*h)
	}
	dsp.FwdIdentity(src, stride, out, w, h, t)
	return nil
}

// checkBlock validates the transform selection and then the source
// geometry of a size block.
func (e *Engine) checkBlock(src []int16, stride int, size TxSize, t TxType) error {
	if size >= NumTxSizes {
		return fmt.Errorf("%w: %d", ErrInvalidTxSize, uint8(size))
	}
	if t >= NumTxTypes {
		return fmt.Errorf("%w: %d", ErrInvalidTxType, uint8(t))
	}
	if e.opts.DCTOnly && t != DCTDCT {
		return fmt.Errorf("%w: got %v", ErrDCTOnly, t)
	}
	return e.checkSource(src, stride, size.Width(), size.Height())
}

func (e *Engine) checkSource(src []int16, stride, w, h int) error {
	if stride < w {
		return fmt.Errorf("%w: stride %d, width %d", ErrInvalidStride, stride, w)
	}
	if need := (h-1)*stride + w; len(src) < need {
		return fmt.Errorf("%w: have %d, need %d", ErrShortSource, len(src), need)
	}
	if !e.opts.CheckInput {
		return nil
	}
	limit := int32(1) << e.opts.BitDepth
	for r := 0; r < h; r++ {
		for c, v := range src[r*stride : r*stride+w] {
			if x := int32(v); x >= limit || x <= -limit {
				return fmt.Errorf("%w: %d at row %d col %d (%d-bit)", ErrSampleRange, v, r, c, e.opts.BitDepth)
			}
		}
	}
	return nil
}
