package av1txfm

import (
	"fmt"
	"runtime"
)

// Backend selects the 1-D kernel implementation behind an Engine.
type Backend int

const (
	// BackendInteger is the bit-exact fixed-point backend (default).
	BackendInteger Backend = iota

	// BackendFloat evaluates the kernels in float64 with the integer
	// backend's gains and rounding points. Its output is close to, but not
	// bit-exact with, BackendInteger and must not feed a conforming
	// bitstream.
	BackendFloat
)

func (b Backend) String() string {
	switch b {
	case BackendInteger:
		return "integer"
	case BackendFloat:
		return "float64"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// Options configures an Engine.
type Options struct {
	// Backend selects the kernel implementation (default BackendInteger).
	Backend Backend

	// DCTOnly restricts the engine to DCT_DCT. Other transform types are
	// rejected with ErrDCTOnly. Encoders built without the extended
	// transform set run in this mode.
	DCTOnly bool

	// BitDepth is the sample bit depth of the residual source (8, 10 or 12,
	// default 8). It only matters when CheckInput is set.
	BitDepth int

	// CheckInput rejects residual blocks holding a sample whose magnitude
	// is 2^BitDepth or more. Without it such input is transformed anyway and
	// intermediates may wrap silently.
	CheckInput bool

	// Workers bounds the goroutines used by ForwardBatch
	// (default runtime.GOMAXPROCS(0)).
	Workers int
}

// DefaultOptions returns the default engine configuration.
func DefaultOptions() *Options {
	return &Options{
		Backend:  BackendInteger,
		BitDepth: 8,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// validateOptions checks o for out-of-range values.
func validateOptions(o *Options) error {
	if o.Backend != BackendInteger && o.Backend != BackendFloat {
		return fmt.Errorf("%w: %d", ErrInvalidBackend, int(o.Backend))
	}
	switch o.BitDepth {
	case 8, 10, 12:
	default:
		return fmt.Errorf("av1txfm: invalid BitDepth %d (must be 8, 10 or 12)", o.BitDepth)
	}
	if o.Workers < 0 {
		return fmt.Errorf("av1txfm: invalid Workers %d (must be >= 0)", o.Workers)
	}
	return nil
}

// withDefaults returns a copy of o with zero fields replaced by defaults.
func withDefaults(o *Options) Options {
	if o == nil {
		return *DefaultOptions()
	}
	c := *o
	if c.BitDepth == 0 {
		c.BitDepth = 8
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}
