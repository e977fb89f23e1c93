package dsp

// Transform function variables for dispatch.
// These are set to the integer reference implementations by Init() and can
// be overridden by platform-specific implementations that match them
// bit-for-bit.
var (
	// FwdTxfm2D writes size.CoeffCount() packed coefficients of the block
	// at src (row stride stride) to out.
	FwdTxfm2D func(src []int16, stride int, out []int32, size TxSize, t TxType)

	// FwdWHT4x4 and InvWHT4x4 are the lossless 4x4 Walsh-Hadamard pair.
	FwdWHT4x4 func(src []int16, stride int, out []int32)
	InvWHT4x4 func(in []int32, dst []int16, stride int)

	// FwdIdentity scales an IDTX block by a size-dependent left shift.
	FwdIdentity func(src []int16, stride int, out []int32, w, h int, t TxType)
)

// Reference is the pipeline over IntegerKernels. It is the only backend
// whose output is bit-exact with a conforming decoder.
var Reference *Pipeline

// Init initialises the constant tables and all function pointers to their
// pure-Go implementations. It runs from the package init and is idempotent.
func Init() {
	initCospiTables()

	p, err := NewPipeline(&IntegerKernels)
	if err != nil {
		panic(err)
	}
	Reference = p

	FwdTxfm2D = Reference.Forward
	FwdWHT4x4 = fwht4x4
	InvWHT4x4 = iwht4x4
	FwdIdentity = fwdIdentity
}

func init() {
	Init()
}
