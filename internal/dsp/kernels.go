package dsp

import "fmt"

// Kernel is a 1-D forward transform. in and out hold exactly the kernel's
// length and must not overlap. Kernels are pure and safe for concurrent use.
type Kernel func(in, out []int32)

// KernelSet is a complete family of 1-D forward kernels: one backend.
// Each table is indexed by length: 4, 8, 16, 32, 64.
type KernelSet struct {
	Name     string
	DCT      [5]Kernel // the 64-point entry runs at row precision
	DCT64Col Kernel    // 64-point DCT at column precision
	ADST     [5]Kernel // lengths 32 and 64 hold the half-right substitutes
	Identity [5]Kernel
}

// IntegerKernels is the bit-exact fixed-point reference backend.
var IntegerKernels = KernelSet{
	Name:     "integer",
	DCT:      [5]Kernel{fdct4, fdct8, fdct16, fdct32, fdct64RowKernel},
	DCT64Col: fdct64ColKernel,
	ADST:     [5]Kernel{fadst4, fadst8, fadst16, fhalfright32, fhalfright64},
	Identity: [5]Kernel{fidtx4, fidtx8, fidtx16, fidtx32, fidtx64},
}

// lengthIndex maps a supported kernel length to its table index.
func lengthIndex(n int) int {
	switch n {
	case 4:
		return 0
	case 8:
		return 1
	case 16:
		return 2
	case 32:
		return 3
	case 64:
		return 4
	}
	panic(fmt.Sprintf("dsp: unsupported kernel length %d", n))
}

// Kernel returns the kernel of family f and length n. col64 selects the
// column-precision 64-point DCT.
func (ks *KernelSet) Kernel(f Family, n int, col64 bool) Kernel {
	i := lengthIndex(n)
	switch f {
	case FamilyDCT:
		if n == 64 && col64 {
			return ks.DCT64Col
		}
		return ks.DCT[i]
	case FamilyADST:
		return ks.ADST[i]
	case FamilyIdentity:
		return ks.Identity[i]
	}
	panic(fmt.Sprintf("dsp: invalid transform family %d", uint8(f)))
}

// validate reports the first missing kernel, if any.
func (ks *KernelSet) validate() error {
	for i := 0; i < 5; i++ {
		if ks.DCT[i] == nil || ks.ADST[i] == nil || ks.Identity[i] == nil {
			return fmt.Errorf("dsp: kernel set %q: missing kernel for length %d", ks.Name, 4<<i)
		}
	}
	if ks.DCT64Col == nil {
		return fmt.Errorf("dsp: kernel set %q: missing 64-point column DCT", ks.Name)
	}
	return nil
}
