package dsp

import (
	"math"
	"sync"
)

// FloatKernels is an experimental backend that evaluates every kernel as a
// float64 matrix product with the same gains as the integer kernels and
// rounds once per pass. It is not bit-exact with IntegerKernels and must
// not be used to produce a conforming bitstream.
var FloatKernels = KernelSet{
	Name:     "float64",
	DCT:      [5]Kernel{floatDCT(4), floatDCT(8), floatDCT(16), floatDCT(32), floatDCT(64)},
	DCT64Col: floatDCT(64),
	ADST:     [5]Kernel{floatADST(4), floatADST(8), floatADST(16), floatHalfRight(32), floatHalfRight(64)},
	Identity: [5]Kernel{floatScale(4, math.Sqrt2), floatScale(8, 2), floatScale(16, 2*math.Sqrt2), floatScale(32, 4), floatScale(64, 4*math.Sqrt2)},
}

// basis is an n x n transform matrix, m[k*n+j] weighting input j into output k.
type basis struct {
	n int
	m []float64
}

var (
	basisOnce sync.Once
	dctBasis  [5]basis
	adstBasis [3]basis
)

func initFloatBases() {
	for i := range dctBasis {
		n := 4 << i
		b := basis{n: n, m: make([]float64, n*n)}
		for k := 0; k < n; k++ {
			ck := 1.0
			if k == 0 {
				ck = 1 / math.Sqrt2
			}
			for j := 0; j < n; j++ {
				b.m[k*n+j] = ck * math.Cos(math.Pi*float64((2*j+1)*k)/float64(2*n))
			}
		}
		dctBasis[i] = b
	}
	for i := range adstBasis {
		n := 4 << i
		b := basis{n: n, m: make([]float64, n*n)}
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				if n == 4 {
					b.m[k*n+j] = 2 * math.Sqrt2 / 3 * math.Sin(math.Pi*float64((j+1)*(2*k+1))/9)
				} else {
					b.m[k*n+j] = math.Sin(math.Pi * float64((2*j+1)*(2*k+1)) / float64(4*n))
				}
			}
		}
		adstBasis[i] = b
	}
}

func (b *basis) apply(in []float64, out []float64) {
	n := b.n
	for k := 0; k < n; k++ {
		row := b.m[k*n : k*n+n]
		var s float64
		for j, w := range row {
			s += w * in[j]
		}
		out[k] = s
	}
}

func roundToInt32(v float64) int32 {
	return int32(math.Round(v))
}

func floatDCT(n int) Kernel {
	i := lengthIndex(n)
	return func(in, out []int32) {
		basisOnce.Do(initFloatBases)
		var x, y [64]float64
		for j := 0; j < n; j++ {
			x[j] = float64(in[j])
		}
		dctBasis[i].apply(x[:n], y[:n])
		for k := 0; k < n; k++ {
			out[k] = roundToInt32(y[k])
		}
	}
}

func floatADST(n int) Kernel {
	i := lengthIndex(n)
	return func(in, out []int32) {
		basisOnce.Do(initFloatBases)
		var x, y [16]float64
		for j := 0; j < n; j++ {
			x[j] = float64(in[j])
		}
		adstBasis[i].apply(x[:n], y[:n])
		for k := 0; k < n; k++ {
			out[k] = roundToInt32(y[k])
		}
	}
}

// floatHalfRight mirrors the half-right construction: the first half of
// the input is scaled into the upper outputs and the second half feeds a
// sqrt(2)-scaled half-length DCT.
func floatHalfRight(n int) Kernel {
	half := n / 2
	i := lengthIndex(half)
	upper := 4.0
	if n == 64 {
		upper = 4 * math.Sqrt2
	}
	return func(in, out []int32) {
		basisOnce.Do(initFloatBases)
		var x, y [32]float64
		for j := 0; j < half; j++ {
			out[half+j] = roundToInt32(float64(in[j]) * upper)
			x[j] = float64(in[half+j]) * math.Sqrt2
		}
		dctBasis[i].apply(x[:half], y[:half])
		for k := 0; k < half; k++ {
			out[k] = roundToInt32(y[k])
		}
	}
}

func floatScale(n int, scale float64) Kernel {
	return func(in, out []int32) {
		for j := 0; j < n; j++ {
			out[j] = roundToInt32(float64(in[j]) * scale)
		}
	}
}
