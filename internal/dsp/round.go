package dsp

// Fixed-point rounding helpers shared by the kernels and the 2-D pipeline.

// b2i returns 1 if cond is true, 0 otherwise.
func b2i(cond bool) int32 {
	if cond {
		return 1
	}
	return 0
}

// dctRound scales a product of 14-bit constants back to integer precision,
// rounding half up, and truncates to the 32-bit working width.
func dctRound(x int64) int32 {
	return int32((x + 1<<(dctConstBits-1)) >> dctConstBits)
}

// roundShift rounds v to nearest (half up) after a right shift by bit.
func roundShift(v int32, bit uint) int32 {
	if bit == 0 {
		return v
	}
	return int32((int64(v) + int64(1)<<(bit-1)) >> bit)
}

// halfBtf computes one output of a butterfly rotation at cosine precision bit.
// The product sum is truncated to 32 bits before rounding; debug builds
// panic when that truncation loses information.
func halfBtf(w0, in0, w1, in1 int32, bit uint) int32 {
	sum := int64(w0)*int64(in0) + int64(w1)*int64(in1)
	checkWrap(sum)
	return roundShift(int32(sum), bit)
}

// roundPow2 divides by 2^n, rounding half up.
func roundPow2(v int32, n uint) int32 {
	return (v + (int32(1)<<n)>>1) >> n
}

// roundPow2Signed divides by 2^n, rounding half away from zero.
func roundPow2Signed(v int32, n uint) int32 {
	if v < 0 {
		return -roundPow2(-v, n)
	}
	return roundPow2(v, n)
}
