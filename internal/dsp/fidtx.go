package dsp

// Identity kernels. Each scales its input so the identity pipelines carry
// the same gain as the DCT and ADST pipelines of the same length.

func fidtx4(in, out []int32) {
	_ = in[3]
	_ = out[3]
	for i := 0; i < 4; i++ {
		out[i] = int32(dctShift(int64(in[i]) * sqrt2))
	}
}

func fidtx8(in, out []int32) {
	_ = in[7]
	_ = out[7]
	for i := 0; i < 8; i++ {
		out[i] = in[i] * 2
	}
}

func fidtx16(in, out []int32) {
	_ = in[15]
	_ = out[15]
	for i := 0; i < 16; i++ {
		out[i] = int32(dctShift(int64(in[i]) * 2 * sqrt2))
	}
}

func fidtx32(in, out []int32) {
	_ = in[31]
	_ = out[31]
	for i := 0; i < 32; i++ {
		out[i] = in[i] * 4
	}
}

func fidtx64(in, out []int32) {
	_ = in[63]
	_ = out[63]
	for i := 0; i < 64; i++ {
		out[i] = int32(dctShift(int64(in[i]) * 4 * sqrt2))
	}
}

// Half-right kernels stand in for the ADST at lengths 32 and 64. The first
// half of the input is scaled into the upper half of the output and the
// sqrt(2)-scaled second half is run through the half-length DCT.

// fhalfright32 has an overall gain of 4 times orthonormal.
func fhalfright32(in, out []int32) {
	_ = in[31]
	_ = out[31]
	var half [16]int32
	for i := 0; i < 16; i++ {
		out[16+i] = in[i] * 4
		half[i] = int32(dctShift(int64(in[16+i]) * sqrt2))
	}
	fdct16(half[:], out[:16])
}

// fhalfright64 has an overall gain of 4*sqrt(2) times orthonormal, the same
// as the 64-point DCT.
func fhalfright64(in, out []int32) {
	_ = in[63]
	_ = out[63]
	var half [32]int32
	for i := 0; i < 32; i++ {
		out[32+i] = int32(dctShift(int64(in[i]) * 4 * sqrt2))
		half[i] = int32(dctShift(int64(in[32+i]) * sqrt2))
	}
	fdct32(half[:], out[:32])
}
