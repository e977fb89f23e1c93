package dsp

// Forward ADST kernels. The 4-point kernel is a sine transform over the
// sinpi constants; the 8 and 16 point kernels are DST-IV style networks
// over the cospi constants. Intermediates stay in 64 bits until the final
// store, which truncates to the 32-bit coefficient width.

// dctShift rounds a 14-bit fixed-point product back to integer precision
// without truncating the result.
func dctShift(x int64) int64 {
	return (x + 1<<(dctConstBits-1)) >> dctConstBits
}

// fadst4 computes the 4-point forward ADST.
// An all-zero input short-circuits to an all-zero output.
func fadst4(in, out []int32) {
	_ = in[3]
	_ = out[3]
	x0 := int64(in[0])
	x1 := int64(in[1])
	x2 := int64(in[2])
	x3 := int64(in[3])

	if x0|x1|x2|x3 == 0 {
		out[0], out[1], out[2], out[3] = 0, 0, 0, 0
		return
	}

	s0 := sinpi1_9 * x0
	s1 := sinpi4_9 * x0
	s2 := sinpi2_9 * x1
	s3 := sinpi1_9 * x1
	s4 := sinpi3_9 * x2
	s5 := sinpi4_9 * x3
	s6 := sinpi2_9 * x3
	s7 := x0 + x1 - x3

	x0 = s0 + s2 + s5
	x1 = sinpi3_9 * s7
	x2 = s1 - s3 + s6
	x3 = s4

	out[0] = int32(dctShift(x0 + x3))
	out[1] = int32(dctShift(x1))
	out[2] = int32(dctShift(x2 - x3))
	out[3] = int32(dctShift(x2 - x0 + x3))
}

// fadst8 computes the 8-point forward ADST.
func fadst8(in, out []int32) {
	_ = in[7]
	_ = out[7]
	x0 := int64(in[7])
	x1 := int64(in[0])
	x2 := int64(in[5])
	x3 := int64(in[2])
	x4 := int64(in[3])
	x5 := int64(in[4])
	x6 := int64(in[1])
	x7 := int64(in[6])

	// Stage 1.
	s0 := cospi2*x0 + cospi30*x1
	s1 := cospi30*x0 - cospi2*x1
	s2 := cospi10*x2 + cospi22*x3
	s3 := cospi22*x2 - cospi10*x3
	s4 := cospi18*x4 + cospi14*x5
	s5 := cospi14*x4 - cospi18*x5
	s6 := cospi26*x6 + cospi6*x7
	s7 := cospi6*x6 - cospi26*x7

	x0 = s0 + s4
	x1 = s1 + s5
	x2 = s2 + s6
	x3 = s3 + s7
	x4 = dctShift(s0 - s4)
	x5 = dctShift(s1 - s5)
	x6 = dctShift(s2 - s6)
	x7 = dctShift(s3 - s7)

	// Stage 2.
	s0, s1, s2, s3 = x0, x1, x2, x3
	s4 = cospi8*x4 + cospi24*x5
	s5 = cospi24*x4 - cospi8*x5
	s6 = -cospi24*x6 + cospi8*x7
	s7 = cospi8*x6 + cospi24*x7

	x0 = dctShift(s0 + s2)
	x1 = dctShift(s1 + s3)
	x2 = dctShift(s0 - s2)
	x3 = dctShift(s1 - s3)
	x4 = dctShift(s4 + s6)
	x5 = dctShift(s5 + s7)
	x6 = dctShift(s4 - s6)
	x7 = dctShift(s5 - s7)

	// Stage 3.
	x2, x3 = dctShift(cospi16*(x2+x3)), dctShift(cospi16*(x2-x3))
	x6, x7 = dctShift(cospi16*(x6+x7)), dctShift(cospi16*(x6-x7))

	out[0] = int32(x0)
	out[1] = int32(-x4)
	out[2] = int32(x6)
	out[3] = int32(-x2)
	out[4] = int32(x3)
	out[5] = int32(-x7)
	out[6] = int32(x5)
	out[7] = int32(-x1)
}

// fadst16 computes the 16-point forward ADST.
func fadst16(in, out []int32) {
	_ = in[15]
	_ = out[15]
	x0 := int64(in[15])
	x1 := int64(in[0])
	x2 := int64(in[13])
	x3 := int64(in[2])
	x4 := int64(in[11])
	x5 := int64(in[4])
	x6 := int64(in[9])
	x7 := int64(in[6])
	x8 := int64(in[7])
	x9 := int64(in[8])
	x10 := int64(in[5])
	x11 := int64(in[10])
	x12 := int64(in[3])
	x13 := int64(in[12])
	x14 := int64(in[1])
	x15 := int64(in[14])

	// Stage 1.
	s0 := x0*cospi1 + x1*cospi31
	s1 := x0*cospi31 - x1*cospi1
	s2 := x2*cospi5 + x3*cospi27
	s3 := x2*cospi27 - x3*cospi5
	s4 := x4*cospi9 + x5*cospi23
	s5 := x4*cospi23 - x5*cospi9
	s6 := x6*cospi13 + x7*cospi19
	s7 := x6*cospi19 - x7*cospi13
	s8 := x8*cospi17 + x9*cospi15
	s9 := x8*cospi15 - x9*cospi17
	s10 := x10*cospi21 + x11*cospi11
	s11 := x10*cospi11 - x11*cospi21
	s12 := x12*cospi25 + x13*cospi7
	s13 := x12*cospi7 - x13*cospi25
	s14 := x14*cospi29 + x15*cospi3
	s15 := x14*cospi3 - x15*cospi29

	x0 = s0 + s8
	x1 = s1 + s9
	x2 = s2 + s10
	x3 = s3 + s11
	x4 = s4 + s12
	x5 = s5 + s13
	x6 = s6 + s14
	x7 = s7 + s15
	x8 = dctShift(s0 - s8)
	x9 = dctShift(s1 - s9)
	x10 = dctShift(s2 - s10)
	x11 = dctShift(s3 - s11)
	x12 = dctShift(s4 - s12)
	x13 = dctShift(s5 - s13)
	x14 = dctShift(s6 - s14)
	x15 = dctShift(s7 - s15)

	// Stage 2.
	s0, s1, s2, s3 = x0, x1, x2, x3
	s4, s5, s6, s7 = x4, x5, x6, x7
	s8 = x8*cospi4 + x9*cospi28
	s9 = x8*cospi28 - x9*cospi4
	s10 = x10*cospi20 + x11*cospi12
	s11 = x10*cospi12 - x11*cospi20
	s12 = -x12*cospi28 + x13*cospi4
	s13 = x12*cospi4 + x13*cospi28
	s14 = -x14*cospi12 + x15*cospi20
	s15 = x14*cospi20 + x15*cospi12

	x0 = s0 + s4
	x1 = s1 + s5
	x2 = s2 + s6
	x3 = s3 + s7
	x4 = dctShift(s0 - s4)
	x5 = dctShift(s1 - s5)
	x6 = dctShift(s2 - s6)
	x7 = dctShift(s3 - s7)
	x8 = s8 + s12
	x9 = s9 + s13
	x10 = s10 + s14
	x11 = s11 + s15
	x12 = dctShift(s8 - s12)
	x13 = dctShift(s9 - s13)
	x14 = dctShift(s10 - s14)
	x15 = dctShift(s11 - s15)

	// Stage 3.
	s0, s1, s2, s3 = x0, x1, x2, x3
	s4 = x4*cospi8 + x5*cospi24
	s5 = x4*cospi24 - x5*cospi8
	s6 = -x6*cospi24 + x7*cospi8
	s7 = x6*cospi8 + x7*cospi24
	s8, s9, s10, s11 = x8, x9, x10, x11
	s12 = x12*cospi8 + x13*cospi24
	s13 = x12*cospi24 - x13*cospi8
	s14 = -x14*cospi24 + x15*cospi8
	s15 = x14*cospi8 + x15*cospi24

	x0 = dctShift(s0 + s2)
	x1 = dctShift(s1 + s3)
	x2 = dctShift(s0 - s2)
	x3 = dctShift(s1 - s3)
	x4 = dctShift(s4 + s6)
	x5 = dctShift(s5 + s7)
	x6 = dctShift(s4 - s6)
	x7 = dctShift(s5 - s7)
	x8 = dctShift(s8 + s10)
	x9 = dctShift(s9 + s11)
	x10 = dctShift(s8 - s10)
	x11 = dctShift(s9 - s11)
	x12 = dctShift(s12 + s14)
	x13 = dctShift(s13 + s15)
	x14 = dctShift(s12 - s14)
	x15 = dctShift(s13 - s15)

	// Stage 4.
	x2, x3 = dctShift(-cospi16*(x2+x3)), dctShift(cospi16*(x2-x3))
	x6, x7 = dctShift(cospi16*(x6+x7)), dctShift(cospi16*(-x6+x7))
	x10, x11 = dctShift(cospi16*(x10+x11)), dctShift(cospi16*(-x10+x11))
	x14, x15 = dctShift(-cospi16*(x14+x15)), dctShift(cospi16*(x14-x15))

	out[0] = int32(x0)
	out[1] = int32(-x8)
	out[2] = int32(x12)
	out[3] = int32(-x4)
	out[4] = int32(x6)
	out[5] = int32(x14)
	out[6] = int32(x10)
	out[7] = int32(x2)
	out[8] = int32(x3)
	out[9] = int32(x11)
	out[10] = int32(x15)
	out[11] = int32(x7)
	out[12] = int32(x5)
	out[13] = int32(-x13)
	out[14] = int32(x9)
	out[15] = int32(-x1)
}
