package dsp

// Forward DCT-II kernels for lengths 4 to 32.
//
// Each kernel is a fixed butterfly network over 14-bit cosine constants.
// Output k equals c(k) * sum(x[n] * cos(pi*(2n+1)*k/(2L))) with c(0) = 1/sqrt(2)
// and c(k) = 1 otherwise, rounded at every rotation. The network layout is
// normative: changing the order of any rotation changes the rounding.

// fdct4 computes the 4-point forward DCT.
func fdct4(in, out []int32) {
	_ = in[3]
	_ = out[3]
	var a, b [4]int32
	copy(a[:], in[:4])

	// Stage 1.
	b[0] = a[0] + a[3]
	b[1] = a[1] + a[2]
	b[2] = a[1] - a[2]
	b[3] = a[0] - a[3]

	// Stage 2.
	a[0] = dctRound(int64(b[0])*cospi16 + int64(b[1])*cospi16)
	a[1] = dctRound(int64(b[1])*-cospi16 + int64(b[0])*cospi16)
	a[2] = dctRound(int64(b[2])*cospi24 + int64(b[3])*cospi8)
	a[3] = dctRound(int64(b[3])*cospi24 + int64(b[2])*-cospi8)

	out[0] = a[0]
	out[1] = a[2]
	out[2] = a[1]
	out[3] = a[3]
}

// fdct8 computes the 8-point forward DCT.
func fdct8(in, out []int32) {
	_ = in[7]
	_ = out[7]
	var a, b [8]int32
	copy(a[:], in[:8])

	// Stage 1.
	b[0] = a[0] + a[7]
	b[1] = a[1] + a[6]
	b[2] = a[2] + a[5]
	b[3] = a[3] + a[4]
	b[4] = a[3] - a[4]
	b[5] = a[2] - a[5]
	b[6] = a[1] - a[6]
	b[7] = a[0] - a[7]

	// Stage 2.
	a = b
	a[0] = b[0] + b[3]
	a[1] = b[1] + b[2]
	a[2] = b[1] - b[2]
	a[3] = b[0] - b[3]
	a[5] = dctRound(int64(b[5])*-cospi16 + int64(b[6])*cospi16)
	a[6] = dctRound(int64(b[6])*cospi16 + int64(b[5])*cospi16)

	// Stage 3.
	b[0] = dctRound(int64(a[0])*cospi16 + int64(a[1])*cospi16)
	b[1] = dctRound(int64(a[1])*-cospi16 + int64(a[0])*cospi16)
	b[2] = dctRound(int64(a[2])*cospi24 + int64(a[3])*cospi8)
	b[3] = dctRound(int64(a[3])*cospi24 + int64(a[2])*-cospi8)
	b[4] = a[4] + a[5]
	b[5] = a[4] - a[5]
	b[6] = a[7] - a[6]
	b[7] = a[7] + a[6]

	// Stage 4.
	a = b
	a[4] = dctRound(int64(b[4])*cospi28 + int64(b[7])*cospi4)
	a[5] = dctRound(int64(b[5])*cospi12 + int64(b[6])*cospi20)
	a[6] = dctRound(int64(b[6])*cospi12 + int64(b[5])*-cospi20)
	a[7] = dctRound(int64(b[7])*cospi28 + int64(b[4])*-cospi4)

	out[0] = a[0]
	out[1] = a[4]
	out[2] = a[2]
	out[3] = a[6]
	out[4] = a[1]
	out[5] = a[5]
	out[6] = a[3]
	out[7] = a[7]
}

// fdct16 computes the 16-point forward DCT.
func fdct16(in, out []int32) {
	_ = in[15]
	_ = out[15]
	var a, b [16]int32
	copy(a[:], in[:16])

	// Stage 1.
	b[0] = a[0] + a[15]
	b[1] = a[1] + a[14]
	b[2] = a[2] + a[13]
	b[3] = a[3] + a[12]
	b[4] = a[4] + a[11]
	b[5] = a[5] + a[10]
	b[6] = a[6] + a[9]
	b[7] = a[7] + a[8]
	b[8] = a[7] - a[8]
	b[9] = a[6] - a[9]
	b[10] = a[5] - a[10]
	b[11] = a[4] - a[11]
	b[12] = a[3] - a[12]
	b[13] = a[2] - a[13]
	b[14] = a[1] - a[14]
	b[15] = a[0] - a[15]

	// Stage 2.
	a = b
	a[0] = b[0] + b[7]
	a[1] = b[1] + b[6]
	a[2] = b[2] + b[5]
	a[3] = b[3] + b[4]
	a[4] = b[3] - b[4]
	a[5] = b[2] - b[5]
	a[6] = b[1] - b[6]
	a[7] = b[0] - b[7]
	a[10] = dctRound(int64(b[10])*-cospi16 + int64(b[13])*cospi16)
	a[11] = dctRound(int64(b[11])*-cospi16 + int64(b[12])*cospi16)
	a[12] = dctRound(int64(b[12])*cospi16 + int64(b[11])*cospi16)
	a[13] = dctRound(int64(b[13])*cospi16 + int64(b[10])*cospi16)

	// Stage 3.
	b = a
	b[0] = a[0] + a[3]
	b[1] = a[1] + a[2]
	b[2] = a[1] - a[2]
	b[3] = a[0] - a[3]
	b[5] = dctRound(int64(a[5])*-cospi16 + int64(a[6])*cospi16)
	b[6] = dctRound(int64(a[6])*cospi16 + int64(a[5])*cospi16)
	b[8] = a[8] + a[11]
	b[9] = a[9] + a[10]
	b[10] = a[9] - a[10]
	b[11] = a[8] - a[11]
	b[12] = a[15] - a[12]
	b[13] = a[14] - a[13]
	b[14] = a[14] + a[13]
	b[15] = a[15] + a[12]

	// Stage 4.
	a = b
	a[0] = dctRound(int64(b[0])*cospi16 + int64(b[1])*cospi16)
	a[1] = dctRound(int64(b[1])*-cospi16 + int64(b[0])*cospi16)
	a[2] = dctRound(int64(b[2])*cospi24 + int64(b[3])*cospi8)
	a[3] = dctRound(int64(b[3])*cospi24 + int64(b[2])*-cospi8)
	a[4] = b[4] + b[5]
	a[5] = b[4] - b[5]
	a[6] = b[7] - b[6]
	a[7] = b[7] + b[6]
	a[9] = dctRound(int64(b[9])*-cospi8 + int64(b[14])*cospi24)
	a[10] = dctRound(int64(b[10])*-cospi24 + int64(b[13])*-cospi8)
	a[13] = dctRound(int64(b[13])*cospi24 + int64(b[10])*-cospi8)
	a[14] = dctRound(int64(b[14])*cospi8 + int64(b[9])*cospi24)

	// Stage 5.
	b = a
	b[4] = dctRound(int64(a[4])*cospi28 + int64(a[7])*cospi4)
	b[5] = dctRound(int64(a[5])*cospi12 + int64(a[6])*cospi20)
	b[6] = dctRound(int64(a[6])*cospi12 + int64(a[5])*-cospi20)
	b[7] = dctRound(int64(a[7])*cospi28 + int64(a[4])*-cospi4)
	b[8] = a[8] + a[9]
	b[9] = a[8] - a[9]
	b[10] = a[11] - a[10]
	b[11] = a[11] + a[10]
	b[12] = a[12] + a[13]
	b[13] = a[12] - a[13]
	b[14] = a[15] - a[14]
	b[15] = a[15] + a[14]

	// Stage 6.
	a = b
	a[8] = dctRound(int64(b[8])*cospi30 + int64(b[15])*cospi2)
	a[9] = dctRound(int64(b[9])*cospi14 + int64(b[14])*cospi18)
	a[10] = dctRound(int64(b[10])*cospi22 + int64(b[13])*cospi10)
	a[11] = dctRound(int64(b[11])*cospi6 + int64(b[12])*cospi26)
	a[12] = dctRound(int64(b[12])*cospi6 + int64(b[11])*-cospi26)
	a[13] = dctRound(int64(b[13])*cospi22 + int64(b[10])*-cospi10)
	a[14] = dctRound(int64(b[14])*cospi14 + int64(b[9])*-cospi18)
	a[15] = dctRound(int64(b[15])*cospi30 + int64(b[8])*-cospi2)

	out[0] = a[0]
	out[1] = a[8]
	out[2] = a[4]
	out[3] = a[12]
	out[4] = a[2]
	out[5] = a[10]
	out[6] = a[6]
	out[7] = a[14]
	out[8] = a[1]
	out[9] = a[9]
	out[10] = a[5]
	out[11] = a[13]
	out[12] = a[3]
	out[13] = a[11]
	out[14] = a[7]
	out[15] = a[15]
}

// fdct32 computes the 32-point forward DCT.
func fdct32(in, out []int32) {
	_ = in[31]
	_ = out[31]
	var a, b [32]int32
	copy(a[:], in[:32])

	// Stage 1.
	b[0] = a[0] + a[31]
	b[1] = a[1] + a[30]
	b[2] = a[2] + a[29]
	b[3] = a[3] + a[28]
	b[4] = a[4] + a[27]
	b[5] = a[5] + a[26]
	b[6] = a[6] + a[25]
	b[7] = a[7] + a[24]
	b[8] = a[8] + a[23]
	b[9] = a[9] + a[22]
	b[10] = a[10] + a[21]
	b[11] = a[11] + a[20]
	b[12] = a[12] + a[19]
	b[13] = a[13] + a[18]
	b[14] = a[14] + a[17]
	b[15] = a[15] + a[16]
	b[16] = a[15] - a[16]
	b[17] = a[14] - a[17]
	b[18] = a[13] - a[18]
	b[19] = a[12] - a[19]
	b[20] = a[11] - a[20]
	b[21] = a[10] - a[21]
	b[22] = a[9] - a[22]
	b[23] = a[8] - a[23]
	b[24] = a[7] - a[24]
	b[25] = a[6] - a[25]
	b[26] = a[5] - a[26]
	b[27] = a[4] - a[27]
	b[28] = a[3] - a[28]
	b[29] = a[2] - a[29]
	b[30] = a[1] - a[30]
	b[31] = a[0] - a[31]

	// Stage 2.
	a = b
	a[0] = b[0] + b[15]
	a[1] = b[1] + b[14]
	a[2] = b[2] + b[13]
	a[3] = b[3] + b[12]
	a[4] = b[4] + b[11]
	a[5] = b[5] + b[10]
	a[6] = b[6] + b[9]
	a[7] = b[7] + b[8]
	a[8] = b[7] - b[8]
	a[9] = b[6] - b[9]
	a[10] = b[5] - b[10]
	a[11] = b[4] - b[11]
	a[12] = b[3] - b[12]
	a[13] = b[2] - b[13]
	a[14] = b[1] - b[14]
	a[15] = b[0] - b[15]
	a[20] = dctRound(int64(b[20])*-cospi16 + int64(b[27])*cospi16)
	a[21] = dctRound(int64(b[21])*-cospi16 + int64(b[26])*cospi16)
	a[22] = dctRound(int64(b[22])*-cospi16 + int64(b[25])*cospi16)
	a[23] = dctRound(int64(b[23])*-cospi16 + int64(b[24])*cospi16)
	a[24] = dctRound(int64(b[24])*cospi16 + int64(b[23])*cospi16)
	a[25] = dctRound(int64(b[25])*cospi16 + int64(b[22])*cospi16)
	a[26] = dctRound(int64(b[26])*cospi16 + int64(b[21])*cospi16)
	a[27] = dctRound(int64(b[27])*cospi16 + int64(b[20])*cospi16)

	// Stage 3.
	b = a
	b[0] = a[0] + a[7]
	b[1] = a[1] + a[6]
	b[2] = a[2] + a[5]
	b[3] = a[3] + a[4]
	b[4] = a[3] - a[4]
	b[5] = a[2] - a[5]
	b[6] = a[1] - a[6]
	b[7] = a[0] - a[7]
	b[10] = dctRound(int64(a[10])*-cospi16 + int64(a[13])*cospi16)
	b[11] = dctRound(int64(a[11])*-cospi16 + int64(a[12])*cospi16)
	b[12] = dctRound(int64(a[12])*cospi16 + int64(a[11])*cospi16)
	b[13] = dctRound(int64(a[13])*cospi16 + int64(a[10])*cospi16)
	b[16] = a[16] + a[23]
	b[17] = a[17] + a[22]
	b[18] = a[18] + a[21]
	b[19] = a[19] + a[20]
	b[20] = a[19] - a[20]
	b[21] = a[18] - a[21]
	b[22] = a[17] - a[22]
	b[23] = a[16] - a[23]
	b[24] = a[31] - a[24]
	b[25] = a[30] - a[25]
	b[26] = a[29] - a[26]
	b[27] = a[28] - a[27]
	b[28] = a[28] + a[27]
	b[29] = a[29] + a[26]
	b[30] = a[30] + a[25]
	b[31] = a[31] + a[24]

	// Stage 4.
	a = b
	a[0] = b[0] + b[3]
	a[1] = b[1] + b[2]
	a[2] = b[1] - b[2]
	a[3] = b[0] - b[3]
	a[5] = dctRound(int64(b[5])*-cospi16 + int64(b[6])*cospi16)
	a[6] = dctRound(int64(b[6])*cospi16 + int64(b[5])*cospi16)
	a[8] = b[8] + b[11]
	a[9] = b[9] + b[10]
	a[10] = b[9] - b[10]
	a[11] = b[8] - b[11]
	a[12] = b[15] - b[12]
	a[13] = b[14] - b[13]
	a[14] = b[14] + b[13]
	a[15] = b[15] + b[12]
	a[18] = dctRound(int64(b[18])*-cospi8 + int64(b[29])*cospi24)
	a[19] = dctRound(int64(b[19])*-cospi8 + int64(b[28])*cospi24)
	a[20] = dctRound(int64(b[20])*-cospi24 + int64(b[27])*-cospi8)
	a[21] = dctRound(int64(b[21])*-cospi24 + int64(b[26])*-cospi8)
	a[26] = dctRound(int64(b[26])*cospi24 + int64(b[21])*-cospi8)
	a[27] = dctRound(int64(b[27])*cospi24 + int64(b[20])*-cospi8)
	a[28] = dctRound(int64(b[28])*cospi8 + int64(b[19])*cospi24)
	a[29] = dctRound(int64(b[29])*cospi8 + int64(b[18])*cospi24)

	// Stage 5.
	b = a
	b[0] = dctRound(int64(a[0])*cospi16 + int64(a[1])*cospi16)
	b[1] = dctRound(int64(a[1])*-cospi16 + int64(a[0])*cospi16)
	b[2] = dctRound(int64(a[2])*cospi24 + int64(a[3])*cospi8)
	b[3] = dctRound(int64(a[3])*cospi24 + int64(a[2])*-cospi8)
	b[4] = a[4] + a[5]
	b[5] = a[4] - a[5]
	b[6] = a[7] - a[6]
	b[7] = a[7] + a[6]
	b[9] = dctRound(int64(a[9])*-cospi8 + int64(a[14])*cospi24)
	b[10] = dctRound(int64(a[10])*-cospi24 + int64(a[13])*-cospi8)
	b[13] = dctRound(int64(a[13])*cospi24 + int64(a[10])*-cospi8)
	b[14] = dctRound(int64(a[14])*cospi8 + int64(a[9])*cospi24)
	b[16] = a[16] + a[19]
	b[17] = a[17] + a[18]
	b[18] = a[17] - a[18]
	b[19] = a[16] - a[19]
	b[20] = a[23] - a[20]
	b[21] = a[22] - a[21]
	b[22] = a[22] + a[21]
	b[23] = a[23] + a[20]
	b[24] = a[24] + a[27]
	b[25] = a[25] + a[26]
	b[26] = a[25] - a[26]
	b[27] = a[24] - a[27]
	b[28] = a[31] - a[28]
	b[29] = a[30] - a[29]
	b[30] = a[30] + a[29]
	b[31] = a[31] + a[28]

	// Stage 6.
	a = b
	a[4] = dctRound(int64(b[4])*cospi28 + int64(b[7])*cospi4)
	a[5] = dctRound(int64(b[5])*cospi12 + int64(b[6])*cospi20)
	a[6] = dctRound(int64(b[6])*cospi12 + int64(b[5])*-cospi20)
	a[7] = dctRound(int64(b[7])*cospi28 + int64(b[4])*-cospi4)
	a[8] = b[8] + b[9]
	a[9] = b[8] - b[9]
	a[10] = b[11] - b[10]
	a[11] = b[11] + b[10]
	a[12] = b[12] + b[13]
	a[13] = b[12] - b[13]
	a[14] = b[15] - b[14]
	a[15] = b[15] + b[14]
	a[17] = dctRound(int64(b[17])*-cospi4 + int64(b[30])*cospi28)
	a[18] = dctRound(int64(b[18])*-cospi28 + int64(b[29])*-cospi4)
	a[21] = dctRound(int64(b[21])*-cospi20 + int64(b[26])*cospi12)
	a[22] = dctRound(int64(b[22])*-cospi12 + int64(b[25])*-cospi20)
	a[25] = dctRound(int64(b[25])*cospi12 + int64(b[22])*-cospi20)
	a[26] = dctRound(int64(b[26])*cospi20 + int64(b[21])*cospi12)
	a[29] = dctRound(int64(b[29])*cospi28 + int64(b[18])*-cospi4)
	a[30] = dctRound(int64(b[30])*cospi4 + int64(b[17])*cospi28)

	// Stage 7.
	b = a
	b[8] = dctRound(int64(a[8])*cospi30 + int64(a[15])*cospi2)
	b[9] = dctRound(int64(a[9])*cospi14 + int64(a[14])*cospi18)
	b[10] = dctRound(int64(a[10])*cospi22 + int64(a[13])*cospi10)
	b[11] = dctRound(int64(a[11])*cospi6 + int64(a[12])*cospi26)
	b[12] = dctRound(int64(a[12])*cospi6 + int64(a[11])*-cospi26)
	b[13] = dctRound(int64(a[13])*cospi22 + int64(a[10])*-cospi10)
	b[14] = dctRound(int64(a[14])*cospi14 + int64(a[9])*-cospi18)
	b[15] = dctRound(int64(a[15])*cospi30 + int64(a[8])*-cospi2)
	b[16] = a[16] + a[17]
	b[17] = a[16] - a[17]
	b[18] = a[19] - a[18]
	b[19] = a[19] + a[18]
	b[20] = a[20] + a[21]
	b[21] = a[20] - a[21]
	b[22] = a[23] - a[22]
	b[23] = a[23] + a[22]
	b[24] = a[24] + a[25]
	b[25] = a[24] - a[25]
	b[26] = a[27] - a[26]
	b[27] = a[27] + a[26]
	b[28] = a[28] + a[29]
	b[29] = a[28] - a[29]
	b[30] = a[31] - a[30]
	b[31] = a[31] + a[30]

	// Stage 8.
	a = b
	a[16] = dctRound(int64(b[16])*cospi31 + int64(b[31])*cospi1)
	a[17] = dctRound(int64(b[17])*cospi15 + int64(b[30])*cospi17)
	a[18] = dctRound(int64(b[18])*cospi23 + int64(b[29])*cospi9)
	a[19] = dctRound(int64(b[19])*cospi7 + int64(b[28])*cospi25)
	a[20] = dctRound(int64(b[20])*cospi27 + int64(b[27])*cospi5)
	a[21] = dctRound(int64(b[21])*cospi11 + int64(b[26])*cospi21)
	a[22] = dctRound(int64(b[22])*cospi19 + int64(b[25])*cospi13)
	a[23] = dctRound(int64(b[23])*cospi3 + int64(b[24])*cospi29)
	a[24] = dctRound(int64(b[24])*cospi3 + int64(b[23])*-cospi29)
	a[25] = dctRound(int64(b[25])*cospi19 + int64(b[22])*-cospi13)
	a[26] = dctRound(int64(b[26])*cospi11 + int64(b[21])*-cospi21)
	a[27] = dctRound(int64(b[27])*cospi27 + int64(b[20])*-cospi5)
	a[28] = dctRound(int64(b[28])*cospi7 + int64(b[19])*-cospi25)
	a[29] = dctRound(int64(b[29])*cospi23 + int64(b[18])*-cospi9)
	a[30] = dctRound(int64(b[30])*cospi15 + int64(b[17])*-cospi17)
	a[31] = dctRound(int64(b[31])*cospi31 + int64(b[16])*-cospi1)

	out[0] = a[0]
	out[1] = a[16]
	out[2] = a[8]
	out[3] = a[24]
	out[4] = a[4]
	out[5] = a[20]
	out[6] = a[12]
	out[7] = a[28]
	out[8] = a[2]
	out[9] = a[18]
	out[10] = a[10]
	out[11] = a[26]
	out[12] = a[6]
	out[13] = a[22]
	out[14] = a[14]
	out[15] = a[30]
	out[16] = a[1]
	out[17] = a[17]
	out[18] = a[9]
	out[19] = a[25]
	out[20] = a[5]
	out[21] = a[21]
	out[22] = a[13]
	out[23] = a[29]
	out[24] = a[3]
	out[25] = a[19]
	out[26] = a[11]
	out[27] = a[27]
	out[28] = a[7]
	out[29] = a[23]
	out[30] = a[15]
	out[31] = a[31]
}
