package dsp

// fdct64Config selects the cosine precision of a 64-point DCT pass and the
// bit budget debug builds enforce on its input and output.
type fdct64Config struct {
	cosBit     uint
	stageRange [12]int8
}

var (
	// fdct64Col is used for 64-point column passes fed with raw residuals.
	fdct64Col = fdct64Config{
		cosBit:     13,
		stageRange: [12]int8{13, 14, 15, 16, 17, 18, 19, 19, 19, 19, 19, 19},
	}
	// fdct64Row is used for 64-point row passes and for the 32x64 column pass.
	fdct64Row = fdct64Config{
		cosBit:     12,
		stageRange: [12]int8{17, 18, 19, 20, 21, 22, 22, 22, 22, 22, 22, 22},
	}
)

func fdct64ColKernel(in, out []int32) { fdct64(in, out, &fdct64Col) }

func fdct64RowKernel(in, out []int32) { fdct64(in, out, &fdct64Row) }

// fdct64 computes the 64-point forward DCT with variable-precision
// cosines. Rotations wrap to 32 bits before rounding.
func fdct64(in, out []int32, cfg *fdct64Config) {
	_ = in[63]
	_ = out[63]
	cp := &cospiTables[cfg.cosBit]
	bit := cfg.cosBit
	checkRange(in[:64], cfg.stageRange[0])
	var a, b [64]int32
	copy(a[:], in[:64])

	// Stage 1.
	b[0] = a[0] + a[63]
	b[1] = a[1] + a[62]
	b[2] = a[2] + a[61]
	b[3] = a[3] + a[60]
	b[4] = a[4] + a[59]
	b[5] = a[5] + a[58]
	b[6] = a[6] + a[57]
	b[7] = a[7] + a[56]
	b[8] = a[8] + a[55]
	b[9] = a[9] + a[54]
	b[10] = a[10] + a[53]
	b[11] = a[11] + a[52]
	b[12] = a[12] + a[51]
	b[13] = a[13] + a[50]
	b[14] = a[14] + a[49]
	b[15] = a[15] + a[48]
	b[16] = a[16] + a[47]
	b[17] = a[17] + a[46]
	b[18] = a[18] + a[45]
	b[19] = a[19] + a[44]
	b[20] = a[20] + a[43]
	b[21] = a[21] + a[42]
	b[22] = a[22] + a[41]
	b[23] = a[23] + a[40]
	b[24] = a[24] + a[39]
	b[25] = a[25] + a[38]
	b[26] = a[26] + a[37]
	b[27] = a[27] + a[36]
	b[28] = a[28] + a[35]
	b[29] = a[29] + a[34]
	b[30] = a[30] + a[33]
	b[31] = a[31] + a[32]
	b[32] = a[31] - a[32]
	b[33] = a[30] - a[33]
	b[34] = a[29] - a[34]
	b[35] = a[28] - a[35]
	b[36] = a[27] - a[36]
	b[37] = a[26] - a[37]
	b[38] = a[25] - a[38]
	b[39] = a[24] - a[39]
	b[40] = a[23] - a[40]
	b[41] = a[22] - a[41]
	b[42] = a[21] - a[42]
	b[43] = a[20] - a[43]
	b[44] = a[19] - a[44]
	b[45] = a[18] - a[45]
	b[46] = a[17] - a[46]
	b[47] = a[16] - a[47]
	b[48] = a[15] - a[48]
	b[49] = a[14] - a[49]
	b[50] = a[13] - a[50]
	b[51] = a[12] - a[51]
	b[52] = a[11] - a[52]
	b[53] = a[10] - a[53]
	b[54] = a[9] - a[54]
	b[55] = a[8] - a[55]
	b[56] = a[7] - a[56]
	b[57] = a[6] - a[57]
	b[58] = a[5] - a[58]
	b[59] = a[4] - a[59]
	b[60] = a[3] - a[60]
	b[61] = a[2] - a[61]
	b[62] = a[1] - a[62]
	b[63] = a[0] - a[63]

	// Stage 2.
	a = b
	a[0] = b[0] + b[31]
	a[1] = b[1] + b[30]
	a[2] = b[2] + b[29]
	a[3] = b[3] + b[28]
	a[4] = b[4] + b[27]
	a[5] = b[5] + b[26]
	a[6] = b[6] + b[25]
	a[7] = b[7] + b[24]
	a[8] = b[8] + b[23]
	a[9] = b[9] + b[22]
	a[10] = b[10] + b[21]
	a[11] = b[11] + b[20]
	a[12] = b[12] + b[19]
	a[13] = b[13] + b[18]
	a[14] = b[14] + b[17]
	a[15] = b[15] + b[16]
	a[16] = b[15] - b[16]
	a[17] = b[14] - b[17]
	a[18] = b[13] - b[18]
	a[19] = b[12] - b[19]
	a[20] = b[11] - b[20]
	a[21] = b[10] - b[21]
	a[22] = b[9] - b[22]
	a[23] = b[8] - b[23]
	a[24] = b[7] - b[24]
	a[25] = b[6] - b[25]
	a[26] = b[5] - b[26]
	a[27] = b[4] - b[27]
	a[28] = b[3] - b[28]
	a[29] = b[2] - b[29]
	a[30] = b[1] - b[30]
	a[31] = b[0] - b[31]
	a[40] = halfBtf(-cp[32], b[40], cp[32], b[55], bit)
	a[41] = halfBtf(-cp[32], b[41], cp[32], b[54], bit)
	a[42] = halfBtf(-cp[32], b[42], cp[32], b[53], bit)
	a[43] = halfBtf(-cp[32], b[43], cp[32], b[52], bit)
	a[44] = halfBtf(-cp[32], b[44], cp[32], b[51], bit)
	a[45] = halfBtf(-cp[32], b[45], cp[32], b[50], bit)
	a[46] = halfBtf(-cp[32], b[46], cp[32], b[49], bit)
	a[47] = halfBtf(-cp[32], b[47], cp[32], b[48], bit)
	a[48] = halfBtf(cp[32], b[48], cp[32], b[47], bit)
	a[49] = halfBtf(cp[32], b[49], cp[32], b[46], bit)
	a[50] = halfBtf(cp[32], b[50], cp[32], b[45], bit)
	a[51] = halfBtf(cp[32], b[51], cp[32], b[44], bit)
	a[52] = halfBtf(cp[32], b[52], cp[32], b[43], bit)
	a[53] = halfBtf(cp[32], b[53], cp[32], b[42], bit)
	a[54] = halfBtf(cp[32], b[54], cp[32], b[41], bit)
	a[55] = halfBtf(cp[32], b[55], cp[32], b[40], bit)

	// Stage 3.
	b = a
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
	b[20] = halfBtf(-cp[32], a[20], cp[32], a[27], bit)
	b[21] = halfBtf(-cp[32], a[21], cp[32], a[26], bit)
	b[22] = halfBtf(-cp[32], a[22], cp[32], a[25], bit)
	b[23] = halfBtf(-cp[32], a[23], cp[32], a[24], bit)
	b[24] = halfBtf(cp[32], a[24], cp[32], a[23], bit)
	b[25] = halfBtf(cp[32], a[25], cp[32], a[22], bit)
	b[26] = halfBtf(cp[32], a[26], cp[32], a[21], bit)
	b[27] = halfBtf(cp[32], a[27], cp[32], a[20], bit)
	b[32] = a[32] + a[47]
	b[33] = a[33] + a[46]
	b[34] = a[34] + a[45]
	b[35] = a[35] + a[44]
	b[36] = a[36] + a[43]
	b[37] = a[37] + a[42]
	b[38] = a[38] + a[41]
	b[39] = a[39] + a[40]
	b[40] = a[39] - a[40]
	b[41] = a[38] - a[41]
	b[42] = a[37] - a[42]
	b[43] = a[36] - a[43]
	b[44] = a[35] - a[44]
	b[45] = a[34] - a[45]
	b[46] = a[33] - a[46]
	b[47] = a[32] - a[47]
	b[48] = a[63] - a[48]
	b[49] = a[62] - a[49]
	b[50] = a[61] - a[50]
	b[51] = a[60] - a[51]
	b[52] = a[59] - a[52]
	b[53] = a[58] - a[53]
	b[54] = a[57] - a[54]
	b[55] = a[56] - a[55]
	b[56] = a[56] + a[55]
	b[57] = a[57] + a[54]
	b[58] = a[58] + a[53]
	b[59] = a[59] + a[52]
	b[60] = a[60] + a[51]
	b[61] = a[61] + a[50]
	b[62] = a[62] + a[49]
	b[63] = a[63] + a[48]

	// Stage 4.
	a = b
	a[0] = b[0] + b[7]
	a[1] = b[1] + b[6]
	a[2] = b[2] + b[5]
	a[3] = b[3] + b[4]
	a[4] = b[3] - b[4]
	a[5] = b[2] - b[5]
	a[6] = b[1] - b[6]
	a[7] = b[0] - b[7]
	a[10] = halfBtf(-cp[32], b[10], cp[32], b[13], bit)
	a[11] = halfBtf(-cp[32], b[11], cp[32], b[12], bit)
	a[12] = halfBtf(cp[32], b[12], cp[32], b[11], bit)
	a[13] = halfBtf(cp[32], b[13], cp[32], b[10], bit)
	a[16] = b[16] + b[23]
	a[17] = b[17] + b[22]
	a[18] = b[18] + b[21]
	a[19] = b[19] + b[20]
	a[20] = b[19] - b[20]
	a[21] = b[18] - b[21]
	a[22] = b[17] - b[22]
	a[23] = b[16] - b[23]
	a[24] = b[31] - b[24]
	a[25] = b[30] - b[25]
	a[26] = b[29] - b[26]
	a[27] = b[28] - b[27]
	a[28] = b[28] + b[27]
	a[29] = b[29] + b[26]
	a[30] = b[30] + b[25]
	a[31] = b[31] + b[24]
	a[36] = halfBtf(-cp[16], b[36], cp[48], b[59], bit)
	a[37] = halfBtf(-cp[16], b[37], cp[48], b[58], bit)
	a[38] = halfBtf(-cp[16], b[38], cp[48], b[57], bit)
	a[39] = halfBtf(-cp[16], b[39], cp[48], b[56], bit)
	a[40] = halfBtf(-cp[48], b[40], -cp[16], b[55], bit)
	a[41] = halfBtf(-cp[48], b[41], -cp[16], b[54], bit)
	a[42] = halfBtf(-cp[48], b[42], -cp[16], b[53], bit)
	a[43] = halfBtf(-cp[48], b[43], -cp[16], b[52], bit)
	a[52] = halfBtf(cp[48], b[52], -cp[16], b[43], bit)
	a[53] = halfBtf(cp[48], b[53], -cp[16], b[42], bit)
	a[54] = halfBtf(cp[48], b[54], -cp[16], b[41], bit)
	a[55] = halfBtf(cp[48], b[55], -cp[16], b[40], bit)
	a[56] = halfBtf(cp[16], b[56], cp[48], b[39], bit)
	a[57] = halfBtf(cp[16], b[57], cp[48], b[38], bit)
	a[58] = halfBtf(cp[16], b[58], cp[48], b[37], bit)
	a[59] = halfBtf(cp[16], b[59], cp[48], b[36], bit)

	// Stage 5.
	b = a
	b[0] = a[0] + a[3]
	b[1] = a[1] + a[2]
	b[2] = a[1] - a[2]
	b[3] = a[0] - a[3]
	b[5] = halfBtf(-cp[32], a[5], cp[32], a[6], bit)
	b[6] = halfBtf(cp[32], a[6], cp[32], a[5], bit)
	b[8] = a[8] + a[11]
	b[9] = a[9] + a[10]
	b[10] = a[9] - a[10]
	b[11] = a[8] - a[11]
	b[12] = a[15] - a[12]
	b[13] = a[14] - a[13]
	b[14] = a[14] + a[13]
	b[15] = a[15] + a[12]
	b[18] = halfBtf(-cp[16], a[18], cp[48], a[29], bit)
	b[19] = halfBtf(-cp[16], a[19], cp[48], a[28], bit)
	b[20] = halfBtf(-cp[48], a[20], -cp[16], a[27], bit)
	b[21] = halfBtf(-cp[48], a[21], -cp[16], a[26], bit)
	b[26] = halfBtf(cp[48], a[26], -cp[16], a[21], bit)
	b[27] = halfBtf(cp[48], a[27], -cp[16], a[20], bit)
	b[28] = halfBtf(cp[16], a[28], cp[48], a[19], bit)
	b[29] = halfBtf(cp[16], a[29], cp[48], a[18], bit)
	b[32] = a[32] + a[39]
	b[33] = a[33] + a[38]
	b[34] = a[34] + a[37]
	b[35] = a[35] + a[36]
	b[36] = a[35] - a[36]
	b[37] = a[34] - a[37]
	b[38] = a[33] - a[38]
	b[39] = a[32] - a[39]
	b[40] = a[47] - a[40]
	b[41] = a[46] - a[41]
	b[42] = a[45] - a[42]
	b[43] = a[44] - a[43]
	b[44] = a[44] + a[43]
	b[45] = a[45] + a[42]
	b[46] = a[46] + a[41]
	b[47] = a[47] + a[40]
	b[48] = a[48] + a[55]
	b[49] = a[49] + a[54]
	b[50] = a[50] + a[53]
	b[51] = a[51] + a[52]
	b[52] = a[51] - a[52]
	b[53] = a[50] - a[53]
	b[54] = a[49] - a[54]
	b[55] = a[48] - a[55]
	b[56] = a[63] - a[56]
	b[57] = a[62] - a[57]
	b[58] = a[61] - a[58]
	b[59] = a[60] - a[59]
	b[60] = a[60] + a[59]
	b[61] = a[61] + a[58]
	b[62] = a[62] + a[57]
	b[63] = a[63] + a[56]

	// Stage 6.
	a = b
	a[0] = halfBtf(cp[32], b[0], cp[32], b[1], bit)
	a[1] = halfBtf(-cp[32], b[1], cp[32], b[0], bit)
	a[2] = halfBtf(cp[48], b[2], cp[16], b[3], bit)
	a[3] = halfBtf(cp[48], b[3], -cp[16], b[2], bit)
	a[4] = b[4] + b[5]
	a[5] = b[4] - b[5]
	a[6] = b[7] - b[6]
	a[7] = b[7] + b[6]
	a[9] = halfBtf(-cp[16], b[9], cp[48], b[14], bit)
	a[10] = halfBtf(-cp[48], b[10], -cp[16], b[13], bit)
	a[13] = halfBtf(cp[48], b[13], -cp[16], b[10], bit)
	a[14] = halfBtf(cp[16], b[14], cp[48], b[9], bit)
	a[16] = b[16] + b[19]
	a[17] = b[17] + b[18]
	a[18] = b[17] - b[18]
	a[19] = b[16] - b[19]
	a[20] = b[23] - b[20]
	a[21] = b[22] - b[21]
	a[22] = b[22] + b[21]
	a[23] = b[23] + b[20]
	a[24] = b[24] + b[27]
	a[25] = b[25] + b[26]
	a[26] = b[25] - b[26]
	a[27] = b[24] - b[27]
	a[28] = b[31] - b[28]
	a[29] = b[30] - b[29]
	a[30] = b[30] + b[29]
	a[31] = b[31] + b[28]
	a[34] = halfBtf(-cp[8], b[34], cp[56], b[61], bit)
	a[35] = halfBtf(-cp[8], b[35], cp[56], b[60], bit)
	a[36] = halfBtf(-cp[56], b[36], -cp[8], b[59], bit)
	a[37] = halfBtf(-cp[56], b[37], -cp[8], b[58], bit)
	a[42] = halfBtf(-cp[40], b[42], cp[24], b[53], bit)
	a[43] = halfBtf(-cp[40], b[43], cp[24], b[52], bit)
	a[44] = halfBtf(-cp[24], b[44], -cp[40], b[51], bit)
	a[45] = halfBtf(-cp[24], b[45], -cp[40], b[50], bit)
	a[50] = halfBtf(cp[24], b[50], -cp[40], b[45], bit)
	a[51] = halfBtf(cp[24], b[51], -cp[40], b[44], bit)
	a[52] = halfBtf(cp[40], b[52], cp[24], b[43], bit)
	a[53] = halfBtf(cp[40], b[53], cp[24], b[42], bit)
	a[58] = halfBtf(cp[56], b[58], -cp[8], b[37], bit)
	a[59] = halfBtf(cp[56], b[59], -cp[8], b[36], bit)
	a[60] = halfBtf(cp[8], b[60], cp[56], b[35], bit)
	a[61] = halfBtf(cp[8], b[61], cp[56], b[34], bit)

	// Stage 7.
	b = a
	b[4] = halfBtf(cp[56], a[4], cp[8], a[7], bit)
	b[5] = halfBtf(cp[24], a[5], cp[40], a[6], bit)
	b[6] = halfBtf(cp[24], a[6], -cp[40], a[5], bit)
	b[7] = halfBtf(cp[56], a[7], -cp[8], a[4], bit)
	b[8] = a[8] + a[9]
	b[9] = a[8] - a[9]
	b[10] = a[11] - a[10]
	b[11] = a[11] + a[10]
	b[12] = a[12] + a[13]
	b[13] = a[12] - a[13]
	b[14] = a[15] - a[14]
	b[15] = a[15] + a[14]
	b[17] = halfBtf(-cp[8], a[17], cp[56], a[30], bit)
	b[18] = halfBtf(-cp[56], a[18], -cp[8], a[29], bit)
	b[21] = halfBtf(-cp[40], a[21], cp[24], a[26], bit)
	b[22] = halfBtf(-cp[24], a[22], -cp[40], a[25], bit)
	b[25] = halfBtf(cp[24], a[25], -cp[40], a[22], bit)
	b[26] = halfBtf(cp[40], a[26], cp[24], a[21], bit)
	b[29] = halfBtf(cp[56], a[29], -cp[8], a[18], bit)
	b[30] = halfBtf(cp[8], a[30], cp[56], a[17], bit)
	b[32] = a[32] + a[35]
	b[33] = a[33] + a[34]
	b[34] = a[33] - a[34]
	b[35] = a[32] - a[35]
	b[36] = a[39] - a[36]
	b[37] = a[38] - a[37]
	b[38] = a[38] + a[37]
	b[39] = a[39] + a[36]
	b[40] = a[40] + a[43]
	b[41] = a[41] + a[42]
	b[42] = a[41] - a[42]
	b[43] = a[40] - a[43]
	b[44] = a[47] - a[44]
	b[45] = a[46] - a[45]
	b[46] = a[46] + a[45]
	b[47] = a[47] + a[44]
	b[48] = a[48] + a[51]
	b[49] = a[49] + a[50]
	b[50] = a[49] - a[50]
	b[51] = a[48] - a[51]
	b[52] = a[55] - a[52]
	b[53] = a[54] - a[53]
	b[54] = a[54] + a[53]
	b[55] = a[55] + a[52]
	b[56] = a[56] + a[59]
	b[57] = a[57] + a[58]
	b[58] = a[57] - a[58]
	b[59] = a[56] - a[59]
	b[60] = a[63] - a[60]
	b[61] = a[62] - a[61]
	b[62] = a[62] + a[61]
	b[63] = a[63] + a[60]

	// Stage 8.
	a = b
	a[8] = halfBtf(cp[60], b[8], cp[4], b[15], bit)
	a[9] = halfBtf(cp[28], b[9], cp[36], b[14], bit)
	a[10] = halfBtf(cp[44], b[10], cp[20], b[13], bit)
	a[11] = halfBtf(cp[12], b[11], cp[52], b[12], bit)
	a[12] = halfBtf(cp[12], b[12], -cp[52], b[11], bit)
	a[13] = halfBtf(cp[44], b[13], -cp[20], b[10], bit)
	a[14] = halfBtf(cp[28], b[14], -cp[36], b[9], bit)
	a[15] = halfBtf(cp[60], b[15], -cp[4], b[8], bit)
	a[16] = b[16] + b[17]
	a[17] = b[16] - b[17]
	a[18] = b[19] - b[18]
	a[19] = b[19] + b[18]
	a[20] = b[20] + b[21]
	a[21] = b[20] - b[21]
	a[22] = b[23] - b[22]
	a[23] = b[23] + b[22]
	a[24] = b[24] + b[25]
	a[25] = b[24] - b[25]
	a[26] = b[27] - b[26]
	a[27] = b[27] + b[26]
	a[28] = b[28] + b[29]
	a[29] = b[28] - b[29]
	a[30] = b[31] - b[30]
	a[31] = b[31] + b[30]
	a[33] = halfBtf(-cp[4], b[33], cp[60], b[62], bit)
	a[34] = halfBtf(-cp[60], b[34], -cp[4], b[61], bit)
	a[37] = halfBtf(-cp[36], b[37], cp[28], b[58], bit)
	a[38] = halfBtf(-cp[28], b[38], -cp[36], b[57], bit)
	a[41] = halfBtf(-cp[20], b[41], cp[44], b[54], bit)
	a[42] = halfBtf(-cp[44], b[42], -cp[20], b[53], bit)
	a[45] = halfBtf(-cp[52], b[45], cp[12], b[50], bit)
	a[46] = halfBtf(-cp[12], b[46], -cp[52], b[49], bit)
	a[49] = halfBtf(cp[12], b[49], -cp[52], b[46], bit)
	a[50] = halfBtf(cp[52], b[50], cp[12], b[45], bit)
	a[53] = halfBtf(cp[44], b[53], -cp[20], b[42], bit)
	a[54] = halfBtf(cp[20], b[54], cp[44], b[41], bit)
	a[57] = halfBtf(cp[28], b[57], -cp[36], b[38], bit)
	a[58] = halfBtf(cp[36], b[58], cp[28], b[37], bit)
	a[61] = halfBtf(cp[60], b[61], -cp[4], b[34], bit)
	a[62] = halfBtf(cp[4], b[62], cp[60], b[33], bit)

	// Stage 9.
	b = a
	b[16] = halfBtf(cp[62], a[16], cp[2], a[31], bit)
	b[17] = halfBtf(cp[30], a[17], cp[34], a[30], bit)
	b[18] = halfBtf(cp[46], a[18], cp[18], a[29], bit)
	b[19] = halfBtf(cp[14], a[19], cp[50], a[28], bit)
	b[20] = halfBtf(cp[54], a[20], cp[10], a[27], bit)
	b[21] = halfBtf(cp[22], a[21], cp[42], a[26], bit)
	b[22] = halfBtf(cp[38], a[22], cp[26], a[25], bit)
	b[23] = halfBtf(cp[6], a[23], cp[58], a[24], bit)
	b[24] = halfBtf(cp[6], a[24], -cp[58], a[23], bit)
	b[25] = halfBtf(cp[38], a[25], -cp[26], a[22], bit)
	b[26] = halfBtf(cp[22], a[26], -cp[42], a[21], bit)
	b[27] = halfBtf(cp[54], a[27], -cp[10], a[20], bit)
	b[28] = halfBtf(cp[14], a[28], -cp[50], a[19], bit)
	b[29] = halfBtf(cp[46], a[29], -cp[18], a[18], bit)
	b[30] = halfBtf(cp[30], a[30], -cp[34], a[17], bit)
	b[31] = halfBtf(cp[62], a[31], -cp[2], a[16], bit)
	b[32] = a[32] + a[33]
	b[33] = a[32] - a[33]
	b[34] = a[35] - a[34]
	b[35] = a[35] + a[34]
	b[36] = a[36] + a[37]
	b[37] = a[36] - a[37]
	b[38] = a[39] - a[38]
	b[39] = a[39] + a[38]
	b[40] = a[40] + a[41]
	b[41] = a[40] - a[41]
	b[42] = a[43] - a[42]
	b[43] = a[43] + a[42]
	b[44] = a[44] + a[45]
	b[45] = a[44] - a[45]
	b[46] = a[47] - a[46]
	b[47] = a[47] + a[46]
	b[48] = a[48] + a[49]
	b[49] = a[48] - a[49]
	b[50] = a[51] - a[50]
	b[51] = a[51] + a[50]
	b[52] = a[52] + a[53]
	b[53] = a[52] - a[53]
	b[54] = a[55] - a[54]
	b[55] = a[55] + a[54]
	b[56] = a[56] + a[57]
	b[57] = a[56] - a[57]
	b[58] = a[59] - a[58]
	b[59] = a[59] + a[58]
	b[60] = a[60] + a[61]
	b[61] = a[60] - a[61]
	b[62] = a[63] - a[62]
	b[63] = a[63] + a[62]

	// Stage 10.
	a = b
	a[32] = halfBtf(cp[63], b[32], cp[1], b[63], bit)
	a[33] = halfBtf(cp[31], b[33], cp[33], b[62], bit)
	a[34] = halfBtf(cp[47], b[34], cp[17], b[61], bit)
	a[35] = halfBtf(cp[15], b[35], cp[49], b[60], bit)
	a[36] = halfBtf(cp[55], b[36], cp[9], b[59], bit)
	a[37] = halfBtf(cp[23], b[37], cp[41], b[58], bit)
	a[38] = halfBtf(cp[39], b[38], cp[25], b[57], bit)
	a[39] = halfBtf(cp[7], b[39], cp[57], b[56], bit)
	a[40] = halfBtf(cp[59], b[40], cp[5], b[55], bit)
	a[41] = halfBtf(cp[27], b[41], cp[37], b[54], bit)
	a[42] = halfBtf(cp[43], b[42], cp[21], b[53], bit)
	a[43] = halfBtf(cp[11], b[43], cp[53], b[52], bit)
	a[44] = halfBtf(cp[51], b[44], cp[13], b[51], bit)
	a[45] = halfBtf(cp[19], b[45], cp[45], b[50], bit)
	a[46] = halfBtf(cp[35], b[46], cp[29], b[49], bit)
	a[47] = halfBtf(cp[3], b[47], cp[61], b[48], bit)
	a[48] = halfBtf(cp[3], b[48], -cp[61], b[47], bit)
	a[49] = halfBtf(cp[35], b[49], -cp[29], b[46], bit)
	a[50] = halfBtf(cp[19], b[50], -cp[45], b[45], bit)
	a[51] = halfBtf(cp[51], b[51], -cp[13], b[44], bit)
	a[52] = halfBtf(cp[11], b[52], -cp[53], b[43], bit)
	a[53] = halfBtf(cp[43], b[53], -cp[21], b[42], bit)
	a[54] = halfBtf(cp[27], b[54], -cp[37], b[41], bit)
	a[55] = halfBtf(cp[59], b[55], -cp[5], b[40], bit)
	a[56] = halfBtf(cp[7], b[56], -cp[57], b[39], bit)
	a[57] = halfBtf(cp[39], b[57], -cp[25], b[38], bit)
	a[58] = halfBtf(cp[23], b[58], -cp[41], b[37], bit)
	a[59] = halfBtf(cp[55], b[59], -cp[9], b[36], bit)
	a[60] = halfBtf(cp[15], b[60], -cp[49], b[35], bit)
	a[61] = halfBtf(cp[47], b[61], -cp[17], b[34], bit)
	a[62] = halfBtf(cp[31], b[62], -cp[33], b[33], bit)
	a[63] = halfBtf(cp[63], b[63], -cp[1], b[32], bit)

	out[0] = a[0]
	out[1] = a[32]
	out[2] = a[16]
	out[3] = a[48]
	out[4] = a[8]
	out[5] = a[40]
	out[6] = a[24]
	out[7] = a[56]
	out[8] = a[4]
	out[9] = a[36]
	out[10] = a[20]
	out[11] = a[52]
	out[12] = a[12]
	out[13] = a[44]
	out[14] = a[28]
	out[15] = a[60]
	out[16] = a[2]
	out[17] = a[34]
	out[18] = a[18]
	out[19] = a[50]
	out[20] = a[10]
	out[21] = a[42]
	out[22] = a[26]
	out[23] = a[58]
	out[24] = a[6]
	out[25] = a[38]
	out[26] = a[22]
	out[27] = a[54]
	out[28] = a[14]
	out[29] = a[46]
	out[30] = a[30]
	out[31] = a[62]
	out[32] = a[1]
	out[33] = a[33]
	out[34] = a[17]
	out[35] = a[49]
	out[36] = a[9]
	out[37] = a[41]
	out[38] = a[25]
	out[39] = a[57]
	out[40] = a[5]
	out[41] = a[37]
	out[42] = a[21]
	out[43] = a[53]
	out[44] = a[13]
	out[45] = a[45]
	out[46] = a[29]
	out[47] = a[61]
	out[48] = a[3]
	out[49] = a[35]
	out[50] = a[19]
	out[51] = a[51]
	out[52] = a[11]
	out[53] = a[43]
	out[54] = a[27]
	out[55] = a[59]
	out[56] = a[7]
	out[57] = a[39]
	out[58] = a[23]
	out[59] = a[55]
	out[60] = a[15]
	out[61] = a[47]
	out[62] = a[31]
	out[63] = a[63]
	checkRange(out[:64], cfg.stageRange[len(cfg.stageRange)-1])
}
