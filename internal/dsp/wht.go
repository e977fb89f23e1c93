package dsp

// Reversible 4x4 Walsh-Hadamard transform used by lossless blocks. Both
// passes are lifting steps over additions, subtractions and a single
// arithmetic shift, so the inverse reconstructs the input exactly.

// fwhtLift runs one forward lifting pass and returns the outputs in
// coefficient order.
func fwhtLift(a, b, c, d int32) (int32, int32, int32, int32) {
	a += b
	d -= c
	e := (a - d) >> 1
	b = e - b
	c = e - c
	a -= c
	d += b
	return a, c, d, b
}

// iwhtLift undoes fwhtLift.
func iwhtLift(a, c, d, b int32) (int32, int32, int32, int32) {
	a += c
	d -= b
	e := (a - d) >> 1
	b = e - b
	c = e - c
	a -= b
	d += c
	return a, b, c, d
}

// fwht4x4 computes the forward WHT of the 4x4 block at src (row stride
// stride) into out, scaled by UnitQuantFactor.
func fwht4x4(src []int16, stride int, out []int32) {
	_ = out[15]
	_ = src[3*stride+3]
	var tmp [16]int32
	for i := 0; i < 4; i++ {
		tmp[i], tmp[4+i], tmp[8+i], tmp[12+i] = fwhtLift(
			int32(src[i]), int32(src[stride+i]), int32(src[2*stride+i]), int32(src[3*stride+i]))
	}
	for i := 0; i < 4; i++ {
		r := tmp[i*4 : i*4+4]
		a, c, d, b := fwhtLift(r[0], r[1], r[2], r[3])
		out[i*4+0] = a * UnitQuantFactor
		out[i*4+1] = c * UnitQuantFactor
		out[i*4+2] = d * UnitQuantFactor
		out[i*4+3] = b * UnitQuantFactor
	}
}

// iwht4x4 reconstructs the 4x4 residual block from the coefficients of
// fwht4x4 and writes it to dst (row stride stride).
func iwht4x4(in []int32, dst []int16, stride int) {
	_ = in[15]
	_ = dst[3*stride+3]
	var tmp [16]int32
	for i := 0; i < 4; i++ {
		r := in[i*4 : i*4+4]
		tmp[i*4+0], tmp[i*4+1], tmp[i*4+2], tmp[i*4+3] = iwhtLift(
			r[0]>>UnitQuantShift, r[1]>>UnitQuantShift, r[2]>>UnitQuantShift, r[3]>>UnitQuantShift)
	}
	for i := 0; i < 4; i++ {
		a, b, c, d := iwhtLift(tmp[i], tmp[4+i], tmp[8+i], tmp[12+i])
		dst[i] = int16(a)
		dst[stride+i] = int16(b)
		dst[2*stride+i] = int16(c)
		dst[3*stride+i] = int16(d)
	}
}

// fwdIdentity writes the identity transform of a w x h block: every sample
// shifted left by 3, less one for blocks over 256 samples and one more for
// blocks over 1024. Only IDTX is handled; other types leave out untouched.
func fwdIdentity(src []int16, stride int, out []int32, w, h int, t TxType) {
	if t != IDTX {
		return
	}
	pels := w * h
	shift := 3 - b2i(pels > 256) - b2i(pels > 1024)
	for r := 0; r < h; r++ {
		row := src[r*stride : r*stride+w]
		o := out[r*w : r*w+w]
		for c, v := range row {
			o[c] = int32(v) << shift
		}
	}
}
