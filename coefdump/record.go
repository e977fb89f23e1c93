package coefdump

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/deepteams/av1txfm"
	"github.com/deepteams/av1txfm/internal/container"
)

// Kind identifies the transform a record was produced by.
type Kind uint8

const (
	KindBlock Kind = iota // 2-D forward transform
	KindWHT               // lossless 4x4 Walsh-Hadamard transform
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindWHT:
		return "wht"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Record is one residual block and its coefficients.
type Record struct {
	Kind     Kind
	Size     av1txfm.TxSize // TX4x4 for KindWHT
	Type     av1txfm.TxType // DCTDCT for KindWHT
	Residual []int16        // Size.Width()*Size.Height() samples, row-major
	Coeffs   []int32
}

// ErrCorrupt is returned for a chunk whose payload does not decode.
var ErrCorrupt = errors.New("coefdump: corrupt record")

// packResidual copies the w x h block at src into a dense buffer.
func packResidual(src []int16, stride, w, h int) ([]int16, error) {
	if stride < w {
		return nil, fmt.Errorf("%w: stride %d, width %d", av1txfm.ErrInvalidStride, stride, w)
	}
	if need := (h-1)*stride + w; len(src) < need {
		return nil, fmt.Errorf("%w: have %d, need %d", av1txfm.ErrShortSource, len(src), need)
	}
	out := make([]int16, 0, w*h)
	for r := 0; r < h; r++ {
		out = append(out, src[r*stride:r*stride+w]...)
	}
	return out, nil
}

func appendSamples(buf []byte, res []int16, coeffs []int32) []byte {
	for _, v := range res {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
	}
	for _, v := range coeffs {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
	}
	return buf
}

func decodeSamples(p []byte, n, m int) ([]int16, []int32) {
	res := make([]int16, n)
	for i := range res {
		res[i] = int16(binary.LittleEndian.Uint16(p[2*i:]))
	}
	p = p[2*n:]
	coeffs := make([]int32, m)
	for i := range coeffs {
		coeffs[i] = int32(binary.LittleEndian.Uint32(p[4*i:]))
	}
	return res, coeffs
}

// encodeRecord appends the chunk payload of rec to buf and returns the
// chunk's FourCC.
func encodeRecord(buf []byte, rec *Record) ([]byte, uint32) {
	if rec.Kind == KindWHT {
		return appendSamples(buf, rec.Residual, rec.Coeffs), container.FourCCLWHT
	}
	buf = append(buf, uint8(rec.Size), uint8(rec.Type), 0, 0)
	return appendSamples(buf, rec.Residual, rec.Coeffs), container.FourCCBLCK
}

func decodeBlock(p []byte) (*Record, error) {
	if len(p) < container.BlockHeaderSize {
		return nil, fmt.Errorf("%w: BLCK payload %d bytes", ErrCorrupt, len(p))
	}
	size, typ := av1txfm.TxSize(p[0]), av1txfm.TxType(p[1])
	if size >= av1txfm.NumTxSizes {
		return nil, fmt.Errorf("%w: transform size %d", ErrCorrupt, p[0])
	}
	if typ >= av1txfm.NumTxTypes {
		return nil, fmt.Errorf("%w: transform type %d", ErrCorrupt, p[1])
	}
	n, m := size.Width()*size.Height(), size.CoeffCount()
	p = p[container.BlockHeaderSize:]
	if len(p) != 2*n+4*m {
		return nil, fmt.Errorf("%w: %v payload %d bytes, want %d", ErrCorrupt, size, len(p), 2*n+4*m)
	}
	res, coeffs := decodeSamples(p, n, m)
	return &Record{Kind: KindBlock, Size: size, Type: typ, Residual: res, Coeffs: coeffs}, nil
}

const whtPayloadSize = 16*2 + 16*4

func decodeWHT(p []byte) (*Record, error) {
	if len(p) != whtPayloadSize {
		return nil, fmt.Errorf("%w: LWHT payload %d bytes, want %d", ErrCorrupt, len(p), whtPayloadSize)
	}
	res, coeffs := decodeSamples(p, 16, 16)
	return &Record{Kind: KindWHT, Size: av1txfm.TX4x4, Type: av1txfm.DCTDCT, Residual: res, Coeffs: coeffs}, nil
}

// Recompute runs the transform of rec on e and returns fresh coefficients.
func (rec *Record) Recompute(e *av1txfm.Engine) ([]int32, error) {
	var out []int32
	var err error
	if rec.Kind == KindWHT {
		out = make([]int32, 16)
		err = e.ForwardWHT(rec.Residual, 4, out)
	} else {
		if rec.Size >= av1txfm.NumTxSizes {
			return nil, fmt.Errorf("%w: %d", av1txfm.ErrInvalidTxSize, uint8(rec.Size))
		}
		out = make([]int32, rec.Size.CoeffCount())
		err = e.Forward(rec.Residual, rec.Size.Width(), out, rec.Size, rec.Type)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
