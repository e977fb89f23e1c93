package dsp

import "fmt"

// FlipClass says how a residual block is mirrored before the forward
// transform. Flipped ADST variants run the plain ADST on a mirrored block.
type FlipClass uint8

const (
	FlipNone FlipClass = iota
	FlipUD             // rows reversed (vertical flip)
	FlipLR             // columns reversed (horizontal flip)
	FlipUDLR           // both
)

func (f FlipClass) String() string {
	switch f {
	case FlipNone:
		return "none"
	case FlipUD:
		return "ud"
	case FlipLR:
		return "lr"
	case FlipUDLR:
		return "udlr"
	}
	return fmt.Sprintf("FlipClass(%d)", uint8(f))
}

// FlipClassOf returns the flip class of t. It panics on a value outside the
// enumerated transform types.
func FlipClassOf(t TxType) FlipClass {
	switch t {
	case DCTDCT, ADSTDCT, DCTADST, ADSTADST, IDTX, VDCT, HDCT, VADST, HADST:
		return FlipNone
	case FlipADSTDCT, FlipADSTADST, VFlipADST:
		return FlipUD
	case DCTFlipADST, ADSTFlipADST, HFlipADST:
		return FlipLR
	case FlipADSTFlipADST:
		return FlipUDLR
	}
	panic(fmt.Sprintf("dsp: invalid transform type %d", uint8(t)))
}

// CopyFlipped copies a rows x cols block from src (row stride srcStride)
// into dst (row stride cols), mirrored according to fc. src is not modified.
func CopyFlipped(dst, src []int16, srcStride, rows, cols int, fc FlipClass) {
	_ = dst[rows*cols-1]
	for r := 0; r < rows; r++ {
		sr := r
		if fc == FlipUD || fc == FlipUDLR {
			sr = rows - 1 - r
		}
		s := src[sr*srcStride : sr*srcStride+cols]
		d := dst[r*cols : r*cols+cols]
		if fc == FlipLR || fc == FlipUDLR {
			for c := 0; c < cols; c++ {
				d[c] = s[cols-1-c]
			}
		} else {
			copy(d, s)
		}
	}
}
