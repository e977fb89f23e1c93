package dsp

import "fmt"

// TxType selects the vertical and horizontal 1-D transforms of a 2-D
// transform. Names list the vertical (column) transform first.
type TxType uint8

const (
	DCTDCT TxType = iota
	ADSTDCT
	DCTADST
	ADSTADST
	FlipADSTDCT
	DCTFlipADST
	FlipADSTFlipADST
	ADSTFlipADST
	FlipADSTADST
	IDTX
	VDCT
	HDCT
	VADST
	HADST
	VFlipADST
	HFlipADST
	NumTxTypes
)

var txTypeNames = [NumTxTypes]string{
	"DCT_DCT", "ADST_DCT", "DCT_ADST", "ADST_ADST",
	"FLIPADST_DCT", "DCT_FLIPADST", "FLIPADST_FLIPADST", "ADST_FLIPADST",
	"FLIPADST_ADST", "IDTX", "V_DCT", "H_DCT",
	"V_ADST", "H_ADST", "V_FLIPADST", "H_FLIPADST",
}

func (t TxType) String() string {
	if t < NumTxTypes {
		return txTypeNames[t]
	}
	return fmt.Sprintf("TxType(%d)", uint8(t))
}

// Family is a 1-D transform family. Flipped ADST is realized by flipping
// the input, so it shares the ADST family.
type Family uint8

const (
	FamilyDCT Family = iota
	FamilyADST
	FamilyIdentity
	numFamilies
)

func (f Family) String() string {
	switch f {
	case FamilyDCT:
		return "DCT"
	case FamilyADST:
		return "ADST"
	case FamilyIdentity:
		return "IDTX"
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

// txAxes maps a transform type to its (vertical, horizontal) families.
var txAxes = [NumTxTypes][2]Family{
	DCTDCT:           {FamilyDCT, FamilyDCT},
	ADSTDCT:          {FamilyADST, FamilyDCT},
	DCTADST:          {FamilyDCT, FamilyADST},
	ADSTADST:         {FamilyADST, FamilyADST},
	FlipADSTDCT:      {FamilyADST, FamilyDCT},
	DCTFlipADST:      {FamilyDCT, FamilyADST},
	FlipADSTFlipADST: {FamilyADST, FamilyADST},
	ADSTFlipADST:     {FamilyADST, FamilyADST},
	FlipADSTADST:     {FamilyADST, FamilyADST},
	IDTX:             {FamilyIdentity, FamilyIdentity},
	VDCT:             {FamilyDCT, FamilyIdentity},
	HDCT:             {FamilyIdentity, FamilyDCT},
	VADST:            {FamilyADST, FamilyIdentity},
	HADST:            {FamilyIdentity, FamilyADST},
	VFlipADST:        {FamilyADST, FamilyIdentity},
	HFlipADST:        {FamilyIdentity, FamilyADST},
}

// Axes returns the vertical and horizontal transform families of t.
func (t TxType) Axes() (vert, horiz Family) {
	a := txAxes[t]
	return a[0], a[1]
}

// TxSize enumerates the supported block shapes.
type TxSize uint8

const (
	TX4x4 TxSize = iota
	TX8x8
	TX16x16
	TX32x32
	TX64x64
	TX4x8
	TX8x4
	TX8x16
	TX16x8
	TX16x32
	TX32x16
	TX32x64
	TX64x32
	TX4x16
	TX16x4
	TX8x32
	TX32x8
	TX16x64
	TX64x16
	NumTxSizes
)

var txDims = [NumTxSizes][2]int{
	TX4x4:   {4, 4},
	TX8x8:   {8, 8},
	TX16x16: {16, 16},
	TX32x32: {32, 32},
	TX64x64: {64, 64},
	TX4x8:   {4, 8},
	TX8x4:   {8, 4},
	TX8x16:  {8, 16},
	TX16x8:  {16, 8},
	TX16x32: {16, 32},
	TX32x16: {32, 16},
	TX32x64: {32, 64},
	TX64x32: {64, 32},
	TX4x16:  {4, 16},
	TX16x4:  {16, 4},
	TX8x32:  {8, 32},
	TX32x8:  {32, 8},
	TX16x64: {16, 64},
	TX64x16: {64, 16},
}

// Width returns the block width in samples.
func (s TxSize) Width() int { return txDims[s][0] }

// Height returns the block height in samples.
func (s TxSize) Height() int { return txDims[s][1] }

// CoeffCount returns the number of coefficients the transform produces.
// Dimensions of 64 contribute only their 32 lowest frequencies.
func (s TxSize) CoeffCount() int {
	return min(s.Width(), 32) * min(s.Height(), 32)
}

// CoeffWidth returns the row stride of the packed coefficient block.
func (s TxSize) CoeffWidth() int { return min(s.Width(), 32) }

func (s TxSize) String() string {
	if s < NumTxSizes {
		return fmt.Sprintf("%dx%d", s.Width(), s.Height())
	}
	return fmt.Sprintf("TxSize(%d)", uint8(s))
}

// SizeOf returns the transform size with the given dimensions.
func SizeOf(w, h int) (TxSize, bool) {
	for s := TxSize(0); s < NumTxSizes; s++ {
		if txDims[s][0] == w && txDims[s][1] == h {
			return s, true
		}
	}
	return 0, false
}
