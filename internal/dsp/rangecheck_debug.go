//go:build txfmdebug

package dsp

import (
	"fmt"
	"math"
)

const RangeChecks = true

// checkWrap panics when a butterfly product sum does not fit the 32-bit
// working width.
func checkWrap(v int64) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		panic(fmt.Sprintf("dsp: butterfly sum %d overflows int32", v))
	}
}

// checkRange panics when a value of buf does not fit a signed integer of
// the given bit width.
func checkRange(buf []int32, bits int8) {
	lo := -(int64(1) << (bits - 1))
	hi := int64(1)<<(bits-1) - 1
	for i, v := range buf {
		if int64(v) < lo || int64(v) > hi {
			panic(fmt.Sprintf("dsp: value %d at %d exceeds %d-bit range", v, i, bits))
		}
	}
}
