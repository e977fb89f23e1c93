//go:build !txfmdebug

package dsp

// RangeChecks reports whether intermediate bit-budget checks are compiled in.
// Build with -tags txfmdebug to enable them.
const RangeChecks = false

func checkWrap(int64) {}

func checkRange([]int32, int8) {}
