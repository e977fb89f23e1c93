// Package pool provides bucketed sync.Pool instances for the scratch
// buffers of the 2-D transform pipeline. Buffers are organized by element
// count so a 4x4 block does not pin a 64x64 buffer.
package pool

import "sync"

// Size classes, in elements. The largest class holds a full 64x64 block.
const (
	Size256  = 256
	Size1K   = 1024
	Size4K   = 4096
	numSizes = 3
)

var sizes = [numSizes]int{Size256, Size1K, Size4K}

// bucketIndex returns the pool index for a given element count, or -1 when
// the request is larger than every class.
func bucketIndex(n int) int {
	switch {
	case n <= Size256:
		return 0
	case n <= Size1K:
		return 1
	case n <= Size4K:
		return 2
	default:
		return -1
	}
}

var (
	int16Pools [numSizes]sync.Pool
	int32Pools [numSizes]sync.Pool
)

func init() {
	for i := range sizes {
		sz := sizes[i]
		int16Pools[i] = sync.Pool{
			New: func() any {
				b := make([]int16, sz)
				return &b
			},
		}
		int32Pools[i] = sync.Pool{
			New: func() any {
				b := make([]int32, sz)
				return &b
			},
		}
	}
}

// GetInt16 returns an int16 slice of length n. Contents are unspecified.
// The caller must call PutInt16 when done.
func GetInt16(n int) []int16 {
	idx := bucketIndex(n)
	if idx < 0 {
		return make([]int16, n)
	}
	bp := int16Pools[idx].Get().(*[]int16)
	return (*bp)[:n]
}

// PutInt16 returns a slice obtained from GetInt16 to its pool.
func PutInt16(b []int16) {
	idx := bucketIndex(cap(b))
	if idx < 0 || cap(b) != sizes[idx] {
		return
	}
	b = b[:cap(b)]
	int16Pools[idx].Put(&b)
}

// GetInt32 returns an int32 slice of length n. Contents are unspecified.
// The caller must call PutInt32 when done.
func GetInt32(n int) []int32 {
	idx := bucketIndex(n)
	if idx < 0 {
		return make([]int32, n)
	}
	bp := int32Pools[idx].Get().(*[]int32)
	return (*bp)[:n]
}

// PutInt32 returns a slice obtained from GetInt32 to its pool.
func PutInt32(b []int32) {
	idx := bucketIndex(cap(b))
	if idx < 0 || cap(b) != sizes[idx] {
		return
	}
	b = b[:cap(b)]
	int32Pools[idx].Put(&b)
}
