// Package pool provides size-classed byte buffers for message sized scratch space.
package pool

import (
	"bytes"
	"math/bits"
	"sync"
)

const (
	// number of size classes, the largest one is 1MiB.
	num     = 21
	maxsize = 1 << (num - 1)

	// bytes.Buffers bigger than this are left to the GC.
	maxBytesBuf = 64 << 10
)

var (
	sizes [num]int
	pools [num]sync.Pool

	bytesBufPool = sync.Pool{
		New: func() any { return &bytes.Buffer{} },
	}
)

func init() {
	for i := 0; i < num; i++ {
		size := 1 << i
		sizes[i] = size
		pools[i].New = func() any {
			return make([]byte, size)
		}
	}
}

// class returns the index of the smallest size class holding size bytes.
func class(size int) int {
	i := bits.Len32(uint32(size)) - 1
	if sizes[i] < size {
		i++
	}
	return i
}

// GetBuffer gets a buffer of len size from the pool. Sizes outside [1, maxsize]
// are allocated directly.
func GetBuffer(size int) []byte {
	if size >= 1 && size <= maxsize {
		return pools[class(size)].Get().([]byte)[:size]
	}
	return make([]byte, size)
}

// PutBuffer returns a buffer obtained by GetBuffer.
func PutBuffer(buf []byte) {
	if size := cap(buf); size >= 1 && size <= maxsize {
		if i := bits.Len32(uint32(size)) - 1; sizes[i] == size {
			pools[i].Put(buf)
		}
	}
}

// GetBytesBuffer returns an empty bytes.Buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	return bytesBufPool.Get().(*bytes.Buffer)
}

// PutBytesBuffer resets buf and returns it to the pool.
func PutBytesBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= maxBytesBuf {
		buf.Reset()
		bytesBufPool.Put(buf)
	}
}
