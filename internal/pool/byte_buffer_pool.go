// Package pool provides a pooled, growable byte buffer used by the
// allocating encoder entry points so repeated encode calls amortize
// allocations instead of paying for a fresh slice every time.
package pool

import "sync"

// DefaultSize is the initial capacity of a buffer freshly obtained from the
// pool when the caller has no better estimate yet.
const DefaultSize = 512

// ByteBuffer is a growable []byte wrapper with an amortized growth
// strategy tuned for the encoder's write-then-trim usage pattern.
type ByteBuffer struct {
	B []byte
}

var bufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, DefaultSize)}
	},
}

// Get returns a reset ByteBuffer from the pool.
func Get() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)
	bb.Reset()
	return bb
}

// Put returns bb to the pool for reuse.
func Put(bb *ByteBuffer) {
	bufferPool.Put(bb)
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer while retaining its allocated capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures the buffer can accept at least n more bytes without a
// further reallocation.
//
// For small buffers (capacity up to 4*DefaultSize), the extra room is the
// larger of n and DefaultSize, to minimize the number of reallocations
// during incremental writes. For larger buffers, it is the larger of n and
// 25% of the current capacity, to balance memory overhead against
// reallocation cost.
func (bb *ByteBuffer) Grow(n int) {
	available := cap(bb.B) - len(bb.B)
	if available >= n {
		return
	}

	growBy := DefaultSize
	if cap(bb.B) > 4*DefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}
