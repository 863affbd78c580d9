// Package pool provides reusable scratch buffers for the codec and container
// packages so that repeated encode/decode calls avoid re-allocating large
// working arrays. Nothing here is a module-level mutable singleton shared
// across logical operations: every Get is paired with a Put (or a cleanup
// closure) that returns the buffer to its pool, so concurrent callers never
// observe each other's state.
package pool

import (
	"io"
	"sync"
)

// ByteBufferDefaultSize is the default capacity of a ByteBuffer drawn from
// the default pool. It equals EC_MAX_BUFFER, so it holds one maximum-sized
// e-compression block; container framing on top of that makes Grow
// reallocate.
const (
	ByteBufferDefaultSize  = 1024 * 16  // 16KiB
	ByteBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a growable byte slice wrapper, reused across container
// compress/decompress calls to avoid per-call allocation.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ByteBufferDefaultSize
	if cap(bb.B) > 4*ByteBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers to minimize allocations.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}
	bb.Reset()
	bbp.pool.Put(bb)
}

var defaultBytePool = NewByteBufferPool(ByteBufferDefaultSize, ByteBufferMaxThreshold)

// GetByteBuffer retrieves a ByteBuffer from the default pool.
func GetByteBuffer() *ByteBuffer {
	return defaultBytePool.Get()
}

// PutByteBuffer returns a ByteBuffer to the default pool.
func PutByteBuffer(bb *ByteBuffer) {
	defaultBytePool.Put(bb)
}
