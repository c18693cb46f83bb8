package pool

import (
	"io"
	"sync"
)

// FormatBufferDefaultSize is the default size of the ByteBuffer obtained from
// the format-result pool; one format call or log line rarely exceeds it.
const (
	FormatBufferDefaultSize  = 1024      // 1KiB
	FormatBufferMaxThreshold = 1024 * 64 // 64KiB
	LineBufferDefaultSize    = 256
	LineBufferMaxThreshold   = 1024 * 16 // 16KiB
)

// ByteBuffer is a growable byte buffer satisfying the append-only sink
// contract consumed by the numeric codecs and the template engine: append raw
// bytes and append a repeated fill character, both amortized O(1).
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// String copies the buffer contents into a string.
func (bb *ByteBuffer) String() string {
	return string(bb.B)
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Append appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) Append(data []byte) {
	bb.B = append(bb.B, data...)
}

// AppendString appends s to the buffer, growing it if necessary.
func (bb *ByteBuffer) AppendString(s string) {
	bb.B = append(bb.B, s...)
}

// AppendByte appends a single byte to the buffer.
func (bb *ByteBuffer) AppendByte(c byte) {
	bb.B = append(bb.B, c)
}

// AppendFill appends c repeated n times; the padding primitive used by the
// template engine's alignment step.
func (bb *ByteBuffer) AppendFill(c byte, n int) {
	if n <= 0 {
		return
	}
	bb.Grow(n)
	for i := 0; i < n; i++ {
		bb.B = append(bb.B, c)
	}
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes
// without reallocating. If the buffer has sufficient capacity, Grow does
// nothing.
//
// Small buffers grow by FormatBufferDefaultSize to minimize reallocations;
// larger ones grow by 25% of current capacity to balance memory usage and
// reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := FormatBufferDefaultSize
	if cap(bb.B) > 4*FormatBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally. The pool can be configured with a maximum
// size threshold to avoid retaining overly large buffers that could lead to
// memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
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
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	formatDefaultPool = NewByteBufferPool(FormatBufferDefaultSize, FormatBufferMaxThreshold)
	lineDefaultPool   = NewByteBufferPool(LineBufferDefaultSize, LineBufferMaxThreshold)
)

// GetFormatBuffer retrieves a ByteBuffer from the default format-result pool.
func GetFormatBuffer() *ByteBuffer {
	return formatDefaultPool.Get()
}

// PutFormatBuffer returns a ByteBuffer to the default format-result pool.
func PutFormatBuffer(bb *ByteBuffer) {
	formatDefaultPool.Put(bb)
}

// GetLineBuffer retrieves a ByteBuffer from the default line pool.
func GetLineBuffer() *ByteBuffer {
	return lineDefaultPool.Get()
}

// PutLineBuffer returns a ByteBuffer to the default line pool.
func PutLineBuffer(bb *ByteBuffer) {
	lineDefaultPool.Put(bb)
}
