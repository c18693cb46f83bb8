package pool

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Appends(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.Append([]byte("ab"))
	bb.AppendString("cd")
	bb.AppendByte('e')
	require.Equal(t, "abcde", bb.String())
	require.Equal(t, 5, bb.Len())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)
}

func TestByteBuffer_AppendFill(t *testing.T) {
	bb := NewByteBuffer(4)

	bb.AppendFill('*', 5)
	require.Equal(t, "*****", bb.String())

	bb.AppendFill('x', 0)
	bb.AppendFill('x', -3)
	require.Equal(t, "*****", bb.String())

	// Fill larger than the initial capacity must grow.
	bb.Reset()
	bb.AppendFill('-', 3000)
	require.Equal(t, strings.Repeat("-", 3000), bb.String())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.AppendString("12345678")

	bb.Grow(1)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 1)
	require.Equal(t, "12345678", bb.String())

	// Growing within capacity is a no-op.
	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	var out bytes.Buffer
	m, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(5), m)
	require.Equal(t, "hello", out.String())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(8, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.AppendString("data")
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len()) // returned buffers come back reset
	p.Put(bb2)

	// Buffers above the threshold are discarded rather than retained.
	big := p.Get()
	big.AppendFill('x', 128)
	p.Put(big)

	p.Put(nil) // must not panic
}

func TestDefaultPools(t *testing.T) {
	fb := GetFormatBuffer()
	require.NotNil(t, fb)
	fb.AppendString("x")
	PutFormatBuffer(fb)

	lb := GetLineBuffer()
	require.NotNil(t, lb)
	PutLineBuffer(lb)
	PutLineBuffer(nil)
}
