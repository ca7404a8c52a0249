package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPut(t *testing.T) {
	bb := Get()
	require.Equal(t, 0, bb.Len())
	bb.MustWrite([]byte("hello"))
	require.Equal(t, "hello", string(bb.Bytes()))

	Put(bb)

	bb2 := Get()
	require.Equal(t, 0, bb2.Len())
}

func TestGrow(t *testing.T) {
	t.Run("no-op when capacity already sufficient", func(t *testing.T) {
		bb := &ByteBuffer{B: make([]byte, 0, 100)}
		bb.Grow(10)
		require.GreaterOrEqual(t, cap(bb.B), 10)
	})

	t.Run("grows to fit a large request", func(t *testing.T) {
		bb := &ByteBuffer{}
		bb.Grow(10_000)
		require.GreaterOrEqual(t, cap(bb.B), 10_000)
	})
}

func TestMustWrite(t *testing.T) {
	bb := &ByteBuffer{}
	bb.MustWrite([]byte("abc"))
	bb.MustWrite([]byte("def"))
	require.Equal(t, "abcdef", string(bb.Bytes()))
}

func TestReset(t *testing.T) {
	bb := &ByteBuffer{}
	bb.MustWrite([]byte("abc"))
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), 3)
}
