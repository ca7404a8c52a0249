package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func allCodecs(t *testing.T) map[Type]Codec {
	t.Helper()
	return map[Type]Codec{
		None: NewNoOpCompressor(),
		Zstd: NewZstdCompressor(),
		S2:   NewS2Compressor(),
		LZ4:  NewLZ4Compressor(),
	}
}

func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 64)

	for typ, c := range allCodecs(t) {
		t.Run(typ.String(), func(t *testing.T) {
			compressed, err := c.Compress(payload)
			require.NoError(t, err)

			out, err := c.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, out)
		})
	}
}

func TestEmptyInput(t *testing.T) {
	for typ, c := range allCodecs(t) {
		t.Run(typ.String(), func(t *testing.T) {
			compressed, err := c.Compress(nil)
			require.NoError(t, err)

			out, err := c.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, out)
		})
	}
}

func TestCreateCodec(t *testing.T) {
	for _, typ := range []Type{None, Zstd, S2, LZ4} {
		c, err := CreateCodec(typ)
		require.NoError(t, err)
		require.NotNil(t, c)
	}

	_, err := CreateCodec(Type(99))
	require.Error(t, err)
}

func TestGetCodecReturnsSharedInstance(t *testing.T) {
	a, err := GetCodec(Zstd)
	require.NoError(t, err)
	b, err := GetCodec(Zstd)
	require.NoError(t, err)
	require.Equal(t, a, b)

	_, err = GetCodec(Type(99))
	require.Error(t, err)
}

func TestStatsRatio(t *testing.T) {
	s := Stats{OriginalSize: 100, CompressedSize: 40}
	require.InDelta(t, 0.4, s.Ratio(), 0.0001)

	zero := Stats{}
	require.Equal(t, 0.0, zero.Ratio())
}
