package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareKeysBinaryBeforeText(t *testing.T) {
	require.Equal(t, -1, CompareKeys(BinaryKey([]byte("z")), TextKey("a")))
	require.Equal(t, 1, CompareKeys(TextKey("a"), BinaryKey([]byte("z"))))
}

func TestCompareKeysBinaryLexicographic(t *testing.T) {
	require.Equal(t, -1, CompareKeys(BinaryKey([]byte("ab")), BinaryKey([]byte("abc"))))
	require.Equal(t, 0, CompareKeys(BinaryKey([]byte("ab")), BinaryKey([]byte("ab"))))
	require.Equal(t, 1, CompareKeys(BinaryKey([]byte("b")), BinaryKey([]byte("a"))))
}

func TestCompareKeysTextUTF16Ordinal(t *testing.T) {
	t.Run("ascii ordering", func(t *testing.T) {
		require.Equal(t, -1, CompareKeys(TextKey("a"), TextKey("b")))
		require.Equal(t, 0, CompareKeys(TextKey("abc"), TextKey("abc")))
	})

	t.Run("shorter prefix precedes the longer string", func(t *testing.T) {
		require.Equal(t, -1, CompareKeys(TextKey("ab"), TextKey("abc")))
	})

	t.Run("surrogate pairs order by UTF-16 code unit, not rune value", func(t *testing.T) {
		// U+FFFF encodes as a single BMP code unit 0xFFFF; U+10000 encodes
		// as the surrogate pair 0xD800,0xDC00. Ordinal UTF-16 comparison
		// places U+10000 before U+FFFF because 0xD800 < 0xFFFF, even though
		// U+10000 > U+FFFF as a code point.
		bmp := TextKey(string(rune(0xFFFF)))
		supplementary := TextKey(string(rune(0x10000)))
		require.Equal(t, -1, CompareKeys(supplementary, bmp))
	})
}
