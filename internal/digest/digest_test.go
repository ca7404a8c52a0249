package digest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShort(t *testing.T) {
	require.Equal(t, "abc", Short([]byte("abc")))
	require.Equal(t, "", Short(nil))
}

func TestFingerprint(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		a := Fingerprint([]byte("hello world"))
		b := Fingerprint([]byte("hello world"))
		require.Equal(t, a, b)
	})

	t.Run("differs for different input", func(t *testing.T) {
		a := Fingerprint([]byte("hello"))
		b := Fingerprint([]byte("world"))
		require.NotEqual(t, a, b)
	})
}
