package codec

import (
	"testing"

	"github.com/planetarium/bencodex-go/value"
	"github.com/stretchr/testify/require"
)

func TestWithSpeculativeProducesIdenticalBytes(t *testing.T) {
	v := value.Text("hello world, this text is long enough to need more than one length digit")

	plain, err := Encode(v)
	require.NoError(t, err)

	buf := make([]byte, len(plain))
	res, err := EncodeInto(v, buf, WithSpeculative(true))
	require.NoError(t, err)
	require.True(t, res.Complete)
	require.Equal(t, plain, buf)
}

func TestDefaultConfigs(t *testing.T) {
	ec := defaultEncodeConfig()
	require.Equal(t, OnDuplicateError, ec.onDuplicateKeys)
	require.False(t, ec.speculative)

	dc := defaultDecodeConfig()
	require.Equal(t, OnInvalidKeyOrderError, dc.onInvalidKeyOrder)
	require.NotNil(t, dc.dictConstructor)
}
