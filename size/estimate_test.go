package size

import (
	"math/big"
	"testing"

	"github.com/planetarium/bencodex-go/dict"
	"github.com/planetarium/bencodex-go/value"
	"github.com/stretchr/testify/require"
)

func TestEstimateAtoms(t *testing.T) {
	n, err := Estimate(value.Null{}, BestEffort)
	require.NoError(t, err)
	require.Equal(t, 1, n) // "n"

	n, err = Estimate(value.Bool(true), BestEffort)
	require.NoError(t, err)
	require.Equal(t, 1, n) // "t"
}

func TestEstimateInteger(t *testing.T) {
	cases := []struct {
		name string
		n    value.Integer
		want int
	}{
		{"zero", value.NewInteger(0), len("i0e")},
		{"positive", value.NewInteger(42), len("i42e")},
		{"negative", value.NewInteger(-42), len("i-42e")},
	}
	for _, c := range cases {
		got, err := Estimate(c.n, BestEffort)
		require.NoError(t, err)
		require.Equal(t, c.want, got, c.name)
	}

	big, _ := new(big.Int).SetString("18446744073709551616", 10)
	got, err := Estimate(value.NewBigInteger(big), BestEffort)
	require.NoError(t, err)
	require.Equal(t, len("i18446744073709551616e"), got)
}

func TestEstimateBinary(t *testing.T) {
	got, err := Estimate(value.Binary("hello"), BestEffort)
	require.NoError(t, err)
	require.Equal(t, len("5:hello"), got)
}

func TestEstimateText(t *testing.T) {
	t.Run("ascii, BestEffort is exact", func(t *testing.T) {
		got, err := Estimate(value.Text("hello"), BestEffort)
		require.NoError(t, err)
		require.Equal(t, len("u5:hello"), got)
	})

	t.Run("multi-byte UTF-8, BestEffort uses real byte length", func(t *testing.T) {
		s := "café" // 'é' is 2 bytes in UTF-8
		got, err := Estimate(value.Text(s), BestEffort)
		require.NoError(t, err)
		require.Equal(t, 2+1+len(s), got) // 'u' + digit('5') + ':' + 5 bytes
	})

	t.Run("FastGuess is a sound upper bound", func(t *testing.T) {
		s := "café"
		exact, _ := Estimate(value.Text(s), BestEffort)
		guess, _ := Estimate(value.Text(s), FastGuess)
		require.GreaterOrEqual(t, guess, exact)
	})

	t.Run("FastGuess stays sound for astral-plane runes", func(t *testing.T) {
		// U+1F600 is one rune but two UTF-16 code units (a surrogate
		// pair) and 4 UTF-8 bytes; counting runes instead of code units
		// would underestimate.
		s := "\U0001F600"
		exact, _ := Estimate(value.Text(s), BestEffort)
		guess, _ := Estimate(value.Text(s), FastGuess)
		require.GreaterOrEqual(t, guess, exact)
	})
}

func TestEstimateListAndDict(t *testing.T) {
	lst := value.List{value.NewInteger(1), value.Text("a")}
	got, err := Estimate(lst, BestEffort)
	require.NoError(t, err)
	require.Equal(t, len("li1eu1:ae"), got)

	d, err := dict.New([]value.Pair{
		{Key: value.TextKey("a"), Value: value.NewInteger(1)},
	})
	require.NoError(t, err)
	got, err = Estimate(d, BestEffort)
	require.NoError(t, err)
	require.Equal(t, len("du1:ai1ee"), got)
}
