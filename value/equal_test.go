package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeysEqual(t *testing.T) {
	require.True(t, KeysEqual(TextKey("a"), TextKey("a")))
	require.False(t, KeysEqual(TextKey("a"), TextKey("b")))
	require.False(t, KeysEqual(TextKey("a"), BinaryKey([]byte("a"))),
		"a text key and a binary key with coinciding bytes must not be equal")
	require.True(t, KeysEqual(BinaryKey([]byte{1, 2}), BinaryKey([]byte{1, 2})))
}

// stubDict is a minimal Dictionary used to exercise ValuesEqual's
// fallback-to-linear-scan path against a backing store whose Get does not
// honor content equality for binary keys.
type stubDict struct {
	pairs []Pair
}

func (d *stubDict) Kind() Kind { return KindDictionary }
func (d *stubDict) Size() int  { return len(d.pairs) }
func (d *stubDict) Get(k Key) (Value, bool) {
	// Intentionally only matches by identical pointer-free equality check
	// disabled: always report not-found to force ValuesEqual's fallback.
	return nil, false
}
func (d *stubDict) Has(k Key) bool { return false }
func (d *stubDict) Keys() []Key {
	out := make([]Key, len(d.pairs))
	for i, p := range d.pairs {
		out[i] = p.Key
	}
	return out
}
func (d *stubDict) Values() []Value {
	out := make([]Value, len(d.pairs))
	for i, p := range d.pairs {
		out[i] = p.Value
	}
	return out
}
func (d *stubDict) Entries() []Pair { return d.pairs }
func (d *stubDict) ForEach(fn func(v Value, k Key, self Dictionary) bool) {
	for _, p := range d.pairs {
		if !fn(p.Value, p.Key, d) {
			return
		}
	}
}

var _ Dictionary = (*stubDict)(nil)

func TestValuesEqualScalars(t *testing.T) {
	require.True(t, ValuesEqual(Null{}, Null{}))
	require.True(t, ValuesEqual(Bool(true), Bool(true)))
	require.False(t, ValuesEqual(Bool(true), Bool(false)))
	require.True(t, ValuesEqual(NewInteger(5), NewInteger(5)))
	require.True(t, ValuesEqual(Binary("x"), Binary("x")))
	require.True(t, ValuesEqual(Text("x"), Text("x")))
	require.False(t, ValuesEqual(Text("x"), Binary("x")))
}

func TestValuesEqualLists(t *testing.T) {
	a := List{NewInteger(1), Text("a")}
	b := List{NewInteger(1), Text("a")}
	c := List{NewInteger(1), Text("b")}
	require.True(t, ValuesEqual(a, b))
	require.False(t, ValuesEqual(a, c))
}

func TestValuesEqualDictionariesFallsBackToScan(t *testing.T) {
	a := &stubDict{pairs: []Pair{{Key: TextKey("k"), Value: Text("v")}}}
	b := &stubDict{pairs: []Pair{{Key: TextKey("k"), Value: Text("v")}}}
	require.True(t, ValuesEqual(a, b))

	c := &stubDict{pairs: []Pair{{Key: TextKey("k"), Value: Text("other")}}}
	require.False(t, ValuesEqual(a, c))
}
