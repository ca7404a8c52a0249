package value

// Pair is a single (Key, Value) entry, the unit the Dictionary constructor
// and iteration methods exchange.
type Pair struct {
	Key   Key
	Value Value
}

// Dictionary is the capability set every dictionary-like container must
// expose to the encoder and decoder (spec.md §3, §9 "Dynamic dispatch over
// dictionary implementations"). It is deliberately small so that callers
// may plug in their own backing store via codec's DictionaryConstructor
// option: the encoder and decoder never type-assert down to a concrete
// dictionary type, they only call through this interface.
type Dictionary interface {
	Value

	// Size returns the number of distinct keys.
	Size() int

	// Get returns the value associated with k and whether it was present.
	Get(k Key) (Value, bool)

	// Has reports whether k is present.
	Has(k Key) bool

	// Keys returns the keys in the dictionary's own iteration order. This
	// order is not guaranteed to be canonical (binary-before-text, sorted)
	// order; the encoder re-sorts independently.
	Keys() []Key

	// Values returns the values in the same order as Keys.
	Values() []Value

	// Entries returns the (Key, Value) pairs in the dictionary's own
	// iteration order.
	Entries() []Pair

	// ForEach invokes fn for every entry in iteration order, passing the
	// value, the key, and the dictionary itself. Iteration stops early if
	// fn returns false.
	ForEach(fn func(v Value, k Key, self Dictionary) bool)
}
