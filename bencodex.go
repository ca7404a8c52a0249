// Package bencodex provides a compact, deterministic binary serialization
// format for trees of null, boolean, arbitrary-precision integer, binary,
// text, list, and dictionary values.
//
// # Core features
//
//   - Canonical, deterministic output: any two encoders that agree on the
//     same value tree produce byte-identical output, and dictionary keys are
//     always emitted in a well-defined total order.
//   - Arbitrary-precision integers, backed by math/big, so values beyond
//     the range of a machine word round-trip exactly.
//   - A resumable, non-panicking buffer-oriented codec: EncodeInto/DecodeValue
//     never write or read past the caller's buffer and report how far they got.
//   - A pluggable, content-addressed Dictionary implementation with a
//     positioned decode error taxonomy for malformed input.
//
// # Basic usage
//
// Encoding a value tree:
//
//	import "github.com/planetarium/bencodex-go"
//
//	d, _ := bencodex.NewDictionary([]bencodex.Pair{
//	    {Key: bencodex.TextKey("name"), Value: bencodex.Text("hello")},
//	    {Key: bencodex.TextKey("count"), Value: bencodex.NewInteger(42)},
//	})
//	out, err := bencodex.Encode(d)
//
// Decoding it back:
//
//	v, err := bencodex.Decode(out)
//	dict := v.(bencodex.Dictionary)
//	name, _ := dict.Get(bencodex.TextKey("name"))
//
// # Package structure
//
// This package is a convenience facade over codec, value, and dict.
// For fine-grained control over duplicate-key policy, dictionary ordering
// enforcement, or a custom dictionary backing store, use the codec and
// dict packages directly.
package bencodex

import (
	"github.com/planetarium/bencodex-go/codec"
	"github.com/planetarium/bencodex-go/dict"
	"github.com/planetarium/bencodex-go/value"
)

// Re-exported value algebra, so callers need import only this package for
// everyday use.
type (
	Value      = value.Value
	Kind       = value.Kind
	Null       = value.Null
	Bool       = value.Bool
	Integer    = value.Integer
	Binary     = value.Binary
	Text       = value.Text
	List       = value.List
	Key        = value.Key
	KeyKind    = value.KeyKind
	Pair       = value.Pair
	Dictionary = value.Dictionary
)

var (
	NewInteger    = value.NewInteger
	NewBigInteger = value.NewBigInteger
	BinaryKey     = value.BinaryKey
	TextKey       = value.TextKey
	CompareKeys   = value.CompareKeys
)

// NewDictionary builds the default content-addressed Dictionary from a
// finite sequence of (Key, Value) pairs. The last pair wins for any
// repeated key.
func NewDictionary(pairs []Pair) (Dictionary, error) {
	return dict.New(pairs)
}

// Re-exported codec options and types.
type (
	Result                = codec.Result
	EncodeOption          = codec.EncodeOption
	DecodeOption          = codec.DecodeOption
	DuplicateKeyPolicy    = codec.DuplicateKeyPolicy
	InvalidKeyOrderPolicy = codec.InvalidKeyOrderPolicy
	DictionaryConstructor = codec.DictionaryConstructor
)

const (
	OnDuplicateError    = codec.OnDuplicateError
	OnDuplicateUseFirst = codec.OnDuplicateUseFirst
	OnDuplicateUseLast  = codec.OnDuplicateUseLast

	OnInvalidKeyOrderError  = codec.OnInvalidKeyOrderError
	OnInvalidKeyOrderIgnore = codec.OnInvalidKeyOrderIgnore
)

var (
	WithOnDuplicateKeys       = codec.WithOnDuplicateKeys
	WithSpeculative           = codec.WithSpeculative
	WithOnInvalidKeyOrder     = codec.WithOnInvalidKeyOrder
	WithDictionaryConstructor = codec.WithDictionaryConstructor
)

// Encode computes the canonical encoded size of v, allocates a single
// output buffer, writes v into it, and returns the result.
//
// Example:
//
//	out, err := bencodex.Encode(bencodex.Text("hello"))
func Encode(v Value, opts ...EncodeOption) ([]byte, error) {
	return codec.Encode(v, opts...)
}

// EncodeInto writes v into buf, writing as much as fits without panicking
// on a short buffer. Check Result.Complete and retry with a larger buffer
// if it is false.
func EncodeInto(v Value, buf []byte, opts ...EncodeOption) (Result, error) {
	return codec.EncodeInto(v, buf, opts...)
}

// EncodeKeyInto writes a single Key into buf under the same contract as
// EncodeInto.
func EncodeKeyInto(k Key, buf []byte, opts ...EncodeOption) (Result, error) {
	return codec.EncodeKeyInto(k, buf, opts...)
}

// Decode parses buf as exactly one Value, requiring the buffer to be fully
// consumed.
//
// Example:
//
//	v, err := bencodex.Decode(out)
func Decode(buf []byte, opts ...DecodeOption) (Value, error) {
	return codec.Decode(buf, opts...)
}

// DecodeValue parses a single Value from the start of buf without
// requiring the whole buffer to be consumed, reporting how many bytes the
// value occupied.
func DecodeValue(buf []byte, opts ...DecodeOption) (read int, v Value, err error) {
	return codec.DecodeValue(buf, opts...)
}

// DecodeKey parses a single Key from the start of buf.
func DecodeKey(buf []byte) (read int, k Key, err error) {
	return codec.DecodeKey(buf)
}
