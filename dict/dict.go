// Package dict implements the default content-addressed Dictionary:
// a three-bucket store (text keys, short binary keys, long binary keys)
// that hashes binary keys by content rather than by reference, with a fast
// path for short keys and a linear-scan fallback for long ones
// (spec.md §4.2).
package dict

import (
	"github.com/planetarium/bencodex-go/errs"
	"github.com/planetarium/bencodex-go/internal/digest"
	"github.com/planetarium/bencodex-go/value"
)

// ShortBinaryThreshold is the byte length (T in spec.md §4.2) below which a
// Binary key is stored in the short-binary bucket; at or above it, the key
// falls into the long-binary bucket's linear scan.
const ShortBinaryThreshold = 32

type shortEntry struct {
	key value.Key
	val value.Value
}

type longEntry struct {
	key         value.Key
	fingerprint uint64
	val         value.Value
}

// Dict is the default Dictionary implementation.
type Dict struct {
	textOrder []string
	textMap   map[string]value.Value

	shortOrder []string
	shortMap   map[string]shortEntry

	longEntries []longEntry

	size int
}

var _ value.Dictionary = (*Dict)(nil)

// New builds a Dict from a finite sequence of (Key, Value) pairs.
// Duplicate keys (under value.KeysEqual) resolve deterministically:
// the last pair in the sequence wins (spec.md §3 "Invariants").
//
// New never fails on the inputs bencodex-go itself produces (the decoder
// always hands it well-typed Key/Value pairs); it returns
// errs.ErrInvalidPair only when a pair carries a key whose Kind is neither
// Binary nor Text, which cannot happen through value.Key's exported
// constructors but is checked defensively since Dict implements a public
// constructor contract (spec.md §4.2 "Failure modes at construction").
func New(pairs []value.Pair) (*Dict, error) {
	d := &Dict{
		textMap:  make(map[string]value.Value),
		shortMap: make(map[string]shortEntry),
	}

	for _, p := range pairs {
		if err := d.insert(p.Key, p.Value); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *Dict) insert(k value.Key, v value.Value) error {
	switch k.Kind() {
	case value.KeyKindText:
		d.insertText(k.Text(), v)
	case value.KeyKindBinary:
		d.insertBinary(k.Binary(), v)
	default:
		return errs.ErrInvalidPair
	}
	return nil
}

func (d *Dict) insertText(s string, v value.Value) {
	if _, exists := d.textMap[s]; !exists {
		d.textOrder = append(d.textOrder, s)
		d.size++
	}
	d.textMap[s] = v
}

func (d *Dict) insertBinary(b []byte, v value.Value) {
	if len(b) < ShortBinaryThreshold {
		digestKey := digest.Short(b)
		if _, exists := d.shortMap[digestKey]; !exists {
			d.shortOrder = append(d.shortOrder, digestKey)
			d.size++
		}
		d.shortMap[digestKey] = shortEntry{key: value.BinaryKey(b), val: v}
		return
	}

	fp := digest.Fingerprint(b)
	for i := range d.longEntries {
		e := &d.longEntries[i]
		if e.fingerprint == fp && value.KeysEqual(e.key, value.BinaryKey(b)) {
			e.val = v
			return
		}
	}

	d.longEntries = append(d.longEntries, longEntry{
		key:         value.BinaryKey(b),
		fingerprint: fp,
		val:         v,
	})
	d.size++
}

// Kind implements value.Value.
func (d *Dict) Kind() value.Kind { return value.KindDictionary }

// Size implements value.Dictionary.
func (d *Dict) Size() int { return d.size }

// Get implements value.Dictionary.
func (d *Dict) Get(k value.Key) (value.Value, bool) {
	switch k.Kind() {
	case value.KeyKindText:
		v, ok := d.textMap[k.Text()]
		return v, ok
	case value.KeyKindBinary:
		b := k.Binary()
		if len(b) < ShortBinaryThreshold {
			e, ok := d.shortMap[digest.Short(b)]
			return e.val, ok
		}
		fp := digest.Fingerprint(b)
		for _, e := range d.longEntries {
			if e.fingerprint == fp && value.KeysEqual(e.key, k) {
				return e.val, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

// Has implements value.Dictionary.
func (d *Dict) Has(k value.Key) bool {
	_, ok := d.Get(k)
	return ok
}

// Keys implements value.Dictionary.
func (d *Dict) Keys() []value.Key {
	keys := make([]value.Key, 0, d.size)
	d.ForEach(func(_ value.Value, k value.Key, _ value.Dictionary) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values implements value.Dictionary.
func (d *Dict) Values() []value.Value {
	vals := make([]value.Value, 0, d.size)
	d.ForEach(func(v value.Value, _ value.Key, _ value.Dictionary) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}

// Entries implements value.Dictionary.
func (d *Dict) Entries() []value.Pair {
	pairs := make([]value.Pair, 0, d.size)
	d.ForEach(func(v value.Value, k value.Key, _ value.Dictionary) bool {
		pairs = append(pairs, value.Pair{Key: k, Value: v})
		return true
	})
	return pairs
}

// ForEach implements value.Dictionary. Iteration order is: the text bucket
// in insertion order, then the short-binary bucket in insertion order,
// then the long-binary bucket in insertion order. This order is an
// implementation detail, not the canonical Bencodex key order — the
// encoder re-sorts independently (spec.md §3 "Dictionary").
func (d *Dict) ForEach(fn func(v value.Value, k value.Key, self value.Dictionary) bool) {
	for _, s := range d.textOrder {
		if !fn(d.textMap[s], value.TextKey(s), d) {
			return
		}
	}
	for _, digestKey := range d.shortOrder {
		e := d.shortMap[digestKey]
		if !fn(e.val, e.key, d) {
			return
		}
	}
	for _, e := range d.longEntries {
		if !fn(e.val, e.key, d) {
			return
		}
	}
}
