package value

import "bytes"

// KeysEqual reports whether two keys are equal: same variant and the same
// contents (byte-equal for Binary, string-equal for Text). A Text key and a
// Binary key are never equal, even if their byte representations coincide.
func KeysEqual(a, b Key) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == KeyKindBinary {
		return bytes.Equal(a.bin, b.bin)
	}
	return a.text == b.text
}

// ValuesEqual reports whether two Values are deeply, structurally equal.
//
// Dictionaries compare equal when they have the same size and, for every
// key in a, b has a Key-equal key whose Value is itself ValuesEqual. This
// holds even when a and b are backed by different Dictionary
// implementations, which is why lookup falls back to a linear scan over
// b.Entries() rather than trusting b.Get to honor content equality for
// binary keys (spec.md §4.6).
func ValuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		bv, _ := b.(Bool)
		return av == bv
	case Integer:
		bv, _ := b.(Integer)
		return av.BigInt().Cmp(bv.BigInt()) == 0
	case Binary:
		bv, _ := b.(Binary)
		return bytes.Equal(av, bv)
	case Text:
		bv, _ := b.(Text)
		return av == bv
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !ValuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Dictionary:
		bv, ok := b.(Dictionary)
		if !ok || av.Size() != bv.Size() {
			return false
		}
		return dictionariesEqual(av, bv)
	default:
		return false
	}
}

func dictionariesEqual(a, b Dictionary) bool {
	equal := true
	a.ForEach(func(av Value, ak Key, _ Dictionary) bool {
		bv, ok := b.Get(ak)
		if !ok {
			// The backing store's Get may not honor content equality for
			// binary keys; fall back to a linear scan before giving up.
			bv, ok = lookupByScan(b, ak)
		}
		if !ok || !ValuesEqual(av, bv) {
			equal = false
			return false
		}
		return true
	})

	return equal
}

func lookupByScan(d Dictionary, k Key) (Value, bool) {
	for _, p := range d.Entries() {
		if KeysEqual(p.Key, k) {
			return p.Value, true
		}
	}
	return nil, false
}
