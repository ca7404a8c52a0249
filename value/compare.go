package value

import (
	"bytes"
	"unicode/utf16"
)

// CompareKeys implements the Bencodex key total order (spec.md §3):
//
//  1. All Binary keys precede all Text keys.
//  2. Between two Binary keys: lexicographic byte order, shorter prefix
//     precedes the longer string it prefixes.
//  3. Between two Text keys: ordinal comparison of the UTF-16 code unit
//     sequence.
//
// It returns -1, 0, or 1, matching the convention of bytes.Compare.
func CompareKeys(a, b Key) int {
	if a.kind != b.kind {
		if a.kind == KeyKindBinary {
			return -1
		}
		return 1
	}

	if a.kind == KeyKindBinary {
		return bytes.Compare(a.bin, b.bin)
	}

	return compareUTF16(a.text, b.text)
}

// compareUTF16 compares two strings by their UTF-16 code unit sequence,
// left to right, the ordering Bencodex specifies for text keys. This
// differs from a raw byte-wise UTF-8 comparison for strings containing
// characters outside the Basic Multilingual Plane.
func compareUTF16(a, b string) int {
	au := utf16.Encode([]rune(a))
	bu := utf16.Encode([]rune(b))

	n := len(au)
	if len(bu) < n {
		n = len(bu)
	}

	for i := 0; i < n; i++ {
		if au[i] != bu[i] {
			if au[i] < bu[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(au) < len(bu):
		return -1
	case len(au) > len(bu):
		return 1
	default:
		return 0
	}
}
