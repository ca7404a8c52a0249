// Package bytesx provides the leaf byte-level primitives the rest of
// bencodex-go builds on: slice equality/comparison and the ASCII
// natural-number prefix parser used for Bencodex length and integer
// literals.
package bytesx

import (
	"bytes"
	"math/big"
)

// Equal reports whether a and b have the same length and identical bytes.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Compare returns -1, 0, or 1 for the lexicographic order of a and b,
// where a shorter string that is a prefix of a longer one precedes it.
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// ParseNaturalU64 reads the longest prefix of ASCII digits ('0'..'9') from
// buf, greedily, into a uint64. It does not consume a terminating
// delimiter. An empty digit prefix fails with read == 0.
//
// ok reports whether at least one digit was consumed and the magnitude fit
// in a uint64 without overflow; on overflow, read still reports how many
// digit bytes were consumed (the caller can fall back to ParseNaturalBig).
func ParseNaturalU64(buf []byte) (read int, val uint64, ok bool) {
	n := 0
	for n < len(buf) && buf[n] >= '0' && buf[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, 0, false
	}

	var v uint64
	for i := 0; i < n; i++ {
		d := uint64(buf[i] - '0')
		if v > (1<<64-1-d)/10 {
			return n, 0, false
		}
		v = v*10 + d
	}

	return n, v, true
}

// ParseNaturalBig reads the longest prefix of ASCII digits from buf into an
// arbitrary-precision non-negative integer. An empty digit prefix fails
// with read == 0.
func ParseNaturalBig(buf []byte) (read int, val *big.Int, ok bool) {
	n := 0
	for n < len(buf) && buf[n] >= '0' && buf[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, nil, false
	}

	v := new(big.Int)
	ten := big.NewInt(10)
	digit := new(big.Int)
	for i := 0; i < n; i++ {
		digit.SetInt64(int64(buf[i] - '0'))
		v.Mul(v, ten)
		v.Add(v, digit)
	}

	return n, v, true
}

// DigitCount returns the number of decimal digits in n's canonical
// representation (n == 0 has one digit).
func DigitCount(n uint64) int {
	if n == 0 {
		return 1
	}
	count := 0
	for n > 0 {
		count++
		n /= 10
	}
	return count
}

// FormatDecimal renders n as its minimal, leading-zero-free ASCII decimal
// representation (n == 0 renders as "0"). Each call returns a newly
// allocated slice.
func FormatDecimal(n uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	if n == 0 {
		i--
		tmp[i] = '0'
	} else {
		for n > 0 {
			i--
			tmp[i] = byte('0' + n%10)
			n /= 10
		}
	}
	return tmp[i:]
}
