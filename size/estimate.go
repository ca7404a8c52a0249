// Package size implements the Bencodex size estimator: a pure recursive
// walk over a value tree that returns a byte count guaranteed to be at
// least the actual encoded size, used by the allocating encoder to
// presize its output buffer in a single pass (spec.md §4.3).
package size

import (
	"math/big"
	"unicode/utf16"

	"github.com/planetarium/bencodex-go/errs"
	"github.com/planetarium/bencodex-go/internal/bytesx"
	"github.com/planetarium/bencodex-go/value"
)

// Accuracy selects the estimator's precision/throughput tradeoff.
type Accuracy uint8

const (
	// BestEffort computes the exact encoded size whenever the value tree
	// has no duplicate dictionary keys (spec.md testable property 4).
	BestEffort Accuracy = iota

	// FastGuess skips precise UTF-8 length computation for text values,
	// using an upper bound of 3 bytes per code unit instead. The result
	// is still a sound upper bound, just looser.
	FastGuess
)

// Estimate returns a byte count that is >= the size Encode would produce
// for v, and exactly equal to it under BestEffort accuracy when v's
// dictionaries contain no duplicate keys.
func Estimate(v value.Value, accuracy Accuracy) (int, error) {
	switch vv := v.(type) {
	case value.Null, nil:
		return 1, nil
	case value.Bool:
		return 1, nil
	case value.Integer:
		n := vv.BigInt()
		digits := len(new(big.Int).Abs(n).String())
		extra := 2 // 'i' prefix + 'e' suffix
		if n.Sign() < 0 {
			extra++
		}
		return extra + digits, nil
	case value.Binary:
		n := len(vv)
		return bytesx.DigitCount(uint64(n)) + 1 + n, nil
	case value.Text:
		return estimateText(string(vv), accuracy)
	case value.List:
		total := 2 // 'l' + 'e'
		for _, child := range vv {
			s, err := Estimate(child, accuracy)
			if err != nil {
				return 0, err
			}
			total += s
		}
		return total, nil
	case value.Dictionary:
		total := 2 // 'd' + 'e'
		var walkErr error
		vv.ForEach(func(val value.Value, k value.Key, _ value.Dictionary) bool {
			ks, err := Estimate(k.ToValue(), accuracy)
			if err != nil {
				walkErr = err
				return false
			}
			vs, err := Estimate(val, accuracy)
			if err != nil {
				walkErr = err
				return false
			}
			total += ks + vs
			return true
		})
		if walkErr != nil {
			return 0, walkErr
		}
		return total, nil
	default:
		return 0, errs.ErrInvalidValueType
	}
}

func estimateText(s string, accuracy Accuracy) (int, error) {
	var byteLen int
	if accuracy == FastGuess {
		// Upper bound per spec.md §4.3: 3 bytes per UTF-16 code unit, not
		// per rune — a rune outside the BMP is one rune but two code units.
		byteLen = 3 * len(utf16.Encode([]rune(s)))
	} else {
		byteLen = len(s)
	}

	// 'u' prefix + digits(byteLen) + ':' + byteLen bytes
	return 2 + bytesx.DigitCount(uint64(byteLen)) + byteLen, nil
}
