// Package errs defines the bencodex-go error taxonomy: the encoder's
// invariant-violation sentinels and the decoder's positioned DecodeError.
package errs

import (
	"errors"
	"fmt"
)

// Encoder-side invariant violations (spec.md §4.4, §7). These are
// programmer errors: they abort the current call with no partial
// observable state beyond bytes already written to the caller's buffer.
var (
	// ErrInvalidValueType is returned when a node in the value tree is not
	// a member of the Bencodex value grammar (for example, a
	// floating-point number).
	ErrInvalidValueType = errors.New("bencodex: value is not a valid Bencodex value")

	// ErrInvalidKeyType is returned when a dictionary key is neither Text
	// nor Binary.
	ErrInvalidKeyType = errors.New("bencodex: dictionary key is neither text nor binary")

	// ErrInvalidEntryShape is returned when a dictionary entry iterator
	// yields something other than a (key, value) pair.
	ErrInvalidEntryShape = errors.New("bencodex: dictionary entry is not a (key, value) pair")

	// ErrDuplicateKey is returned when two dictionary entries are
	// Key-equal and the encoder's duplicate-key policy is "error".
	ErrDuplicateKey = errors.New("bencodex: duplicate dictionary key")

	// ErrInvalidPair is returned by a Dictionary constructor when an input
	// pair is malformed (not a 2-element (key, value) pair, or a non-Key
	// value in the key slot).
	ErrInvalidPair = errors.New("bencodex: invalid (key, value) pair")
)

// DecodeErrorKind enumerates the decoder's data-error categories
// (spec.md §7).
type DecodeErrorKind uint8

const (
	KindUnexpectedEndOfInput DecodeErrorKind = iota
	KindUnexpectedByte
	KindInvalidInteger
	KindNoIntegerSuffix
	KindNoListSuffix
	KindNoDictionarySuffix
	KindUnorderedDictionaryKeys
	KindDuplicateDictionaryKeys
	KindNoBinaryLength
	KindNoBinaryDelimiter
	KindOverrunBinaryLength
	KindNoTextLength
	KindNoTextDelimiter
	KindOverrunTextLength
)

func (k DecodeErrorKind) String() string {
	switch k {
	case KindUnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case KindUnexpectedByte:
		return "UnexpectedByte"
	case KindInvalidInteger:
		return "InvalidInteger"
	case KindNoIntegerSuffix:
		return "NoIntegerSuffix"
	case KindNoListSuffix:
		return "NoListSuffix"
	case KindNoDictionarySuffix:
		return "NoDictionarySuffix"
	case KindUnorderedDictionaryKeys:
		return "UnorderedDictionaryKeys"
	case KindDuplicateDictionaryKeys:
		return "DuplicateDictionaryKeys"
	case KindNoBinaryLength:
		return "NoBinaryLength"
	case KindNoBinaryDelimiter:
		return "NoBinaryDelimiter"
	case KindOverrunBinaryLength:
		return "OverRunBinaryLength"
	case KindNoTextLength:
		return "NoTextLength"
	case KindNoTextDelimiter:
		return "NoTextDelimiter"
	case KindOverrunTextLength:
		return "OverRunTextLength"
	default:
		return "Unknown"
	}
}

// DecodeError is the error the decoder returns for every data error. It
// carries the exact byte offset at which parsing stopped, per spec.md §7
// and the decoder position invariant in §8.
type DecodeError struct {
	Kind DecodeErrorKind
	Pos  int
	Msg  string
}

// Error implements error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("bencodex: %s at byte %d: %s", e.Kind, e.Pos, e.Msg)
}

// NewDecodeError constructs a DecodeError at the given position.
func NewDecodeError(kind DecodeErrorKind, pos int, msg string) *DecodeError {
	return &DecodeError{Kind: kind, Pos: pos, Msg: msg}
}

// AsDecodeError reports whether err is a *DecodeError and returns it.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
