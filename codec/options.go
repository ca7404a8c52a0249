package codec

import (
	"github.com/planetarium/bencodex-go/internal/options"
	"github.com/planetarium/bencodex-go/value"
)

// DuplicateKeyPolicy selects how the encoder resolves two dictionary
// entries whose keys are Key-equal (spec.md §4.4, §6).
type DuplicateKeyPolicy uint8

const (
	// OnDuplicateError fails the encode with errs.ErrDuplicateKey. This is
	// the default. OnDuplicateThrow is an alias accepted for parity with
	// the spelling used in one code path of the original implementation
	// (spec.md §9 "Open questions").
	OnDuplicateError DuplicateKeyPolicy = iota
	OnDuplicateThrow                    = OnDuplicateError

	// OnDuplicateUseFirst keeps the first-inserted entry among a run of
	// Key-equal entries and silently drops the rest.
	OnDuplicateUseFirst DuplicateKeyPolicy = iota

	// OnDuplicateUseLast keeps the last-inserted entry among a run of
	// Key-equal entries and silently drops the rest.
	OnDuplicateUseLast
)

// EncodeConfig holds the resolved encoder options for a single call.
type EncodeConfig struct {
	onDuplicateKeys DuplicateKeyPolicy
	speculative     bool
}

func defaultEncodeConfig() *EncodeConfig {
	return &EncodeConfig{onDuplicateKeys: OnDuplicateError}
}

// EncodeOption configures an encode call.
type EncodeOption = options.Option[*EncodeConfig]

// WithOnDuplicateKeys sets the encoder's duplicate dictionary key policy.
func WithOnDuplicateKeys(policy DuplicateKeyPolicy) EncodeOption {
	return options.New(func(c *EncodeConfig) { c.onDuplicateKeys = policy })
}

// WithSpeculative enables the speculative text-length mode on EncodeInto:
// the encoder reserves the length-prefix digits for a text value, writes
// the text bytes, and then patches the real length into the reserved
// digits. The reserved width is the exact digit count of the text's UTF-8
// byte length, so the output is byte-identical to the non-speculative
// mode (spec.md §4.4, §9).
func WithSpeculative(enabled bool) EncodeOption {
	return options.New(func(c *EncodeConfig) { c.speculative = enabled })
}

// InvalidKeyOrderPolicy selects how the decoder reacts to dictionary keys
// that are out of canonical order or duplicated (spec.md §4.5, §6).
type InvalidKeyOrderPolicy uint8

const (
	// OnInvalidKeyOrderError rejects unordered or duplicate dictionary
	// keys. This is the default.
	OnInvalidKeyOrderError InvalidKeyOrderPolicy = iota

	// OnInvalidKeyOrderIgnore skips the ordering and uniqueness checks; if
	// the dictionary constructor is the default content-addressed one,
	// duplicates resolve to the last-seen value.
	OnInvalidKeyOrderIgnore
)

// DictionaryConstructor builds a value.Dictionary from a finite sequence of
// (Key, Value) pairs. The decoder's dictionary backing store is pluggable
// through this type (spec.md §4.5 "Configurability").
type DictionaryConstructor func(pairs []value.Pair) (value.Dictionary, error)

// DecodeConfig holds the resolved decoder options for a single call.
type DecodeConfig struct {
	onInvalidKeyOrder InvalidKeyOrderPolicy
	dictConstructor   DictionaryConstructor
}

// DecodeOption configures a decode call.
type DecodeOption = options.Option[*DecodeConfig]

// WithOnInvalidKeyOrder sets the decoder's dictionary key order/uniqueness
// policy.
func WithOnInvalidKeyOrder(policy InvalidKeyOrderPolicy) DecodeOption {
	return options.New(func(c *DecodeConfig) { c.onInvalidKeyOrder = policy })
}

// WithDictionaryConstructor overrides the container used to assemble
// decoded dictionaries. The default is the content-addressed dict.New.
func WithDictionaryConstructor(ctor DictionaryConstructor) DecodeOption {
	return options.New(func(c *DecodeConfig) { c.dictConstructor = ctor })
}
