package codec

import (
	"unicode/utf8"

	"github.com/planetarium/bencodex-go/dict"
	"github.com/planetarium/bencodex-go/errs"
	"github.com/planetarium/bencodex-go/internal/bytesx"
	"github.com/planetarium/bencodex-go/internal/options"
	"github.com/planetarium/bencodex-go/value"
)

func defaultDecodeConfig() *DecodeConfig {
	return &DecodeConfig{
		onInvalidKeyOrder: OnInvalidKeyOrderError,
		dictConstructor: func(pairs []value.Pair) (value.Dictionary, error) {
			return dict.New(pairs)
		},
	}
}

// Decode parses buf as exactly one Value, requiring the buffer to be
// consumed in full. Trailing bytes after a complete value cause
// UnexpectedByte at the offset of the first trailing byte.
func Decode(buf []byte, opts ...DecodeOption) (value.Value, error) {
	cfg := defaultDecodeConfig()
	options.Apply(cfg, opts...)

	p := &parser{buf: buf, cfg: cfg}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.buf) {
		return nil, errs.NewDecodeError(errs.KindUnexpectedByte, p.pos,
			"trailing bytes after a complete value")
	}

	return v, nil
}

// DecodeValue parses a single Value from the start of buf without
// requiring the whole buffer to be consumed. It reports how many bytes the
// value occupied.
func DecodeValue(buf []byte, opts ...DecodeOption) (read int, v value.Value, err error) {
	cfg := defaultDecodeConfig()
	options.Apply(cfg, opts...)

	p := &parser{buf: buf, cfg: cfg}
	v, err = p.parseValue()
	return p.pos, v, err
}

// DecodeKey parses a single Key from the start of buf.
func DecodeKey(buf []byte) (read int, k value.Key, err error) {
	p := &parser{buf: buf, cfg: defaultDecodeConfig()}
	k, err = p.parseKey()
	return p.pos, k, err
}

// parser is the decoder's single left-to-right cursor over buf.
type parser struct {
	buf []byte
	pos int
	cfg *DecodeConfig
}

func (p *parser) errAt(kind errs.DecodeErrorKind, pos int, msg string) error {
	return errs.NewDecodeError(kind, pos, msg)
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.buf) {
		return 0, false
	}
	return p.buf[p.pos], true
}

func (p *parser) expect(b byte, kind errs.DecodeErrorKind, msg string) error {
	got, ok := p.peek()
	if !ok {
		return p.errAt(errs.KindUnexpectedEndOfInput, p.pos, msg)
	}
	if got != b {
		return p.errAt(kind, p.pos, msg)
	}
	p.pos++
	return nil
}

// parseValue parses exactly one Value starting at p.pos, per the state
// machine in spec.md §4.5.
func (p *parser) parseValue() (value.Value, error) {
	b, ok := p.peek()
	if !ok {
		return nil, p.errAt(errs.KindUnexpectedEndOfInput, p.pos, "expected a value")
	}

	switch {
	case b == 'n':
		p.pos++
		return value.Null{}, nil
	case b == 't':
		p.pos++
		return value.Bool(true), nil
	case b == 'f':
		p.pos++
		return value.Bool(false), nil
	case b == 'i':
		return p.parseInteger()
	case b == 'u':
		return p.parseText()
	case b >= '0' && b <= '9':
		return p.parseBinary()
	case b == 'l':
		return p.parseList()
	case b == 'd':
		return p.parseDict()
	default:
		return nil, p.errAt(errs.KindUnexpectedByte, p.pos, "unrecognized value tag")
	}
}

func (p *parser) parseInteger() (value.Value, error) {
	start := p.pos
	p.pos++ // consume 'i'

	negative := false
	if b, ok := p.peek(); ok && b == '-' {
		negative = true
		p.pos++
	}

	read, n, ok := bytesx.ParseNaturalBig(p.buf[p.pos:])
	if !ok {
		return nil, p.errAt(errs.KindInvalidInteger, p.pos, "expected a decimal integer")
	}
	p.pos += read

	if b, end := p.peek(); end && b == 'e' {
		p.pos++
	} else {
		return nil, p.errAt(errs.KindNoIntegerSuffix, p.pos, "expected 'e' after integer digits")
	}

	if negative {
		if n.Sign() == 0 {
			return nil, p.errAt(errs.KindInvalidInteger, start, "negative zero is not representable")
		}
		n.Neg(n)
	}

	return value.NewBigInteger(n), nil
}

func (p *parser) parseBinary() (value.Value, error) {
	read, n, ok := bytesx.ParseNaturalU64(p.buf[p.pos:])
	if !ok {
		return nil, p.errAt(errs.KindNoBinaryLength, p.pos, "expected a decimal length")
	}
	p.pos += read

	if err := p.expect(':', errs.KindNoBinaryDelimiter, "expected ':' after binary length"); err != nil {
		return nil, err
	}

	if uint64(len(p.buf)-p.pos) < n {
		return nil, p.errAt(errs.KindOverrunBinaryLength, p.pos, "binary length exceeds remaining input")
	}

	data := make([]byte, n)
	copy(data, p.buf[p.pos:p.pos+int(n)])
	p.pos += int(n)

	return value.Binary(data), nil
}

func (p *parser) parseText() (value.Value, error) {
	p.pos++ // consume 'u'

	read, n, ok := bytesx.ParseNaturalU64(p.buf[p.pos:])
	if !ok {
		return nil, p.errAt(errs.KindNoTextLength, p.pos, "expected a decimal length")
	}
	p.pos += read

	if err := p.expect(':', errs.KindNoTextDelimiter, "expected ':' after text length"); err != nil {
		return nil, err
	}

	if uint64(len(p.buf)-p.pos) < n {
		return nil, p.errAt(errs.KindOverrunTextLength, p.pos, "text length exceeds remaining input")
	}

	raw := p.buf[p.pos : p.pos+int(n)]
	if !utf8.Valid(raw) {
		return nil, p.errAt(errs.KindOverrunTextLength, p.pos, "text is not valid UTF-8")
	}

	s := string(raw)
	p.pos += int(n)

	return value.Text(s), nil
}

func (p *parser) parseList() (value.Value, error) {
	p.pos++ // consume 'l'

	items := make(value.List, 0)
	for {
		b, ok := p.peek()
		if !ok {
			return nil, p.errAt(errs.KindNoListSuffix, p.pos, "unterminated list: missing 'e'")
		}
		if b == 'e' {
			p.pos++
			return items, nil
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (p *parser) parseDict() (value.Value, error) {
	p.pos++ // consume 'd'

	var pairs []value.Pair
	havePrev := false
	var prevKey value.Key

	for {
		b, ok := p.peek()
		if !ok {
			return nil, p.errAt(errs.KindNoDictionarySuffix, p.pos, "unterminated dictionary: missing 'e'")
		}
		if b == 'e' {
			p.pos++
			break
		}

		k, err := p.parseKey()
		if err != nil {
			return nil, err
		}

		if p.cfg.onInvalidKeyOrder != OnInvalidKeyOrderIgnore && havePrev {
			switch c := value.CompareKeys(prevKey, k); {
			case c > 0:
				return nil, p.errAt(errs.KindUnorderedDictionaryKeys, p.pos,
					"dictionary keys are not in canonical ascending order")
			case c == 0:
				return nil, p.errAt(errs.KindDuplicateDictionaryKeys, p.pos,
					"duplicate dictionary key")
			}
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, value.Pair{Key: k, Value: v})
		prevKey = k
		havePrev = true
	}

	d, err := p.cfg.dictConstructor(pairs)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// parseKey parses a single Key (Binary or Text form).
func (p *parser) parseKey() (value.Key, error) {
	b, ok := p.peek()
	if !ok {
		return value.Key{}, p.errAt(errs.KindUnexpectedEndOfInput, p.pos, "expected a key")
	}

	switch {
	case b == 'u':
		v, err := p.parseText()
		if err != nil {
			return value.Key{}, err
		}
		return value.TextKey(string(v.(value.Text))), nil
	case b >= '0' && b <= '9':
		v, err := p.parseBinary()
		if err != nil {
			return value.Key{}, err
		}
		return value.BinaryKey([]byte(v.(value.Binary))), nil
	default:
		return value.Key{}, p.errAt(errs.KindUnexpectedByte, p.pos, "expected a binary or text key")
	}
}
