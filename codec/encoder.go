// Package codec implements the Bencodex encoder and decoder: canonical,
// deterministic, buffer-oriented serialization with a resumable
// truncation contract and a strict, positioned decode error taxonomy
// (spec.md §4.4, §4.5).
package codec

import (
	"math/big"
	"sort"
	"unicode/utf8"

	"github.com/planetarium/bencodex-go/errs"
	"github.com/planetarium/bencodex-go/internal/bytesx"
	"github.com/planetarium/bencodex-go/internal/options"
	"github.com/planetarium/bencodex-go/internal/pool"
	"github.com/planetarium/bencodex-go/size"
	"github.com/planetarium/bencodex-go/value"
)

// Result reports the outcome of a buffer-bounded encode call.
type Result struct {
	// Written is the number of bytes safely written to the destination
	// buffer, starting at offset 0.
	Written int
	// Complete reports whether the entire value was written. If false,
	// the caller may retry with a larger buffer; EncodeInto never panics
	// on a short buffer and never writes past len(buf).
	Complete bool
}

// writer is a bounded, non-panicking byte sink. Every write silently stops
// at the destination's length instead of growing it, and remembers
// whether it ever had to stop short.
type writer struct {
	buf       []byte
	off       int
	truncated bool
}

func newWriter(buf []byte) *writer {
	return &writer{buf: buf}
}

func (w *writer) writeByte(b byte) {
	if w.truncated {
		return
	}
	if w.off >= len(w.buf) {
		w.truncated = true
		return
	}
	w.buf[w.off] = b
	w.off++
}

func (w *writer) write(p []byte) {
	if w.truncated {
		return
	}
	remaining := len(w.buf) - w.off
	if remaining <= 0 {
		w.truncated = true
		return
	}
	n := len(p)
	if n > remaining {
		n = remaining
	}
	copy(w.buf[w.off:w.off+n], p[:n])
	w.off += n
	if n < len(p) {
		w.truncated = true
	}
}

// patchAt overwrites data already written at [offset, offset+len(data)).
// It is a no-op if that range was never fully written (the destination
// buffer ran out partway through it) — the resulting output is already
// marked truncated, so spec.md's resumability property does not require
// it to be byte-exact.
func (w *writer) patchAt(offset int, data []byte) {
	if offset+len(data) > w.off {
		return
	}
	copy(w.buf[offset:offset+len(data)], data)
}

func (w *writer) result() Result {
	return Result{Written: w.off, Complete: !w.truncated}
}

// Encode computes the canonical encoded size of v, allocates a single
// output buffer, writes v into it, and returns the trimmed result.
func Encode(v value.Value, opts ...EncodeOption) ([]byte, error) {
	cfg := defaultEncodeConfig()
	options.Apply(cfg, opts...)

	n, err := size.Estimate(v, size.BestEffort)
	if err != nil {
		return nil, err
	}

	bb := pool.Get()
	defer pool.Put(bb)
	bb.Grow(n)
	bb.B = bb.B[:n]

	w := newWriter(bb.B)
	if err := encodeValue(w, v, cfg); err != nil {
		return nil, err
	}
	res := w.result()
	if !res.Complete {
		return nil, errs.ErrInvalidValueType
	}

	out := make([]byte, res.Written)
	copy(out, bb.B[:res.Written])

	return out, nil
}

// EncodeInto writes v into buf starting at offset 0, writing as much as
// fits. It never writes past len(buf) and never panics on a short buffer.
// If the result is not Complete, the caller may retry with a larger
// buffer: EncodeInto always starts over from scratch, it does not resume a
// prior partial write.
func EncodeInto(v value.Value, buf []byte, opts ...EncodeOption) (Result, error) {
	cfg := defaultEncodeConfig()
	options.Apply(cfg, opts...)

	w := newWriter(buf)
	if err := encodeValue(w, v, cfg); err != nil {
		return Result{}, err
	}

	return w.result(), nil
}

// EncodeKeyInto writes a single Key into buf under the same truncation
// contract as EncodeInto.
func EncodeKeyInto(k value.Key, buf []byte, opts ...EncodeOption) (Result, error) {
	cfg := defaultEncodeConfig()
	options.Apply(cfg, opts...)

	w := newWriter(buf)
	if err := encodeKey(w, k, cfg); err != nil {
		return Result{}, err
	}

	return w.result(), nil
}

func encodeValue(w *writer, v value.Value, cfg *EncodeConfig) error {
	switch vv := v.(type) {
	case nil:
		w.writeByte('n')
	case value.Null:
		w.writeByte('n')
	case value.Bool:
		if vv {
			w.writeByte('t')
		} else {
			w.writeByte('f')
		}
	case value.Integer:
		encodeInteger(w, vv)
	case value.Binary:
		encodeBinary(w, vv)
	case value.Text:
		return encodeText(w, string(vv), cfg)
	case value.List:
		return encodeList(w, vv, cfg)
	case value.Dictionary:
		return encodeDict(w, vv, cfg)
	default:
		return errs.ErrInvalidValueType
	}

	return nil
}

func encodeInteger(w *writer, n value.Integer) {
	v := n.BigInt()
	if v.Sign() == 0 {
		w.write([]byte("i0e"))
		return
	}

	w.writeByte('i')
	if v.Sign() < 0 {
		w.writeByte('-')
	}
	abs := new(big.Int).Abs(v)
	w.write([]byte(abs.String()))
	w.writeByte('e')
}

func encodeBinary(w *writer, b []byte) {
	w.write(bytesx.FormatDecimal(uint64(len(b))))
	w.writeByte(':')
	w.write(b)
}

// encodeText writes a text value as 'u' <utf8-byte-length> ':' <utf8 bytes>.
//
// Under the speculative option, the length-prefix width is reserved before
// the text bytes are written and patched in place afterward. Because
// value.Text already holds a fully materialized Go string, its UTF-8 byte
// length is known in O(1) before any bytes are written — so unlike a
// streaming source, there is nothing left to guess, and the reserved width
// always equals the final width. The patch step still runs (as a direct
// overwrite rather than a corrective shift) so the mechanics match the
// documented option even though this buffer-oriented API never needs the
// shift path the original's streaming encoder relies on.
func encodeText(w *writer, s string, cfg *EncodeConfig) error {
	if !utf8.ValidString(s) {
		return errs.ErrInvalidValueType
	}

	byteLen := uint64(len(s))
	w.writeByte('u')

	if cfg.speculative {
		start := w.off
		width := bytesx.DigitCount(byteLen)
		for i := 0; i < width; i++ {
			w.writeByte('0')
		}
		w.writeByte(':')
		w.write([]byte(s))
		w.patchAt(start, bytesx.FormatDecimal(byteLen))
		return nil
	}

	w.write(bytesx.FormatDecimal(byteLen))
	w.writeByte(':')
	w.write([]byte(s))

	return nil
}

func encodeList(w *writer, lst value.List, cfg *EncodeConfig) error {
	w.writeByte('l')
	for _, child := range lst {
		if err := encodeValue(w, child, cfg); err != nil {
			return err
		}
	}
	w.writeByte('e')

	return nil
}

// dictTriple is a materialized (key, value, insertion_index) entry, the
// unit the dictionary emission algorithm sorts (spec.md §4.4).
type dictTriple struct {
	key value.Key
	val value.Value
	idx int
}

func encodeDict(w *writer, d value.Dictionary, cfg *EncodeConfig) error {
	triples := make([]dictTriple, 0, d.Size())
	idx := 0
	d.ForEach(func(v value.Value, k value.Key, _ value.Dictionary) bool {
		triples = append(triples, dictTriple{key: k, val: v, idx: idx})
		idx++
		return true
	})

	// Tie-break by insertion index: ascending keeps the first-inserted
	// copy at the front of a duplicate run (useFirst/error default), while
	// descending keeps the last-inserted copy at the front (useLast).
	descending := cfg.onDuplicateKeys == OnDuplicateUseLast
	sort.SliceStable(triples, func(i, j int) bool {
		c := value.CompareKeys(triples[i].key, triples[j].key)
		if c != 0 {
			return c < 0
		}
		if descending {
			return triples[i].idx > triples[j].idx
		}
		return triples[i].idx < triples[j].idx
	})

	w.writeByte('d')

	havePrev := false
	var prevKey value.Key
	for _, t := range triples {
		if havePrev && value.CompareKeys(prevKey, t.key) == 0 {
			switch cfg.onDuplicateKeys {
			case OnDuplicateUseFirst, OnDuplicateUseLast:
				continue
			default:
				return errs.ErrDuplicateKey
			}
		}

		if err := encodeKey(w, t.key, cfg); err != nil {
			return err
		}
		if err := encodeValue(w, t.val, cfg); err != nil {
			return err
		}

		prevKey = t.key
		havePrev = true
	}

	w.writeByte('e')

	return nil
}

func encodeKey(w *writer, k value.Key, cfg *EncodeConfig) error {
	if k.IsBinary() {
		encodeBinary(w, k.Binary())
		return nil
	}

	return encodeText(w, k.Text(), cfg)
}
