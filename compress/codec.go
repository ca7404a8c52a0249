// Package compress provides optional, pluggable compression backends for
// Bencodex Binary payloads that a caller wants to shrink before wrapping
// them in a Bencodex value tree, or restore after decoding one back out.
// Bencodex itself has no notion of compression: this package operates on
// plain byte slices, entirely outside the codec's encode/decode path.
package compress

import "fmt"

// Type identifies a compression backend.
type Type uint8

const (
	// None passes data through unchanged.
	None Type = iota
	// Zstd uses the pure-Go Zstandard implementation.
	Zstd
	// S2 uses the Snappy-derived S2 format, tuned for speed over ratio.
	S2
	// LZ4 uses the LZ4 block format.
	LZ4
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compressor compresses a byte slice.
//
// Memory management: the input slice is never modified. The compressing
// backends return a newly allocated slice owned by the caller;
// NoOpCompressor returns its input slice itself.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a byte slice produced by the matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a single compression backend.
type Codec interface {
	Compressor
	Decompressor
}

// Stats summarizes a single compression operation, useful for deciding
// whether compressing a given payload was worthwhile.
type Stats struct {
	Algorithm      Type
	OriginalSize   int64
	CompressedSize int64
}

// Ratio returns CompressedSize / OriginalSize; 0 if OriginalSize is zero.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// CreateCodec builds a fresh Codec for the given compression type.
func CreateCodec(t Type) (Codec, error) {
	switch t {
	case None:
		return NewNoOpCompressor(), nil
	case Zstd:
		return NewZstdCompressor(), nil
	case S2:
		return NewS2Compressor(), nil
	case LZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("compress: unsupported compression type: %s", t)
	}
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a shared, stateless Codec for the given type. The
// built-in codecs hold no mutable state of their own (any pooling happens
// beneath them), so the returned value is safe for concurrent use.
func GetCodec(t Type) (Codec, error) {
	if c, ok := builtinCodecs[t]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("compress: unsupported compression type: %s", t)
}
