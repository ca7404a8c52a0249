package value

// KeyKind identifies which of the two Key variants a Key holds.
type KeyKind uint8

const (
	// KeyKindBinary is a key whose contents are raw octets.
	KeyKindBinary KeyKind = iota
	// KeyKindText is a key whose contents are a Unicode string.
	KeyKindText
)

func (k KeyKind) String() string {
	if k == KeyKindText {
		return "text"
	}
	return "binary"
}

// Key is a Bencodex dictionary key: either Text or Binary. The zero Key is
// the binary key of zero length.
type Key struct {
	kind KeyKind
	bin  []byte
	text string
}

// BinaryKey builds a Key whose variant is Binary. The byte slice is copied
// so the caller may reuse or mutate the original.
func BinaryKey(b []byte) Key {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Key{kind: KeyKindBinary, bin: cp}
}

// TextKey builds a Key whose variant is Text.
func TextKey(s string) Key {
	return Key{kind: KeyKindText, text: s}
}

// Kind reports whether the key is Binary or Text.
func (k Key) Kind() KeyKind { return k.kind }

// IsBinary reports whether the key is the Binary variant.
func (k Key) IsBinary() bool { return k.kind == KeyKindBinary }

// IsText reports whether the key is the Text variant.
func (k Key) IsText() bool { return k.kind == KeyKindText }

// Binary returns the raw bytes of a Binary key. It panics if called on a
// Text key; callers should guard with IsBinary.
func (k Key) Binary() []byte {
	if k.kind != KeyKindBinary {
		panic("value: Binary called on a text Key")
	}
	return k.bin
}

// Text returns the string contents of a Text key. It panics if called on a
// Binary key; callers should guard with IsText.
func (k Key) Text() string {
	if k.kind != KeyKindText {
		panic("value: Text called on a binary Key")
	}
	return k.text
}

// ToValue converts the Key to its corresponding Binary or Text Value.
func (k Key) ToValue() Value {
	if k.kind == KeyKindText {
		return Text(k.text)
	}
	return Binary(k.bin)
}
