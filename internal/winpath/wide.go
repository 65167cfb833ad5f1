package winpath

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Kind discriminates how a Buffer's bytes are encoded.
type Kind int

const (
	// Raw bytes in the on-disk filename encoding.
	Raw Kind = iota
	// Wide bytes holding UTF-16LE code units.
	Wide
)

// Buffer is an owned byte sequence with an explicit encoding discriminant.
type Buffer struct {
	Kind  Kind
	Bytes []byte
}

// utf16le is UTF-16 little-endian without a byte order mark. Not the
// BOM-carrying variant: the conversion facility rejects leading BOMs.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeWide transcodes path to UTF-16LE and appends a single trailing
// zero byte, the terminator contract the rest of the bridge relies on.
func encodeWide(path string) ([]byte, error) {
	b, err := utf16le.NewEncoder().Bytes([]byte(path))
	if err != nil {
		return nil, fmt.Errorf("utf-16le encode failed: %w", err)
	}
	return append(b, 0), nil
}

// ToWide converts path into the wide form consumed by the conversion
// facility. The backing buffer is one byte larger than the transcoded
// data, so the result ends in two zero bytes and a full UTF-16LE NUL
// character. The facility must never read past that terminator when it
// walks the buffer as wide characters.
func ToWide(path string) ([]byte, error) {
	enc, err := encodeWide(path)
	if err != nil {
		return nil, err
	}
	backing := make([]byte, len(enc)+1)
	copy(backing, enc)
	return backing, nil
}

// FromWide decodes a wide-form buffer into a path string. A buffer not
// tagged Wide may carry a stray terminator byte from the facility's
// length accounting, so an odd-length raw buffer is trimmed by one byte
// before decoding.
func FromWide(b Buffer) (string, error) {
	data := b.Bytes
	if b.Kind != Wide && len(data)%2 == 1 {
		data = data[:len(data)-1]
	}

	out, err := utf16le.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("utf-16le decode failed: %w", err)
	}
	return string(out), nil
}
