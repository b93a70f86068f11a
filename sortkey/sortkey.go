// Package sortkey builds and compares collation sort keys.
//
// A sort key is a byte string whose lexicographic order equals the order the
// producing backend assigns to the original texts. Keys are written in a
// fixed byte order and can be stored or compared across processes, as long
// as both sides used the same locale, options and collation version.
package sortkey

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/mhr3/collation/collerr"
	"github.com/mhr3/collation/options"
)

// MaxUnits is the longest text, in UTF-16 units, whose invariant key length
// is still representable.
const MaxUnits = 0x3FFF_FFFF

// DestinationParam is the parameter name reported for undersized buffers.
const DestinationParam = "destination"

const (
	// <term>     -> \x00\x01
	// \x00       -> \x00\xff
	escape      byte = 0x00
	escapedTerm byte = 0x01
	escaped00   byte = 0xff
)

// SortKey is an owned sort key together with where it came from.
type SortKey struct {
	Original string
	Options  options.CompareOptions
	Locale   string
	KeyData  []byte
}

// New copies key so the result stays valid after the caller reuses its
// buffer.
func New(original string, o options.CompareOptions, locale string, key []byte) SortKey {
	return SortKey{
		Original: original,
		Options:  o,
		Locale:   locale,
		KeyData:  bytes.Clone(key),
	}
}

// Compare orders two keys by their bytes.
func Compare(a, b SortKey) int {
	return bytes.Compare(a.KeyData, b.KeyData)
}

// Equal reports whether two keys hold the same bytes.
func Equal(a, b SortKey) bool {
	return bytes.Equal(a.KeyData, b.KeyData)
}

func (k SortKey) String() string {
	return fmt.Sprintf("SortKey - %q, %s, %q", k.Locale, k.Options, k.Original)
}

// UnitsLength returns the length of the invariant key of a text of n UTF-16
// units: two bytes per unit.
func UnitsLength(n int) (int, error) {
	if n < 0 || n > MaxUnits {
		return 0, collerr.OutOfRange("source", "text of %d units exceeds the sort key limit of %d", n, MaxUnits)
	}
	return 2 * n, nil
}

// AppendUnits appends units in big-endian order. Comparing the result
// byte-wise orders texts by code unit.
func AppendUnits(dst []byte, units []uint16) []byte {
	for _, u := range units {
		dst = binary.BigEndian.AppendUint16(dst, u)
	}
	return dst
}

// AppendEscaped appends data with every 0x00 escaped, followed by a
// terminator. A sequence of escaped segments sorts like the tuple of the raw
// segments.
func AppendEscaped(dst, data []byte) []byte {
	for {
		i := bytes.IndexByte(data, escape)
		if i == -1 {
			break
		}
		dst = append(dst, data[:i]...)
		dst = append(dst, escape, escaped00)
		data = data[i+1:]
	}
	dst = append(dst, data...)
	return append(dst, escape, escapedTerm)
}

// DecodeEscaped reads one segment written by AppendEscaped and returns the
// rest of b.
func DecodeEscaped(b []byte) (rest, segment []byte, err error) {
	for {
		i := bytes.IndexByte(b, escape)
		if i == -1 {
			return nil, nil, errors.Newf("did not find terminator in buffer %#x", b)
		}
		if i+1 >= len(b) {
			return nil, nil, errors.Newf("malformed escape in buffer %#x", b)
		}
		segment = append(segment, b[:i]...)
		switch b[i+1] {
		case escapedTerm:
			if segment == nil {
				segment = []byte{}
			}
			return b[i+2:], segment, nil
		case escaped00:
			segment = append(segment, 0x00)
		default:
			return nil, nil, errors.Newf("unknown escape sequence: %#x %#x", escape, b[i+1])
		}
		b = b[i+2:]
	}
}

// Write copies key into dst and returns the number of bytes written. It
// fails without writing anything when dst is too small, and never touches
// dst beyond len(key).
func Write(dst, key []byte) (int, error) {
	if len(dst) < len(key) {
		return 0, collerr.BufferTooSmall(DestinationParam, len(dst), len(key))
	}
	return copy(dst, key), nil
}
