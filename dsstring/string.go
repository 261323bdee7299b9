// Package dsstring implements DeviceSQL's three on-disk string encodings
// and exposes length computation without allocating, so row layouts can
// compute field offsets before bodies are materialized.
//
// Encoding selection (see spec.md §4.1):
//
//	short ASCII: all bytes < 0x80 and length <= 126
//	long ASCII:  all bytes < 0x80 and length > 126
//	UTF-16LE:    contains any non-ASCII byte
//
// The empty string always encodes as the single byte 0x03, regardless of
// which form would otherwise apply.
package dsstring

import "unicode/utf16"

// Flag bytes that open the long-ASCII and UTF-16LE forms.
const (
	flagLongASCII = 0x40
	flagUTF16LE   = 0x90
)

// emptyMarker is the single-byte encoding of the empty string.
const emptyMarker = 0x03

// isASCII reports whether every byte of s is < 0x80.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// EncodedLen returns the number of bytes Encode(s) would produce, without
// allocating.
func EncodedLen(s string) int {
	if len(s) == 0 {
		return 1
	}
	if isASCII(s) {
		if len(s) <= 126 {
			return 1 + len(s)
		}
		return 4 + len(s)
	}
	return 4 + 2*len(utf16.Encode([]rune(s)))
}

// Encode returns the DeviceSQL on-disk encoding of s.
func Encode(s string) []byte {
	if len(s) == 0 {
		return []byte{emptyMarker}
	}
	if isASCII(s) {
		if len(s) <= 126 {
			buf := make([]byte, 1+len(s))
			buf[0] = byte((len(s)+1)<<1) | 1
			copy(buf[1:], s)
			return buf
		}
		total := uint16(4 + len(s))
		buf := make([]byte, 4+len(s))
		buf[0] = flagLongASCII
		buf[1] = byte(total)
		buf[2] = byte(total >> 8)
		buf[3] = 0x00
		copy(buf[4:], s)
		return buf
	}

	units := utf16.Encode([]rune(s))
	total := uint16(4 + 2*len(units))
	buf := make([]byte, 4+2*len(units))
	buf[0] = flagUTF16LE
	buf[1] = byte(total)
	buf[2] = byte(total >> 8)
	buf[3] = 0x00
	for i, u := range units {
		buf[4+2*i] = byte(u)
		buf[4+2*i+1] = byte(u >> 8)
	}
	return buf
}

// EncodeISRC returns the on-disk encoding of an ISRC field, which uses the
// UTF-16LE flag byte but an ASCII body terminated by a NUL byte, preceded by
// the 0x03 marker used for empty strings.
func EncodeISRC(isrc string) []byte {
	buf := make([]byte, 0, 2+len(isrc)+1)
	buf = append(buf, flagUTF16LE, emptyMarker)
	buf = append(buf, isrc...)
	buf = append(buf, 0x00)
	return buf
}

// EncodedLenISRC returns the number of bytes EncodeISRC(isrc) would produce.
func EncodedLenISRC(isrc string) int {
	return 2 + len(isrc) + 1
}
