// Package anlz implements the per-track ANLZ analysis file family: tagged
// big-endian sections carrying the file path, beat grid, waveforms, and
// cue points, composed into .DAT/.EXT/.2EX variants (spec.md §4.4).
package anlz

import "encoding/binary"

// frame wraps body in the section framing common to every ANLZ tag:
// 4-byte ASCII tag, u32 length-after-tag, u32 full-section-length, then
// body, all big-endian.
func frame(tag string, body []byte) []byte {
	lenAfterTag := 8 + len(body) // both length fields + body
	fullLen := 12 + len(body)    // tag + both length fields + body

	buf := make([]byte, 0, fullLen)
	buf = append(buf, tag...)
	buf = appendU32(buf, uint32(lenAfterTag))
	buf = appendU32(buf, uint32(fullLen))
	buf = append(buf, body...)
	return buf
}

func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendU16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}
