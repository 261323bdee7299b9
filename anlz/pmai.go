package anlz

// buildPMAI renders the file header section. Unlike every other section,
// PMAI's second length field records the *total file length* (tag +
// header + every other section), not its own 28-byte size (spec.md
// §4.4: "The PMAI common header is fixed at 28 bytes and records total
// file length").
func buildPMAI(totalFileLen uint32) []byte {
	body := make([]byte, 16) // four u32 zeros
	lenAfterTag := uint32(8 + len(body))

	buf := make([]byte, 0, 28)
	buf = append(buf, "PMAI"...)
	buf = appendU32(buf, lenAfterTag)
	buf = appendU32(buf, totalFileLen)
	buf = append(buf, body...)
	return buf
}
