package anlz

import "unicode/utf16"

// buildPPTH renders the track file path section: character count followed
// by UTF-16BE of path (spec.md §9: "PPTH stores character count, not byte
// count" — an absolute requirement, not advisory).
func buildPPTH(path string) []byte {
	units := utf16.Encode([]rune(path))
	body := make([]byte, 0, 4+2*len(units))
	body = appendU32(body, uint32(len(units)))
	for _, u := range units {
		body = appendU16(body, u)
	}
	return frame("PPTH", body)
}
