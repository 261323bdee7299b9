package anlz

import "github.com/xilver1/rekord-export/track"

// buildPWV5 renders the color detail section: variable-length, one
// big-endian uint16 per entry (spec.md §4.4, see track.ColorEntry.Encode
// for the packing formula and its documented worked-example discrepancy).
func buildPWV5(d track.Detail) []byte {
	body := make([]byte, 0, 8+2*len(d.Entries))
	body = appendU32(body, uint32(len(d.Entries)))
	body = appendU32(body, 0)
	for _, e := range d.Entries {
		body = appendU16(body, e.Encode())
	}
	return frame("PWV5", body)
}
