package anlz

import "github.com/xilver1/rekord-export/track"

// buildPWV3 renders the 3-band compatibility waveform, derived from the
// same color detail entries as PWV5 but coarsened to one byte per entry.
func buildPWV3(d track.Detail) []byte {
	n := len(d.Entries)
	body := make([]byte, 0, 8+n)
	body = appendU32(body, uint32(n))
	body = appendU32(body, 0)
	for _, e := range d.Entries {
		height3 := e.Height >> 2
		sum := int(e.Red) + int(e.Green) + int(e.Blue)
		whiteness3 := sum / 3
		if whiteness3 > 7 {
			whiteness3 = 7
		}
		body = append(body, height3<<5|uint8(whiteness3)<<2)
	}
	return frame("PWV3", body)
}
