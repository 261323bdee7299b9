package anlz

import "github.com/xilver1/rekord-export/track"

// buildPQTZ renders the beat grid section.
func buildPQTZ(bg track.BeatGrid) []byte {
	body := make([]byte, 0, 12+8*len(bg.Beats))
	body = appendU32(body, 0)
	body = appendU32(body, 0)
	body = appendU32(body, uint32(len(bg.Beats)))
	for _, b := range bg.Beats {
		body = appendU16(body, uint16(b.BeatInBar))
		body = appendU16(body, b.TempoCenti)
		body = appendU32(body, b.TimeMs)
	}
	return frame("PQTZ", body)
}
