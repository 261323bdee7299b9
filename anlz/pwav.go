package anlz

import "github.com/xilver1/rekord-export/track"

// buildPWAV renders the monochrome preview section: always exactly
// track.PreviewColumnCount columns, regardless of the input column count
// (spec.md §9: "PWAV is 400 bytes regardless of input column count").
func buildPWAV(p track.Preview) []byte {
	body := make([]byte, 0, 8+track.PreviewColumnCount)
	body = appendU32(body, track.PreviewColumnCount)
	body = appendU32(body, 0)
	for i := 0; i < track.PreviewColumnCount; i++ {
		var c track.PreviewColumn
		if i < len(p.Columns) {
			c = p.Columns[i]
		}
		body = append(body, c.Encode())
	}
	return frame("PWAV", body)
}
