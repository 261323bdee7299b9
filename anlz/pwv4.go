package anlz

import "github.com/xilver1/rekord-export/track"

// buildPWV4 renders the color preview section: always exactly
// track.ColorPreviewColumnCount columns (spec.md §9: "PWV4 is 1200
// entries regardless", an absolute requirement).
func buildPWV4(cp track.ColorPreview) []byte {
	body := make([]byte, 0, 8+6*track.ColorPreviewColumnCount)
	body = appendU32(body, track.ColorPreviewColumnCount)
	body = appendU32(body, 0)
	for i := 0; i < track.ColorPreviewColumnCount; i++ {
		var c track.ColorPreviewColumn
		if i < len(cp.Columns) {
			c = cp.Columns[i]
		}
		enc := c.Encode()
		body = append(body, enc[:]...)
	}
	return frame("PWV4", body)
}
