package anlz

import "github.com/xilver1/rekord-export/track"

// cueTypePCO2 maps track.CueType to PCO2's type encoding (spec.md §4.4:
// "Cue→1, Loop→2, FadeIn→3, FadeOut→4, Load→5"), distinct from PCOB's
// mapping.
var cueTypePCO2 = map[track.CueType]uint32{
	track.CueTypeCue:     1,
	track.CueTypeLoop:    2,
	track.CueTypeFadeIn:  3,
	track.CueTypeFadeOut: 4,
	track.CueTypeLoad:    5,
}

// buildPCO2 renders one extended (colored) cue-points section.
func buildPCO2(listType uint32, cues []track.CuePoint) []byte {
	body := make([]byte, 0, 8+32*len(cues))
	body = appendU32(body, listType)
	body = appendU16(body, 0)
	body = appendU16(body, uint16(len(cues)))
	for _, c := range cues {
		entry := pco2Entry(c)
		body = append(body, entry...)
	}
	return frame("PCO2", body)
}

func pco2Entry(c track.CuePoint) []byte {
	tail := make([]byte, 0, 32)
	tail = appendU32(tail, uint32(c.HotCue))
	tail = appendU32(tail, cueTypePCO2[c.Type])
	tail = appendU32(tail, c.TimeMs)
	if c.IsLoop() {
		tail = appendU32(tail, c.TimeMs+c.LoopLengthMs)
	} else {
		tail = appendU32(tail, 0xFFFFFFFF)
	}
	var colorID uint32
	if c.Color != nil {
		colorID = uint32(c.Color.PaletteIndex)
	}
	tail = appendU32(tail, colorID)
	tail = append(tail, make([]byte, 8)...)

	if c.Comment != "" {
		tail = appendU32(tail, uint32(len(c.Comment)+1))
		tail = append(tail, c.Comment...)
		tail = append(tail, 0x00)
	}

	if !c.IsMemory() {
		var palette, r, g, b byte
		if c.Color != nil {
			palette = c.Color.PaletteIndex
			r, g, b = c.Color.Red, c.Color.Green, c.Color.Blue
		}
		tail = append(tail, palette, r, g, b)
		tail = append(tail, make([]byte, 4)...)
	}

	entry := make([]byte, 0, 8+len(tail))
	entry = append(entry, "PCP2"...)
	entry = appendU32(entry, uint32(len(tail)))
	entry = append(entry, tail...)
	return entry
}
