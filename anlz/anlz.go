package anlz

import "github.com/xilver1/rekord-export/track"

// BuildDAT composes the .DAT variant: PMAI + PPTH + PQTZ + PWAV + PWV5.
func BuildDAT(analyzePath string, t track.TrackAnalysis) []byte {
	sections := [][]byte{
		buildPPTH(analyzePath),
		buildPQTZ(t.BeatGrid),
		buildPWAV(t.Waveform.Preview),
		buildPWV5(t.Waveform.Detail),
	}
	return compose(sections)
}

// BuildEXT composes the .EXT variant: PMAI + PPTH + PQTZ + PWAV + PWV3 +
// PWV4 + PWV5 + (PCOB if cues) + (PCO2 if cues).
func BuildEXT(analyzePath string, t track.TrackAnalysis) []byte {
	sections := [][]byte{
		buildPPTH(analyzePath),
		buildPQTZ(t.BeatGrid),
		buildPWAV(t.Waveform.Preview),
		buildPWV3(t.Waveform.Detail),
		buildPWV4(t.Waveform.ColorPreview),
		buildPWV5(t.Waveform.Detail),
	}
	sections = append(sections, cueSections(t.CuePoints)...)
	return compose(sections)
}

// Build2EX composes the .2EX variant, identical in layout to .EXT (spec.md
// §4.4: "extension file reserved for newer hardware").
func Build2EX(analyzePath string, t track.TrackAnalysis) []byte {
	return BuildEXT(analyzePath, t)
}

func cueSections(cues []track.CuePoint) [][]byte {
	if len(cues) == 0 {
		return nil
	}
	memory, hot := splitCues(cues)
	return [][]byte{
		buildPCOB(0, memory),
		buildPCOB(1, hot),
		buildPCO2(0, memory),
		buildPCO2(1, hot),
	}
}

// compose prefixes sections with a PMAI header whose total-length field
// covers the whole file (spec.md §4.4).
func compose(sections [][]byte) []byte {
	total := 28
	for _, s := range sections {
		total += len(s)
	}
	out := make([]byte, 0, total)
	out = append(out, buildPMAI(uint32(total))...)
	for _, s := range sections {
		out = append(out, s...)
	}
	return out
}
