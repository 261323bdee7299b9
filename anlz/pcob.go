package anlz

import "github.com/xilver1/rekord-export/track"

// pcobEntryLen is the fixed size of one PCOB cue entry.
const pcobEntryLen = 24

// cueStatusPCOB maps track.CueType to PCOB's status encoding. track's
// CueType happens to already be declared in this exact order (spec.md
// §4.4: "Cue→0, FadeIn→1, FadeOut→2, Load→3, Loop→4"), so the cast is
// direct; the table is kept explicit so a future reordering of CueType
// cannot silently desync the wire encoding.
var cueStatusPCOB = map[track.CueType]uint32{
	track.CueTypeCue:     0,
	track.CueTypeFadeIn:  1,
	track.CueTypeFadeOut: 2,
	track.CueTypeLoad:    3,
	track.CueTypeLoop:    4,
}

// buildPCOB renders one basic-cue-points section for the given list type
// (0=memory cues, 1=hot cues).
func buildPCOB(listType uint32, cues []track.CuePoint) []byte {
	body := make([]byte, 0, 8+pcobEntryLen*len(cues))
	body = appendU32(body, listType)
	body = appendU16(body, 0)
	body = appendU16(body, uint16(len(cues)))
	for _, c := range cues {
		body = append(body, "PCP\x01"...)
		body = appendU32(body, 20)
		body = appendU32(body, uint32(c.HotCue))
		body = appendU32(body, cueStatusPCOB[c.Type])
		body = appendU32(body, c.TimeMs)
		if c.IsLoop() {
			body = appendU32(body, c.TimeMs+c.LoopLengthMs)
		} else {
			body = appendU32(body, 0xFFFFFFFF)
		}
	}
	return frame("PCOB", body)
}

// splitCues separates cues into memory and hot-cue lists, per PCOB/PCO2's
// list_type / sub-section split.
func splitCues(cues []track.CuePoint) (memory, hot []track.CuePoint) {
	for _, c := range cues {
		if c.IsMemory() {
			memory = append(memory, c)
		} else {
			hot = append(hot, c)
		}
	}
	return memory, hot
}
