package track

// CueType identifies the kind of a CuePoint.
type CueType uint8

// Cue point kinds.
const (
	CueTypeCue CueType = iota
	CueTypeFadeIn
	CueTypeFadeOut
	CueTypeLoad
	CueTypeLoop
)

// CueColor is an optional color tag attached to a CuePoint.
type CueColor struct {
	// PaletteIndex is the color's index into the fixed 8-entry palette (see
	// pdb's Colors table), or 0 if the cue uses no palette color.
	PaletteIndex uint8
	Red, Green, Blue uint8
}

// CuePoint is a time-anchored marker within a track. HotCue is 0 for a
// memory cue, or 1..8 for hot cues A..H.
type CuePoint struct {
	HotCue       uint8
	Type         CueType
	TimeMs       uint32
	LoopLengthMs uint32 // 0 for a non-loop cue
	Comment      string // optional, empty if absent
	Color        *CueColor
}

// IsLoop reports whether c describes a loop (LoopLengthMs != 0).
func (c CuePoint) IsLoop() bool {
	return c.LoopLengthMs != 0
}

// IsMemory reports whether c is a memory cue rather than a hot cue.
func (c CuePoint) IsMemory() bool {
	return c.HotCue == 0
}
