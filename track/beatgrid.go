package track

// Beat is a single beat within a BeatGrid.
type Beat struct {
	// BeatInBar is the beat's position within its bar, 1..4.
	BeatInBar uint8
	// TimeMs is the beat's offset from the start of the track, in
	// milliseconds.
	TimeMs uint32
	// TempoCenti is the tempo at this beat, in BPM * 100, stored as the
	// wire format's native uint16.
	TempoCenti uint16
}

// BeatGrid is an ordered sequence of beat positions and the nominal tempo
// and first-beat offset they were derived from.
type BeatGrid struct {
	BPM         float64
	FirstBeatMs uint32
	Beats       []Beat
}
