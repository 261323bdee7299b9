package track

// circleOfFifths lists pitch classes (C=0 .. B=11) in the circle-of-fifths
// order used by the wire format's 1..12 (minor) and 13..24 (major) key IDs:
// Cm=1, Gm=2, Dm=3, Am=4, Em=5, Bm=6, F♯m=7, C♯m=8, G♯m=9, D♯m=10, A♯m=11,
// Fm=12, then the majors shifted by +12 in the same order.
var circleOfFifths = [12]uint8{0, 7, 2, 9, 4, 11, 6, 1, 8, 3, 10, 5}

// Key identifies a track's musical key as a pitch class plus major/minor
// mode.
type Key struct {
	// PitchClass is 0 (C) .. 11 (B).
	PitchClass uint8
	Major      bool
}

// ToID encodes k as the wire format's 1..24 key identifier.
func (k Key) ToID() uint8 {
	var idx uint8
	for i, pc := range circleOfFifths {
		if pc == k.PitchClass%12 {
			idx = uint8(i)
			break
		}
	}
	if k.Major {
		return idx + 13
	}
	return idx + 1
}

// KeyFromID decodes the wire format's 1..24 key identifier back into a Key.
// It panics if id is outside 1..24; callers must validate id first.
func KeyFromID(id uint8) Key {
	if id >= 1 && id <= 12 {
		return Key{PitchClass: circleOfFifths[id-1], Major: false}
	}
	if id >= 13 && id <= 24 {
		return Key{PitchClass: circleOfFifths[id-13], Major: true}
	}
	panic("track: key id out of range 1..24")
}
