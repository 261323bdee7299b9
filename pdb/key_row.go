package pdb

import (
	"github.com/xilver1/rekord-export/dsstring"
	"github.com/xilver1/rekord-export/track"
)

// noteNames lists pitch-class names (C=0 .. B=11) used to render a Key
// row's display name.
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// keyName renders k's display name, e.g. "Am" for A minor, "C" for C
// major.
func keyName(k track.Key) string {
	name := noteNames[k.PitchClass%12]
	if !k.Major {
		name += "m"
	}
	return name
}

// buildKeyRow renders one Keys-table row: id duplicated, then name.
func buildKeyRow(id uint32, k track.Key) []byte {
	row := pack([]field{
		u32("id", id),
		u32("id_dup", id),
	})
	return append(row, dsstring.Encode(keyName(k))...)
}
