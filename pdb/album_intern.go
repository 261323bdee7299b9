package pdb

import "strconv"

// albumEntry is one interned album: its name plus the artist id it was
// first seen under.
type albumEntry struct {
	name     string
	artistID uint32
}

// albumIntern interns albums keyed by name+artist (spec.md §3: "Album
// (keyed by name+artist)"), since the same album title by two different
// artists is a distinct row.
type albumIntern struct {
	in      intern
	byIndex []albumEntry
}

func (a *albumIntern) id(name string, artistID uint32) uint32 {
	if name == "" {
		return 0
	}
	if a.in.ids == nil {
		a.in = *newIntern()
	}
	key := name + "\x00" + strconv.FormatUint(uint64(artistID), 10)
	id := a.in.id(key)
	if int(id) > len(a.byIndex) {
		a.byIndex = append(a.byIndex, albumEntry{name: name, artistID: artistID})
	}
	return id
}

// entries returns interned albums in ascending-id order.
func (a *albumIntern) entries() []albumEntry {
	return a.byIndex
}
