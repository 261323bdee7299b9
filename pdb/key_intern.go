package pdb

import (
	"fmt"

	"github.com/xilver1/rekord-export/track"
)

// keyIntern interns musical keys by their wire-format 1..24 id.
type keyIntern struct {
	in      *intern
	byIndex []track.Key
}

func newKeyIntern() *keyIntern {
	return &keyIntern{in: newIntern()}
}

func (k *keyIntern) id(key track.Key) uint32 {
	id := k.in.id(fmt.Sprintf("%d", key.ToID()))
	if int(id) > len(k.byIndex) {
		k.byIndex = append(k.byIndex, key)
	}
	return id
}

// entries returns interned keys in ascending-id order.
func (k *keyIntern) entries() []track.Key {
	return k.byIndex
}
