package pdb

import "github.com/xilver1/rekord-export/dsstring"

const (
	artistSubtypeNear = 0x0060
	artistSubtypeFar  = 0x0064

	artistRowMarker = 0x03
)

// buildArtistRow renders one Artists-table row, choosing the near or far
// subtype by the encoded name's length (spec.md §4.3's 200-byte boundary).
func buildArtistRow(id uint32, name string) []byte {
	enc := dsstring.Encode(name)
	if len(enc) <= 200 {
		const ofsName = 10
		fields := []field{
			u16("subtype", artistSubtypeNear),
			u16("index_shift", 0),
			u32("id", id),
			u8("marker", artistRowMarker),
			u8("ofs_name", ofsName),
		}
		row := pack(fields)
		return append(row, enc...)
	}

	const ofsNameFar = 12
	fields := []field{
		u16("subtype", artistSubtypeFar),
		u16("index_shift", 0),
		u32("id", id),
		u8("marker", artistRowMarker),
		u8("reserved", 0),
		u16("ofs_name_far", ofsNameFar),
	}
	row := pack(fields)
	return append(row, enc...)
}
