package pdb

import "github.com/xilver1/rekord-export/dsstring"

const (
	albumSubtypeNear = 0x0080
	albumSubtypeFar  = 0x0084

	albumRowMarker = 0x03
)

// buildAlbumRow renders one Albums-table row, choosing the near or far
// subtype by the encoded name's length, mirroring buildArtistRow.
func buildAlbumRow(id, artistID uint32, name string) []byte {
	enc := dsstring.Encode(name)
	if len(enc) <= 200 {
		const ofsName = 22
		fields := []field{
			u16("subtype", albumSubtypeNear),
			u16("index_shift", 0),
			u32("unknown0", 0),
			u32("artist_id", artistID),
			u32("id", id),
			u32("unknown1", 0),
			u8("marker", albumRowMarker),
			u8("ofs_name", ofsName),
		}
		row := pack(fields)
		return append(row, enc...)
	}

	const ofsNameFar = 24
	fields := []field{
		u16("subtype", albumSubtypeFar),
		u16("index_shift", 0),
		u32("unknown0", 0),
		u32("artist_id", artistID),
		u32("id", id),
		u32("unknown1", 0),
		u8("marker", albumRowMarker),
		u8("reserved", 0),
		u16("ofs_name_far", ofsNameFar),
	}
	row := pack(fields)
	return append(row, enc...)
}
