package pdb

import "github.com/xilver1/rekord-export/dsstring"

// buildPlaylistTreeRow renders one PlaylistTree-table row.
func buildPlaylistTreeRow(parentID, sortOrder, id uint32, isFolder bool, name string) []byte {
	var folder uint32
	if isFolder {
		folder = 1
	}
	row := pack([]field{
		u32("parent_id", parentID),
		u32("unknown", 0),
		u32("sort_order", sortOrder),
		u32("id", id),
		u32("is_folder", folder),
	})
	return append(row, dsstring.Encode(name)...)
}

// buildPlaylistEntryRow renders one PlaylistEntries-table row.
func buildPlaylistEntryRow(entryIndex, trackID, playlistID uint32) []byte {
	return pack([]field{
		u32("entry_index", entryIndex),
		u32("track_id", trackID),
		u32("playlist_id", playlistID),
	})
}
