package track

// Playlist is a named, ordered collection of track IDs, or a folder
// grouping other playlists. Folders never carry track entries.
type Playlist struct {
	ID uint32
	// ParentID is 0 for a root-level playlist.
	ParentID  uint32
	Name      string
	IsFolder  bool
	SortOrder uint32
	// TrackIDs is the ordered list of track IDs in this playlist. Always
	// empty for a folder.
	TrackIDs []uint32
}
