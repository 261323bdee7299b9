// Package track defines the in-memory representation of a single library
// entry and the auxiliary analysis data (beat grid, waveform, cue points)
// that accompanies it. Values of these types are produced by external
// collaborators (audio decoding, tempo estimation, waveform generation) and
// consumed by pdb and anlz; nothing in this package performs I/O.
package track

// FileType identifies the audio container of a track's source file.
type FileType string

// Supported source file types.
const (
	FileTypeMP3  FileType = "mp3"
	FileTypeM4A  FileType = "m4a"
	FileTypeFLAC FileType = "flac"
	FileTypeWAV  FileType = "wav"
	FileTypeAIFF FileType = "aiff"
)

// TrackAnalysis is the complete description of a single library track, as
// handed to the PDB and ANLZ writers. The zero value is not valid: ID must
// be >= 1 and is never minted by this package, only consumed.
type TrackAnalysis struct {
	// ID uniquely identifies the track within the export; must be >= 1.
	ID uint32

	// FilePath is USB-relative, slash-normalized, and begins with a
	// leading '/' (e.g. "/Contents/Artist/Album/Track.mp3").
	FilePath string

	Title   string
	Artist  string
	Album   string // optional, empty if absent
	Genre   string // optional
	Label   string // optional
	Comment string // optional

	// Year is 0 when absent.
	Year int
	// TrackNumber is 0 when absent.
	TrackNumber int

	DurationSecs float64
	SampleRate   uint32
	BitDepth     uint16
	BitrateKbps  uint32
	BPM          float64

	// Key is nil when the track has no detected musical key.
	Key *Key

	BeatGrid BeatGrid
	Waveform Waveform
	CuePoints []CuePoint

	FileSize        uint64
	FileFingerprint uint64
	FileType        FileType
}
