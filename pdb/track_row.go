package pdb

import (
	"fmt"
	"path"
	"time"

	"github.com/xilver1/rekord-export/dsstring"
	"github.com/xilver1/rekord-export/layout"
	"github.com/xilver1/rekord-export/track"
)

// trackRowSubtype is the track row's string-offset width selector: 2-byte
// offsets (spec.md §4.3).
const trackRowSubtype = 0x0024

// trackFixedHeaderLen is the fixed portion of a track row, ending at
// offset 0x5E and followed by the 21-entry string offset table.
const trackFixedHeaderLen = 0x5E

const trackStringCount = 21

// buildTrackRow renders one Tracks-table row for t, given its interned
// foreign keys.
func buildTrackRow(t track.TrackAnalysis, artistID, albumID, genreID, labelID, keyID, artworkID uint32) []byte {
	tempo := uint32(t.BPM*100 + 0.5)

	fixed := reserved([]field{
		u16("subtype", trackRowSubtype),
		u16("index_shift", 0),
		u32("unknown_bitmask", 0),
		u32("sample_rate", t.SampleRate),
		u32("composer_id", 0),
		u32("file_size", uint32(t.FileSize)),
		u32("unknown1", 0),
		u32("artwork_id", artworkID),
		u32("key_id", keyID),
		u32("orig_artist_id", 0),
		u32("label_id", labelID),
		u32("remixer_id", 0),
		u32("bitrate", t.BitrateKbps),
		u32("track_number", uint32(t.TrackNumber)),
		u32("tempo", tempo),
		u32("genre_id", genreID),
		u32("album_id", albumID),
		u32("artist_id", artistID),
		u32("id", t.ID),
		u16("disc", 0),
		u16("play_count", 0),
		u16("year", uint16(t.Year)),
		u16("sample_depth", t.BitDepth),
		u16("duration", uint16(t.DurationSecs+0.5)),
		u16("sentinel_41", 41),
		u16("sentinel_1", 1),
		u16("sentinel_3", 3),
		u16("color_id", 0),
		u8("rating", 0),
	}, trackFixedHeaderLen)

	strs := trackStrings(t)

	offTableLen := 2 * trackStringCount
	offsets := make([]uint16, trackStringCount)
	pos := trackFixedHeaderLen + offTableLen
	for i, s := range strs {
		offsets[i] = uint16(pos)
		pos += dsstring.EncodedLen(s)
	}

	row := make([]byte, 0, pos)
	row = append(row, pack(fixed)...)
	for _, off := range offsets {
		row = append(row, byte(off), byte(off>>8))
	}
	for _, s := range strs {
		row = append(row, dsstring.Encode(s)...)
	}
	return row
}

// trackStrings returns the 21 DeviceSQL strings a track row carries, in
// the fixed order spec.md §4.3 names. Fields with no analogue in
// track.TrackAnalysis (ISRC, lyricist, message, publish_track_info,
// autoload_hotcues, mix_name) are not modeled by this writer and are
// emitted empty, matching spec.md §1's "does not model the full known tag
// surface" non-goal.
func trackStrings(t track.TrackAnalysis) [trackStringCount]string {
	var releaseDate string
	if t.Year > 0 {
		releaseDate = fmt.Sprintf("%04d-01-01", t.Year)
	}
	now := time.Now().Format("2006-01-02")

	return [trackStringCount]string{
		"",                                       // 0: ISRC
		"",                                       // 1: lyricist
		"",                                       // 2
		"",                                       // 3
		"",                                       // 4
		"",                                       // 5: message
		"",                                       // 6: publish_track_info
		"",                                       // 7: autoload_hotcues
		"",                                       // 8
		"",                                       // 9
		now,                                      // 10: date_added
		releaseDate,                              // 11: release_date
		"",                                       // 12: mix_name
		"",                                       // 13
		"/" + layout.AnalyzePath(t.ID),           // 14: analyze_path
		now,                                      // 15: analyze_date
		t.Comment,                                // 16: comment
		t.Title,                                  // 17: title
		"",                                       // 18
		path.Base(t.FilePath),                    // 19: filename
		t.FilePath,                               // 20: file_path
	}
}
