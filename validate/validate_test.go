package validate

import (
	"testing"

	"github.com/xilver1/rekord-export/page"
	"github.com/xilver1/rekord-export/pdb"
	"github.com/xilver1/rekord-export/track"
)

func TestValidateAcceptsEmptyExport(t *testing.T) {
	out := pdb.Build(nil, nil)
	res, err := Validate(out)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if res.NumTables != page.NumTables {
		t.Errorf("NumTables = %d, want %d", res.NumTables, page.NumTables)
	}
	if int(res.NextUnusedPage) != len(out)/page.Size {
		t.Errorf("NextUnusedPage = %d, want %d", res.NextUnusedPage, len(out)/page.Size)
	}
}

func TestValidateAcceptsSingleTrackExport(t *testing.T) {
	tr := track.TrackAnalysis{
		ID:           1,
		Title:        "Test",
		Artist:       "A",
		BPM:          128.0,
		DurationSecs: 180.0,
		SampleRate:   44100,
		BitDepth:     16,
		BitrateKbps:  320,
		Year:         2024,
		FilePath:     "/Contents/Test.mp3",
		FileType:     track.FileTypeMP3,
	}
	out := pdb.Build([]track.TrackAnalysis{tr}, nil)
	res, err := Validate(out)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if res.RowCounts[0] != 1 {
		t.Errorf("Tracks row count = %d, want 1", res.RowCounts[0])
	}
}

func TestValidateRejectsTruncatedBuffer(t *testing.T) {
	out := pdb.Build(nil, nil)
	if _, err := Validate(out[:page.Size+1]); err == nil {
		t.Errorf("expected error for a buffer length not a multiple of page size")
	}
}

func TestValidateRejectsBadFlagByte(t *testing.T) {
	out := pdb.Build(nil, nil)
	corrupt := append([]byte(nil), out...)
	// Corrupt the Tracks table's single empty data page's flag byte.
	tracksIndexPage := readIndexPage(corrupt)
	dataPage := tracksIndexPage + 1
	corrupt[dataPage*page.Size+0x1B] = 0x55
	if _, err := Validate(corrupt); err == nil {
		t.Errorf("expected error for an invalid page_flags byte")
	}
}

func TestValidateRejectsCycle(t *testing.T) {
	out := pdb.Build(nil, nil)
	corrupt := append([]byte(nil), out...)
	tracksIndexPage := readIndexPage(corrupt)
	dataPage := tracksIndexPage + 1
	// Point the lone data page's next_page back at itself.
	p := corrupt[dataPage*page.Size : (dataPage+1)*page.Size]
	p[0x08] = byte(dataPage)
	p[0x09] = byte(dataPage >> 8)
	p[0x0A] = byte(dataPage >> 16)
	p[0x0B] = byte(dataPage >> 24)
	if _, err := Validate(corrupt); err == nil {
		t.Errorf("expected error for a cyclic next_page chain")
	}
}

// readIndexPage returns the Tracks table's index page, page 1 in the fixed
// table order (spec.md §4.3).
func readIndexPage(buf []byte) uint32 {
	header := buf[:page.Size]
	return uint32(header[0x14]) | uint32(header[0x15])<<8 | uint32(header[0x16])<<16 | uint32(header[0x17])<<24
}
