package pdb

import (
	"encoding/binary"
	"testing"

	"github.com/xilver1/rekord-export/page"
	"github.com/xilver1/rekord-export/track"
)

func TestEmptyExportIsFortyOnePages(t *testing.T) {
	out := Build(nil, nil)
	if len(out)%page.Size != 0 {
		t.Fatalf("len(out) = %d, not a multiple of %d", len(out), page.Size)
	}
	numPages := len(out) / page.Size
	if numPages != 41 {
		t.Errorf("numPages = %d, want 41 (1 header + 20 index + 20 data)", numPages)
	}

	header := out[:page.Size]
	if got := binary.LittleEndian.Uint32(header[0x04:]); got != page.Size {
		t.Errorf("page_size = %d, want %d", got, page.Size)
	}
	if got := binary.LittleEndian.Uint32(header[0x0C:]); got != uint32(numPages) {
		t.Errorf("next_unused_page = %d, want %d", got, numPages)
	}
}

func TestEmptyExportHasEightColorsAndTwentyTwoUK17Rows(t *testing.T) {
	out := Build(nil, nil)
	header := out[:page.Size]

	colorsPtr := readTablePointer(header, tableColors)
	if n := countRows(out, colorsPtr); n != 8 {
		t.Errorf("Colors table has %d rows, want 8", n)
	}

	uk17Ptr := readTablePointer(header, tableUK17)
	if n := countRows(out, uk17Ptr); n != 22 {
		t.Errorf("uk17 table has %d rows, want 22", n)
	}
}

func TestSingleTrackScenario(t *testing.T) {
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
	out := Build([]track.TrackAnalysis{tr}, nil)
	header := out[:page.Size]

	tracksPtr := readTablePointer(header, tableTracks)
	if n := countRows(out, tracksPtr); n != 1 {
		t.Fatalf("Tracks table has %d rows, want 1", n)
	}
	artistsPtr := readTablePointer(header, tableArtists)
	if n := countRows(out, artistsPtr); n != 1 {
		t.Errorf("Artists table has %d rows, want 1", n)
	}
	for _, typ := range []int{tableGenres, tableAlbums, tableLabels} {
		ptr := readTablePointer(header, typ)
		if n := countRows(out, ptr); n != 0 {
			t.Errorf("table %d has %d rows, want 0", typ, n)
		}
	}
}

func readTablePointer(header []byte, typ int) page.TablePointer {
	off := 0x10 + typ*16
	return page.TablePointer{
		FirstCounter: binary.LittleEndian.Uint32(header[off:]),
		IndexPage:    binary.LittleEndian.Uint32(header[off+4:]),
		LastDataPage: binary.LittleEndian.Uint32(header[off+8:]),
		TableType:    binary.LittleEndian.Uint32(header[off+12:]),
	}
}

func countRows(out []byte, ptr page.TablePointer) int {
	if ptr.LastDataPage == ptr.IndexPage {
		return 0
	}
	total := 0
	p := ptr.IndexPage + 1
	for {
		data := out[p*page.Size : (p+1)*page.Size]
		_, numRows := page.UnpackRowCounts(data[0x18:0x1B])
		total += numRows
		next := binary.LittleEndian.Uint32(data[0x08:])
		if p == ptr.LastDataPage || next == 0xFFFFFFFF {
			break
		}
		p = next
	}
	return total
}
