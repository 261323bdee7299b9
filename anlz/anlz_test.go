package anlz

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/xilver1/rekord-export/track"
)

func constantBeatGrid(bpm float64, firstBeatMs uint32, durationMs uint32) track.BeatGrid {
	periodMs := 60000.0 / bpm
	tempoCenti := uint16(bpm*100 + 0.5)
	var beats []track.Beat
	for i := 0; float64(firstBeatMs)+float64(i)*periodMs < float64(firstBeatMs)+float64(durationMs); i++ {
		t := float64(firstBeatMs) + float64(i)*periodMs
		beats = append(beats, track.Beat{
			BeatInBar:  uint8(i%4) + 1,
			TimeMs:     uint32(t), // truncated, matching spec.md §8's worked example
			TempoCenti: tempoCenti,
		})
	}
	return track.BeatGrid{BPM: bpm, FirstBeatMs: firstBeatMs, Beats: beats}
}

func TestFiveSecondBeatGridHasElevenBeats(t *testing.T) {
	bg := constantBeatGrid(128.0, 0, 5000)
	if len(bg.Beats) != 11 {
		t.Fatalf("len(beats) = %d, want 11", len(bg.Beats))
	}
	want := []uint32{0, 468, 937, 1406, 1875, 2343, 2812, 3281, 3750, 4218, 4687}
	for i, b := range bg.Beats {
		if b.TimeMs != want[i] {
			t.Errorf("beat %d time_ms = %d, want %d", i, b.TimeMs, want[i])
		}
	}
	if bg.Beats[0].BeatInBar != 1 {
		t.Errorf("first beat_in_bar = %d, want 1", bg.Beats[0].BeatInBar)
	}
}

func TestDATStartsWithPMAIAndLengthMatches(t *testing.T) {
	tr := track.TrackAnalysis{
		ID:       1,
		BeatGrid: constantBeatGrid(128.0, 0, 5000),
	}
	out := BuildDAT("/PIONEER/USBANLZ/P000/00000001/ANLZ0000.DAT", tr)
	if !bytes.Equal(out[:4], []byte("PMAI")) {
		t.Fatalf("DAT does not start with PMAI: % x", out[:4])
	}
	total := binary.BigEndian.Uint32(out[8:12])
	if int(total) != len(out) {
		t.Errorf("PMAI total length = %d, actual file length = %d", total, len(out))
	}
}

func TestEXTAnd2EXAreIdentical(t *testing.T) {
	tr := track.TrackAnalysis{ID: 1, BeatGrid: constantBeatGrid(128.0, 0, 1000)}
	ext := BuildEXT("/p", tr)
	twoEx := Build2EX("/p", tr)
	if !bytes.Equal(ext, twoEx) {
		t.Errorf(".2EX differs from .EXT")
	}
	if !bytes.Equal(ext[:4], []byte("PMAI")) || !bytes.Equal(twoEx[:4], []byte("PMAI")) {
		t.Errorf(".EXT/.2EX must start with PMAI")
	}
}

func TestCueSectionsOmittedWhenNoCues(t *testing.T) {
	tr := track.TrackAnalysis{ID: 1}
	ext := BuildEXT("/p", tr)
	if bytes.Contains(ext, []byte("PCOB")) || bytes.Contains(ext, []byte("PCO2")) {
		t.Errorf("cue sections present with no cue points")
	}
}

func TestCueStatusMappingsDiffer(t *testing.T) {
	if cueStatusPCOB[track.CueTypeLoop] == cueTypePCO2[track.CueTypeLoop] {
		t.Errorf("PCOB and PCO2 loop status coincide by accident: %d", cueStatusPCOB[track.CueTypeLoop])
	}
}
