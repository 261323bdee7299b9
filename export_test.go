package rekordexport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xilver1/rekord-export/track"
	"github.com/xilver1/rekord-export/validate"
)

func TestExportProducesExpectedLayout(t *testing.T) {
	sourceDir := t.TempDir()
	targetDir := t.TempDir()

	const audio = "dummy mp3 payload"
	if err := os.WriteFile(filepath.Join(sourceDir, "Track.mp3"), []byte(audio), 0644); err != nil {
		t.Fatalf("seeding source file: %v", err)
	}

	tr := track.TrackAnalysis{
		ID:           1,
		Title:        "Test Track",
		Artist:       "Test/Artist",
		Album:        "Test Album",
		BPM:          128,
		DurationSecs: 180,
		SampleRate:   44100,
		BitDepth:     16,
		BitrateKbps:  320,
		FilePath:     "/Contents/Track.mp3",
		FileType:     track.FileTypeMP3,
	}

	if err := Export([]track.TrackAnalysis{tr}, nil, sourceDir, targetDir, "Test DJ"); err != nil {
		t.Fatalf("Export: %v", err)
	}

	for _, rel := range []string{
		"PIONEER/rekordbox/export.pdb",
		"PIONEER/DEVSETTING.DAT",
		"PIONEER/djprofile.nxs",
		"PIONEER/DeviceLibBackup/rbDevLibBaInfo.json",
		"PIONEER/USBANLZ/P000/00000001/ANLZ0000.DAT",
		"PIONEER/USBANLZ/P000/00000001/ANLZ0000.EXT",
		"PIONEER/USBANLZ/P000/00000001/ANLZ0000.2EX",
		"Contents/Track.mp3",
		"Contents/Test_Artist/Test Album/Track.mp3",
	} {
		if _, err := os.Stat(filepath.Join(targetDir, rel)); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}

	pdbBytes, err := os.ReadFile(filepath.Join(targetDir, "PIONEER/rekordbox/export.pdb"))
	if err != nil {
		t.Fatalf("reading export.pdb: %v", err)
	}
	if _, err := validate.Validate(pdbBytes); err != nil {
		t.Errorf("validate.Validate(export.pdb) = %v, want nil", err)
	}

	flat, err := os.ReadFile(filepath.Join(targetDir, "Contents/Track.mp3"))
	if err != nil || string(flat) != audio {
		t.Errorf("flat-layout copy mismatch: %q, err %v", flat, err)
	}
}

func TestExportRejectsMissingTarget(t *testing.T) {
	sourceDir := t.TempDir()
	if err := Export(nil, nil, sourceDir, filepath.Join(sourceDir, "does-not-exist"), "Test DJ"); err == nil {
		t.Errorf("expected an error for a nonexistent target directory")
	}
}

func TestExportRejectsNonDirectoryTarget(t *testing.T) {
	sourceDir := t.TempDir()
	file := filepath.Join(sourceDir, "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}
	if err := Export(nil, nil, sourceDir, file, "Test DJ"); err == nil {
		t.Errorf("expected an error for a non-directory target")
	}
}
