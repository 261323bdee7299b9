package rekordexport

import (
	"io"
	"log"
	"os"

	"github.com/go-audio/wav"
	"github.com/pkg/errors"

	"github.com/xilver1/rekord-export/track"
)

// copyFile copies src to dst, overwriting any existing file at dst. dst's
// parent directory must already exist.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.WithStack(err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.WithStack(err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// checkWavHeader compares a copied WAV file's decoded header against the
// SampleRate and BitDepth the track's own analysis recorded. It is purely
// advisory: a mismatch is logged, never returned as an error, since the
// file has already been copied by the time this check runs.
func checkWavHeader(path string, t track.TrackAnalysis) {
	if t.FileType != track.FileTypeWAV {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		log.Printf("rekordexport: could not reopen %s for header cross-check: %v", path, err)
		return
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		log.Printf("rekordexport: %s does not decode as a valid WAV file", path)
		return
	}
	if uint32(dec.SampleRate) != t.SampleRate {
		log.Printf("rekordexport: %s: WAV sample rate %d does not match analyzed sample rate %d", path, dec.SampleRate, t.SampleRate)
	}
	if uint16(dec.BitDepth) != t.BitDepth {
		log.Printf("rekordexport: %s: WAV bit depth %d does not match analyzed bit depth %d", path, dec.BitDepth, t.BitDepth)
	}
}
