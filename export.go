package rekordexport

import (
	"os"
	"path/filepath"

	"github.com/mewkiz/pkg/osutil"
	"github.com/pkg/errors"

	"github.com/xilver1/rekord-export/anlz"
	"github.com/xilver1/rekord-export/auxfile"
	"github.com/xilver1/rekord-export/layout"
	"github.com/xilver1/rekord-export/pdb"
	"github.com/xilver1/rekord-export/track"
)

// skeletonDirs are the top-level directories every export carries,
// relative to the target root (spec.md §4.6).
var skeletonDirs = []string{
	"PIONEER/rekordbox",
	"PIONEER/USBANLZ",
	"PIONEER/Artwork",
	"PIONEER/DeviceLibBackup",
	"Contents",
}

// Export renders tracks and playlists into a complete USB export rooted at
// targetDir, copying each track's audio payload from sourceDir. profileName
// is recorded in djprofile.nxs. The caller is expected to operate on a
// freshly provisioned or wiped target; Export does not attempt cleanup on
// error (spec.md §5, "Cancellation and timeouts").
func Export(tracks []track.TrackAnalysis, playlists []track.Playlist, sourceDir, targetDir, profileName string) error {
	if err := validateTarget(targetDir); err != nil {
		return err
	}
	if err := makeSkeleton(targetDir); err != nil {
		return err
	}

	pdbBytes := pdb.Build(tracks, playlists)
	if err := writeFile(filepath.Join(targetDir, "PIONEER/rekordbox/export.pdb"), pdbBytes); err != nil {
		return err
	}

	for _, t := range tracks {
		if err := exportTrackAnalysis(targetDir, t); err != nil {
			return errors.Wrapf(err, "track %d", t.ID)
		}
		if err := exportTrackAudio(sourceDir, targetDir, t); err != nil {
			return errors.Wrapf(err, "track %d", t.ID)
		}
	}

	if err := writeFile(filepath.Join(targetDir, "PIONEER/DEVSETTING.DAT"), auxfile.BuildDevSetting()); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(targetDir, "PIONEER/djprofile.nxs"), auxfile.BuildProfile(profileName)); err != nil {
		return err
	}

	backup, err := auxfile.BuildDeviceBackup(deviceBackupInfo(targetDir, profileName))
	if err != nil {
		return errors.Wrap(err, "building device backup metadata")
	}
	if err := writeFile(filepath.Join(targetDir, "PIONEER/DeviceLibBackup/rbDevLibBaInfo.json"), backup); err != nil {
		return err
	}

	return nil
}

// validateTarget confirms targetDir exists, is a directory, and is
// writable, by creating and removing a probe file (spec.md §4.6).
func validateTarget(targetDir string) error {
	if !osutil.Exists(targetDir) {
		return errors.Errorf("target %q does not exist", targetDir)
	}
	fi, err := os.Stat(targetDir)
	if err != nil {
		return errors.Wrapf(err, "target %q", targetDir)
	}
	if !fi.IsDir() {
		return errors.Errorf("target %q is not a directory", targetDir)
	}
	probe := filepath.Join(targetDir, ".rekordexport-probe")
	if err := os.WriteFile(probe, []byte{}, 0644); err != nil {
		return errors.Wrapf(err, "target %q is not writable", targetDir)
	}
	return os.Remove(probe)
}

func makeSkeleton(targetDir string) error {
	for _, dir := range skeletonDirs {
		if err := os.MkdirAll(filepath.Join(targetDir, dir), 0755); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}
	return nil
}

// exportTrackAnalysis writes a track's three ANLZ variants under
// PIONEER/USBANLZ/P.../{hex}/ (spec.md §4.3, §4.6).
func exportTrackAnalysis(targetDir string, t track.TrackAnalysis) error {
	dir := filepath.Join(targetDir, layout.AnalyzeDir(t.ID))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.WithStack(err)
	}
	analyzePath := "/" + layout.AnalyzePath(t.ID)

	files := []struct {
		name string
		data []byte
	}{
		{"ANLZ0000.DAT", anlz.BuildDAT(analyzePath, t)},
		{"ANLZ0000.EXT", anlz.BuildEXT(analyzePath, t)},
		{"ANLZ0000.2EX", anlz.Build2EX(analyzePath, t)},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.data); err != nil {
			return err
		}
	}
	return nil
}

// exportTrackAudio copies a track's source audio file into both the flat
// and artist/album-hierarchical layouts under Contents/ (spec.md §4.6).
func exportTrackAudio(sourceDir, targetDir string, t track.TrackAnalysis) error {
	name := filepath.Base(t.FilePath)
	src := filepath.Join(sourceDir, name)

	flatDst := filepath.Join(targetDir, "Contents", name)
	if err := copyFile(src, flatDst); err != nil {
		return errors.Wrapf(err, "copying %s to flat layout", name)
	}
	checkWavHeader(flatDst, t)

	artist := sanitizeComponent(t.Artist)
	album := sanitizeComponent(t.Album)
	hierDst := filepath.Join(targetDir, "Contents", artist, album, name)
	if err := os.MkdirAll(filepath.Dir(hierDst), 0755); err != nil {
		return errors.WithStack(err)
	}
	if err := copyFile(src, hierDst); err != nil {
		return errors.Wrapf(err, "copying %s to hierarchical layout", name)
	}
	return nil
}

// deviceBackupInfo derives the device-backup metadata recorded alongside
// an export. The target directory's base name stands in for the device
// identity, since nothing upstream of Export carries a dedicated device
// id or filesystem label (see DESIGN.md, Open Questions).
func deviceBackupInfo(targetDir, profileName string) auxfile.BackupInfo {
	name := filepath.Base(filepath.Clean(targetDir))
	return auxfile.BackupInfo{
		DeviceID:     name,
		DeviceName:   name,
		Filesystem:   "FAT32",
		BackupPCID:   1,
		BackupPCName: profileName,
	}
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WithStack(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
