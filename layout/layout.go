// Package layout derives the on-device directory paths rekordbox expects
// for per-track analysis and artwork files (spec.md §4.3, §4.6).
package layout

import "fmt"

// AnalyzePath returns the absolute path of a track's ANLZ0000.DAT file
// (without the leading filesystem root), e.g. AnalyzePath(1) ==
// "PIONEER/USBANLZ/P000/00000001/ANLZ0000.DAT".
func AnalyzePath(id uint32) string {
	return fmt.Sprintf("PIONEER/USBANLZ/P%03d/%08X/ANLZ0000.DAT", (id/256)%1000, id)
}

// AnalyzeDir returns the directory holding a track's ANLZ files, the
// parent of AnalyzePath.
func AnalyzeDir(id uint32) string {
	return fmt.Sprintf("PIONEER/USBANLZ/P%03d/%08X", (id/256)%1000, id)
}

// ArtworkFolder returns the artwork batch folder number for an artwork id,
// 1-based: floor(id/100)+1.
func ArtworkFolder(id uint32) uint32 {
	return id/100 + 1
}

// ArtworkThumbnailPath and ArtworkFullPath return an artwork id's batched
// thumbnail and full-size image paths under PIONEER/Artwork/{folder:05d}/
// (spec.md §4.5).

func ArtworkThumbnailPath(id uint32) string {
	return fmt.Sprintf("PIONEER/Artwork/%05d/a%d.jpg", ArtworkFolder(id), id)
}

func ArtworkFullPath(id uint32) string {
	return fmt.Sprintf("PIONEER/Artwork/%05d/a%d_m.jpg", ArtworkFolder(id), id)
}
