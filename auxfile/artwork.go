package auxfile

import "github.com/xilver1/rekord-export/layout"

// ArtworkPaths describes where an artwork id's thumbnail and full-size
// images live on the device.
type ArtworkPaths struct {
	Thumbnail string
	Full      string
}

// BuildArtworkPaths derives an artwork id's on-device image paths.
func BuildArtworkPaths(id uint32) ArtworkPaths {
	return ArtworkPaths{
		Thumbnail: layout.ArtworkThumbnailPath(id),
		Full:      layout.ArtworkFullPath(id),
	}
}
