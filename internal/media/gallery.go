package media

import "github.com/ziadkadry99/cubeclub/internal/sheet"

// GalleryField is the multi-valued column holding a tournament's photos.
const GalleryField = "gallery_images"

// PreviewLimit is how many gallery photos a tournament card shows inline.
const PreviewLimit = 4

// Gallery is the image list of one tournament, rebuilt from its record on
// every use.
type Gallery struct {
	Title  string
	Images []string
}

// GalleryOf splits the gallery field of rec.
func GalleryOf(rec sheet.Record) Gallery {
	return Gallery{Title: rec.Get("title"), Images: rec.List(GalleryField)}
}

// Preview returns at most PreviewLimit images.
func (g Gallery) Preview() []string {
	if len(g.Images) <= PreviewLimit {
		return g.Images
	}
	return g.Images[:PreviewLimit]
}

// HasMore reports whether the gallery has photos beyond the preview.
func (g Gallery) HasMore() bool { return len(g.Images) > PreviewLimit }

// Empty reports whether there is nothing to show.
func (g Gallery) Empty() bool { return len(g.Images) == 0 }
