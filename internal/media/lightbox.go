// Package media holds the image viewer state and resolves which images a
// viewer steps through.
package media

import (
	"errors"
	"fmt"
)

// Keys understood by HandleKey.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// ErrNoImages is returned when a viewer is opened on an empty set.
var ErrNoImages = errors.New("no images to show")

// Lightbox is a single-image viewer stepping over a transient image list.
// The zero value is a closed lightbox.
type Lightbox struct {
	images []string
	index  int
	open   bool
}

// Open shows images[index]. The list replaces any previous one.
func (l *Lightbox) Open(images []string, index int) error {
	if len(images) == 0 {
		return ErrNoImages
	}
	if index < 0 || index >= len(images) {
		return fmt.Errorf("image index %d out of range [0,%d)", index, len(images))
	}
	l.images = images
	l.index = index
	l.open = true
	return nil
}

// Close hides the viewer and discards the list.
func (l *Lightbox) Close() {
	l.open = false
	l.images = nil
	l.index = 0
}

// Next steps forward, wrapping to the first image.
func (l *Lightbox) Next() {
	if !l.open {
		return
	}
	l.index = (l.index + 1) % len(l.images)
}

// Prev steps back, wrapping to the last image.
func (l *Lightbox) Prev() {
	if !l.open {
		return
	}
	l.index = (l.index - 1 + len(l.images)) % len(l.images)
}

// HandleKey applies a keyboard key while the viewer is open and reports
// whether the key did anything.
func (l *Lightbox) HandleKey(key string) bool {
	if !l.open {
		return false
	}
	switch key {
	case KeyEscape:
		l.Close()
	case KeyArrowRight:
		l.Next()
	case KeyArrowLeft:
		l.Prev()
	default:
		return false
	}
	return true
}

// IsOpen reports whether the viewer is showing an image.
func (l *Lightbox) IsOpen() bool { return l.open }

// Index returns the current position.
func (l *Lightbox) Index() int { return l.index }

// Len returns the size of the current list.
func (l *Lightbox) Len() int { return len(l.images) }

// Current returns the image being shown.
func (l *Lightbox) Current() (string, bool) {
	if !l.open {
		return "", false
	}
	return l.images[l.index], true
}

// NextIndex and PrevIndex return the positions Next and Prev would move to
// without moving.
func (l *Lightbox) NextIndex() int {
	if len(l.images) == 0 {
		return 0
	}
	return (l.index + 1) % len(l.images)
}

func (l *Lightbox) PrevIndex() int {
	if len(l.images) == 0 {
		return 0
	}
	return (l.index - 1 + len(l.images)) % len(l.images)
}
