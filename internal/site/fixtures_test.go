package site

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	"github.com/ziadkadry99/cubeclub/internal/sheet"
)

var vintageDescription = strings.Repeat("Powered list with every classic. ", 5)

func testRecords() map[catalog.Category][]sheet.Record {
	return map[catalog.Category][]sheet.Record{
		catalog.UpcomingTournaments: {
			{"title": "Spring Open", "date": "2026-04-01", "location": "Hall A", "time": "10:00",
				"description": "An open event for all", "image_url": "https://img.test/spring.jpg"},
			{"title": "Summer Draft", "date": "2026-07-01", "location": "Hall B",
				"description": "Vintage draft weekend", "image_url": "https://img.test/summer.jpg"},
		},
		catalog.PreviousTournaments: {
			{"title": "Winter Open", "date": "2025-12-01", "location": "Hall A",
				"description": "Our winter open", "image_url": "https://img.test/winter.jpg",
				"gallery_images": "https://img.test/w1.jpg; https://img.test/w2.jpg; https://img.test/w3.jpg; " +
					"https://img.test/w4.jpg; https://img.test/w5.jpg; https://img.test/w6.jpg"},
			{"title": "Autumn Cup", "date": "2025-10-01", "location": "Hall C",
				"description": "Small cup", "image_url": "https://img.test/autumn.jpg"},
		},
		catalog.Showcase: {
			{"title": "Signed Playmat", "description": "From the open", "image_url": "https://img.test/mat.jpg"},
		},
		catalog.Cubes: {
			{"name": "Vintage Cube", "description": vintageDescription, "image_url": "https://img.test/vintage.jpg",
				"features": "Power nine; Unpowered"},
			{"name": "Pauper Cube", "description": "Commons only", "image_url": "https://img.test/pauper.jpg"},
			{"name": "Peasant Cube", "image_url": "https://img.test/peasant.jpg"},
			{"name": "Legacy Cube", "description": "Legacy staples", "image_url": "https://img.test/legacy.jpg"},
		},
	}
}

func loadedSnapshot() catalog.Snapshot {
	return catalog.Snapshot{Records: testRecords(), Loaded: true, LoadedAt: time.Now()}
}

func loadedStore() *catalog.Store {
	store := catalog.NewStore()
	for cat, recs := range testRecords() {
		store.Replace(cat, recs)
	}
	store.MarkLoaded(time.Now(), nil)
	return store
}

func newTestRenderer(t testing.TB) *Renderer {
	t.Helper()

	r, err := NewRenderer(SiteInfo{Title: "Cube Club", Tagline: "Draft night"})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func parseDoc(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func attr(sel *goquery.Selection, name string) string {
	v, _ := sel.Attr(name)
	return v
}
