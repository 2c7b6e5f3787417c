package site

import (
	"html/template"
	"unicode/utf8"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	"github.com/ziadkadry99/cubeclub/internal/media"
	"github.com/ziadkadry99/cubeclub/internal/sheet"
)

// blurbRunes is how much of a cube description the home page shows.
const blurbRunes = 100

// homeCubes is how many cubes the home page shows.
const homeCubes = 3

// Tournament is a tournament card.
type Tournament struct {
	Index       int
	Title       string
	ImageURL    string
	Date        string
	Location    string
	Time        string
	Description template.HTML
	Gallery     media.Gallery
	GalleryHref string
}

// ShowcaseItem is a showcase tile.
type ShowcaseItem struct {
	Title    string
	ImageURL string
}

// Cube is a cube card.
type Cube struct {
	Name        string
	ImageURL    string
	Description template.HTML
	Blurb       string
	Features    []string
}

// Section is a list view together with its load state.
type Section[T any] struct {
	Items   []T
	Loading bool
	Failed  bool
}

// Empty reports whether a settled section has nothing to show.
func (s Section[T]) Empty() bool {
	return !s.Loading && !s.Failed && len(s.Items) == 0
}

// HomeView is the landing page.
type HomeView struct {
	Loading  bool
	Upcoming *Tournament
	Previous *Tournament
	Cubes    Section[Cube]
}

// TournamentsView is one tab of the tournaments page.
type TournamentsView struct {
	Tab         Tab
	Tournaments Section[Tournament]
}

// GalleryPage lists every photo of one previous tournament.
type GalleryPage struct {
	Index    int
	Title    string
	Images   []string
	CloseURL string
}

// Views builds view models from catalog snapshots.
type Views struct {
	md    *Markdown
	links Links
}

// NewViews creates a view builder whose hrefs come from links.
func NewViews(md *Markdown, links Links) Views {
	if md == nil {
		md = NewMarkdown()
	}
	return Views{md: md, links: links}
}

// Home selects the first upcoming and previous tournament and the first
// few cubes, in source order.
func (v Views) Home(snap catalog.Snapshot) HomeView {
	view := HomeView{Loading: !snap.Loaded}
	if up := snap.Get(catalog.UpcomingTournaments); len(up) > 0 {
		t := v.tournament(up[0], 0, false)
		view.Upcoming = &t
	}
	if prev := snap.Get(catalog.PreviousTournaments); len(prev) > 0 {
		t := v.tournament(prev[0], 0, false)
		view.Previous = &t
	}

	cubes := snap.Get(catalog.Cubes)
	if len(cubes) > homeCubes {
		cubes = cubes[:homeCubes]
	}
	view.Cubes = section(snap, catalog.Cubes, cubes, v.cube)
	return view
}

// Tournaments lists the tournaments of tab.
func (v Views) Tournaments(snap catalog.Snapshot, tab Tab) TournamentsView {
	cat := catalog.UpcomingTournaments
	if tab == TabPrevious {
		cat = catalog.PreviousTournaments
	}
	i := 0
	return TournamentsView{
		Tab: tab,
		Tournaments: section(snap, cat, snap.Get(cat), func(rec sheet.Record) Tournament {
			t := v.tournament(rec, i, tab == TabPrevious)
			i++
			return t
		}),
	}
}

// Showcase lists every showcase item.
func (v Views) Showcase(snap catalog.Snapshot) Section[ShowcaseItem] {
	return section(snap, catalog.Showcase, snap.Get(catalog.Showcase), func(rec sheet.Record) ShowcaseItem {
		return ShowcaseItem{Title: rec.Get("title"), ImageURL: rec.Get("image_url")}
	})
}

// Cubes lists every cube.
func (v Views) Cubes(snap catalog.Snapshot) Section[Cube] {
	return section(snap, catalog.Cubes, snap.Get(catalog.Cubes), v.cube)
}

// Gallery rebuilds the photo list of previous tournament index. ok is false
// when there is no such tournament or it has no photos.
func (v Views) Gallery(snap catalog.Snapshot, index int) (GalleryPage, bool) {
	prev := snap.Get(catalog.PreviousTournaments)
	if index < 0 || index >= len(prev) {
		return GalleryPage{}, false
	}
	g := media.GalleryOf(prev[index])
	if g.Empty() {
		return GalleryPage{}, false
	}
	return GalleryPage{
		Index:    index,
		Title:    g.Title,
		Images:   g.Images,
		CloseURL: v.links.Page(PageTournaments, TabPrevious),
	}, true
}

func (v Views) tournament(rec sheet.Record, index int, withGallery bool) Tournament {
	t := Tournament{
		Index:       index,
		Title:       rec.Get("title"),
		ImageURL:    rec.Get("image_url"),
		Date:        rec.Get("date"),
		Location:    rec.Get("location"),
		Time:        rec.Get("time"),
		Description: v.md.Render(rec.Get("description")),
	}
	if withGallery {
		t.Gallery = media.GalleryOf(rec)
		if t.Gallery.HasMore() {
			t.GalleryHref = v.links.Gallery(index)
		}
	}
	return t
}

func (v Views) cube(rec sheet.Record) Cube {
	c := Cube{
		Name:        rec.Get("name"),
		ImageURL:    rec.Get("image_url"),
		Description: v.md.Render(rec.Get("description")),
		Features:    rec.List("features"),
	}
	if rec.Has("description") {
		c.Blurb = Truncate(rec.Get("description"), blurbRunes) + "..."
	}
	return c
}

// section maps records through fn and attaches the load state of cat. A
// category counts as failed only when the load round failed and it has no
// data of its own.
func section[T any](snap catalog.Snapshot, cat catalog.Category, recs []sheet.Record, fn func(sheet.Record) T) Section[T] {
	s := Section[T]{
		Loading: !snap.Loaded,
		Failed:  snap.Loaded && snap.Err != nil && len(snap.Get(cat)) == 0,
	}
	if s.Loading || s.Failed {
		return s
	}
	s.Items = make([]T, 0, len(recs))
	for _, rec := range recs {
		s.Items = append(s.Items, fn(rec))
	}
	return s
}

// Truncate returns the first n runes of s.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
