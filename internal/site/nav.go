package site

import (
	"fmt"
	"strconv"
	"strings"
)

// PageID names a top-level page.
type PageID string

const (
	PageHome        PageID = "home"
	PageTournaments PageID = "tournaments"
	PageShowcase    PageID = "showcase"
	PageCubes       PageID = "cubes"
)

// Pages lists the navigable pages in menu order.
var Pages = []PageID{PageHome, PageTournaments, PageShowcase, PageCubes}

// Label is the menu text of the page.
func (p PageID) Label() string {
	switch p {
	case PageTournaments:
		return "Tournaments"
	case PageShowcase:
		return "Showcase"
	case PageCubes:
		return "Cubes"
	default:
		return "Home"
	}
}

// ResolvePage maps a requested page id to a known page, falling back to home.
func ResolvePage(id string) PageID {
	id = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(id)), "#")
	for _, p := range Pages {
		if string(p) == id {
			return p
		}
	}
	return PageHome
}

// Tab selects which tournament list the tournaments page shows.
type Tab string

const (
	TabUpcoming Tab = "upcoming"
	TabPrevious Tab = "previous"
)

// Tabs lists the tournament tabs in display order.
var Tabs = []Tab{TabUpcoming, TabPrevious}

// Label is the tab button text.
func (t Tab) Label() string {
	if t == TabPrevious {
		return "Previous Tournaments"
	}
	return "Upcoming Tournaments"
}

// ResolveTab defaults anything unknown to the upcoming tab.
func ResolveTab(s string) Tab {
	if Tab(strings.ToLower(strings.TrimSpace(s))) == TabPrevious {
		return TabPrevious
	}
	return TabUpcoming
}

// NavLink is one entry of the menu or the tab bar.
type NavLink struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

// Navigation is the state of a single page transition: exactly one page is
// active, and on the tournaments page exactly one tab.
type Navigation struct {
	Active PageID
	Tab    Tab
	Links  []NavLink
	Tabs   []NavLink
}

// NewNavigation builds the menu and tab bar for a transition to page.
func NewNavigation(links Links, page PageID, tab Tab) Navigation {
	nav := Navigation{Active: page}
	for _, p := range Pages {
		nav.Links = append(nav.Links, NavLink{
			ID:     string(p),
			Label:  p.Label(),
			Href:   links.Page(p, TabUpcoming),
			Active: p == page,
		})
	}
	if page == PageTournaments {
		nav.Tab = ResolveTab(string(tab))
		for _, t := range Tabs {
			nav.Tabs = append(nav.Tabs, NavLink{
				ID:     string(t),
				Label:  t.Label(),
				Href:   links.Page(PageTournaments, t),
				Active: t == nav.Tab,
			})
		}
	}
	return nav
}

// PagePath is the live route of page, and of tab on the tournaments page.
func PagePath(page PageID, tab Tab) string {
	return LiveLinks.Page(page, tab)
}

// Links builds hrefs for either the live server or the static build. Static
// hrefs are relative, prefixed with Base so pages at any depth resolve.
type Links struct {
	Static bool
	Base   string
}

// LiveLinks are the absolute routes served by the live server.
var LiveLinks = Links{Base: "/"}

// StaticLinks returns links for a static page nested depth directories deep.
func StaticLinks(depth int) Links {
	return Links{Static: true, Base: strings.Repeat("../", depth)}
}

// Page returns the href of page (and tab, on the tournaments page).
func (l Links) Page(page PageID, tab Tab) string {
	if l.Static {
		switch page {
		case PageHome:
			return l.Base + "index.html"
		case PageTournaments:
			if tab == TabPrevious {
				return l.Base + "tournaments-previous.html"
			}
			return l.Base + "tournaments.html"
		default:
			return l.Base + string(page) + ".html"
		}
	}

	switch page {
	case PageHome:
		return l.Base
	case PageTournaments:
		if tab == TabPrevious {
			return l.Base + "tournaments?tab=previous"
		}
		return l.Base + "tournaments"
	default:
		return l.Base + string(page)
	}
}

// Gallery returns the href of the gallery of previous tournament index.
func (l Links) Gallery(index int) string {
	if l.Static {
		return fmt.Sprintf("%sgallery/%d.html", l.Base, index)
	}
	return fmt.Sprintf("%sgallery/%d", l.Base, index)
}

// Lightbox returns the href showing image pos of set on view.
func (l Links) Lightbox(view ViewKey, set, pos int) string {
	if l.Static {
		return fmt.Sprintf("%slightbox/%s/%d/%d.html", l.Base, view, set, pos)
	}
	return fmt.Sprintf("%slightbox/%s/%d/%d", l.Base, view, set, pos)
}

// Asset returns the href of a generated or copied asset.
func (l Links) Asset(name string) string {
	if l.Static {
		return l.Base + name
	}
	return l.Base + "assets/" + name
}

// SearchAction is the action of the search form.
func (l Links) SearchAction() string {
	if l.Static {
		return l.Base + "search.html"
	}
	return l.Base + "search"
}

// SearchIndex is where the static search index is written.
func (l Links) SearchIndex() string {
	return l.Base + "search-index.json"
}

// Mode is "static" or "live", exposed to the page script.
func (l Links) Mode() string {
	if l.Static {
		return "static"
	}
	return "live"
}

// ViewKey identifies a rendered page variant whose images the lightbox can
// step through: a page, a tournaments tab, or the gallery of one tournament.
type ViewKey string

const (
	ViewHome                ViewKey = "home"
	ViewTournamentsUpcoming ViewKey = "tournaments-upcoming"
	ViewTournamentsPrevious ViewKey = "tournaments-previous"
	ViewShowcase            ViewKey = "showcase"
	ViewCubes               ViewKey = "cubes"
)

// PageViews lists the view keys of the top-level pages.
var PageViews = []ViewKey{ViewHome, ViewTournamentsUpcoming, ViewTournamentsPrevious, ViewShowcase, ViewCubes}

const galleryViewPrefix = "gallery-"

// GalleryView is the view key of the gallery of previous tournament index.
func GalleryView(index int) ViewKey {
	return ViewKey(galleryViewPrefix + strconv.Itoa(index))
}

// PageView returns the view key shown for page and tab.
func PageView(page PageID, tab Tab) ViewKey {
	switch page {
	case PageTournaments:
		if tab == TabPrevious {
			return ViewTournamentsPrevious
		}
		return ViewTournamentsUpcoming
	case PageShowcase:
		return ViewShowcase
	case PageCubes:
		return ViewCubes
	default:
		return ViewHome
	}
}

// Target describes what a view key renders.
type Target struct {
	Page    PageID
	Tab     Tab
	Gallery int // -1 unless the view is a gallery
}

// ParseViewKey validates a view key.
func ParseViewKey(s string) (Target, error) {
	switch ViewKey(s) {
	case ViewHome:
		return Target{Page: PageHome, Gallery: -1}, nil
	case ViewTournamentsUpcoming:
		return Target{Page: PageTournaments, Tab: TabUpcoming, Gallery: -1}, nil
	case ViewTournamentsPrevious:
		return Target{Page: PageTournaments, Tab: TabPrevious, Gallery: -1}, nil
	case ViewShowcase:
		return Target{Page: PageShowcase, Gallery: -1}, nil
	case ViewCubes:
		return Target{Page: PageCubes, Gallery: -1}, nil
	}
	if rest, ok := strings.CutPrefix(s, galleryViewPrefix); ok {
		n, err := strconv.Atoi(rest)
		if err == nil && n >= 0 && strconv.Itoa(n) == rest {
			return Target{Page: PageTournaments, Tab: TabPrevious, Gallery: n}, nil
		}
	}
	return Target{}, fmt.Errorf("unknown view %q", s)
}
