package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	"github.com/ziadkadry99/cubeclub/internal/media"
	"github.com/ziadkadry99/cubeclub/internal/search"
)

// ErrNotFound is returned for an unknown view, gallery or image.
var ErrNotFound = errors.New("not found")

// SiteInfo is the branding shown on every page.
type SiteInfo struct {
	Title   string
	Tagline string
}

// pageData holds the data passed to the layout for each page.
type pageData struct {
	Site  SiteInfo
	Title string
	Nav   Navigation
	Links Links
	Query string
	View  any
}

// PageHref returns the href of a page by id, used by templates.
func (p pageData) PageHref(id string) string {
	return p.Links.Page(ResolvePage(id), TabUpcoming)
}

// lightboxData is the view of one lightbox page.
type lightboxData struct {
	Image    string
	Number   int
	Total    int
	PrevURL  string
	NextURL  string
	CloseURL string
	KeyURL   string
}

// Renderer turns catalog snapshots into HTML pages.
type Renderer struct {
	site  SiteInfo
	md    *Markdown
	pages map[string]*template.Template
}

// NewRenderer parses every page template.
func NewRenderer(info SiteInfo) (*Renderer, error) {
	base, err := template.New("layout").Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}
	if _, err := base.Parse(partialsTemplate); err != nil {
		return nil, fmt.Errorf("parsing partial templates: %w", err)
	}

	r := &Renderer{site: info, md: NewMarkdown(), pages: make(map[string]*template.Template)}
	for name, src := range pageTemplates {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) execute(name string, data pageData) ([]byte, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("no template %q", name)
	}
	data.Site = r.site
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// renderView renders the markup of a view before its images are linked.
func (r *Renderer) renderView(snap catalog.Snapshot, links Links, target Target) ([]byte, error) {
	views := NewViews(r.md, links)

	if target.Gallery >= 0 {
		g, ok := views.Gallery(snap, target.Gallery)
		if !ok {
			return nil, ErrNotFound
		}
		return r.execute("gallery", pageData{
			Title: g.Title,
			Nav:   NewNavigation(links, PageTournaments, TabPrevious),
			Links: links,
			View:  g,
		})
	}

	data := pageData{
		Nav:   NewNavigation(links, target.Page, target.Tab),
		Links: links,
	}
	switch target.Page {
	case PageTournaments:
		data.Title = "Tournaments"
		data.View = views.Tournaments(snap, data.Nav.Tab)
	case PageShowcase:
		data.Title = "Showcase"
		data.View = views.Showcase(snap)
	case PageCubes:
		data.Title = "Cubes"
		data.View = views.Cubes(snap)
	default:
		data.View = views.Home(snap)
	}
	return r.execute(string(target.Page), data)
}

// viewDocument renders a view and parses it for DOM queries.
func (r *Renderer) viewDocument(snap catalog.Snapshot, links Links, target Target) (*goquery.Document, error) {
	raw, err := r.renderView(snap, links, target)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(raw))
}

// View renders the page behind a view key with every clickable image
// linked to its lightbox.
func (r *Renderer) View(snap catalog.Snapshot, links Links, view ViewKey) ([]byte, error) {
	target, err := ParseViewKey(string(view))
	if err != nil {
		return nil, ErrNotFound
	}
	doc, err := r.viewDocument(snap, links, target)
	if err != nil {
		return nil, err
	}

	plan := media.ContextImages(doc)
	media.WrapClickable(doc, plan, func(a media.Anchor) string {
		return links.Lightbox(view, a.Set, a.Pos)
	})

	out, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("serialising %s: %w", view, err)
	}
	return []byte(out), nil
}

// Page renders a top-level page.
func (r *Renderer) Page(snap catalog.Snapshot, links Links, page PageID, tab Tab) ([]byte, error) {
	return r.View(snap, links, PageView(page, tab))
}

// Gallery renders the full gallery of previous tournament index.
func (r *Renderer) Gallery(snap catalog.Snapshot, links Links, index int) ([]byte, error) {
	return r.View(snap, links, GalleryView(index))
}

// Plan resolves the image sets of a view.
func (r *Renderer) Plan(snap catalog.Snapshot, links Links, view ViewKey) (media.Plan, error) {
	target, err := ParseViewKey(string(view))
	if err != nil {
		return media.Plan{}, ErrNotFound
	}
	doc, err := r.viewDocument(snap, links, target)
	if err != nil {
		return media.Plan{}, err
	}
	return media.ContextImages(doc), nil
}

// closeURL is where dismissing a lightbox on view leads.
func closeURL(links Links, view ViewKey) string {
	target, _ := ParseViewKey(string(view))
	if target.Gallery >= 0 {
		return links.Gallery(target.Gallery)
	}
	return links.Page(target.Page, target.Tab)
}

// OpenLightbox returns the lightbox on image pos of set within view.
func (r *Renderer) OpenLightbox(snap catalog.Snapshot, links Links, view ViewKey, set, pos int) (*media.Lightbox, error) {
	plan, err := r.Plan(snap, links, view)
	if err != nil {
		return nil, err
	}
	lb, err := plan.Open(set, pos)
	if err != nil {
		return nil, ErrNotFound
	}
	return lb, nil
}

// KeyRedirect applies a key press to the lightbox at set/pos and returns
// where the viewer goes next.
func (r *Renderer) KeyRedirect(snap catalog.Snapshot, links Links, view ViewKey, set, pos int, key string) (string, error) {
	lb, err := r.OpenLightbox(snap, links, view, set, pos)
	if err != nil {
		return "", err
	}
	lb.HandleKey(key)
	if !lb.IsOpen() {
		return closeURL(links, view), nil
	}
	return links.Lightbox(view, set, lb.Index()), nil
}

// Lightbox renders image pos of set within view.
func (r *Renderer) Lightbox(snap catalog.Snapshot, links Links, view ViewKey, set, pos int) ([]byte, error) {
	lb, err := r.OpenLightbox(snap, links, view, set, pos)
	if err != nil {
		return nil, err
	}
	return r.lightboxPage(links, view, set, lb)
}

func (r *Renderer) lightboxPage(links Links, view ViewKey, set int, lb *media.Lightbox) ([]byte, error) {
	target, _ := ParseViewKey(string(view))
	img, _ := lb.Current()
	self := links.Lightbox(view, set, lb.Index())
	return r.execute("lightbox", pageData{
		Title: "Image",
		Nav:   NewNavigation(links, target.Page, target.Tab),
		Links: links,
		View: lightboxData{
			Image:    img,
			Number:   lb.Index() + 1,
			Total:    lb.Len(),
			PrevURL:  links.Lightbox(view, set, lb.PrevIndex()),
			NextURL:  links.Lightbox(view, set, lb.NextIndex()),
			CloseURL: closeURL(links, view),
			KeyURL:   self + "?key=",
		},
	})
}

// Search renders the search page for q.
func (r *Renderer) Search(snap catalog.Snapshot, links Links, q string) ([]byte, search.Results, error) {
	res := search.Search(snap, q)
	body, err := r.execute("search", pageData{
		Title: "Search",
		Nav:   NewNavigation(links, "", ""),
		Links: links,
		Query: q,
		View:  res,
	})
	return body, res, err
}
