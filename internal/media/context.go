package media

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Selectors describing which images open the viewer and how they group.
const (
	ClickableSelector = ".tournament-img-home img, .tournament-img img, .gallery-item img, " +
		".gallery-modal-item img, .showcase-img img, .cube-img img, .home-cube-img img"

	cardSelector      = ".tournament-card, .showcase-item, .cube-card, .home-cube-item, .gallery-modal-item, .gallery-item"
	gallerySelector   = ".tournament-gallery, .gallery-modal-grid"
	containerSelector = ".tournament-list, .showcase-grid, .cubes-grid, .home-cubes-grid, .tournament-card-home"
)

// ImageSet is the ordered list of images a viewer steps through.
type ImageSet struct {
	Images []string
}

// Anchor locates a clickable image: the set it opens and its position there.
type Anchor struct {
	Set int
	Pos int
}

// Plan maps every clickable image of a page to its image set.
type Plan struct {
	Sets []ImageSet
	// Anchors is indexed by the image's position among clickable images in
	// document order.
	Anchors []Anchor
}

// Open returns a lightbox showing image pos of set.
func (p Plan) Open(set, pos int) (*Lightbox, error) {
	if set < 0 || set >= len(p.Sets) {
		return nil, ErrNoImages
	}
	lb := &Lightbox{}
	if err := lb.Open(p.Sets[set].Images, pos); err != nil {
		return nil, err
	}
	return lb, nil
}

// ContextImages resolves the image set of every clickable image in doc.
//
// A gallery image steps through its gallery. Any other card image steps
// through every image of its nearest list or grid. When neither resolves,
// the image steps through all clickable images of the page. Images are
// identified by node, so repeated URLs keep their own positions.
func ContextImages(doc *goquery.Document) Plan {
	clickable := doc.Find(ClickableSelector)

	var plan Plan
	byContainer := make(map[*html.Node]int)
	pageSet := -1

	clickable.Each(func(_ int, img *goquery.Selection) {
		container := resolveContainer(img)
		if container == nil {
			if pageSet < 0 {
				pageSet = len(plan.Sets)
				plan.Sets = append(plan.Sets, ImageSet{Images: sources(clickable)})
			}
			plan.Anchors = append(plan.Anchors, Anchor{Set: pageSet, Pos: position(clickable, img)})
			return
		}

		set, ok := byContainer[container.Get(0)]
		if !ok {
			set = len(plan.Sets)
			byContainer[container.Get(0)] = set
			plan.Sets = append(plan.Sets, ImageSet{Images: sources(container.Find("img"))})
		}
		plan.Anchors = append(plan.Anchors, Anchor{Set: set, Pos: position(container.Find("img"), img)})
	})
	return plan
}

// resolveContainer returns the element whose images form img's set, or nil.
func resolveContainer(img *goquery.Selection) *goquery.Selection {
	card := img.Closest(cardSelector)
	if card.Length() == 0 {
		return nil
	}

	var container *goquery.Selection
	if card.Is(".gallery-modal-item, .gallery-item") {
		container = img.Closest(gallerySelector)
	} else {
		container = card.Closest(containerSelector)
	}
	if container.Length() == 0 || container.Find("img").Length() == 0 {
		return nil
	}
	return container.First()
}

func sources(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		out = append(out, src)
	})
	return out
}

func position(set, img *goquery.Selection) int {
	node := img.Get(0)
	for i, n := range set.Nodes {
		if n == node {
			return i
		}
	}
	return 0
}

// WrapClickable wraps every clickable image in a link built by href from its
// anchor. Images already inside a link are left alone.
func WrapClickable(doc *goquery.Document, plan Plan, href func(Anchor) string) {
	doc.Find(ClickableSelector).Each(func(i int, img *goquery.Selection) {
		if i >= len(plan.Anchors) || img.ParentsFiltered("a").Length() > 0 {
			return
		}
		link := html.Node{
			Type: html.ElementNode,
			Data: "a",
			Attr: []html.Attribute{
				{Key: "class", Val: "lightbox-link"},
				{Key: "href", Val: href(plan.Anchors[i])},
			},
		}
		img.WrapNode(&link)
	})
}
