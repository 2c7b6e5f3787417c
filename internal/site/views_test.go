package site

import (
	"errors"
	"strings"
	"testing"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
)

func TestHomeView(t *testing.T) {
	v := NewViews(nil, LiveLinks).Home(loadedSnapshot())

	if v.Loading {
		t.Error("loaded snapshot reported as loading")
	}
	if v.Upcoming == nil || v.Upcoming.Title != "Spring Open" {
		t.Errorf("Upcoming = %+v, want Spring Open", v.Upcoming)
	}
	if v.Previous == nil || v.Previous.Title != "Winter Open" {
		t.Errorf("Previous = %+v, want Winter Open", v.Previous)
	}
	if v.Previous != nil && !v.Previous.Gallery.Empty() {
		t.Error("home tournament should not carry a gallery")
	}

	names := []string{}
	for _, c := range v.Cubes.Items {
		names = append(names, c.Name)
	}
	if got := strings.Join(names, ","); got != "Vintage Cube,Pauper Cube,Peasant Cube" {
		t.Errorf("home cubes = %s", got)
	}

	wantBlurb := vintageDescription[:100] + "..."
	if got := v.Cubes.Items[0].Blurb; got != wantBlurb {
		t.Errorf("Blurb = %q, want %q", got, wantBlurb)
	}
	if got := v.Cubes.Items[2].Blurb; got != "" {
		t.Errorf("cube without description has blurb %q", got)
	}
}

func TestTournamentsViewGallery(t *testing.T) {
	views := NewViews(nil, LiveLinks)
	snap := loadedSnapshot()

	prev := views.Tournaments(snap, TabPrevious)
	if prev.Tab != TabPrevious {
		t.Errorf("Tab = %s", prev.Tab)
	}
	items := prev.Tournaments.Items
	if len(items) != 2 {
		t.Fatalf("previous tournaments = %d, want 2", len(items))
	}
	if got := len(items[0].Gallery.Images); got != 6 {
		t.Errorf("gallery images = %d, want 6", got)
	}
	if got := len(items[0].Gallery.Preview()); got != 4 {
		t.Errorf("gallery preview = %d, want 4", got)
	}
	if items[0].GalleryHref != "/gallery/0" {
		t.Errorf("GalleryHref = %q", items[0].GalleryHref)
	}
	if items[1].Index != 1 || !items[1].Gallery.Empty() || items[1].GalleryHref != "" {
		t.Errorf("second tournament = %+v, want index 1 without gallery", items[1])
	}

	up := views.Tournaments(snap, TabUpcoming)
	for _, tr := range up.Tournaments.Items {
		if !tr.Gallery.Empty() {
			t.Errorf("upcoming %s has a gallery", tr.Title)
		}
	}
}

func TestSectionStates(t *testing.T) {
	boom := errors.New("boom")
	withCubes := testRecords()

	tests := []struct {
		name        string
		snap        catalog.Snapshot
		wantLoading bool
		wantFailed  bool
		wantEmpty   bool
		wantItems   int
	}{
		{name: "not loaded", snap: catalog.Snapshot{}, wantLoading: true},
		{name: "failed and empty", snap: catalog.Snapshot{Loaded: true, Err: boom}, wantFailed: true},
		{name: "failed with data", snap: catalog.Snapshot{Records: withCubes, Loaded: true, Err: boom}, wantItems: 4},
		{name: "loaded and empty", snap: catalog.Snapshot{Loaded: true}, wantEmpty: true},
		{name: "loaded", snap: loadedSnapshot(), wantItems: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewViews(nil, LiveLinks).Cubes(tt.snap)
			if s.Loading != tt.wantLoading || s.Failed != tt.wantFailed || s.Empty() != tt.wantEmpty {
				t.Errorf("Loading=%v Failed=%v Empty=%v, want %v %v %v",
					s.Loading, s.Failed, s.Empty(), tt.wantLoading, tt.wantFailed, tt.wantEmpty)
			}
			if len(s.Items) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(s.Items), tt.wantItems)
			}
		})
	}
}

func TestGalleryPage(t *testing.T) {
	views := NewViews(nil, LiveLinks)
	snap := loadedSnapshot()

	g, ok := views.Gallery(snap, 0)
	if !ok {
		t.Fatal("gallery 0 not found")
	}
	if g.Title != "Winter Open" || len(g.Images) != 6 {
		t.Errorf("gallery = %s with %d images", g.Title, len(g.Images))
	}
	if g.CloseURL != "/tournaments?tab=previous" {
		t.Errorf("CloseURL = %q", g.CloseURL)
	}

	for _, i := range []int{-1, 1, 5} {
		if _, ok := views.Gallery(snap, i); ok {
			t.Errorf("Gallery(%d) should not exist", i)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"héllo wörld", 5, "héllo"},
		{"", 3, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestMarkdownRender(t *testing.T) {
	md := NewMarkdown()

	if got := md.Render("  \n "); got != "" {
		t.Errorf("blank text rendered %q", got)
	}
	if got := string(md.Render("**Bring** sleeves")); !strings.Contains(got, "<strong>Bring</strong>") {
		t.Errorf("bold not rendered: %s", got)
	}
	got := string(md.Render("hi <script>alert(1)</script>"))
	if strings.Contains(got, "<script") {
		t.Errorf("script survived sanitising: %s", got)
	}
	if got := string(md.Render("[rules](javascript:alert(1))")); strings.Contains(got, "javascript:") {
		t.Errorf("javascript link survived: %s", got)
	}
}
