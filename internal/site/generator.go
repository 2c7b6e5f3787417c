package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
	"github.com/ziadkadry99/cubeclub/internal/static"
)

// SearchEntry is one record in the static search index.
type SearchEntry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Page        string `json:"page"`
}

// GeneratorOptions configures a static build.
type GeneratorOptions struct {
	OutputDir string
	StaticDir string
	Static    static.Options
}

// Generator writes the whole site as static files.
type Generator struct {
	renderer *Renderer
	opts     GeneratorOptions
	logger   *zap.Logger

	// assets holds the static files copied by the current build.
	assets map[string]bool
}

// NewGenerator creates a Generator that renders with renderer.
func NewGenerator(renderer *Renderer, opts GeneratorOptions, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{renderer: renderer, opts: opts, logger: logger.Named("generator")}
}

// staticPage maps a page view to its file in the output directory.
var staticPage = map[ViewKey]string{
	ViewHome:                "index.html",
	ViewTournamentsUpcoming: "tournaments.html",
	ViewTournamentsPrevious: "tournaments-previous.html",
	ViewShowcase:            "showcase.html",
	ViewCubes:               "cubes.html",
}

// Generate builds the full static site from snap. Returns the number of
// HTML pages written.
func (g *Generator) Generate(snap catalog.Snapshot) (int, error) {
	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// Assets go first so generated files win on a name clash.
	copied, err := static.Copy(g.opts.StaticDir, g.opts.OutputDir, g.opts.Static)
	if err != nil {
		return 0, fmt.Errorf("copying static assets: %w", err)
	}
	g.assets = make(map[string]bool, len(copied))
	for _, rel := range copied {
		g.assets[rel] = true
	}

	pages := 0
	views := append([]ViewKey(nil), PageViews...)

	for _, view := range PageViews {
		body, err := g.renderer.View(snap, StaticLinks(0), view)
		if err != nil {
			return pages, fmt.Errorf("rendering %s: %w", view, err)
		}
		if err := g.write(staticPage[view], body); err != nil {
			return pages, err
		}
		pages++
	}

	body, _, err := g.renderer.Search(snap, StaticLinks(0), "")
	if err != nil {
		return pages, fmt.Errorf("rendering search page: %w", err)
	}
	if err := g.write("search.html", body); err != nil {
		return pages, err
	}
	pages++

	for i := range snap.Get(catalog.PreviousTournaments) {
		body, err := g.renderer.Gallery(snap, StaticLinks(1), i)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return pages, fmt.Errorf("rendering gallery %d: %w", i, err)
		}
		if err := g.write(fmt.Sprintf("gallery/%d.html", i), body); err != nil {
			return pages, err
		}
		views = append(views, GalleryView(i))
		pages++
	}

	for _, view := range views {
		n, err := g.writeLightboxes(snap, view)
		pages += n
		if err != nil {
			return pages, err
		}
	}

	if err := g.writeSearchIndex(snap); err != nil {
		return pages, fmt.Errorf("writing search index: %w", err)
	}
	if err := g.write("style.css", []byte(cssContent)); err != nil {
		return pages, err
	}
	if err := g.write("script.js", []byte(jsContent)); err != nil {
		return pages, err
	}

	g.logger.Info("site generated",
		zap.String("output", g.opts.OutputDir),
		zap.Int("pages", pages),
		zap.Int("assets", len(copied)),
	)
	return pages, nil
}

// writeLightboxes writes one page per image of every image set on view.
func (g *Generator) writeLightboxes(snap catalog.Snapshot, view ViewKey) (int, error) {
	links := StaticLinks(3)
	plan, err := g.renderer.Plan(snap, links, view)
	if err != nil {
		return 0, fmt.Errorf("resolving images of %s: %w", view, err)
	}

	n := 0
	for set, images := range plan.Sets {
		for pos := range images.Images {
			lb, err := plan.Open(set, pos)
			if err != nil {
				return n, err
			}
			body, err := g.renderer.lightboxPage(links, view, set, lb)
			if err != nil {
				return n, fmt.Errorf("rendering lightbox %s/%d/%d: %w", view, set, pos, err)
			}
			if err := g.write(fmt.Sprintf("lightbox/%s/%d/%d.html", view, set, pos), body); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

// BuildSearchIndex lists every searchable record in search order.
func BuildSearchIndex(snap catalog.Snapshot) []SearchEntry {
	entries := []SearchEntry{}
	for _, cat := range catalog.SearchOrder {
		for _, rec := range snap.Get(cat) {
			title := rec.Get(cat.TitleField())
			desc := rec.Get("description")
			if title == "" && desc == "" {
				continue
			}
			entries = append(entries, SearchEntry{
				Title:       title,
				Description: desc,
				Category:    cat.Label(),
				Page:        cat.Page(),
			})
		}
	}
	return entries
}

func (g *Generator) writeSearchIndex(snap catalog.Snapshot) error {
	data, err := json.MarshalIndent(BuildSearchIndex(snap), "", "  ")
	if err != nil {
		return err
	}
	return g.write("search-index.json", data)
}

func (g *Generator) write(rel string, data []byte) error {
	if g.assets[rel] {
		g.logger.Warn("generated file replaces static asset", zap.String("path", rel))
	}
	path := filepath.Join(g.opts.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
