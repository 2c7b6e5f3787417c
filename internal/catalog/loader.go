package catalog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/cubeclub/internal/sheet"
)

// Source retrieves the raw text of a published sheet.
type Source interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// ProgressFunc is told about each category once its fetch settles.
type ProgressFunc func(cat Category, records int, err error)

// Loader fills a Store from the configured sheet URLs.
type Loader struct {
	store      *Store
	source     Source
	urls       map[Category]string
	logger     *zap.Logger
	onProgress ProgressFunc
	now        func() time.Time
}

// NewLoader creates a Loader. A nil logger discards log output.
func NewLoader(store *Store, source Source, urls map[Category]string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		store:  store,
		source: source,
		urls:   urls,
		logger: logger.Named("loader"),
		now:    time.Now,
	}
}

// OnProgress registers fn to be called from the aggregating goroutine as
// each category completes.
func (l *Loader) OnProgress(fn ProgressFunc) {
	l.onProgress = fn
}

type outcome struct {
	cat     Category
	records int
	err     error
}

// LoadAll fetches every category concurrently. A failing category is logged
// and left empty without affecting the others. The returned error is
// non-nil only if ctx ends before every category has reported.
func (l *Loader) LoadAll(ctx context.Context) error {
	results := make(chan outcome, len(Categories))
	for _, cat := range Categories {
		go func(cat Category) {
			n, err := l.load(ctx, cat)
			results <- outcome{cat: cat, records: n, err: err}
		}(cat)
	}

	start := l.now()
	var failed int
	for pending := len(Categories); pending > 0; pending-- {
		select {
		case o := <-results:
			if o.err != nil {
				failed++
			}
			if l.onProgress != nil {
				l.onProgress(o.cat, o.records, o.err)
			}
		case <-ctx.Done():
			err := fmt.Errorf("loading sheets: %d of %d categories outstanding: %w", pending, len(Categories), ctx.Err())
			l.store.MarkLoaded(l.now(), err)
			l.logger.Error("load aborted", zap.Error(err))
			return err
		}
	}

	l.store.MarkLoaded(l.now(), nil)
	l.logger.Info("load complete",
		zap.Int("categories", len(Categories)),
		zap.Int("failed", failed),
		zap.Duration("elapsed", l.now().Sub(start)),
	)
	return nil
}

// load fetches and parses one category, storing the result. On failure the
// category is reset to empty unless the whole round has been abandoned.
func (l *Loader) load(ctx context.Context, cat Category) (int, error) {
	text, err := l.fetch(ctx, cat)
	if err != nil {
		if ctx.Err() != nil {
			return 0, err
		}
		l.logger.Warn("category load failed", zap.String("category", string(cat)), zap.Error(err))
		l.store.Replace(cat, nil)
		l.store.SetColumns(cat, nil)
		return 0, err
	}

	records := sheet.Parse(text)
	l.store.Replace(cat, records)
	l.store.SetColumns(cat, sheet.Headers(text))
	l.logger.Debug("category loaded", zap.String("category", string(cat)), zap.Int("records", len(records)))
	return len(records), nil
}

func (l *Loader) fetch(ctx context.Context, cat Category) (string, error) {
	u := l.urls[cat]
	if u == "" {
		return "", fmt.Errorf("no source configured for %s", cat)
	}
	text, err := l.source.Fetch(ctx, u)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", cat, err)
	}
	return text, nil
}

// Refresh calls LoadAll every interval until ctx ends. Errors are logged.
func (l *Loader) Refresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := l.LoadAll(ctx); err != nil && ctx.Err() == nil {
				l.logger.Warn("refresh failed", zap.Error(err))
			}
		}
	}
}
