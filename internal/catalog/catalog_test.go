package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ziadkadry99/cubeclub/internal/sheet"
)

func TestCategoryMetadata(t *testing.T) {
	tests := []struct {
		cat        Category
		label      string
		titleField string
		page       string
	}{
		{Showcase, "Showcase", "title", "showcase"},
		{UpcomingTournaments, "Upcoming Tournaments", "title", "tournaments"},
		{PreviousTournaments, "Previous Tournaments", "title", "tournaments"},
		{Cubes, "Cubes", "name", "cubes"},
	}
	for _, tt := range tests {
		if got := tt.cat.Label(); got != tt.label {
			t.Errorf("%s.Label() = %q, want %q", tt.cat, got, tt.label)
		}
		if got := tt.cat.TitleField(); got != tt.titleField {
			t.Errorf("%s.TitleField() = %q, want %q", tt.cat, got, tt.titleField)
		}
		if got := tt.cat.Page(); got != tt.page {
			t.Errorf("%s.Page() = %q, want %q", tt.cat, got, tt.page)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory("cubes"); err != nil || c != Cubes {
		t.Errorf("ParseCategory(cubes) = %q, %v", c, err)
	}
	if _, err := ParseCategory("decks"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestStoreStartsEmpty(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()
	if snap.Loaded {
		t.Error("new store should not be loaded")
	}
	for _, c := range Categories {
		recs := snap.Get(c)
		if recs == nil || len(recs) != 0 {
			t.Errorf("%s: want empty non-nil sequence, got %v", c, recs)
		}
	}
}

func TestStoreReplaceIsWholesale(t *testing.T) {
	s := NewStore()
	s.Replace(Cubes, []sheet.Record{{"name": "A"}, {"name": "B"}})
	s.Replace(Cubes, []sheet.Record{{"name": "C"}})

	got := s.Records(Cubes)
	if len(got) != 1 || got[0]["name"] != "C" {
		t.Errorf("Records(Cubes) = %v, want only C", got)
	}

	s.Replace(Cubes, nil)
	if got := s.Records(Cubes); got == nil || len(got) != 0 {
		t.Errorf("Replace(nil) should store empty sequence, got %v", got)
	}
}

func TestSnapshotIsStable(t *testing.T) {
	s := NewStore()
	s.Replace(Showcase, []sheet.Record{{"title": "one"}})
	snap := s.Snapshot()

	s.Replace(Showcase, []sheet.Record{{"title": "two"}, {"title": "three"}})

	if got := snap.Get(Showcase); len(got) != 1 || got[0]["title"] != "one" {
		t.Errorf("snapshot changed after Replace: %v", got)
	}
	if snap.Count() != 1 {
		t.Errorf("Count = %d, want 1", snap.Count())
	}
}

func csvHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		io.WriteString(w, body)
	}
}

func TestFetcherFetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		csvHandler("title\nx\n")(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(FetcherOptions{UserAgent: "cubeclub-test"})
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if body != "title\nx\n" {
		t.Errorf("body = %q", body)
	}
	if gotUA != "cubeclub-test" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestFetcherRejectsBadResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		nonText bool
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "image body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "image/png")
				w.Write([]byte{0x89, 'P', 'N', 'G'})
			},
			nonText: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			f := NewFetcher(FetcherOptions{RetryDelay: time.Millisecond})
			_, err := f.Fetch(context.Background(), srv.URL)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.nonText && !errors.Is(err, ErrNonText) {
				t.Errorf("error = %v, want ErrNonText", err)
			}
		})
	}
}

func TestFetcherRetriesTransportErrorOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Error("response writer is not a hijacker")
				return
			}
			conn, _, err := hj.Hijack()
			if err == nil {
				conn.Close()
			}
			return
		}
		csvHandler("name\nvintage\n")(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(FetcherOptions{RetryDelay: time.Millisecond})
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch after retry: %v", err)
	}
	if body != "name\nvintage\n" {
		t.Errorf("body = %q", body)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("server saw %d calls, want 2", n)
	}
}

func TestIsTextual(t *testing.T) {
	tests := []struct {
		ct   string
		want bool
	}{
		{"", true},
		{"text/csv", true},
		{"text/plain; charset=utf-8", true},
		{"application/csv", true},
		{"application/json", false},
		{"image/jpeg", false},
		{"::bad::", false},
	}
	for _, tt := range tests {
		if got := isTextual(tt.ct); got != tt.want {
			t.Errorf("isTextual(%q) = %v, want %v", tt.ct, got, tt.want)
		}
	}
}

// fakeSource serves canned responses keyed by URL.
type fakeSource struct {
	mu     sync.Mutex
	bodies map[string]string
	errs   map[string]error
	block  map[string]bool
	calls  []string
}

func (f *fakeSource) Fetch(ctx context.Context, rawURL string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, rawURL)
	block := f.block[rawURL]
	body, err := f.bodies[rawURL], f.errs[rawURL]
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return body, err
}

func testURLs() map[Category]string {
	urls := make(map[Category]string)
	for _, c := range Categories {
		urls[c] = "https://sheets.test/" + string(c)
	}
	return urls
}

func TestLoadAllIsolatesFailures(t *testing.T) {
	urls := testURLs()
	src := &fakeSource{
		bodies: map[string]string{
			urls[Showcase]:            "title,image_url\nAlpha,a.jpg\nBeta,b.jpg\n",
			urls[UpcomingTournaments]: "title,date\nSpring Open,2025-04-01\n",
			urls[Cubes]:               "name,features\nPauper,commons only\n",
		},
		errs: map[string]error{
			urls[PreviousTournaments]: errors.New("connection refused"),
		},
	}

	store := NewStore()
	store.Replace(PreviousTournaments, []sheet.Record{{"title": "stale"}})

	loader := NewLoader(store, src, urls, nil)
	var mu sync.Mutex
	progress := map[Category]error{}
	loader.OnProgress(func(cat Category, n int, err error) {
		mu.Lock()
		progress[cat] = err
		mu.Unlock()
	})

	if err := loader.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	snap := store.Snapshot()
	if !snap.Loaded || snap.Err != nil {
		t.Errorf("loaded=%v err=%v, want loaded without error", snap.Loaded, snap.Err)
	}
	if got := len(snap.Get(Showcase)); got != 2 {
		t.Errorf("showcase records = %d, want 2", got)
	}
	if got := len(snap.Get(UpcomingTournaments)); got != 1 {
		t.Errorf("upcoming records = %d, want 1", got)
	}
	if got := snap.Get(PreviousTournaments); len(got) != 0 {
		t.Errorf("failed category should be empty, got %v", got)
	}
	if got := snap.Get(Cubes); len(got) != 1 || got[0]["name"] != "Pauper" {
		t.Errorf("cubes = %v", got)
	}
	if got := strings.Join(snap.Columns[Showcase], ","); got != "title,image_url" {
		t.Errorf("showcase columns = %q", got)
	}
	if snap.Columns[PreviousTournaments] != nil {
		t.Errorf("failed category kept columns %v", snap.Columns[PreviousTournaments])
	}

	if len(progress) != len(Categories) {
		t.Errorf("progress called for %d categories, want %d", len(progress), len(Categories))
	}
	if progress[PreviousTournaments] == nil {
		t.Error("progress should report the previous_tournaments failure")
	}
	if len(src.calls) != len(Categories) {
		t.Errorf("source called %d times, want %d", len(src.calls), len(Categories))
	}
}

func TestLoadAllMissingURL(t *testing.T) {
	urls := testURLs()
	delete(urls, Cubes)
	src := &fakeSource{bodies: map[string]string{}}

	store := NewStore()
	if err := NewLoader(store, src, urls, nil).LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	for _, u := range src.calls {
		if u == "" {
			t.Error("empty URL should never be fetched")
		}
	}
}

func TestLoadAllAbortsWhenContextEnds(t *testing.T) {
	urls := testURLs()
	src := &fakeSource{
		bodies: map[string]string{
			urls[Showcase]: "title\nKept\n",
		},
		block: map[string]bool{urls[Cubes]: true},
	}

	store := NewStore()
	store.Replace(Cubes, []sheet.Record{{"name": "old"}})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewLoader(store, src, urls, nil).LoadAll(ctx)
	if err == nil {
		t.Fatal("expected aggregation error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want deadline exceeded", err)
	}

	snap := store.Snapshot()
	if snap.Err == nil || !snap.Loaded {
		t.Errorf("store should record the failed round, got loaded=%v err=%v", snap.Loaded, snap.Err)
	}
	if got := snap.Get(Showcase); len(got) != 1 {
		t.Errorf("finished category should keep its data, got %v", got)
	}
}

func TestRefreshStopsWithContext(t *testing.T) {
	urls := testURLs()
	var rounds atomic.Int32
	src := &countingSource{onFetch: func() { rounds.Add(1) }}

	loader := NewLoader(NewStore(), src, urls, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loader.Refresh(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for rounds.Load() < int32(2*len(Categories)) {
		select {
		case <-deadline:
			t.Fatalf("only %d fetches before deadline", rounds.Load())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Refresh did not return after cancel")
	}
}

type countingSource struct {
	onFetch func()
}

func (c *countingSource) Fetch(_ context.Context, rawURL string) (string, error) {
	c.onFetch()
	return fmt.Sprintf("title\n%s\n", rawURL), nil
}

func TestRefreshDisabled(t *testing.T) {
	loader := NewLoader(NewStore(), &countingSource{onFetch: func() { t.Error("fetch should not run") }}, testURLs(), nil)
	loader.Refresh(context.Background(), 0)
}
