package catalog

import (
	"sync"
	"time"

	"github.com/ziadkadry99/cubeclub/internal/sheet"
)

// Store holds the parsed records of every category. A category's sequence
// is only ever swapped as a whole.
type Store struct {
	mu       sync.RWMutex
	records  map[Category][]sheet.Record
	columns  map[Category][]string
	loaded   bool
	loadedAt time.Time
	loadErr  error
}

// NewStore returns a store with an empty sequence for every category.
func NewStore() *Store {
	s := &Store{
		records: make(map[Category][]sheet.Record, len(Categories)),
		columns: make(map[Category][]string, len(Categories)),
	}
	for _, c := range Categories {
		s.records[c] = []sheet.Record{}
	}
	return s
}

// Replace swaps the sequence stored under cat.
func (s *Store) Replace(cat Category, records []sheet.Record) {
	if records == nil {
		records = []sheet.Record{}
	}
	s.mu.Lock()
	s.records[cat] = records
	s.mu.Unlock()
}

// SetColumns records the header row last read for cat.
func (s *Store) SetColumns(cat Category, columns []string) {
	s.mu.Lock()
	s.columns[cat] = columns
	s.mu.Unlock()
}

// Records returns the current sequence for cat. Callers must not modify it.
func (s *Store) Records(cat Category) []sheet.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[cat]
}

// Snapshot returns a consistent view of all categories and the load state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Records:  make(map[Category][]sheet.Record, len(s.records)),
		Columns:  make(map[Category][]string, len(s.columns)),
		Loaded:   s.loaded,
		LoadedAt: s.loadedAt,
		Err:      s.loadErr,
	}
	for c, recs := range s.records {
		snap.Records[c] = recs
	}
	for c, cols := range s.columns {
		snap.Columns[c] = cols
	}
	return snap
}

// MarkLoaded records the outcome of a load round. err is non-nil only when
// the round as a whole failed.
func (s *Store) MarkLoaded(at time.Time, err error) {
	s.mu.Lock()
	s.loaded = true
	s.loadedAt = at
	s.loadErr = err
	s.mu.Unlock()
}

// Snapshot is a point-in-time copy of the store.
type Snapshot struct {
	Records  map[Category][]sheet.Record
	Columns  map[Category][]string
	Loaded   bool
	LoadedAt time.Time
	Err      error
}

// Get returns the records of cat, never nil.
func (s Snapshot) Get(cat Category) []sheet.Record {
	if recs := s.Records[cat]; recs != nil {
		return recs
	}
	return []sheet.Record{}
}

// Count returns the total number of records across categories.
func (s Snapshot) Count() int {
	n := 0
	for _, recs := range s.Records {
		n += len(recs)
	}
	return n
}
