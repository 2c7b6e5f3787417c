// Package search runs ad hoc substring queries over a catalog snapshot.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
)

// MinTermLength is the shortest normalized term that triggers a search.
const MinTermLength = 2

// Result is one matching record.
type Result struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Page     string `json:"page"`
}

// Results is the outcome of a query. Active is false when the term was too
// short to search at all, which is different from an active search that
// matched nothing.
type Results struct {
	Term   string   `json:"term"`
	Active bool     `json:"active"`
	Items  []Result `json:"results"`
}

// Empty reports whether an active search found nothing.
func (r Results) Empty() bool {
	return r.Active && len(r.Items) == 0
}

// First returns the first result, if any.
func (r Results) First() (Result, bool) {
	if len(r.Items) == 0 {
		return Result{}, false
	}
	return r.Items[0], true
}

// Normalize lower-cases and trims a raw search term.
func Normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Search scans snap in catalog.SearchOrder and returns every record whose
// primary label or description contains term, in scan order.
func Search(snap catalog.Snapshot, term string) Results {
	q := Normalize(term)
	if utf8.RuneCountInString(q) < MinTermLength {
		return Results{Term: q}
	}

	res := Results{Term: q, Active: true, Items: []Result{}}
	for _, cat := range catalog.SearchOrder {
		field := cat.TitleField()
		for _, rec := range snap.Get(cat) {
			if contains(rec.Get(field), q) || contains(rec.Get("description"), q) {
				res.Items = append(res.Items, Result{
					Title:    rec.Get(field),
					Category: cat.Label(),
					Page:     cat.Page(),
				})
			}
		}
	}
	return res
}

// contains is a case-insensitive substring test. q is already lower-cased.
// An empty field never matches.
func contains(field, q string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), q)
}
