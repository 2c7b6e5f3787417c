package catalog

import "fmt"

// Category names one published sheet.
type Category string

const (
	Showcase            Category = "showcase"
	UpcomingTournaments Category = "upcoming_tournaments"
	PreviousTournaments Category = "previous_tournaments"
	Cubes               Category = "cubes"
)

// Categories lists every category in declaration order.
var Categories = []Category{Showcase, UpcomingTournaments, PreviousTournaments, Cubes}

// SearchOrder is the order in which search scans categories.
var SearchOrder = []Category{UpcomingTournaments, PreviousTournaments, Showcase, Cubes}

// Label returns the human-readable name shown next to search results.
func (c Category) Label() string {
	switch c {
	case Showcase:
		return "Showcase"
	case UpcomingTournaments:
		return "Upcoming Tournaments"
	case PreviousTournaments:
		return "Previous Tournaments"
	case Cubes:
		return "Cubes"
	default:
		return string(c)
	}
}

// TitleField is the column holding the record's primary label.
func (c Category) TitleField() string {
	if c == Cubes {
		return "name"
	}
	return "title"
}

// Page is the site page on which records of this category appear.
func (c Category) Page() string {
	switch c {
	case UpcomingTournaments, PreviousTournaments:
		return "tournaments"
	default:
		return string(c)
	}
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q: must be one of showcase, upcoming_tournaments, previous_tournaments, cubes", s)
}
