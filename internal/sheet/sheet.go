// Package sheet parses the CSV exports of published spreadsheets into
// header-keyed records.
//
// The dialect is deliberately loose: a double quote toggles quoted mode and
// is dropped from the output, doubled quotes are not an escape, and rows may
// be ragged. Malformed input never produces an error, only odd field
// boundaries.
package sheet

import "strings"

// ListSeparator separates the values of a multi-valued cell.
const ListSeparator = ";"

// Record maps a column header to the cell value of one data row. Both keys
// and values are trimmed.
type Record map[string]string

// Get returns the value for key, or "" when the column is absent.
func (r Record) Get(key string) string {
	if r == nil {
		return ""
	}
	return r[key]
}

// Has reports whether the column exists and holds a non-empty value.
func (r Record) Has(key string) bool {
	return r.Get(key) != ""
}

// List splits a multi-valued cell on ListSeparator, trimming each value and
// dropping empty ones. An absent column yields nil.
func (r Record) List(key string) []string {
	raw := r.Get(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ListSeparator) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Parse converts CSV text into records in source row order. It returns an
// empty slice unless there is a header line and at least one data line.
func Parse(text string) []Record {
	lines := nonEmptyLines(text)
	if len(lines) < 2 {
		return []Record{}
	}

	headers := splitHeader(lines[0])
	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := ParseLine(line)
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(values) {
				rec[h] = values[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// Headers returns the trimmed header row of text, or nil when the text has
// no non-empty lines.
func Headers(text string) []string {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return nil
	}
	return splitHeader(lines[0])
}

// ParseLine tokenizes a single data line. Commas inside a quoted span do
// not split; the quote characters themselves are discarded. The trailing
// field is always emitted, so "a," yields ["a", ""].
func ParseLine(line string) []string {
	var (
		values   []string
		current  strings.Builder
		inQuotes bool
	)
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))
	return values
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func splitHeader(line string) []string {
	parts := strings.Split(line, ",")
	headers := make([]string, len(parts))
	for i, p := range parts {
		headers[i] = strings.TrimSpace(p)
	}
	return headers
}
