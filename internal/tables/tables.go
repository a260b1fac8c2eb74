// Package tables serves the fixed reference tables of the handbook and the
// free-text search over them.
package tables

import (
	"fmt"
	"slices"
	"strings"

	"Handbook/internal/calc"
)

// Match reports whether every whitespace-separated term of query occurs in
// text, ignoring case. An empty query matches everything.
func Match(text, query string) bool {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return true
	}
	text = strings.ToLower(text)
	for _, t := range terms {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}

// Table is a named reference table. Search concatenates the columns listed
// in searchOn (all columns when empty).
type Table struct {
	Name     string     `json:"name"`
	Title    string     `json:"title"`
	Columns  []string   `json:"columns"`
	Rows     [][]string `json:"rows"`
	Notes    string     `json:"notes,omitempty"`
	searchOn []int
}

type SearchResult struct {
	Table   string     `json:"table"`
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Shown   int        `json:"shown"`
	Total   int        `json:"total"`
	Summary string     `json:"summary"`
}

func (t Table) searchText(row []string) string {
	if len(t.searchOn) == 0 {
		return strings.Join(row, " ")
	}
	parts := make([]string, 0, len(t.searchOn))
	for _, i := range t.searchOn {
		parts = append(parts, row[i])
	}
	return strings.Join(parts, " ")
}

// Search returns copies of the matching rows; the table itself is never
// handed out.
func (t Table) Search(query string) SearchResult {
	res := SearchResult{Table: t.Name, Title: t.Title, Columns: slices.Clone(t.Columns), Rows: [][]string{}, Total: len(t.Rows)}
	for _, row := range t.Rows {
		if Match(t.searchText(row), query) {
			res.Rows = append(res.Rows, slices.Clone(row))
		}
	}
	res.Shown = len(res.Rows)
	res.Summary = fmt.Sprintf("%d of %d shown", res.Shown, res.Total)
	return res
}

// Info describes a table without its rows.
type Info struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Rows  int    `json:"rows"`
}

func List() []Info {
	out := make([]Info, len(registry))
	for i, t := range registry {
		out[i] = Info{Name: t.Name, Title: t.Title, Rows: len(t.Rows)}
	}
	return out
}

func (t Table) clone() Table {
	t.Columns = slices.Clone(t.Columns)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = slices.Clone(row)
	}
	t.Rows = rows
	return t
}

// Lookup returns a copy of the named table.
func Lookup(name string) (Table, error) {
	for _, t := range registry {
		if t.Name == name {
			return t.clone(), nil
		}
	}
	return Table{}, fmt.Errorf("%w: table %q", calc.ErrNotFound, name)
}

// Search runs query against the named table.
func Search(name, query string) (SearchResult, error) {
	for _, t := range registry {
		if t.Name == name {
			return t.Search(query), nil
		}
	}
	return SearchResult{}, fmt.Errorf("%w: table %q", calc.ErrNotFound, name)
}
