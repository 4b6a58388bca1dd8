// Package paging implements the search, sort and paginate pipeline shared by
// every list endpoint.
package paging

import "strings"

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100
)

// Query is the caller-supplied input of a list request.
type Query struct {
	Page     int
	PageSize int
	// Sort is a comma separated list of fields; a leading "-" sorts that field descending.
	Sort string
	// Search is a free-text filter interpreted by the entity's Match function.
	Search string
}

// NewQuery returns a Query with the default page and page size.
func NewQuery() Query {
	return Query{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Normalize clamps Page to at least 1 and PageSize to [MinPageSize, MaxPageSize].
func (q Query) Normalize() Query {
	q.Page = max(q.Page, DefaultPage)
	q.PageSize = min(max(q.PageSize, MinPageSize), MaxPageSize)
	return q
}

func (q Query) Offset() int {
	n := q.Normalize()
	return (n.Page - 1) * n.PageSize
}

type SortTerm struct {
	Field      string
	Descending bool
}

// ParseSort splits a sort expression such as "lastName,-createdAt" into terms.
// Field names are lowercased; empty tokens are dropped.
func ParseSort(expr string) []SortTerm {
	if strings.TrimSpace(expr) == "" {
		return nil
	}

	var terms []SortTerm
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		term := SortTerm{Field: token}
		if strings.HasPrefix(token, "-") {
			term.Descending = true
			term.Field = strings.TrimSpace(token[1:])
		}
		if term.Field == "" {
			continue
		}
		term.Field = strings.ToLower(term.Field)
		terms = append(terms, term)
	}
	return terms
}
