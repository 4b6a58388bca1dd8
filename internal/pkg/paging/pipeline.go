package paging

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Spec supplies the entity-specific parts of the pipeline.
type Spec[E any] struct {
	// Match reports whether e matches the search term. Nil disables searching.
	Match func(e E, term string) bool
	// SortKey returns the value to order e by for the given lowercased field.
	// Unknown fields should return the entity identifier.
	SortKey func(e E, field string) any
}

// Apply filters, sorts and slices items, projecting the surviving page through project.
// The input slice is never modified.
func Apply[E, T any](items []E, q Query, spec Spec[E], project func(E) T) Result[T] {
	filtered := Search(items, q.Search, spec.Match)
	sorted := Sort(filtered, q.Sort, spec.SortKey)
	return Paginate(sorted, q, project)
}

func Search[E any](items []E, term string, match func(E, string) bool) []E {
	if strings.TrimSpace(term) == "" || match == nil {
		return items
	}

	out := make([]E, 0, len(items))
	for _, it := range items {
		if match(it, term) {
			out = append(out, it)
		}
	}
	return out
}

func Sort[E any](items []E, expr string, key func(E, string) any) []E {
	terms := ParseSort(expr)
	if len(terms) == 0 || key == nil {
		return items
	}

	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b E) int {
		for _, t := range terms {
			c := CompareValues(key(a, t.Field), key(b, t.Field))
			if t.Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}

func Paginate[E, T any](items []E, q Query, project func(E) T) Result[T] {
	q = q.Normalize()
	total := len(items)

	start := total
	if q.Page-1 <= total/q.PageSize {
		start = min(q.Offset(), total)
	}
	end := min(start+q.PageSize, total)

	page := make([]T, 0, end-start)
	for _, it := range items[start:end] {
		page = append(page, project(it))
	}
	return NewResult(page, q.Page, q.PageSize, total)
}

// ContainsFold reports whether any of the values contains term, ignoring case.
func ContainsFold(term string, values ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// CompareValues orders two sort keys. Nil sorts before any value; strings
// compare case-insensitively first so "alice" and "Bob" interleave naturally.
func CompareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			if c := cmp.Compare(strings.ToLower(x), strings.ToLower(y)); c != 0 {
				return c
			}
			return cmp.Compare(x, y)
		}
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y)
		}
	case int32:
		if y, ok := b.(int32); ok {
			return cmp.Compare(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case uuid.UUID:
		if y, ok := b.(uuid.UUID); ok {
			return strings.Compare(x.String(), y.String())
		}
	case *int:
		if y, ok := b.(*int); ok {
			return comparePtr(x, y)
		}
	}

	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func comparePtr[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return cmp.Compare(*a, *b)
	}
}
