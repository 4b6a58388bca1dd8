//go:build unit

package paging_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"lms-api/internal/pkg/paging"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    int
	Code  string
	Title string
	Rank  int
}

var itemSpec = paging.Spec[item]{
	Match: func(it item, term string) bool {
		return paging.ContainsFold(term, it.Code, it.Title)
	},
	SortKey: func(it item, field string) any {
		switch field {
		case "code":
			return it.Code
		case "title":
			return it.Title
		case "rank":
			return it.Rank
		default:
			return it.ID
		}
	},
}

func identity(it item) item { return it }

func codes(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Code
	}
	return out
}

func numbered(n int) []item {
	items := make([]item, n)
	for i := range n {
		items[i] = item{ID: i + 1, Code: fmt.Sprintf("C%02d", i+1)}
	}
	return items
}

func TestApply_Pagination(t *testing.T) {
	items := numbered(25)

	tests := []struct {
		name      string
		page      int
		wantLen   int
		wantPrev  bool
		wantNext  bool
		wantFirst string
	}{
		{name: "first page", page: 1, wantLen: 10, wantPrev: false, wantNext: true, wantFirst: "C01"},
		{name: "middle page", page: 2, wantLen: 10, wantPrev: true, wantNext: true, wantFirst: "C11"},
		{name: "last partial page", page: 3, wantLen: 5, wantPrev: true, wantNext: false, wantFirst: "C21"},
		{name: "beyond last page", page: 4, wantLen: 0, wantPrev: false, wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := paging.Apply(items, paging.Query{Page: tt.page, PageSize: 10}, itemSpec, identity)

			require.Len(t, res.Items, tt.wantLen)
			assert.Equal(t, tt.page, res.PageNumber)
			assert.Equal(t, 10, res.PageSize)
			assert.Equal(t, 25, res.TotalCount)
			assert.Equal(t, 3, res.TotalPages)
			assert.Equal(t, tt.wantPrev, res.HasPreviousPage)
			assert.Equal(t, tt.wantNext, res.HasNextPage)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, res.Items[0].Code)
			}
		})
	}
}

func TestApply_Clamping(t *testing.T) {
	items := numbered(150)

	tests := []struct {
		name     string
		query    paging.Query
		wantPage int
		wantSize int
	}{
		{name: "zero page clamps to 1", query: paging.Query{Page: 0, PageSize: 10}, wantPage: 1, wantSize: 10},
		{name: "negative page clamps to 1", query: paging.Query{Page: -3, PageSize: 10}, wantPage: 1, wantSize: 10},
		{name: "page size above max clamps to 100", query: paging.Query{Page: 1, PageSize: 500}, wantPage: 1, wantSize: 100},
		{name: "zero page size clamps to 1", query: paging.Query{Page: 1, PageSize: 0}, wantPage: 1, wantSize: 1},
		{name: "defaults", query: paging.NewQuery(), wantPage: 1, wantSize: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := paging.Apply(items, tt.query, itemSpec, identity)
			assert.Equal(t, tt.wantPage, res.PageNumber)
			assert.Equal(t, tt.wantSize, res.PageSize)
			assert.Len(t, res.Items, tt.wantSize)
			assert.Equal(t, 150, res.TotalCount)
		})
	}

	t.Run("huge page number does not overflow", func(t *testing.T) {
		res := paging.Apply(items, paging.Query{Page: math.MaxInt, PageSize: 100}, itemSpec, identity)
		assert.Empty(t, res.Items)
		assert.Equal(t, 2, res.TotalPages)
		assert.False(t, res.HasNextPage)
	})
}

func TestApply_Empty(t *testing.T) {
	res := paging.Apply([]item{}, paging.NewQuery(), itemSpec, identity)

	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.TotalCount)
	assert.Equal(t, 0, res.TotalPages)
	assert.False(t, res.HasPreviousPage)
	assert.False(t, res.HasNextPage)
}

func TestApply_Sort(t *testing.T) {
	items := []item{
		{ID: 1, Code: "B", Title: "beta", Rank: 2},
		{ID: 2, Code: "A", Title: "alpha", Rank: 1},
		{ID: 3, Code: "C", Title: "gamma", Rank: 2},
	}

	tests := []struct {
		name string
		sort string
		want []string
	}{
		{name: "ascending", sort: "code", want: []string{"A", "B", "C"}},
		{name: "descending", sort: "-code", want: []string{"C", "B", "A"}},
		{name: "field names are case-insensitive", sort: "CODE", want: []string{"A", "B", "C"}},
		{name: "blank sort keeps input order", sort: "  ", want: []string{"B", "A", "C"}},
		{name: "unknown field falls back to id", sort: "nope", want: []string{"B", "A", "C"}},
		{name: "multi key with mixed direction", sort: "-rank, code", want: []string{"B", "C", "A"}},
		{name: "empty tokens are ignored", sort: ",,-rank,,-code", want: []string{"C", "B", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := paging.Apply(items, paging.Query{Page: 1, PageSize: 10, Sort: tt.sort}, itemSpec, identity)
			if diff := cmp.Diff(tt.want, codes(res.Items)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("input slice is not reordered", func(t *testing.T) {
		_ = paging.Apply(items, paging.Query{Page: 1, PageSize: 10, Sort: "code"}, itemSpec, identity)
		assert.Equal(t, []string{"B", "A", "C"}, codes(items))
	})

	t.Run("sort is stable for equal keys", func(t *testing.T) {
		res := paging.Apply(items, paging.Query{Page: 1, PageSize: 10, Sort: "rank"}, itemSpec, identity)
		assert.Equal(t, []string{"A", "B", "C"}, codes(res.Items))
	})
}

func TestApply_SearchBeforePaging(t *testing.T) {
	items := []item{
		{ID: 1, Code: "MATH101", Title: "Calculus"},
		{ID: 2, Code: "CS101", Title: "Programming"},
		{ID: 3, Code: "MATH201", Title: "Linear Algebra"},
		{ID: 4, Code: "HIST100", Title: "World History"},
		{ID: 5, Code: "ART110", Title: "Drawing"},
	}

	res := paging.Apply(items, paging.Query{Page: 1, PageSize: 10, Search: "math"}, itemSpec, identity)

	assert.Equal(t, []string{"MATH101", "MATH201"}, codes(res.Items))
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, 1, res.TotalPages)

	t.Run("blank search keeps everything", func(t *testing.T) {
		res := paging.Apply(items, paging.Query{Page: 1, PageSize: 10, Search: "   "}, itemSpec, identity)
		assert.Equal(t, 5, res.TotalCount)
	})

	t.Run("projection runs only on the page", func(t *testing.T) {
		calls := 0
		res := paging.Apply(items, paging.Query{Page: 2, PageSize: 2}, itemSpec, func(it item) string {
			calls++
			return strings.ToLower(it.Code)
		})
		assert.Equal(t, []string{"math201", "hist100"}, res.Items)
		assert.Equal(t, 2, calls)
	})
}

func TestParseSort(t *testing.T) {
	got := paging.ParseSort(" lastName , -createdAt,-, ")
	want := []paging.SortTerm{
		{Field: "lastname"},
		{Field: "createdat", Descending: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSort mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, paging.ParseSort(""))
}

func TestCompareValues(t *testing.T) {
	one, two := 1, 2

	assert.Negative(t, paging.CompareValues("apple", "Banana"))
	assert.Positive(t, paging.CompareValues(3, 2))
	assert.Zero(t, paging.CompareValues(nil, nil))
	assert.Negative(t, paging.CompareValues(nil, "a"))
	assert.Negative(t, paging.CompareValues((*int)(nil), &one))
	assert.Negative(t, paging.CompareValues(&one, &two))
	assert.Negative(t, paging.CompareValues(false, true))
}
