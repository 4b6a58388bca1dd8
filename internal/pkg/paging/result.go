package paging

// Result is one page of a larger ordered collection.
type Result[T any] struct {
	Items           []T  `json:"items"`
	PageNumber      int  `json:"pageNumber"`
	PageSize        int  `json:"pageSize"`
	TotalPages      int  `json:"totalPages"`
	TotalCount      int  `json:"totalCount"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// NewResult builds the page envelope. A page past the last one keeps its
// page number but reports no neighbours, so clients cannot walk off the end.
func NewResult[T any](items []T, page, pageSize, totalCount int) Result[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return Result[T]{
		Items:           items,
		PageNumber:      page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		TotalCount:      totalCount,
		HasPreviousPage: page > 1 && page <= totalPages,
		HasNextPage:     page < totalPages,
	}
}

// Map converts the items of a result while keeping its metadata.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := make([]U, len(r.Items))
	for i, it := range r.Items {
		out[i] = fn(it)
	}
	return Result[U]{
		Items:           out,
		PageNumber:      r.PageNumber,
		PageSize:        r.PageSize,
		TotalPages:      r.TotalPages,
		TotalCount:      r.TotalCount,
		HasPreviousPage: r.HasPreviousPage,
		HasNextPage:     r.HasNextPage,
	}
}
