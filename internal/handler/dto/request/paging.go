package request

import (
	"lms-api/internal/pkg/paging"
	"lms-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// PagingQuery binds ?page=&pageSize=&sort=&search=. Non-integer page
// values fail binding; out-of-range values are clamped later.
type PagingQuery struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=20"`
	Sort     string `form:"sort"`
	Search   string `form:"search"`
}

func (q PagingQuery) ToQuery() paging.Query {
	return paging.Query{
		Page:     q.Page,
		PageSize: q.PageSize,
		Sort:     q.Sort,
		Search:   q.Search,
	}.Normalize()
}

type EnrollmentListQuery struct {
	PagingQuery
	StudentID string `form:"studentId" binding:"omitempty,uuid"`
	CourseID  string `form:"courseId" binding:"omitempty,uuid"`
}

// ToFilter expects binding validation to have run.
func (q EnrollmentListQuery) ToFilter() queries.EnrollmentFilter {
	var f queries.EnrollmentFilter
	if id, err := uuid.Parse(q.StudentID); err == nil {
		f.StudentID = &id
	}
	if id, err := uuid.Parse(q.CourseID); err == nil {
		f.CourseID = &id
	}
	return f
}
