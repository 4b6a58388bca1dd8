package response

import (
	"time"

	"lms-api/internal/pkg/paging"
	"lms-api/internal/usecase/queries"
)

type CourseResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Credits     int       `json:"credits"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromCourseView(v *queries.CourseView) *CourseResponse {
	return &CourseResponse{
		ID:          v.ID.String(),
		Code:        v.Code,
		Title:       v.Title,
		Description: v.Description,
		Credits:     v.Credits,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromCoursePage(r paging.Result[*queries.CourseView]) paging.Result[*CourseResponse] {
	return paging.Map(r, FromCourseView)
}
