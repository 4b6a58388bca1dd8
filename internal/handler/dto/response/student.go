package response

import (
	"time"

	"lms-api/internal/pkg/paging"
	"lms-api/internal/usecase/queries"
)

type StudentResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromStudentView(v *queries.StudentView) *StudentResponse {
	return &StudentResponse{
		ID:        v.ID.String(),
		FirstName: v.FirstName,
		LastName:  v.LastName,
		FullName:  v.FullName,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromStudentPage(r paging.Result[*queries.StudentView]) paging.Result[*StudentResponse] {
	return paging.Map(r, FromStudentView)
}
