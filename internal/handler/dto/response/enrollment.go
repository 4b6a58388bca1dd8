package response

import (
	"time"

	"lms-api/internal/pkg/paging"
	"lms-api/internal/usecase/queries"
)

type EnrollmentResponse struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	CourseID    string    `json:"courseId"`
	CourseCode  string    `json:"courseCode"`
	CourseTitle string    `json:"courseTitle"`
	EnrolledAt  time.Time `json:"enrolledAt"`
	Grade       *int      `json:"grade"`
}

func FromEnrollmentView(v *queries.EnrollmentView) *EnrollmentResponse {
	return &EnrollmentResponse{
		ID:          v.ID.String(),
		StudentID:   v.StudentID.String(),
		StudentName: v.StudentName,
		CourseID:    v.CourseID.String(),
		CourseCode:  v.CourseCode,
		CourseTitle: v.CourseTitle,
		EnrolledAt:  v.EnrolledAt,
		Grade:       v.Grade,
	}
}

func FromEnrollmentPage(r paging.Result[*queries.EnrollmentView]) paging.Result[*EnrollmentResponse] {
	return paging.Map(r, FromEnrollmentView)
}
