package request

import (
	"lms-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateEnrollmentRequest struct {
	StudentID uuid.UUID `json:"studentId" binding:"required"`
	CourseID  uuid.UUID `json:"courseId" binding:"required"`
}

// UpdateGradeRequest clears the grade when grade is null.
type UpdateGradeRequest struct {
	Grade *int `json:"grade" binding:"omitempty,min=0,max=100"`
}

func (r *CreateEnrollmentRequest) ToCommand() commands.EnrollRequest {
	return commands.EnrollRequest{
		StudentID: r.StudentID,
		CourseID:  r.CourseID,
	}
}
