package request

import (
	"lms-api/internal/usecase/commands"
)

type CreateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
}

type UpdateStudentRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

func (r *CreateStudentRequest) ToCommand() commands.CreateStudentRequest {
	return commands.CreateStudentRequest{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

func (r *UpdateStudentRequest) ToCommand() commands.UpdateStudentRequest {
	return commands.UpdateStudentRequest{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}
