package request

import (
	"lms-api/internal/usecase/commands"
)

type CreateCourseRequest struct {
	Code        string `json:"code" binding:"required,max=20"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Credits     int    `json:"credits" binding:"required,min=1,max=30"`
}

type UpdateCourseRequest struct {
	Code        *string `json:"code" binding:"omitempty,max=20"`
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Credits     *int    `json:"credits" binding:"omitempty,min=1,max=30"`
}

func (r *CreateCourseRequest) ToCommand() commands.CreateCourseRequest {
	return commands.CreateCourseRequest{
		Code:        r.Code,
		Title:       r.Title,
		Description: r.Description,
		Credits:     r.Credits,
	}
}

func (r *UpdateCourseRequest) ToCommand() commands.UpdateCourseRequest {
	return commands.UpdateCourseRequest{
		Code:        r.Code,
		Title:       r.Title,
		Description: r.Description,
		Credits:     r.Credits,
	}
}
