//go:build unit || e2e

package builder

import (
	"time"

	"lms-api/internal/domain/course"
	reqdto "lms-api/internal/handler/dto/request"
	"lms-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourseBuilder struct {
	ID          uuid.UUID
	Code        string
	Title       string
	Description string
	Credits     int
	CreatedAt   time.Time
}

func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		ID:          uuid.New(),
		Code:        "CS101",
		Title:       "Introduction to Programming",
		Description: "Variables, control flow and functions.",
		Credits:     4,
		CreatedAt:   fixedTime,
	}
}

func (b *CourseBuilder) With(mutate func(*CourseBuilder)) *CourseBuilder {
	mutate(b)
	return b
}

func (b *CourseBuilder) BuildDomain() (*course.Course, error) {
	return course.NewCourse(b.ID, b.Code, b.Title, b.Description, b.Credits, b.CreatedAt)
}

func (b *CourseBuilder) BuildView() *queries.CourseView {
	return &queries.CourseView{
		ID:          b.ID,
		Code:        b.Code,
		Title:       b.Title,
		Description: b.Description,
		Credits:     b.Credits,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *CourseBuilder) BuildCreateRequestDTO() reqdto.CreateCourseRequest {
	return reqdto.CreateCourseRequest{
		Code:        b.Code,
		Title:       b.Title,
		Description: b.Description,
		Credits:     b.Credits,
	}
}
