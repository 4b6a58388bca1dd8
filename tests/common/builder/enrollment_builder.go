//go:build unit || e2e

package builder

import (
	"time"

	reqdto "lms-api/internal/handler/dto/request"
	"lms-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type EnrollmentBuilder struct {
	ID         uuid.UUID
	Student    *StudentBuilder
	Course     *CourseBuilder
	EnrolledAt time.Time
	Grade      *int
}

func NewEnrollmentBuilder() *EnrollmentBuilder {
	return &EnrollmentBuilder{
		ID:         uuid.New(),
		Student:    NewStudentBuilder(),
		Course:     NewCourseBuilder(),
		EnrolledAt: fixedTime,
	}
}

func (b *EnrollmentBuilder) With(mutate func(*EnrollmentBuilder)) *EnrollmentBuilder {
	mutate(b)
	return b
}

func (b *EnrollmentBuilder) BuildView() *queries.EnrollmentView {
	return &queries.EnrollmentView{
		ID:          b.ID,
		StudentID:   b.Student.ID,
		StudentName: b.Student.FirstName + " " + b.Student.LastName,
		CourseID:    b.Course.ID,
		CourseCode:  b.Course.Code,
		CourseTitle: b.Course.Title,
		EnrolledAt:  b.EnrolledAt,
		Grade:       b.Grade,
	}
}

func (b *EnrollmentBuilder) BuildCreateRequestDTO() reqdto.CreateEnrollmentRequest {
	return reqdto.CreateEnrollmentRequest{
		StudentID: b.Student.ID,
		CourseID:  b.Course.ID,
	}
}
