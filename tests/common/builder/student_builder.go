//go:build unit || e2e

package builder

import (
	"time"

	"lms-api/internal/domain/student"
	reqdto "lms-api/internal/handler/dto/request"
	"lms-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var fixedTime = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

type StudentBuilder struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}

func NewStudentBuilder() *StudentBuilder {
	return &StudentBuilder{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		CreatedAt: fixedTime,
	}
}

func (b *StudentBuilder) With(mutate func(*StudentBuilder)) *StudentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *StudentBuilder) BuildDomain() (*student.Student, error) {
	return student.NewStudent(b.ID, b.FirstName, b.LastName, b.Email, b.CreatedAt)
}

func (b *StudentBuilder) BuildView() *queries.StudentView {
	return &queries.StudentView{
		ID:        b.ID,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		FullName:  b.FirstName + " " + b.LastName,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *StudentBuilder) BuildCreateRequestDTO() reqdto.CreateStudentRequest {
	return reqdto.CreateStudentRequest{
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
	}
}
