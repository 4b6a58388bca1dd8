package enrollment

import (
	"time"

	"lms-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MinGrade = 0
	MaxGrade = 100
)

var (
	ErrInvalidGrade     = errs.Mark(errs.New("grade must be between 0 and 100"), errs.ErrDomainValidation)
	ErrInvalidReference = errs.Mark(errs.New("student and course ids are required"), errs.ErrDomainValidation)
)

type Enrollment struct {
	id         uuid.UUID
	studentID  uuid.UUID
	courseID   uuid.UUID
	enrolledAt time.Time
	grade      *int
	updatedAt  time.Time
}

func NewEnrollment(id, studentID, courseID uuid.UUID, now time.Time) (*Enrollment, error) {
	if studentID == uuid.Nil || courseID == uuid.Nil {
		return nil, ErrInvalidReference
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Enrollment{
		id:         id,
		studentID:  studentID,
		courseID:   courseID,
		enrolledAt: now,
		updatedAt:  now,
	}, nil
}

// AssignGrade sets or, with nil, clears the grade.
func (e *Enrollment) AssignGrade(grade *int, now time.Time) error {
	if grade == nil {
		e.grade = nil
		e.updatedAt = now
		return nil
	}
	if *grade < MinGrade || *grade > MaxGrade {
		return ErrInvalidGrade
	}
	g := *grade
	e.grade = &g
	e.updatedAt = now
	return nil
}

func (e *Enrollment) ID() uuid.UUID         { return e.id }
func (e *Enrollment) StudentID() uuid.UUID  { return e.studentID }
func (e *Enrollment) CourseID() uuid.UUID   { return e.courseID }
func (e *Enrollment) EnrolledAt() time.Time { return e.enrolledAt }
func (e *Enrollment) UpdatedAt() time.Time  { return e.updatedAt }

func (e *Enrollment) Grade() *int {
	if e.grade == nil {
		return nil
	}
	g := *e.grade
	return &g
}
