package queries

import (
	"time"

	"github.com/google/uuid"
)

// StudentView represents read-optimized student data
type StudentView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CourseView represents read-optimized course data
type CourseView struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Credits     int       `json:"credits"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EnrollmentView joins an enrollment with its student and course
type EnrollmentView struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"studentId"`
	StudentName string    `json:"studentName"`
	CourseID    uuid.UUID `json:"courseId"`
	CourseCode  string    `json:"courseCode"`
	CourseTitle string    `json:"courseTitle"`
	EnrolledAt  time.Time `json:"enrolledAt"`
	Grade       *int      `json:"grade,omitempty"`
}

type EnrollmentFilter struct {
	StudentID *uuid.UUID
	CourseID  *uuid.UUID
}

func (f EnrollmentFilter) matches(studentID, courseID uuid.UUID) bool {
	if f.StudentID != nil && *f.StudentID != studentID {
		return false
	}
	if f.CourseID != nil && *f.CourseID != courseID {
		return false
	}
	return true
}
