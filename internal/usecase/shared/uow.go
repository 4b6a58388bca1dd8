package shared

import (
	"context"

	"lms-api/internal/domain/course"
	"lms-api/internal/domain/enrollment"
	"lms-api/internal/domain/student"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: all-or-nothing write scope; writes are undone when fn returns an error
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot across repositories, writes are not allowed
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx ReadTx) error) error
}

type ReadTx interface {
	Students() StudentReader
	Courses() CourseReader
	Enrollments() EnrollmentReader
}

type Tx interface {
	Students() StudentRepository
	Courses() CourseRepository
	Enrollments() EnrollmentRepository
}

type StudentReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*student.Student, error)
	List(ctx context.Context) ([]*student.Student, error)
}

type StudentRepository interface {
	StudentReader
	Create(ctx context.Context, s *student.Student) error
	Update(ctx context.Context, s *student.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CourseReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*course.Course, error)
	List(ctx context.Context) ([]*course.Course, error)
}

type CourseRepository interface {
	CourseReader
	Create(ctx context.Context, c *course.Course) error
	Update(ctx context.Context, c *course.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EnrollmentReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*enrollment.Enrollment, error)
	List(ctx context.Context) ([]*enrollment.Enrollment, error)
}

type EnrollmentRepository interface {
	EnrollmentReader
	Create(ctx context.Context, e *enrollment.Enrollment) error
	Update(ctx context.Context, e *enrollment.Enrollment) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByStudent(ctx context.Context, studentID uuid.UUID) (int, error)
	DeleteByCourse(ctx context.Context, courseID uuid.UUID) (int, error)
}
