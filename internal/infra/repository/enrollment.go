package repository

import (
	"context"
	"log/slog"

	"lms-api/internal/domain/enrollment"
	"lms-api/internal/infra"

	"github.com/google/uuid"
)

type EnrollmentRepository struct {
	t       *Tables
	journal *Journal
	logger  *slog.Logger
}

func NewEnrollmentRepository(t *Tables, journal *Journal, logger *slog.Logger) *EnrollmentRepository {
	return &EnrollmentRepository{t: t, journal: journal, logger: logger}
}

func pairOf(e *enrollment.Enrollment) enrollmentPair {
	return enrollmentPair{studentID: e.StudentID(), courseID: e.CourseID()}
}

func (r *EnrollmentRepository) FindByID(_ context.Context, id uuid.UUID) (*enrollment.Enrollment, error) {
	e, ok := r.t.enrollments.get(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "enrollment not found", nil, slog.String("enrollment_id", id.String()))
	}
	return e, nil
}

func (r *EnrollmentRepository) List(_ context.Context) ([]*enrollment.Enrollment, error) {
	return r.t.enrollments.all(), nil
}

// Create rejects a second enrollment of the same student in the same course
// and references to students or courses that do not exist.
func (r *EnrollmentRepository) Create(_ context.Context, e *enrollment.Enrollment) error {
	if _, ok := r.t.students.rows[e.StudentID()]; !ok {
		return infra.WrapRepoErr(r.logger, infra.KindForeignKeyViolated, "student does not exist", nil, slog.String("student_id", e.StudentID().String()))
	}
	if _, ok := r.t.courses.rows[e.CourseID()]; !ok {
		return infra.WrapRepoErr(r.logger, infra.KindForeignKeyViolated, "course does not exist", nil, slog.String("course_id", e.CourseID().String()))
	}
	if _, exists := r.t.enrollments.get(e.ID()); exists {
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "enrollment id already exists", nil, slog.String("enrollment_id", e.ID().String()))
	}
	pair := pairOf(e)
	if _, taken := r.t.pairs[pair]; taken {
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "student already enrolled in course", nil, slog.String("enrollment_id", e.ID().String()))
	}

	id := e.ID()
	r.t.enrollments.put(id, e)
	r.t.pairs[pair] = id
	r.journal.record(func() {
		r.t.enrollments.remove(id)
		delete(r.t.pairs, pair)
	})
	return nil
}

// Update replaces mutable fields only; the student/course pair is fixed.
func (r *EnrollmentRepository) Update(_ context.Context, e *enrollment.Enrollment) error {
	prev, ok := r.t.enrollments.get(e.ID())
	if !ok {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "enrollment not found", nil, slog.String("enrollment_id", e.ID().String()))
	}
	if pairOf(prev) != pairOf(e) {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "enrollment pair cannot change", nil, slog.String("enrollment_id", e.ID().String()))
	}

	id := e.ID()
	r.t.enrollments.put(id, e)
	r.journal.record(func() {
		r.t.enrollments.put(id, prev)
	})
	return nil
}

func (r *EnrollmentRepository) Delete(_ context.Context, id uuid.UUID) error {
	prev, ok := r.t.enrollments.get(id)
	if !ok {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "enrollment not found", nil, slog.String("enrollment_id", id.String()))
	}
	r.remove(prev)
	return nil
}

func (r *EnrollmentRepository) DeleteByStudent(_ context.Context, studentID uuid.UUID) (int, error) {
	return r.removeWhere(func(e *enrollment.Enrollment) bool { return e.StudentID() == studentID }), nil
}

func (r *EnrollmentRepository) DeleteByCourse(_ context.Context, courseID uuid.UUID) (int, error) {
	return r.removeWhere(func(e *enrollment.Enrollment) bool { return e.CourseID() == courseID }), nil
}

func (r *EnrollmentRepository) removeWhere(match func(*enrollment.Enrollment) bool) int {
	n := 0
	for _, e := range r.t.enrollments.all() {
		if match(e) {
			r.remove(e)
			n++
		}
	}
	return n
}

func (r *EnrollmentRepository) remove(prev *enrollment.Enrollment) {
	id, pair := prev.ID(), pairOf(prev)
	pos := r.t.enrollments.position(id)
	r.t.enrollments.remove(id)
	delete(r.t.pairs, pair)
	r.journal.record(func() {
		r.t.enrollments.restore(id, prev, pos)
		r.t.pairs[pair] = id
	})
}
