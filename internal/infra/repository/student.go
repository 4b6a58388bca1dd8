package repository

import (
	"context"
	"log/slog"

	"lms-api/internal/domain/student"
	"lms-api/internal/infra"

	"github.com/google/uuid"
)

type StudentRepository struct {
	t       *Tables
	journal *Journal
	logger  *slog.Logger
}

func NewStudentRepository(t *Tables, journal *Journal, logger *slog.Logger) *StudentRepository {
	return &StudentRepository{t: t, journal: journal, logger: logger}
}

func (r *StudentRepository) FindByID(_ context.Context, id uuid.UUID) (*student.Student, error) {
	s, ok := r.t.students.get(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "student not found", nil, slog.String("student_id", id.String()))
	}
	return s, nil
}

func (r *StudentRepository) List(_ context.Context) ([]*student.Student, error) {
	return r.t.students.all(), nil
}

func (r *StudentRepository) Create(_ context.Context, s *student.Student) error {
	if _, exists := r.t.students.get(s.ID()); exists {
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "student id already exists", nil, slog.String("student_id", s.ID().String()))
	}
	if _, taken := r.t.emails[s.Email()]; taken {
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "student email already exists", nil, slog.String("student_id", s.ID().String()))
	}

	id, email := s.ID(), s.Email()
	r.t.students.put(id, s)
	r.t.emails[email] = id
	r.journal.record(func() {
		r.t.students.remove(id)
		delete(r.t.emails, email)
	})
	return nil
}

func (r *StudentRepository) Update(_ context.Context, s *student.Student) error {
	prev, ok := r.t.students.get(s.ID())
	if !ok {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "student not found", nil, slog.String("student_id", s.ID().String()))
	}
	if owner, taken := r.t.emails[s.Email()]; taken && owner != s.ID() {
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "student email already exists", nil, slog.String("student_id", s.ID().String()))
	}

	id, email := s.ID(), s.Email()
	delete(r.t.emails, prev.Email())
	r.t.emails[email] = id
	r.t.students.put(id, s)
	r.journal.record(func() {
		delete(r.t.emails, email)
		r.t.emails[prev.Email()] = id
		r.t.students.put(id, prev)
	})
	return nil
}

func (r *StudentRepository) Delete(_ context.Context, id uuid.UUID) error {
	prev, ok := r.t.students.get(id)
	if !ok {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "student not found", nil, slog.String("student_id", id.String()))
	}

	pos := r.t.students.position(id)
	r.t.students.remove(id)
	delete(r.t.emails, prev.Email())
	r.journal.record(func() {
		r.t.students.restore(id, prev, pos)
		r.t.emails[prev.Email()] = id
	})
	return nil
}
