package repository

import (
	"context"
	"log/slog"

	"lms-api/internal/domain/course"
	"lms-api/internal/infra"

	"github.com/google/uuid"
)

type CourseRepository struct {
	t       *Tables
	journal *Journal
	logger  *slog.Logger
}

func NewCourseRepository(t *Tables, journal *Journal, logger *slog.Logger) *CourseRepository {
	return &CourseRepository{t: t, journal: journal, logger: logger}
}

func (r *CourseRepository) FindByID(_ context.Context, id uuid.UUID) (*course.Course, error) {
	c, ok := r.t.courses.get(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "course not found", nil, slog.String("course_id", id.String()))
	}
	return c, nil
}

func (r *CourseRepository) List(_ context.Context) ([]*course.Course, error) {
	return r.t.courses.all(), nil
}

func (r *CourseRepository) Create(_ context.Context, c *course.Course) error {
	if _, exists := r.t.courses.get(c.ID()); exists {
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "course id already exists", nil, slog.String("course_id", c.ID().String()))
	}
	if _, taken := r.t.codes[c.Code()]; taken {
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "course code already exists", nil, slog.String("course_id", c.ID().String()))
	}

	id, code := c.ID(), c.Code()
	r.t.courses.put(id, c)
	r.t.codes[code] = id
	r.journal.record(func() {
		r.t.courses.remove(id)
		delete(r.t.codes, code)
	})
	return nil
}

func (r *CourseRepository) Update(_ context.Context, c *course.Course) error {
	prev, ok := r.t.courses.get(c.ID())
	if !ok {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "course not found", nil, slog.String("course_id", c.ID().String()))
	}
	if owner, taken := r.t.codes[c.Code()]; taken && owner != c.ID() {
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "course code already exists", nil, slog.String("course_id", c.ID().String()))
	}

	id, code := c.ID(), c.Code()
	delete(r.t.codes, prev.Code())
	r.t.codes[code] = id
	r.t.courses.put(id, c)
	r.journal.record(func() {
		delete(r.t.codes, code)
		r.t.codes[prev.Code()] = id
		r.t.courses.put(id, prev)
	})
	return nil
}

func (r *CourseRepository) Delete(_ context.Context, id uuid.UUID) error {
	prev, ok := r.t.courses.get(id)
	if !ok {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "course not found", nil, slog.String("course_id", id.String()))
	}

	pos := r.t.courses.position(id)
	r.t.courses.remove(id)
	delete(r.t.codes, prev.Code())
	r.journal.record(func() {
		r.t.courses.restore(id, prev, pos)
		r.t.codes[prev.Code()] = id
	})
	return nil
}
