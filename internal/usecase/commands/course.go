package commands

import (
	"context"
	"log/slog"

	domcourse "lms-api/internal/domain/course"
	"lms-api/internal/pkg/clock"
	"lms-api/internal/pkg/errs"
	"lms-api/internal/pkg/patch"
	"lms-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCourseRequest struct {
	Code        string
	Title       string
	Description string
	Credits     int
}

// UpdateCourseRequest leaves nil fields unchanged.
type UpdateCourseRequest struct {
	Code        *string
	Title       *string
	Description *string
	Credits     *int
}

type CourseCommands interface {
	CreateCourse(ctx context.Context, req CreateCourseRequest) (uuid.UUID, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, req UpdateCourseRequest) error
	DeleteCourse(ctx context.Context, id uuid.UUID) error
}

type courseUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewCourseUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) CourseCommands {
	return &courseUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *courseUseCaseImpl) CreateCourse(ctx context.Context, req CreateCourseRequest) (uuid.UUID, error) {
	c, err := domcourse.NewCourse(uuid.Nil, req.Code, req.Title, req.Description, req.Credits, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateRepoErr(tx.Courses().Create(ctx, c), nil, errs.ErrDuplicateCourse)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.logger.Info("Course created", slog.String("course_id", c.ID().String()), slog.String("code", c.Code().String()))
	return c.ID(), nil
}

func (uc *courseUseCaseImpl) UpdateCourse(ctx context.Context, id uuid.UUID, req UpdateCourseRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Courses().FindByID(ctx, id)
		if err != nil {
			return translateRepoErr(err, errs.ErrCourseNotFound, nil)
		}
		if !patch.Changed(req.Code, c.Code().String()) &&
			!patch.Changed(req.Title, c.Title()) &&
			!patch.Changed(req.Description, c.Description()) &&
			!patch.Changed(req.Credits, c.Credits()) {
			return nil
		}

		err = c.Update(
			patch.Coalesce(req.Code, c.Code().String()),
			patch.Coalesce(req.Title, c.Title()),
			patch.Coalesce(req.Description, c.Description()),
			patch.Coalesce(req.Credits, c.Credits()),
			uc.clock.Now(),
		)
		if err != nil {
			return err
		}

		return translateRepoErr(tx.Courses().Update(ctx, c), errs.ErrCourseNotFound, errs.ErrDuplicateCourse)
	})
}

// DeleteCourse also removes every enrollment in the course.
func (uc *courseUseCaseImpl) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Courses().FindByID(ctx, id); err != nil {
			return translateRepoErr(err, errs.ErrCourseNotFound, nil)
		}

		n, err := tx.Enrollments().DeleteByCourse(ctx, id)
		if err != nil {
			return err
		}
		if err = tx.Courses().Delete(ctx, id); err != nil {
			return translateRepoErr(err, errs.ErrCourseNotFound, nil)
		}

		uc.logger.Info("Course deleted", slog.String("course_id", id.String()), slog.Int("enrollments_removed", n))
		return nil
	})
}
