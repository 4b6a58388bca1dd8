package commands

import (
	"context"
	"log/slog"

	domstudent "lms-api/internal/domain/student"
	"lms-api/internal/pkg/clock"
	"lms-api/internal/pkg/errs"
	"lms-api/internal/pkg/patch"
	"lms-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateStudentRequest struct {
	FirstName string
	LastName  string
	Email     string
}

// UpdateStudentRequest leaves nil fields unchanged.
type UpdateStudentRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
}

type StudentCommands interface {
	CreateStudent(ctx context.Context, req CreateStudentRequest) (uuid.UUID, error)
	UpdateStudent(ctx context.Context, id uuid.UUID, req UpdateStudentRequest) error
	DeleteStudent(ctx context.Context, id uuid.UUID) error
}

type studentUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewStudentUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) StudentCommands {
	return &studentUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *studentUseCaseImpl) CreateStudent(ctx context.Context, req CreateStudentRequest) (uuid.UUID, error) {
	s, err := domstudent.NewStudent(uuid.Nil, req.FirstName, req.LastName, req.Email, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateRepoErr(tx.Students().Create(ctx, s), nil, errs.ErrDuplicateEmail)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.logger.Info("Student created", slog.String("student_id", s.ID().String()))
	return s.ID(), nil
}

func (uc *studentUseCaseImpl) UpdateStudent(ctx context.Context, id uuid.UUID, req UpdateStudentRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Students().FindByID(ctx, id)
		if err != nil {
			return translateRepoErr(err, errs.ErrStudentNotFound, nil)
		}
		if !patch.Changed(req.FirstName, s.FirstName()) &&
			!patch.Changed(req.LastName, s.LastName()) &&
			!patch.Changed(req.Email, s.Email().String()) {
			return nil
		}

		err = s.Update(
			patch.Coalesce(req.FirstName, s.FirstName()),
			patch.Coalesce(req.LastName, s.LastName()),
			patch.Coalesce(req.Email, s.Email().String()),
			uc.clock.Now(),
		)
		if err != nil {
			return err
		}

		return translateRepoErr(tx.Students().Update(ctx, s), errs.ErrStudentNotFound, errs.ErrDuplicateEmail)
	})
}

// DeleteStudent also withdraws the student from every course.
func (uc *studentUseCaseImpl) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Students().FindByID(ctx, id); err != nil {
			return translateRepoErr(err, errs.ErrStudentNotFound, nil)
		}

		n, err := tx.Enrollments().DeleteByStudent(ctx, id)
		if err != nil {
			return err
		}
		if err = tx.Students().Delete(ctx, id); err != nil {
			return translateRepoErr(err, errs.ErrStudentNotFound, nil)
		}

		uc.logger.Info("Student deleted", slog.String("student_id", id.String()), slog.Int("enrollments_removed", n))
		return nil
	})
}
