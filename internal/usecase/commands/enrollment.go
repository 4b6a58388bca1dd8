package commands

import (
	"context"
	"log/slog"

	domenrollment "lms-api/internal/domain/enrollment"
	"lms-api/internal/pkg/clock"
	"lms-api/internal/pkg/errs"
	"lms-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type EnrollRequest struct {
	StudentID uuid.UUID
	CourseID  uuid.UUID
}

type EnrollmentCommands interface {
	Enroll(ctx context.Context, req EnrollRequest) (uuid.UUID, error)
	// AssignGrade sets the grade; nil clears it.
	AssignGrade(ctx context.Context, id uuid.UUID, grade *int) error
	Withdraw(ctx context.Context, id uuid.UUID) error
}

type enrollmentUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewEnrollmentUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) EnrollmentCommands {
	return &enrollmentUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *enrollmentUseCaseImpl) Enroll(ctx context.Context, req EnrollRequest) (uuid.UUID, error) {
	e, err := domenrollment.NewEnrollment(uuid.Nil, req.StudentID, req.CourseID, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Students().FindByID(ctx, req.StudentID); derr != nil {
			return translateRepoErr(derr, errs.ErrStudentNotFound, nil)
		}
		if _, derr := tx.Courses().FindByID(ctx, req.CourseID); derr != nil {
			return translateRepoErr(derr, errs.ErrCourseNotFound, nil)
		}
		return translateRepoErr(tx.Enrollments().Create(ctx, e), nil, errs.ErrAlreadyEnrolled)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.logger.Info("Student enrolled",
		slog.String("enrollment_id", e.ID().String()),
		slog.String("student_id", req.StudentID.String()),
		slog.String("course_id", req.CourseID.String()))
	return e.ID(), nil
}

func (uc *enrollmentUseCaseImpl) AssignGrade(ctx context.Context, id uuid.UUID, grade *int) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Enrollments().FindByID(ctx, id)
		if err != nil {
			return translateRepoErr(err, errs.ErrEnrollmentNotFound, nil)
		}
		if err = e.AssignGrade(grade, uc.clock.Now()); err != nil {
			return err
		}
		return translateRepoErr(tx.Enrollments().Update(ctx, e), errs.ErrEnrollmentNotFound, nil)
	})
}

func (uc *enrollmentUseCaseImpl) Withdraw(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateRepoErr(tx.Enrollments().Delete(ctx, id), errs.ErrEnrollmentNotFound, nil)
	})
}
