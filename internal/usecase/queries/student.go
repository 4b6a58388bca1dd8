package queries

import (
	"context"

	"lms-api/internal/domain/student"
	"lms-api/internal/infra"
	"lms-api/internal/pkg/errs"
	"lms-api/internal/pkg/paging"
	"lms-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type StudentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StudentView, error)
	List(ctx context.Context, q paging.Query) (paging.Result[*StudentView], error)
}

type studentQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewStudentQueries(uow shared.UnitOfWork) StudentQueries {
	return &studentQueriesImpl{uow: uow}
}

var studentSpec = paging.Spec[*student.Student]{
	Match: func(s *student.Student, term string) bool {
		return paging.ContainsFold(term, s.FirstName(), s.LastName(), s.FullName(), s.Email().String())
	},
	SortKey: func(s *student.Student, field string) any {
		switch field {
		case "firstname":
			return s.FirstName()
		case "lastname":
			return s.LastName()
		case "name", "fullname":
			return s.LastName() + " " + s.FirstName()
		case "email":
			return s.Email().String()
		case "createdat":
			return s.CreatedAt()
		case "updatedat":
			return s.UpdatedAt()
		default:
			return s.ID()
		}
	},
}

func toStudentView(s *student.Student) *StudentView {
	return project[StudentView](s)
}

func (q *studentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StudentView, error) {
	var view *StudentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		s, err := tx.Students().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrStudentNotFound)
			}
			return err
		}
		view = toStudentView(s)
		return nil
	})
	return view, err
}

func (q *studentQueriesImpl) List(ctx context.Context, pq paging.Query) (paging.Result[*StudentView], error) {
	var result paging.Result[*StudentView]
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		all, err := tx.Students().List(ctx)
		if err != nil {
			return errs.Wrap(err, "failed to list students")
		}
		result = paging.Apply(all, pq, studentSpec, toStudentView)
		return nil
	})
	return result, err
}
