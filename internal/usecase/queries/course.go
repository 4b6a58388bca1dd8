package queries

import (
	"context"

	"lms-api/internal/domain/course"
	"lms-api/internal/infra"
	"lms-api/internal/pkg/errs"
	"lms-api/internal/pkg/paging"
	"lms-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CourseQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CourseView, error)
	List(ctx context.Context, q paging.Query) (paging.Result[*CourseView], error)
}

type courseQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCourseQueries(uow shared.UnitOfWork) CourseQueries {
	return &courseQueriesImpl{uow: uow}
}

var courseSpec = paging.Spec[*course.Course]{
	Match: func(c *course.Course, term string) bool {
		return paging.ContainsFold(term, c.Code().String(), c.Title())
	},
	SortKey: func(c *course.Course, field string) any {
		switch field {
		case "code":
			return c.Code().String()
		case "title":
			return c.Title()
		case "credits":
			return c.Credits()
		case "createdat":
			return c.CreatedAt()
		case "updatedat":
			return c.UpdatedAt()
		default:
			return c.ID()
		}
	},
}

func toCourseView(c *course.Course) *CourseView {
	return project[CourseView](c)
}

func (q *courseQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CourseView, error) {
	var view *CourseView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		c, err := tx.Courses().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCourseNotFound)
			}
			return err
		}
		view = toCourseView(c)
		return nil
	})
	return view, err
}

func (q *courseQueriesImpl) List(ctx context.Context, pq paging.Query) (paging.Result[*CourseView], error) {
	var result paging.Result[*CourseView]
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		all, err := tx.Courses().List(ctx)
		if err != nil {
			return errs.Wrap(err, "failed to list courses")
		}
		result = paging.Apply(all, pq, courseSpec, toCourseView)
		return nil
	})
	return result, err
}
