package queries

import (
	"context"

	"lms-api/internal/domain/course"
	"lms-api/internal/domain/enrollment"
	"lms-api/internal/domain/student"
	"lms-api/internal/infra"
	"lms-api/internal/pkg/errs"
	"lms-api/internal/pkg/paging"
	"lms-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type EnrollmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EnrollmentView, error)
	List(ctx context.Context, filter EnrollmentFilter, q paging.Query) (paging.Result[*EnrollmentView], error)
}

type enrollmentQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewEnrollmentQueries(uow shared.UnitOfWork) EnrollmentQueries {
	return &enrollmentQueriesImpl{uow: uow}
}

// enrollmentRow is an enrollment joined with the rows it references.
type enrollmentRow struct {
	enrollment *enrollment.Enrollment
	student    *student.Student
	course     *course.Course
}

var enrollmentSpec = paging.Spec[enrollmentRow]{
	Match: func(r enrollmentRow, term string) bool {
		return paging.ContainsFold(term,
			r.course.Code().String(), r.course.Title(),
			r.student.FirstName(), r.student.LastName(), r.student.FullName())
	},
	SortKey: func(r enrollmentRow, field string) any {
		switch field {
		case "enrolledat":
			return r.enrollment.EnrolledAt()
		case "grade":
			return r.enrollment.Grade()
		case "studentname":
			return r.student.LastName() + " " + r.student.FirstName()
		case "coursecode":
			return r.course.Code().String()
		case "coursetitle":
			return r.course.Title()
		default:
			return r.enrollment.ID()
		}
	},
}

func toEnrollmentView(r enrollmentRow) *EnrollmentView {
	v := project[EnrollmentView](r.enrollment)
	v.Grade = r.enrollment.Grade()
	v.StudentName = r.student.FullName()
	v.CourseCode = r.course.Code().String()
	v.CourseTitle = r.course.Title()
	return v
}

func (q *enrollmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EnrollmentView, error) {
	var view *EnrollmentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		e, err := tx.Enrollments().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrEnrollmentNotFound)
			}
			return err
		}
		row, err := joinEnrollment(ctx, tx, e)
		if err != nil {
			return err
		}
		view = toEnrollmentView(row)
		return nil
	})
	return view, err
}

func (q *enrollmentQueriesImpl) List(ctx context.Context, filter EnrollmentFilter, pq paging.Query) (paging.Result[*EnrollmentView], error) {
	var result paging.Result[*EnrollmentView]
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		all, err := tx.Enrollments().List(ctx)
		if err != nil {
			return errs.Wrap(err, "failed to list enrollments")
		}

		rows := make([]enrollmentRow, 0, len(all))
		for _, e := range all {
			if !filter.matches(e.StudentID(), e.CourseID()) {
				continue
			}
			row, jerr := joinEnrollment(ctx, tx, e)
			if jerr != nil {
				return jerr
			}
			rows = append(rows, row)
		}

		result = paging.Apply(rows, pq, enrollmentSpec, toEnrollmentView)
		return nil
	})
	return result, err
}

func joinEnrollment(ctx context.Context, tx shared.ReadTx, e *enrollment.Enrollment) (enrollmentRow, error) {
	s, err := tx.Students().FindByID(ctx, e.StudentID())
	if err != nil {
		return enrollmentRow{}, errs.Wrapf(err, "enrollment %s references missing student", e.ID())
	}
	c, err := tx.Courses().FindByID(ctx, e.CourseID())
	if err != nil {
		return enrollmentRow{}, errs.Wrapf(err, "enrollment %s references missing course", e.ID())
	}
	return enrollmentRow{enrollment: e, student: s, course: c}, nil
}
