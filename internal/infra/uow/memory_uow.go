package uow

import (
	"context"
	"log/slog"
	"sync"

	"lms-api/internal/infra/repository"
	"lms-api/internal/pkg/errs"
	"lms-api/internal/usecase/shared"
)

var errTransactionBegin = errs.New("failed to begin transaction")

// MemoryUoW serialises write scopes over the shared in-memory tables and
// lets read-only scopes run concurrently.
type MemoryUoW struct {
	mu     sync.RWMutex
	tables *repository.Tables
	logger *slog.Logger
}

func NewMemoryUoW(tables *repository.Tables, logger *slog.Logger) *MemoryUoW {
	if tables == nil {
		tables = repository.NewTables()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryUoW{tables: tables, logger: logger}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errs.Mark(ctxErr, errTransactionBegin)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	tx := &memTx{uow: u, journal: &repository.Journal{}}
	defer func() {
		if p := recover(); p != nil {
			tx.journal.Rollback()
			panic(p)
		}
		if err != nil {
			if n := tx.journal.Len(); n > 0 {
				u.logger.Debug("rolling back unit of work", slog.Int("writes", n), slog.String("error", err.Error()))
			}
			tx.journal.Rollback()
		}
	}()

	return fn(ctx, tx)
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errs.Mark(ctxErr, errTransactionBegin)
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	// nil journal: readers never record writes
	return fn(ctx, &memReadTx{tx: memTx{uow: u}})
}

type memTx struct {
	uow     *MemoryUoW
	journal *repository.Journal

	// Lazy-initialized repositories
	studentRepo    *repository.StudentRepository
	courseRepo     *repository.CourseRepository
	enrollmentRepo *repository.EnrollmentRepository
}

func (t *memTx) Students() shared.StudentRepository {
	if t.studentRepo == nil {
		t.studentRepo = repository.NewStudentRepository(t.uow.tables, t.journal, t.uow.logger)
	}
	return t.studentRepo
}

func (t *memTx) Courses() shared.CourseRepository {
	if t.courseRepo == nil {
		t.courseRepo = repository.NewCourseRepository(t.uow.tables, t.journal, t.uow.logger)
	}
	return t.courseRepo
}

func (t *memTx) Enrollments() shared.EnrollmentRepository {
	if t.enrollmentRepo == nil {
		t.enrollmentRepo = repository.NewEnrollmentRepository(t.uow.tables, t.journal, t.uow.logger)
	}
	return t.enrollmentRepo
}

// memReadTx narrows memTx to the reader ports.
type memReadTx struct {
	tx memTx
}

func (t *memReadTx) Students() shared.StudentReader       { return t.tx.Students() }
func (t *memReadTx) Courses() shared.CourseReader         { return t.tx.Courses() }
func (t *memReadTx) Enrollments() shared.EnrollmentReader { return t.tx.Enrollments() }
