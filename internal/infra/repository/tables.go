package repository

import (
	"slices"

	"lms-api/internal/domain/course"
	"lms-api/internal/domain/enrollment"
	"lms-api/internal/domain/student"

	"github.com/google/uuid"
)

// Tables is the process-local dataset shared by all repositories.
// It carries no locking of its own: callers go through uow.MemoryUoW,
// which serialises writers and admits concurrent readers.
type Tables struct {
	students    *table[student.Student]
	emails      map[student.Email]uuid.UUID
	courses     *table[course.Course]
	codes       map[course.Code]uuid.UUID
	enrollments *table[enrollment.Enrollment]
	pairs       map[enrollmentPair]uuid.UUID
}

type enrollmentPair struct {
	studentID uuid.UUID
	courseID  uuid.UUID
}

func NewTables() *Tables {
	return &Tables{
		students:    newTable[student.Student](),
		emails:      make(map[student.Email]uuid.UUID),
		courses:     newTable[course.Course](),
		codes:       make(map[course.Code]uuid.UUID),
		enrollments: newTable[enrollment.Enrollment](),
		pairs:       make(map[enrollmentPair]uuid.UUID),
	}
}

// table keeps rows in insertion order. Rows are stored and handed out as
// copies so callers can never mutate shared state outside a unit of work.
type table[E any] struct {
	rows  map[uuid.UUID]*E
	order []uuid.UUID
}

func newTable[E any]() *table[E] {
	return &table[E]{rows: make(map[uuid.UUID]*E)}
}

func clone[E any](e *E) *E {
	c := *e
	return &c
}

func (t *table[E]) get(id uuid.UUID) (*E, bool) {
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return clone(row), true
}

// put inserts or replaces; a replaced row keeps its position.
func (t *table[E]) put(id uuid.UUID, e *E) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = clone(e)
}

func (t *table[E]) remove(id uuid.UUID) {
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(x uuid.UUID) bool { return x == id })
}

// restore re-inserts a removed row at its former position.
func (t *table[E]) restore(id uuid.UUID, e *E, pos int) {
	t.rows[id] = clone(e)
	pos = min(max(pos, 0), len(t.order))
	t.order = slices.Insert(t.order, pos, id)
}

func (t *table[E]) position(id uuid.UUID) int {
	return slices.Index(t.order, id)
}

func (t *table[E]) all() []*E {
	out := make([]*E, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, clone(t.rows[id]))
	}
	return out
}

func (t *table[E]) len() int {
	return len(t.order)
}

// Journal collects undo steps for the writes of one unit of work.
type Journal struct {
	undo []func()
}

func (j *Journal) record(fn func()) {
	if j == nil {
		return
	}
	j.undo = append(j.undo, fn)
}

// Rollback reverts recorded writes, newest first.
func (j *Journal) Rollback() {
	if j == nil {
		return
	}
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

func (j *Journal) Len() int {
	if j == nil {
		return 0
	}
	return len(j.undo)
}
