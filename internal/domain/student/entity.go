package student

import (
	"time"

	"lms-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidName  = errs.Mark(errs.New("name must be between 1 and 100 characters"), errs.ErrDomainValidation)
	ErrInvalidEmail = errs.Mark(errs.New("invalid email format"), errs.ErrDomainValidation)
)

type Student struct {
	id        uuid.UUID
	firstName string
	lastName  string
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

func NewStudent(id uuid.UUID, firstName, lastName, email string, now time.Time) (*Student, error) {
	s := &Student{id: id, createdAt: now}
	if s.id == uuid.Nil {
		s.id = uuid.New()
	}
	if err := s.Update(firstName, lastName, email, now); err != nil {
		return nil, err
	}
	return s, nil
}

// Update validates every field before applying any of them.
func (s *Student) Update(firstName, lastName, email string, now time.Time) error {
	first, err := newName(firstName)
	if err != nil {
		return err
	}
	last, err := newName(lastName)
	if err != nil {
		return err
	}
	addr, err := NewEmail(email)
	if err != nil {
		return err
	}

	s.firstName = first
	s.lastName = last
	s.email = addr
	s.updatedAt = now
	return nil
}

func (s *Student) ID() uuid.UUID        { return s.id }
func (s *Student) FirstName() string    { return s.firstName }
func (s *Student) LastName() string     { return s.lastName }
func (s *Student) FullName() string     { return s.firstName + " " + s.lastName }
func (s *Student) Email() Email         { return s.email }
func (s *Student) CreatedAt() time.Time { return s.createdAt }
func (s *Student) UpdatedAt() time.Time { return s.updatedAt }
