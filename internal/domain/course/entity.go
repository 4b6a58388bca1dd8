package course

import (
	"time"

	"lms-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCode        = errs.Mark(errs.New("course code must be 1 to 20 characters without spaces"), errs.ErrDomainValidation)
	ErrInvalidTitle       = errs.Mark(errs.New("title must be between 1 and 200 characters"), errs.ErrDomainValidation)
	ErrDescriptionTooLong = errs.Mark(errs.New("description must be at most 2000 characters"), errs.ErrDomainValidation)
	ErrInvalidCredits     = errs.Mark(errs.New("credits must be between 1 and 30"), errs.ErrDomainValidation)
)

type Course struct {
	id          uuid.UUID
	code        Code
	title       string
	description string
	credits     int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCourse(id uuid.UUID, code, title, description string, credits int, now time.Time) (*Course, error) {
	c := &Course{id: id, createdAt: now}
	if c.id == uuid.Nil {
		c.id = uuid.New()
	}
	if err := c.Update(code, title, description, credits, now); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Course) Update(code, title, description string, credits int, now time.Time) error {
	cd, err := NewCode(code)
	if err != nil {
		return err
	}
	t, err := newTitle(title)
	if err != nil {
		return err
	}
	d, err := newDescription(description)
	if err != nil {
		return err
	}
	cr, err := newCredits(credits)
	if err != nil {
		return err
	}

	c.code = cd
	c.title = t
	c.description = d
	c.credits = cr
	c.updatedAt = now
	return nil
}

func (c *Course) ID() uuid.UUID        { return c.id }
func (c *Course) Code() Code           { return c.code }
func (c *Course) Title() string        { return c.title }
func (c *Course) Description() string  { return c.description }
func (c *Course) Credits() int         { return c.credits }
func (c *Course) CreatedAt() time.Time { return c.createdAt }
func (c *Course) UpdatedAt() time.Time { return c.updatedAt }
