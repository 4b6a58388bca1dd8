//go:build unit

package course_test

import (
	"strings"
	"testing"
	"time"

	"lms-api/internal/domain/course"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type courseInput struct {
	code        string
	title       string
	description string
	credits     int
}

func validInput() courseInput {
	return courseInput{code: "cs101", title: "Intro to Programming", description: "Basics", credits: 5}
}

func TestNewCourse(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*courseInput)
		errIs  error
	}{
		{name: "valid", mutate: func(*courseInput) {}},
		{name: "empty description", mutate: func(in *courseInput) { in.description = "" }},
		{name: "empty code", mutate: func(in *courseInput) { in.code = " " }, errIs: course.ErrInvalidCode},
		{name: "code with space", mutate: func(in *courseInput) { in.code = "CS 101" }, errIs: course.ErrInvalidCode},
		{name: "long code", mutate: func(in *courseInput) { in.code = strings.Repeat("X", course.MaxCodeLength+1) }, errIs: course.ErrInvalidCode},
		{name: "empty title", mutate: func(in *courseInput) { in.title = "" }, errIs: course.ErrInvalidTitle},
		{name: "long description", mutate: func(in *courseInput) { in.description = strings.Repeat("d", course.MaxDescriptionLength+1) }, errIs: course.ErrDescriptionTooLong},
		{name: "zero credits", mutate: func(in *courseInput) { in.credits = 0 }, errIs: course.ErrInvalidCredits},
		{name: "too many credits", mutate: func(in *courseInput) { in.credits = course.MaxCredits + 1 }, errIs: course.ErrInvalidCredits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			c, err := course.NewCourse(uuid.Nil, in.code, in.title, in.description, in.credits, now)
			if tt.errIs != nil {
				require.Nil(t, c)
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, course.Code(strings.ToUpper(in.code)), c.Code())
			assert.Equal(t, in.credits, c.Credits())
		})
	}
}

func TestNewCourseKeepsGivenID(t *testing.T) {
	id := uuid.New()
	c, err := course.NewCourse(id, "CS101", "Intro", "", 1, now)
	require.NoError(t, err)
	assert.Equal(t, id, c.ID())
}
