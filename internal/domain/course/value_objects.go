package course

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxCodeLength        = 20
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MinCredits           = 1
	MaxCredits           = 30
)

// Code is the upper-cased catalogue code, e.g. "CS101".
type Code string

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || utf8.RuneCountInString(s) > MaxCodeLength || strings.ContainsAny(s, " \t\n") {
		return "", ErrInvalidCode
	}
	return Code(s), nil
}

func (c Code) String() string { return string(c) }

func newTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxTitleLength {
		return "", ErrInvalidTitle
	}
	return s, nil
}

func newDescription(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxDescriptionLength {
		return "", ErrDescriptionTooLong
	}
	return s, nil
}

func newCredits(n int) (int, error) {
	if n < MinCredits || n > MaxCredits {
		return 0, ErrInvalidCredits
	}
	return n, nil
}
