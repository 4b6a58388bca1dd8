package student

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 100

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is stored lower-cased so uniqueness checks are case-insensitive.
type Email string

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return "", ErrInvalidEmail
	}
	return Email(strings.ToLower(s)), nil
}

func (e Email) String() string { return string(e) }

func newName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxNameLength {
		return "", ErrInvalidName
	}
	return s, nil
}
