// Package errs is the project's thin layer over cockroachdb/errors.
// Sentinels are compared with Is, which also matches errors tagged via Mark.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark tags err so that Is(err, markErr) holds. A nil err yields markErr.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// IsAny returns the first reference that err matches.
func IsAny(err error, references ...error) (error, bool) {
	for _, ref := range references {
		if cr.Is(err, ref) {
			return ref, true
		}
	}
	return nil, false
}

// Cause returns the innermost error of a wrap chain.
func Cause(err error) error {
	if err == nil {
		return nil
	}
	return cr.UnwrapAll(err)
}
