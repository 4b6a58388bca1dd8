package infra

import (
	"context"
	"log/slog"

	cr "github.com/cockroachdb/errors"

	"lms-api/internal/pkg/errs"
)

// RepositoryErrorKind classifies storage failures independently of the
// backing store so use cases can map them to their own sentinels.
type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindStoreFailure       RepositoryErrorKind = "STORE_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

// expected reports kinds that follow from client input rather than a fault.
func (k RepositoryErrorKind) expected() bool {
	return k == KindNotFound || k == KindDuplicateKey || k == KindForeignKeyViolated
}

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error
}

func (e RepositoryError) Error() string {
	s := string(e.Kind) + ": " + e.msg
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr builds a RepositoryError and logs it: expected kinds at debug
// level, anything else as an error. attrs identify the affected row.
func WrapRepoErr(logger *slog.Logger, kind RepositoryErrorKind, msg string, err error, attrs ...slog.Attr) error {
	if logger != nil {
		logAttrs := append([]slog.Attr{slog.String("kind", string(kind))}, attrs...)
		if err != nil {
			logAttrs = append(logAttrs, slog.String("error", err.Error()))
		}
		level := slog.LevelError
		if kind.expected() {
			level = slog.LevelDebug
		}
		logger.LogAttrs(context.Background(), level, "Repository error: "+msg, logAttrs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if cr.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
