package commands

import (
	"lms-api/internal/infra"
	"lms-api/internal/pkg/errs"
)

// translateRepoErr marks repository failures with the use case sentinel the
// handlers understand. Unknown kinds pass through unchanged.
func translateRepoErr(err error, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case duplicate != nil && infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, duplicate)
	default:
		return err
	}
}
