package api

import (
	"net/http"

	"lms-api/internal/handler/httperr"
	"lms-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var notFoundErrors = []error{
	errs.ErrStudentNotFound,
	errs.ErrCourseNotFound,
	errs.ErrEnrollmentNotFound,
}

var conflictErrors = []error{
	errs.ErrDuplicateEmail,
	errs.ErrDuplicateCourse,
	errs.ErrAlreadyEnrolled,
}

// abortWithUseCaseError maps use case sentinels to statuses. Anything
// unrecognised is reported as a 500 with fallbackMsg.
func abortWithUseCaseError(c *gin.Context, err error, fallbackMsg string) {
	if errs.Is(err, errs.ErrDomainValidation) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", validationDetail(err))
		return
	}
	if sentinel, ok := errs.IsAny(err, notFoundErrors...); ok {
		httperr.AbortWithError(c, http.StatusNotFound, err, sentinel.Error(), nil)
		return
	}
	if sentinel, ok := errs.IsAny(err, conflictErrors...); ok {
		httperr.AbortWithError(c, http.StatusConflict, err, sentinel.Error(), nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
}

// validationDetail returns the innermost domain message, e.g.
// "credits must be between 1 and 30".
func validationDetail(err error) string {
	return errs.Cause(err).Error()
}
