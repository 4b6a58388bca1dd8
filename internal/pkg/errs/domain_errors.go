package errs

// Use case level sentinel errors, mapped to HTTP statuses by the handlers.
var (
	// Student errors
	ErrStudentNotFound = New("student not found")
	ErrDuplicateEmail  = New("student email already registered")

	// Course errors
	ErrCourseNotFound  = New("course not found")
	ErrDuplicateCourse = New("course code already exists")

	// Enrollment errors
	ErrEnrollmentNotFound = New("enrollment not found")
	ErrAlreadyEnrolled    = New("student already enrolled in course")

	// Validation errors
	ErrDomainValidation = New("domain validation error")
)
