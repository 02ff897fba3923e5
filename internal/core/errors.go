package core

import "errors"

// Lookups that can miss return one of the not-found errors, never a nil value
// with a nil error.
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrModuleNotFound  = errors.New("module not found")
	ErrStudentExists   = errors.New("student already exists")

	ErrInvalidCourseCodes       = errors.New("some of the course codes are invalid")
	ErrPrerequisitesUnfulfilled = errors.New("prerequisites have not been fulfilled for some of the modules")

	// ErrForbidden is returned when the authenticated student acts on another student.
	ErrForbidden = errors.New("not allowed to act on another student")
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrStudentNotFound) || errors.Is(err, ErrModuleNotFound)
}
