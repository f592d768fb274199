package service

import "errors"

// Classified failures. Handlers map these to response envelopes; anything
// else is either reported as an internal error or left to propagate to the
// dispatcher catch-all.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCourseNotFound      = errors.New("course not found")
	ErrStudentNotEnrolled  = errors.New("student not found in the course")
	ErrDuplicateModuleName = errors.New("module name already exists under the concept")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
