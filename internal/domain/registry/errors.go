package registry

import "errors"

// Registry errors. Operations wrap these with the offending value, so
// callers should compare with errors.Is.
var (
	ErrDuplicateName              = errors.New("name already registered")
	ErrNoProfessorsRegistered     = errors.New("there are no registered professors")
	ErrNoSubjectsRegistered       = errors.New("there are no registered subjects")
	ErrNoStudentsRegistered       = errors.New("there are no registered students")
	ErrInvalidProfessorCode       = errors.New("no professor registered with this code")
	ErrInvalidSubjectCode         = errors.New("no subject registered with this code")
	ErrInvalidSubjectCount        = errors.New("invalid number of subjects")
	ErrDuplicateSubjectCode       = errors.New("subject selected more than once")
	ErrRegistrationSpaceExhausted = errors.New("all registration numbers are in use")
)
