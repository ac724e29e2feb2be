// Package presentation renders registry results for the terminal session.
package presentation

import (
	"fmt"
	"io"

	"github.com/zjrosen/registrar/internal/domain/registry"
)

// Output formats accepted by NewFormatter.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formatter handles output formatting
type Formatter interface {
	// Menu shows the option list. Formats meant for scripts may skip it.
	Menu(title string, items []string, stats registry.Stats) error
	// Prompt asks for input without a trailing newline.
	Prompt(text string) error
	// Heading introduces an operation.
	Heading(text string) error
	// Failure reports a failed operation or rejected input.
	Failure(err error) error
	// Goodbye is written once when the session ends.
	Goodbye() error

	ProfessorRegistered(code registry.Code, name string) error
	SubjectRegistered(code registry.Code, name string) error
	StudentRegistered(name string, enrollment registry.Enrollment) error

	Professors(reports []registry.ProfessorReport) error
	Subjects(reports []registry.SubjectReport) error
	Students(reports []registry.StudentReport) error
	SubjectEnrollment(result registry.SubjectEnrollment) error
	ProfessorSubjects(result registry.ProfessorSubjects) error
	ProfessorStudents(result registry.ProfessorStudents) error
}

// NewFormatter creates a formatter for the named output format
func NewFormatter(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "", FormatText:
		return NewTextFormatter(w), nil
	case FormatJSON:
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (must be %q or %q)", format, FormatText, FormatJSON)
	}
}
