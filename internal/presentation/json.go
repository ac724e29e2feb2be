package presentation

import (
	"encoding/json"
	"io"

	"github.com/zjrosen/registrar/internal/domain/registry"
)

// JSONFormatter writes one JSON object per line. Menus, prompts and
// headings are omitted so the output can be piped into other tools.
type JSONFormatter struct {
	encoder *json.Encoder
}

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// NewJSONFormatter creates a JSON formatter writing to w
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{encoder: json.NewEncoder(w)}
}

func (f *JSONFormatter) emit(event string, data any) error {
	return f.encoder.Encode(envelope{Event: event, Data: data})
}

func (f *JSONFormatter) Menu(string, []string, registry.Stats) error { return nil }
func (f *JSONFormatter) Prompt(string) error                          { return nil }
func (f *JSONFormatter) Heading(string) error                         { return nil }

func (f *JSONFormatter) Failure(err error) error {
	tag, msg := Describe(err)
	return f.emit("error", ErrorDTO{Error: tag, Message: msg})
}

func (f *JSONFormatter) Goodbye() error {
	return f.emit("exit", nil)
}

func (f *JSONFormatter) ProfessorRegistered(code registry.Code, name string) error {
	return f.emit("professor_registered", RegisteredDTO{Kind: "professor", Code: code.Display(), Name: name})
}

func (f *JSONFormatter) SubjectRegistered(code registry.Code, name string) error {
	return f.emit("subject_registered", RegisteredDTO{Kind: "subject", Code: code.Display(), Name: name})
}

func (f *JSONFormatter) StudentRegistered(name string, enrollment registry.Enrollment) error {
	return f.emit("student_registered", FromEnrollment(name, enrollment))
}

func (f *JSONFormatter) Professors(reports []registry.ProfessorReport) error {
	return f.emit("professors", FromProfessorReports(reports))
}

func (f *JSONFormatter) Subjects(reports []registry.SubjectReport) error {
	return f.emit("subjects", FromSubjectReports(reports))
}

func (f *JSONFormatter) Students(reports []registry.StudentReport) error {
	return f.emit("students", FromStudentReports(reports))
}

func (f *JSONFormatter) SubjectEnrollment(result registry.SubjectEnrollment) error {
	return f.emit("students_by_subject", FromSubjectEnrollment(result))
}

func (f *JSONFormatter) ProfessorSubjects(result registry.ProfessorSubjects) error {
	return f.emit("subjects_by_professor", FromProfessorSubjects(result))
}

func (f *JSONFormatter) ProfessorStudents(result registry.ProfessorStudents) error {
	return f.emit("students_by_professor", FromProfessorStudents(result))
}

// Compile-time check that JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
