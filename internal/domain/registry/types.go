package registry

import (
	"slices"
	"strconv"
)

// Code is the position of an entity in its collection, stored zero-based.
type Code int

// FromDisplay converts a one-based code entered by an operator.
func FromDisplay(n int) Code {
	return Code(n - 1)
}

// Display returns the one-based form shown to operators.
func (c Code) Display() int {
	return int(c) + 1
}

// String returns the one-based form.
func (c Code) String() string {
	return strconv.Itoa(c.Display())
}

// within reports whether c indexes a collection of length n.
func (c Code) within(n int) bool {
	return c >= 0 && int(c) < n
}

// Professor is a registered professor.
type Professor struct {
	name string
}

// Name returns the professor's name
func (p Professor) Name() string {
	return p.name
}

// Subject is a registered subject taught by exactly one professor.
type Subject struct {
	name      string
	professor Code
}

// Name returns the subject name
func (s Subject) Name() string {
	return s.name
}

// Professor returns the code of the professor teaching the subject
func (s Subject) Professor() Code {
	return s.professor
}

// Student is a registered student with the subjects they take.
type Student struct {
	name         string
	subjects     []Code // accepted order, no duplicates
	registration int
}

// Name returns the student's name
func (s Student) Name() string {
	return s.name
}

// Subjects returns a copy of the student's subject codes in enrolment order
func (s Student) Subjects() []Code {
	return slices.Clone(s.subjects)
}

// Registration returns the student's registration number
func (s Student) Registration() int {
	return s.registration
}

// Takes reports whether the student is enrolled in the subject.
func (s Student) Takes(subject Code) bool {
	return slices.Contains(s.subjects, subject)
}

// Enrollment is the outcome of a successful student registration.
type Enrollment struct {
	Code         Code
	Registration int
	Accepted     []Code      // subjects the student was enrolled in
	Rejected     []Rejection // picks dropped by PolicyPermissive
}

// Rejection records a requested subject code that was not accepted.
type Rejection struct {
	Requested int   // one-based code as entered
	Reason    error // ErrInvalidSubjectCode or ErrDuplicateSubjectCode
}

// ProfessorReport is one row of ListProfessors.
type ProfessorReport struct {
	Code     Code
	Name     string
	Subjects []string // names of the subjects taught, in subject order
}

// SubjectReport is one row of ListSubjects.
type SubjectReport struct {
	Code      Code
	Name      string
	Professor string
}

// StudentReport is one row of ListStudents.
type StudentReport struct {
	Registration int
	Name         string
	Subjects     []string
}

// Enrollee identifies a student in query results.
type Enrollee struct {
	Registration int
	Name         string
}

// TaughtSubject identifies a subject in SubjectsByProfessor results.
type TaughtSubject struct {
	Code Code
	Name string
}

// SubjectEnrollment is the result of StudentsBySubject.
// An empty Students slice means nobody is enrolled yet.
type SubjectEnrollment struct {
	Code     Code
	Subject  string
	Students []Enrollee
}

// ProfessorSubjects is the result of SubjectsByProfessor.
type ProfessorSubjects struct {
	Code      Code
	Professor string
	Subjects  []TaughtSubject
}

// ProfessorStudents is the result of StudentsByProfessor.
type ProfessorStudents struct {
	Code      Code
	Professor string
	Students  []Enrollee
}

// Stats summarises the registry contents.
type Stats struct {
	Professors  int
	Subjects    int
	Students    int
	FreeNumbers int // registration numbers still available
}
