package registry

// Provider defines read-only access to the registry.
// Callers that only report on the registry depend on this interface.
type Provider interface {
	// ListProfessors reports every professor with the subjects they teach.
	ListProfessors() []ProfessorReport

	// ListSubjects reports every subject with its professor's name.
	ListSubjects() []SubjectReport

	// ListStudents reports every student with their subject names.
	ListStudents() []StudentReport

	// StudentsBySubject returns the students enrolled in a subject (one-based code).
	StudentsBySubject(subjectCode int) (SubjectEnrollment, error)

	// SubjectsByProfessor returns the subjects a professor teaches (one-based code).
	SubjectsByProfessor(professorCode int) (ProfessorSubjects, error)

	// StudentsByProfessor returns the students taking any of a professor's subjects.
	StudentsByProfessor(professorCode int) (ProfessorStudents, error)

	// Stats returns collection sizes.
	Stats() Stats
}

// Compile-time check that Registry implements Provider.
var _ Provider = (*Registry)(nil)
