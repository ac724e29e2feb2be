package registry

import (
	"fmt"
	"slices"
)

// Registry holds all professors, subjects and students
type Registry struct {
	professors []Professor
	subjects   []Subject
	students   []Student

	policy  SelectionPolicy
	numbers *numberAllocator
}

// Option configures a Registry.
type Option func(*Registry)

// WithPolicy sets the subject selection policy (default PolicyPermissive).
func WithPolicy(policy SelectionPolicy) Option {
	return func(r *Registry) {
		r.policy = policy
	}
}

// WithNumberSource replaces the registration number source.
func WithNumberSource(source NumberSource) Option {
	return func(r *Registry) {
		if source != nil {
			r.numbers.source = source
		}
	}
}

// WithMaxAttempts bounds random registration number draws. Values below
// zero are treated as zero, which goes straight to the scan.
func WithMaxAttempts(n int) Option {
	return func(r *Registry) {
		r.numbers.maxAttempts = max(n, 0)
	}
}

// New creates an empty registry
func New(opts ...Option) *Registry {
	r := &Registry{
		professors: make([]Professor, 0),
		subjects:   make([]Subject, 0),
		students:   make([]Student, 0),
		policy:     PolicyPermissive,
		numbers:    newNumberAllocator(NewNumberSource(0), DefaultMaxAttempts),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Policy returns the subject selection policy in effect
func (r *Registry) Policy() SelectionPolicy {
	return r.policy
}

// RegisterProfessor adds a professor and returns its code.
func (r *Registry) RegisterProfessor(name string) (Code, error) {
	if r.hasProfessor(name) {
		return 0, fmt.Errorf("%w: professor %q", ErrDuplicateName, name)
	}

	r.professors = append(r.professors, Professor{name: name})
	return Code(len(r.professors) - 1), nil
}

// RegisterSubject adds a subject taught by the professor with the given
// one-based code and returns the subject's code.
func (r *Registry) RegisterSubject(name string, professorCode int) (Code, error) {
	if err := r.CheckSubjectName(name); err != nil {
		return 0, err
	}

	professor := FromDisplay(professorCode)
	if !professor.within(len(r.professors)) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidProfessorCode, professorCode)
	}

	r.subjects = append(r.subjects, Subject{name: name, professor: professor})
	return Code(len(r.subjects) - 1), nil
}

// RegisterStudent enrols a student in the subjects with the given one-based
// codes and assigns a registration number. How invalid or repeated codes are
// handled depends on the selection policy.
func (r *Registry) RegisterStudent(name string, subjectCodes []int) (Enrollment, error) {
	if err := r.CheckStudent(name, len(subjectCodes)); err != nil {
		return Enrollment{}, err
	}

	accepted, rejected, err := r.policy.selectSubjects(subjectCodes, len(r.subjects))
	if err != nil {
		return Enrollment{}, err
	}

	number, err := r.numbers.next()
	if err != nil {
		return Enrollment{}, err
	}

	r.numbers.claim(number)
	r.students = append(r.students, Student{
		name:         name,
		subjects:     accepted,
		registration: number,
	})

	return Enrollment{
		Code:         Code(len(r.students) - 1),
		Registration: number,
		Accepted:     slices.Clone(accepted),
		Rejected:     rejected,
	}, nil
}

// RequireProfessors returns ErrNoProfessorsRegistered when there are none.
func (r *Registry) RequireProfessors() error {
	if len(r.professors) == 0 {
		return ErrNoProfessorsRegistered
	}
	return nil
}

// RequireSubjects returns ErrNoSubjectsRegistered when there are none.
func (r *Registry) RequireSubjects() error {
	if len(r.subjects) == 0 {
		return ErrNoSubjectsRegistered
	}
	return nil
}

// RequireStudents returns ErrNoStudentsRegistered when there are none.
func (r *Registry) RequireStudents() error {
	if len(r.students) == 0 {
		return ErrNoStudentsRegistered
	}
	return nil
}

// CheckSubjectName runs the checks RegisterSubject performs before it looks
// at the professor code.
func (r *Registry) CheckSubjectName(name string) error {
	if err := r.RequireProfessors(); err != nil {
		return err
	}
	if r.hasSubject(name) {
		return fmt.Errorf("%w: subject %q", ErrDuplicateName, name)
	}
	return nil
}

// CheckStudent runs the checks RegisterStudent performs before it looks at
// individual subject codes, so the count can be rejected up front.
func (r *Registry) CheckStudent(name string, count int) error {
	if err := r.RequireSubjects(); err != nil {
		return err
	}
	if r.hasStudent(name) {
		return fmt.Errorf("%w: student %q", ErrDuplicateName, name)
	}
	if count <= 0 || count > len(r.subjects) {
		return fmt.Errorf("%w: %d requested, %d available", ErrInvalidSubjectCount, count, len(r.subjects))
	}
	if r.numbers.exhausted() {
		return ErrRegistrationSpaceExhausted
	}
	return nil
}

// Professors returns a copy of all professors in code order
func (r *Registry) Professors() []Professor {
	return slices.Clone(r.professors)
}

// Subjects returns a copy of all subjects in code order
func (r *Registry) Subjects() []Subject {
	return slices.Clone(r.subjects)
}

// Students returns a copy of all students in code order
func (r *Registry) Students() []Student {
	students := make([]Student, len(r.students))
	for i, s := range r.students {
		s.subjects = slices.Clone(s.subjects)
		students[i] = s
	}
	return students
}

// Professor returns the professor stored under code.
func (r *Registry) Professor(code Code) (Professor, bool) {
	if !code.within(len(r.professors)) {
		return Professor{}, false
	}
	return r.professors[code], true
}

// Subject returns the subject stored under code.
func (r *Registry) Subject(code Code) (Subject, bool) {
	if !code.within(len(r.subjects)) {
		return Subject{}, false
	}
	return r.subjects[code], true
}

// Student returns the student stored under code.
func (r *Registry) Student(code Code) (Student, bool) {
	if !code.within(len(r.students)) {
		return Student{}, false
	}
	s := r.students[code]
	s.subjects = slices.Clone(s.subjects)
	return s, true
}

// Stats returns collection sizes and the remaining registration numbers
func (r *Registry) Stats() Stats {
	return Stats{
		Professors:  len(r.professors),
		Subjects:    len(r.subjects),
		Students:    len(r.students),
		FreeNumbers: r.numbers.free(),
	}
}

func (r *Registry) hasProfessor(name string) bool {
	return slices.ContainsFunc(r.professors, func(p Professor) bool { return p.name == name })
}

func (r *Registry) hasSubject(name string) bool {
	return slices.ContainsFunc(r.subjects, func(s Subject) bool { return s.name == name })
}

func (r *Registry) hasStudent(name string) bool {
	return slices.ContainsFunc(r.students, func(s Student) bool { return s.name == name })
}
