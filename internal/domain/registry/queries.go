package registry

import "fmt"

// ListProfessors reports every professor with the subjects they teach.
func (r *Registry) ListProfessors() []ProfessorReport {
	reports := make([]ProfessorReport, 0, len(r.professors))
	for i, p := range r.professors {
		code := Code(i)
		taught := make([]string, 0)
		for _, s := range r.subjects {
			if s.professor == code {
				taught = append(taught, s.name)
			}
		}
		reports = append(reports, ProfessorReport{Code: code, Name: p.name, Subjects: taught})
	}
	return reports
}

// ListSubjects reports every subject with its professor's name.
func (r *Registry) ListSubjects() []SubjectReport {
	reports := make([]SubjectReport, 0, len(r.subjects))
	for i, s := range r.subjects {
		reports = append(reports, SubjectReport{
			Code:      Code(i),
			Name:      s.name,
			Professor: r.professors[s.professor].name,
		})
	}
	return reports
}

// ListStudents reports every student with the names of their subjects.
func (r *Registry) ListStudents() []StudentReport {
	reports := make([]StudentReport, 0, len(r.students))
	for _, s := range r.students {
		names := make([]string, 0, len(s.subjects))
		for _, code := range s.subjects {
			names = append(names, r.subjects[code].name)
		}
		reports = append(reports, StudentReport{
			Registration: s.registration,
			Name:         s.name,
			Subjects:     names,
		})
	}
	return reports
}

// StudentsBySubject returns the students enrolled in the subject with the
// given one-based code, in registration order.
func (r *Registry) StudentsBySubject(subjectCode int) (SubjectEnrollment, error) {
	if err := r.RequireStudents(); err != nil {
		return SubjectEnrollment{}, err
	}

	code := FromDisplay(subjectCode)
	if !code.within(len(r.subjects)) {
		return SubjectEnrollment{}, fmt.Errorf("%w: %d", ErrInvalidSubjectCode, subjectCode)
	}

	enrolled := make([]Enrollee, 0)
	for _, s := range r.students {
		if s.Takes(code) {
			enrolled = append(enrolled, s.enrollee())
		}
	}

	return SubjectEnrollment{
		Code:     code,
		Subject:  r.subjects[code].name,
		Students: enrolled,
	}, nil
}

// SubjectsByProfessor returns the subjects taught by the professor with the
// given one-based code, in subject order.
func (r *Registry) SubjectsByProfessor(professorCode int) (ProfessorSubjects, error) {
	if err := r.RequireSubjects(); err != nil {
		return ProfessorSubjects{}, err
	}

	code := FromDisplay(professorCode)
	if !code.within(len(r.professors)) {
		return ProfessorSubjects{}, fmt.Errorf("%w: %d", ErrInvalidProfessorCode, professorCode)
	}

	taught := make([]TaughtSubject, 0)
	for i, s := range r.subjects {
		if s.professor == code {
			taught = append(taught, TaughtSubject{Code: Code(i), Name: s.name})
		}
	}

	return ProfessorSubjects{
		Code:      code,
		Professor: r.professors[code].name,
		Subjects:  taught,
	}, nil
}

// StudentsByProfessor returns the students taking at least one subject
// taught by the professor with the given one-based code.
func (r *Registry) StudentsByProfessor(professorCode int) (ProfessorStudents, error) {
	if err := r.RequireStudents(); err != nil {
		return ProfessorStudents{}, err
	}

	code := FromDisplay(professorCode)
	if !code.within(len(r.professors)) {
		return ProfessorStudents{}, fmt.Errorf("%w: %d", ErrInvalidProfessorCode, professorCode)
	}

	students := make([]Enrollee, 0)
	for _, s := range r.students {
		if r.studiesUnder(s, code) {
			students = append(students, s.enrollee())
		}
	}

	return ProfessorStudents{
		Code:      code,
		Professor: r.professors[code].name,
		Students:  students,
	}, nil
}

func (r *Registry) studiesUnder(s Student, professor Code) bool {
	for _, subject := range s.subjects {
		if r.subjects[subject].professor == professor {
			return true
		}
	}
	return false
}

func (s Student) enrollee() Enrollee {
	return Enrollee{Registration: s.registration, Name: s.name}
}
