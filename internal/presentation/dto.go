package presentation

import (
	"github.com/zjrosen/registrar/internal/domain/registry"
)

// Codes in DTOs are one-based, as operators see them.

// ProfessorDTO represents a professor with the subjects they teach
type ProfessorDTO struct {
	Code     int      `json:"code"`
	Name     string   `json:"name"`
	Subjects []string `json:"subjects"`
}

// SubjectDTO represents a subject with its professor
type SubjectDTO struct {
	Code      int    `json:"code"`
	Name      string `json:"name"`
	Professor string `json:"professor"`
}

// StudentDTO represents a student with their subjects
type StudentDTO struct {
	Registration int      `json:"registration"`
	Name         string   `json:"name"`
	Subjects     []string `json:"subjects"`
}

// EnrolleeDTO identifies a student in query results
type EnrolleeDTO struct {
	Registration int    `json:"registration"`
	Name         string `json:"name"`
}

// TaughtSubjectDTO identifies a subject in query results
type TaughtSubjectDTO struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// SubjectEnrollmentDTO is the students-by-subject result
type SubjectEnrollmentDTO struct {
	Code     int           `json:"code"`
	Subject  string        `json:"subject"`
	Students []EnrolleeDTO `json:"students"`
}

// ProfessorSubjectsDTO is the subjects-by-professor result
type ProfessorSubjectsDTO struct {
	Code      int                `json:"code"`
	Professor string             `json:"professor"`
	Subjects  []TaughtSubjectDTO `json:"subjects"`
}

// ProfessorStudentsDTO is the students-by-professor result
type ProfessorStudentsDTO struct {
	Code      int           `json:"code"`
	Professor string        `json:"professor"`
	Students  []EnrolleeDTO `json:"students"`
}

// RegisteredDTO reports a new professor or subject
type RegisteredDTO struct {
	Kind string `json:"kind"`
	Code int    `json:"code"`
	Name string `json:"name"`
}

// EnrollmentDTO reports a new student
type EnrollmentDTO struct {
	Code         int            `json:"code"`
	Name         string         `json:"name"`
	Registration int            `json:"registration"`
	Subjects     []int          `json:"subjects"`
	Rejected     []RejectionDTO `json:"rejected,omitempty"`
}

// RejectionDTO reports a subject pick that was dropped
type RejectionDTO struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

// ErrorDTO reports a failed operation
type ErrorDTO struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// FromProfessorReports converts professor reports to DTOs
func FromProfessorReports(reports []registry.ProfessorReport) []ProfessorDTO {
	dtos := make([]ProfessorDTO, 0, len(reports))
	for _, r := range reports {
		dtos = append(dtos, ProfessorDTO{Code: r.Code.Display(), Name: r.Name, Subjects: r.Subjects})
	}
	return dtos
}

// FromSubjectReports converts subject reports to DTOs
func FromSubjectReports(reports []registry.SubjectReport) []SubjectDTO {
	dtos := make([]SubjectDTO, 0, len(reports))
	for _, r := range reports {
		dtos = append(dtos, SubjectDTO{Code: r.Code.Display(), Name: r.Name, Professor: r.Professor})
	}
	return dtos
}

// FromStudentReports converts student reports to DTOs
func FromStudentReports(reports []registry.StudentReport) []StudentDTO {
	dtos := make([]StudentDTO, 0, len(reports))
	for _, r := range reports {
		dtos = append(dtos, StudentDTO{Registration: r.Registration, Name: r.Name, Subjects: r.Subjects})
	}
	return dtos
}

func fromEnrollees(enrollees []registry.Enrollee) []EnrolleeDTO {
	dtos := make([]EnrolleeDTO, 0, len(enrollees))
	for _, e := range enrollees {
		dtos = append(dtos, EnrolleeDTO{Registration: e.Registration, Name: e.Name})
	}
	return dtos
}

// FromSubjectEnrollment converts a students-by-subject result
func FromSubjectEnrollment(e registry.SubjectEnrollment) SubjectEnrollmentDTO {
	return SubjectEnrollmentDTO{
		Code:     e.Code.Display(),
		Subject:  e.Subject,
		Students: fromEnrollees(e.Students),
	}
}

// FromProfessorSubjects converts a subjects-by-professor result
func FromProfessorSubjects(p registry.ProfessorSubjects) ProfessorSubjectsDTO {
	subjects := make([]TaughtSubjectDTO, 0, len(p.Subjects))
	for _, s := range p.Subjects {
		subjects = append(subjects, TaughtSubjectDTO{Code: s.Code.Display(), Name: s.Name})
	}
	return ProfessorSubjectsDTO{
		Code:      p.Code.Display(),
		Professor: p.Professor,
		Subjects:  subjects,
	}
}

// FromProfessorStudents converts a students-by-professor result
func FromProfessorStudents(p registry.ProfessorStudents) ProfessorStudentsDTO {
	return ProfessorStudentsDTO{
		Code:      p.Code.Display(),
		Professor: p.Professor,
		Students:  fromEnrollees(p.Students),
	}
}

// FromEnrollment converts a student registration result
func FromEnrollment(name string, e registry.Enrollment) EnrollmentDTO {
	subjects := make([]int, 0, len(e.Accepted))
	for _, c := range e.Accepted {
		subjects = append(subjects, c.Display())
	}
	var rejected []RejectionDTO
	for _, r := range e.Rejected {
		tag, _ := Describe(r.Reason)
		rejected = append(rejected, RejectionDTO{Code: r.Requested, Reason: tag})
	}
	return EnrollmentDTO{
		Code:         e.Code.Display(),
		Name:         name,
		Registration: e.Registration,
		Subjects:     subjects,
		Rejected:     rejected,
	}
}
