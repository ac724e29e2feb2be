package presentation

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/zjrosen/registrar/internal/domain/registry"
)

// Tagged is implemented by errors that carry their own stable tag.
type Tagged interface {
	error
	Tag() string
}

var errorTags = []struct {
	err error
	tag string
}{
	{registry.ErrDuplicateName, "duplicate_name"},
	{registry.ErrNoProfessorsRegistered, "no_professors_registered"},
	{registry.ErrNoSubjectsRegistered, "no_subjects_registered"},
	{registry.ErrNoStudentsRegistered, "no_students_registered"},
	{registry.ErrInvalidProfessorCode, "invalid_professor_code"},
	{registry.ErrInvalidSubjectCode, "invalid_subject_code"},
	{registry.ErrInvalidSubjectCount, "invalid_subject_count"},
	{registry.ErrDuplicateSubjectCode, "duplicate_subject_code"},
	{registry.ErrRegistrationSpaceExhausted, "registration_space_exhausted"},
}

// Describe maps an error to a stable tag and a one-line message.
// Unknown errors get the "error" tag.
func Describe(err error) (tag, message string) {
	if err == nil {
		return "", ""
	}

	tag = "error"
	var tagged Tagged
	if errors.As(err, &tagged) {
		tag = tagged.Tag()
	} else {
		for _, t := range errorTags {
			if errors.Is(err, t.err) {
				tag = t.tag
				break
			}
		}
	}
	return tag, capitalize(err.Error())
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
