package presentation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/registrar/internal/domain/registry"
)

type taggedErr struct{}

func (taggedErr) Error() string { return "please enter a number" }
func (taggedErr) Tag() string   { return "non_numeric_input" }

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		tag     string
		message string
	}{
		{"nil", nil, "", ""},
		{"sentinel", registry.ErrNoProfessorsRegistered, "no_professors_registered", "There are no registered professors"},
		{"wrapped", fmt.Errorf("%w: 7", registry.ErrInvalidProfessorCode), "invalid_professor_code", "No professor registered with this code: 7"},
		{"tagged", fmt.Errorf("option: %w", taggedErr{}), "non_numeric_input", "Option: please enter a number"},
		{"unknown", errors.New("disk on fire"), "error", "Disk on fire"},
		{"empty message", errors.New(""), "error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, msg := Describe(tt.err)
			require.Equal(t, tt.tag, tag)
			require.Equal(t, tt.message, msg)
		})
	}
}

func TestDescribe_EveryRegistryErrorHasTag(t *testing.T) {
	for _, entry := range errorTags {
		tag, _ := Describe(fmt.Errorf("%w: detail", entry.err))
		require.Equal(t, entry.tag, tag)
	}
	require.Len(t, errorTags, 9)
}

func TestFromEnrollment(t *testing.T) {
	dto := FromEnrollment("Bob", registry.Enrollment{
		Code:         3,
		Registration: 7,
		Accepted:     []registry.Code{0, 2},
	})

	require.Equal(t, EnrollmentDTO{Code: 4, Name: "Bob", Registration: 7, Subjects: []int{1, 3}}, dto)
}
