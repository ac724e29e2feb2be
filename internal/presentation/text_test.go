package presentation

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/registrar/internal/domain/registry"
	"github.com/zjrosen/registrar/internal/ui/styles"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes all ANSI escape codes from a string
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func render(t *testing.T, fn func(f *TextFormatter) error) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(NewTextFormatter(&buf)))
	return stripANSI(buf.String())
}

func TestTextFormatter_Professors(t *testing.T) {
	out := render(t, func(f *TextFormatter) error {
		return f.Professors([]registry.ProfessorReport{
			{Code: 0, Name: "Ada", Subjects: []string{"Algo", "Data"}},
			{Code: 1, Name: "Hopper", Subjects: []string{}},
		})
	})

	require.Equal(t, "<- Registered professors ->\n"+
		"\nCode: 1\nName: Ada\nSubjects:\n  - Algo\n  - Data\n"+
		"\nCode: 2\nName: Hopper\nSubjects:\n  (none)\n", out)
}

func TestTextFormatter_NamesUseValueStyle(t *testing.T) {
	previous := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(previous) })

	var buf bytes.Buffer
	f := NewTextFormatter(&buf)
	require.NoError(t, f.Professors([]registry.ProfessorReport{{Code: 0, Name: "Ada"}}))
	require.NoError(t, f.Students([]registry.StudentReport{{Registration: 1, Name: "Bob"}}))

	require.Contains(t, buf.String(), styles.ValueStyle.Render("Ada"))
	require.Contains(t, buf.String(), styles.ValueStyle.Render("Bob"))
}

func TestTextFormatter_Subjects_Aligned(t *testing.T) {
	out := render(t, func(f *TextFormatter) error {
		return f.Subjects([]registry.SubjectReport{
			{Code: 0, Name: "Algo", Professor: "Ada"},
			{Code: 1, Name: "Compilers", Professor: "Grace"},
		})
	})

	require.Equal(t, "<- Registered subjects ->\n"+
		"1 - Algo      - Prof Ada\n"+
		"2 - Compilers - Prof Grace\n", out)
}

func TestTextFormatter_Students(t *testing.T) {
	out := render(t, func(f *TextFormatter) error {
		return f.Students([]registry.StudentReport{
			{Registration: 42, Name: "Bob", Subjects: []string{"Algo"}},
		})
	})

	require.Equal(t, "<- Registered students ->\n"+
		"\nRegistration: 0042\nName: Bob\nSubjects:\n  - Algo\n", out)
}

func TestTextFormatter_EmptyLists(t *testing.T) {
	tests := []struct {
		name string
		fn   func(f *TextFormatter) error
		want string
	}{
		{"professors", func(f *TextFormatter) error { return f.Professors(nil) }, "There are no registered professors!\n"},
		{"subjects", func(f *TextFormatter) error { return f.Subjects(nil) }, "There are no registered subjects!\n"},
		{"students", func(f *TextFormatter) error { return f.Students(nil) }, "There are no registered students!\n"},
		{"by subject", func(f *TextFormatter) error {
			return f.SubjectEnrollment(registry.SubjectEnrollment{Code: 1, Subject: "Compilers"})
		}, "There are no students enrolled in 2 - Compilers yet!\n"},
		{"subjects by professor", func(f *TextFormatter) error {
			return f.ProfessorSubjects(registry.ProfessorSubjects{Code: 2, Professor: "Hopper"})
		}, "Prof Hopper is not yet associated with any subjects.\n"},
		{"students by professor", func(f *TextFormatter) error {
			return f.ProfessorStudents(registry.ProfessorStudents{Code: 2, Professor: "Hopper"})
		}, "There are no students enrolled in subjects of Prof Hopper yet.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, render(t, tt.fn))
		})
	}
}

func TestTextFormatter_Queries(t *testing.T) {
	out := render(t, func(f *TextFormatter) error {
		return f.SubjectEnrollment(registry.SubjectEnrollment{
			Code:     1,
			Subject:  "Compilers",
			Students: []registry.Enrollee{{Registration: 100, Name: "Bob"}, {Registration: 7, Name: "Dan"}},
		})
	})
	require.Equal(t, "<- Students enrolled in 2 - Compilers ->\n0100 - Bob\n0007 - Dan\n", out)

	out = render(t, func(f *TextFormatter) error {
		return f.ProfessorSubjects(registry.ProfessorSubjects{
			Code:      0,
			Professor: "Ada",
			Subjects:  []registry.TaughtSubject{{Code: 0, Name: "Algo"}, {Code: 2, Name: "Data"}},
		})
	})
	require.Equal(t, "<- Subjects of Prof Ada ->\n1 - Algo\n3 - Data\n", out)

	out = render(t, func(f *TextFormatter) error {
		return f.ProfessorStudents(registry.ProfessorStudents{
			Code:      0,
			Professor: "Ada",
			Students:  []registry.Enrollee{{Registration: 200, Name: "Carol"}},
		})
	})
	require.Equal(t, "<- Students of Prof Ada ->\n0200 - Carol\n", out)
}

func TestTextFormatter_Registered(t *testing.T) {
	out := render(t, func(f *TextFormatter) error {
		if err := f.ProfessorRegistered(0, "Ada"); err != nil {
			return err
		}
		return f.SubjectRegistered(2, "Data")
	})

	require.Equal(t, "Professor Ada successfully registered with code 1!\n"+
		"Subject Data successfully registered with code 3!\n", out)
}

func TestTextFormatter_StudentRegistered_ReportsRejections(t *testing.T) {
	out := render(t, func(f *TextFormatter) error {
		return f.StudentRegistered("Bob", registry.Enrollment{
			Code:         0,
			Registration: 420,
			Accepted:     []registry.Code{0},
			Rejected: []registry.Rejection{
				{Requested: 9, Reason: registry.ErrInvalidSubjectCode},
				{Requested: 1, Reason: registry.ErrDuplicateSubjectCode},
			},
		})
	})

	require.Equal(t, "Skipped subject code 9: No subject registered with this code\n"+
		"Skipped subject code 1: Subject selected more than once\n"+
		"Student Bob successfully registered! Registration: 0420\n", out)
}

func TestTextFormatter_Failure(t *testing.T) {
	err := fmt.Errorf("%w: professor %q", registry.ErrDuplicateName, "Ada")
	out := render(t, func(f *TextFormatter) error { return f.Failure(err) })

	require.Equal(t, "Name already registered: professor \"Ada\"\n", out)

	out = render(t, func(f *TextFormatter) error { return f.Failure(errors.New("boom")) })
	require.Equal(t, "Boom\n", out)
}

func TestTextFormatter_PromptHasNoNewline(t *testing.T) {
	out := render(t, func(f *TextFormatter) error { return f.Prompt("Professor name:") })
	require.Equal(t, "Professor name: ", out)
}

func TestTextFormatter_Menu(t *testing.T) {
	out := render(t, func(f *TextFormatter) error {
		return f.Menu("Registrar", []string{"1 - Register professor", "0 - Exit"},
			registry.Stats{Professors: 2, Subjects: 3, Students: 1})
	})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	require.True(t, strings.HasPrefix(lines[0], "╭─ Registrar (2/3/1) "))
	require.True(t, strings.HasPrefix(lines[2], "│ 1 - Register professor"))
	require.True(t, strings.HasPrefix(lines[3], "│ 0 - Exit"))
	require.True(t, strings.HasPrefix(lines[5], "╰"))
}
