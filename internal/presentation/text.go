package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"

	"github.com/zjrosen/registrar/internal/domain/registry"
	"github.com/zjrosen/registrar/internal/ui/styles"
)

const (
	menuWidth    = 44
	listIndent   = 2
	numberFormat = "%04d"
)

// TextFormatter renders human-readable output styled with lipgloss.
type TextFormatter struct {
	w io.Writer
}

// NewTextFormatter creates a text formatter writing to w
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{w: w}
}

func (f *TextFormatter) println(s string) error {
	_, err := fmt.Fprintln(f.w, s)
	return err
}

func (f *TextFormatter) notice(s string) error {
	return f.println(styles.WarningStyle.Render(s))
}

func (f *TextFormatter) success(s string) error {
	return f.println(styles.SuccessStyle.Render(s))
}

func (f *TextFormatter) Menu(title string, items []string, stats registry.Stats) error {
	hint := fmt.Sprintf("%d/%d/%d", stats.Professors, stats.Subjects, stats.Students)
	content := make([]string, 0, len(items)+2)
	content = append(content, "")
	for _, item := range items {
		content = append(content, " "+item)
	}
	content = append(content, "")
	return f.println(styles.RenderSection(content, title, hint, menuWidth))
}

func (f *TextFormatter) Prompt(text string) error {
	_, err := fmt.Fprint(f.w, styles.PromptStyle.Render(text)+" ")
	return err
}

func (f *TextFormatter) Heading(text string) error {
	return f.println(styles.HeadingStyle.Render("<- " + text + " ->"))
}

func (f *TextFormatter) Failure(err error) error {
	_, msg := Describe(err)
	return f.println(styles.ErrorStyle.Render(msg))
}

func (f *TextFormatter) Goodbye() error {
	return f.println("Exiting...")
}

func (f *TextFormatter) ProfessorRegistered(code registry.Code, name string) error {
	return f.success(fmt.Sprintf("Professor %s successfully registered with code %d!", name, code.Display()))
}

func (f *TextFormatter) SubjectRegistered(code registry.Code, name string) error {
	return f.success(fmt.Sprintf("Subject %s successfully registered with code %d!", name, code.Display()))
}

func (f *TextFormatter) StudentRegistered(name string, enrollment registry.Enrollment) error {
	for _, r := range enrollment.Rejected {
		_, reason := Describe(r.Reason)
		if err := f.notice(fmt.Sprintf("Skipped subject code %d: %s", r.Requested, reason)); err != nil {
			return err
		}
	}
	return f.success(fmt.Sprintf("Student %s successfully registered! Registration: "+numberFormat,
		name, enrollment.Registration))
}

func (f *TextFormatter) Professors(reports []registry.ProfessorReport) error {
	if len(reports) == 0 {
		return f.notice("There are no registered professors!")
	}

	var b strings.Builder
	b.WriteString(styles.HeadingStyle.Render("<- Registered professors ->"))
	b.WriteString("\n")
	for _, p := range reports {
		fmt.Fprintf(&b, "\n%s %d\n%s %s\n", label("Code:"), p.Code.Display(), label("Name:"), value(p.Name))
		b.WriteString(label("Subjects:"))
		b.WriteString("\n")
		b.WriteString(bullets(p.Subjects))
	}
	_, err := io.WriteString(f.w, b.String())
	return err
}

func (f *TextFormatter) Subjects(reports []registry.SubjectReport) error {
	if len(reports) == 0 {
		return f.notice("There are no registered subjects!")
	}

	codeWidth, nameWidth := 0, 0
	for _, s := range reports {
		codeWidth = max(codeWidth, len(s.Code.String()))
		nameWidth = max(nameWidth, runewidth.StringWidth(s.Name))
	}

	var b strings.Builder
	b.WriteString(styles.HeadingStyle.Render("<- Registered subjects ->"))
	b.WriteString("\n")
	for _, s := range reports {
		fmt.Fprintf(&b, "%s - %s - Prof %s\n",
			runewidth.FillLeft(s.Code.String(), codeWidth),
			runewidth.FillRight(s.Name, nameWidth),
			s.Professor)
	}
	_, err := io.WriteString(f.w, b.String())
	return err
}

func (f *TextFormatter) Students(reports []registry.StudentReport) error {
	if len(reports) == 0 {
		return f.notice("There are no registered students!")
	}

	var b strings.Builder
	b.WriteString(styles.HeadingStyle.Render("<- Registered students ->"))
	b.WriteString("\n")
	for _, s := range reports {
		fmt.Fprintf(&b, "\n%s "+numberFormat+"\n%s %s\n", label("Registration:"), s.Registration, label("Name:"), value(s.Name))
		b.WriteString(label("Subjects:"))
		b.WriteString("\n")
		b.WriteString(bullets(s.Subjects))
	}
	_, err := io.WriteString(f.w, b.String())
	return err
}

func (f *TextFormatter) SubjectEnrollment(result registry.SubjectEnrollment) error {
	subject := fmt.Sprintf("%s - %s", result.Code, result.Subject)
	if len(result.Students) == 0 {
		return f.notice(fmt.Sprintf("There are no students enrolled in %s yet!", subject))
	}
	if err := f.Heading("Students enrolled in " + subject); err != nil {
		return err
	}
	return f.enrollees(result.Students)
}

func (f *TextFormatter) ProfessorSubjects(result registry.ProfessorSubjects) error {
	if len(result.Subjects) == 0 {
		return f.notice(fmt.Sprintf("Prof %s is not yet associated with any subjects.", result.Professor))
	}
	if err := f.Heading("Subjects of Prof " + result.Professor); err != nil {
		return err
	}
	var b strings.Builder
	for _, s := range result.Subjects {
		fmt.Fprintf(&b, "%s - %s\n", s.Code, s.Name)
	}
	_, err := io.WriteString(f.w, b.String())
	return err
}

func (f *TextFormatter) ProfessorStudents(result registry.ProfessorStudents) error {
	if len(result.Students) == 0 {
		return f.notice(fmt.Sprintf("There are no students enrolled in subjects of Prof %s yet.", result.Professor))
	}
	if err := f.Heading("Students of Prof " + result.Professor); err != nil {
		return err
	}
	return f.enrollees(result.Students)
}

func (f *TextFormatter) enrollees(students []registry.Enrollee) error {
	var b strings.Builder
	for _, s := range students {
		fmt.Fprintf(&b, numberFormat+" - %s\n", s.Registration, s.Name)
	}
	_, err := io.WriteString(f.w, b.String())
	return err
}

func label(s string) string {
	return styles.LabelStyle.Render(s)
}

func value(s string) string {
	return styles.ValueStyle.Render(s)
}

// bullets renders names as an indented "- name" list, one per line.
func bullets(names []string) string {
	if len(names) == 0 {
		return indent.String(styles.PromptStyle.Render("(none)"), listIndent) + "\n"
	}
	var b strings.Builder
	for _, n := range names {
		b.WriteString("- ")
		b.WriteString(n)
		b.WriteString("\n")
	}
	return indent.String(b.String(), listIndent)
}

// Compile-time check that TextFormatter implements Formatter.
var _ Formatter = (*TextFormatter)(nil)
