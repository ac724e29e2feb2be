// Package terminal runs the interactive menu over line-oriented input.
//
// Every prompt reads one line, so the session works the same whether stdin
// is a terminal, a pipe or a script file.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/zjrosen/registrar/internal/domain/registry"
	"github.com/zjrosen/registrar/internal/log"
	"github.com/zjrosen/registrar/internal/presentation"
)

const menuTitle = "Academic management system"

var menuItems = []string{
	"1 - Register professors",
	"2 - Register subjects",
	"3 - Register students",
	"4 - List subjects",
	"5 - List professors",
	"6 - List students",
	"7 - List students by subject",
	"8 - List subjects by professor",
	"9 - List students by professor",
	"0 - Exit",
}

// Registrar is the registry surface the session drives.
type Registrar interface {
	registry.Provider

	Policy() registry.SelectionPolicy
	RegisterProfessor(name string) (registry.Code, error)
	RegisterSubject(name string, professorCode int) (registry.Code, error)
	RegisterStudent(name string, subjectCodes []int) (registry.Enrollment, error)

	RequireProfessors() error
	RequireSubjects() error
	RequireStudents() error
	CheckSubjectName(name string) error
	CheckStudent(name string, count int) error
}

// Options controls screen handling between operations.
type Options struct {
	ClearScreen bool // clear before each menu
	Pause       bool // wait for Enter after each operation
}

// Compile-time check that Registry satisfies Registrar.
var _ Registrar = (*registry.Registry)(nil)

// Session drives one interactive run against a registry.
type Session struct {
	registry Registrar
	format   presentation.Formatter
	in       io.Reader
	out      *termenv.Output
	opts     Options

	lines <-chan line
}

// NewSession creates a session reading operator input from in. Screen
// control sequences are written to out.
func NewSession(reg Registrar, format presentation.Formatter, in io.Reader, out io.Writer, opts Options) *Session {
	return &Session{
		registry: reg,
		format:   format,
		in:       in,
		out:      termenv.NewOutput(out),
		opts:     opts,
	}
}

// Run shows the menu until the operator exits, input ends or ctx is
// cancelled. End of input is a normal exit and returns nil.
func (s *Session) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	s.lines = readLines(s.in, done)

	log.Info(log.CatTerminal, "session started", "policy", s.registry.Policy())

	err := s.loop(ctx)
	if errors.Is(err, io.EOF) {
		log.Info(log.CatTerminal, "input ended")
		return s.format.Goodbye()
	}
	if err != nil {
		log.ErrorErr(log.CatTerminal, "session stopped", err)
	}
	return err
}

func (s *Session) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.opts.ClearScreen {
			s.out.ClearScreen()
		}
		if err := s.format.Menu(menuTitle, menuItems, s.registry.Stats()); err != nil {
			return err
		}
		if err := s.format.Prompt("Choose an option:"); err != nil {
			return err
		}

		text, err := s.readLine(ctx)
		if err != nil {
			return err
		}

		option, convErr := strconv.Atoi(strings.TrimSpace(text))
		switch {
		case convErr != nil:
			log.Warn(log.CatTerminal, "non-numeric option", "input", text)
			err = s.format.Failure(ErrNonNumericInput)
		case option == 0:
			log.Info(log.CatTerminal, "exit selected")
			return s.format.Goodbye()
		default:
			err = s.dispatch(ctx, option)
		}
		if err != nil {
			return err
		}

		if err := s.pause(ctx); err != nil {
			return err
		}
	}
}

func (s *Session) dispatch(ctx context.Context, option int) error {
	switch option {
	case 1:
		return s.registerProfessor(ctx)
	case 2:
		return s.registerSubject(ctx)
	case 3:
		return s.registerStudent(ctx)
	case 4:
		return s.format.Subjects(s.registry.ListSubjects())
	case 5:
		return s.format.Professors(s.registry.ListProfessors())
	case 6:
		return s.format.Students(s.registry.ListStudents())
	case 7:
		return s.studentsBySubject(ctx)
	case 8:
		return s.subjectsByProfessor(ctx)
	case 9:
		return s.studentsByProfessor(ctx)
	default:
		log.Warn(log.CatTerminal, "invalid option", "option", option)
		return s.format.Failure(fmt.Errorf("%w: %d", ErrInvalidOption, option))
	}
}

func (s *Session) registerProfessor(ctx context.Context) error {
	if err := s.format.Heading("Professor registration"); err != nil {
		return err
	}
	name, err := s.ask(ctx, "Enter the professor's name:")
	if err != nil {
		return err
	}

	code, err := s.registry.RegisterProfessor(name)
	if err != nil {
		return s.fail(err)
	}
	log.Info(log.CatRegistry, "professor registered", "code", code, "name", name)
	return s.format.ProfessorRegistered(code, name)
}

func (s *Session) registerSubject(ctx context.Context) error {
	if err := s.registry.RequireProfessors(); err != nil {
		return s.fail(err)
	}
	if err := s.format.Heading("Subject registration"); err != nil {
		return err
	}

	name, err := s.ask(ctx, "Enter the subject name:")
	if err != nil {
		return err
	}
	if err := s.registry.CheckSubjectName(name); err != nil {
		return s.fail(err)
	}

	professor, err := s.askInt(ctx, "Enter the professor code (starting from 1):")
	if err != nil {
		return err
	}

	code, err := s.registry.RegisterSubject(name, professor)
	if err != nil {
		return s.fail(err)
	}
	log.Info(log.CatRegistry, "subject registered", "code", code, "name", name, "professor", professor)
	return s.format.SubjectRegistered(code, name)
}

func (s *Session) registerStudent(ctx context.Context) error {
	if err := s.registry.RequireSubjects(); err != nil {
		return s.fail(err)
	}
	if err := s.format.Heading("Student registration"); err != nil {
		return err
	}

	name, err := s.ask(ctx, "Enter the student's name:")
	if err != nil {
		return err
	}
	// One subject is always a valid count once subjects exist, so this
	// only rejects a duplicate name or a full registration space.
	if err := s.registry.CheckStudent(name, 1); err != nil {
		return s.fail(err)
	}

	count, err := s.askInt(ctx, fmt.Sprintf("How many subjects will %s take?", name))
	if err != nil {
		return err
	}
	if err := s.registry.CheckStudent(name, count); err != nil {
		return s.fail(err)
	}

	codes := make([]int, 0, count)
	for range count {
		code, err := s.askInt(ctx, "Enter the subject code (starting from 1):")
		if err != nil {
			return err
		}
		codes = append(codes, code)
	}

	enrollment, err := s.registry.RegisterStudent(name, codes)
	if err != nil {
		return s.fail(err)
	}
	for _, r := range enrollment.Rejected {
		log.Warn(log.CatRegistry, "subject pick dropped", "student", name, "code", r.Requested, "reason", r.Reason)
	}
	log.Info(log.CatRegistry, "student registered",
		"name", name, "registration", enrollment.Registration, "subjects", len(enrollment.Accepted))
	return s.format.StudentRegistered(name, enrollment)
}

func (s *Session) studentsBySubject(ctx context.Context) error {
	if err := s.registry.RequireStudents(); err != nil {
		return s.fail(err)
	}
	code, err := s.askInt(ctx, "Enter the subject code to see its students (starting from 1):")
	if err != nil {
		return err
	}
	result, err := s.registry.StudentsBySubject(code)
	if err != nil {
		return s.fail(err)
	}
	return s.format.SubjectEnrollment(result)
}

func (s *Session) subjectsByProfessor(ctx context.Context) error {
	if err := s.registry.RequireSubjects(); err != nil {
		return s.fail(err)
	}
	code, err := s.askInt(ctx, "Enter the professor code to see their subjects (starting from 1):")
	if err != nil {
		return err
	}
	result, err := s.registry.SubjectsByProfessor(code)
	if err != nil {
		return s.fail(err)
	}
	return s.format.ProfessorSubjects(result)
}

func (s *Session) studentsByProfessor(ctx context.Context) error {
	if err := s.registry.RequireStudents(); err != nil {
		return s.fail(err)
	}
	code, err := s.askInt(ctx, "Enter the professor code to see their students (starting from 1):")
	if err != nil {
		return err
	}
	result, err := s.registry.StudentsByProfessor(code)
	if err != nil {
		return s.fail(err)
	}
	return s.format.ProfessorStudents(result)
}

// fail reports a rejected operation. Only output errors are returned.
func (s *Session) fail(err error) error {
	log.Warn(log.CatRegistry, "operation rejected", "error", err)
	return s.format.Failure(err)
}

func (s *Session) pause(ctx context.Context) error {
	if !s.opts.Pause {
		return nil
	}
	if err := s.format.Prompt("\nPress Enter to continue..."); err != nil {
		return err
	}
	_, err := s.readLine(ctx)
	return err
}

func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	if err := s.format.Prompt(prompt); err != nil {
		return "", err
	}
	return s.readLine(ctx)
}

// askInt prompts until the operator enters an integer.
func (s *Session) askInt(ctx context.Context, prompt string) (int, error) {
	for {
		text, err := s.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(text))
		if convErr == nil {
			return n, nil
		}
		log.Warn(log.CatTerminal, "non-numeric input", "prompt", prompt, "input", text)
		if err := s.format.Failure(ErrNonNumericInput); err != nil {
			return 0, err
		}
	}
}

func (s *Session) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSuffix(l.text, "\r"), l.err
	}
}
