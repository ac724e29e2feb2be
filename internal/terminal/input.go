package terminal

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type line struct {
	text string
	err  error
}

// readLines reads r on its own goroutine so a blocked read never keeps the
// session from noticing cancellation. Lines have no length limit. The final
// value carries io.EOF or the read error. The goroutine exits when done is
// closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan line {
	lines := make(chan line)
	send := func(l line) bool {
		select {
		case lines <- l:
			return true
		case <-done:
			return false
		}
	}

	go func() {
		defer close(lines)
		reader := bufio.NewReader(r)
		for {
			text, err := reader.ReadString('\n')
			// A last line without a trailing newline still counts.
			if err == nil || text != "" {
				if !send(line{text: strings.TrimSuffix(text, "\n")}) {
					return
				}
			}
			if err != nil {
				send(line{err: err})
				return
			}
		}
	}()
	return lines
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
