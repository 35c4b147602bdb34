package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/crillab/gopherproof/argument"
	"github.com/crillab/gopherproof/prop"
)

const replHelp = `Enter a sequent such as "P -> Q, P |- Q" to check it, or a formula to see its canonical form.
  :table  toggles truth tables
  :trim   toggles proof trimming
  :help   writes this help
  :quit   exits`

// A session is the state of an interactive session.
type session struct {
	app       *app
	r         *renderer
	withTable bool
	trim      bool
}

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Checks sequents interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &session{app: a, r: newRenderer(a.stdout)}
			if isTerminal(a.stdin) {
				return s.interactive()
			}
			return s.batch(a.stdin)
		},
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// interactive reads lines with history and line edition.
func (s *session) interactive() error {
	fmt.Fprintln(s.app.stdout, s.r.title.Render("gopherproof"))
	fmt.Fprintln(s.app.stdout, s.r.muted.Render(":help for help"))
	l, err := readline.NewEx(&readline.Config{
		Prompt:            "|- ",
		HistoryFile:       filepath.Join(os.TempDir(), ".gopherproof-history"),
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye!",
		HistorySearchFold: true,
		Stdout:            s.app.stdout,
		Stderr:            s.app.stderr,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return nil
		}
		if !s.eval(line) {
			return nil
		}
	}
}

// batch reads lines from r, without prompt.
func (s *session) batch(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !s.eval(sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

// eval handles a line of input. It returns false when the session must end.
// Errors are written and do not end the session.
func (s *session) eval(line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return true
	case ":quit", ":q", ":exit":
		return false
	case ":help", ":h":
		fmt.Fprintln(s.app.stdout, replHelp)
		return true
	case ":table":
		s.withTable = !s.withTable
		fmt.Fprintf(s.app.stdout, "truth tables: %t\n", s.withTable)
		return true
	case ":trim":
		s.trim = !s.trim
		fmt.Fprintf(s.app.stdout, "trimming: %t\n", s.trim)
		return true
	}
	if !strings.Contains(line, "|-") {
		f, err := prop.ParseString(line)
		if err != nil {
			s.r.error(err)
			return true
		}
		fmt.Fprintln(s.app.stdout, f)
		fmt.Fprintln(s.app.stdout, prop.Tree(f))
		return true
	}
	arg, err := argument.ParseSequent(line)
	if err != nil {
		s.r.error(err)
		return true
	}
	rep, err := argument.Analyze(arg, s.app.options())
	if err != nil {
		s.r.error(err)
		return true
	}
	s.r.report(rep, s.withTable, s.trim)
	return true
}
