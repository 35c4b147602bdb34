package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crillab/gopherproof/argument"
	"github.com/crillab/gopherproof/deduce"
	"github.com/crillab/gopherproof/validity"
)

// Exit codes.
const (
	exitValid   = 0 // Every argument is valid
	exitInvalid = 1 // At least one argument is invalid
	exitError   = 2 // Bad input or usage
)

// An app holds the streams and settings shared by all commands.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	logger         *slog.Logger
	verbose        bool
	maxPasses      int
	maxVars        int
	code           int
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command line args and returns the exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		newRenderer(stderr).error(err)
		return exitError
	}
	return a.code
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gopherproof",
		Short: "Checks propositional arguments and derives them by natural deduction",
		Long: `gopherproof decides whether a conclusion follows from premises in propositional logic,
with a truth table and a SAT solver, and looks for a natural-deduction proof of it.

Formulas use ~ (not), & (and), | (or) and -> (implies), from highest to lowest priority.
Arguments are written as sequents: "P -> Q, P |- Q".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
			if a.maxVars > validity.MaxTableVars {
				return errors.Errorf("--max-vars is %d, cannot exceed %d", a.maxVars, validity.MaxTableVars)
			}
			return nil
		},
	}
	flags := root.PersistentFlags()
	flags.BoolVar(&a.verbose, "verbose", false, "log each stage of the analysis on stderr")
	flags.IntVar(&a.maxPasses, "max-passes", deduce.DefaultMaxPasses, "maximum number of passes of a proof search")
	flags.IntVar(&a.maxVars, "max-vars", validity.MaxVars, "maximum number of variables of a truth table")
	root.AddCommand(a.checkCmd(), a.tableCmd(), a.replCmd(), a.formulaCmd(), a.examplesCmd())
	return root
}

func (a *app) options() argument.Options {
	return argument.Options{MaxVars: a.maxVars, MaxPasses: a.maxPasses, Logger: a.logger}
}

// record updates the exit code after the analysis of an argument.
func (a *app) record(rep *argument.Report) {
	if rep.Verdict == validity.Invalid && a.code < exitInvalid {
		a.code = exitInvalid
	}
}
