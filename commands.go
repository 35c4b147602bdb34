package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crillab/gopherproof/argument"
	"github.com/crillab/gopherproof/prop"
)

//go:embed arguments.yaml
var builtinData []byte

// builtins returns the arguments shipped with the tool.
func builtins() ([]argument.Argument, error) {
	return argument.LoadAll(bytes.NewReader(builtinData))
}

func builtin(name string) (argument.Argument, error) {
	args, err := builtins()
	if err != nil {
		return argument.Argument{}, err
	}
	for _, arg := range args {
		if arg.Name == name {
			return arg, nil
		}
	}
	return argument.Argument{}, errors.Errorf("no example named %q, see the examples command", name)
}

// source gathers the arguments given on the command line.
type source struct {
	premises   []string
	conclusion string
	file       string
	example    string
}

func (s *source) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayVarP(&s.premises, "premise", "p", nil, "premise of the argument (repeatable)")
	flags.StringVarP(&s.conclusion, "conclusion", "c", "", "conclusion of the argument")
	flags.StringVarP(&s.file, "file", "f", "", "YAML file describing one or more arguments")
	flags.StringVarP(&s.example, "example", "e", "", "name of a built-in example argument")
}

// arguments returns the arguments described by the flags and the sequents in args, in that order.
func (s *source) arguments(args []string) ([]argument.Argument, error) {
	var res []argument.Argument
	if s.file != "" {
		loaded, err := argument.LoadFile(s.file)
		if err != nil {
			return nil, err
		}
		res = append(res, loaded...)
	}
	if s.example != "" {
		arg, err := builtin(s.example)
		if err != nil {
			return nil, err
		}
		res = append(res, arg)
	}
	if s.conclusion != "" || len(s.premises) > 0 {
		arg := argument.Argument{Premises: s.premises, Conclusion: s.conclusion}
		if err := arg.Validate(); err != nil {
			return nil, err
		}
		res = append(res, arg)
	}
	for _, sequent := range args {
		arg, err := argument.ParseSequent(sequent)
		if err != nil {
			return nil, err
		}
		res = append(res, arg)
	}
	if len(res) == 0 {
		return nil, errors.New("no argument given: use a sequent such as \"P -> Q, P |- Q\", or --premise and --conclusion")
	}
	return res, nil
}

func (a *app) analyzeAll(args []argument.Argument) ([]*argument.Report, error) {
	reports := make([]*argument.Report, len(args))
	for i, arg := range args {
		rep, err := argument.Analyze(arg, a.options())
		if err != nil {
			if arg.Name != "" {
				return nil, errors.Wrapf(err, "argument %q", arg.Name)
			}
			return nil, err
		}
		a.record(rep)
		reports[i] = rep
	}
	return reports, nil
}

func (a *app) checkCmd() *cobra.Command {
	var (
		src       source
		jsonOut   bool
		trim      bool
		withTable bool
	)
	cmd := &cobra.Command{
		Use:   "check [sequent...]",
		Short: "Decides the validity of arguments and searches for proofs",
		Long: `Decides the validity of arguments and searches for proofs.

The exit code is 0 when every argument is valid, 1 when one is invalid and 2 on bad input.
An argument whose premises are inconsistent is valid.`,
		Example: `  gopherproof check "P -> Q, ~Q |- ~P"
  gopherproof check -p "P -> Q" -p "Q -> R" -c "P -> R" --trim
  gopherproof check -f arguments.yaml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments, err := src.arguments(args)
			if err != nil {
				return err
			}
			reports, err := a.analyzeAll(arguments)
			if err != nil {
				return err
			}
			if jsonOut {
				return a.writeJSON(reports, trim)
			}
			r := newRenderer(a.stdout)
			for i, rep := range reports {
				if i > 0 {
					fmt.Fprintln(a.stdout)
				}
				r.report(rep, withTable, trim)
			}
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "write reports as JSON")
	cmd.Flags().BoolVar(&trim, "trim", false, "only keep the proof steps the conclusion depends on")
	cmd.Flags().BoolVar(&withTable, "table", false, "also write truth tables")
	return cmd
}

func (a *app) writeJSON(reports []*argument.Report, trim bool) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0].Summary(trim))
	}
	summaries := make([]argument.Summary, len(reports))
	for i, rep := range reports {
		summaries[i] = rep.Summary(trim)
	}
	return enc.Encode(summaries)
}

func (a *app) tableCmd() *cobra.Command {
	var src source
	cmd := &cobra.Command{
		Use:   "table [sequent...]",
		Short: "Writes the truth tables of arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments, err := src.arguments(args)
			if err != nil {
				return err
			}
			reports, err := a.analyzeAll(arguments)
			if err != nil {
				return err
			}
			r := newRenderer(a.stdout)
			for i, rep := range reports {
				if i > 0 {
					fmt.Fprintln(a.stdout)
				}
				r.table(rep)
				fmt.Fprintf(a.stdout, "%s %s\n", r.bold.Render("verdict:"), r.verdict(rep))
			}
			return nil
		},
	}
	src.register(cmd)
	return cmd
}

func (a *app) formulaCmd() *cobra.Command {
	var tree bool
	cmd := &cobra.Command{
		Use:   "formula formula [var=T|F...]",
		Short: "Writes the canonical form of a formula, and its value under an assignment",
		Example: `  gopherproof formula "~P & Q | R -> S -> T" --tree
  gopherproof formula "P -> Q" P=T Q=F`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := prop.ParseString(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, f)
			if tree {
				fmt.Fprintln(a.stdout, prop.Tree(f))
			}
			if len(args) == 1 {
				return nil
			}
			m, err := parseModel(args[1:])
			if err != nil {
				return err
			}
			val, err := prop.EvalStrict(f, m)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, boolText(val))
			return nil
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "also write the syntax tree")
	return cmd
}

// parseModel reads assignments written as "name=T" or "name=F".
func parseModel(bindings []string) (map[string]bool, error) {
	m := make(map[string]bool, len(bindings))
	for _, binding := range bindings {
		name, val, ok := strings.Cut(binding, "=")
		if !ok || name == "" {
			return nil, errors.Errorf("invalid binding %q, expected name=T or name=F", binding)
		}
		switch strings.ToUpper(val) {
		case "T", "TRUE", "1":
			m[name] = true
		case "F", "FALSE", "0":
			m[name] = false
		default:
			return nil, errors.Errorf("invalid value %q for %s, expected T or F", val, name)
		}
	}
	return m, nil
}

func (a *app) examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Lists the built-in example arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			examples, err := builtins()
			if err != nil {
				return err
			}
			r := newRenderer(a.stdout)
			for _, arg := range examples {
				fmt.Fprintf(a.stdout, "%s\t%s\n", r.bold.Render(arg.Name), arg)
			}
			return nil
		},
	}
}
