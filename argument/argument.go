// Package argument ties the parser, the validity checkers and the proof search together.
//
// An Argument is the raw text of some premises and of a conclusion. It can be written
// in a YAML file:
//
//	name: modus tollens
//	premises:
//	  - P -> Q
//	  - ~Q
//	conclusion: ~P
//
// or as a one-line sequent, premises being separated by commas:
//
//	P -> Q, ~Q |- ~P
//
// Analyze parses an argument, decides its validity and looks for a proof of it.
// Its Report is plain data, to be rendered by a user interface.
package argument

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/crillab/gopherproof/prop"
)

var validate = validator.New()

// An Argument is a list of premises and a conclusion, as text.
// The order of the premises matters: premises are referenced by their index in proofs.
type Argument struct {
	Name       string   `yaml:"name,omitempty" json:"name,omitempty"`
	Premises   []string `yaml:"premises" json:"premises" validate:"dive,required"`
	Conclusion string   `yaml:"conclusion" json:"conclusion" validate:"required"`
}

// Validate checks that the conclusion and every premise are non-blank.
func (a *Argument) Validate() error {
	trimmed := Argument{
		Name:       a.Name,
		Premises:   make([]string, len(a.Premises)),
		Conclusion: strings.TrimSpace(a.Conclusion),
	}
	for i, p := range a.Premises {
		trimmed.Premises[i] = strings.TrimSpace(p)
	}
	if err := validate.Struct(&trimmed); err != nil {
		return errors.Wrap(err, "invalid argument")
	}
	return nil
}

// String returns the argument as a sequent.
func (a Argument) String() string {
	return strings.Join(a.Premises, ", ") + " |- " + a.Conclusion
}

// A Parsed argument is an argument whose formulas were parsed.
type Parsed struct {
	Premises   []prop.Formula
	Conclusion prop.Formula
}

// Parse parses the premises and the conclusion of a.
// Errors point to the offending formula and wrap the *prop.ParseError or *prop.TokenizeError.
func (a *Argument) Parse() (*Parsed, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	res := Parsed{Premises: make([]prop.Formula, len(a.Premises))}
	for i, text := range a.Premises {
		f, err := prop.ParseString(text)
		if err != nil {
			return nil, errors.Wrapf(err, "premise %d", i+1)
		}
		res.Premises[i] = f
	}
	f, err := prop.ParseString(a.Conclusion)
	if err != nil {
		return nil, errors.Wrap(err, "conclusion")
	}
	res.Conclusion = f
	return &res, nil
}

// ParseSequent reads an argument written as "premise, premise, ... |- conclusion".
// There can be no premise at all, as in "|- P -> P".
//
// The sequent is split on "|-", then its left side on ",", before any formula is parsed.
// Both can occur inside a formula: variable names may hold commas, and "P|-Q" is the
// disjunction of P and a variable named -Q. Such formulas cannot be written as a sequent;
// build the Argument directly or load it from YAML instead.
func ParseSequent(s string) (Argument, error) {
	parts := strings.Split(s, "|-")
	if len(parts) != 2 {
		return Argument{}, errors.Errorf("sequent %q must contain exactly one \"|-\"", s)
	}
	a := Argument{Conclusion: strings.TrimSpace(parts[1])}
	if lhs := strings.TrimSpace(parts[0]); lhs != "" {
		for _, p := range strings.Split(lhs, ",") {
			a.Premises = append(a.Premises, strings.TrimSpace(p))
		}
	}
	if err := a.Validate(); err != nil {
		return Argument{}, errors.Wrapf(err, "sequent %q", s)
	}
	return a, nil
}

// Load reads a single argument from a YAML document.
func Load(r io.Reader) (Argument, error) {
	var a Argument
	if err := yaml.NewDecoder(r).Decode(&a); err != nil {
		if err == io.EOF {
			return a, errors.New("no argument found")
		}
		return a, errors.Wrap(err, "could not decode argument")
	}
	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}

// LoadAll reads a stream of YAML documents, each describing an argument.
func LoadAll(r io.Reader) ([]Argument, error) {
	dec := yaml.NewDecoder(r)
	var res []Argument
	for {
		var a Argument
		err := dec.Decode(&a)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode argument #%d", len(res)+1)
		}
		if err := a.Validate(); err != nil {
			return nil, errors.Wrapf(err, "argument #%d", len(res)+1)
		}
		res = append(res, a)
	}
	if len(res) == 0 {
		return nil, errors.New("no argument found")
	}
	return res, nil
}

// LoadFile reads the arguments described in the YAML file at path.
func LoadFile(path string) ([]Argument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %q", path)
	}
	args, err := LoadAll(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %q", path)
	}
	return args, nil
}
