package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/crillab/gopherproof/argument"
	"github.com/crillab/gopherproof/deduce"
	"github.com/crillab/gopherproof/validity"
)

var (
	colorValid   = lipgloss.Color("#2CD7C7")
	colorInvalid = lipgloss.Color("#E74C3C")
	colorWarning = lipgloss.Color("#F4D03F")
	colorMuted   = lipgloss.Color("#2C4A54")
	colorBorder  = lipgloss.Color("#16858E")
)

// A renderer writes reports on a terminal, or as plain text when w is not one.
type renderer struct {
	w       io.Writer
	title   lipgloss.Style
	bold    lipgloss.Style
	muted   lipgloss.Style
	valid   lipgloss.Style
	invalid lipgloss.Style
	warning lipgloss.Style
	border  lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
}

func newRenderer(w io.Writer) *renderer {
	r := lipgloss.NewRenderer(w)
	return &renderer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(colorValid),
		bold:    r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
		valid:   r.NewStyle().Bold(true).Foreground(colorValid),
		invalid: r.NewStyle().Bold(true).Foreground(colorInvalid),
		warning: r.NewStyle().Bold(true).Foreground(colorWarning),
		border:  r.NewStyle().Foreground(colorBorder),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
	}
}

func (r *renderer) verdict(rep *argument.Report) string {
	switch rep.Verdict {
	case validity.Valid:
		return r.valid.Render("VALID")
	case validity.Inconsistent:
		return r.warning.Render("VALID") + " " + r.muted.Render("(vacuously: the premises are inconsistent)")
	default:
		return r.invalid.Render("INVALID")
	}
}

func boolText(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

// model renders an assignment as "P=T, Q=F", variables being sorted by name.
func model(m map[string]bool) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + boolText(m[name])
	}
	return strings.Join(parts, ", ")
}

// report writes the whole analysis of an argument.
func (r *renderer) report(rep *argument.Report, withTable, trim bool) {
	if rep.Argument.Name != "" {
		fmt.Fprintln(r.w, r.title.Render(rep.Argument.Name))
	}
	for i, p := range rep.Premises {
		fmt.Fprintf(r.w, "%s %s\n", r.muted.Render(fmt.Sprintf("premise %d:", i+1)), p)
	}
	fmt.Fprintf(r.w, "%s %s\n", r.muted.Render("conclusion:"), rep.Conclusion)
	fmt.Fprintf(r.w, "%s %s\n", r.bold.Render("verdict:"), r.verdict(rep))
	if rep.Counterexample != nil {
		fmt.Fprintf(r.w, "%s %s\n", r.bold.Render("counterexample:"), model(rep.Counterexample))
	}
	if len(rep.Core) > 0 && len(rep.Core) < len(rep.Premises) {
		nums := make([]string, len(rep.Core))
		for i, idx := range rep.Core {
			nums[i] = fmt.Sprintf("%d", idx+1)
		}
		fmt.Fprintf(r.w, "%s %s\n", r.muted.Render("premises needed:"), strings.Join(nums, ", "))
	}
	if withTable {
		r.table(rep)
	}
	proof := rep.Proof
	if trim {
		proof = proof.Trim()
	}
	r.proof(proof)
}

// table writes the truth table of an argument, highlighting the rows refuting it.
func (r *renderer) table(rep *argument.Report) {
	if rep.Table == nil {
		fmt.Fprintln(r.w, r.muted.Render("truth table skipped: too many variables"))
		return
	}
	tbl := rep.Table
	headers := append([]string{}, tbl.Vars...)
	headers = append(headers, "premises", rep.Conclusion.String())
	counter := make(map[int]bool)
	for _, i := range tbl.Counterexamples() {
		counter[i] = true
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.header
			case counter[row]:
				return r.invalid.Padding(0, 1)
			default:
				return r.cell
			}
		})
	for _, row := range tbl.Rows {
		cells := make([]string, 0, len(row.Values)+2)
		for _, v := range row.Values {
			cells = append(cells, boolText(v))
		}
		cells = append(cells, boolText(row.Premises), boolText(row.Conclusion))
		t.Row(cells...)
	}
	fmt.Fprintln(r.w, t.String())
}

// proof writes the steps of a proof, or why there is none.
func (r *renderer) proof(proof *deduce.Proof) {
	if !proof.Derived {
		fmt.Fprintln(r.w, r.muted.Render(deduce.NotFound))
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", r.bold.Render("proof:"), proof.Method)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.border).
		Headers("#", "formula", "justification").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.header
			}
			return r.cell
		})
	for _, step := range proof.Steps {
		t.Row(fmt.Sprintf("%d", step.Seq), step.Text, step.Justification)
	}
	fmt.Fprintln(r.w, t.String())
}

func (r *renderer) error(err error) {
	fmt.Fprintf(r.w, "%s %v\n", r.invalid.Render("error:"), err)
}
