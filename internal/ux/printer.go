package ux

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/ohmnet/matrix"
	"github.com/katalvlaran/ohmnet/network"
	"github.com/katalvlaran/ohmnet/nodal"
)

// Printer writes styled lines to one output.
type Printer struct {
	out io.Writer
	st  Styles
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w, st: NewStyles(w)}
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.out, s)
}

// Title prints the program banner.
func (p *Printer) Title(nodes int) {
	p.line(p.st.Title.Render("=== Equivalent Resistance Calculator ==="))
	p.line(p.st.Success.Render(fmt.Sprintf("Nodes are numbered in the system 1 to %d", nodes)))
}

// Computing announces a query.
func (p *Printer) Computing(a, b int) {
	p.line(p.st.Warning.Render(fmt.Sprintf("Computing equivalent resistance between %d and %d...", a, b)))
}

// Result prints the outcome of a query between one-based nodes a and b.
func (p *Printer) Result(a, b int, res nodal.Result) {
	switch res.Kind {
	case nodal.KindResistance:
		p.line(p.st.Result.Render(fmt.Sprintf(
			"Equivalent resistance R_eq between %d and %d = %.12g ohm", a, b, res.Ohms())))
	case nodal.KindOpenCircuit:
		p.line(p.st.Failure.Render(fmt.Sprintf(
			"Result: open circuit between %d and %d (infinite resistance).", a, b)))
	default:
		p.line(p.st.Error.Render("Error: linear system singular or numerical failure."))
	}
}

// Branches prints the branch table.
func (p *Printer) Branches(bs []network.Branch) {
	if len(bs) == 0 {
		p.line(p.st.Warning.Render("No branches entered yet."))
		return
	}
	p.line(p.st.Section.Render("Current branches:"))
	p.line(p.st.Bold.Render(fmt.Sprintf("%4s | %6s | %6s | %10s", "No.", "NodeU", "NodeV", "Resistance")))
	p.line(p.st.Muted.Render(strings.Repeat("-", 48)))
	for _, b := range bs {
		p.line(fmt.Sprintf("%4d | %6d | %6d | %10.6g ohm", b.Pos, b.U, b.V, b.R))
	}
}

// Removed reports a removal of positions from..to and the remaining count.
func (p *Printer) Removed(from, to, remaining int) {
	if from == to {
		p.line(p.st.Success.Render(fmt.Sprintf("Branch %d removed. Remaining branches: %d", from, remaining)))
		return
	}
	p.line(p.st.Success.Render(fmt.Sprintf("Removed branches %d .. %d. Remaining branches: %d", from, to, remaining)))
}

// Matrix prints the conductance matrix with one-based row labels.
func (p *Printer) Matrix(g *matrix.Dense) {
	p.line(p.st.Section.Render(fmt.Sprintf("Conductance matrix (%dx%d, siemens):", g.Rows(), g.Cols())))
	var sb strings.Builder
	row := -1
	g.Do(func(i, _ int, v float64) bool {
		if i != row {
			if row >= 0 {
				p.line(sb.String())
				sb.Reset()
			}
			row = i
			sb.WriteString(p.st.Muted.Render(fmt.Sprintf("%4d |", i+1)))
		}
		fmt.Fprintf(&sb, " %11.5g", v)
		return true
	})
	if row >= 0 {
		p.line(sb.String())
	}
}

// Details prints node voltages and the terminal current of a solution.
// Node numbers are shown one-based.
func (p *Printer) Details(sol *nodal.Solution) {
	if sol.Voltages == nil {
		return
	}
	p.line(p.st.Section.Render("Node voltages (A = 1 V, B = 0 V):"))
	for i, v := range sol.Voltages {
		if math.IsNaN(v) {
			p.line(p.st.Muted.Render(fmt.Sprintf("  V[%d] = floating", i+1)))
			continue
		}
		p.line(fmt.Sprintf("  V[%d] = %.6g V", i+1, v))
	}
	p.line(fmt.Sprintf("  I(A) = %.6g A", sol.Current))
	if r, err := sol.Residual(); err == nil && sol.Reduced != nil {
		p.line(p.st.Muted.Render(fmt.Sprintf("  residual = %.3g (%d unknowns)", r, len(sol.Unknowns))))
	}
}

// Error prints err as a failure line.
func (p *Printer) Error(err error) {
	p.line(p.st.Error.Render("Error: " + err.Error()))
}
