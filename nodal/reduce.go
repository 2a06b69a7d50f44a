package nodal

import (
	"errors"
	"math"

	"github.com/katalvlaran/ohmnet/matrix"
)

// Test voltages applied to the terminals of a resistance query.
const (
	VoltageA = 1.0
	VoltageB = 0.0
)

// MinNodes is the smallest network a query can run on.
const MinNodes = 2

// Solution is the full record of one terminal reduction. Result is always set;
// the remaining fields describe how it was obtained and are partially empty
// for the short-cut paths (equal terminals, two-node networks, singular systems).
type Solution struct {
	Result Result

	// A and B are the zero-based terminals.
	A, B int

	// Voltages holds the potential of every node under the unit test voltage.
	// Islands carry NaN. Nil for equal terminals or a singular system.
	Voltages []float64

	// Current is the total current leaving A through its branches.
	Current float64

	// Unknowns maps each row of Reduced back to its node index.
	Unknowns []int

	// Floating lists the nodes dropped as islands.
	Floating []int

	// Reduced and RHS are the system M·x = RHS handed to the solver,
	// captured before elimination. Nil when there were no unknowns.
	Reduced *matrix.Dense
	RHS     []float64
}

// EquivalentResistance returns the resistance between nodes a and b (zero-based)
// of the network whose conductance matrix is g. See Reduce.
func EquivalentResistance(g matrix.Matrix, a, b int, opts ...Option) (Result, error) {
	sol, err := Reduce(g, a, b, opts...)
	if err != nil {
		return Result{}, err
	}

	return sol.Result, nil
}

// Reduce performs the terminal reduction of the n×n conductance matrix g:
// V[a] = 1 and V[b] = 0 are fixed, the remaining node voltages are solved from
// the reduced system, and the resistance is 1/I where I is the current leaving a.
//
// Outcomes:
//   - a == b: Resistance(0), no system is solved.
//   - n == 2: read off the shared conductance, no system is solved.
//   - I <= 0: OpenCircuit.
//   - solver reports a singular system: Singular.
//
// With island pruning (the default) nodes unreachable from both terminals are
// left out of the system, so disconnected debris does not make it singular.
//
// Errors: matrix.ErrNilMatrix and matrix.ErrDimensionMismatch for a bad g,
// ErrInvalidNodeCount for n < 2, ErrTerminalOutOfRange for a or b outside [0, n).
//
// Complexity: O(n³) time dominated by elimination, O(n²) space for the copy.
func Reduce(g matrix.Matrix, a, b int, opts ...Option) (*Solution, error) {
	if err := matrix.ValidateSquareNonNil(g); err != nil {
		return nil, nodalErrorf(opReduce, err)
	}
	n := g.Rows()
	if n < MinNodes {
		return nil, nodalErrorf(opReduce, ErrInvalidNodeCount)
	}
	if a < 0 || a >= n || b < 0 || b >= n {
		return nil, nodalErrorf(opReduce, ErrTerminalOutOfRange)
	}
	o := gatherOptions(opts...)

	sol := &Solution{A: a, B: b}
	if a == b {
		sol.Result = Resistance(0)

		return sol, nil
	}

	if n == MinNodes {
		return reduceTwoNode(g, sol)
	}

	if err := sol.partition(g, o.pruneIslands); err != nil {
		return nil, nodalErrorf(opReduce, err)
	}

	voltages := make([]float64, n)
	voltages[a], voltages[b] = VoltageA, VoltageB
	for _, f := range sol.Floating {
		voltages[f] = math.NaN()
	}

	if len(sol.Unknowns) > 0 {
		x, err := sol.solveReduced(g, o.pivotTol)
		if errors.Is(err, matrix.ErrSingular) {
			sol.Result = Singular()

			return sol, nil
		}
		if err != nil {
			return nil, nodalErrorf(opReduce, err)
		}
		for k, node := range sol.Unknowns {
			voltages[node] = x[k]
		}
	}
	sol.Voltages = voltages

	current, err := currentFrom(g, a, voltages)
	if err != nil {
		return nil, nodalErrorf(opReduce, err)
	}
	sol.Current = current
	sol.Result = classify(current)

	return sol, nil
}

// reduceTwoNode handles n == 2: the resistance is 1/(-G[a][b]).
func reduceTwoNode(g matrix.Matrix, sol *Solution) (*Solution, error) {
	gab, err := g.At(sol.A, sol.B)
	if err != nil {
		return nil, nodalErrorf(opReduce, err)
	}
	sol.Voltages = make([]float64, MinNodes)
	sol.Voltages[sol.A], sol.Voltages[sol.B] = VoltageA, VoltageB
	if -gab > 0 {
		sol.Current = -gab * (VoltageA - VoltageB)
	}
	sol.Result = classify(sol.Current)

	return sol, nil
}

// partition splits the non-terminal nodes into Unknowns and Floating.
func (s *Solution) partition(g matrix.Matrix, prune bool) error {
	n := g.Rows()
	var reach []bool
	if prune {
		var err error
		if reach, err = connectedToTerminals(g, s.A, s.B); err != nil {
			return err
		}
	}

	s.Unknowns = make([]int, 0, n-MinNodes)
	for i := 0; i < n; i++ {
		if i == s.A || i == s.B {
			continue
		}
		if reach != nil && !reach[i] {
			s.Floating = append(s.Floating, i)
			continue
		}
		s.Unknowns = append(s.Unknowns, i)
	}

	return nil
}

// solveReduced assembles M (the rows and columns of g for the unknowns) and
// RHS[k] = -(G[i][a]·V[a] + G[i][b]·V[b]), records both, and solves.
func (s *Solution) solveReduced(g matrix.Matrix, tol float64) ([]float64, error) {
	m, err := induce(g, s.Unknowns)
	if err != nil {
		return nil, err
	}

	rhs := make([]float64, len(s.Unknowns))
	var gia, gib float64
	for k, i := range s.Unknowns {
		if gia, err = g.At(i, s.A); err != nil {
			return nil, err
		}
		if gib, err = g.At(i, s.B); err != nil {
			return nil, err
		}
		rhs[k] = -(gia*VoltageA + gib*VoltageB)
	}
	s.Reduced, s.RHS = m, rhs

	return matrix.Solve(m, rhs, matrix.WithPivotTolerance(tol))
}

// induce extracts the principal submatrix of g on idx.
// *matrix.Dense inputs take the Induced fast path.
func induce(g matrix.Matrix, idx []int) (*matrix.Dense, error) {
	if d, ok := g.(*matrix.Dense); ok {
		return d.Induced(idx, idx)
	}

	m, err := matrix.NewDense(len(idx), len(idx))
	if err != nil {
		return nil, err
	}
	var v float64
	for r, i := range idx {
		for c, j := range idx {
			if v, err = g.At(i, j); err != nil {
				return nil, err
			}
			if err = m.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// currentFrom sums g_aj·(V[a]-V[j]) over every node j joined to a by a
// positive conductance g_aj = -G[a][j].
func currentFrom(g matrix.Matrix, a int, voltages []float64) (float64, error) {
	var total, gaj float64
	var err error
	for j := range voltages {
		if j == a {
			continue
		}
		if gaj, err = g.At(a, j); err != nil {
			return 0, err
		}
		gaj = -gaj
		if gaj > 0 {
			total += gaj * (voltages[a] - voltages[j])
		}
	}

	return total, nil
}

// classify maps the terminal current to a Result.
// A NaN current means the solved voltages were unusable.
func classify(current float64) Result {
	if math.IsNaN(current) {
		return Singular()
	}
	if !(current > 0) {
		return OpenCircuit()
	}
	r := 1 / current
	if math.IsInf(r, 1) {
		return OpenCircuit()
	}

	return Resistance(r)
}

// Residual returns max_k |(Reduced·x - RHS)[k]| for the solved unknown
// voltages x, a measure of how well the elimination satisfied the system.
// It is 0 when there were no unknowns and NaN when the system was singular.
func (s *Solution) Residual() (float64, error) {
	if s.Reduced == nil {
		return 0, nil
	}
	if s.Voltages == nil {
		return math.NaN(), nil
	}
	x := make([]float64, len(s.Unknowns))
	for k, node := range s.Unknowns {
		x[k] = s.Voltages[node]
	}
	mx, err := matrix.MatVec(s.Reduced, x)
	if err != nil {
		return 0, err
	}

	var worst float64
	for k, v := range mx {
		worst = math.Max(worst, math.Abs(v-s.RHS[k]))
	}

	return worst, nil
}
