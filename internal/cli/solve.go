package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ohmnet/internal/netfile"
	"github.com/katalvlaran/ohmnet/internal/ux"
	"github.com/katalvlaran/ohmnet/nodal"
)

var (
	errNoQueries     = errors.New("no terminal pair given; use --between a,b or queries: in the netlist")
	errSameTerminals = errors.New("terminals must be different")
	errBadPivotTol   = errors.New("pivot tolerance must be finite and non-negative")
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		nf       netFlags
		between  []string
		noPrune  bool
		pivotTol float64
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the equivalent resistance between node pairs",
		Long: `Compute the equivalent resistance between each requested pair of nodes.

Every pair from the netlist's queries: section is answered first, then every
--between flag in order. A pair whose nodes have no conducting path between
them is reported as an open circuit.

Examples:
  ohmnet solve -f ladder.yaml
  ohmnet solve -n 2 -b 1,2,4 -b 1,2,6 --between 1,2
  ohmnet solve -f bridge.yaml --drop 5 --between 1,4 -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := ux.NewPrinter(cmd.OutOrStdout())
			net, queries, err := nf.build(a.log, p)
			if err != nil {
				return err
			}
			for _, s := range between {
				q, err := parsePair(s)
				if err != nil {
					return err
				}
				queries = append(queries, q)
			}
			if len(queries) == 0 {
				return errNoQueries
			}
			if net.Len() == 0 {
				return errNoBranches
			}
			if err = checkQueries(queries); err != nil {
				return err
			}

			if !(pivotTol >= 0) || math.IsInf(pivotTol, 1) {
				return fmt.Errorf("--pivot-tol %g: %w", pivotTol, errBadPivotTol)
			}
			opts := []nodal.Option{
				nodal.WithIslandPruning(!noPrune),
				nodal.WithPivotTolerance(pivotTol),
			}
			p.Title(net.Nodes())
			for _, q := range queries {
				p.Computing(q.A, q.B)
				sol, err := net.Solve(q.A, q.B, opts...)
				if err != nil {
					return err
				}
				a.log.Debug("query solved",
					zap.Int("a", q.A),
					zap.Int("b", q.B),
					zap.Stringer("kind", sol.Result.Kind),
					zap.Float64("ohm", sol.Result.Ohms()),
					zap.Int("unknowns", len(sol.Unknowns)),
					zap.Int("floating", len(sol.Floating)))
				if sol.Result.IsSingular() {
					a.log.Warn("reduced system is singular", zap.Int("a", q.A), zap.Int("b", q.B))
				}
				p.Result(q.A, q.B, sol.Result)
				if a.verbose {
					p.Details(sol)
				}
			}

			return nil
		},
	}
	nf.register(cmd)
	cmd.Flags().StringArrayVar(&between, "between", nil, "terminal pair `a,b` to measure (repeatable)")
	cmd.Flags().BoolVar(&noPrune, "no-prune", false, "keep nodes unreachable from both terminals (they make the system singular)")
	cmd.Flags().Float64Var(&pivotTol, "pivot-tol", nodal.DefaultPivotTolerance, "smallest usable pivot magnitude")

	return cmd
}

// checkQueries rejects pairs naming the same node twice.
func checkQueries(qs []netfile.Query) error {
	for _, q := range qs {
		if q.A == q.B {
			return fmt.Errorf("pair %d,%d: %w", q.A, q.B, errSameTerminals)
		}
	}

	return nil
}
