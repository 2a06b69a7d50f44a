package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ohmnet/internal/netfile"
	"github.com/katalvlaran/ohmnet/internal/ux"
	"github.com/katalvlaran/ohmnet/mesh"
)

var errBadConn = errors.New("connectivity must be 4 or 8")

func newGridCmd(a *app) *cobra.Command {
	var (
		width, height int
		conn          int
		ohms          float64
		from, to      string
		asYAML        bool
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Measure a rectangular lattice of equal resistors",
		Long: `Build a width x height lattice with one resistor between neighboring
cells and measure the resistance between two cells given as x,y (zero-based,
x to the right, y down). Nodes are numbered row by row from 1.

With --yaml the lattice is written as a netlist instead.

Examples:
  ohmnet grid --width 3 --height 3 --from 0,0 --to 2,2
  ohmnet grid --width 4 --height 4 --conn 8 --ohm 100 --from 0,0 --to 3,0
  ohmnet grid --width 5 --height 5 --yaml > lattice.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := mesh.DefaultOptions()
			opts.Ohms = ohms
			switch conn {
			case 4:
				opts.Conn = mesh.Conn4
			case 8:
				opts.Conn = mesh.Conn8
			default:
				return fmt.Errorf("--conn %d: %w", conn, errBadConn)
			}

			m, err := mesh.Rect(width, height, opts)
			if err != nil {
				return err
			}
			net, err := m.Network()
			if err != nil {
				return err
			}
			a.log.Debug("lattice built",
				zap.Int("width", width),
				zap.Int("height", height),
				zap.Int("nodes", net.Nodes()),
				zap.Int("branches", net.Len()))

			if asYAML {
				data, err := netfile.MarshalYAML(net, nil)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			na, err := cellNode(m, from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			nb, err := cellNode(m, to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			if na == nb {
				return errSameTerminals
			}

			p := ux.NewPrinter(cmd.OutOrStdout())
			p.Title(net.Nodes())
			p.Computing(na, nb)
			sol, err := net.Solve(na, nb)
			if err != nil {
				return err
			}
			p.Result(na, nb, sol.Result)
			if a.verbose {
				p.Details(sol)
			}

			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&width, "width", 2, "cells per row")
	fs.IntVar(&height, "height", 2, "rows")
	fs.IntVar(&conn, "conn", 4, "neighbors per cell: 4 or 8 (with diagonals)")
	fs.Float64Var(&ohms, "ohm", 1, "resistance of every branch")
	fs.StringVar(&from, "from", "0,0", "first terminal cell `x,y`")
	fs.StringVar(&to, "to", "", "second terminal cell `x,y` (default: opposite corner)")
	fs.BoolVar(&asYAML, "yaml", false, "write the lattice as a YAML netlist")

	return cmd
}

// cellNode resolves "x,y" to a node number; empty means the far corner.
func cellNode(m *mesh.Mesh, s string) (int, error) {
	if s == "" {
		return m.Node(m.Width-1, m.Height-1)
	}
	xy, err := parsePair(s)
	if err != nil {
		return 0, err
	}

	return m.Node(xy.A, xy.B)
}
