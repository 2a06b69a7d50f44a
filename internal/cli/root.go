// Package cli wires the ohmnet commands.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every command of one invocation.
type app struct {
	verbose  bool
	logLevel string
	log      *zap.Logger
}

// NewRootCmd returns the ohmnet command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "ohmnet",
		Short: "Equivalent resistance of resistor networks",
		Long: `ohmnet computes the equivalent resistance between two nodes of a network
of resistors by nodal analysis.

Nodes and branches are numbered from 1. A network comes from a YAML netlist
(--file) and/or repeated --branch flags.

Examples:
  ohmnet solve -f bridge.yaml --between 1,4
  ohmnet solve -n 3 --branch 1,2,2 --branch 2,3,3 --between 1,3
  ohmnet branches -f bridge.yaml --drop 2-3
  ohmnet matrix -f bridge.yaml
  ohmnet grid --width 3 --height 3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := NewLogger(a.verbose, a.logLevel)
			if err != nil {
				return err
			}
			a.log = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "print node voltages and debug logs")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level when not verbose: debug, info, warn, error")

	root.AddCommand(
		newSolveCmd(a),
		newBranchesCmd(a),
		newMatrixCmd(a),
		newGridCmd(a),
	)

	return root
}
