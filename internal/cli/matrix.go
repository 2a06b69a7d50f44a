package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ohmnet/internal/ux"
)

func newMatrixCmd(a *app) *cobra.Command {
	var nf netFlags

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the nodal conductance matrix",
		Long: `Print the nodal conductance matrix G of the network. Row and column i
belong to node i.

Example:
  ohmnet matrix -n 3 -b 1,2,2 -b 2,3,4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := ux.NewPrinter(cmd.OutOrStdout())
			net, _, err := nf.build(a.log, p)
			if err != nil {
				return err
			}
			g, err := net.Conductance()
			if err != nil {
				return err
			}
			a.log.Debug("conductance matrix built", zap.Int("nodes", g.Rows()), zap.Int("branches", net.Len()))
			p.Matrix(g)

			return nil
		},
	}
	nf.register(cmd)

	return cmd
}
