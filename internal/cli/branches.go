package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ohmnet/internal/netfile"
	"github.com/katalvlaran/ohmnet/internal/ux"
)

func newBranchesCmd(a *app) *cobra.Command {
	var (
		nf     netFlags
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "branches",
		Short: "List the branches of a network",
		Long: `List the branches after --branch and --drop have been applied.

With --yaml the result is written as a netlist that solve -f accepts.

Examples:
  ohmnet branches -f bridge.yaml
  ohmnet branches -f bridge.yaml --drop 2-3 --yaml > trimmed.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := ux.NewPrinter(cmd.ErrOrStderr())
			if !asYAML {
				p = ux.NewPrinter(cmd.OutOrStdout())
			}
			net, queries, err := nf.build(a.log, p)
			if err != nil {
				return err
			}

			if asYAML {
				data, err := netfile.MarshalYAML(net, queries)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			p.Branches(net.Branches())

			return nil
		},
	}
	nf.register(cmd)
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "write the network as a YAML netlist")

	return cmd
}
