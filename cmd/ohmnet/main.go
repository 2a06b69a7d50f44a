// Command ohmnet computes equivalent resistances of resistor networks.
package main

import (
	"os"

	"github.com/katalvlaran/ohmnet/internal/cli"
	"github.com/katalvlaran/ohmnet/internal/ux"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		ux.NewPrinter(os.Stderr).Error(err)
		os.Exit(1)
	}
}
