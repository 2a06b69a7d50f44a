package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ohmnet/internal/netfile"
	"github.com/katalvlaran/ohmnet/internal/ux"
	"github.com/katalvlaran/ohmnet/network"
)

var (
	errNoNetwork  = errors.New("either --file or --nodes is required")
	errNoBranches = errors.New("no branches defined; add at least one branch first")
)

// netFlags are the flags every command uses to assemble a network.
type netFlags struct {
	file     string
	nodes    int
	branches []string
	drops    []string
}

func (f *netFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.file, "file", "f", "", "YAML netlist to load")
	fs.IntVarP(&f.nodes, "nodes", "n", 0, "node count (overrides the file's when larger)")
	fs.StringArrayVarP(&f.branches, "branch", "b", nil, "add a branch `u,v,r` (repeatable)")
	fs.StringArrayVar(&f.drops, "drop", nil, "remove branch `pos` or range `from-to` once --branch flags are added (repeatable, applied in order)")
}

// build loads, extends and trims the network. Removals are reported through p.
func (f *netFlags) build(log *zap.Logger, p *ux.Printer) (*network.Network, []netfile.Query, error) {
	net, queries, err := f.base(log)
	if err != nil {
		return nil, nil, err
	}

	for _, arg := range f.branches {
		u, v, r, err := parseBranch(arg)
		if err != nil {
			return nil, nil, err
		}
		if err = net.AddBranch(u, v, r); err != nil {
			return nil, nil, fmt.Errorf("--branch %s: %w", arg, err)
		}
		log.Debug("branch added", zap.Int("u", u), zap.Int("v", v), zap.Float64("ohm", r))
	}

	for _, arg := range f.drops {
		from, to, err := parseRange(arg)
		if err != nil {
			return nil, nil, err
		}
		if _, err = net.RemoveBranches(from, to); err != nil {
			return nil, nil, fmt.Errorf("--drop %s: %w", arg, err)
		}
		log.Debug("branches removed", zap.Int("from", from), zap.Int("to", to), zap.Int("remaining", net.Len()))
		p.Removed(from, to, net.Len())
	}

	return net, queries, nil
}

// base returns the network from --file, grown to --nodes if needed, or an
// empty network of --nodes nodes.
func (f *netFlags) base(log *zap.Logger) (*network.Network, []netfile.Query, error) {
	if f.file == "" {
		if f.nodes == 0 {
			return nil, nil, errNoNetwork
		}
		net, err := network.New(f.nodes)
		if err != nil {
			return nil, nil, err
		}
		return net, nil, nil
	}

	nl, err := netfile.LoadYAML(f.file)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", f.file, err)
	}
	log.Info("netlist loaded",
		zap.String("file", f.file),
		zap.Int("nodes", nl.Network.Nodes()),
		zap.Int("branches", nl.Network.Len()),
		zap.Int("queries", len(nl.Queries)))

	if f.nodes <= nl.Network.Nodes() {
		return nl.Network, nl.Queries, nil
	}
	grown, err := network.New(f.nodes)
	if err != nil {
		return nil, nil, err
	}
	for _, b := range nl.Network.Branches() {
		if err = grown.AddBranch(b.U, b.V, b.R); err != nil {
			return nil, nil, err
		}
	}

	return grown, nl.Queries, nil
}

// parseBranch reads "u,v,r".
func parseBranch(s string) (u, v int, r float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("--branch %q: want u,v,r", s)
	}
	if u, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, 0, fmt.Errorf("--branch %q: node u: %w", s, err)
	}
	if v, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, 0, fmt.Errorf("--branch %q: node v: %w", s, err)
	}
	if r, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err != nil {
		return 0, 0, 0, fmt.Errorf("--branch %q: resistance: %w", s, err)
	}

	return u, v, r, nil
}

// parseRange reads "pos" or "from-to".
func parseRange(s string) (from, to int, err error) {
	lo, hi, isRange := strings.Cut(s, "-")
	if from, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
		return 0, 0, fmt.Errorf("--drop %q: %w", s, err)
	}
	if !isRange {
		return from, from, nil
	}
	if to, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
		return 0, 0, fmt.Errorf("--drop %q: %w", s, err)
	}

	return from, to, nil
}

// parsePair reads "a,b".
func parsePair(s string) (netfile.Query, error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return netfile.Query{}, fmt.Errorf("--between %q: want a,b", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return netfile.Query{}, fmt.Errorf("--between %q: %w", s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return netfile.Query{}, fmt.Errorf("--between %q: %w", s, err)
	}

	return netfile.Query{A: a, B: b}, nil
}
