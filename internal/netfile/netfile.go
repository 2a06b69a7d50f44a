// Package netfile reads and writes resistor netlists in YAML.
//
//	nodes: 4
//	branches:
//	  - {u: 1, v: 2, r: 10}
//	  - {u: 2, v: 3, r: 4.7}
//	queries:
//	  - {a: 1, b: 3}
//
// Node numbers are one-based, as everywhere outside the core packages.
package netfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ohmnet/network"
)

// ErrNoNodes indicates a netlist without a positive node count.
var ErrNoNodes = errors.New("netfile: nodes must be set")

// NetlistYAML represents the YAML file structure
type NetlistYAML struct {
	Nodes    int          `yaml:"nodes"`
	Branches []BranchYAML `yaml:"branches,omitempty"`
	Queries  []QueryYAML  `yaml:"queries,omitempty"`
}

// BranchYAML represents one resistor
type BranchYAML struct {
	U int     `yaml:"u"`
	V int     `yaml:"v"`
	R float64 `yaml:"r"`
}

// QueryYAML represents one terminal pair
type QueryYAML struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// Query is a one-based terminal pair to measure.
type Query struct {
	A, B int
}

// Netlist is a loaded network together with the queries listed in its file.
type Netlist struct {
	Network *network.Network
	Queries []Query
}

// LoadYAML loads a netlist from a YAML file
func LoadYAML(path string) (*Netlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseYAML(data)
}

// ParseYAML parses a netlist from YAML bytes
func ParseYAML(data []byte) (*Netlist, error) {
	var y NetlistYAML
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return convertYAMLToNetlist(&y)
}

func convertYAMLToNetlist(y *NetlistYAML) (*Netlist, error) {
	if y.Nodes <= 0 {
		return nil, ErrNoNodes
	}
	net, err := network.New(y.Nodes)
	if err != nil {
		return nil, err
	}

	for i, b := range y.Branches {
		if err = net.AddBranch(b.U, b.V, b.R); err != nil {
			return nil, fmt.Errorf("branch %d (%d-%d): %w", i+1, b.U, b.V, err)
		}
	}

	nl := &Netlist{Network: net}
	for _, q := range y.Queries {
		nl.Queries = append(nl.Queries, Query{A: q.A, B: q.B})
	}

	return nl, nil
}

// MarshalYAML encodes the current state of net and the given queries in the
// format ParseYAML reads.
func MarshalYAML(net *network.Network, queries []Query) ([]byte, error) {
	y := NetlistYAML{Nodes: net.Nodes()}
	for _, b := range net.Branches() {
		y.Branches = append(y.Branches, BranchYAML{U: b.U, V: b.V, R: b.R})
	}
	for _, q := range queries {
		y.Queries = append(y.Queries, QueryYAML{A: q.A, B: q.B})
	}

	out, err := yaml.Marshal(&y)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}

	return out, nil
}
