package nodal

import "github.com/katalvlaran/ohmnet/matrix"

// Defaults (single source of truth).
const (
	// DefaultIslandPruning drops nodes that share no component with either
	// terminal before the reduced system is formed.
	DefaultIslandPruning = true

	// DefaultPivotTolerance mirrors the solver's singularity threshold.
	DefaultPivotTolerance = matrix.DefaultPivotTolerance
)

// Option configures a reduction.
type Option func(*Options)

// Options holds the resolved reduction settings.
type Options struct {
	pruneIslands bool
	pivotTol     float64
}

// WithIslandPruning toggles island pruning. With pruning disabled every
// non-terminal node becomes an unknown, so a node (or group of nodes) with no
// path to either terminal makes the reduced system singular.
func WithIslandPruning(enabled bool) Option {
	return func(o *Options) { o.pruneIslands = enabled }
}

// WithPivotTolerance sets the pivot threshold passed to the solver.
// Panics on a negative or non-finite tol, like matrix.WithPivotTolerance.
func WithPivotTolerance(tol float64) Option {
	matrix.WithPivotTolerance(tol) // validates; panics on nonsense

	return func(o *Options) { o.pivotTol = tol }
}

// IslandPruning reports whether island pruning is enabled.
func (o Options) IslandPruning() bool { return o.pruneIslands }

// PivotTolerance reports the solver pivot threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// NewOptions resolves setters over the defaults; last writer wins.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		pruneIslands: DefaultIslandPruning,
		pivotTol:     DefaultPivotTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
