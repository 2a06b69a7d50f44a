package nodal

import (
	"fmt"
	"math"
)

// Kind tags the outcome of a resistance query.
type Kind uint8

const (
	// KindResistance carries a finite, non-negative equivalent resistance.
	KindResistance Kind = iota + 1

	// KindOpenCircuit means no current path joins the terminals (infinite resistance).
	KindOpenCircuit

	// KindSingular means the reduced nodal system had no unique solution.
	KindSingular
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindResistance:
		return "resistance"
	case KindOpenCircuit:
		return "open-circuit"
	case KindSingular:
		return "singular"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Result is the tagged outcome of an equivalent-resistance query.
// The zero Result has no Kind and is never returned by this package.
type Result struct {
	Kind Kind
	ohms float64
}

// Resistance returns a KindResistance result.
func Resistance(ohms float64) Result { return Result{Kind: KindResistance, ohms: ohms} }

// OpenCircuit returns a KindOpenCircuit result.
func OpenCircuit() Result { return Result{Kind: KindOpenCircuit} }

// Singular returns a KindSingular result.
func Singular() Result { return Result{Kind: KindSingular} }

// Ohms returns the resistance: the value for KindResistance, +Inf for an open
// circuit and NaN otherwise.
func (r Result) Ohms() float64 {
	switch r.Kind {
	case KindResistance:
		return r.ohms
	case KindOpenCircuit:
		return math.Inf(1)
	default:
		return math.NaN()
	}
}

// Value returns the finite resistance and true, or (0, false) for any other kind.
func (r Result) Value() (float64, bool) {
	if r.Kind != KindResistance {
		return 0, false
	}

	return r.ohms, true
}

// IsOpen reports whether the terminals are not connected.
func (r Result) IsOpen() bool { return r.Kind == KindOpenCircuit }

// IsSingular reports whether the query failed numerically.
func (r Result) IsSingular() bool { return r.Kind == KindSingular }

// String renders the result for logs and terminals.
func (r Result) String() string {
	switch r.Kind {
	case KindResistance:
		return fmt.Sprintf("%.12g ohm", r.ohms)
	case KindOpenCircuit:
		return "open circuit"
	case KindSingular:
		return "singular"
	default:
		return "unknown"
	}
}
