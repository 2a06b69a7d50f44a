// Package branch defines the Branch record (one resistor between two nodes)
// and List, the ordered, editable collection of branches that describes a
// resistor network.
//
// Node indices inside this package are zero-based. Branch order carries no
// physical meaning; it only matters to whoever edits the list (removal by
// position, range removal). List is not synchronized: callers that share a
// List across goroutines must serialize writes against reads themselves, as
// network.Network does.
package branch
