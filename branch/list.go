package branch

import "fmt"

// List is an ordered, mutable sequence of branches.
// The zero value is an empty list ready to use.
type List struct {
	items []Branch
}

// NewList returns an empty list with room for capacity branches.
func NewList(capacity int) *List {
	if capacity < 0 {
		capacity = 0
	}

	return &List{items: make([]Branch, 0, capacity)}
}

// Len returns the number of branches.
func (l *List) Len() int { return len(l.items) }

// Append adds a branch at the end. Amortized O(1).
func (l *List) Append(b Branch) {
	l.items = append(l.items, b)
}

// At returns the branch at zero-based position idx.
func (l *List) At(idx int) (Branch, error) {
	if idx < 0 || idx >= len(l.items) {
		return Branch{}, fmt.Errorf("At(%d): %w", idx, ErrIndexOutOfRange)
	}

	return l.items[idx], nil
}

// RemoveAt deletes the branch at zero-based position idx and shifts the
// following branches one position to the left. O(Len()).
func (l *List) RemoveAt(idx int) (Branch, error) {
	if idx < 0 || idx >= len(l.items) {
		return Branch{}, fmt.Errorf("RemoveAt(%d): %w", idx, ErrIndexOutOfRange)
	}
	removed := l.items[idx]
	l.items = append(l.items[:idx], l.items[idx+1:]...)

	return removed, nil
}

// RemoveRange deletes positions from..to inclusive (zero-based) and returns
// how many branches were removed. The list is unchanged on error.
func (l *List) RemoveRange(from, to int) (int, error) {
	if from < 0 || to >= len(l.items) || from > to {
		return 0, fmt.Errorf("RemoveRange(%d,%d): %w", from, to, ErrIndexOutOfRange)
	}
	l.items = append(l.items[:from], l.items[to+1:]...)

	return to - from + 1, nil
}

// Clear removes every branch but keeps the allocated capacity.
func (l *List) Clear() {
	l.items = l.items[:0]
}

// All returns a copy of the branches in order; the caller owns the slice.
func (l *List) All() []Branch {
	out := make([]Branch, len(l.items))
	copy(out, l.items)

	return out
}
