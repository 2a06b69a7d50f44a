package mesh

// Components finds all contiguous groups of nodes under m.Conn connectivity.
// Each component lists one-based node numbers in BFS order; components are
// ordered by their lowest node number.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (m *Mesh) Components() [][]int {
	offsets := m.neighborOffsets()
	seen := make([]bool, len(m.node))
	var comps [][]int

	for _, i0 := range m.cells {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, m.node[u])
			ux, uy := m.coordinate(u)
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !m.InBounds(vx, vy) {
					continue
				}
				vi := m.index(vx, vy)
				if m.node[vi] == 0 || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// neighborOffsets returns both directions of every forward offset.
func (m *Mesh) neighborOffsets() [][2]int {
	out := make([][2]int, 0, 2*len(m.forward))
	for _, d := range m.forward {
		out = append(out, d, [2]int{-d[0], -d[1]})
	}

	return out
}
