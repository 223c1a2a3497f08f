package grid

// ConnectedComponents groups the passable cells into maximal connected
// regions. Components are listed in order of their smallest index, and each
// one lists its cells in BFS discovery order starting from that index.
//
// Time:   O(cells·dim).
// Memory: O(cells) for the seen flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int
	nbrs := make([]int, 0, 2*g.Dim())

	for i0, c := range g.cells {
		if !c.Passable() || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			nbrs = g.NeighborIndices(queue[qi], nbrs[:0])
			for _, v := range nbrs {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether all passable cells form a single component.
// A grid with no passable cell counts as connected.
func (g *Grid) Connected() bool {
	return len(g.ConnectedComponents()) <= 1
}
