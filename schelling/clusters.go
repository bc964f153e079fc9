package schelling

import (
	"github.com/katalvlaran/schelling/lattice"
	"github.com/katalvlaran/schelling/neighborhood"
)

// Cluster is a maximal group of same-type agents connected through their
// radius-1 neighborhoods on the torus.
type Cluster struct {
	Type  lattice.Occupant
	Cells []lattice.Cell
}

// Clusters finds all same-type clusters of l. Clusters are ordered by the
// row-major position of their first cell; cells inside a cluster are in
// breadth-first order from that cell.
//
// Time:   O(L²·8).
// Memory: O(L²) for visited flags and output.
func Clusters(l *lattice.Lattice) []Cluster {
	ix, err := neighborhood.New(l.Size(), neighborhood.DefaultLayers)
	if err != nil {
		return nil
	}
	size := l.Size()
	seen := make([]bool, size*size)
	var out []Cluster

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			start := lattice.Cell{X: x, Y: y}
			typ := l.At(start)
			if typ == lattice.Empty || seen[x*size+y] {
				continue
			}
			// BFS over same-type neighbors
			seen[x*size+y] = true
			queue := []lattice.Cell{start}
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range ix.Neighbors(queue[qi]) {
					i := n.X*size + n.Y
					if seen[i] || l.At(n) != typ {
						continue
					}
					seen[i] = true
					queue = append(queue, n)
				}
			}
			out = append(out, Cluster{Type: typ, Cells: queue})
		}
	}
	return out
}

// ClusterStats summarizes Clusters: how many there are, the largest one and
// the mean number of agents per cluster (0 on an empty lattice).
type ClusterStats struct {
	Count    int     `json:"count"`
	Largest  int     `json:"largest"`
	MeanSize float64 `json:"mean_size"`
}

// SummarizeClusters computes ClusterStats for l.
// Complexity: O(L²).
func SummarizeClusters(l *lattice.Lattice) ClusterStats {
	var st ClusterStats
	agents := 0
	for _, c := range Clusters(l) {
		st.Count++
		agents += len(c.Cells)
		if len(c.Cells) > st.Largest {
			st.Largest = len(c.Cells)
		}
	}
	if st.Count > 0 {
		st.MeanSize = float64(agents) / float64(st.Count)
	}
	return st
}
