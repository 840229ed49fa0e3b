// internal/board/graph.go
//
// Undirected adjacency over the 16 board cells: every cell is connected
// to its up-to-8 grid neighbors (Chebyshev distance 1). Built once per
// board, read-only afterwards.

package board

// Graph holds the neighbor lists of all cells, indexed by cell index.
type Graph struct {
	neighbors [NumCells][]int
}

// newGraph builds the adjacency using the 3x3 offset pattern around each
// cell, discarding out-of-bounds offsets and the cell itself.
func newGraph() *Graph {
	g := &Graph{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			i := r*Size + c
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if nr < 0 || nr >= Size || nc < 0 || nc >= Size {
						continue
					}
					g.neighbors[i] = append(g.neighbors[i], nr*Size+nc)
				}
			}
		}
	}
	return g
}

// Neighbors returns the neighbor cell indexes of i. The returned slice
// must not be mutated.
func (g *Graph) Neighbors(i int) []int {
	return g.neighbors[i]
}

// Adjacent reports whether cells a and b share an edge.
func (g *Graph) Adjacent(a, b int) bool {
	for _, n := range g.neighbors[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Len returns the number of cells in the graph.
func (g *Graph) Len() int { return NumCells }
