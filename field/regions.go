// SPDX-License-Identifier: MIT

package field

var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Regions finds every contiguous region (“island”) of samples ≥ level under
// the given connectivity. Each region is a slice of row-major indices in BFS
// order starting from its first cell in scan order; regions are ordered by
// that first cell. Use Coordinate to turn an index back into (i,j).
// NaN samples never compare ≥ level, so they are water, as in Threshold.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (f *Field) Regions(level float64, conn Connectivity) [][]int {
	offsets := conn4Offsets
	if conn == Conn8 {
		offsets = conn8Offsets
	}
	seen := make([]bool, len(f.Values))
	var regions [][]int

	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			start := f.index(i, j)
			if seen[start] || !(f.Values[start] >= level) {
				continue
			}
			queue := []int{start}
			seen[start] = true

			for qi := 0; qi < len(queue); qi++ {
				ui, uj := f.Coordinate(queue[qi])
				for _, d := range offsets {
					vi, vj := ui+d[0], uj+d[1]
					if !f.InBounds(vi, vj) {
						continue
					}
					v := f.index(vi, vj)
					if !seen[v] && f.Values[v] >= level {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}
