package matching

import "math"

// greedyPairs performs a nearest-neighbor pairing over the symmetric matrix
// mat: repeatedly take the first remaining member and couple it with its
// cheapest remaining partner. Not optimal, but linear in memory and fast for
// the odd-node counts real street networks produce, where the exact
// subset DP is out of reach.
//
// Complexity: O(k^2), where k = len(mat).
func greedyPairs(mat [][]float64) [][2]int {
	remaining := make([]int, len(mat))
	for i := range remaining {
		remaining[i] = i
	}

	var out [][2]int
	for len(remaining) > 1 {
		u := remaining[0]
		remaining = remaining[1:]

		// Find the closest partner still available.
		bestIdx, bestD := -1, math.Inf(1)
		for i, v := range remaining {
			if d := mat[u][v]; d < bestD {
				bestD, bestIdx = d, i
			}
		}
		if bestIdx < 0 {
			continue // u reaches nothing; leave it unmatched, keep pairing
		}

		v := remaining[bestIdx]
		out = append(out, [2]int{u, v})
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return out
}
