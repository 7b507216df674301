package matching

import (
	"math"
	"math/bits"
)

// exactPairs solves minimum-weight perfect matching on the complete weighted
// set described by the symmetric matrix mat via dynamic programming over
// subsets: dp[mask] is the cheapest pairing of exactly the members in mask.
//
// The lowest set bit of mask is always paired first, which makes the
// recurrence unambiguous and visits each subset once:
//
//	dp[mask] = min over j in mask, j != low of
//	           dp[mask without {low, j}] + mat[low][j]
//
// Unreachable pairs (infinite distance) are never chosen; if no full pairing
// exists the infinite states propagate and the backtrack stops early,
// returning a partial matching (callers pre-group by component, so in
// practice dp[full] is always finite).
//
// Complexity: O(k^2 * 2^k) time, O(2^k) space. len(mat) must be even.
func exactPairs(mat [][]float64) [][2]int {
	k := len(mat)
	if k == 0 {
		return nil
	}

	full := 1<<k - 1
	dp := make([]float64, full+1)
	choice := make([]int8, full+1) // partner chosen for the lowest set bit
	for mask := 1; mask <= full; mask++ {
		dp[mask] = math.Inf(1)
		choice[mask] = -1
	}

	// Masks ascend, so every submask referenced below is already final.
	for mask := 1; mask <= full; mask++ {
		if bits.OnesCount(uint(mask))%2 == 1 {
			continue
		}
		low := bits.TrailingZeros(uint(mask))
		for j := low + 1; j < k; j++ {
			if mask&(1<<j) == 0 || math.IsInf(mat[low][j], 1) {
				continue
			}
			rest := mask &^ (1<<low | 1<<j)
			if math.IsInf(dp[rest], 1) {
				continue
			}
			if cand := dp[rest] + mat[low][j]; cand < dp[mask] {
				dp[mask] = cand
				choice[mask] = int8(j)
			}
		}
	}

	// Walk the choice table back down from the full set.
	var out [][2]int
	mask := full
	for mask != 0 {
		j := int(choice[mask])
		if j < 0 {
			break // no full pairing; leave the remainder unmatched
		}
		low := bits.TrailingZeros(uint(mask))
		out = append(out, [2]int{low, j})
		mask &^= 1<<low | 1<<j
	}

	return out
}
