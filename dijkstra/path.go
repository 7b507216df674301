package dijkstra

import "fmt"

// PathTo reconstructs the node sequence source..target from a predecessor
// map produced by Dijkstra with WithReturnPath().
//
// Returns ErrNoPath when target was never reached (empty predecessor and not
// the source itself). For target == source the path is [source].
//
// Complexity: O(len(path)).
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if target == source {
		return []string{source}, nil
	}
	if prev[target] == "" {
		return nil, fmt.Errorf("%w: %q -> %q", ErrNoPath, source, target)
	}

	// Walk predecessors back to the source, then reverse in place.
	var rev []string
	for at := target; at != ""; at = prev[at] {
		rev = append(rev, at)
		if at == source {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	if rev[0] != source {
		return nil, fmt.Errorf("%w: %q -> %q", ErrNoPath, source, target)
	}

	return rev, nil
}
