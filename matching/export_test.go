package matching

// Test-only hooks exposing the unexported pairing kernels to external-view
// tests. They exist only under `go test`.
var (
	TestHookExactPairs  = exactPairs
	TestHookGreedyPairs = greedyPairs
)
