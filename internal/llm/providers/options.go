package providers

// CompletionOpts control a single completion call
type CompletionOpts struct {
	MaxTokens   int
	Temperature float64
}
