// Package suggest resolves typed tokens to candidate completions.
//
// Lookup is an exact match on the lowercased token. No prefix walking, no
// fuzzy correction, no ranking: a token either has a fixed ordered
// candidate list or it has none. Tables are built once, at startup, and
// are immutable for the process lifetime; shipping new entries means
// redeploying the table file, not a runtime API.
package suggest

// Source maps a token to an ordered sequence of candidate completions.
// An empty or unknown token yields an empty sequence.
type Source interface {
	Lookup(token string) []string
}
