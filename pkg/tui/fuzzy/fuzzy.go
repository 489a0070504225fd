// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking near-miss name matches
// ABOUTME: Used to suggest art names when resolution fails

package fuzzy

import "github.com/sahilm/fuzzy"

// Suggest returns up to max candidates fuzzy-matching pattern, best
// score first. An empty result means nothing came close.
func Suggest(pattern string, candidates []string, max int) []string {
	results := fuzzy.Find(pattern, candidates)
	if max > 0 && len(results) > max {
		results = results[:max]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Str
	}
	return out
}
