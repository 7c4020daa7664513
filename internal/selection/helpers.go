// Package selection provides the pure content selectors that map a user
// profile and questionnaire answers to concrete guide content. Selectors
// never fail and never perform I/O: missing or malformed inputs resolve to
// documented defaults, and free-text routing is an ordered first-match walk
// over keyword predicates, so ambiguous multi-topic input picks the first
// matching branch in source order.
package selection

import "strings"

// keywords builds a predicate that reports whether any of the given
// substrings occurs in the input
func keywords(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

// containsFold reports whether substr occurs in s, case-insensitively
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// goalText joins all profile goals into one lowercase routing string.
// The primary goal comes first so first-match precedence follows the
// caller's stated priority order.
func goalText(goals []string) string {
	return strings.ToLower(strings.Join(goals, " "))
}
