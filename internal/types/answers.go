package types

import "strings"

// Answers is the open-ended questionnaire answer bag. Values are strings or
// string lists; anything else is ignored by the accessors. Selectors must
// never fail on a missing or mistyped key, so all access goes through the
// defaulting accessors below.
type Answers map[string]any

// String returns the answer for key as a trimmed string, or "" when the key
// is missing or not string-like.
func (a Answers) String(key string) string {
	if a == nil {
		return ""
	}
	switch v := a[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case []string:
		if len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// StringOr returns the answer for key, falling back to def when absent
func (a Answers) StringOr(key, def string) string {
	if s := a.String(key); s != "" {
		return s
	}
	return def
}

// List returns the answer for key as a string list. A scalar string answer
// is split on commas so "dairy, gluten" and ["dairy","gluten"] are
// equivalent inputs. Missing or mistyped keys yield an empty list.
func (a Answers) List(key string) []string {
	if a == nil {
		return nil
	}
	switch v := a[key].(type) {
	case []string:
		return cleanList(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return cleanList(out)
	case string:
		return cleanList(strings.Split(v, ","))
	}
	return nil
}

// Has reports whether the key is present with a non-empty value
func (a Answers) Has(key string) bool {
	return a.String(key) != "" || len(a.List(key)) > 0
}

// cleanList trims entries and drops empties
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
