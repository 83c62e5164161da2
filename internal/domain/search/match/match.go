// Package match holds the normalized case-insensitive comparison helpers
// shared by every search predicate (free text, tags, category, brand), so
// all four match the same way.
package match

import "strings"

// Contains reports whether needle occurs in haystack, ignoring case.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Equals reports whether a and b are equal, ignoring case.
func Equals(a, b string) bool {
	return strings.EqualFold(a, b)
}

// AnyContains reports whether any candidate contains needle, ignoring case.
func AnyContains(candidates []string, needle string) bool {
	for _, c := range candidates {
		if Contains(c, needle) {
			return true
		}
	}
	return false
}
