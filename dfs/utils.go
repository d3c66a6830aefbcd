// Package dfs provides small helpers over airport sequences shared by the
// enumeration code and its callers.
package dfs

import (
	"strings"
)

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// HasPrefix reports whether path starts with every element of prefix.
func HasPrefix(path, prefix []string) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i := range prefix {
		if path[i] != prefix[i] {
			return false
		}
	}

	return true
}

// JoinSig concatenates the elements of c with commas, producing a single string signature.
// Time Complexity: O(n + total length of elements).
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}
