// Package utils provides small helpers shared across layers. Nothing here
// knows about conversations or HTTP; keep it that way.
package utils

import "strconv"

// AtoiDefault parses s as a base-10 integer, returning def when s is empty
// or malformed. Query parameters arrive as strings and a bad value should
// never fail the request, so callers substitute a default instead.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// ClampInt bounds n to [lo, hi]. When lo > hi the bounds are swapped rather
// than treated as an error.
func ClampInt(n, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
