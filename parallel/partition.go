// SPDX-License-Identifier: MIT

package parallel

// Range is a half-open index interval [Lo, Hi) owned by exactly one task.
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.Hi - r.Lo }

// Split cuts [0,n) into at most parts contiguous, non-empty, non-overlapping
// ranges whose sizes differ by at most one. Range i covers
// [n*i/parts, n*(i+1)/parts), so the layout depends only on (n, parts).
//
// parts is clamped to n; n <= 0 or parts <= 0 yields nil.
// Complexity: O(parts) time and memory.
func Split(n, parts int) []Range {
	if n <= 0 || parts <= 0 {
		return nil
	}
	if parts > n {
		parts = n
	}

	out := make([]Range, parts)
	for i := 0; i < parts; i++ {
		out[i] = Range{Lo: n * i / parts, Hi: n * (i + 1) / parts}
	}

	return out
}
