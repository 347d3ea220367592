package matching

import "strings"

// normalize lowercases and trims a term before comparison. Profile
// arrays are free text, so this is the only canonicalization applied.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// editDistanceWithin reports whether the Levenshtein distance between a
// and b is at most max. Bails out early once every cell of a row exceeds
// the bound.
func editDistanceWithin(a, b string, max int) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(rb)-len(ra) > max {
		return false
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		best := curr[0]
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = minInt(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
			if curr[i] < best {
				best = curr[i]
			}
		}
		if best > max {
			return false
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)] <= max
}

// fuzzyEquals compares two terms allowing one edit for short terms and
// two for longer ones.
func fuzzyEquals(a, b string) bool {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	max := 2
	if len([]rune(a)) <= 4 || len([]rune(b)) <= 4 {
		max = 1
	}
	return editDistanceWithin(a, b, max)
}

// fuzzyMatchCount counts query terms with at least one fuzzy match in
// the candidate's array.
func fuzzyMatchCount(query, candidate []string) int {
	count := 0
	for _, q := range query {
		for _, c := range candidate {
			if fuzzyEquals(q, c) {
				count++
				break
			}
		}
	}
	return count
}

// exactMatchCount is the size of the set intersection of the two arrays
// after normalization.
func exactMatchCount(query, candidate []string) int {
	seen := make(map[string]bool, len(candidate))
	for _, c := range candidate {
		if n := normalize(c); n != "" {
			seen[n] = true
		}
	}
	counted := make(map[string]bool, len(query))
	count := 0
	for _, q := range query {
		n := normalize(q)
		if n != "" && seen[n] && !counted[n] {
			counted[n] = true
			count++
		}
	}
	return count
}

func minInt(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
