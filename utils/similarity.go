package utils

import "strings"

// Similarity computes a 0-100 score between two strings.
// Exact match after normalization scores 100. Containment (one normalized
// string fully inside the other) scores a fixed 85 - deliberately below an
// exact match so a substring coincidence is not over-credited. Anything else
// falls through to normalized Levenshtein distance.
func Similarity(a, b string) float64 {
	na := NormalizeText(a)
	nb := NormalizeText(b)

	if na == "" || nb == "" {
		return 0
	}

	if na == nb {
		return 100
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 85
	}

	dist := levenshteinDistance(na, nb)
	maxLen := len([]rune(na))
	if l := len([]rune(nb)); l > maxLen {
		maxLen = l
	}

	score := (1.0 - float64(dist)/float64(maxLen)) * 100
	if score < 0 {
		return 0
	}
	return score
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	n, m := len(r1), len(r2)

	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	matrix := make([][]int, n+1)
	for i := range matrix {
		matrix[i] = make([]int, m+1)
	}

	for i := 0; i <= n; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= m; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[n][m]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
