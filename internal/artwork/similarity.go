package artwork

import (
	"regexp"
	"strings"
)

var punctuationPattern = regexp.MustCompile(`[^\w\s]`)

// NormalizeForComparison lowercases text, collapses whitespace, and strips
// punctuation so near-duplicate detection is not fooled by formatting.
func NormalizeForComparison(text string) string {
	text = strings.ToLower(text)
	text = strings.Join(strings.Fields(text), " ")
	text = punctuationPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Similarity returns a [0,1] score for how alike two strings are after
// normalization, based on Levenshtein distance. Two empty strings score 1.
func Similarity(a, b string) float64 {
	aNorm := NormalizeForComparison(a)
	bNorm := NormalizeForComparison(b)

	if aNorm == bNorm {
		return 1.0
	}
	if aNorm == "" || bNorm == "" {
		return 0.0
	}

	distance := LevenshteinDistance(aNorm, bNorm)
	maxLen := max(len(aNorm), len(bNorm))
	return 1.0 - float64(distance)/float64(maxLen)
}

// LevenshteinDistance calculates the edit distance between two strings.
func LevenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	rows := len(s1) + 1
	cols := len(s2) + 1
	matrix := make([][]int, rows)
	for i := range matrix {
		matrix[i] = make([]int, cols)
	}

	for i := 0; i < rows; i++ {
		matrix[i][0] = i
	}
	for j := 0; j < cols; j++ {
		matrix[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			deletion := matrix[i-1][j] + 1
			insertion := matrix[i][j-1] + 1
			substitution := matrix[i-1][j-1] + cost

			matrix[i][j] = min(deletion, insertion, substitution)
		}
	}

	return matrix[rows-1][cols-1]
}
