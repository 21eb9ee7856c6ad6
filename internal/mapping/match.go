package mapping

import "strings"

// similarityFloor is the minimum normalized edit-distance similarity for a
// fuzzy match to count at all. Below it, short strings produce nonsense
// matches ("id" against "width"), so the confidence collapses to zero.
const similarityFloor = 0.6

// MatchConfidence scores how well a source column header matches one field
// alias, in [0,1]. Exact match after normalization is 1.0, a substring
// match in either direction is 0.85, otherwise the normalized Levenshtein
// similarity when it clears the floor. The shortcuts keep the common case
// cheap and avoid edit distance's bias against short substrings of long
// headers.
func MatchConfidence(header, alias string) float64 {
	h := strings.ToLower(strings.TrimSpace(header))
	a := strings.ToLower(alias) // aliases are authored trimmed

	if h == a {
		return 1.0
	}
	if h != "" && a != "" && (strings.Contains(h, a) || strings.Contains(a, h)) {
		return 0.85
	}

	maxLen := len([]rune(h))
	if l := len([]rune(a)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 0.0
	}

	sim := 1.0 - float64(levenshtein(h, a))/float64(maxLen)
	if sim > similarityFloor {
		return sim
	}
	return 0.0
}

// levenshtein computes the classic edit distance (insert, delete,
// substitute, unit cost each) over runes, using two rows instead of the
// full matrix.
func levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(br)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
