package diagram

import (
	"sort"
	"strings"
)

// ============================================================
// "Did you mean" Suggestions
// ============================================================

// Suggest ranks known diagram types by similarity to an unknown one. The
// score is a weighted common-subsequence character overlap plus a bonus for
// a shared prefix. Ordering is deterministic: score descending, then
// alphabetical. Candidates with no overlap at all are dropped.
func Suggest(unknown string, known []string, max int) []string {
	unknown = strings.ToLower(strings.TrimSpace(unknown))
	if unknown == "" || max <= 0 {
		return nil
	}

	type scored struct {
		typ   string
		score float64
	}

	var ranked []scored
	for _, candidate := range known {
		score := similarity(unknown, strings.ToLower(candidate))
		if score <= 0 {
			continue
		}
		ranked = append(ranked, scored{typ: candidate, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].typ < ranked[j].typ
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.typ
	}
	return out
}

// similarity weighs the longest common subsequence of the two strings
// against their lengths and adds a prefix-length bonus.
func similarity(a, b string) float64 {
	if a == b {
		return 2
	}

	lcs := commonSubsequence(a, b)
	if lcs == 0 {
		return 0
	}

	score := float64(2*lcs) / float64(len(a)+len(b))

	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	score += float64(prefix) * 0.1

	return score
}

func commonSubsequence(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
