package textlens

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const minKeywordRunes = 4

// Keyword is a ranked keyword with its normalized term frequency.
type Keyword struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

// isKeywordCandidate reports whether a lower-cased word may be a keyword:
// letters only, longer than three runes and not a stop word.
func isKeywordCandidate(lower string) bool {
	if utf8.RuneCountInString(lower) < minKeywordRunes {
		return false
	}
	for _, r := range lower {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return !IsStopWord(lower, "en")
}

// RankKeywords scores every candidate by term frequency, normalized by the
// number of candidate occurrences. Higher counts come first and ties are
// broken lexicographically.
func RankKeywords(tokens []Token) []Keyword {
	counts := make(map[string]int)
	verdict := make(map[string]bool)
	total := 0
	for _, tok := range tokens {
		lower := strings.ToLower(tok.Word)
		ok, seen := verdict[lower]
		if !seen {
			ok = isKeywordCandidate(lower)
			verdict[lower] = ok
		}
		if ok {
			counts[lower]++
			total++
		}
	}

	ranked := make([]Keyword, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, Keyword{Word: w, Count: c, Score: float64(c) / float64(total)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	return ranked
}

// ExtractKeywords returns up to n distinct keywords in rank order.
func ExtractKeywords(tokens []Token, n int) []string {
	ranked := RankKeywords(tokens)
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	out := make([]string, 0, len(ranked))
	for _, k := range ranked {
		out = append(out, k.Word)
	}
	return out
}
