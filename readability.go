package textlens

import (
	"math"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"
)

// Flesch Reading Ease thresholds for the qualitative levels.
const (
	elementaryMinScore   = 70
	intermediateMinScore = 50
)

// Readability computes the Flesch Reading Ease score of a segmented text,
// clamped to [0, 100]. Only tokens containing a letter or digit count as
// words for the score and for AvgWordLength; AvgSentenceLength is the mean
// number of tokens, punctuation included, per sentence. A text without
// words scores 0 and is reported as Elementary.
func Readability(sents []Sentence) ReadabilityInfo {
	var (
		lengths     []float64
		tokenCounts []float64
		syllables   int
		sentCount   int
	)
	for _, s := range sents {
		if len(s.Tokens) == 0 {
			continue
		}
		tokenCounts = append(tokenCounts, float64(len(s.Tokens)))
		n := 0
		for _, tok := range s.Tokens {
			if !isWordToken(tok.Word) {
				continue
			}
			lengths = append(lengths, float64(utf8.RuneCountInString(tok.Word)))
			syllables += countSyllables(tok.Word)
			n++
		}
		if n > 0 {
			sentCount++
		}
	}

	info := ReadabilityInfo{Level: Elementary}
	if len(tokenCounts) > 0 {
		info.AvgSentenceLength = stat.Mean(tokenCounts, nil)
	}
	if len(lengths) == 0 {
		return info
	}

	words := float64(len(lengths))
	asl := words / float64(sentCount)
	asw := float64(syllables) / words
	score := 206.835 - 1.015*asl - 84.6*asw
	info.Score = clamp(math.Round(score*100)/100, 0, 100)
	info.Level = readabilityLevel(info.Score)
	info.AvgWordLength = stat.Mean(lengths, nil)
	return info
}

func readabilityLevel(score float64) ReadabilityLevel {
	switch {
	case score >= elementaryMinScore:
		return Elementary
	case score >= intermediateMinScore:
		return Intermediate
	default:
		return Advanced
	}
}

// countSyllables counts vowel groups, discounting a silent final e.
// Words without vowels (numbers, acronyms) count as one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevWasVowel := false
	for _, char := range word {
		isVowel := strings.ContainsRune("aeiouyàáâäèéêëìíîïòóôöùúûü", char)
		if isVowel && !prevWasVowel {
			count++
		}
		prevWasVowel = isVowel
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
