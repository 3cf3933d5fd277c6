package textlens

import (
	"math"
	"strings"
)

// SentimentAnalyzer performs lexicon-based sentiment analysis
type SentimentAnalyzer struct {
	lexicon *SentimentLexicon
	config  SentimentConfig
}

// SentimentConfig configures sentiment analysis
type SentimentConfig struct {
	NegationWindow int     // Words to check for negation
	ModifierWindow int     // Words to check for intensifiers and diminishers
	LabelThreshold float64 // |score| above this is Positive or Negative
}

// Sentiment labels.
const (
	LabelPositive = "Positive"
	LabelNeutral  = "Neutral"
	LabelNegative = "Negative"
)

// DefaultSentimentConfig returns standard configuration
func DefaultSentimentConfig() SentimentConfig {
	return SentimentConfig{
		NegationWindow: 3,
		ModifierWindow: 2,
		LabelThreshold: 0.33,
	}
}

// NewSentimentAnalyzer creates a sentiment analyzer. A nil lexicon selects
// the built-in English lexicon.
func NewSentimentAnalyzer(lexicon *SentimentLexicon, config SentimentConfig) *SentimentAnalyzer {
	if lexicon == nil {
		lexicon = NewSentimentLexicon()
	}
	return &SentimentAnalyzer{lexicon: lexicon, config: config}
}

// sentenceSentiment is the per-sentence intermediate score.
type sentenceSentiment struct {
	polarity   float64
	confidence float64
	positive   []string
	negative   []string
}

// Analyze scores a segmented document. Sentence polarities are averaged,
// weighted by how much of each sentence the lexicon covered and by the
// lexicon's confidence in the matched words.
func (sa *SentimentAnalyzer) Analyze(sents []Sentence) SentimentScore {
	var (
		totalPolarity float64
		weights       float64
		tokenCount    int
		score         = SentimentScore{Positive: []string{}, Negative: []string{}}
	)

	for _, sent := range sents {
		s := sa.analyzeSentence(sent.Tokens)
		totalPolarity += s.polarity * s.confidence
		weights += s.confidence
		tokenCount += len(sent.Tokens)
		score.Positive = append(score.Positive, s.positive...)
		score.Negative = append(score.Negative, s.negative...)
	}

	if weights > 0 {
		score.Score = clamp(totalPolarity/weights, -1, 1)
	}
	score.Comparative = score.Score / float64(max(1, tokenCount))
	score.Label = sa.label(score.Score)
	return score
}

func (sa *SentimentAnalyzer) label(score float64) string {
	switch {
	case score > sa.config.LabelThreshold:
		return LabelPositive
	case score < -sa.config.LabelThreshold:
		return LabelNegative
	}
	return LabelNeutral
}

func (sa *SentimentAnalyzer) analyzeSentence(tokens []Token) sentenceSentiment {
	var (
		posScore   float64
		negScore   float64
		confidence float64
		wordCount  int
		result     sentenceSentiment
	)

	for i, token := range tokens {
		if !hasLetter(token.Word) {
			continue
		}

		sentiment := sa.lexicon.GetSentiment(token.Word)
		if sentiment == 0 {
			continue
		}

		modified := sa.applyModifiers(sentiment, tokens, i)
		if sa.checkNegation(tokens, i) {
			// Negation reverses but weakens.
			modified = -modified * 0.5
		}

		switch {
		case modified > 0:
			posScore += modified
		case modified < 0:
			negScore -= modified
		}
		confidence += sa.lexicon.GetConfidence(token.Word)

		// List membership follows the lexicon entry, not the negated score.
		if sentiment > 0 {
			result.positive = append(result.positive, token.Word)
		} else {
			result.negative = append(result.negative, token.Word)
		}
		wordCount++
	}

	if wordCount == 0 {
		return result
	}

	posScore /= float64(wordCount)
	negScore /= float64(wordCount)

	switch {
	case negScore == 0:
		result.polarity = math.Min(1.0, posScore*1.5)
	case posScore == 0:
		result.polarity = math.Max(-1.0, -negScore*1.5)
	default:
		result.polarity = (posScore - negScore) / (posScore + negScore)
	}

	coverage := float64(wordCount) / float64(len(tokens))
	result.confidence = math.Min(1.0, coverage*2) * 0.7 * confidence / float64(wordCount)
	for _, token := range tokens {
		if token.Word == "?" {
			// Questions are less certain.
			result.confidence *= 0.9
			break
		}
	}
	return result
}

// checkNegation looks back from position for a negation word, stopping at
// the first clause boundary.
func (sa *SentimentAnalyzer) checkNegation(tokens []Token, position int) bool {
	start := max(0, position-sa.config.NegationWindow)
	for i := position - 1; i >= start; i-- {
		word := tokens[i].Word
		if isClauseBoundary(word) {
			return false
		}
		if sa.lexicon.IsNegation(word) || strings.Contains(strings.ToLower(word), "n't") {
			return true
		}
	}
	return false
}

// applyModifiers adjusts sentiment based on intensifiers and diminishers,
// including two-word modifiers such as "a bit".
func (sa *SentimentAnalyzer) applyModifiers(baseSentiment float64, tokens []Token, position int) float64 {
	start := max(0, position-sa.config.ModifierWindow)
	for i := position - 1; i >= start; i-- {
		modifier := sa.lexicon.GetModifierStrength(tokens[i].Word)
		if modifier == 0 && i > 0 {
			modifier = sa.lexicon.GetModifierStrength(tokens[i-1].Word + " " + tokens[i].Word)
		}
		if modifier != 0 {
			return baseSentiment * (1 + modifier)
		}
	}
	return baseSentiment
}

var clauseBoundaries = map[string]bool{
	",":        true,
	";":        true,
	":":        true,
	".":        true,
	"!":        true,
	"?":        true,
	"but":      true,
	"however":  true,
	"although": true,
}

func isClauseBoundary(word string) bool {
	return clauseBoundaries[strings.ToLower(word)]
}
