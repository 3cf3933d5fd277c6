package textlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const catsText = "Cats are wonderful pets. Cats sleep a lot during the day. " +
	"The weather was rainy yesterday. Many cats enjoy playing with string. " +
	"My neighbor bought a new car."

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts SummaryOptions
		want string
	}{
		{
			"top three in original order",
			catsText,
			SummaryOptions{SentenceCount: 3},
			"Cats are wonderful pets. Cats sleep a lot during the day. Many cats enjoy playing with string.",
		},
		{
			"short text returned verbatim",
			"  First one!  Second one?  ",
			SummaryOptions{SentenceCount: 3},
			"  First one!  Second one?  ",
		},
		{
			"ties keep earlier sentences",
			"It is. It was. It has. It does. It will.",
			SummaryOptions{SentenceCount: 3},
			"It is. It was. It has.",
		},
		{
			"character budget",
			catsText,
			SummaryOptions{SentenceCount: 3, CharBudget: 30},
			"Cats are wonderful pets.",
		},
		{
			"budget too small keeps best sentence",
			catsText,
			SummaryOptions{SentenceCount: 3, CharBudget: 5},
			"Cats are wonderful pets.",
		},
		{
			"zero count",
			catsText,
			SummaryOptions{},
			"",
		},
		{
			"empty text",
			"",
			SummaryOptions{SentenceCount: 3},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.text, sentencesOf(t, tt.text), tt.opts))
		})
	}
}

func TestScoreSentences(t *testing.T) {
	scores := scoreSentences(sentencesOf(t, catsText))
	assert.Len(t, scores, 5)
	for _, i := range []int{0, 1, 3} {
		for _, j := range []int{2, 4} {
			assert.Greater(t, scores[i], scores[j])
		}
	}
}

func TestTrimTerminal(t *testing.T) {
	assert.Equal(t, "Hello", trimTerminal(" Hello!? "))
	assert.Equal(t, "Wait", trimTerminal("Wait…"))
	assert.Equal(t, "", trimTerminal("..."))
}
