package textlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"the", 1},
		{"make", 1},
		{"table", 2},
		{"beautiful", 3},
		{"rhythm", 1},
		{"Readability", 5},
		{"123", 1},
		{"café", 2},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, countSyllables(tt.word))
		})
	}
}

func TestReadability(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		score float64
		level ReadabilityLevel
	}{
		{"simple text clamps high", "The cat sat on the mat.", 100, Elementary},
		{"dense text clamps low", "Institutional investors systematically underestimated macroeconomic volatility.", 0, Advanced},
		{"empty", "", 0, Elementary},
		{"punctuation only", "?!", 0, Elementary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Readability(sentencesOf(t, tt.text))
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.level, got.Level)
		})
	}
}

func TestReadabilityAverages(t *testing.T) {
	got := Readability(sentencesOf(t, "The cat sat on the mat. A dog ran."))

	// 7 and 4 tokens, punctuation included; 9 words of 24 letters.
	assert.InDelta(t, 5.5, got.AvgSentenceLength, 1e-9)
	assert.InDelta(t, 24.0/9.0, got.AvgWordLength, 1e-9)

	punct := Readability(sentencesOf(t, "?!"))
	assert.Greater(t, punct.AvgSentenceLength, 0.0)
	assert.Zero(t, punct.AvgWordLength)

	assert.Zero(t, Readability(nil).AvgSentenceLength)
}

func TestReadabilityLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  ReadabilityLevel
	}{
		{100, Elementary},
		{70, Elementary},
		{69.99, Intermediate},
		{50, Intermediate},
		{49.99, Advanced},
		{0, Advanced},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, readabilityLevel(tt.score), "score %v", tt.score)
	}
}

func TestReadabilityRounding(t *testing.T) {
	got := Readability(sentencesOf(t, "Reading novels improves vocabulary considerably over several years."))
	assert.Equal(t, got.Score, float64(int(got.Score*100+0.5))/100)
	assert.GreaterOrEqual(t, got.Score, 0.0)
	assert.LessOrEqual(t, got.Score, 100.0)
}
