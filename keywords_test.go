package textlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goroutineText = "Goroutines communicate over channels. Channels carry values " +
	"between goroutines. The scheduler multiplexes goroutines."

func TestExtractKeywords(t *testing.T) {
	tokens := NewIterTokenizer().Tokenize(goroutineText)

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"top two", 2, []string{"goroutines", "channels"}},
		{"ties broken alphabetically", 4, []string{"goroutines", "channels", "carry", "communicate"}},
		{"zero", 0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tokens, tt.n))
		})
	}
}

func TestExtractKeywordsFiltering(t *testing.T) {
	tokens := NewIterTokenizer().Tokenize("The cat and the dog ran 1000 miles, and then they were very tired!")
	got := ExtractKeywords(tokens, 10)

	assert.NotContains(t, got, "the")
	assert.NotContains(t, got, "cat", "shorter than four letters")
	assert.NotContains(t, got, "1000")
	assert.Contains(t, got, "miles")
	assert.Contains(t, got, "tired")

	empty := ExtractKeywords(nil, 5)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRankKeywords(t *testing.T) {
	ranked := RankKeywords(NewIterTokenizer().Tokenize(goroutineText))
	require.NotEmpty(t, ranked)

	total := 0
	for _, k := range ranked {
		total += k.Count
	}
	assert.Equal(t, Keyword{Word: "goroutines", Count: 3, Score: 3 / float64(total)}, ranked[0])

	sum := 0.0
	for _, k := range ranked {
		sum += k.Score
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
