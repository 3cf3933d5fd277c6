package textlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentencesOf(t *testing.T, text string) []Sentence {
	t.Helper()
	sents, err := segment(text, NewIterTokenizer().Tokenize(text))
	require.NoError(t, err)
	return sents
}

func sentenceTexts(sents []Sentence) []string {
	out := make([]string, len(sents))
	for i, s := range sents {
		out[i] = s.Text
	}
	return out
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"simple",
			"Hello world. How are you? I am fine!",
			[]string{"Hello world.", "How are you?", "I am fine!"},
		},
		{
			"abbreviation before lower case",
			"Apple Inc. makes phones. They sell well.",
			[]string{"Apple Inc. makes phones.", "They sell well."},
		},
		{
			"initial",
			"J. Smith wrote it. Then he left.",
			[]string{"J. Smith wrote it.", "Then he left."},
		},
		{
			"paragraph break without punctuation",
			"First line\n\nSecond line",
			[]string{"First line", "Second line"},
		},
		{
			"no terminal punctuation",
			"just some words",
			[]string{"just some words"},
		},
		{
			"single sentence",
			"Apple Inc. was founded by Steve Jobs in Cupertino, California in 1976.",
			[]string{"Apple Inc. was founded by Steve Jobs in Cupertino, California in 1976."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sentenceTexts(sentencesOf(t, tt.text)))
		})
	}
}

func TestSegmentEmpty(t *testing.T) {
	sents, err := segment("", nil)
	require.NoError(t, err)
	assert.NotNil(t, sents)
	assert.Empty(t, sents)
}

func TestSegmentPartitionsTokens(t *testing.T) {
	text := "  The first one.  The second one!\n\nA third, with a comma? Yes.  "
	tokens := NewIterTokenizer().Tokenize(text)
	sents, err := segment(text, tokens)
	require.NoError(t, err)
	require.NotEmpty(t, sents)

	var flat []Token
	last := 0
	for _, s := range sents {
		require.NotEmpty(t, s.Tokens)
		assert.Equal(t, s.Text, text[s.Start:s.End])
		assert.Equal(t, s.Tokens[0].Start, s.Start)
		assert.Equal(t, s.Tokens[len(s.Tokens)-1].End, s.End)
		assert.LessOrEqual(t, last, s.Start)
		last = s.End
		flat = append(flat, s.Tokens...)
	}
	assert.Equal(t, tokens, flat)
}
