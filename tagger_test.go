package textlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagsOf(text string) []Tag {
	tokens := NewIterTokenizer().Tokenize(text)
	tagged := NewTagger().Tag(tokens)
	out := make([]Tag, len(tagged))
	for i, pt := range tagged {
		out[i] = pt.Tag
	}
	return out
}

func TestTagger(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Tag
	}{
		{
			"modal then verb",
			"She will help the team.",
			[]Tag{TagPronoun, TagVerb, TagVerb, TagDeterminer, TagNoun, TagOther},
		},
		{
			"ambiguous word after determiner",
			"The report was good",
			[]Tag{TagDeterminer, TagNoun, TagVerb, TagAdjective},
		},
		{
			"ambiguous word after pronoun",
			"They report news",
			[]Tag{TagPronoun, TagVerb, TagNoun},
		},
		{
			"suffix rules",
			"quickly happiness",
			[]Tag{TagAdverb, TagNoun},
		},
		{
			"unknown capitalized word",
			"Zorblax and Quimby",
			[]Tag{TagNoun, TagConjunction, TagNoun},
		},
		{
			"unknown word after determiner",
			"a wug",
			[]Tag{TagDeterminer, TagNoun},
		},
		{
			"numbers and punctuation",
			"In 1976, 42%",
			[]Tag{TagPreposition, TagOther, TagOther, TagOther},
		},
		{
			"contraction",
			"I don't know",
			[]Tag{TagPronoun, TagVerb, TagAdverb, TagVerb},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tagsOf(tt.text))
		})
	}
}

func TestTaggerOneTagPerToken(t *testing.T) {
	text := "Apple Inc. was founded by Steve Jobs in Cupertino, California in 1976."
	tokens := NewIterTokenizer().Tokenize(text)
	tagged := NewTagger().Tag(tokens)

	require.Len(t, tagged, len(tokens))
	for i, pt := range tagged {
		assert.Equal(t, tokens[i].Word, pt.Word)
		assert.Equal(t, pt.Tag.Type(), pt.Type)
	}
	assert.Equal(t, TagVerb, tagged[3].Tag, "founded")
}

func TestTagType(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{TagNoun, "noun"},
		{TagVerb, "verb"},
		{TagAdjective, "adjective"},
		{TagAdverb, "adverb"},
		{TagPronoun, "pronoun"},
		{TagPreposition, "preposition"},
		{TagConjunction, "conjunction"},
		{TagDeterminer, "determiner"},
		{TagOther, "other"},
		{Tag("XYZ"), "other"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tag.Type())
		})
	}
}

func TestTaggerEmpty(t *testing.T) {
	assert.Empty(t, NewTagger().Tag(nil))
}
