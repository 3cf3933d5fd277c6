package textlens

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recognize(r EntityRecognizer, text string) []EntityTag {
	return r.Recognize(text, NewIterTokenizer().Tokenize(text))
}

type span struct {
	word     string
	category EntityCategory
}

func spans(entities []EntityTag) []span {
	out := make([]span, len(entities))
	for i, e := range entities {
		out[i] = span{e.Word, e.Entity}
	}
	return out
}

func TestRecognize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []span
	}{
		{
			"company founding",
			"Apple Inc. was founded by Steve Jobs in Cupertino, California in 1976.",
			[]span{
				{"Apple Inc.", OrganizationEntity},
				{"Steve Jobs", PersonEntity},
				{"Cupertino", LocationEntity},
				{"California", LocationEntity},
				{"1976", DateEntity},
			},
		},
		{
			"numeric expressions",
			"Revenue grew 20% to $5 million on January 5, 2024 at 3:30 pm.",
			[]span{
				{"20%", PercentEntity},
				{"$5 million", MoneyEntity},
				{"January 5, 2024", DateEntity},
				{"3:30 pm", TimeEntity},
			},
		},
		{
			"title is not part of the name",
			"Dr. Jane Goodall spoke.",
			[]span{{"Jane Goodall", PersonEntity}},
		},
		{
			"of complement",
			"She studied at the University of Chicago.",
			[]span{{"University of Chicago", OrganizationEntity}},
		},
		{
			"longest gazetteer entry",
			"I moved to New York City last spring.",
			[]span{{"New York City", LocationEntity}},
		},
		{
			"known organizations",
			"Microsoft and Google compete.",
			[]span{{"Microsoft", OrganizationEntity}, {"Google", OrganizationEntity}},
		},
		{
			"nothing to find",
			"the cat sat on the mat",
			[]span{},
		},
	}

	r := NewEntityRecognizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spans(recognize(r, tt.text)))
		})
	}
}

func TestRecognizeCategoryFilter(t *testing.T) {
	text := "Apple Inc. was founded by Steve Jobs in Cupertino, California in 1976."

	got := spans(recognize(NewEntityRecognizer(PersonEntity), text))
	assert.Equal(t, []span{{"Steve Jobs", PersonEntity}}, got)

	got = spans(recognize(NewEntityRecognizer(LocationEntity, DateEntity), text))
	assert.Equal(t, []span{
		{"Cupertino", LocationEntity},
		{"California", LocationEntity},
		{"1976", DateEntity},
	}, got)
}

func TestRecognizeInvariants(t *testing.T) {
	texts := []string{
		"Apple Inc. was founded by Steve Jobs in Cupertino, California in 1976.",
		"On Monday, March 3rd 2025 at 10:00 a.m., Mr. John Smith of Acme Widget Corp. paid €1,200.50 (about 15 percent).",
		"The New York Times reported that Microsoft bought 12% of a startup in Paris, France for $3bn.",
		"Meet me at noon tomorrow near the Bank of England.",
		"",
	}

	r := NewEntityRecognizer()
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			entities := recognize(r, text)
			last := 0
			for _, e := range entities {
				require.Less(t, e.Start, e.End)
				assert.Equal(t, e.Word, text[e.Start:e.End])
				assert.LessOrEqual(t, last, e.Start, "entities overlap or are out of order")
				last = e.End
			}
		})
	}
}

func TestRecognizeManyEntities(t *testing.T) {
	const n = 20000
	text := strings.Repeat("1999 ", n)

	start := time.Now()
	entities := recognize(NewEntityRecognizer(), text)
	assert.Less(t, time.Since(start), 2*time.Second)

	require.Len(t, entities, n)
	for i, e := range entities {
		assert.Equal(t, DateEntity, e.Entity)
		assert.Equal(t, i*5, e.Start)
	}
}

func TestTrimSpan(t *testing.T) {
	text := " Paris, "
	start, end, ok := trimSpan(text, 0, len(text))
	require.True(t, ok)
	assert.Equal(t, "Paris", text[start:end])

	start, end, ok = trimSpan(text, 5, 8)
	require.True(t, ok)
	assert.Equal(t, "s", text[start:end])

	_, _, ok = trimSpan(text, 6, 8)
	assert.False(t, ok, "punctuation and space only")

	_, _, ok = trimSpan(text, 3, 3)
	assert.False(t, ok)
}
