package textlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStopWord(t *testing.T) {
	tests := []struct {
		word string
		lang string
		want bool
	}{
		{"the", "en", true},
		{"The", "en", true},
		{"don't", "en", true},
		{"analysis", "en", false},
		{"goroutine", "en", false},
		{"el", "es", true},
		{"que", "es", true},
		{"perro", "es", false},
		{"der", "de", true},
		{"hund", "de", false},
		{"les", "fr", true},
		{"chat", "fr", false},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStopWord(tt.word, tt.lang))
		})
	}
}

func TestStopWords(t *testing.T) {
	en := StopWords("en")
	assert.Contains(t, en, "the")
	assert.Contains(t, en, "because")

	es := StopWords("es")
	assert.Contains(t, es, "que")
	assert.NotContains(t, es, "the")

	seen := map[string]bool{}
	for _, w := range en {
		assert.False(t, seen[w], "duplicate %q", w)
		seen[w] = true
	}
}
