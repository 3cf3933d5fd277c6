package textlens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.SummarySentenceCount)
	assert.Equal(t, 5, cfg.KeywordCount)
	assert.Equal(t, 100000, cfg.MaxInputLength)
	assert.Equal(t, AllEntityCategories(), cfg.EntityCategories)
	assert.Equal(t, SupportedLanguages(), cfg.LanguageProfiles)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero summary count", func(c *Config) { c.SummarySentenceCount = 0 }},
		{"negative keyword count", func(c *Config) { c.KeywordCount = -1 }},
		{"zero max length", func(c *Config) { c.MaxInputLength = 0 }},
		{"negative budget", func(c *Config) { c.SummaryCharBudget = -5 }},
		{"unknown category", func(c *Config) { c.EntityCategories = []EntityCategory{"weapon"} }},
		{"unknown language", func(c *Config) { c.LanguageProfiles = []string{"klingon"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	t.Run("empty lists are valid", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EntityCategories = nil
		cfg.LanguageProfiles = nil
		assert.NoError(t, cfg.Validate())
	})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "textlens.yaml", `
summarySentenceCount: 2
keywordCount: 8
entityCategories: [person, location]
languageProfiles: [en, fr]
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.SummarySentenceCount)
		assert.Equal(t, 8, cfg.KeywordCount)
		assert.Equal(t, 100000, cfg.MaxInputLength, "unset keys keep defaults")
		assert.Equal(t, []EntityCategory{PersonEntity, LocationEntity}, cfg.EntityCategories)
		assert.Equal(t, []string{"en", "fr"}, cfg.LanguageProfiles)
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "textlens.json", `{"maxInputLength": 500, "summaryCharBudget": 200}`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 500, cfg.MaxInputLength)
		assert.Equal(t, 200, cfg.SummaryCharBudget)
	})

	t.Run("no file", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "textlens.toml", "keywordCount = 3"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "bad.yaml", "keywordCount: 0\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("TEXTLENS_KEYWORD_COUNT", "9")
		t.Setenv("TEXTLENS_ENTITY_CATEGORIES", "Money, percent")
		cfg, err := LoadConfig(writeFile(t, "textlens.yml", "keywordCount: 4\n"))
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.KeywordCount)
		assert.Equal(t, []EntityCategory{MoneyEntity, PercentEntity}, cfg.EntityCategories)
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TEXTLENS_SUMMARY_SENTENCE_COUNT": " 4 ",
		"TEXTLENS_MAX_INPUT_LENGTH":       "2048",
		"TEXTLENS_LANGUAGE_PROFILES":      "EN,de,,",
		"TEXTLENS_SENTIMENT_LEXICON_PATH": "/tmp/lexicon.json",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := DefaultConfig()
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, 4, cfg.SummarySentenceCount)
	assert.Equal(t, 2048, cfg.MaxInputLength)
	assert.Equal(t, []string{"en", "de"}, cfg.LanguageProfiles)
	assert.Equal(t, "/tmp/lexicon.json", cfg.SentimentLexiconPath)

	env["TEXTLENS_KEYWORD_COUNT"] = "many"
	assert.ErrorIs(t, cfg.applyEnv(lookup), ErrInvalidConfig)
}
