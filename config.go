package textlens

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Config holds the options recognized by the analysis engine.
type Config struct {
	SummarySentenceCount int              `yaml:"summarySentenceCount" json:"summarySentenceCount"`
	SummaryCharBudget    int              `yaml:"summaryCharBudget" json:"summaryCharBudget"` // 0 means no budget
	KeywordCount         int              `yaml:"keywordCount" json:"keywordCount"`
	MaxInputLength       int              `yaml:"maxInputLength" json:"maxInputLength"` // in characters
	EntityCategories     []EntityCategory `yaml:"entityCategories" json:"entityCategories"`
	LanguageProfiles     []string         `yaml:"languageProfiles" json:"languageProfiles"` // ISO 639-1 codes
	SentimentLexiconPath string           `yaml:"sentimentLexiconPath" json:"sentimentLexiconPath"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		SummarySentenceCount: 3,
		KeywordCount:         5,
		MaxInputLength:       100000,
		EntityCategories:     AllEntityCategories(),
		LanguageProfiles:     SupportedLanguages(),
	}
}

// Validate reports whether every option is in range.
func (c Config) Validate() error {
	switch {
	case c.SummarySentenceCount <= 0:
		return fmt.Errorf("%w: summarySentenceCount must be positive, got %d", ErrInvalidConfig, c.SummarySentenceCount)
	case c.KeywordCount <= 0:
		return fmt.Errorf("%w: keywordCount must be positive, got %d", ErrInvalidConfig, c.KeywordCount)
	case c.MaxInputLength <= 0:
		return fmt.Errorf("%w: maxInputLength must be positive, got %d", ErrInvalidConfig, c.MaxInputLength)
	case c.SummaryCharBudget < 0:
		return fmt.Errorf("%w: summaryCharBudget must not be negative, got %d", ErrInvalidConfig, c.SummaryCharBudget)
	}
	known := map[EntityCategory]bool{}
	for _, cat := range AllEntityCategories() {
		known[cat] = true
	}
	for _, cat := range c.EntityCategories {
		if !known[cat] {
			return fmt.Errorf("%w: unknown entity category %q", ErrInvalidConfig, cat)
		}
	}
	for _, code := range c.LanguageProfiles {
		if _, ok := languageProfiles[code]; !ok {
			return fmt.Errorf("%w: unsupported language profile %q", ErrInvalidConfig, code)
		}
	}
	return nil
}

// LoadConfig reads a YAML or JSON configuration file on top of the
// defaults, then applies TEXTLENS_* environment overrides. An empty path
// skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse YAML config file %s: %w", path, err)
			}
		case ".json":
			if err := json.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse JSON config file %s: %w", path, err)
			}
		default:
			return cfg, fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml, .json)", ext)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

const envPrefix = "TEXTLENS_"

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"SUMMARY_SENTENCE_COUNT", &c.SummarySentenceCount},
		{"SUMMARY_CHAR_BUDGET", &c.SummaryCharBudget},
		{"KEYWORD_COUNT", &c.KeywordCount},
		{"MAX_INPUT_LENGTH", &c.MaxInputLength},
	}
	for _, f := range ints {
		raw, ok := lookup(envPrefix + f.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %s%s: %v", ErrInvalidConfig, envPrefix, f.name, err)
		}
		*f.dst = n
	}

	if raw, ok := lookup(envPrefix + "ENTITY_CATEGORIES"); ok {
		c.EntityCategories = nil
		for _, v := range splitList(raw) {
			c.EntityCategories = append(c.EntityCategories, EntityCategory(strings.ToLower(v)))
		}
	}
	if raw, ok := lookup(envPrefix + "LANGUAGE_PROFILES"); ok {
		c.LanguageProfiles = nil
		for _, v := range splitList(raw) {
			c.LanguageProfiles = append(c.LanguageProfiles, strings.ToLower(v))
		}
	}
	if raw, ok := lookup(envPrefix + "SENTIMENT_LEXICON_PATH"); ok {
		c.SentimentLexiconPath = strings.TrimSpace(raw)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
