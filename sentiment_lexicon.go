package textlens

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SentimentLexicon manages sentiment word lists.
//
// A lexicon is read-only once an Analyzer holds it; the Add* methods are
// meant for setup before the first analysis.
type SentimentLexicon struct {
	words     map[string]LexiconEntry
	modifiers map[string]float64
	negations map[string]bool
}

// LexiconEntry represents a word's sentiment information
type LexiconEntry struct {
	Word       string
	Sentiment  float64 // -1 to 1
	Confidence float64 // 0 to 1
	Domain     string
}

// ExternalLexicon represents the JSON structure for external lexicon files
type ExternalLexicon struct {
	Languages map[string]LanguageLexicon `json:"languages"`
}

// LanguageLexicon contains all word categories for a specific language
type LanguageLexicon struct {
	Words        []WordEntry     `json:"words,omitempty"`
	Modifiers    []ModifierEntry `json:"modifiers,omitempty"`
	Negations    []string        `json:"negations,omitempty"`
	Positive     []WordEntry     `json:"positive,omitempty"`
	Negative     []WordEntry     `json:"negative,omitempty"`
	Intensifiers []string        `json:"intensifiers,omitempty"`
	Diminishers  []string        `json:"diminishers,omitempty"`
}

// WordEntry represents a sentiment word in JSON format
type WordEntry struct {
	Word       string  `json:"word"`
	Sentiment  float64 `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Domain     string  `json:"domain,omitempty"`
}

// ModifierEntry represents a modifier word in JSON format. Factor is added
// to 1 and multiplied into the modified word's score.
type ModifierEntry struct {
	Word   string  `json:"word"`
	Factor float64 `json:"factor"`
}

// Default strengths for external intensifier and diminisher lists.
const (
	defaultIntensifier = 0.5
	defaultDiminisher  = -0.5
)

// NewSentimentLexicon returns the built-in English lexicon.
func NewSentimentLexicon() *SentimentLexicon {
	return &SentimentLexicon{
		words:     englishSentimentWords(),
		modifiers: englishModifiers(),
		negations: englishNegations(),
	}
}

// LoadSentimentLexicon returns the built-in lexicon merged with the
// external JSON lexicon at path. An empty path skips the file.
func LoadSentimentLexicon(path string) (*SentimentLexicon, error) {
	lexicon := NewSentimentLexicon()
	if path == "" {
		return lexicon, nil
	}
	if err := lexicon.LoadExternalLexicon(path); err != nil {
		return nil, fmt.Errorf("failed to load external lexicon: %w", err)
	}
	return lexicon, nil
}

// LoadExternalLexicon loads and merges the "english" (or "en") section of
// an external lexicon file.
func (sl *SentimentLexicon) LoadExternalLexicon(filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("error reading lexicon file: %w", err)
	}

	var external ExternalLexicon
	if err := json.Unmarshal(data, &external); err != nil {
		return fmt.Errorf("error parsing lexicon JSON: %w", err)
	}

	for _, key := range []string{"english", "en"} {
		if langData, exists := external.Languages[key]; exists {
			sl.mergeLanguageData(langData)
		}
	}
	return nil
}

// externalConfidence treats a missing confidence as full confidence.
func externalConfidence(c float64) float64 {
	if c <= 0 {
		return 1
	}
	return clamp(c, 0, 1)
}

func (sl *SentimentLexicon) mergeLanguageData(data LanguageLexicon) {
	for _, group := range [][]WordEntry{data.Words, data.Positive, data.Negative} {
		for _, entry := range group {
			sl.words[strings.ToLower(entry.Word)] = LexiconEntry{
				Word:       entry.Word,
				Sentiment:  clamp(entry.Sentiment, -1, 1),
				Confidence: externalConfidence(entry.Confidence),
				Domain:     entry.Domain,
			}
		}
	}

	for _, modifier := range data.Modifiers {
		sl.modifiers[strings.ToLower(modifier.Word)] = modifier.Factor
	}
	for _, intensifier := range data.Intensifiers {
		sl.modifiers[strings.ToLower(intensifier)] = defaultIntensifier
	}
	for _, diminisher := range data.Diminishers {
		sl.modifiers[strings.ToLower(diminisher)] = defaultDiminisher
	}
	for _, negation := range data.Negations {
		sl.negations[strings.ToLower(negation)] = true
	}
}

func englishSentimentWords() map[string]LexiconEntry {
	words := make(map[string]LexiconEntry, 256)
	add := func(sentiment, confidence float64, list string) {
		for _, w := range strings.Fields(list) {
			words[w] = LexiconEntry{Word: w, Sentiment: sentiment, Confidence: confidence}
		}
	}

	// Strong positive
	add(0.9, 0.95, `excellent outstanding magnificent exceptional`)
	add(0.95, 0.95, `perfect`)
	add(0.85, 0.95, `amazing wonderful fantastic brilliant superb best
		delightful marvelous marvellous phenomenal spectacular`)

	// Moderate positive
	add(0.8, 0.9, `love loved loves awesome thrilled adore`)
	add(0.75, 0.9, `great beautiful impressive`)
	add(0.7, 0.9, `happy glad joy joyful excited exciting delighted`)
	add(0.65, 0.9, `enjoy enjoyed enjoys fun success successful`)
	add(0.6, 0.9, `good pleasant positive pleased recommend recommended
		helpful useful friendly win wins won winning reliable`)
	add(0.5, 0.85, `nice like liked likes better interesting hope
		hopeful improve improved improvement calm comfortable`)

	// Mild positive
	add(0.4, 0.8, `decent satisfactory solid fair`)
	add(0.3, 0.75, `fine`)
	add(0.2, 0.7, `okay ok`)

	// Strong negative
	add(-0.9, 0.95, `terrible disgusting appalling atrocious`)
	add(-0.95, 0.95, `abysmal`)
	add(-0.85, 0.95, `awful horrible dreadful worst horrendous pathetic`)

	// Moderate negative
	add(-0.8, 0.9, `hate hated hates furious disaster`)
	add(-0.75, 0.9, `ugly failure angry miserable broken`)
	add(-0.7, 0.9, `sad disappointing disappointed fail failed fails
		upset unhappy painful`)
	add(-0.65, 0.9, `poor annoying annoyed useless`)
	add(-0.6, 0.85, `bad wrong negative boring problem problems worried
		lose lost losing loss difficult`)
	add(-0.5, 0.85, `worse dislike unfortunately mediocre confusing slowly`)

	// Context-dependent
	add(-0.3, 0.6, `cheap slow`)
	add(0.3, 0.6, `fast easy`)
	add(-0.2, 0.5, `hard old`)
	add(0.2, 0.5, `new`)
	add(0.1, 0.5, `simple`)
	add(-0.1, 0.4, `complex`)

	return words
}

func englishModifiers() map[string]float64 {
	return map[string]float64{
		// Intensifiers
		"very":         0.3,
		"extremely":    0.5,
		"absolutely":   0.5,
		"totally":      0.4,
		"really":       0.3,
		"so":           0.3,
		"quite":        0.2,
		"incredibly":   0.5,
		"remarkably":   0.4,
		"particularly": 0.3,
		"especially":   0.3,
		"super":        0.4,
		"utterly":      0.5,
		"completely":   0.4,
		"thoroughly":   0.4,
		"highly":       0.4,
		"truly":        0.3,

		// Diminishers
		"slightly":   -0.3,
		"somewhat":   -0.3,
		"rather":     -0.2,
		"fairly":     -0.1,
		"marginally": -0.4,
		"barely":     -0.5,
		"hardly":     -0.5,
		"scarcely":   -0.5,
		"a bit":      -0.2,
		"a little":   -0.2,
		"kind of":    -0.3,
		"sort of":    -0.3,
	}
}

func englishNegations() map[string]bool {
	return map[string]bool{
		"not":       true,
		"no":        true,
		"never":     true,
		"neither":   true,
		"nor":       true,
		"cannot":    true,
		"n't":       true,
		"n’t":       true,
		"can't":     true,
		"won't":     true,
		"don't":     true,
		"doesn't":   true,
		"didn't":    true,
		"isn't":     true,
		"aren't":    true,
		"wasn't":    true,
		"weren't":   true,
		"hasn't":    true,
		"haven't":   true,
		"hadn't":    true,
		"wouldn't":  true,
		"shouldn't": true,
		"couldn't":  true,
		"without":   true,
		"nobody":    true,
		"nothing":   true,
		"nowhere":   true,
		"none":      true,
	}
}

// GetSentiment returns sentiment score for a word
func (sl *SentimentLexicon) GetSentiment(word string) float64 {
	if entry, exists := sl.lookup(word); exists {
		return entry.Sentiment
	}
	return 0.0
}

// GetConfidence returns confidence for a word's sentiment
func (sl *SentimentLexicon) GetConfidence(word string) float64 {
	if entry, exists := sl.lookup(word); exists {
		return entry.Confidence
	}
	return 0.0
}

func (sl *SentimentLexicon) lookup(word string) (LexiconEntry, bool) {
	if entry, exists := sl.words[word]; exists {
		return entry, true
	}
	entry, exists := sl.words[strings.ToLower(word)]
	return entry, exists
}

// IsNegation checks if word is a negation
func (sl *SentimentLexicon) IsNegation(word string) bool {
	return sl.negations[word] || sl.negations[strings.ToLower(word)]
}

// GetModifierStrength returns modifier strength
func (sl *SentimentLexicon) GetModifierStrength(word string) float64 {
	if strength, exists := sl.modifiers[word]; exists {
		return strength
	}
	return sl.modifiers[strings.ToLower(word)]
}

// AddCustomWord allows adding domain-specific words
func (sl *SentimentLexicon) AddCustomWord(word string, sentiment, confidence float64) {
	sl.words[strings.ToLower(word)] = LexiconEntry{
		Word:       word,
		Sentiment:  clamp(sentiment, -1, 1),
		Confidence: clamp(confidence, 0, 1),
		Domain:     "custom",
	}
}

// AddCustomModifier adds a custom modifier
func (sl *SentimentLexicon) AddCustomModifier(word string, strength float64) {
	sl.modifiers[strings.ToLower(word)] = strength
}

// AddCustomNegation adds a custom negation word
func (sl *SentimentLexicon) AddCustomNegation(word string) {
	sl.negations[strings.ToLower(word)] = true
}

// GetLexiconSize returns the number of words in the lexicon
func (sl *SentimentLexicon) GetLexiconSize() int {
	return len(sl.words)
}

// HasWord checks if a word exists in the lexicon
func (sl *SentimentLexicon) HasWord(word string) bool {
	_, exists := sl.lookup(word)
	return exists
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
