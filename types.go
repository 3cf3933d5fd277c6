package textlens

import (
	"time"
)

// A Token represents an individual token of text such as a word or punctuation
// symbol.
//
// Start and End are byte offsets into the analyzed text, so that
// text[Start:End] == Word always holds.
type Token struct {
	Word  string `json:"word"`  // The token's actual content.
	Start int    `json:"start"` // Start position in original text
	End   int    `json:"end"`   // End position in original text
}

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text   string  `json:"text"`  // The sentence's text.
	Start  int     `json:"start"` // Start position in original text
	End    int     `json:"end"`   // End position in original text
	Tokens []Token `json:"tokens"`
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// Tag is a part-of-speech tag drawn from a fixed, coarse tag set.
type Tag string

const (
	TagNoun        Tag = "NN"
	TagVerb        Tag = "VB"
	TagAdjective   Tag = "JJ"
	TagAdverb      Tag = "RB"
	TagPronoun     Tag = "PRP"
	TagPreposition Tag = "IN"
	TagConjunction Tag = "CC"
	TagDeterminer  Tag = "DT"
	TagOther       Tag = "OTHER"
)

var tagTypes = map[Tag]string{
	TagNoun:        "noun",
	TagVerb:        "verb",
	TagAdjective:   "adjective",
	TagAdverb:      "adverb",
	TagPronoun:     "pronoun",
	TagPreposition: "preposition",
	TagConjunction: "conjunction",
	TagDeterminer:  "determiner",
	TagOther:       "other",
}

// Type returns the human-readable category of the tag.
func (t Tag) Type() string {
	if name, ok := tagTypes[t]; ok {
		return name
	}
	return "other"
}

// A POSTag pairs a token's text with its part-of-speech tag.
type POSTag struct {
	Word string `json:"word"`
	Tag  Tag    `json:"tag"`
	Type string `json:"type"`
}

// EntityCategory represents the category of a named entity.
type EntityCategory string

const (
	PersonEntity       EntityCategory = "person"
	OrganizationEntity EntityCategory = "organization"
	LocationEntity     EntityCategory = "location"
	DateEntity         EntityCategory = "date"
	TimeEntity         EntityCategory = "time"
	MoneyEntity        EntityCategory = "money"
	PercentEntity      EntityCategory = "percent"
	OtherEntity        EntityCategory = "other"
)

// AllEntityCategories lists every category the recognizer can emit.
func AllEntityCategories() []EntityCategory {
	return []EntityCategory{
		PersonEntity, OrganizationEntity, LocationEntity,
		DateEntity, TimeEntity, MoneyEntity, PercentEntity,
	}
}

// An EntityTag represents an individual named-entity span.
type EntityTag struct {
	Word   string         `json:"word"`   // The entity's actual content.
	Entity EntityCategory `json:"entity"` // The entity's category.
	Start  int            `json:"start"`  // Start position in original text
	End    int            `json:"end"`    // End position in original text
}

// A SyntaxNode is one node of a dependency tree.
type SyntaxNode struct {
	Word     string       `json:"word"`
	Tag      Tag          `json:"tag"`
	Relation string       `json:"relation,omitempty"`
	Children []SyntaxNode `json:"children"`
}

// SentimentScore represents the sentiment analysis results
type SentimentScore struct {
	Score       float64  `json:"score"`       // -1.0 (negative) to 1.0 (positive)
	Comparative float64  `json:"comparative"` // Score divided by token count
	Positive    []string `json:"positive"`
	Negative    []string `json:"negative"`
	Label       string   `json:"label"` // Positive, Neutral or Negative
}

// ReadabilityLevel is a qualitative reading difficulty.
type ReadabilityLevel string

const (
	Elementary   ReadabilityLevel = "Elementary"
	Intermediate ReadabilityLevel = "Intermediate"
	Advanced     ReadabilityLevel = "Advanced"
)

// ReadabilityInfo holds readability statistics for a text.
type ReadabilityInfo struct {
	Score             float64          `json:"score"`
	Level             ReadabilityLevel `json:"level"`
	AvgSentenceLength float64          `json:"avgSentenceLength"`
	AvgWordLength     float64          `json:"avgWordLength"`
}

// LanguageDetection is the detected dominant language of a text.
type LanguageDetection struct {
	Language   string  `json:"language"`
	Code       string  `json:"code"`
	Confidence float64 `json:"confidence"`
}

// AnalysisResult aggregates every annotation produced for one input text.
//
// Offsets in Tokens, Sentences and Entities index into Text exactly.
type AnalysisResult struct {
	ID          string            `json:"id"`
	Text        string            `json:"text"`
	Timestamp   time.Time         `json:"timestamp"`
	Tokens      []Token           `json:"tokens"`
	Sentences   []Sentence        `json:"sentences"`
	POSTagging  []POSTag          `json:"posTagging"`
	Entities    []EntityTag       `json:"entities"`
	Syntax      SyntaxNode        `json:"syntax"`
	Sentiment   SentimentScore    `json:"sentiment"`
	Summary     string            `json:"summary"`
	Keywords    []string          `json:"keywords"`
	Readability ReadabilityInfo   `json:"readability"`
	Language    LanguageDetection `json:"language"`
}

// A Segment is a contiguous piece of an analyzed text, either plain or
// covered by a single entity.
type Segment struct {
	Text   string         `json:"text"`
	Start  int            `json:"start"`
	End    int            `json:"end"`
	Entity EntityCategory `json:"entity,omitempty"`
}

// Segments splits the analyzed text into alternating plain and entity
// segments, in text order. Concatenating the segments' text yields r.Text.
func (r *AnalysisResult) Segments() []Segment {
	var segs []Segment
	last := 0
	for _, ent := range r.Entities {
		if ent.Start > last {
			segs = append(segs, Segment{Text: r.Text[last:ent.Start], Start: last, End: ent.Start})
		}
		segs = append(segs, Segment{Text: r.Text[ent.Start:ent.End], Start: ent.Start, End: ent.End, Entity: ent.Entity})
		last = ent.End
	}
	if last < len(r.Text) {
		segs = append(segs, Segment{Text: r.Text[last:], Start: last, End: len(r.Text)})
	}
	return segs
}
