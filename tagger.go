package textlens

import (
	"regexp"
	"strings"
)

// A Tagger assigns one part-of-speech tag per token.
type Tagger interface {
	Tag(tokens []Token) []POSTag
}

// ruleTagger tags tokens in two passes. The first pass resolves each word
// on its own from the lexicon and suffix rules; the second uses the left
// context to settle ambiguous and unknown words.
type ruleTagger struct {
	lexicon map[string]lexEntry
}

// NewTagger returns the default rule-based English tagger.
func NewTagger() *ruleTagger {
	return &ruleTagger{lexicon: posLexicon}
}

type suffixRule struct {
	suffix string
	tag    Tag
}

// Checked in order; the first match wins.
var suffixRules = []suffixRule{
	{"ly", TagAdverb},
	{"ing", TagVerb},
	{"ed", TagVerb},
	{"ize", TagVerb},
	{"ise", TagVerb},
	{"ify", TagVerb},
	{"tion", TagNoun},
	{"sion", TagNoun},
	{"ment", TagNoun},
	{"ness", TagNoun},
	{"ity", TagNoun},
	{"ance", TagNoun},
	{"ence", TagNoun},
	{"ship", TagNoun},
	{"ism", TagNoun},
	{"ist", TagNoun},
	{"ful", TagAdjective},
	{"less", TagAdjective},
	{"ous", TagAdjective},
	{"ive", TagAdjective},
	{"able", TagAdjective},
	{"ible", TagAdjective},
	{"ical", TagAdjective},
	{"ish", TagAdjective},
	{"ic", TagAdjective},
	{"al", TagAdjective},
	{"er", TagNoun},
	{"or", TagNoun},
}

var numeralRE = regexp.MustCompile(`^[+-]?\d[\d.,:/%-]*(?:st|nd|rd|th|s)?$`)

type baseline struct {
	tag   Tag
	alt   Tag
	known bool
}

func (t *ruleTagger) lookup(word string) baseline {
	if !isWordToken(word) || numeralRE.MatchString(word) {
		return baseline{tag: TagOther, known: true}
	}
	lower := strings.ToLower(word)
	if e, ok := t.lexicon[lower]; ok {
		return baseline{tag: e.tag, alt: e.alt, known: true}
	}
	if !hasLetter(word) {
		return baseline{tag: TagOther, known: true}
	}
	for _, r := range suffixRules {
		if len(lower) >= len(r.suffix)+3 && strings.HasSuffix(lower, r.suffix) {
			return baseline{tag: r.tag, known: true}
		}
	}
	return baseline{}
}

// Tag returns one POSTag per token, in token order.
func (t *ruleTagger) Tag(tokens []Token) []POSTag {
	base := make([]baseline, len(tokens))
	for i, tok := range tokens {
		base[i] = t.lookup(tok.Word)
	}

	tags := make([]POSTag, len(tokens))
	for i, tok := range tokens {
		prev, prevWord := TagOther, ""
		if i > 0 {
			prev, prevWord = tags[i-1].Tag, strings.ToLower(tokens[i-1].Word)
		}
		b := base[i]

		var tag Tag
		switch {
		case b.known && b.alt == "":
			tag = b.tag
		case b.known:
			tag = resolveAlternate(b, prev, prevWord)
		default:
			tag = guessFromContext(tok.Word, prev, prevWord, base, i)
		}
		tags[i] = POSTag{Word: tok.Word, Tag: tag, Type: tag.Type()}
	}
	return tags
}

func verbContext(prev Tag, prevWord string) bool {
	return prev == TagPronoun || modals[prevWord] || prevWord == "to"
}

func nounContext(prev Tag, prevWord string) bool {
	return prev == TagDeterminer || prev == TagAdjective ||
		(prev == TagPreposition && prevWord != "to")
}

func resolveAlternate(b baseline, prev Tag, prevWord string) Tag {
	switch {
	case verbContext(prev, prevWord):
		if b.alt == TagVerb {
			return TagVerb
		}
		return b.tag
	case nounContext(prev, prevWord):
		if b.alt == TagNoun {
			return TagNoun
		}
		if b.tag == TagVerb {
			return b.alt
		}
	}
	return b.tag
}

func guessFromContext(word string, prev Tag, prevWord string, base []baseline, i int) Tag {
	switch {
	case isCapitalized(word):
		return TagNoun
	case nounContext(prev, prevWord):
		return TagNoun
	case verbContext(prev, prevWord):
		return TagVerb
	case prev == TagNoun && i+1 < len(base) &&
		(base[i+1].tag == TagDeterminer || base[i+1].tag == TagPronoun):
		return TagVerb
	}
	return TagOther
}

// isAuxiliary reports whether word is an auxiliary or modal verb.
func isAuxiliary(word string) bool {
	e, ok := posLexicon[strings.ToLower(word)]
	return ok && e.aux
}
