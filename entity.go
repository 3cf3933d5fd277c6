package textlens

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// An EntityRecognizer finds non-overlapping named-entity spans.
type EntityRecognizer interface {
	Recognize(text string, tokens []Token) []EntityTag
}

// entityRule produces candidate [start, end) byte spans for one category.
type entityRule struct {
	category EntityCategory
	find     func(text string, tokens []Token) [][2]int
}

type ruleRecognizer struct {
	rules []entityRule
}

// NewEntityRecognizer returns a recognizer limited to the given categories.
// With no categories every rule is enabled.
func NewEntityRecognizer(categories ...EntityCategory) *ruleRecognizer {
	enabled := make(map[EntityCategory]bool)
	for _, c := range categories {
		enabled[c] = true
	}
	rec := &ruleRecognizer{}
	for _, r := range entityRules {
		if len(enabled) == 0 || enabled[r.category] {
			rec.rules = append(rec.rules, r)
		}
	}
	return rec
}

// Rules in priority order. On equal-length overlaps the earlier rule wins.
var entityRules = []entityRule{
	{MoneyEntity, regexFinder(moneyREs)},
	{PercentEntity, regexFinder(percentREs)},
	{TimeEntity, regexFinder(timeREs)},
	{DateEntity, regexFinder(dateREs)},
	{OrganizationEntity, findOrganizations},
	{LocationEntity, gazetteerFinder(locationGazetteer)},
	{PersonEntity, findPersons},
}

const (
	monthFull  = `January|February|March|April|June|July|August|September|October|November|December`
	monthAbbr  = `Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sept|Sep|Oct|Nov|Dec`
	anyMonth   = `(?:` + monthFull + `|May|(?:` + monthAbbr + `)\.?)`
	dayOfMonth = `\d{1,2}(?:st|nd|rd|th)?`
	scale      = `(?:thousand|million|billion|trillion)`
	currencies = `(?:dollars?|euros?|pounds?|yen|cents?|USD|EUR|GBP|JPY)`
)

var moneyREs = []*regexp.Regexp{
	regexp.MustCompile(`[$€£¥]\s?\d+(?:,\d{3})*(?:\.\d+)?(?:\s` + scale + `\b|[kKmMbB]n?\b)?`),
	regexp.MustCompile(`\b\d+(?:,\d{3})*(?:\.\d+)?(?:\s` + scale + `)?\s` + currencies + `\b`),
}

var percentREs = []*regexp.Regexp{
	regexp.MustCompile(`\b\d+(?:[.,]\d+)?\s?%`),
	regexp.MustCompile(`\b\d+(?:[.,]\d+)?\s(?:percent|per cent)\b`),
}

var timeREs = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:[01]?\d|2[0-3]):[0-5]\d(?::[0-5]\d)?(?:\s?(?:[aApP]\.[mM]\.|[aApP][mM]\b))?`),
	regexp.MustCompile(`\b(?:1[0-2]|0?[1-9])\s?(?:[aApP]\.[mM]\.|[aApP][mM]\b)`),
	regexp.MustCompile(`\b(?:1[0-2]|[1-9]|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\so['’]clock\b`),
	regexp.MustCompile(`\b(?:noon|midnight)\b`),
}

var dateREs = []*regexp.Regexp{
	regexp.MustCompile(`\b` + anyMonth + `\s` + dayOfMonth + `(?:,?\s\d{4})?\b`),
	regexp.MustCompile(`\b` + dayOfMonth + `\s(?:of\s)?` + anyMonth + `(?:,?\s\d{4})?\b`),
	regexp.MustCompile(`\b` + anyMonth + `,?\s\d{4}\b`),
	regexp.MustCompile(`\b(?:` + monthFull + `)\b`),
	regexp.MustCompile(`\b\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}\b`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b(?:1[1-9]|20)\d{2}\b`),
	regexp.MustCompile(`\b(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\b`),
	regexp.MustCompile(`\b(?:[Tt]oday|[Tt]omorrow|[Yy]esterday)\b`),
}

func regexFinder(res []*regexp.Regexp) func(string, []Token) [][2]int {
	return func(text string, _ []Token) [][2]int {
		var spans [][2]int
		for _, re := range res {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				spans = append(spans, [2]int{loc[0], loc[1]})
			}
		}
		return spans
	}
}

func gazetteerFinder(g *gazetteer) func(string, []Token) [][2]int {
	return func(_ string, tokens []Token) [][2]int {
		var spans [][2]int
		for i := range tokens {
			if n := g.match(tokens, i); n > 0 {
				spans = append(spans, [2]int{tokens[i].Start, tokens[i+n-1].End})
			}
		}
		return spans
	}
}

// isNamePart reports whether a token can be part of a proper name.
func isNamePart(word string) bool {
	if !isCapitalized(word) || !hasLetter(word) {
		return false
	}
	e, ok := posLexicon[strings.ToLower(word)]
	if !ok {
		return true
	}
	switch e.tag {
	case TagDeterminer, TagPronoun, TagPreposition, TagConjunction:
		return false
	}
	return !e.aux
}

func findOrganizations(text string, tokens []Token) [][2]int {
	spans := gazetteerFinder(organizationGazetteer)(text, tokens)

	for j, tok := range tokens {
		// "Acme Widget Corp."
		if orgSuffixes[tok.Word] {
			k := j
			for k > 0 && (isNamePart(tokens[k-1].Word) || tokens[k-1].Word == "&") && !orgSuffixes[tokens[k-1].Word] {
				k--
			}
			for k < j && tokens[k].Word == "&" {
				k++
			}
			if k < j {
				spans = append(spans, [2]int{tokens[k].Start, tok.End})
			}
		}

		// "University of Chicago"
		if orgOfHeads[tok.Word] && j+2 < len(tokens) && tokens[j+1].Word == "of" && isNamePart(tokens[j+2].Word) {
			end := j + 2
			for end+1 < len(tokens) && isNamePart(tokens[end+1].Word) {
				end++
			}
			start := j
			for start > 0 && isNamePart(tokens[start-1].Word) {
				start--
			}
			spans = append(spans, [2]int{tokens[start].Start, tokens[end].End})
		}
	}
	return spans
}

func findPersons(_ string, tokens []Token) [][2]int {
	var spans [][2]int
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		start := -1
		switch {
		case personTitles[tok.Word] && i+1 < len(tokens) && isNamePart(tokens[i+1].Word):
			// The title itself is not part of the name.
			start = i + 1
		case firstNames[tok.Word]:
			start = i
		default:
			continue
		}

		end := start
		for end+1 < len(tokens) && end-start < 2 && isNamePart(tokens[end+1].Word) &&
			!orgSuffixes[tokens[end+1].Word] && !locationGazetteer.contains(tokens[end+1].Word) {
			end++
		}
		spans = append(spans, [2]int{tokens[start].Start, tokens[end].End})
		i = end
	}
	return spans
}

type entityCandidate struct {
	start, end int
	rule       int
	category   EntityCategory
}

// Recognize runs every enabled rule and keeps a non-overlapping subset of
// the candidates. Longer spans win, then the higher-priority rule, then the
// earlier start. The result is sorted by start offset.
func (r *ruleRecognizer) Recognize(text string, tokens []Token) []EntityTag {
	var cands []entityCandidate
	for idx, rule := range r.rules {
		for _, span := range rule.find(text, tokens) {
			start, end, ok := trimSpan(text, span[0], span[1])
			if !ok {
				continue
			}
			cands = append(cands, entityCandidate{start: start, end: end, rule: idx, category: rule.category})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		li, lj := cands[i].end-cands[i].start, cands[j].end-cands[j].start
		if li != lj {
			return li > lj
		}
		if cands[i].rule != cands[j].rule {
			return cands[i].rule < cands[j].rule
		}
		return cands[i].start < cands[j].start
	})

	// taken marks the bytes covered by kept spans.
	taken := make([]bool, len(text))
	var kept []entityCandidate
	for _, c := range cands {
		if overlapsTaken(taken, c.start, c.end) {
			continue
		}
		for b := c.start; b < c.end; b++ {
			taken[b] = true
		}
		kept = append(kept, c)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].start < kept[j].start })

	entities := make([]EntityTag, 0, len(kept))
	for _, c := range kept {
		entities = append(entities, EntityTag{
			Word:   text[c.start:c.end],
			Entity: c.category,
			Start:  c.start,
			End:    c.end,
		})
	}
	return entities
}

func overlapsTaken(taken []bool, start, end int) bool {
	for b := start; b < end; b++ {
		if taken[b] {
			return true
		}
	}
	return false
}

// trimSpan strips surrounding whitespace and trailing clause punctuation.
// Abbreviation dots ("Inc.", "p.m.") are kept.
func trimSpan(text string, start, end int) (int, int, bool) {
	if start < 0 || end > len(text) || start >= end {
		return 0, 0, false
	}
	span := text[start:end]
	trimmed := strings.TrimLeftFunc(span, unicode.IsSpace)
	start += len(span) - len(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(",;:!?", r)
	})
	end = start + len(trimmed)
	return start, end, start < end
}
