package textlens

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// punktSentenceTokenizer wraps the punkt model shipped with the sentences
// package. It is built once and shared; Tokenize does not mutate it.
type punktSentenceTokenizer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

var (
	punktOnce sync.Once
	punktTok  *punktSentenceTokenizer
	punktErr  error
)

func newPunktSentenceTokenizer() (*punktSentenceTokenizer, error) {
	punktOnce.Do(func() {
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			punktErr = fmt.Errorf("%w: loading punkt model: %v", ErrInternalFailure, err)
			return
		}
		punktTok = &punktSentenceTokenizer{tokenizer: tok}
	})
	return punktTok, punktErr
}

var blankLineRE = regexp.MustCompile(`\n[ \t\r]*\n`)

// boundaries returns the byte offsets at which a new sentence may begin,
// always starting with 0. Paragraph breaks are hard boundaries.
func (p *punktSentenceTokenizer) boundaries(text string) []int {
	starts := []int{0}
	add := func(pos int) {
		if pos > starts[len(starts)-1] && pos < len(text) {
			starts = append(starts, pos)
		}
	}

	para := 0
	breaks := append(blankLineRE.FindAllStringIndex(text, -1), []int{len(text), len(text)})
	for _, br := range breaks {
		chunk := text[para:br[0]]
		cursor := 0
		for _, s := range p.tokenizer.Tokenize(chunk) {
			trimmed := strings.TrimSpace(s.Text)
			if trimmed == "" {
				continue
			}
			idx := strings.Index(chunk[cursor:], trimmed)
			if idx < 0 {
				continue
			}
			add(para + cursor + idx)
			cursor += idx + len(trimmed)
		}
		add(br[1])
		para = br[1]
	}
	return starts
}

// segment partitions tokens into sentences using the punkt boundaries, then
// repairs splits that punkt makes after abbreviations and initials.
func segment(text string, tokens []Token) ([]Sentence, error) {
	if len(tokens) == 0 {
		return []Sentence{}, nil
	}

	punkt, err := newPunktSentenceTokenizer()
	if err != nil {
		return nil, err
	}
	starts := punkt.boundaries(text)

	var groups [][]Token
	b := 0
	for _, tok := range tokens {
		advanced := false
		for b+1 < len(starts) && tok.Start >= starts[b+1] {
			b++
			advanced = true
		}
		if advanced || len(groups) == 0 {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], tok)
	}

	groups = repairSplits(text, groups)

	sents := make([]Sentence, 0, len(groups))
	for _, g := range groups {
		start, end := g[0].Start, g[len(g)-1].End
		sents = append(sents, Sentence{
			Text:   text[start:end],
			Start:  start,
			End:    end,
			Tokens: g,
		})
	}
	return sents, nil
}

var initialRE = regexp.MustCompile(`^[A-Z]\.$`)

func repairSplits(text string, groups [][]Token) [][]Token {
	out := groups[:1]
	for _, g := range groups[1:] {
		prev := out[len(out)-1]
		last := prev[len(prev)-1].Word
		next := g[0].Word
		if shouldJoin(text, prev[len(prev)-1], g[0], last, next) {
			out[len(out)-1] = append(prev, g...)
			continue
		}
		out = append(out, g)
	}
	return out
}

func shouldJoin(text string, last, first Token, lastWord, nextWord string) bool {
	// Paragraph breaks are never joined.
	if blankLineRE.MatchString(text[last.End:first.Start]) {
		return false
	}
	if initialRE.MatchString(lastWord) {
		return true
	}
	if isAbbreviation(lastWord) {
		r, _ := utf8.DecodeRuneInString(nextWord)
		return unicode.IsLower(r) || unicode.IsDigit(r)
	}
	return false
}
