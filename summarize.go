package textlens

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// SummaryOptions controls sentence selection.
type SummaryOptions struct {
	SentenceCount int
	CharBudget    int // 0 means unlimited
}

// Summarize builds an extractive summary. Each sentence is scored by the
// mean document frequency of its content words; the best sentences are
// emitted in their original order, joined with ". " and closed with ".".
// A text with no more sentences than requested is returned unchanged,
// surrounding whitespace included.
func Summarize(text string, sents []Sentence, opts SummaryOptions) string {
	if len(sents) == 0 || opts.SentenceCount <= 0 {
		return ""
	}
	if len(sents) <= opts.SentenceCount {
		return text
	}

	scores := scoreSentences(sents)

	order := make([]int, len(sents))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	var picked []int
	length := 0
	for _, idx := range order {
		if len(picked) == opts.SentenceCount {
			break
		}
		n := len(trimTerminal(sents[idx].Text)) + 2
		if opts.CharBudget > 0 && length+n > opts.CharBudget {
			continue
		}
		picked = append(picked, idx)
		length += n
	}
	if len(picked) == 0 {
		// Nothing fits the budget; the best sentence alone is still better
		// than an empty summary.
		picked = append(picked, order[0])
	}
	sort.Ints(picked)

	parts := make([]string, 0, len(picked))
	for _, idx := range picked {
		if s := trimTerminal(sents[idx].Text); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ". ") + "."
}

func contentWords(tokens []Token) []string {
	var words []string
	for _, tok := range tokens {
		if !hasLetter(tok.Word) {
			continue
		}
		lower := strings.ToLower(tok.Word)
		if IsStopWord(lower, "en") {
			continue
		}
		words = append(words, lower)
	}
	return words
}

// scoreSentences returns one score per sentence: the dot product of the
// sentence's term counts with the document's max-normalized term
// frequencies, divided by the sentence's content word count.
func scoreSentences(sents []Sentence) []float64 {
	vocab := make(map[string]int)
	perSent := make([][]string, len(sents))
	for i, s := range sents {
		perSent[i] = contentWords(s.Tokens)
		for _, w := range perSent[i] {
			if _, ok := vocab[w]; !ok {
				vocab[w] = len(vocab)
			}
		}
	}

	scores := make([]float64, len(sents))
	if len(vocab) == 0 {
		return scores
	}

	doc := mat.NewVecDense(len(vocab), nil)
	for _, words := range perSent {
		for _, w := range words {
			doc.SetVec(vocab[w], doc.AtVec(vocab[w])+1)
		}
	}
	if m := mat.Max(doc); m > 0 {
		doc.ScaleVec(1/m, doc)
	}

	sent := mat.NewVecDense(len(vocab), nil)
	for i, words := range perSent {
		if len(words) == 0 {
			continue
		}
		sent.Zero()
		for _, w := range words {
			sent.SetVec(vocab[w], sent.AtVec(vocab[w])+1)
		}
		scores[i] = mat.Dot(sent, doc) / float64(len(words))
	}
	return scores
}

// trimTerminal removes surrounding space and trailing sentence punctuation.
func trimTerminal(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), ".!?…"))
}
