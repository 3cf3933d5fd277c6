package textlens

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenTester func(string) bool

// A Tokenizer splits text into tokens whose offsets index the input exactly.
type Tokenizer interface {
	Tokenize(string) []Token
}

// iterTokenizer splits text into words on whitespace runs, then peels
// prefixes, suffixes and contractions off each word.
type iterTokenizer struct {
	specialRE      *regexp.Regexp
	contractions   []string
	suffixes       []string
	prefixes       []string
	emoticons      map[string]int
	isUnsplittable TokenTester
}

type TokenizerOptFunc func(*iterTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token is splittable or not.
func UsingIsUnsplittable(x TokenTester) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.isUnsplittable = x
	}
}

// Use the provided special regex for unsplittable tokens.
func UsingSpecialRE(x *regexp.Regexp) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.specialRE = x
	}
}

// Use the provided suffixes.
func UsingSuffixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.suffixes = x
	}
}

// Use the provided prefixes.
func UsingPrefixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.prefixes = x
	}
}

// Use the provided map of emoticons.
func UsingEmoticons(x map[string]int) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.emoticons = x
	}
}

// Use the provided contractions.
func UsingContractions(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.contractions = x
	}
}

// NewIterTokenizer builds the default tokenizer.
func NewIterTokenizer(opts ...TokenizerOptFunc) *iterTokenizer {
	tok := new(iterTokenizer)

	tok.contractions = contractions
	tok.emoticons = emoticons
	tok.isUnsplittable = isAbbreviation
	tok.prefixes = prefixes
	tok.specialRE = internalRE
	tok.suffixes = suffixes

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	return tok
}

func (t *iterTokenizer) isSpecial(token string) bool {
	_, found := t.emoticons[token]
	return found || t.specialRE.MatchString(token) || t.isUnsplittable(token)
}

// doSplit breaks one whitespace-free span into tokens. offset is the span's
// byte position in the original text.
func (t *iterTokenizer) doSplit(span string, offset int) []Token {
	var tokens, suffs []Token

	for span != "" {
		if t.isSpecial(span) {
			// Emoticons, abbreviations and the like are kept whole.
			tokens = append(tokens, Token{Word: span, Start: offset, End: offset + len(span)})
			break
		}
		if p := matchPrefix(span, t.prefixes); p != "" {
			// $100 -> [$, 100].
			tokens = append(tokens, Token{Word: p, Start: offset, End: offset + len(p)})
			span = span[len(p):]
			offset += len(p)
		} else if idx := contractionIndex(span, t.contractions); idx > 0 {
			// they'll -> [they, 'll]; don't -> [do, n't].
			tokens = append(tokens, Token{Word: span[:idx], Start: offset, End: offset + idx})
			span = span[idx:]
			offset += idx
			tokens = append(tokens, Token{Word: span, Start: offset, End: offset + len(span)})
			break
		} else if s := matchSuffix(span, t.suffixes); s != "" {
			// Well) -> [Well, )].
			end := offset + len(span)
			suffs = append([]Token{{Word: s, Start: end - len(s), End: end}}, suffs...)
			span = span[:len(span)-len(s)]
		} else {
			tokens = append(tokens, Token{Word: span, Start: offset, End: offset + len(span)})
			break
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits text into tokens with byte offsets into text. The text is
// never rewritten, so text[tok.Start:tok.End] == tok.Word for every token.
func (t *iterTokenizer) Tokenize(text string) []Token {
	var tokens []Token

	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, t.doSplit(text[start:i], start)...)
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, t.doSplit(text[start:], start)...)
	}

	return tokens
}

func matchPrefix(s string, prefixes []string) string {
	for _, p := range prefixes {
		if len(s) > len(p) && strings.HasPrefix(s, p) {
			return p
		}
	}
	return ""
}

func matchSuffix(s string, suffixes []string) string {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return suf
		}
	}
	return ""
}

// contractionIndex returns where a trailing contraction starts, or -1.
// Matching is ASCII case-insensitive so byte positions stay valid.
func contractionIndex(s string, cases []string) int {
	for _, c := range cases {
		if len(s) <= len(c) {
			continue
		}
		idx := len(s) - len(c)
		if strings.EqualFold(s[idx:], c) {
			return idx
		}
	}
	return -1
}

func isAbbreviation(token string) bool {
	return abbreviations[strings.ToLower(token)]
}

// isWordToken reports whether a token carries at least one letter or digit.
func isWordToken(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// hasLetter reports whether word contains a letter.
func hasLetter(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// isCapitalized reports whether word starts with an upper-case letter.
func isCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$|^\d+(?:[.,:]\d+)+%?$`)

var abbreviations = map[string]bool{
	"corp.": true, "inc.": true, "ltd.": true, "co.": true, "llc.": true,
	"prof.": true, "sept.": true, "dept.": true, "univ.": true, "assn.": true,
	"bros.": true, "gov.": true, "sen.": true, "rep.": true, "gen.": true,
	"capt.": true, "sgt.": true, "col.": true, "lt.": true, "etc.": true,
	"approx.": true, "est.": true, "no.": true, "vol.": true, "vs.": true,
	"mrs.": true, "messrs.": true, "jr.": true, "sr.": true, "ave.": true,
	"blvd.": true, "rd.": true, "st.": true, "mt.": true, "ft.": true,
}

var contractions = []string{
	"'ll", "'s", "'re", "'m", "'ve", "'d", "n't",
	"’ll", "’s", "’re", "’m", "’ve", "’d", "n’t",
}
var suffixes = []string{
	",", ")", `"`, "]", "!", ";", ".", "?", ":", "'", "}",
	"”", "’", "…", "»",
}
var prefixes = []string{
	"$", "(", `"`, "[", "{", "“", "‘", "«", "¿", "¡",
	"€", "£", "¥",
}
var emoticons = map[string]int{
	"(-8":         1,
	"(-;":         1,
	"(-_-)":       1,
	"(._.)":       1,
	"(:":          1,
	"(=":          1,
	"(o:":         1,
	"(¬_¬)":       1,
	"(ಠ_ಠ)":       1,
	"(╯°□°）╯︵┻━┻": 1,
	"-__-":        1,
	"8-)":         1,
	"8-D":         1,
	"8D":          1,
	":(":          1,
	":((":         1,
	":(((":        1,
	":()":         1,
	":)":          1,
	":))":         1,
	":)))":        1,
	":-)":         1,
	":-))":        1,
	":-)))":       1,
	":-*":         1,
	":-/":         1,
	":-X":         1,
	":-]":         1,
	":-o":         1,
	":-p":         1,
	":-x":         1,
	":-|":         1,
	":-}":         1,
	":0":          1,
	":3":          1,
	":P":          1,
	":]":          1,
	":`(":         1,
	":`)":         1,
	":`-(":        1,
	":o":          1,
	":o)":         1,
	";)":          1,
	";-)":         1,
	"=(":          1,
	"=)":          1,
	"=D":          1,
	"=|":          1,
	"@_@":         1,
	"O.o":         1,
	"O_o":         1,
	"V_V":         1,
	"XDD":         1,
	"[-:":         1,
	"^___^":       1,
	"o_0":         1,
	"o_O":         1,
	"o_o":         1,
	"v_v":         1,
	"xD":          1,
	"xDD":         1,
	"¯\\(ツ)/¯":    1,
}
