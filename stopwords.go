package textlens

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// englishStopWordList is the fixed set checked before the stopwords
// library. It covers contraction stems and auxiliaries the library does not
// list.
const englishStopWordList = `a about above after again against all also am
	an and any are aren't as at be because been before being below between both
	but by can cannot could did do does doing don't down during each even ever
	every few for from further get gets got had has have having he her here hers
	herself him himself his how however i if in into is it its itself just let
	like made make many may me might more most much must my myself never no nor
	not now of off on once one only or other ought our ours ourselves out over
	own per put said same say says see seen shall she should since so some
	still such than that the their theirs them themselves then there these they
	this those though through thus to too under until up upon us very via was
	we well were what when where whether which while who whom whose why will
	with within without would yet you your yours yourself yourselves
	ll ve re nt`

var englishStopWords = wordSet(englishStopWordList)

// IsStopWord reports whether word is a stop word in the language with the
// given ISO 639-1 code. Matching is case-insensitive.
func IsStopWord(word, langCode string) bool {
	lower := strings.ToLower(word)
	if langCode == "en" && englishStopWords[lower] {
		return true
	}
	// The library drops stop words from the string it returns.
	return strings.TrimSpace(stopwords.CleanString(lower, langCode, false)) == ""
}

// StopWords lists the known stop words of a language: the function words
// of its detection profile that the stopwords library also rejects, plus
// the fixed English set for "en".
func StopWords(langCode string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}

	if langCode == "en" {
		for _, w := range strings.Fields(englishStopWordList) {
			add(w)
		}
	}
	if p, ok := languageProfiles[langCode]; ok {
		for _, w := range p.functionWords {
			if IsStopWord(w, langCode) {
				add(w)
			}
		}
	}
	return out
}
