package textlens

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gonum.org/v1/gonum/mat"
)

// UnknownLanguage is reported when no profile matches.
const UnknownLanguage = "Unknown"

// Texts with fewer letters than this are not classified.
const minDetectLetters = 10

// Score weights for the three detection signals.
const (
	trigramWeight   = 0.5
	stopWordWeight  = 1.0
	diacriticWeight = 1.0
)

type languageProfile struct {
	code          string
	functionWords []string
	trigrams      map[string]float64
	diacritics    map[rune]float64
}

// Profiles in detection order; on equal scores the earlier one wins.
var profileOrder = []string{"en", "es", "fr", "de", "it", "pt", "nl"}

var languageProfiles = map[string]*languageProfile{
	"en": {
		code:          "en",
		functionWords: strings.Fields("the and that have for not with you this but his from they is was are be of to in it"),
		trigrams: map[string]float64{
			"the": 0.15, "and": 0.08, "ing": 0.06, "ion": 0.05, "tio": 0.04,
			"ent": 0.03, "ati": 0.03, "for": 0.03, "her": 0.03, "ter": 0.03,
			"hat": 0.03, "tha": 0.03, "ere": 0.02, "ate": 0.02, "his": 0.02,
			"con": 0.02, "res": 0.02, "ver": 0.02, "all": 0.02, "ons": 0.02,
			"wit": 0.02, "ith": 0.02, "was": 0.02, "thi": 0.02,
		},
		diacritics: map[rune]float64{'w': 3, 'k': 1},
	},
	"es": {
		code:          "es",
		functionWords: strings.Fields("que de no la el es en un por con como para pero más los las una del se lo y"),
		trigrams: map[string]float64{
			"que": 0.12, "ión": 0.08, "ado": 0.06, "con": 0.05, "ent": 0.04,
			"par": 0.04, "est": 0.04, "ara": 0.03, "del": 0.03, "los": 0.03,
			"las": 0.03, "ien": 0.02, "cio": 0.02, "ero": 0.02, "nte": 0.02,
			"aci": 0.02, "sta": 0.02, "era": 0.02, "ada": 0.02, "una": 0.02,
		},
		diacritics: map[rune]float64{'ñ': 10, '¿': 10, '¡': 10, 'á': 3, 'í': 3, 'ó': 3, 'ú': 3, 'j': 2},
	},
	"fr": {
		code:          "fr",
		functionWords: strings.Fields("le la les et un une il est que pour dans ce pas sur des du au avec qui ne"),
		trigrams: map[string]float64{
			"les": 0.10, "ent": 0.08, "ion": 0.07, "des": 0.06, "que": 0.05,
			"ait": 0.04, "lle": 0.04, "eur": 0.04, "our": 0.03, "ant": 0.03,
			"men": 0.03, "tio": 0.02, "res": 0.02, "est": 0.02, "ais": 0.02,
			"par": 0.02, "une": 0.02, "dan": 0.02, "ous": 0.02, "eme": 0.02,
		},
		diacritics: map[rune]float64{'ç': 8, 'è': 6, 'ê': 6, 'à': 4, 'ù': 6, 'œ': 10, 'â': 4, 'î': 4, 'é': 3},
	},
	"de": {
		code:          "de",
		functionWords: strings.Fields("der die und in den von zu das mit sich des auf für ist im dem nicht ein eine ich"),
		trigrams: map[string]float64{
			"der": 0.12, "und": 0.08, "die": 0.07, "ung": 0.06, "ich": 0.05,
			"ein": 0.04, "sch": 0.04, "den": 0.04, "cht": 0.03, "das": 0.03,
			"ten": 0.03, "gen": 0.03, "ver": 0.02, "nde": 0.02, "end": 0.02,
			"ist": 0.02, "auf": 0.02, "mit": 0.02, "eit": 0.02, "ber": 0.02,
		},
		diacritics: map[rune]float64{'ü': 8, 'ö': 8, 'ä': 8, 'ß': 10, 'w': 2, 'k': 2, 'z': 2},
	},
	"it": {
		code:          "it",
		functionWords: strings.Fields("il di che la e per un una non sono del della gli con le lo è nel alla"),
		trigrams: map[string]float64{
			"che": 0.10, "ell": 0.06, "del": 0.05, "lla": 0.05, "ent": 0.04,
			"per": 0.04, "ion": 0.04, "one": 0.04, "are": 0.03, "con": 0.03,
			"ato": 0.03, "zio": 0.03, "non": 0.03, "ere": 0.02, "tti": 0.02,
			"gli": 0.03, "nte": 0.02, "ale": 0.02, "ett": 0.02, "ono": 0.02,
		},
		diacritics: map[rune]float64{'ò': 8, 'ì': 8, 'è': 4, 'à': 3, 'ù': 4},
	},
	"pt": {
		code:          "pt",
		functionWords: strings.Fields("o a de que e do da em um uma para com não os as no na é dos se"),
		trigrams: map[string]float64{
			"que": 0.08, "ent": 0.05, "ção": 0.06, "ade": 0.04, "par": 0.03,
			"est": 0.03, "com": 0.04, "nte": 0.03, "dos": 0.03, "ara": 0.03,
			"ões": 0.04, "men": 0.02, "ido": 0.02, "ica": 0.02, "não": 0.04,
			"uma": 0.03, "ais": 0.02, "ado": 0.02, "das": 0.02, "con": 0.02,
		},
		diacritics: map[rune]float64{'ã': 10, 'õ': 10, 'ç': 4, 'ê': 3, 'á': 2, 'é': 2},
	},
	"nl": {
		code:          "nl",
		functionWords: strings.Fields("de het een en van ik te dat die in is niet op met zijn voor ook er maar"),
		trigrams: map[string]float64{
			"een": 0.10, "van": 0.08, "het": 0.07, "aar": 0.04, "oor": 0.04,
			"ver": 0.03, "den": 0.03, "ijk": 0.04, "and": 0.02, "nde": 0.03,
			"sch": 0.02, "gen": 0.03, "eer": 0.03, "ing": 0.02, "ter": 0.02,
			"erd": 0.02, "met": 0.02, "cht": 0.02, "ond": 0.02, "ijn": 0.03,
		},
		diacritics: map[rune]float64{'ĳ': 10, 'w': 2, 'k': 2, 'z': 1},
	},
}

// SupportedLanguages returns the ISO 639-1 codes of the built-in profiles.
func SupportedLanguages() []string {
	return append([]string(nil), profileOrder...)
}

// LanguageName returns the English display name for an ISO 639-1 code.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return UnknownLanguage
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return UnknownLanguage
}

// LanguageDetector provides language detection capabilities
type LanguageDetector struct {
	profiles []*languageProfile
}

// NewLanguageDetector creates a detector over the given language codes.
// With no codes every built-in profile is used; unknown codes are skipped.
func NewLanguageDetector(codes ...string) *LanguageDetector {
	if len(codes) == 0 {
		codes = profileOrder
	}
	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		want[c] = true
	}
	ld := &LanguageDetector{}
	for _, c := range profileOrder {
		if want[c] {
			ld.profiles = append(ld.profiles, languageProfiles[c])
		}
	}
	return ld
}

// DetectLanguage returns the most likely language. Confidence is the
// winning score's share of the summed scores of all candidates.
func (ld *LanguageDetector) DetectLanguage(text string) LanguageDetection {
	unknown := LanguageDetection{Language: UnknownLanguage}

	letters := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < minDetectLetters || len(ld.profiles) == 0 {
		return unknown
	}

	text = strings.ToLower(text)
	trigrams := extractTrigrams(text)
	words := strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) })
	charFreq := characterFrequency(text)

	var (
		best      *languageProfile
		bestScore float64
		total     float64
	)
	for _, p := range ld.profiles {
		score := trigramWeight*trigramSimilarity(trigrams, p) +
			stopWordWeight*stopWordRatio(words, p) +
			diacriticWeight*diacriticScore(charFreq, p)
		total += score
		if score > bestScore {
			best, bestScore = p, score
		}
	}
	if best == nil || total == 0 {
		return unknown
	}

	return LanguageDetection{
		Language:   LanguageName(best.code),
		Code:       best.code,
		Confidence: clamp(bestScore/total, 0, 1),
	}
}

// extractTrigrams extracts letter-only trigrams with their relative
// frequencies.
func extractTrigrams(text string) map[string]float64 {
	trigrams := make(map[string]float64)
	totalTrigrams := 0

	runes := []rune(text)
	for i := 0; i <= len(runes)-3; i++ {
		if !unicode.IsLetter(runes[i]) || !unicode.IsLetter(runes[i+1]) || !unicode.IsLetter(runes[i+2]) {
			continue
		}
		trigrams[string(runes[i:i+3])]++
		totalTrigrams++
	}

	for trigram := range trigrams {
		trigrams[trigram] /= float64(totalTrigrams)
	}
	return trigrams
}

// trigramSimilarity is the cosine similarity between the text's trigram
// distribution and the profile's.
func trigramSimilarity(trigrams map[string]float64, p *languageProfile) float64 {
	if len(trigrams) == 0 {
		return 0
	}

	keys := sortedKeys(p.trigrams)
	text := mat.NewVecDense(len(keys), nil)
	profile := mat.NewVecDense(len(keys), nil)
	for i, k := range keys {
		text.SetVec(i, trigrams[k])
		profile.SetVec(i, p.trigrams[k])
	}

	// The text norm covers all of its trigrams, not only the profile's.
	textNorm := 0.0
	for _, k := range sortedKeys(trigrams) {
		textNorm += trigrams[k] * trigrams[k]
	}
	denom := mat.Norm(profile, 2) * math.Sqrt(textNorm)
	if denom == 0 {
		return 0
	}
	return mat.Dot(text, profile) / denom
}

func stopWordRatio(words []string, p *languageProfile) float64 {
	if len(words) == 0 {
		return 0
	}
	set := make(map[string]bool, len(p.functionWords))
	for _, w := range p.functionWords {
		set[w] = true
	}
	hits := 0
	for _, w := range words {
		if set[w] {
			hits++
		}
	}
	return float64(hits) / float64(len(words))
}

func characterFrequency(text string) map[rune]float64 {
	counts := make(map[rune]float64)
	total := 0.0
	for _, r := range text {
		if unicode.IsLetter(r) || r == '¿' || r == '¡' {
			counts[r]++
			total++
		}
	}
	for r := range counts {
		counts[r] /= total
	}
	return counts
}

func diacriticScore(freq map[rune]float64, p *languageProfile) float64 {
	runes := make([]rune, 0, len(p.diacritics))
	for r := range p.diacritics {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	score := 0.0
	for _, r := range runes {
		score += freq[r] * p.diacritics[r]
	}
	return score
}

// sortedKeys fixes the summation order so scores are reproducible.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
