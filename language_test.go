package textlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		code string
	}{
		{
			"english",
			"The quick brown fox jumps over the lazy dog and the cat is sleeping in the house with the children.",
			"en",
		},
		{
			"spanish",
			"El niño está jugando en el parque con los amigos de la escuela, y la madre los mira desde la ventana.",
			"es",
		},
		{
			"french",
			"Le chat est sur la table et les enfants jouent dans le jardin avec leurs amis pour la journée.",
			"fr",
		},
		{
			"german",
			"Der Hund und die Katze spielen in dem Garten, und ich bin nicht müde, weil das Wetter schön ist.",
			"de",
		},
		{
			"italian",
			"Il gatto dorme sul divano e la ragazza legge un libro che non è molto lungo, perché sono le sette.",
			"it",
		},
		{
			"dutch",
			"De kat slaapt op de bank en het meisje leest een boek dat niet erg lang is, maar ze vindt het mooi.",
			"nl",
		},
	}

	ld := NewLanguageDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ld.DetectLanguage(tt.text)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, LanguageName(tt.code), got.Language)
			assert.Greater(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
		})
	}
}

func TestDetectLanguageUnknown(t *testing.T) {
	ld := NewLanguageDetector()
	for _, text := range []string{"", "Hi there", "12345 67890 !!! ???", "   \n  "} {
		t.Run(text, func(t *testing.T) {
			got := ld.DetectLanguage(text)
			assert.Equal(t, LanguageDetection{Language: UnknownLanguage}, got)
		})
	}
}

func TestDetectLanguageRestricted(t *testing.T) {
	ld := NewLanguageDetector("fr", "de", "xx")
	got := ld.DetectLanguage("The quick brown fox jumps over the lazy dog and the cat is sleeping.")
	assert.Contains(t, []string{"fr", "de", ""}, got.Code)

	none := NewLanguageDetector("xx")
	assert.Equal(t, UnknownLanguage, none.DetectLanguage("The quick brown fox jumps over the lazy dog.").Language)
}

func TestDetectLanguageDeterministic(t *testing.T) {
	text := "Le chat est sur la table et les enfants jouent dans le jardin."
	first := NewLanguageDetector().DetectLanguage(text)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, NewLanguageDetector().DetectLanguage(text))
	}
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"es", "Spanish"},
		{"fr", "French"},
		{"de", "German"},
		{"it", "Italian"},
		{"nl", "Dutch"},
		{"not a code!", UnknownLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageName(tt.code))
		})
	}
}

func TestSupportedLanguages(t *testing.T) {
	langs := SupportedLanguages()
	assert.Equal(t, []string{"en", "es", "fr", "de", "it", "pt", "nl"}, langs)

	langs[0] = "zz"
	assert.Equal(t, "en", SupportedLanguages()[0], "callers get a copy")
}
