// Package language lists the languages word sets can be written in, with the
// codes used by the OCR engine and the speech synthesizer.
package language

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknown is returned when a code matches no supported language.
var ErrUnknown = errors.New("unknown language")

// Language is a supported set language.
type Language struct {
	Code          string
	Name          string
	TesseractCode string
	SpeechCode    string
}

// All lists the supported languages in display order.
var All = []Language{
	{Code: "nl", Name: "Dutch", TesseractCode: "nld", SpeechCode: "nl-NL"},
	{Code: "en", Name: "English", TesseractCode: "eng", SpeechCode: "en-GB"},
	{Code: "de", Name: "German", TesseractCode: "deu", SpeechCode: "de-DE"},
	{Code: "fr", Name: "French", TesseractCode: "fra", SpeechCode: "fr-FR"},
	{Code: "es", Name: "Spanish", TesseractCode: "spa", SpeechCode: "es-ES"},
	{Code: "it", Name: "Italian", TesseractCode: "ita", SpeechCode: "it-IT"},
	{Code: "pt", Name: "Portuguese", TesseractCode: "por", SpeechCode: "pt-PT"},
	{Code: "la", Name: "Latin", TesseractCode: "lat", SpeechCode: "la"},
}

var matcher = newMatcher()

func newMatcher() language.Matcher {
	tags := make([]language.Tag, len(All))
	for i, l := range All {
		tags[i] = language.MustParse(l.SpeechCode)
	}
	return language.NewMatcher(tags)
}

// ByCode returns the language with the given ISO 639-1 code.
func ByCode(code string) (Language, bool) {
	for _, l := range All {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// ByTesseract returns the language with the given OCR code.
func ByTesseract(code string) (Language, bool) {
	for _, l := range All {
		if l.TesseractCode == code {
			return l, true
		}
	}
	return Language{}, false
}

// BySpeech returns the language with the given speech code.
func BySpeech(code string) (Language, bool) {
	for _, l := range All {
		if l.SpeechCode == code {
			return l, true
		}
	}
	return Language{}, false
}

// Lookup resolves any of the known codes, an English name or a BCP 47 tag
// such as "nl-BE" or "pt-BR" to a supported language.
func Lookup(s string) (Language, error) {
	code := strings.TrimSpace(s)
	if l, ok := ByCode(strings.ToLower(code)); ok {
		return l, nil
	}
	if l, ok := ByTesseract(strings.ToLower(code)); ok {
		return l, nil
	}
	if l, ok := BySpeech(code); ok {
		return l, nil
	}
	for _, l := range All {
		if strings.EqualFold(l.Name, code) {
			return l, nil
		}
	}

	tag, err := language.Parse(code)
	if err != nil {
		return Language{}, fmt.Errorf("%w: %q", ErrUnknown, s)
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return Language{}, fmt.Errorf("%w: %q", ErrUnknown, s)
	}
	return All[index], nil
}

// Codes returns the ISO codes of every supported language.
func Codes() []string {
	codes := make([]string, len(All))
	for i, l := range All {
		codes[i] = l.Code
	}
	return codes
}

// TesseractCodes joins the OCR codes of the given languages for a
// multi-language recognition run, skipping unknown codes.
func TesseractCodes(codes ...string) string {
	var parts []string
	for _, c := range codes {
		if l, ok := ByCode(c); ok {
			parts = append(parts, l.TesseractCode)
		}
	}
	return strings.Join(parts, "+")
}
