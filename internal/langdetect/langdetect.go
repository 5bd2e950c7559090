// Package langdetect guesses the language of free text.
package langdetect

import (
	"errors"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// English is the pipeline's working language and the detection fallback.
const English = "en"

// ErrUndetectable indicates the text could not be classified.
var ErrUndetectable = errors.New("language could not be detected")

// Detector returns a lower-case ISO 639-1 code for text.
type Detector interface {
	Detect(text string) (string, error)
}

// LinguaDetector classifies text with lingua's statistical n-gram models.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector over every language lingua knows.
// Models are loaded lazily by lingua on first use of each language.
func NewLinguaDetector() *LinguaDetector {
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Detect returns the most likely language code of text. Short or ambiguous
// input may be misclassified.
func (d *LinguaDetector) Detect(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrUndetectable
	}

	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", ErrUndetectable
	}

	code := strings.ToLower(language.IsoCode639_1().String())
	if code == "" {
		return "", ErrUndetectable
	}
	return code, nil
}
