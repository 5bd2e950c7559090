// Package translator wraps the external machine translation service.
package translator

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// Auto asks the translation service to detect the source language.
const Auto = "auto"

var (
	// ErrEmptyTranslation indicates the service answered without any text.
	ErrEmptyTranslation = errors.New("translation service returned no text")
	// ErrMissingTarget indicates no destination language was requested.
	ErrMissingTarget = errors.New("target language is required")
)

// Result is a completed translation.
type Result struct {
	Text   string
	Source string
	Target string
}

// Language is a language supported by the translation service.
type Language struct {
	Code string
	Name string
}

// Translator translates text between languages and lists supported languages.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (Result, error)
	Languages(ctx context.Context, displayLanguage string) ([]Language, error)
}

// GoogleConfig configures the Cloud Translation v2 client.
type GoogleConfig struct {
	APIKey string
	// Options are appended after the API key, e.g. an endpoint override.
	Options []option.ClientOption
	Logger  zerolog.Logger
}

// GoogleTranslator implements Translator against Google Cloud Translation v2.
type GoogleTranslator struct {
	service *translate.Service
	logger  zerolog.Logger
}

// NewGoogleTranslator creates a translation client authenticated with an API key.
func NewGoogleTranslator(ctx context.Context, cfg GoogleConfig) (*GoogleTranslator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("translate api key is required")
	}

	opts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, cfg.Options...)
	service, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create translate service: %w", err)
	}

	return &GoogleTranslator{
		service: service,
		logger:  cfg.Logger.With().Str("component", "google_translator").Logger(),
	}, nil
}

// Translate converts text into target. A source of Auto (or empty) lets the
// service detect the input language.
func (g *GoogleTranslator) Translate(ctx context.Context, text, source, target string) (Result, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return Result{}, ErrMissingTarget
	}

	call := g.service.Translations.List([]string{text}, target).Format("text").Context(ctx)
	if source != "" && !strings.EqualFold(source, Auto) {
		call = call.Source(source)
	}

	resp, err := call.Do()
	if err != nil {
		return Result{}, fmt.Errorf("translate %s->%s: %w", displaySource(source), target, err)
	}
	if len(resp.Translations) == 0 || resp.Translations[0] == nil {
		return Result{}, ErrEmptyTranslation
	}

	first := resp.Translations[0]
	translated := html.UnescapeString(first.TranslatedText)
	if strings.TrimSpace(translated) == "" {
		return Result{}, ErrEmptyTranslation
	}

	detected := source
	if first.DetectedSourceLanguage != "" {
		detected = first.DetectedSourceLanguage
	}

	g.logger.Debug().Str("source", displaySource(detected)).Str("target", target).Int("chars", len(text)).Msg("text translated")

	return Result{Text: translated, Source: displaySource(detected), Target: target}, nil
}

// Languages lists the supported languages with names rendered in displayLanguage.
func (g *GoogleTranslator) Languages(ctx context.Context, displayLanguage string) ([]Language, error) {
	call := g.service.Languages.List().Context(ctx)
	if displayLanguage != "" {
		call = call.Target(displayLanguage)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	languages := make([]Language, 0, len(resp.Languages))
	for _, lang := range resp.Languages {
		if lang == nil || lang.Language == "" {
			continue
		}
		name := lang.Name
		if name == "" {
			name = lang.Language
		}
		languages = append(languages, Language{Code: lang.Language, Name: name})
	}
	return languages, nil
}

func displaySource(source string) string {
	if source == "" {
		return Auto
	}
	return source
}
