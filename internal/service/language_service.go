package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gema-tutor/internal/dto"
	"github.com/noah-isme/gema-tutor/internal/langdetect"
	"github.com/noah-isme/gema-tutor/internal/observability"
	"github.com/noah-isme/gema-tutor/internal/translator"
)

const languageCacheKey = "tutor:languages"

// LanguageService serves the catalogue behind the preferred-language and grade selectors.
type LanguageService interface {
	List(ctx context.Context) ([]dto.LanguageOption, error)
	Grades() []int
}

type languageService struct {
	translator translator.Translator
	cache      *redis.Client
	cacheTTL   time.Duration
	timeout    time.Duration
	logger     zerolog.Logger
}

// NewLanguageService builds the catalogue service. cache may be nil.
func NewLanguageService(tr translator.Translator, cache *redis.Client, ttl, timeout time.Duration, logger zerolog.Logger) LanguageService {
	return &languageService{
		translator: tr,
		cache:      cache,
		cacheTTL:   ttl,
		timeout:    timeout,
		logger:     logger.With().Str("component", "language_service").Logger(),
	}
}

func (s *languageService) Grades() []int {
	grades := make([]int, 0, 12)
	for grade := 1; grade <= 12; grade++ {
		grades = append(grades, grade)
	}
	return grades
}

func (s *languageService) List(ctx context.Context) ([]dto.LanguageOption, error) {
	if cached, ok := s.readCache(ctx); ok {
		return cached, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, fromService := s.fetch(ctx)
	options := buildOptions(source)
	if fromService {
		s.writeCache(ctx, options)
	}

	return options, nil
}

// fetch asks the translation service for its languages, falling back to the
// built-in catalogue.
func (s *languageService) fetch(ctx context.Context) ([]translator.Language, bool) {
	if s.translator == nil {
		return translator.BuiltinLanguages, false
	}

	callCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	languages, err := s.translator.Languages(callCtx, langdetect.English)
	if err != nil || len(languages) == 0 {
		s.logger.Warn().Err(err).Msg("language listing unavailable, serving built-in catalogue")
		return translator.BuiltinLanguages, false
	}
	return languages, true
}

func (s *languageService) readCache(ctx context.Context) ([]dto.LanguageOption, bool) {
	if s.cache == nil {
		return nil, false
	}

	cached, err := s.cache.Get(ctx, languageCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read language cache")
		}
		observability.LanguageCacheLookups().WithLabelValues("miss").Inc()
		return nil, false
	}

	var options []dto.LanguageOption
	if err := json.Unmarshal([]byte(cached), &options); err != nil || len(options) == 0 {
		s.logger.Warn().Err(err).Msg("discarding malformed language cache entry")
		observability.LanguageCacheLookups().WithLabelValues("miss").Inc()
		return nil, false
	}

	observability.LanguageCacheLookups().WithLabelValues("hit").Inc()
	return options, true
}

// writeCache stores options listed by the translation service. The built-in
// fallback is never cached so the service is asked again on the next request.
func (s *languageService) writeCache(ctx context.Context, options []dto.LanguageOption) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}

	payload, err := json.Marshal(options)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, languageCacheKey, payload, s.cacheTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to store language cache")
	}
}

func buildOptions(languages []translator.Language) []dto.LanguageOption {
	seen := make(map[string]struct{}, len(languages))
	options := make([]dto.LanguageOption, 0, len(languages))
	for _, lang := range languages {
		code := strings.TrimSpace(lang.Code)
		if code == "" {
			continue
		}
		if _, dup := seen[strings.ToLower(code)]; dup {
			continue
		}
		seen[strings.ToLower(code)] = struct{}{}
		options = append(options, dto.LanguageOption{Name: titleCase(lang.Name), Code: code})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Name < options[j].Name
	})
	return options
}

// titleCase upper-cases the first letter of every word and lower-cases the rest.
func titleCase(name string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range strings.TrimSpace(name) {
		if prevLetter {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
