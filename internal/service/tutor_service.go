package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/gema-tutor/internal/dto"
	"github.com/noah-isme/gema-tutor/internal/extractor"
	"github.com/noah-isme/gema-tutor/internal/langdetect"
	"github.com/noah-isme/gema-tutor/internal/middleware"
	"github.com/noah-isme/gema-tutor/internal/observability"
	"github.com/noah-isme/gema-tutor/internal/prompt"
	"github.com/noah-isme/gema-tutor/internal/translator"
	"github.com/noah-isme/gema-tutor/pkg/ai"
)

// ErrEmptyQuestion indicates the request carried no question text.
var ErrEmptyQuestion = errors.New("please enter a question")

// FallbackAnswer replaces the generated answer when the model fails.
const FallbackAnswer = "Sorry, I couldn't generate an answer."

const (
	warnExtraction          = "Could not read the uploaded file."
	warnDetection           = "Could not detect language. Please try rephrasing."
	warnQuestionTranslation = "Translation failed. Please check your internet connection or try a simpler question."
	warnAnswerTranslation   = "Answer translation failed. Showing the English answer instead."
)

// Stage names the steps of the answer pipeline.
type Stage string

const (
	StageIdle                Stage = "idle"
	StageExtracting          Stage = "extracting"
	StageDetectingLanguage   Stage = "detecting_language"
	StageTranslatingQuestion Stage = "translating_question"
	StageGenerating          Stage = "generating"
	StageTranslatingAnswer   Stage = "translating_answer"
	StageDone                Stage = "done"
	StageFailed              Stage = "failed"
)

// DocumentExtractor turns an uploaded file into plain text.
type DocumentExtractor interface {
	Extract(ctx context.Context, file extractor.File) (extractor.Result, error)
}

// TutorConfig tunes the pipeline's generation parameters and call deadlines.
type TutorConfig struct {
	Generation        ai.Params
	GenerationTimeout time.Duration
	TranslateTimeout  time.Duration
}

// TutorService answers questions at a grade level in the asker's language.
type TutorService interface {
	// Ask runs the pipeline. upload is optional; when it cannot be read the
	// pipeline continues without document context.
	Ask(ctx context.Context, req dto.AskRequest, upload *extractor.File) (dto.AskResponse, error)
	Extract(ctx context.Context, file extractor.File) (dto.ExtractResponse, error)
}

type tutorService struct {
	extractor  DocumentExtractor
	detector   langdetect.Detector
	translator translator.Translator
	generator  ai.Generator
	validator  *validator.Validate
	cfg        TutorConfig
	logger     zerolog.Logger
	tracer     trace.Tracer
}

// outcome is the result of one pipeline step: a value, or the failure that
// made the step fall back.
type outcome struct {
	value string
	err   error
}

func (o outcome) failed() bool { return o.err != nil }

// run tracks the state of a single pass through the pipeline.
type run struct {
	response dto.AskResponse
	logger   zerolog.Logger
}

func (r *run) enter(stage Stage) {
	r.response.Stages = append(r.response.Stages, string(stage))
}

func (r *run) warn(stage Stage, message string) {
	r.response.Warnings = append(r.response.Warnings, dto.Warning{Stage: string(stage), Message: message})
}

// NewTutorService wires the pipeline collaborators. generator is expected to
// be a long-lived handle such as ai.Lazy shared across requests.
func NewTutorService(ex DocumentExtractor, detector langdetect.Detector, tr translator.Translator, generator ai.Generator, validate *validator.Validate, cfg TutorConfig, logger zerolog.Logger) TutorService {
	if cfg.Generation.MaxLength <= 0 {
		cfg.Generation = ai.DefaultParams()
	}

	return &tutorService{
		extractor:  ex,
		detector:   detector,
		translator: tr,
		generator:  generator,
		validator:  validate,
		cfg:        cfg,
		logger:     logger.With().Str("component", "tutor_service").Logger(),
		tracer:     otel.Tracer("github.com/noah-isme/gema-tutor/internal/service/tutor"),
	}
}

func (s *tutorService) Ask(ctx context.Context, req dto.AskRequest, upload *extractor.File) (dto.AskResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return dto.AskResponse{Stages: []string{string(StageIdle), string(StageFailed)}}, ErrEmptyQuestion
	}

	if req.Grade == 0 {
		req.Grade = 1
	}
	req.Language = strings.TrimSpace(req.Language)
	if req.Language == "" {
		req.Language = langdetect.English
	}
	if err := s.validator.Struct(req); err != nil {
		return dto.AskResponse{}, err
	}

	ctx, span := s.tracer.Start(ctx, "tutor.ask", trace.WithAttributes(
		attribute.Int("tutor.grade", req.Grade),
		attribute.String("tutor.preferred_language", req.Language),
		attribute.Bool("tutor.upload", upload != nil),
	))
	defer span.End()

	logger := middleware.LoggerWithCorrelation(ctx, s.logger)

	r := &run{logger: logger}
	r.response.Grade = req.Grade
	r.response.Question = question
	r.response.PreferredLanguage = req.Language
	r.response.Warnings = []dto.Warning{}
	r.enter(StageIdle)

	document := req.DocumentText
	if upload != nil {
		r.enter(StageExtracting)
		extracted, err := s.Extract(ctx, *upload)
		if err != nil {
			s.fallback(r, StageExtracting, warnExtraction, err)
			document = ""
		} else {
			document = extracted.Text
		}
	}

	r.enter(StageDetectingLanguage)
	detected := s.detect(question)
	if detected.failed() {
		s.fallback(r, StageDetectingLanguage, warnDetection, detected.err)
	}
	r.response.DetectedLanguage = detected.value
	span.SetAttributes(attribute.String("tutor.detected_language", detected.value))

	r.enter(StageTranslatingQuestion)
	englishQuestion := question
	if !isEnglish(detected.value) {
		translated := s.translate(ctx, StageTranslatingQuestion, question, detected.value, langdetect.English)
		if translated.failed() {
			s.fallback(r, StageTranslatingQuestion, warnQuestionTranslation, translated.err)
		}
		englishQuestion = translated.value
	}
	r.response.TranslatedQuestion = englishQuestion

	r.enter(StageGenerating)
	r.response.UsedDocument = prompt.HasDocument(document)
	instruction := prompt.Build(req.Grade, document, englishQuestion)
	generated := s.generate(ctx, instruction)
	if generated.failed() {
		s.fallback(r, StageGenerating, fmt.Sprintf("Model failed: %v", generated.err), generated.err)
	}
	r.response.EnglishAnswer = generated.value

	r.enter(StageTranslatingAnswer)
	r.response.TranslatedAnswer = generated.value
	if !isEnglish(req.Language) {
		translated := s.translate(ctx, StageTranslatingAnswer, generated.value, translator.Auto, req.Language)
		if translated.failed() {
			s.fallback(r, StageTranslatingAnswer, warnAnswerTranslation, translated.err)
		}
		r.response.TranslatedAnswer = translated.value
	}

	r.enter(StageDone)
	logger.Info().
		Str("detected_language", r.response.DetectedLanguage).
		Str("preferred_language", req.Language).
		Int("grade", req.Grade).
		Bool("used_document", r.response.UsedDocument).
		Int("warnings", len(r.response.Warnings)).
		Msg("question answered")

	return r.response, nil
}

func (s *tutorService) Extract(ctx context.Context, file extractor.File) (dto.ExtractResponse, error) {
	start := time.Now()
	result, err := s.extractor.Extract(ctx, file)
	observability.PipelineStageDuration().WithLabelValues(string(StageExtracting)).Observe(time.Since(start).Seconds())

	response := dto.ExtractResponse{
		FileName:  file.Name,
		Kind:      result.Kind.String(),
		MimeType:  result.MimeType,
		SizeBytes: int64(len(file.Data)),
	}
	if err != nil {
		observability.Extractions().WithLabelValues(response.Kind, "failed").Inc()
		return response, err
	}

	observability.Extractions().WithLabelValues(response.Kind, "ok").Inc()
	response.Text = result.Text
	return response, nil
}

func (s *tutorService) detect(question string) outcome {
	start := time.Now()
	defer func() {
		observability.PipelineStageDuration().WithLabelValues(string(StageDetectingLanguage)).Observe(time.Since(start).Seconds())
	}()

	code, err := s.detector.Detect(question)
	if err != nil {
		return outcome{value: langdetect.English, err: err}
	}
	return outcome{value: code}
}

// translate returns the translated text, or text itself when translation fails.
func (s *tutorService) translate(ctx context.Context, stage Stage, text, source, target string) outcome {
	start := time.Now()
	defer func() {
		observability.PipelineStageDuration().WithLabelValues(string(stage)).Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := withTimeout(ctx, s.cfg.TranslateTimeout)
	defer cancel()

	result, err := s.translator.Translate(ctx, text, source, target)
	if err != nil {
		return outcome{value: text, err: err}
	}
	return outcome{value: result.Text}
}

func (s *tutorService) generate(ctx context.Context, instruction string) outcome {
	start := time.Now()
	defer func() {
		observability.PipelineStageDuration().WithLabelValues(string(StageGenerating)).Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := withTimeout(ctx, s.cfg.GenerationTimeout)
	defer cancel()

	text, err := s.generator.Generate(ctx, instruction, s.cfg.Generation)
	if err != nil {
		return outcome{value: FallbackAnswer, err: err}
	}
	if strings.TrimSpace(text) == "" {
		return outcome{value: FallbackAnswer, err: ai.ErrEmptyCompletion}
	}
	return outcome{value: text}
}

func (s *tutorService) fallback(r *run, stage Stage, message string, err error) {
	observability.PipelineFallbacks().WithLabelValues(string(stage)).Inc()
	r.logger.Warn().Err(err).Str("stage", string(stage)).Msg("pipeline stage fell back")
	r.warn(stage, message)
}

func isEnglish(code string) bool {
	return strings.EqualFold(strings.TrimSpace(code), langdetect.English)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
