package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gema-tutor/internal/dto"
	"github.com/noah-isme/gema-tutor/internal/extractor"
	"github.com/noah-isme/gema-tutor/internal/observability"
	"github.com/noah-isme/gema-tutor/internal/service"
	"github.com/noah-isme/gema-tutor/internal/utils"
)

var (
	// ErrUnsupportedFile indicates an upload whose extension is not txt, docx or pdf.
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrFileTooLarge indicates an upload above the configured size limit.
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")
)

const (
	msgEmptyQuestion  = "Please enter a question."
	msgUnreadableFile = "Could not read the uploaded file."
)

// TutorHandler exposes the tutoring pipeline over HTTP.
type TutorHandler struct {
	tutor     service.TutorService
	languages service.LanguageService
	maxUpload int64
	logger    zerolog.Logger
}

// NewTutorHandler constructs a tutor handler. maxUploadBytes bounds document uploads.
func NewTutorHandler(tutor service.TutorService, languages service.LanguageService, maxUploadBytes int64, logger zerolog.Logger) *TutorHandler {
	return &TutorHandler{
		tutor:     tutor,
		languages: languages,
		maxUpload: maxUploadBytes,
		logger:    logger.With().Str("component", "tutor_handler").Logger(),
	}
}

// Register wires tutor routes. askMiddleware runs in front of the ask route only.
func (h *TutorHandler) Register(router fiber.Router, askMiddleware ...fiber.Handler) {
	router.Get("/languages", h.listLanguages)
	router.Get("/grades", h.listGrades)
	router.Post("/extract", h.extract)
	router.Post("/ask", append(askMiddleware, h.ask)...)
}

func (h *TutorHandler) listLanguages(c *fiber.Ctx) error {
	options, err := h.languages.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list languages")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list languages")
	}

	return utils.SendSuccess(c, "languages retrieved", options)
}

func (h *TutorHandler) listGrades(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "grades retrieved", h.languages.Grades())
}

func (h *TutorHandler) extract(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "file is required")
	}

	file, err := h.readUpload(header)
	if err != nil {
		return h.uploadError(c, err)
	}

	result, err := h.tutor.Extract(c.UserContext(), *file)
	if err != nil {
		if errors.Is(err, extractor.ErrMalformed) {
			requestLogger(h.logger, c).Warn().Err(err).Str("file", header.Filename).Msg("document extraction failed")
			return utils.SendError(c, fiber.StatusUnprocessableEntity, msgUnreadableFile)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("extract failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "extract failed")
	}

	return utils.SendSuccess(c, "document extracted", result)
}

func (h *TutorHandler) ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Question) == "" {
		return utils.SendError(c, fiber.StatusBadRequest, msgEmptyQuestion)
	}

	var upload *extractor.File
	if isMultipart(c) {
		if header, err := c.FormFile("file"); err == nil {
			upload, err = h.readUpload(header)
			if err != nil {
				return h.uploadError(c, err)
			}
		}
	}

	result, err := h.tutor.Ask(c.UserContext(), req, upload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuestion):
			return utils.SendError(c, fiber.StatusBadRequest, msgEmptyQuestion)
		case isValidationError(err):
			return utils.Fail(c, fiber.StatusBadRequest, "invalid request", validationDetails(err))
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("ask failed")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to answer question")
		}
	}

	return utils.SendSuccess(c, "answer ready", result)
}

// readUpload checks the extension and size of an uploaded document and reads it.
func (h *TutorHandler) readUpload(header *multipart.FileHeader) (*extractor.File, error) {
	if extractor.KindOf(header.Filename) == extractor.Unsupported {
		observability.UploadsRejected().WithLabelValues("unsupported").Inc()
		return nil, ErrUnsupportedFile
	}
	if h.maxUpload > 0 && header.Size > h.maxUpload {
		observability.UploadsRejected().WithLabelValues("too_large").Inc()
		return nil, ErrFileTooLarge
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	reader := io.Reader(src)
	if h.maxUpload > 0 {
		reader = io.LimitReader(src, h.maxUpload+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if h.maxUpload > 0 && int64(len(data)) > h.maxUpload {
		observability.UploadsRejected().WithLabelValues("too_large").Inc()
		return nil, ErrFileTooLarge
	}

	return &extractor.File{Name: header.Filename, Data: data}, nil
}

func (h *TutorHandler) uploadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrUnsupportedFile):
		return utils.SendError(c, fiber.StatusBadRequest,
			fmt.Sprintf("%s: accepted extensions are %s", err.Error(), strings.Join(extractor.SupportedExtensions(), ", ")))
	case errors.Is(err, ErrFileTooLarge):
		return utils.SendError(c, fiber.StatusRequestEntityTooLarge, err.Error())
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg("upload could not be read")
		return utils.SendError(c, fiber.StatusBadRequest, msgUnreadableFile)
	}
}
