package router_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/gema-tutor/internal/config"
	"github.com/noah-isme/gema-tutor/internal/dto"
	"github.com/noah-isme/gema-tutor/internal/extractor"
	"github.com/noah-isme/gema-tutor/internal/handler"
	"github.com/noah-isme/gema-tutor/internal/middleware"
	"github.com/noah-isme/gema-tutor/internal/router"
)

type tutorStub struct{ asks int }

func (s *tutorStub) Ask(context.Context, dto.AskRequest, *extractor.File) (dto.AskResponse, error) {
	s.asks++
	return dto.AskResponse{EnglishAnswer: "ok", TranslatedAnswer: "ok", Warnings: []dto.Warning{}}, nil
}

func (s *tutorStub) Extract(context.Context, extractor.File) (dto.ExtractResponse, error) {
	return dto.ExtractResponse{}, nil
}

type catalogueStub struct{}

func (catalogueStub) List(context.Context) ([]dto.LanguageOption, error) {
	return []dto.LanguageOption{{Name: "English", Code: "en"}}, nil
}

func (catalogueStub) Grades() []int { return []int{1, 2, 3} }

func newApp(cfg config.Config, deps router.Dependencies) *fiber.App {
	app := fiber.New()
	router.Register(app, cfg, deps)
	return app
}

func ask(t *testing.T, app *fiber.App) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/tutor/ask", strings.NewReader(`{"question":"What is 2+2?","grade":3,"language":"en"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRegisterRoutes(t *testing.T) {
	cfg := config.Config{AppName: "GEMA Tutor", RateLimitMax: 5, RateLimitWindow: time.Minute}
	tutor := &tutorStub{}
	app := newApp(cfg, router.Dependencies{
		TutorHandler: handler.NewTutorHandler(tutor, catalogueStub{}, 1<<20, zerolog.New(io.Discard)),
	})

	for _, path := range []string{"/api/v1/health", "/api/v1/tutor/languages", "/api/v1/tutor/grades", "/metrics"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		if strings.HasPrefix(path, "/api/v1") {
			require.Equal(t, "GEMA Tutor", resp.Header.Get("X-Application"), path)
		}
	}

	require.Equal(t, fiber.StatusOK, ask(t, app))
	require.Equal(t, 1, tutor.asks)
}

func TestRegisterDefaultAskLimiterFromConfig(t *testing.T) {
	cfg := config.Config{AppName: "GEMA Tutor", RateLimitMax: 1, RateLimitWindow: time.Minute}
	tutor := &tutorStub{}
	app := newApp(cfg, router.Dependencies{
		TutorHandler: handler.NewTutorHandler(tutor, catalogueStub{}, 1<<20, zerolog.New(io.Discard)),
	})

	require.Equal(t, fiber.StatusOK, ask(t, app))
	require.Equal(t, fiber.StatusTooManyRequests, ask(t, app))
	require.Equal(t, 1, tutor.asks)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/tutor/grades", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterUsesAskLimiterOverride(t *testing.T) {
	cfg := config.Config{AppName: "GEMA Tutor", RateLimitMax: 1, RateLimitWindow: time.Minute}
	tutor := &tutorStub{}
	limiterCalls := 0
	app := newApp(cfg, router.Dependencies{
		TutorHandler: handler.NewTutorHandler(tutor, catalogueStub{}, 1<<20, zerolog.New(io.Discard)),
		AskLimiter: func(c *fiber.Ctx) error {
			limiterCalls++
			return c.Next()
		},
	})

	for i := 0; i < 3; i++ {
		require.Equal(t, fiber.StatusOK, ask(t, app))
	}
	require.Equal(t, 3, limiterCalls)
	require.Equal(t, 3, tutor.asks)

	strict := newApp(cfg, router.Dependencies{
		TutorHandler: handler.NewTutorHandler(&tutorStub{}, catalogueStub{}, 1<<20, zerolog.New(io.Discard)),
		AskLimiter:   middleware.RateLimit("test_ask", 2, time.Minute),
	})
	require.Equal(t, fiber.StatusOK, ask(t, strict))
	require.Equal(t, fiber.StatusOK, ask(t, strict))
	require.Equal(t, fiber.StatusTooManyRequests, ask(t, strict))
}
