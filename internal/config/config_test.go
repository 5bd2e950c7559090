package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TUTOR_OPENAI_API_KEY", "sk-test")
	t.Setenv("TUTOR_TRANSLATE_API_KEY", "translate-key")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "GEMA Tutor", cfg.AppName)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, ProviderOpenAI, cfg.AIProvider)
	require.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	require.Equal(t, 60*time.Second, cfg.GenerationTimeout)
	require.Equal(t, 512, cfg.GenerationMaxLen)
	require.InDelta(t, 0.7, cfg.GenerationTemp, 0.0001)
	require.True(t, cfg.GenerationSample)
	require.Equal(t, 10*time.Second, cfg.TranslateTimeout)
	require.Equal(t, int64(10<<20), cfg.UploadMaxBytes())
	require.Equal(t, 24*time.Hour, cfg.LanguageCacheTTL)
	require.Equal(t, 20, cfg.RateLimitMax)
	require.Equal(t, time.Minute, cfg.RateLimitWindow)
	require.Empty(t, cfg.RedisURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TUTOR_AI_PROVIDER", " Gemini ")
	t.Setenv("TUTOR_GEMINI_API_KEY", "gemini-key")
	t.Setenv("TUTOR_TRANSLATE_API_KEY", "translate-key")
	t.Setenv("TUTOR_APP_PORT", ":9090")
	t.Setenv("TUTOR_AI_TEMPERATURE", "0.2")
	t.Setenv("TUTOR_AI_SAMPLE", "false")
	t.Setenv("TUTOR_UPLOAD_MAX_MB", "2")
	t.Setenv("TUTOR_REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("TUTOR_GEMINI_BASE_URL", "http://localhost:9999/")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ProviderGemini, cfg.AIProvider)
	require.Equal(t, ":9090", cfg.HTTPAddress())
	require.InDelta(t, 0.2, cfg.GenerationTemp, 0.0001)
	require.False(t, cfg.GenerationSample)
	require.Equal(t, int64(2<<20), cfg.UploadMaxBytes())
	require.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	require.Equal(t, "http://localhost:9999/", cfg.GeminiBaseURL)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing provider key", env: map[string]string{"TUTOR_TRANSLATE_API_KEY": "k"}},
		{name: "missing translate key", env: map[string]string{"TUTOR_OPENAI_API_KEY": "k"}},
		{name: "unknown provider", env: map[string]string{"TUTOR_AI_PROVIDER": "llama", "TUTOR_TRANSLATE_API_KEY": "k"}},
		{name: "temperature out of range", env: map[string]string{"TUTOR_OPENAI_API_KEY": "k", "TUTOR_TRANSLATE_API_KEY": "k", "TUTOR_AI_TEMPERATURE": "3"}},
		{name: "bad duration", env: map[string]string{"TUTOR_OPENAI_API_KEY": "k", "TUTOR_TRANSLATE_API_KEY": "k", "TUTOR_AI_TIMEOUT": "soon"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}
