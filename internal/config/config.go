package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported answer generation providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds runtime configuration values for the tutor service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	RedisURL          string
	AIProvider        string
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIBaseURL     string
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	GenerationTimeout time.Duration
	GenerationMaxLen  int
	GenerationTemp    float32
	GenerationSample  bool
	TranslateAPIKey   string
	TranslateTimeout  time.Duration
	UploadMaxMB       int
	LanguageCacheTTL  time.Duration
	RateLimitMax      int
	RateLimitWindow   time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// UploadMaxBytes returns the upload size limit in bytes.
func (c Config) UploadMaxBytes() int64 {
	return int64(c.UploadMaxMB) << 20
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TUTOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "GEMA Tutor")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("ai.provider", ProviderOpenAI)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", "60s")
	v.SetDefault("ai.max_length", 512)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.sample", true)
	v.SetDefault("translate.timeout", "10s")
	v.SetDefault("upload.max_mb", 10)
	v.SetDefault("languages.cache_ttl", "24h")
	v.SetDefault("ratelimit.max", 20)
	v.SetDefault("ratelimit.window", "1m")

	generationTimeout, err := parseDuration(v, "ai.timeout")
	if err != nil {
		return Config{}, err
	}
	translateTimeout, err := parseDuration(v, "translate.timeout")
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := parseDuration(v, "languages.cache_ttl")
	if err != nil {
		return Config{}, err
	}
	window, err := parseDuration(v, "ratelimit.window")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		RedisURL:          v.GetString("redis.url"),
		AIProvider:        strings.ToLower(strings.TrimSpace(v.GetString("ai.provider"))),
		OpenAIAPIKey:      v.GetString("openai_api_key"),
		OpenAIModel:       v.GetString("openai.model"),
		OpenAIBaseURL:     v.GetString("openai.base_url"),
		GeminiAPIKey:      v.GetString("gemini_api_key"),
		GeminiModel:       v.GetString("gemini.model"),
		GeminiBaseURL:     v.GetString("gemini.base_url"),
		GenerationTimeout: generationTimeout,
		GenerationMaxLen:  v.GetInt("ai.max_length"),
		GenerationTemp:    float32(v.GetFloat64("ai.temperature")),
		GenerationSample:  v.GetBool("ai.sample"),
		TranslateAPIKey:   v.GetString("translate_api_key"),
		TranslateTimeout:  translateTimeout,
		UploadMaxMB:       v.GetInt("upload.max_mb"),
		LanguageCacheTTL:  cacheTTL,
		RateLimitMax:      v.GetInt("ratelimit.max"),
		RateLimitWindow:   window,
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AIProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("openai api key must be provided")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("gemini api key must be provided")
		}
	default:
		return fmt.Errorf("unsupported ai provider %q", c.AIProvider)
	}

	if c.TranslateAPIKey == "" {
		return fmt.Errorf("translate api key must be provided")
	}

	if c.GenerationTemp < 0 || c.GenerationTemp > 2 {
		return fmt.Errorf("ai temperature must be between 0 and 2, got %v", c.GenerationTemp)
	}

	if c.GenerationMaxLen <= 0 {
		c.GenerationMaxLen = 512
	}

	if c.UploadMaxMB <= 0 {
		c.UploadMaxMB = 10
	}

	return nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
