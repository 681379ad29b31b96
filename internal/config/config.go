package config

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// OpenAIConfig configures the chat completions responder.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

// HuggingFaceConfig configures the text generation responder.
type HuggingFaceConfig struct {
	Token        string
	BaseURL      string
	Model        string
	MaxNewTokens int
	Temperature  float64
	TopP         float64
}

type ServerConfig struct {
	Port          string
	AllowedOrigin string
}

type LogConfig struct {
	Level  string
	Format string
}

// Config holds everything the responders, server and CLI need.
type Config struct {
	OpenAI      OpenAIConfig
	HuggingFace HuggingFaceConfig
	HTTPTimeout time.Duration
	Server      ServerConfig
	Log         LogConfig
}

type setting struct {
	key      string
	env      string
	fallback any
}

var settings = []setting{
	{"openai.api_key", "OPENAI_API_KEY", ""},
	{"openai.base_url", "OPENAI_BASE_URL", "https://api.openai.com/v1"},
	{"openai.model", "OPENAI_MODEL", "gpt-3.5-turbo"},
	{"openai.temperature", "OPENAI_TEMPERATURE", 0.7},
	{"openai.max_tokens", "OPENAI_MAX_TOKENS", 500},
	{"huggingface.token", "HUGGINGFACE_API_TOKEN", ""},
	{"huggingface.base_url", "HUGGINGFACE_BASE_URL", "https://api-inference.huggingface.co/models"},
	{"huggingface.model", "HUGGINGFACE_MODEL", "mistralai/Mistral-7B-Instruct-v0.2"},
	{"huggingface.max_new_tokens", "HUGGINGFACE_MAX_NEW_TOKENS", 500},
	{"huggingface.temperature", "HUGGINGFACE_TEMPERATURE", 0.7},
	{"huggingface.top_p", "HUGGINGFACE_TOP_P", 0.95},
	{"http.timeout", "HTTP_TIMEOUT", "60s"},
	{"server.port", "PORT", "8080"},
	{"server.allowed_origin", "ALLOWED_ORIGIN", "http://localhost:5173"},
	{"log.level", "LOG_LEVEL", "info"},
	{"log.format", "LOG_FORMAT", "text"},
}

// Load reads configuration from the environment and, when path is set, from
// a config file. Environment variables take precedence over the file.
func Load(path string) (Config, error) {
	v := viper.New()
	for _, s := range settings {
		v.SetDefault(s.key, s.fallback)
		if err := v.BindEnv(s.key, s.env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", s.env, err)
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	p := parser{v: v}
	cfg := Config{
		OpenAI: OpenAIConfig{
			APIKey:      v.GetString("openai.api_key"),
			BaseURL:     v.GetString("openai.base_url"),
			Model:       v.GetString("openai.model"),
			Temperature: p.float("openai.temperature"),
			MaxTokens:   p.int("openai.max_tokens"),
		},
		HuggingFace: HuggingFaceConfig{
			Token:        v.GetString("huggingface.token"),
			BaseURL:      v.GetString("huggingface.base_url"),
			Model:        v.GetString("huggingface.model"),
			MaxNewTokens: p.int("huggingface.max_new_tokens"),
			Temperature:  p.float("huggingface.temperature"),
			TopP:         p.float("huggingface.top_p"),
		},
		HTTPTimeout: p.duration("http.timeout"),
		Server: ServerConfig{
			Port:          v.GetString("server.port"),
			AllowedOrigin: v.GetString("server.allowed_origin"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}
	if p.err != nil {
		return Config{}, p.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parser converts raw viper values and keeps the first failure, so a typo
// is reported instead of loading as zero.
type parser struct {
	v   *viper.Viper
	err error
}

func (p *parser) fail(key string, err error) {
	if p.err != nil {
		return
	}
	env := key
	for _, s := range settings {
		if s.key == key {
			env = s.env
		}
	}
	p.err = fmt.Errorf("invalid %s %q: %w", env, p.v.GetString(key), err)
}

func (p *parser) int(key string) int {
	n, err := cast.ToIntE(p.v.Get(key))
	if err != nil {
		p.fail(key, err)
	}
	return n
}

func (p *parser) float(key string) float64 {
	f, err := cast.ToFloat64E(p.v.Get(key))
	if err != nil {
		p.fail(key, err)
	}
	return f
}

func (p *parser) duration(key string) time.Duration {
	d, err := cast.ToDurationE(p.v.Get(key))
	if err != nil {
		p.fail(key, err)
	}
	return d
}

// Validate rejects values the responders cannot use, naming the env var to fix.
func (c Config) Validate() error {
	if c.OpenAI.MaxTokens <= 0 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be positive, got %d", c.OpenAI.MaxTokens)
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be within [0, 2], got %g", c.OpenAI.Temperature)
	}
	if c.HuggingFace.MaxNewTokens <= 0 {
		return fmt.Errorf("HUGGINGFACE_MAX_NEW_TOKENS must be positive, got %d", c.HuggingFace.MaxNewTokens)
	}
	if c.HuggingFace.Temperature < 0 || c.HuggingFace.Temperature > 2 {
		return fmt.Errorf("HUGGINGFACE_TEMPERATURE must be within [0, 2], got %g", c.HuggingFace.Temperature)
	}
	if c.HuggingFace.TopP <= 0 || c.HuggingFace.TopP > 1 {
		return fmt.Errorf("HUGGINGFACE_TOP_P must be within (0, 1], got %g", c.HuggingFace.TopP)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative, got %s", c.HTTPTimeout)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Log.Format)
	}
	return nil
}
