package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Providers ProvidersConfig `yaml:"providers"`
	Geo       GeoConfig       `yaml:"geo"`
	Weather   WeatherConfig   `yaml:"weather"`
	POI       POIConfig       `yaml:"poi"`
	Image     ImageConfig     `yaml:"image"`
	Cache     CacheConfig     `yaml:"cache"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// ProvidersConfig gates which LLM providers join the generation chain.
// A provider with no key (or, for Ollama, no model) is simply not attempted.
type ProvidersConfig struct {
	Groq     OpenAICompatConfig `yaml:"groq"`
	Ollama   OllamaConfig       `yaml:"ollama"`
	Moonshot OpenAICompatConfig `yaml:"moonshot"`
	Gemini   GeminiConfig       `yaml:"gemini"`
}

// OpenAICompatConfig configures an OpenAI-compatible chat completion vendor.
type OpenAICompatConfig struct {
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"maxTokens"`
}

// OllamaConfig configures the self-hosted inference endpoint.
type OllamaConfig struct {
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// GeminiConfig configures the Google generative AI fallback provider.
type GeminiConfig struct {
	APIKey      string  `yaml:"apiKey"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// GeoConfig points at the geocoding service.
type GeoConfig struct {
	APIKey     string `yaml:"apiKey"`
	APIBaseURL string `yaml:"apiBaseUrl"`
}

// WeatherConfig points at the forecast service (keyless).
type WeatherConfig struct {
	APIBaseURL string `yaml:"apiBaseUrl"`
}

// POIConfig holds the Amadeus client-credentials pair.
type POIConfig struct {
	ClientID     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	APIBaseURL   string `yaml:"apiBaseUrl"`
}

// ImageConfig points at the destination image search service.
type ImageConfig struct {
	AccessKey  string `yaml:"accessKey"`
	APIBaseURL string `yaml:"apiBaseUrl"`
}

// CacheConfig controls the itinerary response cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Addr    string        `yaml:"addr"`
	TTL     time.Duration `yaml:"ttl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.HTTP.RateLimit.Enabled = parsed
		}
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.Providers.Groq.APIKey = v
	}
	if v := os.Getenv("GROQ_MODEL"); v != "" {
		cfg.Providers.Groq.Model = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		cfg.Providers.Ollama.BaseURL = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.Providers.Ollama.Model = v
	}
	if v := os.Getenv("KIMI_API_KEY"); v != "" {
		cfg.Providers.Moonshot.APIKey = v
	}
	if v := os.Getenv("KIMI_MODEL"); v != "" {
		cfg.Providers.Moonshot.Model = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Providers.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Providers.Gemini.Model = v
	}
	if v := os.Getenv("GEOAPIFY_KEY"); v != "" {
		cfg.Geo.APIKey = v
	}
	if v := os.Getenv("AMADEUS_CLIENT_ID"); v != "" {
		cfg.POI.ClientID = v
	}
	if v := os.Getenv("AMADEUS_CLIENT_SECRET"); v != "" {
		cfg.POI.ClientSecret = v
	}
	if v := os.Getenv("UNSPLASH_ACCESS_KEY"); v != "" {
		cfg.Image.AccessKey = v
	}
	if v := os.Getenv("CACHE_ADDR"); v != "" {
		cfg.Cache.Enabled = true
		cfg.Cache.Addr = v
	}
}

// Validate ensures the configuration is internally consistent.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Address) == "" {
		return errors.New("http address cannot be empty")
	}
	if c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 {
		return errors.New("http timeouts must be positive")
	}
	if c.HTTP.RateLimit.Enabled && c.HTTP.RateLimit.RequestsPerMinute <= 0 {
		return errors.New("rate limit requests per minute must be positive when enabled")
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Addr) == "" {
		return errors.New("cache addr cannot be empty when cache is enabled")
	}
	return nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.HTTP.Address = ":8080"
	cfg.HTTP.ReadTimeout = 15 * time.Second
	cfg.HTTP.WriteTimeout = 120 * time.Second
	cfg.HTTP.RateLimit = RateLimitConfig{Enabled: true, RequestsPerMinute: 30, Burst: 10}
	cfg.Providers.Groq.BaseURL = "https://api.groq.com/openai/v1"
	cfg.Providers.Groq.Model = "llama-3.3-70b-versatile"
	cfg.Providers.Groq.Temperature = 0.4
	cfg.Providers.Groq.MaxTokens = 4096
	cfg.Providers.Ollama.BaseURL = "http://localhost:11434"
	cfg.Providers.Ollama.Temperature = 0.3
	cfg.Providers.Moonshot.BaseURL = "https://api.moonshot.cn/v1"
	cfg.Providers.Moonshot.Model = "moonshot-v1-8k"
	cfg.Providers.Moonshot.Temperature = 0.3
	cfg.Providers.Gemini.Model = "gemini-2.0-flash"
	cfg.Providers.Gemini.Temperature = 0.4
	cfg.Geo.APIBaseURL = "https://api.geoapify.com/v1/geocode/search"
	cfg.Weather.APIBaseURL = "https://api.open-meteo.com/v1/forecast"
	cfg.POI.APIBaseURL = "https://test.api.amadeus.com"
	cfg.Image.APIBaseURL = "https://api.unsplash.com"
	cfg.Cache.TTL = 30 * time.Minute
	return cfg
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
