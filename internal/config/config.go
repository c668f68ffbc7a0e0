// Package config loads lookup settings from defaults, an optional YAML file
// and WIKILOOKUP_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LangPlaceholder is substituted with the article language in the Wikipedia endpoint.
const LangPlaceholder = "{lang}"

const (
	DefaultWikipediaEndpoint = "https://" + LangPlaceholder + ".wikipedia.org/w/api.php"
	DefaultWikidataEndpoint  = "https://wikidata.org/w/api.php"
	DefaultSuggestEndpoint   = "https://suggestqueries.google.com/complete/search"
	DefaultUserAgent         = "WikiLookupMCPServer/1.0 (https://github.com/olgasafonova/wikilookup-mcp-server)"
	DefaultTimeout           = 30 * time.Second
	DefaultGeoLanguage       = "en"
)

// Config holds lookup settings
type Config struct {
	// UserAgent identifies the client to Wikimedia and Google
	UserAgent string `yaml:"user_agent"`

	// Timeout for one upstream request
	Timeout Duration `yaml:"timeout"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// MetricsAddr enables a Prometheus /metrics listener when set (e.g. ":9090")
	MetricsAddr string `yaml:"metrics_addr"`

	// GeoLanguage is the Wikipedia edition queried for coordinates
	GeoLanguage string `yaml:"geo_language"`

	// GeoUseArticleLanguage queries the article's own edition instead of GeoLanguage
	GeoUseArticleLanguage bool `yaml:"geo_use_article_language"`

	Endpoints Endpoints `yaml:"endpoints"`
}

// Endpoints holds upstream API URLs
type Endpoints struct {
	Wikipedia string `yaml:"wikipedia"` // must contain {lang}
	Wikidata  string `yaml:"wikidata"`
	Suggest   string `yaml:"suggest"`
}

// Duration is a time.Duration that unmarshals from YAML strings like "10s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UserAgent:   DefaultUserAgent,
		Timeout:     Duration(DefaultTimeout),
		LogLevel:    "info",
		GeoLanguage: DefaultGeoLanguage,
		Endpoints: Endpoints{
			Wikipedia: DefaultWikipediaEndpoint,
			Wikidata:  DefaultWikidataEndpoint,
			Suggest:   DefaultSuggestEndpoint,
		},
	}
}

// Load reads configuration. path may be empty; WIKILOOKUP_CONFIG is used then.
// A missing file at an explicitly given path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("WIKILOOKUP_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WIKILOOKUP_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("WIKILOOKUP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = Duration(d)
		}
	}
	if v := os.Getenv("WIKILOOKUP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WIKILOOKUP_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("WIKILOOKUP_GEO_LANGUAGE"); v != "" {
		cfg.GeoLanguage = v
	}
	if v := os.Getenv("WIKILOOKUP_GEO_USE_ARTICLE_LANGUAGE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.GeoUseArticleLanguage = b
		}
	}
	if v := os.Getenv("WIKILOOKUP_WIKIPEDIA_ENDPOINT"); v != "" {
		cfg.Endpoints.Wikipedia = v
	}
	if v := os.Getenv("WIKILOOKUP_WIKIDATA_ENDPOINT"); v != "" {
		cfg.Endpoints.Wikidata = v
	}
	if v := os.Getenv("WIKILOOKUP_SUGGEST_ENDPOINT"); v != "" {
		cfg.Endpoints.Suggest = v
	}
}

// Validate checks the configuration for unusable values
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if !strings.Contains(c.Endpoints.Wikipedia, LangPlaceholder) {
		return fmt.Errorf("wikipedia endpoint %q must contain %s", c.Endpoints.Wikipedia, LangPlaceholder)
	}
	if c.Endpoints.Wikidata == "" || c.Endpoints.Suggest == "" {
		return errors.New("wikidata and suggest endpoints are required")
	}
	if c.GeoLanguage == "" {
		return errors.New("geo_language is required")
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
