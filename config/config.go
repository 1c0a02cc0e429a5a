package config

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

type contextKey string

func (c contextKey) String() string {
	return "nls/config/" + string(c)
}

const ctxKeyConfiguration = contextKey("configurationKey")

// PseudoLocale is the reserved locale value that switches message formatting
// into pseudo localization mode instead of selecting a translation.
const PseudoLocale = "pseudo"

// ToContext adds a localization configuration to the current supplied context.
func ToContext(ctx context.Context, cfg Configuration) context.Context {
	return context.WithValue(ctx, ctxKeyConfiguration, cfg)
}

// FromContext extracts a localization configuration from the supplied context if any exist.
func FromContext(ctx context.Context) (Configuration, bool) {
	cfg, ok := ctx.Value(ctxKeyConfiguration).(Configuration)
	return cfg, ok
}

// Configuration carries the settings a Localization is constructed with.
// A value is complete on its own; it is never mutated after construction.
type Configuration struct {
	Locale                  string `env:"NLS_LOCALE"                                       json:"locale"                  yaml:"locale"`
	CacheLanguageResolution bool   `envDefault:"true" env:"NLS_CACHE_LANGUAGE_RESOLUTION" json:"cacheLanguageResolution" yaml:"cache_language_resolution"`

	LogLevel string `envDefault:"info" env:"NLS_LOG_LEVEL" json:"logLevel" yaml:"log_level"`
}

// Default returns the configuration used when nothing else is supplied.
func Default() Configuration {
	return Configuration{
		CacheLanguageResolution: true,
		LogLevel:                "info",
	}
}

// FromEnv builds a configuration from NLS_* environment variables.
func FromEnv() (Configuration, error) {
	cfg, err := env.ParseAs[Configuration]()
	if err != nil {
		return Default(), fmt.Errorf("parsing configuration from environment: %w", err)
	}

	cfg.Locale = NormalizeLocale(cfg.Locale)
	return cfg, nil
}

// FromJSON applies a JSON encoded configuration string on top of the prior
// configuration. Fields absent from the payload keep their prior values.
// On a malformed payload the prior configuration is returned unchanged
// together with the parse error.
func FromJSON(prior Configuration, encoded string) (Configuration, error) {
	cfg := prior
	if err := json.Unmarshal([]byte(encoded), &cfg); err != nil {
		return prior, fmt.Errorf("parsing configuration string: %w", err)
	}

	cfg.Locale = NormalizeLocale(cfg.Locale)
	return cfg, nil
}

// IsPseudo reports whether pseudo localization is active for this configuration.
func (c Configuration) IsPseudo() bool {
	return c.Locale == PseudoLocale
}

// LoggingLevel returns the log level diagnostics are emitted at.
func (c Configuration) LoggingLevel() string {
	return c.LogLevel
}

// NormalizeLocale lower-cases a locale tag, canonicalizing it through BCP 47
// parsing when it parses as one. The reserved pseudo locale and values that
// are not valid tags are kept verbatim apart from the lower-casing.
func NormalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" || locale == PseudoLocale {
		return locale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}

	return strings.ToLower(tag.String())
}
