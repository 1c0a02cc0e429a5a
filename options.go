package nls

import (
	"context"
	"io/fs"

	"github.com/pitabwire/util"

	"github.com/pitabwire/nls/config"
)

// Option configures a Localization while it is being constructed by New.
type Option func(ctx context.Context, l *Localization)

// WithConfiguration Option that replaces the whole configuration value.
func WithConfiguration(cfg config.Configuration) Option {
	return func(_ context.Context, l *Localization) {
		l.cfg = cfg
	}
}

// WithLocale Option that sets the locale translations are resolved for.
// The value is normalized and stored lower-cased; the reserved locale
// "pseudo" enables pseudo localization instead of selecting a translation.
func WithLocale(locale string) Option {
	return func(_ context.Context, l *Localization) {
		l.cfg.Locale = config.NormalizeLocale(locale)
	}
}

// WithCacheLanguageResolution Option that toggles reuse of resolved bundle
// suffixes. Resolution results are kept per resource stem.
func WithCacheLanguageResolution(enabled bool) Option {
	return func(_ context.Context, l *Localization) {
		l.cfg.CacheLanguageResolution = enabled
	}
}

// WithConfigJSON Option that applies a JSON encoded configuration string on
// top of the configuration assembled so far. A malformed payload is reported
// and the previous configuration kept unchanged.
func WithConfigJSON(encoded string) Option {
	return func(ctx context.Context, l *Localization) {
		cfg, err := config.FromJSON(l.cfg, encoded)
		if err != nil {
			util.Log(ctx).WithError(err).
				Warn("configuration string could not be parsed, keeping previous configuration")
			return
		}

		l.cfg = cfg
	}
}

// WithConfigFromEnv Option that loads the configuration from NLS_*
// environment variables. Failures are reported and the previous
// configuration kept unchanged.
func WithConfigFromEnv() Option {
	return func(ctx context.Context, l *Localization) {
		cfg, err := config.FromEnv()
		if err != nil {
			util.Log(ctx).WithError(err).
				Warn("environment configuration could not be parsed, keeping previous configuration")
			return
		}

		l.cfg = cfg
	}
}

// WithLoader Option that supplies the collaborator bundles are read through.
func WithLoader(loader BundleLoader) Option {
	return func(_ context.Context, l *Localization) {
		l.loader = loader
	}
}

// WithDir Option that loads bundles from a directory on the OS filesystem.
func WithDir(root string) Option {
	return WithLoader(NewDirLoader(root))
}

// WithFS Option that loads bundles from an fs.FS, typically an embedded tree.
func WithFS(fsys fs.FS) Option {
	return WithLoader(NewFSLoader(fsys))
}

// WithLogger Option that injects the logger diagnostics are reported on.
func WithLogger(log *util.LogEntry) Option {
	return func(_ context.Context, l *Localization) {
		l.log = log
	}
}

// WithFormat Option that registers an additional bundle encoding by file
// extension, e.g. WithFormat("toml", toml.Unmarshal). JSON is always
// registered and tried first; registering "json" replaces the default
// unmarshaler.
func WithFormat(ext string, unmarshal UnmarshalFunc) Option {
	return func(_ context.Context, l *Localization) {
		l.registerFormat(ext, unmarshal)
	}
}
