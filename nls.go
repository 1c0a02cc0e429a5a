// Package nls localizes message strings at runtime. A Localization value is
// constructed once with a locale and a bundle loader, then hands out localize
// functions over individual message bundles. Bundle files follow the
// <stem>.nls.<locale>.<ext> naming convention and the most specific available
// locale wins, falling back segment by segment to the generic bundle.
//
// A localize function never fails hard: broken calls, missing keys and
// unloadable bundles degrade to the caller supplied fallback message or to an
// empty result, with diagnostics emitted on the configured logger.
package nls

import (
	"context"
	"encoding/json"

	"github.com/pitabwire/util"

	"github.com/pitabwire/nls/config"
)

// Key identifies a message together with a comment for translators.
// The comment has no runtime effect; extraction tooling reads it.
type Key struct {
	Name    string
	Comment []string
}

// LocalizeFunc produces the localized text for a message. The key is a string
// key, a Key record or a numeric index depending on the shape of the bundle
// the function was created over. The message argument is the untranslated
// fallback, formatted with args when no translation applies. An empty result
// means no message could be produced at all.
type LocalizeFunc func(key any, message string, args ...any) string

// UnmarshalFunc parses serialized bundle bytes, json.Unmarshal style.
type UnmarshalFunc func(data []byte, v any) error

// Localization resolves and loads message bundles for one configured locale.
// It is immutable after New and safe for concurrent use; create separate
// instances for separate locale contexts.
type Localization struct {
	cfg      config.Configuration
	loader   BundleLoader
	formats  []bundleFormat
	resolver *resolver
	log      *util.LogEntry
}

// New creates a Localization with the supplied options applied over the
// default configuration. Without options it loads generic bundles from the
// current directory.
func New(ctx context.Context, opts ...Option) *Localization {
	l := &Localization{
		cfg:     config.Default(),
		formats: []bundleFormat{{ext: "json", unmarshal: json.Unmarshal}},
	}

	for _, opt := range opts {
		opt(ctx, l)
	}

	if l.log == nil {
		l.log = util.Log(ctx)
	}
	if l.loader == nil {
		l.loader = NewDirLoader("")
	}

	l.resolver = newResolver(l.cfg, l.loader, l.formats)

	return l
}

// Config returns the configuration this Localization was constructed with.
func (l *Localization) Config() config.Configuration {
	return l.cfg
}

// Load resolves the bundle for the supplied resource stem, loads it and
// returns a localize function over its messages. An empty resource skips
// loading entirely and yields a function that formats fallback messages.
// Load never fails: an unloadable or malformed bundle degrades the same way,
// after reporting the cause.
func (l *Localization) Load(resource string) LocalizeFunc {
	if resource == "" {
		return l.localizeDirect()
	}

	name, f := l.resolver.resolve(resource)

	data, err := l.loader.Load(name)
	if err != nil {
		l.log.WithError(err).WithField("bundle", name).
			Warn("message bundle could not be loaded, localizing with fallback messages")
		return l.localizeDirect()
	}

	b, err := decodeBundle(data, f)
	if err != nil {
		l.log.WithError(err).WithField("bundle", name).
			Warn("message bundle is not usable, localizing with fallback messages")
		return l.localizeDirect()
	}

	switch b.kind {
	case bundleIndexed:
		return l.localizeIndexed(b.messages)
	default:
		return l.localizeKeyed(b.byKey)
	}
}

func (l *Localization) registerFormat(ext string, unmarshal UnmarshalFunc) {
	for i := range l.formats {
		if l.formats[i].ext == ext {
			l.formats[i].unmarshal = unmarshal
			return
		}
	}

	l.formats = append(l.formats, bundleFormat{ext: ext, unmarshal: unmarshal})
}
