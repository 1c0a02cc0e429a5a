package nls

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/pitabwire/nls/config"
)

const bundleInfix = ".nls"

// resolver maps a base resource name to the concrete bundle file for the
// configured locale. Results are cached per resource stem when caching is
// enabled, so two stems with different best matching locales resolve
// independently of each other.
type resolver struct {
	cfg     config.Configuration
	loader  BundleLoader
	formats []bundleFormat

	mu    sync.Mutex
	cache map[string]resolved
}

type resolved struct {
	suffix string
	format bundleFormat
}

func newResolver(cfg config.Configuration, loader BundleLoader, formats []bundleFormat) *resolver {
	return &resolver{
		cfg:     cfg,
		loader:  loader,
		formats: formats,
		cache:   make(map[string]resolved),
	}
}

// resolve returns the bundle file name for a resource together with the
// format it is encoded in. Starting from the full configured locale the
// search drops one dash separated segment at a time until an existing file
// is found, degrading to the generic bundle when none is. More specific
// locale segments always win over less specific ones.
func (r *resolver) resolve(resource string) (string, bundleFormat) {
	stem := strings.TrimSuffix(resource, filepath.Ext(resource))

	if r.cfg.CacheLanguageResolution {
		r.mu.Lock()
		if res, ok := r.cache[stem]; ok {
			r.mu.Unlock()
			return stem + res.suffix, res.format
		}
		r.mu.Unlock()
	}

	res := r.search(stem)

	if r.cfg.CacheLanguageResolution {
		r.mu.Lock()
		r.cache[stem] = res
		r.mu.Unlock()
	}

	return stem + res.suffix, res.format
}

func (r *resolver) search(stem string) resolved {
	if r.cfg.IsPseudo() || r.cfg.Locale == "" {
		return r.generic(stem)
	}

	for locale := r.cfg.Locale; ; {
		for _, f := range r.formats {
			suffix := bundleInfix + "." + locale + "." + f.ext
			if r.loader.Exists(stem + suffix) {
				return resolved{suffix: suffix, format: f}
			}
		}

		sep := strings.LastIndex(locale, "-")
		if sep < 0 {
			break
		}
		locale = locale[:sep]
	}

	return r.generic(stem)
}

// generic picks the locale independent bundle. The file is probed per
// registered format so that non JSON bundles are still found; when nothing
// exists the JSON name is returned regardless and loading reports the miss.
func (r *resolver) generic(stem string) resolved {
	for _, f := range r.formats {
		suffix := bundleInfix + "." + f.ext
		if r.loader.Exists(stem + suffix) {
			return resolved{suffix: suffix, format: f}
		}
	}

	return resolved{suffix: bundleInfix + "." + r.formats[0].ext, format: r.formats[0]}
}
