package nls_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/pitabwire/nls"
)

type LocalizationTestSuite struct {
	suite.Suite
}

func TestLocalizationSuite(t *testing.T) {
	suite.Run(t, &LocalizationTestSuite{})
}

// TestLocalizeEndToEnd drives the whole chain: configuration, locale
// resolution, bundle loading and message formatting.
func (s *LocalizationTestSuite) TestLocalizeEndToEnd() {
	ctx := context.Background()
	fsys := fstest.MapFS{
		"greeter.nls.de.json": &fstest.MapFile{Data: []byte(`["Guten Tag Welt"]`)},
	}

	l := nls.New(ctx, nls.WithLocale("de-DE"), nls.WithFS(fsys))

	localize := l.Load("greeter")
	s.Require().Equal("Guten Tag Welt", localize(0, ""))
}

func (s *LocalizationTestSuite) TestLoadWithoutResource() {
	ctx := context.Background()
	l := nls.New(ctx)

	localize := l.Load("")

	s.Run("formats the fallback message", func() {
		s.Require().Equal("Hello World", localize(nil, "Hello {0}", "World"))
	})

	s.Run("ignores whatever key is supplied", func() {
		s.Require().Equal("Hello", localize("some.key", "Hello"))
		s.Require().Equal("Hello", localize(3, "Hello"))
	})
}

func (s *LocalizationTestSuite) TestConfigJSONOption() {
	ctx := context.Background()
	fsys := fstest.MapFS{
		"greeter.nls.de.json": &fstest.MapFile{Data: []byte(`["Guten Tag Welt"]`)},
		"greeter.nls.json":    &fstest.MapFile{Data: []byte(`["Hello World"]`)},
	}

	s.Run("configuration string selects the locale", func() {
		l := nls.New(ctx, nls.WithConfigJSON(`{"locale": "De-DE"}`), nls.WithFS(fsys))

		localize := l.Load("greeter")
		s.Require().Equal("Guten Tag Welt", localize(0, ""))
		s.Require().Equal("de-de", l.Config().Locale)
	})

	s.Run("malformed configuration string keeps the previous configuration", func() {
		l := nls.New(ctx,
			nls.WithLocale("de"),
			nls.WithConfigJSON(`{"locale": `),
			nls.WithFS(fsys))

		localize := l.Load("greeter")
		s.Require().Equal("Guten Tag Welt", localize(0, ""))
		s.Require().Equal("de", l.Config().Locale)
	})
}

func (s *LocalizationTestSuite) TestEnvironmentConfiguration() {
	s.T().Setenv("NLS_LOCALE", "de-DE")
	s.T().Setenv("NLS_CACHE_LANGUAGE_RESOLUTION", "false")

	ctx := context.Background()
	fsys := fstest.MapFS{
		"greeter.nls.de.json": &fstest.MapFile{Data: []byte(`["Guten Tag Welt"]`)},
	}

	l := nls.New(ctx, nls.WithConfigFromEnv(), nls.WithFS(fsys))

	localize := l.Load("greeter")
	s.Require().Equal("Guten Tag Welt", localize(0, ""))
	s.Require().Equal("de-de", l.Config().Locale)
	s.Require().False(l.Config().CacheLanguageResolution)
}

func (s *LocalizationTestSuite) TestRegisteredFormats() {
	ctx := context.Background()

	s.Run("toml bundles resolve when registered", func() {
		fsys := fstest.MapFS{
			"greeter.nls.de.toml": &fstest.MapFile{Data: []byte("greeting = \"Guten Tag {0}\"\n")},
		}

		l := nls.New(ctx,
			nls.WithLocale("de"),
			nls.WithFS(fsys),
			nls.WithFormat("toml", toml.Unmarshal))

		localize := l.Load("greeter")
		s.Require().Equal("Guten Tag Welt", localize("greeting", "Hello {0}", "Welt"))
	})

	s.Run("yaml sequences localize by index", func() {
		fsys := fstest.MapFS{
			"greeter.nls.yaml": &fstest.MapFile{Data: []byte("- Hello World\n- Goodbye\n")},
		}

		l := nls.New(ctx,
			nls.WithFS(fsys),
			nls.WithFormat("yaml", yaml.Unmarshal))

		localize := l.Load("greeter")
		s.Require().Equal("Goodbye", localize(1, ""))
	})

	s.Run("json is preferred when both formats exist", func() {
		fsys := fstest.MapFS{
			"greeter.nls.de.json": &fstest.MapFile{Data: []byte(`["aus json"]`)},
			"greeter.nls.de.toml": &fstest.MapFile{Data: []byte("0 = \"aus toml\"\n")},
		}

		l := nls.New(ctx,
			nls.WithLocale("de"),
			nls.WithFS(fsys),
			nls.WithFormat("toml", toml.Unmarshal))

		localize := l.Load("greeter")
		s.Require().Equal("aus json", localize(0, ""))
	})
}

func (s *LocalizationTestSuite) TestDirLoader() {
	ctx := context.Background()
	l := nls.New(ctx, nls.WithLocale("de-DE"), nls.WithDir("testdata"))

	localize := l.Load("messages")
	s.Require().Equal("Guten Tag Welt", localize(0, ""))

	generic := nls.New(ctx, nls.WithDir("testdata")).Load("messages")
	s.Require().Equal("Hello World", generic(0, ""))
}

func (s *LocalizationTestSuite) TestContextPlumbing() {
	ctx := context.Background()
	l := nls.New(ctx, nls.WithLocale("de"))

	ctx = nls.ToContext(ctx, l)
	s.Require().Same(l, nls.FromContext(ctx), "localization should round trip through the context")

	s.Require().Nil(nls.FromContext(context.Background()), "an empty context should carry no localization")
}
