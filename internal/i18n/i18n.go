// Package i18n translates user-visible quiz strings.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// ErrUnsupportedLanguage is returned for a language with no embedded locale.
var ErrUnsupportedLanguage = errors.New("unsupported language")

type ctxKey struct{}

// loadBundle parses the embedded locales once. English is the fallback for
// messages a locale lacks.
var loadBundle = sync.OnceValues(func() (*i18n.Bundle, error) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale file %s: %w", e.Name(), err)
		}
		if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("parse locale file %s: %w", e.Name(), err)
		}
		slog.Debug("loaded locale file", "file", e.Name())
	}
	return b, nil
})

// Init loads the translations and checks that lang has a locale.
// It must succeed before NewLocalizer or the T functions are used.
func Init(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("parse language %q: %w", lang, err)
	}
	if _, err := loadBundle(); err != nil {
		return err
	}
	if _, err := Match(tag); err != nil {
		return err
	}
	return nil
}

// Languages returns the tags of the embedded locales, English first.
func Languages() []language.Tag {
	b, err := loadBundle()
	if err != nil {
		return nil
	}
	return slices.Clone(b.LanguageTags())
}

// Match returns the embedded locale that serves tag. Regional variants such
// as en-US match their base locale.
func Match(tag language.Tag) (language.Tag, error) {
	available := Languages()
	if len(available) == 0 {
		return language.Und, fmt.Errorf("%w %q: no locales loaded", ErrUnsupportedLanguage, tag)
	}
	_, idx, conf := language.NewMatcher(available).Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("%w %q (available: %v)", ErrUnsupportedLanguage, tag, available)
	}
	return available[idx], nil
}

// NewLocalizer creates a localizer for the given language.
func NewLocalizer(lang string) *i18n.Localizer {
	b, _ := loadBundle()
	return i18n.NewLocalizer(b, lang)
}

// WithLocalizer stores a localizer in the context.
func WithLocalizer(ctx context.Context, loc *i18n.Localizer) context.Context {
	return context.WithValue(ctx, ctxKey{}, loc)
}

func localizerFromCtx(ctx context.Context) *i18n.Localizer {
	if loc, ok := ctx.Value(ctxKey{}).(*i18n.Localizer); ok {
		return loc
	}
	return NewLocalizer("en")
}

// localize returns the message ID itself when no translation exists.
func localize(ctx context.Context, cfg *i18n.LocalizeConfig) string {
	s, err := localizerFromCtx(ctx).Localize(cfg)
	if err != nil {
		slog.Warn("missing translation", "id", cfg.MessageID, "error", err)
		return cfg.MessageID
	}
	return s
}

// T translates a message by ID.
func T(ctx context.Context, msgID string) string {
	return localize(ctx, &i18n.LocalizeConfig{MessageID: msgID})
}

// Td translates a message by ID with template data.
func Td(ctx context.Context, msgID string, data map[string]any) string {
	return localize(ctx, &i18n.LocalizeConfig{MessageID: msgID, TemplateData: data})
}

// Tp translates a pluralized message; the template sees the count as .Count.
func Tp(ctx context.Context, msgID string, count int) string {
	return localize(ctx, &i18n.LocalizeConfig{
		MessageID:    msgID,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
}
