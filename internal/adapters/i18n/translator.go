// Package i18n localizes build abort messages.
// It loads the embedded YAML message files with go-i18n and falls back to the
// English text carried by the abort itself when a translation is missing.
package i18n

import (
	"embed"
	"errors"
	"io/fs"
	"path"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.trai.ch/buildgate/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator implements ports.Translator.
type Translator struct {
	bundle    *i18n.Bundle
	mu        sync.RWMutex
	localizer *i18n.Localizer
}

// New creates a Translator with every embedded locale loaded, localizing to English.
func New() (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list locales")
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := path.Join("locales", f.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read locale"), "file", name)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse locale"), "file", name)
		}
	}

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
	}, nil
}

// SetLanguage selects the language used by Localize.
func (t *Translator) SetLanguage(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return zerr.With(domain.ErrUnknownLanguage, "lang", lang)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.localizer = i18n.NewLocalizer(t.bundle, tag.String())
	return nil
}

// Localize translates the message of an abort error; other errors pass through.
func (t *Translator) Localize(err error) error {
	var abort *domain.AbortError
	if !errors.As(err, &abort) {
		return err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	data := make(map[string]any, len(abort.Data))
	for k, v := range abort.Data {
		data[k] = v
	}

	msg, lerr := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    string(abort.Reason),
		TemplateData: data,
	})
	if lerr != nil || msg == "" {
		return abort
	}
	return abort.WithText(msg)
}

// Languages returns the tags of the loaded locales.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}
