package translator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

var ErrNotInitialized = errors.New("translator is not initialized")

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads every <lang>.toml file of the folder whose language
// is supported. Failures are logged; missing messages fall back to their id.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	supported := make(map[string]bool, len(cfg.SupportedLanguages))
	for _, lang := range cfg.SupportedLanguages {
		supported[lang] = true
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".toml")
		if len(supported) > 0 && !supported[lang] {
			zap.L().Debug("skipping unsupported translation file", zap.String("file", entry.Name()))
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, entry.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}
}

// Localize renders messageID in lang, falling back to English.
func Localize(lang, messageID string, data map[string]any) (string, error) {
	if Translator == nil {
		return "", ErrNotInitialized
	}
	localizer := i18n.NewLocalizer(Translator, lang, LanguageEn)
	return localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
}
