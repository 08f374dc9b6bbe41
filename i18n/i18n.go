package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale используется, если запрошенная локаль не поддерживается.
const DefaultLocale = "en"

// Translator возвращает перевод по ключу.
// Если перевода нет, возвращается сам ключ.
type Translator interface {
	T(key string) string
}

// TranslatorFunc позволяет использовать функцию как Translator.
type TranslatorFunc func(key string) string

func (f TranslatorFunc) T(key string) string { return f(key) }

// Identity возвращает ключи без перевода.
var Identity Translator = TranslatorFunc(func(key string) string { return key })

// CatalogTranslator переводит ключи по встроенному каталогу golang.org/x/text.
type CatalogTranslator struct {
	tag     language.Tag
	printer *message.Printer
	known   map[string]struct{}
}

var matcher = language.NewMatcher(supported)

// NewTranslator создает переводчик для наиболее подходящей поддерживаемой локали.
func NewTranslator(locale string) (*CatalogTranslator, error) {
	tag := matchLocale(locale)

	cat, err := buildCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to build message catalog: %w", err)
	}

	known := make(map[string]struct{}, len(messages[language.English]))
	for key := range messages[language.English] {
		known[key] = struct{}{}
	}

	return &CatalogTranslator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
		known:   known,
	}, nil
}

// Locale возвращает выбранную локаль.
func (t *CatalogTranslator) Locale() string {
	return t.tag.String()
}

// Has сообщает, есть ли ключ в каталоге.
func (t *CatalogTranslator) Has(key string) bool {
	_, ok := t.known[key]
	return ok
}

// T возвращает перевод ключа для выбранной локали.
func (t *CatalogTranslator) T(key string) string {
	if !t.Has(key) {
		return key
	}
	return t.printer.Sprintf(key)
}

func matchLocale(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return supported[index]
}

// buildCatalog регистрирует сообщения всех локалей.
// Отсутствующие в локали ключи заполняются английским текстом.
func buildCatalog() (*catalog.Builder, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	base := messages[language.English]

	for _, tag := range supported {
		localized := messages[tag]
		for key, text := range base {
			if translated, ok := localized[key]; ok {
				text = translated
			}
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("set %q for %s: %w", key, tag, err)
			}
		}
	}
	return builder, nil
}
