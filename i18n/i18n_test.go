package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewTranslatorMatchesLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "", want: "en"},
		{locale: "en-US", want: "en"},
		{locale: "de", want: "de"},
		{locale: "de-CH", want: "de"},
		{locale: "not a locale!", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			tr, err := NewTranslator(tt.locale)
			require.NoError(t, err)
			require.Equal(t, tt.want, tr.Locale())
		})
	}
}

func TestTranslate(t *testing.T) {
	de, err := NewTranslator("de")
	require.NoError(t, err)
	en, err := NewTranslator("en")
	require.NoError(t, err)

	assert.Equal(t, "Bereit", de.T("controller:TinyG2.machineState.ready"))
	assert.Equal(t, "Ready", en.T("controller:TinyG2.machineState.ready"))
	assert.Equal(t, "Webcam ist aus", de.T("Webcam is off"))

	// Ключи без немецкого перевода возвращают английский текст
	assert.Equal(t, "Probing", de.T("Probing"))

	// Неизвестный ключ возвращается как есть
	assert.Equal(t, "Planner Buffer", de.T("Planner Buffer"))
}

func TestGermanKeysAreKnown(t *testing.T) {
	for key := range messages[language.German] {
		_, ok := messages[language.English][key]
		assert.True(t, ok, "german key %q has no english source", key)
	}
}

func TestIdentity(t *testing.T) {
	require.Equal(t, "anything", Identity.T("anything"))
}
