package i18n

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/cropdoctor/internal/models"
)

func TestValidateAllBundles(t *testing.T) {
	require.NoError(t, Validate())
}

func TestCheckNoEmptyCatchesMissingKeys(t *testing.T) {
	broken := *bundles[models.LangEnglish]
	broken.Chat.Welcome = ""

	err := checkNoEmpty(reflect.ValueOf(broken), "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "en.Chat.Welcome")
}

func TestGetFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, bundles[models.LangEnglish], Get(models.Language("fr")))
	assert.Equal(t, bundles[models.LangKannada], Get(models.LangKannada))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName(models.LangEnglish))
	assert.Equal(t, "मराठी", LanguageName(models.LangMarathi))
	assert.Equal(t, "English", LanguageName(models.Language("xx")))
}

func TestWelcomeStringsDiffer(t *testing.T) {
	seen := map[string]models.Language{}
	for lang, b := range bundles {
		prev, dup := seen[b.Chat.Welcome]
		assert.False(t, dup, "welcome for %s duplicates %s", lang, prev)
		seen[b.Chat.Welcome] = lang
	}
}

func TestSpeechLangCodes(t *testing.T) {
	assert.Equal(t, "en-IN", SpeechLangCodes[models.LangEnglish])
	assert.Equal(t, "hi-IN", SpeechLangCodes[models.LangHindi])
	assert.Equal(t, "mr-IN", SpeechLangCodes[models.LangMarathi])
	assert.Equal(t, "kn-IN", SpeechLangCodes[models.LangKannada])
}
