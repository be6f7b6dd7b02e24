package i18n_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildgate/internal/adapters/i18n"
	"go.trai.ch/buildgate/internal/core/domain"
	"golang.org/x/text/language"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.New()
	require.NoError(t, err)
	return tr
}

func TestNew_LoadsLocales(t *testing.T) {
	tr := newTranslator(t)
	assert.ElementsMatch(t, []language.Tag{language.English, language.Korean}, tr.Languages())
}

func TestLocalize_EnglishMatchesDomainText(t *testing.T) {
	tr := newTranslator(t)

	reqs := domain.DefaultProductionRequirements()
	guardErr := domain.GuardProduction(domain.DefineMap{}, true, reqs)
	_, missingErr := domain.ResolveSigning(domain.SigningFile{Path: "key.properties"}, true, ".")
	_, fieldErr := domain.ResolveSigning(domain.SigningFile{
		Path:       "key.properties",
		Exists:     true,
		Properties: map[string]string{"storeFile": "a.jks"},
	}, true, ".")
	unreadable := domain.UnreadableSigningFile("key.properties", errors.New("permission denied"))

	for _, err := range []error{guardErr, missingErr, fieldErr, unreadable} {
		require.Error(t, err)
		assert.Equal(t, err.Error(), tr.Localize(err).Error())
	}
}

func TestLocalize_Korean(t *testing.T) {
	tr := newTranslator(t)
	require.NoError(t, tr.SetLanguage("ko"))

	_, err := domain.ResolveSigning(domain.SigningFile{Path: "key.properties"}, true, ".")
	require.Error(t, err)

	localized := tr.Localize(err)

	var abort *domain.AbortError
	require.ErrorAs(t, localized, &abort)
	assert.Equal(t, domain.AbortSigningFileMissing, abort.Reason)
	assert.Equal(t, "key.properties 파일이 없습니다. release 빌드에는 서명 설정이 필요합니다.", abort.Text)
}

func TestLocalize_KoreanProductionDefines(t *testing.T) {
	tr := newTranslator(t)
	require.NoError(t, tr.SetLanguage("ko-KR"))

	err := domain.GuardProduction(domain.DefineMap{"APP_ENV": "dev"}, true, domain.DefaultProductionRequirements())
	require.Error(t, err)

	assert.Equal(t,
		"prod release 빌드는 dart define 설정이 필수입니다 (누락: APP_ENV, SUPABASE_URL, SUPABASE_PUBLISHABLE_KEY). "+
			"--dart-define-from-file=dart_define.prod.json 옵션과 APP_ENV=prod, SUPABASE_URL, SUPABASE_PUBLISHABLE_KEY 값을 확인하세요.",
		tr.Localize(err).Error())
}

func TestLocalize_KeepsCause(t *testing.T) {
	tr := newTranslator(t)
	require.NoError(t, tr.SetLanguage("ko"))

	cause := errors.New("permission denied")
	localized := tr.Localize(domain.UnreadableSigningFile("key.properties", cause))

	assert.ErrorIs(t, localized, cause)
	assert.Equal(t, "key.properties 파일을 읽을 수 없습니다: permission denied", localized.Error())
}

func TestLocalize_UnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	tr := newTranslator(t)
	require.NoError(t, tr.SetLanguage("fr"))

	_, err := domain.ResolveSigning(domain.SigningFile{Path: "key.properties"}, true, ".")
	require.Error(t, err)
	assert.Equal(t, err.Error(), tr.Localize(err).Error())
}

func TestLocalize_PassesOtherErrors(t *testing.T) {
	tr := newTranslator(t)
	err := errors.New("boom")
	assert.Same(t, err, tr.Localize(err))
	assert.NoError(t, tr.Localize(nil))
}

func TestSetLanguage_Invalid(t *testing.T) {
	tr := newTranslator(t)
	err := tr.SetLanguage("not a language!")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown language")
}
