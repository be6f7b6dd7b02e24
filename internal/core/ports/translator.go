package ports

// Translator localizes abort messages.
//
//go:generate mockgen -source=translator.go -destination=mocks/mock_translator.go -package=mocks
type Translator interface {
	// SetLanguage selects the language of later Localize calls.
	SetLanguage(lang string) error
	// Localize returns err with its abort message translated.
	// Errors that are not aborts are returned unchanged.
	Localize(err error) error
}
