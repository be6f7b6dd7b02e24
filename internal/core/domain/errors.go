package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrUnsupportedConfigVersion is returned when the project file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported project file version")

	// ErrInvalidFlavorName is returned when a flavor name is empty or contains invalid characters.
	ErrInvalidFlavorName = zerr.New("flavor name can only contain alphanumeric characters")

	// ErrDuplicateFlavor is returned when two flavors share a name.
	ErrDuplicateFlavor = zerr.New("duplicate flavor")

	// ErrEmptyRequiredDefine is returned when a required production define has an empty name.
	ErrEmptyRequiredDefine = zerr.New("required production define names must not be empty")

	// ErrSigningReadFailed is returned when the signing properties file exists but cannot be read.
	ErrSigningReadFailed = zerr.New("failed to read signing properties")

	// ErrSigningParseFailed is returned when the signing properties file cannot be parsed.
	ErrSigningParseFailed = zerr.New("failed to parse signing properties")

	// ErrStoreBaseResolveFailed is returned when the key store base directory cannot be made absolute.
	ErrStoreBaseResolveFailed = zerr.New("failed to resolve key store base directory")

	// ErrUnknownReportFormat is returned when a report format is not text, json or yaml.
	ErrUnknownReportFormat = zerr.New("unknown report format, expected 'text', 'json' or 'yaml'")

	// ErrUnknownColorMode is returned when a color mode is not auto, always or never.
	ErrUnknownColorMode = zerr.New("unknown color mode, expected 'auto', 'always' or 'never'")

	// ErrUnknownLogFormat is returned when a log format is not pretty or json.
	ErrUnknownLogFormat = zerr.New("unknown log format, expected 'pretty' or 'json'")

	// ErrUnknownLanguage is returned when a language tag cannot be parsed.
	ErrUnknownLanguage = zerr.New("unknown language")
)

// AbortReason identifies why a build configuration was aborted.
// The value doubles as the message ID of the localized abort message.
type AbortReason string

const (
	// AbortProductionDefines means a production release lacks the required definitions.
	AbortProductionDefines AbortReason = "production_defines"
	// AbortSigningFileMissing means a release build was requested without a signing properties file.
	AbortSigningFileMissing AbortReason = "signing_file_missing"
	// AbortSigningFieldMissing means the signing properties file lacks a required field.
	AbortSigningFieldMissing AbortReason = "signing_field_missing"
	// AbortSigningFileUnreadable means the signing properties file exists but could not be loaded.
	AbortSigningFileUnreadable AbortReason = "signing_file_unreadable"
)

// AbortError is a fatal build configuration failure.
// Once returned, no further resolution steps run and the process exits non-zero.
type AbortError struct {
	Reason AbortReason
	// Fields names the offending definitions or properties.
	Fields []string
	// Data carries the values used to render Text, keyed by template field name.
	Data map[string]string
	// Text is the human-readable message including the remediation.
	Text string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *AbortError) Error() string {
	if e.Err == nil {
		return e.Text
	}
	return e.Text + ": " + e.Err.Error()
}

// Message returns the abort text without its cause chain.
func (e *AbortError) Message() string {
	return e.Text
}

// Unwrap returns the underlying cause.
func (e *AbortError) Unwrap() error {
	return e.Err
}

// WithText returns a copy of the abort error carrying a different message.
func (e *AbortError) WithText(text string) *AbortError {
	c := *e
	c.Text = text
	return &c
}

func joinFields(fields []string) string {
	return strings.Join(fields, ", ")
}
