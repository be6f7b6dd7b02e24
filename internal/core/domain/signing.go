package domain

import (
	"fmt"
	"path/filepath"
)

// SigningIdentity selects which key signs the release build type.
type SigningIdentity string

const (
	// IdentityRelease signs with the credentials from the signing properties file.
	IdentityRelease SigningIdentity = "release"
	// IdentityDebug signs with the build tool's debug key.
	IdentityDebug SigningIdentity = "debug"
)

// Property names recognized in the signing properties file.
const (
	PropStoreFile     = "storeFile"
	PropStorePassword = "storePassword"
	PropKeyAlias      = "keyAlias"
	PropKeyPassword   = "keyPassword"
)

// SigningFields lists the required signing properties in the order they are checked.
var SigningFields = []string{PropStoreFile, PropStorePassword, PropKeyAlias, PropKeyPassword}

// SigningFile is the loaded state of the signing properties file.
type SigningFile struct {
	// Path is the file location as configured, used in messages.
	Path string
	// Exists is false when there is no file at Path.
	Exists bool
	// Properties holds the parsed key/value pairs when the file exists.
	Properties map[string]string
}

// SigningCredentials is a complete release signing identity.
type SigningCredentials struct {
	StoreFile     string `json:"store_file" yaml:"store_file"`
	StorePassword string `json:"-" yaml:"-"`
	KeyAlias      string `json:"key_alias" yaml:"key_alias"`
	KeyPassword   string `json:"-" yaml:"-"`
}

// SigningConfig is the signing configuration applied to the release build type.
type SigningConfig struct {
	Identity SigningIdentity `json:"identity" yaml:"identity"`
	// Credentials is set only for IdentityRelease.
	Credentials *SigningCredentials `json:"credentials,omitempty" yaml:"credentials,omitempty"`
}

// ResolveSigning decides the signing identity for the release build type.
//
// Without a file, release builds abort and other builds fall back to the debug identity.
// A present file must define all four fields, whatever the build kind; the first missing one aborts.
// A relative storeFile is resolved against storeBase.
func ResolveSigning(file SigningFile, isRelease bool, storeBase string) (SigningConfig, error) {
	if !file.Exists {
		if isRelease {
			return SigningConfig{}, &AbortError{
				Reason: AbortSigningFileMissing,
				Data:   map[string]string{"Path": file.Path},
				Text:   fmt.Sprintf("%s not found. Release build requires signing configuration.", file.Path),
			}
		}
		return SigningConfig{Identity: IdentityDebug}, nil
	}

	values := make(map[string]string, len(SigningFields))
	for _, field := range SigningFields {
		v, ok := file.Properties[field]
		if !ok {
			return SigningConfig{}, &AbortError{
				Reason: AbortSigningFieldMissing,
				Fields: []string{field},
				Data:   map[string]string{"Field": field, "Path": file.Path},
				Text:   fmt.Sprintf("Missing %s in %s", field, file.Path),
			}
		}
		values[field] = v
	}

	storeFile := values[PropStoreFile]
	if !filepath.IsAbs(storeFile) {
		storeFile = filepath.Join(storeBase, storeFile)
	}

	return SigningConfig{
		Identity: IdentityRelease,
		Credentials: &SigningCredentials{
			StoreFile:     storeFile,
			StorePassword: values[PropStorePassword],
			KeyAlias:      values[PropKeyAlias],
			KeyPassword:   values[PropKeyPassword],
		},
	}, nil
}

// UnreadableSigningFile reports a signing properties file that exists but could not be loaded.
func UnreadableSigningFile(path string, cause error) *AbortError {
	return &AbortError{
		Reason: AbortSigningFileUnreadable,
		Data:   map[string]string{"Path": path},
		Text:   fmt.Sprintf("%s could not be loaded", path),
		Err:    cause,
	}
}
