// Package keystore reads the signing properties file that holds release key store credentials.
package keystore

import (
	"errors"
	"io/fs"
	"os"

	"github.com/magiconair/properties"
	"go.trai.ch/buildgate/internal/core/domain"
	"go.trai.ch/zerr"
)

// Source implements ports.SigningSource for Java properties files.
type Source struct {
	loader *properties.Loader
}

// NewSource creates a new Source.
// Files are decoded as ISO-8859-1 like java.util.Properties.load, without ${} expansion.
func NewSource() *Source {
	return &Source{
		loader: &properties.Loader{
			Encoding:         properties.ISO_8859_1,
			DisableExpansion: true,
		},
	}
}

// Load reads and parses the properties file at path.
// The file is fully read and closed before parsing; a missing file is reported through Exists.
func (s *Source) Load(path string) (domain.SigningFile, error) {
	file := domain.SigningFile{Path: path}

	//nolint:gosec // path comes from the project settings
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return file, zerr.With(zerr.Wrap(err, domain.ErrSigningReadFailed.Error()), "path", path)
	}

	props, err := s.loader.LoadBytes(data)
	if err != nil {
		return file, zerr.With(zerr.Wrap(err, domain.ErrSigningParseFailed.Error()), "path", path)
	}

	file.Exists = true
	file.Properties = props.Map()
	return file, nil
}
