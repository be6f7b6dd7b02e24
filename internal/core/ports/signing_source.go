package ports

import "go.trai.ch/buildgate/internal/core/domain"

// SigningSource defines the interface for reading the signing properties file.
//
//go:generate mockgen -source=signing_source.go -destination=mocks/mock_signing_source.go -package=mocks
type SigningSource interface {
	// Load reads the properties file at path. A missing file is not an error;
	// it yields a SigningFile with Exists set to false.
	Load(path string) (domain.SigningFile, error)
}
