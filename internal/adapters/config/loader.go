// Package config provides the project file loader for buildgate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/buildgate/internal/core/domain"
	"go.trai.ch/buildgate/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var validFlavorNameRegex = regexp.MustCompile("^[a-zA-Z0-9]+$")

// Loader implements ports.ProjectLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the project file named filename inside dir.
// Settings the file omits, and a missing file altogether, fall back to domain.DefaultProject.
func (l *Loader) Load(dir, filename string) (*domain.Project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "dir", dir)
	}

	if filename == "" {
		filename = domain.ProjectFileName
	}
	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(absDir, filename)
	}

	project := domain.DefaultProject(absDir)

	//nolint:gosec // path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return project, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Projectfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := l.apply(project, &file, path); err != nil {
		return nil, err
	}

	return project, nil
}

func (l *Loader) apply(project *domain.Project, file *Projectfile, path string) error {
	switch file.Version {
	case "":
		l.Logger.Warn(fmt.Sprintf("'version' not set in %s, assuming %q", filepath.Base(path), domain.ConfigVersion))
	case domain.ConfigVersion:
	default:
		return zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
	}

	if file.ApplicationID != "" {
		project.ApplicationID = file.ApplicationID
	}
	if file.Signing.Properties != "" {
		project.SigningProperties = file.Signing.Properties
	}
	if file.Signing.StoreBase != "" {
		project.StoreBase = file.Signing.StoreBase
	}

	if file.Production != nil {
		production, err := buildProduction(file.Production)
		if err != nil {
			return err
		}
		project.Production = production
	}

	if file.Flavors != nil {
		flavors, err := buildFlavors(file.Flavors)
		if err != nil {
			return err
		}
		project.Flavors = flavors
	}

	return nil
}

func buildProduction(dto *ProductionDTO) (domain.ProductionRequirements, error) {
	reqs := domain.DefaultProductionRequirements()

	if dto.EnvKey != "" {
		reqs.EnvKey = dto.EnvKey
	}
	if dto.EnvValue != "" {
		reqs.EnvValue = dto.EnvValue
	}
	if dto.Required != nil {
		reqs.Required = dto.Required
	}
	if dto.DefinesFile != "" {
		reqs.DefinesFile = dto.DefinesFile
	}

	for _, key := range reqs.Required {
		if key == "" {
			return domain.ProductionRequirements{}, zerr.With(domain.ErrEmptyRequiredDefine, "field", "production.required")
		}
	}

	return reqs, nil
}

func buildFlavors(dtos []FlavorDTO) ([]domain.Flavor, error) {
	flavors := make([]domain.Flavor, 0, len(dtos))
	seen := make(map[string]bool, len(dtos))

	for _, dto := range dtos {
		if !validFlavorNameRegex.MatchString(dto.Name) {
			return nil, zerr.With(domain.ErrInvalidFlavorName, "flavor", dto.Name)
		}
		if seen[dto.Name] {
			return nil, zerr.With(domain.ErrDuplicateFlavor, "flavor", dto.Name)
		}
		seen[dto.Name] = true

		flavors = append(flavors, domain.Flavor{
			Name:                dto.Name,
			ApplicationIDSuffix: dto.ApplicationIDSuffix,
			DisplayName:         dto.DisplayName,
		})
	}

	return flavors, nil
}
