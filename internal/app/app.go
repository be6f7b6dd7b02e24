// Package app implements the application layer for buildgate.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/buildgate/internal/core/domain"
	"go.trai.ch/buildgate/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.ProjectLoader
	signing ports.SigningSource
	logger  ports.Logger
}

// New creates a new App instance.
func New(loader ports.ProjectLoader, signing ports.SigningSource, log ports.Logger) *App {
	return &App{
		loader:  loader,
		signing: signing,
		logger:  log,
	}
}

// Request describes one build configuration invocation.
type Request struct {
	// ProjectDir is the app project directory. Empty means the working directory.
	ProjectDir string
	// ConfigFile is the project file name inside ProjectDir. Empty means buildgate.yaml.
	ConfigFile string
	// RawDefines is the raw dart-defines property as passed by the Flutter tool.
	RawDefines string
	// Tasks are the requested build task names.
	Tasks []string
	// SigningProperties overrides the signing properties file, relative to ProjectDir.
	SigningProperties string
}

// Resolve evaluates the build configuration for the request.
// It returns an *domain.AbortError when the build must not proceed.
func (a *App) Resolve(_ context.Context, req Request) (*domain.Resolution, error) {
	// 1. Load the project settings
	project, err := a.loader.Load(projectDir(req.ProjectDir), req.ConfigFile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project settings")
	}

	// 2. Decode and classify
	defines := a.DecodeDefines(req.RawDefines)
	classification := a.Classify(req.Tasks)

	// 3. Guard production releases
	if err := domain.GuardProduction(defines, classification.IsProdRelease, project.Production); err != nil {
		return nil, err
	}

	// 4. Resolve signing
	signing, err := a.ResolveSigning(project, req.SigningProperties, classification.IsRelease)
	if err != nil {
		return nil, err
	}

	return &domain.Resolution{
		Tasks:          req.Tasks,
		Defines:        defines,
		Classification: classification,
		Variant:        domain.ResolveVariant(req.Tasks, classification, project),
		Signing:        signing,
	}, nil
}

// ResolveSigning loads the signing properties file and decides the release signing identity.
// An empty path selects the project's configured file.
func (a *App) ResolveSigning(project *domain.Project, path string, isRelease bool) (domain.SigningConfig, error) {
	if path == "" {
		path = project.SigningProperties
	}

	storeBase, err := filepath.Abs(resolvePath(project.Dir, project.StoreBase))
	if err != nil {
		return domain.SigningConfig{}, zerr.With(zerr.Wrap(err, domain.ErrStoreBaseResolveFailed.Error()),
			"store_base", project.StoreBase)
	}

	file, err := a.signing.Load(resolvePath(project.Dir, path))
	if err != nil {
		return domain.SigningConfig{}, domain.UnreadableSigningFile(path, err)
	}
	file.Path = path

	cfg, err := domain.ResolveSigning(file, isRelease, storeBase)
	if err != nil {
		return domain.SigningConfig{}, err
	}

	if !file.Exists {
		a.logger.Info(fmt.Sprintf("%s not found, signing with the debug key", path))
	}
	return cfg, nil
}

// DecodeDefines decodes the raw dart-defines property.
func (a *App) DecodeDefines(raw string) domain.DefineMap {
	return domain.DecodeDefines(raw)
}

// Classify reports the release intent of the requested tasks.
func (a *App) Classify(tasks []string) domain.ReleaseClassification {
	return domain.ClassifyTasks(tasks)
}

func projectDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
