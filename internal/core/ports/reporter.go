package ports

import (
	"io"

	"go.trai.ch/buildgate/internal/core/domain"
)

// ReportOptions selects how a report is rendered.
type ReportOptions struct {
	// Format is one of "text", "json" or "yaml".
	Format string
	// Color is one of "auto", "always" or "never" and only affects the text format.
	Color string
	// Reveal prints define values instead of their fingerprints.
	Reveal bool
}

// Reporter renders resolution results for humans and scripts.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Resolution writes the resolved build configuration.
	Resolution(w io.Writer, res *domain.Resolution, opts ReportOptions) error
	// Defines writes decoded definitions.
	Defines(w io.Writer, defines domain.DefineMap, opts ReportOptions) error
	// Classification writes the classification of the given tasks.
	Classification(w io.Writer, tasks []string, c domain.ReleaseClassification, opts ReportOptions) error
}
