// Package report renders resolution results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/muesli/termenv"
	"go.trai.ch/buildgate/internal/adapters/detector"
	"go.trai.ch/buildgate/internal/core/domain"
	"go.trai.ch/buildgate/internal/core/ports"
	"go.trai.ch/buildgate/internal/ui/output"
	"go.trai.ch/buildgate/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Reporter implements ports.Reporter.
type Reporter struct {
	detect func(io.Writer) detector.OutputMode
}

// New creates a Reporter that styles text output for terminals.
func New() *Reporter {
	return &Reporter{detect: detector.DetectEnvironment}
}

// Fingerprint identifies a secret value without revealing it.
func Fingerprint(value string) string {
	return fmt.Sprintf("xxh64:%016x", xxhash.Sum64String(value))
}

// Resolution writes the resolved build configuration.
func (r *Reporter) Resolution(w io.Writer, res *domain.Resolution, opts ports.ReportOptions) error {
	doc := newResolutionDoc(res, opts.Reveal)
	return r.render(w, opts, doc, func(p *printer) {
		p.classification(res.Tasks, res.Classification)
		p.field("Variant", p.accent(res.Variant.Name)+p.faint(variantDetail(res.Variant)))
		p.signing(doc.Signing)
		p.defines(doc.Defines)
	})
}

// Defines writes decoded definitions.
func (r *Reporter) Defines(w io.Writer, defines domain.DefineMap, opts ports.ReportOptions) error {
	doc := newDefineDocs(defines, opts.Reveal)
	return r.render(w, opts, doc, func(p *printer) {
		if len(doc) == 0 {
			p.line(p.faint("No defines"))
			return
		}
		for _, d := range doc {
			p.define(d, "")
		}
	})
}

// Classification writes the classification of the given tasks.
func (r *Reporter) Classification(
	w io.Writer, tasks []string, c domain.ReleaseClassification, opts ports.ReportOptions,
) error {
	doc := classificationDoc{Tasks: nonNil(tasks), ReleaseClassification: c}
	return r.render(w, opts, doc, func(p *printer) {
		p.classification(tasks, c)
	})
}

func (r *Reporter) render(w io.Writer, opts ports.ReportOptions, doc any, text func(*printer)) error {
	switch opts.Format {
	case "", FormatText:
		if !detector.IsValidFlag(opts.Color) {
			return zerr.With(domain.ErrUnknownColorMode, "color", opts.Color)
		}
		text(r.printer(w, opts.Color))
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return zerr.Wrap(err, "failed to encode json report")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return zerr.Wrap(err, "failed to encode yaml report")
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, "failed to encode yaml report")
		}
		return nil
	default:
		return zerr.With(domain.ErrUnknownReportFormat, "format", opts.Format)
	}
}

func (r *Reporter) printer(w io.Writer, color string) *printer {
	out := output.NewPlain(w)
	if detector.ResolveMode(r.detect(w), color) == detector.ModeStyled {
		out = output.New(w)
	}
	return &printer{w: w, out: out}
}

func variantDetail(v domain.Variant) string {
	var parts []string
	if v.ApplicationID != "" {
		parts = append(parts, v.ApplicationID)
	}
	if v.DisplayName != "" {
		parts = append(parts, v.DisplayName)
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type printer struct {
	w   io.Writer
	out *termenv.Output
}

const labelWidth = 14

func (p *printer) line(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

func (p *printer) field(label, value string) {
	p.line(fmt.Sprintf("%-*s %s", labelWidth, label+":", value))
}

func (p *printer) accent(s string) string {
	return p.out.String(s).Foreground(p.out.Color(string(style.Iris))).Bold().String()
}

func (p *printer) faint(s string) string {
	if s == "" {
		return ""
	}
	return p.out.String(s).Foreground(p.out.Color(string(style.Slate))).String()
}

func (p *printer) flag(v bool) string {
	if v {
		return p.out.String(style.Check + " yes").Foreground(p.out.Color(string(style.Green))).String()
	}
	return p.faint(style.Circle + " no")
}

func (p *printer) classification(tasks []string, c domain.ReleaseClassification) {
	names := strings.Join(tasks, " ")
	if names == "" {
		names = p.faint("(none)")
	}
	p.field("Tasks", names)
	p.field("Release", p.flag(c.IsRelease))
	p.field("Prod release", p.flag(c.IsProdRelease))
}

func (p *printer) signing(s signingDoc) {
	if s.Identity != domain.IdentityRelease {
		p.field("Signing", p.out.String(style.Warning+" "+string(s.Identity)).
			Foreground(p.out.Color(string(style.Yellow))).String())
		return
	}
	p.field("Signing", p.accent(string(s.Identity)))
	p.field("  Store file", s.StoreFile)
	p.field("  Key alias", s.KeyAlias)
	p.field("  Store pass", p.faint(s.StorePassword))
	p.field("  Key pass", p.faint(s.KeyPassword))
}

func (p *printer) defines(defines []defineDoc) {
	if len(defines) == 0 {
		p.field("Defines", p.faint("(none)"))
		return
	}
	p.line("Defines:")
	for _, d := range defines {
		p.define(d, "  ")
	}
}

func (p *printer) define(d defineDoc, indent string) {
	if d.Fingerprint != "" {
		p.line(indent + d.Key + " " + p.faint(d.Fingerprint))
		return
	}
	p.line(indent + d.Key + "=" + *d.Value)
}
