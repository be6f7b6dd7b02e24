// Package commands implements the CLI commands for the buildgate tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/buildgate/internal/app"
	"go.trai.ch/buildgate/internal/build"
	"go.trai.ch/buildgate/internal/core/domain"
	"go.trai.ch/buildgate/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes the environment variables that back every flag.
const EnvPrefix = "BUILDGATE"

// Flag names shared by several commands.
const (
	flagProjectDir    = "project-dir"
	flagConfig        = "config"
	flagLang          = "lang"
	flagLogFormat     = "log-format"
	flagDartDefines   = "dart-defines"
	flagKeyProperties = "key-properties"
	flagFormat        = "format"
	flagColor         = "color"
	flagReveal        = "reveal"
)

// CLI represents the command line interface for buildgate.
type CLI struct {
	app        Application
	reporter   ports.Reporter
	translator ports.Translator
	logger     ports.Logger
	settings   *viper.Viper
	rootCmd    *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, req app.Request) (*domain.Resolution, error)
	DecodeDefines(raw string) domain.DefineMap
	Classify(tasks []string) domain.ReleaseClassification
}

// jsonLogger is implemented by loggers that can switch to JSON records.
type jsonLogger interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app and adapters.
func New(a Application, reporter ports.Reporter, translator ports.Translator, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "buildgate",
		Short:         "Release build configuration gate for Flutter Android builds",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	pf := rootCmd.PersistentFlags()
	pf.String(flagProjectDir, ".", "App project directory")
	pf.String(flagConfig, domain.ProjectFileName, "Project file name inside the project directory")
	pf.String(flagLang, "en", "Language of abort messages: en or ko")
	pf.String(flagLogFormat, "pretty", "Log format: pretty or json")

	settings := viper.New()
	settings.SetEnvPrefix(EnvPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	c := &CLI{
		app:        a,
		reporter:   reporter,
		translator: translator,
		logger:     log,
		settings:   settings,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newDefinesCmd())
	rootCmd.AddCommand(c.newClassifyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configure layers the command's flags over BUILDGATE_* environment variables
// and applies the global settings.
func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	if err := c.settings.BindPFlags(cmd.Flags()); err != nil {
		return zerr.Wrap(err, "failed to bind flags")
	}

	if err := c.translator.SetLanguage(c.settings.GetString(flagLang)); err != nil {
		return err
	}

	switch format := c.settings.GetString(flagLogFormat); format {
	case "pretty", "json":
		if l, ok := c.logger.(jsonLogger); ok {
			l.SetJSON(format == "json")
		}
	default:
		return zerr.With(domain.ErrUnknownLogFormat, "format", format)
	}
	return nil
}

// reportOptions reads reveal only for commands that declare the flag, so a
// BUILDGATE_REVEAL environment value never unmasks values elsewhere.
func (c *CLI) reportOptions(cmd *cobra.Command) ports.ReportOptions {
	opts := ports.ReportOptions{
		Format: c.settings.GetString(flagFormat),
		Color:  c.settings.GetString(flagColor),
	}
	if cmd.Flags().Lookup(flagReveal) != nil {
		opts.Reveal = c.settings.GetBool(flagReveal)
	}
	return opts
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagFormat, "f", "text", "Report format: text, json or yaml")
	cmd.Flags().String(flagColor, "auto", "Color the text report: auto, always or never")
}

// Execute runs the root command with the given context.
// Errors are localized before they are returned.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.translator.Localize(c.rootCmd.Execute())
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
