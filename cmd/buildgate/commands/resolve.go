package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/buildgate/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [tasks...]",
		Short: "Resolve and gate the build configuration for the given tasks",
		Long: "Decodes the dart defines, classifies the requested tasks, aborts production releases\n" +
			"that lack their required defines and resolves the release signing identity.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Resolve(cmd.Context(), app.Request{
				ProjectDir:        c.settings.GetString(flagProjectDir),
				ConfigFile:        c.settings.GetString(flagConfig),
				RawDefines:        c.settings.GetString(flagDartDefines),
				Tasks:             args,
				SigningProperties: c.settings.GetString(flagKeyProperties),
			})
			if err != nil {
				return err
			}
			return c.reporter.Resolution(cmd.OutOrStdout(), res, c.reportOptions(cmd))
		},
	}
	cmd.Flags().String(flagDartDefines, "", "Raw dart-defines property: comma separated base64 KEY=VALUE tokens")
	cmd.Flags().String(flagKeyProperties, "", "Signing properties file relative to the project directory")
	addReportFlags(cmd)
	return cmd
}
