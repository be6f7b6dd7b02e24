package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDefinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defines",
		Short: "Decode the dart-defines property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defines := c.app.DecodeDefines(c.settings.GetString(flagDartDefines))
			return c.reporter.Defines(cmd.OutOrStdout(), defines, c.reportOptions(cmd))
		},
	}
	cmd.Flags().String(flagDartDefines, "", "Raw dart-defines property: comma separated base64 KEY=VALUE tokens")
	cmd.Flags().Bool(flagReveal, false, "Print define values instead of their fingerprints")
	addReportFlags(cmd)
	return cmd
}
