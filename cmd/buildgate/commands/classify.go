package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [tasks...]",
		Short: "Report whether the given tasks request a release or production release",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.reporter.Classification(cmd.OutOrStdout(), args, c.app.Classify(args), c.reportOptions(cmd))
		},
	}
	addReportFlags(cmd)
	return cmd
}
