package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [targets...] [KEY=value...]",
		Short: "Run the given targets and their prerequisites",
		Long: `Run resolves each target against the runfile, schedules its
prerequisites in dependency order, and executes every recipe that is out of
date. Arguments of the form KEY=value override runfile variables.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Run(cmd.Context(), args)
		},
	}
}
