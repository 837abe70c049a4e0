package cli

import (
	"github.com/spf13/cobra"

	"github.com/mattgren/dugout/internal/app"
)

// NewLookupCmd creates the lookup command.
func NewLookupCmd(opts *rootOptions) *cobra.Command {
	var (
		year      string
		statFlags []string
	)

	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Show a player's season or career stat line",
		Long: `Lookup resolves a player name and prints one stat line.

With --year the line covers that season (league leaders render bold,
MLB-wide leaders bold italic); without it the career totals show.
Names accept a first-initial prefix: "l.webb" means "first name starts
with l, last name contains webb".`,
		Example: `  dugout lookup judge --year 2024
  dugout lookup l.webb
  dugout lookup shohei.ohtani --year 24 --stat hr --stat ops`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := opts.service(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer done()

			return svc.Lookup(cmd.Context(), app.LookupRequest{
				Query: args[0],
				Year:  year,
				Stats: statFlags,
			})
		},
	}

	cmd.Flags().StringVarP(&year, "year", "y", "", "season year, 2- or 4-digit; omit for career totals")
	cmd.Flags().StringArrayVarP(&statFlags, "stat", "s", nil, "stat to show (repeatable, output follows flag order)")
	return cmd
}
