package cli

import (
	"github.com/spf13/cobra"

	"github.com/mattgren/dugout/internal/app"
)

// NewCompareCmd creates the compare command.
func NewCompareCmd(opts *rootOptions) *cobra.Command {
	var (
		versus    string
		vsTeam    bool
		vsLeague  bool
		year      string
		yearB     string
		statFlags []string
	)

	cmd := &cobra.Command{
		Use:   "compare <name>",
		Short: "Compare a player against another player, their team, or the league",
		Long: `Compare puts one player's season next to a reference line.

Exactly one mode must be chosen: --versus pits two players of the same
type head to head, --vs-team lines a player up against their club's
average, --vs-league against the league-wide average. Team and league
modes only cover rate stats; counting totals are not comparable to a
roster average.`,
		Example: `  dugout compare judge --versus ohtani
  dugout compare judge --versus judge --year 2024 --year-b 2022
  dugout compare l.webb --vs-league --year 24`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := opts.service(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer done()

			return svc.Compare(cmd.Context(), app.CompareRequest{
				Query:    args[0],
				Versus:   versus,
				VsTeam:   vsTeam,
				VsLeague: vsLeague,
				Year:     year,
				YearB:    yearB,
				Stats:    statFlags,
			})
		},
	}

	cmd.Flags().StringVar(&versus, "versus", "", "opponent name for a head-to-head comparison")
	cmd.Flags().BoolVar(&vsTeam, "vs-team", false, "compare against the player's team average")
	cmd.Flags().BoolVar(&vsLeague, "vs-league", false, "compare against the league average")
	cmd.Flags().StringVarP(&year, "year", "y", "", "season year for the (first) player")
	cmd.Flags().StringVar(&yearB, "year-b", "", "season year for the opponent (head-to-head only)")
	cmd.Flags().StringArrayVarP(&statFlags, "stat", "s", nil, "stat to compare (repeatable, output follows flag order)")
	return cmd
}
