package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/report"
)

var seasonMatches []string

var seasonCmd = &cobra.Command{
	Use:   "season <team>",
	Short: "Show a team's per-player totals across stored matches",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeason,
}

func init() {
	seasonCmd.Flags().StringSliceVar(&seasonMatches, "match", nil, "restrict to these matches (repeatable)")
}

func runSeason(cmd *cobra.Command, args []string) error {
	team := args[0]
	db, err := openExistingStore()
	if err != nil {
		return err
	}
	if db == nil {
		fmt.Fprintln(os.Stdout, "No database yet. Run 'islviz ingest' first.")
		return nil
	}
	defer db.Close()

	matches := seasonMatches
	if len(matches) == 0 {
		matches, err = db.TeamMatches(team)
		if err != nil {
			return fmt.Errorf("team matches: %w", err)
		}
	}
	if len(matches) == 0 {
		fmt.Fprintf(os.Stdout, "No stored matches for %q.\n", team)
		return nil
	}

	totals, err := db.SeasonTotals(team, matches)
	if err != nil {
		return fmt.Errorf("season totals: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\n%s  |  Matches: %d\n\n", team, len(matches))
	report.PrintSeasonTotals(os.Stdout, totals)
	return nil
}
