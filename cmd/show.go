package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/aggregator"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/report"
)

var (
	showTeam   string
	showPlayer string
)

var showCmd = &cobra.Command{
	Use:   "show <match>",
	Short: "Show per-player action counts for a match",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showTeam, "team", "", "only show this team")
	showCmd.Flags().StringVar(&showPlayer, "player", "", "highlight this player")
}

func runShow(cmd *cobra.Command, args []string) error {
	table, err := loadTable(args[0])
	if err != nil {
		return err
	}
	teams := aggregator.Teams(table)
	if showTeam != "" && !contains(teams, showTeam) {
		return fmt.Errorf("team %q not in match %s (teams: %v)", showTeam, table.Match, teams)
	}

	report.PrintMatchSummary(os.Stdout, model.MatchSummary{
		Name: table.Match, Teams: teams, EventCount: len(table.Events),
	})
	report.PrintPlayerTally(os.Stdout, aggregator.TallySelection(table, showTeam), showPlayer)
	return nil
}
