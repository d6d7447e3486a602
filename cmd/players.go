package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/aggregator"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/report"
)

var playersTeam string

var playersCmd = &cobra.Command{
	Use:   "players <match>",
	Short: "List the teams and players of a match",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayers,
}

func init() {
	playersCmd.Flags().StringVar(&playersTeam, "team", "", "only list this team")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	table, err := loadTable(args[0])
	if err != nil {
		return err
	}
	teams := aggregator.Teams(table)
	if playersTeam != "" && !contains(teams, playersTeam) {
		return fmt.Errorf("team %q not in match %s (teams: %v)", playersTeam, table.Match, teams)
	}
	for _, team := range teams {
		if playersTeam != "" && team != playersTeam {
			continue
		}
		fmt.Fprintf(os.Stdout, "\n%s\n", team)
		report.PrintPlayers(os.Stdout, aggregator.Players(table, team), "")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
