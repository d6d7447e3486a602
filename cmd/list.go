package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/parser"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored matches and match files",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	var stored []model.MatchSummary
	db, err := openExistingStore()
	if err != nil {
		return err
	}
	if db != nil {
		stored, err = db.ListMatches()
		db.Close()
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
	}

	files, err := parser.ListMatches(cfg.MatchesDir)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("list match files: %w", err)
	}

	if len(stored) == 0 && len(files) == 0 {
		fmt.Fprintln(os.Stdout, "No matches found. Add <match>.csv files to the matches directory or run 'islviz ingest <file.csv>'.")
		return nil
	}
	if len(stored) > 0 {
		report.PrintMatchList(os.Stdout, stored)
	}

	seen := make(map[string]bool, len(stored))
	for _, s := range stored {
		seen[s.Name] = true
	}
	var pending []string
	for _, f := range files {
		if !seen[f] {
			pending = append(pending, f)
		}
	}
	if len(pending) > 0 {
		fmt.Fprintf(os.Stdout, "\nNot ingested (%s):\n", cfg.MatchesDir)
		for _, f := range pending {
			fmt.Fprintf(os.Stdout, "  %s\n", f)
		}
	}
	return nil
}
