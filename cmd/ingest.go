package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/aggregator"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/parser"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/report"
)

var ingestAll bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [match.csv...]",
	Short: "Parse match event logs and store them",
	Long: `Parse one or more OPTA match event CSV files and store them in the database.
The match name is the file base name; re-ingesting a match replaces it.
With --all (or no arguments) every *.csv in the matches directory is ingested.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestAll, "all", false, "ingest every CSV in the matches directory")
}

func runIngest(cmd *cobra.Command, args []string) error {
	paths := args
	if ingestAll || len(paths) == 0 {
		names, err := parser.ListMatches(cfg.MatchesDir)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		for _, n := range names {
			paths = append(paths, parser.MatchPath(cfg.MatchesDir, n))
		}
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stdout, "No match files found in %s.\n", cfg.MatchesDir)
		return nil
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	for _, path := range paths {
		fmt.Fprintf(os.Stdout, "Parsing %s...\n", path)
		table, warnings, err := parser.ParseFile(path, parser.Options{Encoding: cfg.Encoding})
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		for _, w := range warnings {
			log.Warn().Str("match", table.Match).Msg(w)
		}
		checkTable(table)

		teams := aggregator.Teams(table)
		abs := sourcePath(path)
		if err := db.InsertMatch(table, abs, teams); err != nil {
			return fmt.Errorf("insert match: %w", err)
		}
		log.Info().Str("match", table.Match).Int("rows", len(table.Events)).Msg("stored")
		report.PrintMatchSummary(os.Stdout, model.MatchSummary{
			Name: table.Match, SourcePath: abs, Teams: teams, EventCount: len(table.Events),
		})
	}
	return nil
}

// sourcePath is the absolute form of path, or path itself when it cannot be
// resolved.
func sourcePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("resolve source path")
		return path
	}
	return abs
}
