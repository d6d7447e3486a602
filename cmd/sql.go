package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/report"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the event database",
	Long: `Run an arbitrary SQL query against the event database and print results as a table.

Schema overview:
  matches(name, source_path, teams, event_count, has_outcome, has_assist,
    has_key_pass, has_position, ingested_at)
  qualifier_pairs(match_name, pair_idx, prefix, id_column, value_column)
  events(match_name, row_idx, event_id, type_id, outcome, x, y,
    player_name, team_name, position, assist, key_pass)
  qualifiers(match_name, row_idx, slot_idx, prefix, qualifier_id, value TEXT)

Note: outcome, assist and key_pass are NULL when the source file lacked the column.
Pass destinations: qualifier_id 140 (end x) and 141 (end y), e.g.
  SELECT e.event_id, q.value FROM events e JOIN qualifiers q
    USING (match_name, row_idx) WHERE e.type_id = 1 AND q.qualifier_id = 140`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	log.Debug().Str("query", query).Int("rows", len(rows)).Msg("sql")
	report.PrintRows(os.Stdout, cols, rows)
	return nil
}
