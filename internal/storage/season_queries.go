package storage

import (
	"fmt"
	"strings"
)

// PlayerTotals holds summed event counts for one player across several matches.
// Counts are by OPTA type code, so they work on files without an outcome column.
type PlayerTotals struct {
	Player          string
	Team            string
	Matches         int
	Events          int
	Passes          int
	CompletedPasses int
	Shots           int
	Goals           int
	Tackles         int
	Interceptions   int
}

// TeamMatches returns the stored match names in which team has at least one
// event, ordered by name.
func (db *DB) TeamMatches(team string) ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT DISTINCT match_name FROM events
		WHERE team_name = ?
		ORDER BY match_name`, team)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// SeasonTotals returns per-player summed counts of team across the given
// matches, ordered by events descending (most involved players first).
func (db *DB) SeasonTotals(team string, matches []string) ([]PlayerTotals, error) {
	if len(matches) == 0 {
		return nil, nil
	}
	args := make([]interface{}, 0, len(matches)+1)
	args = append(args, team)
	for _, m := range matches {
		args = append(args, m)
	}

	query := fmt.Sprintf(`
		SELECT player_name, team_name,
		       COUNT(DISTINCT match_name),
		       COUNT(1),
		       SUM(CASE WHEN type_id = 1 THEN 1 ELSE 0 END),
		       SUM(CASE WHEN type_id = 1 AND outcome = 1 THEN 1 ELSE 0 END),
		       SUM(CASE WHEN type_id IN (13, 14, 15, 16) THEN 1 ELSE 0 END),
		       SUM(CASE WHEN type_id = 16 THEN 1 ELSE 0 END),
		       SUM(CASE WHEN type_id = 7 THEN 1 ELSE 0 END),
		       SUM(CASE WHEN type_id = 8 THEN 1 ELSE 0 END)
		FROM events
		WHERE team_name = ?
		  AND player_name != ''
		  AND match_name IN (%s)
		GROUP BY player_name, team_name
		ORDER BY COUNT(1) DESC, player_name`,
		placeholders(len(matches)))

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlayerTotals
	for rows.Next() {
		var p PlayerTotals
		if err := rows.Scan(
			&p.Player, &p.Team,
			&p.Matches, &p.Events,
			&p.Passes, &p.CompletedPasses,
			&p.Shots, &p.Goals,
			&p.Tackles, &p.Interceptions,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// placeholders returns a comma-separated string of n "?" for SQL IN clauses,
// e.g. placeholders(3) → "?,?,?".
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}
