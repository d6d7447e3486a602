package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
)

// teamSep joins team names in the matches.teams column.
const teamSep = "|"

// MatchExists returns true if an event log with the given name is stored.
func (db *DB) MatchExists(name string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches WHERE name = ?", name).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertMatch stores the whole event table in one transaction. A match stored
// under the same name is replaced.
func (db *DB) InsertMatch(table *model.EventTable, sourcePath string, teams []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := deleteMatchRows(tx, table.Match); err != nil {
		return err
	}

	s := table.Schema
	_, err = tx.Exec(`
		INSERT INTO matches(name, source_path, teams, event_count,
			has_outcome, has_assist, has_key_pass, has_position, ingested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		table.Match, sourcePath, strings.Join(teams, teamSep), len(table.Events),
		boolInt(s.HasOutcome), boolInt(s.HasAssist), boolInt(s.HasKeyPass), boolInt(s.HasPosition),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", table.Match, err)
	}

	for i, p := range s.QualifierPairs {
		if _, err := tx.Exec(`
			INSERT INTO qualifier_pairs(match_name, pair_idx, prefix, id_column, value_column)
			VALUES (?, ?, ?, ?, ?)`, table.Match, i, p.Prefix, p.IDColumn, p.ValueColumn); err != nil {
			return fmt.Errorf("insert qualifier pair %s: %w", p.Prefix, err)
		}
	}

	evStmt, err := tx.Prepare(`
		INSERT INTO events(match_name, row_idx, event_id, type_id, outcome, x, y,
			player_name, team_name, position, assist, key_pass)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer evStmt.Close()

	qStmt, err := tx.Prepare(`
		INSERT INTO qualifiers(match_name, row_idx, slot_idx, prefix, qualifier_id, value)
		VALUES (?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer qStmt.Close()

	for _, e := range table.Events {
		_, err = evStmt.Exec(
			table.Match, e.RowIndex, e.EventID, e.TypeID, nullInt(e.Outcome), e.X, e.Y,
			e.PlayerName, e.TeamName, e.Position, nullInt(e.Assist), nullInt(e.KeyPass),
		)
		if err != nil {
			return fmt.Errorf("insert event row %d: %w", e.RowIndex, err)
		}
		for slot, q := range e.Qualifiers {
			if _, err := qStmt.Exec(table.Match, e.RowIndex, slot, q.Prefix, q.ID, q.Value); err != nil {
				return fmt.Errorf("insert qualifier row %d/%s: %w", e.RowIndex, q.Prefix, err)
			}
		}
	}
	return tx.Commit()
}

// ListMatches returns all stored match summaries ordered by name.
func (db *DB) ListMatches() ([]model.MatchSummary, error) {
	rows, err := db.conn.Query(`
		SELECT name, source_path, teams, event_count, ingested_at
		FROM matches ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetMatch returns the summary of one stored match.
func (db *DB) GetMatch(name string) (*model.MatchSummary, error) {
	row := db.conn.QueryRow(`
		SELECT name, source_path, teams, event_count, ingested_at
		FROM matches WHERE name = ?`, name)
	s, err := scanSummary(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadMatch reconstructs the event table stored under name, rows in their
// original order and qualifier slots in discovery order.
func (db *DB) LoadMatch(name string) (*model.EventTable, error) {
	table := &model.EventTable{Match: name}
	var hasOutcome, hasAssist, hasKeyPass, hasPosition int
	err := db.conn.QueryRow(`
		SELECT has_outcome, has_assist, has_key_pass, has_position
		FROM matches WHERE name = ?`, name).
		Scan(&hasOutcome, &hasAssist, &hasKeyPass, &hasPosition)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	table.Schema = model.Schema{
		HasOutcome:  hasOutcome != 0,
		HasAssist:   hasAssist != 0,
		HasKeyPass:  hasKeyPass != 0,
		HasPosition: hasPosition != 0,
	}

	pairs, err := db.conn.Query(`
		SELECT prefix, id_column, value_column FROM qualifier_pairs
		WHERE match_name = ? ORDER BY pair_idx`, name)
	if err != nil {
		return nil, err
	}
	for pairs.Next() {
		var p model.QualifierPair
		if err := pairs.Scan(&p.Prefix, &p.IDColumn, &p.ValueColumn); err != nil {
			pairs.Close()
			return nil, err
		}
		table.Schema.QualifierPairs = append(table.Schema.QualifierPairs, p)
	}
	pairs.Close()
	if err := pairs.Err(); err != nil {
		return nil, err
	}

	rows, err := db.conn.Query(`
		SELECT row_idx, event_id, type_id, outcome, x, y,
		       player_name, team_name, position, assist, key_pass
		FROM events WHERE match_name = ? ORDER BY row_idx`, name)
	if err != nil {
		return nil, err
	}
	byRow := make(map[int]int)
	for rows.Next() {
		var e model.RawEvent
		var outcome, assist, keyPass sql.NullInt64
		if err := rows.Scan(
			&e.RowIndex, &e.EventID, &e.TypeID, &outcome, &e.X, &e.Y,
			&e.PlayerName, &e.TeamName, &e.Position, &assist, &keyPass,
		); err != nil {
			rows.Close()
			return nil, err
		}
		e.Outcome, e.Assist, e.KeyPass = intPtr(outcome), intPtr(assist), intPtr(keyPass)
		byRow[e.RowIndex] = len(table.Events)
		table.Events = append(table.Events, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	quals, err := db.conn.Query(`
		SELECT row_idx, prefix, qualifier_id, value FROM qualifiers
		WHERE match_name = ? ORDER BY row_idx, slot_idx`, name)
	if err != nil {
		return nil, err
	}
	defer quals.Close()
	for quals.Next() {
		var rowIdx int
		var q model.QualifierSlot
		if err := quals.Scan(&rowIdx, &q.Prefix, &q.ID, &q.Value); err != nil {
			return nil, err
		}
		i, ok := byRow[rowIdx]
		if !ok {
			continue
		}
		table.Events[i].Qualifiers = append(table.Events[i].Qualifiers, q)
	}
	return table, quals.Err()
}

// DeleteMatch removes a stored match and all of its rows.
func (db *DB) DeleteMatch(name string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow("SELECT COUNT(1) FROM matches WHERE name = ?", name).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", ErrMatchNotFound, name)
	}
	if err := deleteMatchRows(tx, name); err != nil {
		return err
	}
	return tx.Commit()
}

// QueryRaw runs an arbitrary query and returns column names and stringified rows.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = formatValue(v)
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(r rowScanner) (model.MatchSummary, error) {
	var s model.MatchSummary
	var teams string
	if err := r.Scan(&s.Name, &s.SourcePath, &teams, &s.EventCount, &s.IngestedAt); err != nil {
		return s, err
	}
	if teams != "" {
		s.Teams = strings.Split(teams, teamSep)
	}
	return s, nil
}

func deleteMatchRows(tx *sql.Tx, name string) error {
	for _, table := range []string{"qualifiers", "events", "qualifier_pairs", "matches"} {
		col := "match_name"
		if table == "matches" {
			col = "name"
		}
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE "+col+" = ?", name); err != nil {
			return fmt.Errorf("delete %s for %s: %w", table, name, err)
		}
	}
	return nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	case float64:
		return fmt.Sprintf("%.4g", x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
