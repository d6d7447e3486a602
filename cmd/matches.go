package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/aggregator"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/classify"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/parser"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/qualifier"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/storage"
)

// openStore opens the configured database, creating its directory.
func openStore() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(cfg.DBPath, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// openExistingStore opens the database only if the file is already there, so
// read-only commands never create one. It returns nil, nil when it is absent.
func openExistingStore() (*storage.DB, error) {
	if _, err := os.Stat(cfg.DBPath); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat db: %w", err)
	}
	return openStore()
}

// loadTable returns the event table of match, preferring the store over the
// matches directory.
func loadTable(match string) (*model.EventTable, error) {
	db, err := openExistingStore()
	if err != nil {
		return nil, err
	}
	if db != nil {
		table, err := db.LoadMatch(match)
		db.Close()
		if err == nil {
			log.Debug().Str("match", match).Int("rows", len(table.Events)).Msg("loaded from store")
			checkTable(table)
			return table, nil
		}
		if !errors.Is(err, storage.ErrMatchNotFound) {
			return nil, fmt.Errorf("load match: %w", err)
		}
	}

	path := parser.MatchPath(cfg.MatchesDir, match)
	table, warnings, err := parser.ParseFile(path, parser.Options{Encoding: cfg.Encoding})
	if errors.Is(err, parser.ErrMatchNotFound) {
		return nil, fmt.Errorf("match %q not found in store or %s: %w", match, cfg.MatchesDir, err)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, w := range warnings {
		log.Warn().Str("match", match).Msg(w)
	}
	log.Debug().Str("match", match).Str("path", path).Int("rows", len(table.Events)).Msg("loaded from file")
	checkTable(table)
	return table, nil
}

// checkTable logs the soft schema problems of a loaded table.
func checkTable(table *model.EventTable) {
	if teams := aggregator.Teams(table); len(teams) != 2 {
		log.Warn().Str("match", table.Match).Strs("teams", teams).Msg("expected two teams")
	}
	for _, c := range classify.Unavailable(table.Schema) {
		r, _ := classify.RuleFor(c)
		log.Info().Str("match", table.Match).Str("category", c.String()).
			Str("column", r.Requires.String()).Msg("category unavailable: column missing")
	}
	if !table.Schema.HasQualifiers() {
		log.Warn().Str("match", table.Match).Msg("no qualifier columns: arrows will be omitted")
	}
	if n := qualifier.CountAmbiguous(qualifier.ResolveAll(table.Events)); n > 0 {
		log.Warn().Str("match", table.Match).Int("rows", n).Msg("duplicate 140/141 qualifiers, last slot used")
	}
}
