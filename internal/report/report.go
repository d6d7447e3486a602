package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/aggregator"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/storage"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintMatchSummary prints a one-line summary header for the match.
func PrintMatchSummary(w io.Writer, s model.MatchSummary) {
	teams := strings.Join(s.Teams, " vs ")
	if teams == "" {
		teams = "—"
	}
	fmt.Fprintf(w, "\nMatch: %s  |  Teams: %s  |  Events: %d\n\n", s.Name, teams, s.EventCount)
}

// PrintMatchList prints one row per stored match.
func PrintMatchList(w io.Writer, matches []model.MatchSummary) {
	table := newTable(w)
	table.Header("MATCH", "TEAMS", "EVENTS", "INGESTED", "SOURCE")
	for _, m := range matches {
		table.Append(
			m.Name,
			strings.Join(m.Teams, " vs "),
			strconv.Itoa(m.EventCount),
			m.IngestedAt,
			m.SourcePath,
		)
	}
	table.Render()
}

// PrintPlayers prints a team sheet. If focus is non-empty, that player's row is
// marked with ">".
func PrintPlayers(w io.Writer, players []aggregator.PlayerInfo, focus string) {
	table := newTable(w)
	table.Header(" ", "PLAYER", "TEAM", "POSITION", "EVENTS")
	for _, p := range players {
		pos := p.Position
		if pos == "" {
			pos = "—"
		}
		table.Append(marker(p.Name, focus), p.Name, p.Team, pos, strconv.Itoa(p.Events))
	}
	table.Render()
}

// PrintPlayerTally prints per-player category counts.
// Columns: PLAYER | TEAM | EV | PASS | CMP% | KEY | AST | SHOTS | GOALS | DRB | TKL | INT | AER% | REC
func PrintPlayerTally(w io.Writer, tallies []aggregator.PlayerTally, focus string) {
	table := newTable(w)
	table.Header(
		" ", "PLAYER", "TEAM", "EV", "PASS", "CMP%", "KEY", "AST",
		"SHOTS", "GOALS", "DRB", "TKL", "INT", "AER%", "REC",
	)
	for i := range tallies {
		p := &tallies[i]
		cmp := "—"
		if p.Count(model.CategoryCompletedPass)+p.Count(model.CategoryIncompletePass) > 0 {
			cmp = fmt.Sprintf("%.0f%%", p.PassAccuracy())
		}
		aer := "—"
		if p.Count(model.CategoryAerialWon)+p.Count(model.CategoryAerialLost) > 0 {
			aer = fmt.Sprintf("%.0f%%", p.AerialWinPct())
		}
		table.Append(
			marker(p.Player, focus),
			p.Player,
			p.Team,
			strconv.Itoa(p.Events),
			strconv.Itoa(p.Count(model.CategoryPass)),
			cmp,
			strconv.Itoa(p.Count(model.CategoryKeyPass)),
			strconv.Itoa(p.Count(model.CategoryAssist)),
			strconv.Itoa(p.Shots()),
			strconv.Itoa(p.Count(model.CategoryGoal)),
			strconv.Itoa(p.Count(model.CategorySuccessfulDribble)),
			strconv.Itoa(p.Count(model.CategoryTackle)),
			strconv.Itoa(p.Count(model.CategoryInterception)),
			aer,
			strconv.Itoa(p.Count(model.CategoryBallRecovery)),
		)
	}
	table.Render()
}

// PrintPlanSummary prints the selection header, one row per layer, and the
// hull and degradation notes of a render plan.
func PrintPlanSummary(w io.Writer, plan *model.RenderPlan) {
	sel := plan.Selection
	who := sel.Team
	if who == "" {
		who = "all teams"
	}
	if sel.Player != "" {
		who = sel.Player + " (" + who + ")"
	}
	pos := sel.Position
	if pos == "" {
		pos = "—"
	}
	fmt.Fprintf(w, "\nMatch: %s  |  Selection: %s  |  Position: %s  |  View: %s  |  Events: %d\n\n",
		sel.Match, who, pos, sel.View, plan.EventCount)

	if len(plan.Layers) > 0 {
		table := newTable(w)
		table.Header("LAYER", "MARKERS", "ARROWS")
		for _, l := range plan.Layers {
			arrows := "—"
			if l.Directional {
				n := 0
				for _, m := range l.Markers {
					if m.EndX != nil && m.EndY != nil {
						n++
					}
				}
				arrows = strconv.Itoa(n)
			}
			table.Append(l.Label, strconv.Itoa(len(l.Markers)), arrows)
		}
		table.Render()
	}

	if len(plan.DensityInput) > 0 {
		fmt.Fprintf(w, "Density input: %d pass origins\n", len(plan.DensityInput))
	}
	if plan.Hull != nil {
		if plan.Hull.Skipped {
			fmt.Fprintf(w, "Convex hull: skipped (%s)\n", plan.Hull.Reason)
		} else {
			fmt.Fprintf(w, "Convex hull: %d vertices from %d points\n", len(plan.Hull.Vertices), len(plan.HullInput))
		}
	}
	if len(plan.Unavailable) > 0 {
		names := make([]string, len(plan.Unavailable))
		for i, c := range plan.Unavailable {
			names[i] = c.String()
		}
		fmt.Fprintf(w, "Unavailable (missing columns): %s\n", strings.Join(names, ", "))
	}
}

// PrintSeasonTotals prints cross-match totals for one team.
func PrintSeasonTotals(w io.Writer, totals []storage.PlayerTotals) {
	table := newTable(w)
	table.Header("PLAYER", "MATCHES", "EV", "EV/M", "PASS", "CMP%", "SHOTS", "GOALS", "TKL", "INT")
	for _, p := range totals {
		cmp := "—"
		if p.Passes > 0 {
			cmp = fmt.Sprintf("%.0f%%", float64(p.CompletedPasses)/float64(p.Passes)*100)
		}
		perMatch := "—"
		if p.Matches > 0 {
			perMatch = fmt.Sprintf("%.1f", float64(p.Events)/float64(p.Matches))
		}
		table.Append(
			p.Player,
			strconv.Itoa(p.Matches),
			strconv.Itoa(p.Events),
			perMatch,
			strconv.Itoa(p.Passes),
			cmp,
			strconv.Itoa(p.Shots),
			strconv.Itoa(p.Goals),
			strconv.Itoa(p.Tackles),
			strconv.Itoa(p.Interceptions),
		)
	}
	table.Render()
}

// PrintRows prints the result of an ad-hoc query followed by its row count.
func PrintRows(w io.Writer, cols []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}
	table := newTable(w)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		table.Append(cells...)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%d rows)\n", len(rows))
}

func marker(name, focus string) string {
	if focus != "" && name == focus {
		return ">"
	}
	return " "
}
