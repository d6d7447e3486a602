package aggregator

import (
	"strconv"
	"testing"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
)

const (
	teamGoa    = "FC Goa"
	teamOdisha = "Odisha FC"

	playerX      = "X"
	playerY      = "Brison Fernandes"
	playerKeeper = "Hrithik Tiwari"
	playerOdisha = "Ahmed Jahouh"
)

func intp(v int) *int { return &v }

// makeEvent creates a RawEvent with an outcome and no qualifiers.
func makeEvent(id int64, typeID, outcome int, team, player string) model.RawEvent {
	return model.RawEvent{
		EventID: id, TypeID: typeID, Outcome: intp(outcome),
		X: float64(id % 100), Y: 50,
		TeamName: team, PlayerName: player,
	}
}

// withEnd attaches 140/141 qualifiers to e.
func withEnd(e model.RawEvent, x, y float64) model.RawEvent {
	e.Qualifiers = append(e.Qualifiers,
		model.QualifierSlot{Prefix: "qualifier/0", ID: model.QualifierEndX, Value: strconv.FormatFloat(x, 'f', -1, 64)},
		model.QualifierSlot{Prefix: "qualifier/1", ID: model.QualifierEndY, Value: strconv.FormatFloat(y, 'f', -1, 64)},
	)
	return e
}

// makeTable builds a two-team match with a complete schema.
func makeTable(events ...model.RawEvent) *model.EventTable {
	for i := range events {
		events[i].RowIndex = i
	}
	return &model.EventTable{
		Match: "goa-vs-odisha",
		Schema: model.Schema{
			HasOutcome: true, HasAssist: true, HasKeyPass: true,
			QualifierPairs: []model.QualifierPair{{Prefix: "qualifier/0"}, {Prefix: "qualifier/1"}},
		},
		Events: events,
	}
}

func sampleMatch() *model.EventTable {
	keyPass := withEnd(makeEvent(3, 1, 1, teamGoa, playerX), 88, 40)
	keyPass.KeyPass = intp(1)
	assist := withEnd(makeEvent(9, 1, 1, teamGoa, playerY), 92, 50)
	assist.Assist = intp(1)

	return makeTable(
		model.RawEvent{EventID: 1, TypeID: 32, TeamName: teamGoa},                // period start, no player
		withEnd(makeEvent(2, 1, 1, teamGoa, playerX), 60, 30),                    // completed pass
		keyPass,                                                                  // completed key pass
		withEnd(makeEvent(4, 1, 0, teamGoa, playerX), 70, 70),                    // incomplete pass
		makeEvent(5, 16, 1, teamGoa, playerY),                                    // goal, no qualifiers
		makeEvent(6, 44, 1, teamOdisha, playerOdisha),                            // aerial won
		makeEvent(7, 7, 1, teamGoa, playerX),                                     // successful tackle
		makeEvent(8, 1, 1, teamGoa, playerX),                                     // completed pass, no destination
		assist,                                                                   // assist
		model.RawEvent{EventID: 10, TypeID: 52, Outcome: intp(1), X: 5, Y: 50, TeamName: teamGoa, PlayerName: playerKeeper, Position: model.PositionGoalkeeper},
		model.RawEvent{EventID: 11, TypeID: 10, Outcome: intp(1), X: 3, Y: 48, TeamName: teamGoa, PlayerName: playerKeeper, Position: model.PositionGoalkeeper},
		model.RawEvent{EventID: 12, TypeID: 15, Outcome: intp(1), X: 20, Y: 40, TeamName: teamGoa, PlayerName: playerKeeper, Position: model.PositionGoalkeeper},
		withEnd(model.RawEvent{EventID: 13, TypeID: 1, Outcome: intp(1), X: 8, Y: 50, TeamName: teamGoa, PlayerName: playerKeeper, Position: model.PositionGoalkeeper}, 45, 20),
	)
}

func markerIDs(l *model.Layer) []int64 {
	if l == nil {
		return nil
	}
	ids := make([]int64, len(l.Markers))
	for i, m := range l.Markers {
		ids[i] = m.EventID
	}
	return ids
}

func hasID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ---- Selection ----

func TestSelect_TeamAndPlayer(t *testing.T) {
	table := sampleMatch()
	resolved := Resolve(table)
	events := make([]model.ResolvedEvent, len(resolved))
	for i := range resolved {
		events[i] = resolved[i].ResolvedEvent
	}

	got := Select(events, teamGoa, playerX)
	if len(got) != 5 {
		t.Fatalf("expected 5 events for %s, got %d", playerX, len(got))
	}
	prev := -1
	for _, e := range got {
		if e.PlayerName != playerX || e.TeamName != teamGoa {
			t.Errorf("row %d leaked into selection: %s/%s", e.EventID, e.TeamName, e.PlayerName)
		}
		if e.RowIndex <= prev {
			t.Error("selection not order-preserving")
		}
		prev = e.RowIndex
	}

	if all := Select(events, "", ""); len(all) != len(events) {
		t.Errorf("empty selection should return the whole match, got %d", len(all))
	}
	if again := Select(events, teamGoa, playerX); len(again) != len(got) {
		t.Error("selection is not idempotent")
	}
	if len(Select(events, teamGoa, "nobody")) != 0 {
		t.Error("unknown player should select nothing")
	}
}

// TestPartition_ReconstructsTeam checks that the per-player subsets of a team
// reassemble the team subset exactly.
func TestPartition_ReconstructsTeam(t *testing.T) {
	table := sampleMatch()
	var events []model.ResolvedEvent
	for _, tg := range Resolve(table) {
		events = append(events, tg.ResolvedEvent)
	}
	team := Select(events, teamGoa, "")
	parts := Partition(team)

	total := 0
	seen := make(map[int64]bool)
	for player, rows := range parts {
		sub := Select(team, teamGoa, player)
		if player != "" && len(sub) != len(rows) {
			t.Errorf("partition for %q differs from Select: %d vs %d", player, len(rows), len(sub))
		}
		for _, r := range rows {
			if r.PlayerName != player {
				t.Errorf("row %d in wrong part %q", r.EventID, player)
			}
			if seen[r.EventID] {
				t.Errorf("row %d in two parts", r.EventID)
			}
			seen[r.EventID] = true
		}
		total += len(rows)
	}
	if total != len(team) {
		t.Errorf("partition size %d != team size %d", total, len(team))
	}
	if _, ok := parts[""]; !ok {
		t.Error("team-level row without a player should be kept under the empty key")
	}
}

func TestTeamsAndPlayers(t *testing.T) {
	table := sampleMatch()
	teams := Teams(table)
	if len(teams) != 2 || teams[0] != teamGoa || teams[1] != teamOdisha {
		t.Fatalf("Teams: %v", teams)
	}

	players := Players(table, teamGoa)
	if len(players) != 3 {
		t.Fatalf("expected 3 Goa players, got %d: %+v", len(players), players)
	}
	for _, p := range players {
		if p.Name == playerKeeper && p.Position != model.PositionGoalkeeper {
			t.Errorf("keeper position: %q", p.Position)
		}
		if p.Name == "" {
			t.Error("unnamed rows should not be listed as a player")
		}
	}
	if len(Players(table, "")) != 4 {
		t.Errorf("expected 4 players across both teams")
	}
}

// ---- Render plan ----

// TestBuildPlan_CompletedPassVsKeyPass is the end-to-end case: a completed
// pass with the keyPass flag is drawn only in the key-pass layer, and plain
// completed passes stay in the completed-pass layer.
func TestBuildPlan_CompletedPassVsKeyPass(t *testing.T) {
	plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, Player: playerX, View: model.ViewPassing})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	completed := markerIDs(plan.Layer(model.CategoryCompletedPass))
	key := markerIDs(plan.Layer(model.CategoryKeyPass))
	if !hasID(completed, 2) || !hasID(completed, 8) {
		t.Errorf("completed passes 2 and 8 should be drawn as CompletedPass: %v", completed)
	}
	if hasID(completed, 3) {
		t.Error("key pass 3 must not be drawn in the CompletedPass layer")
	}
	if !hasID(key, 3) || len(key) != 1 {
		t.Errorf("KeyPass layer should hold exactly event 3, got %v", key)
	}
	if pass := markerIDs(plan.Layer(model.CategoryPass)); len(pass) != 0 {
		t.Errorf("outcome-known passes should not also be drawn in the Pass layer: %v", pass)
	}
	if inc := markerIDs(plan.Layer(model.CategoryIncompletePass)); len(inc) != 1 || inc[0] != 4 {
		t.Errorf("IncompletePass layer: %v", inc)
	}
	if len(plan.DensityInput) != 4 {
		t.Errorf("density input should hold the 4 pass origins, got %d", len(plan.DensityInput))
	}
	if plan.Hull != nil {
		t.Error("passing view should not compute a hull")
	}
}

func TestBuildPlan_KeyPassOverlapOnlyWhenBothLayersActive(t *testing.T) {
	// The offensive view has no CompletedPass layer, so nothing is suppressed.
	plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, Player: playerX, View: model.ViewOffensive})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.Layer(model.CategoryCompletedPass) != nil {
		t.Error("offensive view should not carry a CompletedPass layer")
	}
	if key := markerIDs(plan.Layer(model.CategoryKeyPass)); !hasID(key, 3) {
		t.Errorf("key pass missing from offensive view: %v", key)
	}
}

func TestBuildPlan_EachRowInOneLayer(t *testing.T) {
	plan, err := BuildPlan(sampleMatch(), model.Selection{View: model.ViewAll})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	drawn := make(map[int64]int)
	for _, l := range plan.Layers {
		for _, m := range l.Markers {
			drawn[m.EventID]++
		}
	}
	for id, n := range drawn {
		if n != 1 {
			t.Errorf("event %d drawn in %d layers", id, n)
		}
	}
	if _, ok := drawn[1]; ok {
		t.Error("period start row belongs to no category and must not be drawn")
	}
	if len(plan.Layers) != len(model.AllCategories()) {
		t.Errorf("all view should carry a layer per category, got %d", len(plan.Layers))
	}
}

// TestBuildPlan_GoalWithoutQualifiers: a goal with no qualifiers is a point
// marker with a nil destination.
func TestBuildPlan_GoalWithoutQualifiers(t *testing.T) {
	plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, Player: playerY, View: model.ViewOffensive})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	goals := plan.Layer(model.CategoryGoal)
	if goals == nil || len(goals.Markers) != 1 {
		t.Fatalf("expected one goal marker, got %+v", goals)
	}
	m := goals.Markers[0]
	if m.X != 5 || m.Y != 50 {
		t.Errorf("goal marker origin: %+v", m)
	}
	if m.EndX != nil || m.EndY != nil {
		t.Error("goal marker should have no destination")
	}
	if goals.Directional {
		t.Error("Goal layer is not directional")
	}
}

func TestBuildPlan_DirectionalWithoutDestination(t *testing.T) {
	plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, Player: playerX, View: model.ViewPassing})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	l := plan.Layer(model.CategoryCompletedPass)
	for _, m := range l.Markers {
		switch m.EventID {
		case 2:
			if m.EndX == nil || *m.EndX != 60 || *m.EndY != 30 {
				t.Errorf("pass 2 destination: %+v", m)
			}
		case 8:
			if m.EndX != nil || m.EndY != nil {
				t.Error("pass 8 has no qualifiers; arrow must be omitted")
			}
		}
	}
}

func TestBuildPlan_GoalkeeperView(t *testing.T) {
	plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, Player: playerKeeper})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if !plan.Goalkeeper || plan.Selection.Position != model.PositionGoalkeeper {
		t.Fatalf("position should resolve to goalkeeper: %+v", plan.Selection)
	}
	gk := GoalkeeperCategories()
	for _, l := range plan.Layers {
		if !gk.Has(l.Category) {
			t.Errorf("goalkeeper view shows outfield category %s", l.Category)
		}
	}
	if plan.Layer(model.CategoryShotSaved) != nil {
		t.Error("ShotSaved is suppressed in the goalkeeper view even when the data has one")
	}
	block := plan.Layer(model.CategoryBlock)
	if block == nil || block.Label != "Save" || len(block.Markers) != 1 {
		t.Errorf("keeper save layer: %+v", block)
	}
	if pick := markerIDs(plan.Layer(model.CategoryKeeperPickup)); len(pick) != 1 || pick[0] != 10 {
		t.Errorf("keeper pickup layer: %v", pick)
	}
}

// TestBuildPlan_PositionIsDisplayOnly: the same keeper rows viewed with an
// outfield position override keep their data membership.
func TestBuildPlan_PositionIsDisplayOnly(t *testing.T) {
	plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, Player: playerKeeper, Position: "Defender"})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.Goalkeeper {
		t.Fatal("explicit position should override the data")
	}
	if pick := markerIDs(plan.Layer(model.CategoryKeeperPickup)); len(pick) != 1 {
		t.Errorf("pickup row still matches its type code: %v", pick)
	}
	if shot := markerIDs(plan.Layer(model.CategoryShotSaved)); len(shot) != 1 {
		t.Errorf("outfield view should show the ShotSaved row: %v", shot)
	}

	// An outfielder's view shows keeper layers empty, never filled from other players.
	outfield, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, Player: playerX})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if n := len(outfield.Layer(model.CategoryKeeperPickup).Markers); n != 0 {
		t.Errorf("outfielder has no pickups, got %d", n)
	}
}

func TestBuildPlan_HullView(t *testing.T) {
	plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, Player: playerX, View: model.ViewHull})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if len(plan.Layers) != 0 {
		t.Errorf("hull view has no category layers, got %d", len(plan.Layers))
	}
	if plan.Hull == nil {
		t.Fatal("hull view should compute a hull")
	}
	// Player X's origins all sit on y=50, so the hull is degenerate.
	if !plan.Hull.Skipped {
		t.Errorf("expected skipped hull for collinear points, got %+v", plan.Hull)
	}

	team, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, View: model.ViewHull})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if team.Hull.Skipped {
		t.Errorf("team hull should not be skipped: %s", team.Hull.Reason)
	}
	for _, p := range team.HullInput {
		if p.X == 0 && p.Y == 0 {
			t.Error("period start marker leaked into hull input")
		}
	}
}

func TestBuildPlan_SchemaDegradation(t *testing.T) {
	table := sampleMatch()
	table.Schema.HasKeyPass = false
	table.Schema.HasOutcome = false
	for i := range table.Events {
		table.Events[i].KeyPass = nil
		table.Events[i].Outcome = nil
	}

	plan, err := BuildPlan(table, model.Selection{Team: teamGoa, Player: playerX, View: model.ViewPassing})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	unavailable := model.NewCategorySet(plan.Unavailable...)
	if !unavailable.Has(model.CategoryKeyPass) || !unavailable.Has(model.CategoryCompletedPass) {
		t.Errorf("degraded categories not reported: %v", plan.Unavailable)
	}
	if n := len(plan.Layer(model.CategoryCompletedPass).Markers); n != 0 {
		t.Errorf("CompletedPass should be empty without an outcome column, got %d", n)
	}
	if n := len(plan.Layer(model.CategoryPass).Markers); n != 4 {
		t.Errorf("Pass layer should still hold every pass, got %d", n)
	}
}

func TestBuildPlan_Errors(t *testing.T) {
	if _, err := BuildPlan(nil, model.Selection{}); err == nil {
		t.Error("expected error for nil table")
	}
	if _, err := BuildPlan(sampleMatch(), model.Selection{Team: "Mumbai City"}); err == nil {
		t.Error("expected error for unknown team")
	}
	if _, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, Player: playerOdisha}); err == nil {
		t.Error("expected error for a player of the other team")
	}
	if _, err := BuildPlan(sampleMatch(), model.Selection{View: "radar"}); err == nil {
		t.Error("expected error for unknown view")
	}
}

// TestBuildPlan_ViewNamesNormalized: any spelling ParseViewMode accepts
// selects the same projection as the canonical name.
func TestBuildPlan_ViewNamesNormalized(t *testing.T) {
	for _, name := range []string{"passing", "Passing", " PASSES ", "passes-and-heatmap", "heatmap"} {
		plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, View: model.ViewMode(name)})
		if err != nil {
			t.Fatalf("BuildPlan(%q): %v", name, err)
		}
		if plan.Selection.View != model.ViewPassing {
			t.Errorf("%q: selection view = %q, want passing", name, plan.Selection.View)
		}
		if len(plan.Layers) != 5 {
			t.Errorf("%q: expected the 5 passing layers, got %d", name, len(plan.Layers))
		}
		if len(plan.DensityInput) == 0 {
			t.Errorf("%q: passing view should carry density input", name)
		}
	}

	for _, name := range []string{"HULL", "convex-hull", "footprint"} {
		plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, View: model.ViewMode(name)})
		if err != nil {
			t.Fatalf("BuildPlan(%q): %v", name, err)
		}
		if plan.Hull == nil || len(plan.Layers) != 0 {
			t.Errorf("%q: expected a hull plan without layers, got hull=%v layers=%d", name, plan.Hull, len(plan.Layers))
		}
	}

	plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.Selection.View != model.ViewAll {
		t.Errorf("empty view should resolve to all, got %q", plan.Selection.View)
	}
}

func TestViewCategories(t *testing.T) {
	tests := []struct {
		view    model.ViewMode
		include []model.Category
		exclude []model.Category
	}{
		{
			view:    model.ViewPassing,
			include: []model.Category{model.CategoryPass, model.CategoryCompletedPass, model.CategoryIncompletePass, model.CategoryKeyPass, model.CategoryAssist},
			exclude: []model.Category{model.CategoryGoal, model.CategoryShotSaved, model.CategoryTackle},
		},
		{
			view:    model.ViewOffensive,
			include: []model.Category{model.CategoryGoal, model.CategoryShotOffTarget, model.CategorySuccessfulDribble, model.CategoryKeyPass},
			exclude: []model.Category{model.CategoryCompletedPass, model.CategoryTackle, model.CategoryClearance},
		},
		{
			view:    model.ViewDefensive,
			include: []model.Category{model.CategoryTackle, model.CategoryInterception, model.CategoryClearance, model.CategoryBallRecovery},
			exclude: []model.Category{model.CategoryGoal, model.CategoryPass, model.CategoryShotOffTarget, model.CategoryKeyPass},
		},
		{
			view:    model.ViewHull,
			exclude: model.AllCategories(),
		},
		{
			view:    model.ViewAll,
			include: model.AllCategories(),
		},
	}
	for _, tt := range tests {
		set := ViewCategories(tt.view)
		for _, c := range tt.include {
			if !set.Has(c) {
				t.Errorf("%s view should include %s", tt.view, c)
			}
		}
		for _, c := range tt.exclude {
			if set.Has(c) {
				t.Errorf("%s view should exclude %s", tt.view, c)
			}
		}
	}
}

func TestBuildPlan_DefensiveView(t *testing.T) {
	plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, View: model.ViewDefensive})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	for _, c := range []model.Category{model.CategoryGoal, model.CategoryPass, model.CategoryCompletedPass} {
		if plan.Layer(c) != nil {
			t.Errorf("defensive view should not carry a %s layer", c)
		}
	}
	if tkl := markerIDs(plan.Layer(model.CategorySuccessfulTackle)); len(tkl) != 1 || tkl[0] != 7 {
		t.Errorf("successful tackle layer: %v", tkl)
	}
	if len(plan.DensityInput) != 0 || plan.Hull != nil {
		t.Error("defensive view has no spatial inputs")
	}
}

func TestBuildPlan_PositionOverrideIgnoresCase(t *testing.T) {
	plan, err := BuildPlan(sampleMatch(), model.Selection{Team: teamGoa, Player: playerX, Position: "goalkeeper"})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if !plan.Goalkeeper {
		t.Error("lower-case goalkeeper override should select the goalkeeper view")
	}
	if plan.Layer(model.CategoryGoal) != nil {
		t.Error("goalkeeper view should not carry a Goal layer")
	}
}

// TestBuildPlan_FlaggedNonPassRow: keyPass on a shot row is not covered by a
// precedence rule, so the row shows in both its shot layer and KeyPass.
func TestBuildPlan_FlaggedNonPassRow(t *testing.T) {
	shot := makeEvent(20, 13, 1, teamGoa, playerY)
	shot.KeyPass = intp(1)
	table := makeTable(withEnd(makeEvent(2, 1, 1, teamGoa, playerX), 60, 30), shot)

	plan, err := BuildPlan(table, model.Selection{Team: teamGoa})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if ids := markerIDs(plan.Layer(model.CategoryShotOffTarget)); !hasID(ids, 20) {
		t.Errorf("shot missing from ShotOffTarget layer: %v", ids)
	}
	if ids := markerIDs(plan.Layer(model.CategoryKeyPass)); !hasID(ids, 20) {
		t.Errorf("flagged shot missing from KeyPass layer: %v", ids)
	}
	if ids := markerIDs(plan.Layer(model.CategoryCompletedPass)); len(ids) != 1 || ids[0] != 2 {
		t.Errorf("plain pass should stay in CompletedPass only: %v", ids)
	}
}

func TestBuildPlan_DoesNotMutateTable(t *testing.T) {
	table := sampleMatch()
	before := len(table.Events[2].Qualifiers)
	if _, err := BuildPlan(table, model.Selection{View: model.ViewAll}); err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if len(table.Events[2].Qualifiers) != before || table.Match != "goa-vs-odisha" {
		t.Error("BuildPlan mutated the event table")
	}
}

// ---- Tally ----

func TestTally(t *testing.T) {
	tallies := TallySelection(sampleMatch(), teamGoa)
	if len(tallies) != 3 {
		t.Fatalf("expected 3 Goa tallies, got %d", len(tallies))
	}
	var x *PlayerTally
	for i := range tallies {
		if tallies[i].Player == playerX {
			x = &tallies[i]
		}
		if tallies[i].Team != teamGoa {
			t.Errorf("tally for other team: %+v", tallies[i])
		}
	}
	if x == nil {
		t.Fatal("player X missing")
	}
	if x.Events != 5 {
		t.Errorf("X events: want 5, got %d", x.Events)
	}
	if x.Count(model.CategoryPass) != 4 || x.Count(model.CategoryCompletedPass) != 3 || x.Count(model.CategoryKeyPass) != 1 {
		t.Errorf("X pass counts: %v", x.Counts)
	}
	if acc := x.PassAccuracy(); acc != 75 {
		t.Errorf("X pass accuracy: want 75, got %f", acc)
	}
	if tallies[0].Player != playerX {
		t.Errorf("tallies should be ordered by events desc, got %s first", tallies[0].Player)
	}
	if all := TallySelection(sampleMatch(), ""); len(all) != 4 {
		t.Errorf("expected 4 tallies across the match, got %d", len(all))
	}
}

func TestPlayerTally_Ratios(t *testing.T) {
	var empty PlayerTally
	if empty.PassAccuracy() != 0 || empty.AerialWinPct() != 0 || empty.Shots() != 0 {
		t.Error("empty tally ratios should be zero")
	}
	p := PlayerTally{Counts: map[model.Category]int{
		model.CategoryAerialWon: 3, model.CategoryAerialLost: 1,
		model.CategoryGoal: 1, model.CategoryShotSaved: 2,
	}}
	if p.AerialWinPct() != 75 {
		t.Errorf("aerial win pct: %f", p.AerialWinPct())
	}
	if p.Shots() != 3 {
		t.Errorf("shots: %d", p.Shots())
	}
}
