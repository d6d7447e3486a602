package aggregator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/classify"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/qualifier"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/spatial"
)

// Select returns the events of team and player in table order. An empty team
// matches the whole match and an empty player the whole team. The input is
// never modified.
func Select(events []model.ResolvedEvent, team, player string) []model.ResolvedEvent {
	var out []model.ResolvedEvent
	for i := range events {
		if team != "" && events[i].TeamName != team {
			continue
		}
		if player != "" && events[i].PlayerName != player {
			continue
		}
		out = append(out, events[i])
	}
	return out
}

// Partition splits events by player name. Team-level rows without a player
// are kept under the empty key, so the parts always reassemble the input.
func Partition(events []model.ResolvedEvent) map[string][]model.ResolvedEvent {
	parts := make(map[string][]model.ResolvedEvent)
	for i := range events {
		parts[events[i].PlayerName] = append(parts[events[i].PlayerName], events[i])
	}
	return parts
}

// Teams returns the distinct team names of table, sorted.
func Teams(table *model.EventTable) []string {
	seen := make(map[string]struct{})
	for i := range table.Events {
		if t := table.Events[i].TeamName; t != "" {
			seen[t] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// PlayerInfo is one row of a team sheet.
type PlayerInfo struct {
	Name     string
	Team     string
	Position string
	Events   int
}

// Players lists the named players of team (all teams when empty), sorted by name.
func Players(table *model.EventTable, team string) []PlayerInfo {
	type key struct{ team, name string }
	counts := make(map[key]int)
	positions := make(map[key]map[string]int)
	for i := range table.Events {
		e := &table.Events[i]
		if e.PlayerName == "" || (team != "" && e.TeamName != team) {
			continue
		}
		k := key{e.TeamName, e.PlayerName}
		counts[k]++
		if e.Position != "" {
			if positions[k] == nil {
				positions[k] = make(map[string]int)
			}
			positions[k][e.Position]++
		}
	}

	out := make([]PlayerInfo, 0, len(counts))
	for k, n := range counts {
		out = append(out, PlayerInfo{Name: k.name, Team: k.team, Position: mostFrequent(positions[k]), Events: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// PlayerPosition returns the listed position of player, the most frequent
// non-empty value across their rows.
func PlayerPosition(events []model.ResolvedEvent, player string) string {
	if player == "" {
		return ""
	}
	counts := make(map[string]int)
	for i := range events {
		if events[i].PlayerName == player && events[i].Position != "" {
			counts[events[i].Position]++
		}
	}
	return mostFrequent(counts)
}

// Resolve recovers destinations and classifies every row of table.
func Resolve(table *model.EventTable) []classify.Tagged {
	return classify.Tag(qualifier.ResolveAll(table.Events))
}

// BuildPlan computes the render plan of one selection. It is a pure function
// of its inputs: the table is read, never written.
func BuildPlan(table *model.EventTable, sel model.Selection) (*model.RenderPlan, error) {
	if table == nil {
		return nil, fmt.Errorf("nil EventTable")
	}
	view, err := model.ParseViewMode(string(sel.View))
	if err != nil {
		return nil, err
	}
	sel.View = view
	sel.Match = table.Match

	resolved := qualifier.ResolveAll(table.Events)
	if sel.Team != "" && !containsTeam(resolved, sel.Team) {
		return nil, fmt.Errorf("team %q not in match %s", sel.Team, table.Match)
	}
	selected := Select(resolved, sel.Team, sel.Player)
	if sel.Player != "" && len(selected) == 0 {
		return nil, fmt.Errorf("player %q has no events for team %q in match %s", sel.Player, sel.Team, table.Match)
	}
	if sel.Position == "" {
		sel.Position = PlayerPosition(selected, sel.Player)
	}
	goalkeeper := strings.EqualFold(strings.TrimSpace(sel.Position), model.PositionGoalkeeper)

	plan := &model.RenderPlan{
		Selection:   sel,
		Goalkeeper:  goalkeeper,
		Unavailable: classify.Unavailable(table.Schema),
		EventCount:  len(selected),
	}

	active := ActiveCategories(sel.View, goalkeeper)
	layers := make(map[model.Category]*model.Layer)
	for _, c := range active.Categories() {
		plan.Layers = append(plan.Layers, model.Layer{
			Category:    c,
			Label:       Label(c, goalkeeper),
			Directional: IsDirectional(c),
			Markers:     []model.Marker{},
		})
	}
	for i := range plan.Layers {
		layers[plan.Layers[i].Category] = &plan.Layers[i]
	}

	for _, t := range classify.Tag(selected) {
		draw := t.Categories.Intersect(active)
		if draw.Empty() {
			continue
		}
		for _, c := range suppressed(t.Categories, active).Categories() {
			draw = draw.Remove(c)
		}
		for _, c := range draw.Categories() {
			l := layers[c]
			m := model.Marker{EventID: t.EventID, X: t.X, Y: t.Y}
			// Arrows need both ends; a half-known destination is drawn as a point.
			if l.Directional && t.HasEnd() {
				m.EndX, m.EndY = t.EndX, t.EndY
			}
			l.Markers = append(l.Markers, m)
		}
	}

	switch sel.View {
	case model.ViewPassing:
		plan.DensityInput = spatial.DensityInput(selected)
	case model.ViewHull:
		plan.HullInput = spatial.HullInput(selected)
		hull := spatial.ConvexHull(plan.HullInput)
		plan.Hull = &hull
	}
	return plan, nil
}

func containsTeam(events []model.ResolvedEvent, team string) bool {
	for i := range events {
		if events[i].TeamName == team {
			return true
		}
	}
	return false
}

// mostFrequent returns the key with the highest count; ties go to the
// alphabetically first key so the result is stable.
func mostFrequent(counts map[string]int) string {
	best, bestCount := "", 0
	for k, n := range counts {
		if n > bestCount || (n == bestCount && k < best) {
			best, bestCount = k, n
		}
	}
	return best
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
