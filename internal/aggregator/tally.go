package aggregator

import (
	"sort"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/classify"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
)

// PlayerTally holds category counts for one player of one team.
type PlayerTally struct {
	Player string
	Team   string
	Events int
	Counts map[model.Category]int
}

// Count returns the number of c events.
func (p *PlayerTally) Count(c model.Category) int { return p.Counts[c] }

// PassAccuracy is completed passes over passes with a known outcome, in percent.
func (p *PlayerTally) PassAccuracy() float64 {
	attempted := p.Counts[model.CategoryCompletedPass] + p.Counts[model.CategoryIncompletePass]
	if attempted == 0 {
		return 0
	}
	return float64(p.Counts[model.CategoryCompletedPass]) / float64(attempted) * 100
}

// AerialWinPct is aerials won over aerial duels with a known outcome, in percent.
func (p *PlayerTally) AerialWinPct() float64 {
	duels := p.Counts[model.CategoryAerialWon] + p.Counts[model.CategoryAerialLost]
	if duels == 0 {
		return 0
	}
	return float64(p.Counts[model.CategoryAerialWon]) / float64(duels) * 100
}

// Shots counts goals and every shot outcome.
func (p *PlayerTally) Shots() int {
	return p.Counts[model.CategoryGoal] + p.Counts[model.CategoryShotOffTarget] +
		p.Counts[model.CategoryShotOffWoodwork] + p.Counts[model.CategoryShotSaved]
}

// Tally counts category membership per player. Counts are raw membership, not
// the de-duplicated layer view. Rows without a player are skipped.
func Tally(tagged []classify.Tagged) []PlayerTally {
	type key struct{ team, player string }
	byPlayer := make(map[key]*PlayerTally)
	for i := range tagged {
		t := &tagged[i]
		if t.PlayerName == "" {
			continue
		}
		k := key{t.TeamName, t.PlayerName}
		acc := byPlayer[k]
		if acc == nil {
			acc = &PlayerTally{Player: t.PlayerName, Team: t.TeamName, Counts: make(map[model.Category]int)}
			byPlayer[k] = acc
		}
		acc.Events++
		for _, c := range t.Categories.Categories() {
			acc.Counts[c]++
		}
	}

	out := make([]PlayerTally, 0, len(byPlayer))
	for _, acc := range byPlayer {
		out = append(out, *acc)
	}
	// Sort by team, then events desc, for stable output.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		if out[i].Events != out[j].Events {
			return out[i].Events > out[j].Events
		}
		return out[i].Player < out[j].Player
	})
	return out
}

// TallySelection resolves table and tallies the rows of team (all when empty).
func TallySelection(table *model.EventTable, team string) []PlayerTally {
	tagged := Resolve(table)
	if team == "" {
		return Tally(tagged)
	}
	var keep []classify.Tagged
	for i := range tagged {
		if tagged[i].TeamName == team {
			keep = append(keep, tagged[i])
		}
	}
	return Tally(keep)
}
