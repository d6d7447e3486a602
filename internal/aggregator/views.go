package aggregator

import (
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
)

var (
	passingSet = model.NewCategorySet(
		model.CategoryPass, model.CategoryCompletedPass, model.CategoryIncompletePass,
		model.CategoryKeyPass, model.CategoryAssist,
	)

	offensiveSet = model.NewCategorySet(
		model.CategoryGoal, model.CategoryShotOffTarget, model.CategoryShotOffWoodwork,
		model.CategoryShotSaved, model.CategoryDribble, model.CategorySuccessfulDribble,
		model.CategoryKeyPass, model.CategoryAssist, model.CategoryFoulWon,
		model.CategoryAerialWon, model.CategoryShieldedBallOut,
	)

	defensiveSet = model.NewCategorySet(
		model.CategoryTackle, model.CategorySuccessfulTackle, model.CategoryInterception,
		model.CategoryBlock, model.CategoryClearance, model.CategoryAerialDuel,
		model.CategoryAerialWon, model.CategoryAerialLost, model.CategoryBallRecovery,
		model.CategoryFoulCommitted, model.CategoryDribbledPast, model.CategoryDispossessed,
		model.CategoryOffsideProvoked, model.CategoryKeeperPickup, model.CategoryKeeperPunch,
	)

	// goalkeeperSet is what a goalkeeper selection may show. Goals, shots and
	// aerials are outfield categories.
	goalkeeperSet = model.NewCategorySet(
		model.CategoryPass, model.CategoryCompletedPass, model.CategoryIncompletePass,
		model.CategoryKeyPass, model.CategoryAssist,
		model.CategoryBlock, model.CategoryKeeperPunch, model.CategoryKeeperPickup,
		model.CategoryBallRecovery, model.CategoryTackle, model.CategorySuccessfulTackle,
		model.CategoryInterception, model.CategoryClearance, model.CategoryOffsideProvoked,
		model.CategoryShieldedBallOut, model.CategoryDribble, model.CategorySuccessfulDribble,
		model.CategoryFoul, model.CategoryFoulWon, model.CategoryFoulCommitted,
		model.CategoryDispossessed, model.CategoryDribbledPast,
	)

	directionalSet = model.NewCategorySet(
		model.CategoryPass, model.CategoryCompletedPass, model.CategoryIncompletePass,
		model.CategoryKeyPass, model.CategoryAssist,
	)
)

// ViewCategories returns the categories a view materializes.
func ViewCategories(v model.ViewMode) model.CategorySet {
	switch v {
	case model.ViewPassing:
		return passingSet
	case model.ViewOffensive:
		return offensiveSet
	case model.ViewDefensive:
		return defensiveSet
	case model.ViewHull:
		return 0
	default:
		return model.NewCategorySet(model.AllCategories()...)
	}
}

// GoalkeeperCategories returns the categories a goalkeeper view may show.
func GoalkeeperCategories() model.CategorySet { return goalkeeperSet }

// ActiveCategories is the view projection narrowed by the position filter.
func ActiveCategories(v model.ViewMode, goalkeeper bool) model.CategorySet {
	set := ViewCategories(v)
	if goalkeeper {
		set = set.Intersect(goalkeeperSet)
	}
	return set
}

// IsDirectional reports whether markers of c carry a destination.
func IsDirectional(c model.Category) bool { return directionalSet.Has(c) }

// Label is the legend text of c.
func Label(c model.Category, goalkeeper bool) string {
	if goalkeeper && c == model.CategoryBlock {
		return "Save"
	}
	switch c {
	case model.CategoryCompletedPass:
		return "Completed Pass"
	case model.CategoryIncompletePass:
		return "Incomplete Pass"
	case model.CategoryKeyPass:
		return "Key Pass"
	case model.CategoryShotOffTarget:
		return "Shot Off Target"
	case model.CategoryShotOffWoodwork:
		return "Shot Off Woodwork"
	case model.CategoryShotSaved:
		return "Shot Saved"
	case model.CategorySuccessfulDribble:
		return "Successful Dribble"
	case model.CategoryFoulWon:
		return "Foul Won"
	case model.CategoryFoulCommitted:
		return "Foul Committed"
	case model.CategorySuccessfulTackle:
		return "Successful Tackle"
	case model.CategoryAerialDuel:
		return "Aerial Duel"
	case model.CategoryAerialWon:
		return "Aerial Won"
	case model.CategoryAerialLost:
		return "Aerial Lost"
	case model.CategoryDribbledPast:
		return "Dribbled Past"
	case model.CategoryBallRecovery:
		return "Ball Recovery"
	case model.CategoryKeeperPickup:
		return "Keeper Pick-up"
	case model.CategoryKeeperPunch:
		return "Keeper Punch"
	case model.CategoryOffsideProvoked:
		return "Offside Provoked"
	case model.CategoryShieldedBallOut:
		return "Shielded Ball Out"
	}
	return c.String()
}

// PrecedenceRule drops Loser markers whose row is also tagged Winner when both
// layers are rendered together.
type PrecedenceRule struct {
	Winner model.Category
	Loser  model.Category
}

// Precedence is the overlap rule table used when composing layers. With every
// rule applied, a pass row is drawn in exactly one active layer. The keyPass
// and assist flags are not tied to a type code, so a flagged non-pass row is
// drawn in its own layer and in the KeyPass or Assist layer.
var Precedence = []PrecedenceRule{
	{Winner: model.CategoryKeyPass, Loser: model.CategoryCompletedPass},
	{Winner: model.CategoryAssist, Loser: model.CategoryCompletedPass},
	{Winner: model.CategoryKeyPass, Loser: model.CategoryIncompletePass},
	{Winner: model.CategoryAssist, Loser: model.CategoryIncompletePass},
	{Winner: model.CategoryAssist, Loser: model.CategoryKeyPass},

	// Outcome-specific layers replace their parent layer.
	{Winner: model.CategoryCompletedPass, Loser: model.CategoryPass},
	{Winner: model.CategoryIncompletePass, Loser: model.CategoryPass},
	{Winner: model.CategoryKeyPass, Loser: model.CategoryPass},
	{Winner: model.CategoryAssist, Loser: model.CategoryPass},
	{Winner: model.CategorySuccessfulDribble, Loser: model.CategoryDribble},
	{Winner: model.CategoryFoulWon, Loser: model.CategoryFoul},
	{Winner: model.CategoryFoulCommitted, Loser: model.CategoryFoul},
	{Winner: model.CategorySuccessfulTackle, Loser: model.CategoryTackle},
	{Winner: model.CategoryAerialWon, Loser: model.CategoryAerialDuel},
	{Winner: model.CategoryAerialLost, Loser: model.CategoryAerialDuel},
}

// suppressed returns the categories of tags that must not be drawn because a
// winning layer in active already draws the row.
func suppressed(tags, active model.CategorySet) model.CategorySet {
	var out model.CategorySet
	for _, r := range Precedence {
		if active.Has(r.Winner) && active.Has(r.Loser) && tags.Has(r.Winner) && tags.Has(r.Loser) {
			out = out.Add(r.Loser)
		}
	}
	return out
}
