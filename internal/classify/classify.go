// Package classify maps resolved OPTA events onto the action category taxonomy.
package classify

import (
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
)

// OPTA event type ids referenced by the taxonomy.
const (
	TypePass            = 1
	TypeTakeOn          = 3
	TypeFoul            = 4
	TypeTackle          = 7
	TypeInterception    = 8
	TypeSave            = 10
	TypeClearance       = 12
	TypeMiss            = 13
	TypePost            = 14
	TypeAttemptSaved    = 15
	TypeGoal            = 16
	TypePunch           = 41
	TypeAerial          = 44
	TypeChallenge       = 45
	TypeBallRecovery    = 49
	TypeDispossessed    = 50
	TypeKeeperPickup    = 52
	TypeOffsideProvoked = 55
	TypeShieldBallOpp   = 56
)

// Column names a rule may depend on beyond typeId.
type Column int

const (
	ColumnNone Column = iota
	ColumnOutcome
	ColumnAssist
	ColumnKeyPass
)

func (c Column) String() string {
	switch c {
	case ColumnOutcome:
		return "outcome"
	case ColumnAssist:
		return "assist"
	case ColumnKeyPass:
		return "keyPass"
	default:
		return ""
	}
}

// Rule is one row of the taxonomy. A zero TypeID matches any type; Requires
// names the optional column the rule reads, and Want is the value it must hold.
type Rule struct {
	Category model.Category
	TypeID   int
	Requires Column
	Want     int
}

// Rules is the action taxonomy. Every category has exactly one rule.
var Rules = []Rule{
	{Category: model.CategoryGoal, TypeID: TypeGoal},
	{Category: model.CategoryShotOffTarget, TypeID: TypeMiss},
	{Category: model.CategoryShotOffWoodwork, TypeID: TypePost},
	{Category: model.CategoryShotSaved, TypeID: TypeAttemptSaved},
	{Category: model.CategoryDribble, TypeID: TypeTakeOn},
	{Category: model.CategorySuccessfulDribble, TypeID: TypeTakeOn, Requires: ColumnOutcome, Want: 1},
	{Category: model.CategoryFoul, TypeID: TypeFoul},
	{Category: model.CategoryFoulWon, TypeID: TypeFoul, Requires: ColumnOutcome, Want: 1},
	{Category: model.CategoryFoulCommitted, TypeID: TypeFoul, Requires: ColumnOutcome, Want: 0},
	{Category: model.CategoryTackle, TypeID: TypeTackle},
	{Category: model.CategorySuccessfulTackle, TypeID: TypeTackle, Requires: ColumnOutcome, Want: 1},
	{Category: model.CategoryInterception, TypeID: TypeInterception},
	{Category: model.CategoryBlock, TypeID: TypeSave},
	{Category: model.CategoryClearance, TypeID: TypeClearance},
	{Category: model.CategoryAerialDuel, TypeID: TypeAerial},
	{Category: model.CategoryAerialWon, TypeID: TypeAerial, Requires: ColumnOutcome, Want: 1},
	{Category: model.CategoryAerialLost, TypeID: TypeAerial, Requires: ColumnOutcome, Want: 0},
	{Category: model.CategoryDispossessed, TypeID: TypeDispossessed},
	{Category: model.CategoryDribbledPast, TypeID: TypeChallenge},
	{Category: model.CategoryBallRecovery, TypeID: TypeBallRecovery},
	{Category: model.CategoryKeeperPickup, TypeID: TypeKeeperPickup},
	{Category: model.CategoryKeeperPunch, TypeID: TypePunch},
	{Category: model.CategoryOffsideProvoked, TypeID: TypeOffsideProvoked},
	{Category: model.CategoryShieldedBallOut, TypeID: TypeShieldBallOpp},
	{Category: model.CategoryPass, TypeID: TypePass},
	{Category: model.CategoryCompletedPass, TypeID: TypePass, Requires: ColumnOutcome, Want: 1},
	{Category: model.CategoryIncompletePass, TypeID: TypePass, Requires: ColumnOutcome, Want: 0},
	{Category: model.CategoryAssist, Requires: ColumnAssist, Want: 1},
	{Category: model.CategoryKeyPass, Requires: ColumnKeyPass, Want: 1},
}

// Matches reports whether e satisfies r.
func (r Rule) Matches(e *model.ResolvedEvent) bool {
	if r.TypeID != 0 && e.TypeID != r.TypeID {
		return false
	}
	switch r.Requires {
	case ColumnOutcome:
		return e.Outcome != nil && *e.Outcome == r.Want
	case ColumnAssist:
		return e.Assist != nil && *e.Assist == r.Want
	case ColumnKeyPass:
		return e.KeyPass != nil && *e.KeyPass == r.Want
	}
	return true
}

// Available reports whether the schema carries the column r depends on.
func (r Rule) Available(s model.Schema) bool {
	switch r.Requires {
	case ColumnOutcome:
		return s.HasOutcome
	case ColumnAssist:
		return s.HasAssist
	case ColumnKeyPass:
		return s.HasKeyPass
	}
	return true
}

// Classify returns every category e belongs to.
func Classify(e *model.ResolvedEvent) model.CategorySet {
	var set model.CategorySet
	for _, r := range Rules {
		if r.Matches(e) {
			set = set.Add(r.Category)
		}
	}
	return set
}

// Unavailable lists the categories whose rule reads a column the schema lacks.
// Those categories are empty for the whole table.
func Unavailable(s model.Schema) []model.Category {
	var set model.CategorySet
	for _, r := range Rules {
		if !r.Available(s) {
			set = set.Add(r.Category)
		}
	}
	return set.Categories()
}

// RuleFor returns the rule defining c.
func RuleFor(c model.Category) (Rule, bool) {
	for _, r := range Rules {
		if r.Category == c {
			return r, true
		}
	}
	return Rule{}, false
}

// Tagged is a resolved event together with its category membership.
type Tagged struct {
	model.ResolvedEvent
	Categories model.CategorySet
}

// Tag classifies every event, preserving order.
func Tag(events []model.ResolvedEvent) []Tagged {
	out := make([]Tagged, len(events))
	for i := range events {
		out[i] = Tagged{ResolvedEvent: events[i], Categories: Classify(&events[i])}
	}
	return out
}
