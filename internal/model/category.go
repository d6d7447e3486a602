package model

import (
	"fmt"
	"strings"
)

// Category is a named action tag. Membership is a pure function of the row.
type Category int

// The declaration order is the display order of layers.
const (
	CategoryPass Category = iota
	CategoryCompletedPass
	CategoryIncompletePass
	CategoryKeyPass
	CategoryAssist
	CategoryGoal
	CategoryShotOffTarget
	CategoryShotOffWoodwork
	CategoryShotSaved
	CategoryDribble
	CategorySuccessfulDribble
	CategoryFoul
	CategoryFoulWon
	CategoryFoulCommitted
	CategoryTackle
	CategorySuccessfulTackle
	CategoryInterception
	CategoryBlock
	CategoryClearance
	CategoryAerialDuel
	CategoryAerialWon
	CategoryAerialLost
	CategoryDispossessed
	CategoryDribbledPast
	CategoryBallRecovery
	CategoryKeeperPickup
	CategoryKeeperPunch
	CategoryOffsideProvoked
	CategoryShieldedBallOut

	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryPass:              "Pass",
	CategoryCompletedPass:     "CompletedPass",
	CategoryIncompletePass:    "IncompletePass",
	CategoryKeyPass:           "KeyPass",
	CategoryAssist:            "Assist",
	CategoryGoal:              "Goal",
	CategoryShotOffTarget:     "ShotOffTarget",
	CategoryShotOffWoodwork:   "ShotOffWoodwork",
	CategoryShotSaved:         "ShotSaved",
	CategoryDribble:           "Dribble",
	CategorySuccessfulDribble: "SuccessfulDribble",
	CategoryFoul:              "Foul",
	CategoryFoulWon:           "FoulWon",
	CategoryFoulCommitted:     "FoulCommitted",
	CategoryTackle:            "Tackle",
	CategorySuccessfulTackle:  "SuccessfulTackle",
	CategoryInterception:      "Interception",
	CategoryBlock:             "Block",
	CategoryClearance:         "Clearance",
	CategoryAerialDuel:        "AerialDuel",
	CategoryAerialWon:         "AerialWon",
	CategoryAerialLost:        "AerialLost",
	CategoryDispossessed:      "Dispossessed",
	CategoryDribbledPast:      "DribbledPast",
	CategoryBallRecovery:      "BallRecovery",
	CategoryKeeperPickup:      "KeeperPickup",
	CategoryKeeperPunch:       "KeeperPunch",
	CategoryOffsideProvoked:   "OffsideProvoked",
	CategoryShieldedBallOut:   "ShieldedBallOut",
}

// AllCategories returns every category in display order.
func AllCategories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool { return c >= 0 && c < categoryCount }

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(name, s) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name.
func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// CategorySet is a bitset of categories.
type CategorySet uint64

// NewCategorySet builds a set from cs.
func NewCategorySet(cs ...Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s = s.Add(c)
	}
	return s
}

func (s CategorySet) Add(c Category) CategorySet         { return s | 1<<uint(c) }
func (s CategorySet) Remove(c Category) CategorySet      { return s &^ (1 << uint(c)) }
func (s CategorySet) Has(c Category) bool                { return s&(1<<uint(c)) != 0 }
func (s CategorySet) Intersect(o CategorySet) CategorySet { return s & o }
func (s CategorySet) Empty() bool                        { return s == 0 }

// Categories lists members in display order.
func (s CategorySet) Categories() []Category {
	var out []Category
	for c := Category(0); c < categoryCount; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s CategorySet) String() string {
	cs := s.Categories()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}
