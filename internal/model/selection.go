package model

import (
	"fmt"
	"strings"
)

// ViewMode selects which categories are materialized for a render.
type ViewMode string

const (
	ViewAll       ViewMode = "all"
	ViewPassing   ViewMode = "passing" // passes plus the heat-map density input
	ViewOffensive ViewMode = "offensive"
	ViewDefensive ViewMode = "defensive"
	ViewHull      ViewMode = "hull"
)

// ViewModes lists the accepted view modes.
func ViewModes() []ViewMode {
	return []ViewMode{ViewAll, ViewPassing, ViewOffensive, ViewDefensive, ViewHull}
}

// ParseViewMode accepts a view name; empty means ViewAll.
func ParseViewMode(s string) (ViewMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ViewAll, nil
	}
	switch ViewMode(s) {
	case ViewAll, ViewPassing, ViewOffensive, ViewDefensive, ViewHull:
		return ViewMode(s), nil
	}
	// Long-form names are accepted as aliases.
	switch s {
	case "passes", "heatmap", "passes-and-heatmap":
		return ViewPassing, nil
	case "convex-hull", "footprint":
		return ViewHull, nil
	}
	return "", fmt.Errorf("unknown view mode %q", s)
}

// Selection is the per-request input of a render. It is a value: nothing
// holds it across requests.
type Selection struct {
	Match    string   `json:"match"`
	Team     string   `json:"team,omitempty"`
	Player   string   `json:"player,omitempty"` // empty = whole team
	Position string   `json:"position,omitempty"`
	View     ViewMode `json:"view"`
}
