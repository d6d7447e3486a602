// Package spatial prepares point sets for the heat-map and coverage layers
// and computes the planar convex hull of a selection.
package spatial

import (
	"sort"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/classify"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
)

// nonLocationTypes are OPTA event types whose x/y is not an on-pitch action:
// cards, substitutions, period and delay markers, line-ups, deletions.
var nonLocationTypes = map[int]struct{}{
	17: {}, // card
	18: {}, // player off
	19: {}, // player on
	20: {}, // player retired
	21: {}, // player returns
	22: {}, // player becomes goalkeeper
	24: {}, // condition change
	25: {}, // official change
	27: {}, // start delay
	28: {}, // end delay
	30: {}, // end of period
	32: {}, // start of period
	34: {}, // team set up
	35: {}, // player changed position
	36: {}, // player changed jersey number
	37: {}, // collection end
	40: {}, // formation change
	43: {}, // deleted event
	65: {}, // contentious referee decision
}

// IsLocationMarker reports whether events of typeID mark an on-pitch location.
func IsLocationMarker(typeID int) bool {
	_, skip := nonLocationTypes[typeID]
	return !skip
}

// DensityInput returns the origins of the pass events in events.
func DensityInput(events []model.ResolvedEvent) []model.Point {
	var out []model.Point
	for i := range events {
		if events[i].TypeID == classify.TypePass {
			out = append(out, model.Point{X: events[i].X, Y: events[i].Y})
		}
	}
	return out
}

// HullInput returns the origins of every location-marking event in events.
func HullInput(events []model.ResolvedEvent) []model.Point {
	var out []model.Point
	for i := range events {
		if IsLocationMarker(events[i].TypeID) {
			out = append(out, model.Point{X: events[i].X, Y: events[i].Y})
		}
	}
	return out
}

// Skip reasons reported on a degenerate hull.
const (
	ReasonTooFewPoints = "fewer than 3 distinct points"
	ReasonCollinear    = "points are collinear"
)

// ConvexHull computes the hull of points with Andrew's monotone chain.
// Vertices are counter-clockwise starting at the lowest-x (then lowest-y)
// point, without collinear vertices. Degenerate input yields a skipped hull.
func ConvexHull(points []model.Point) model.Hull {
	pts := distinct(points)
	if len(pts) < 3 {
		return model.Hull{Skipped: true, Reason: ReasonTooFewPoints}
	}

	hull := make([]model.Point, 0, 2*len(pts))
	// lower
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// upper
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	hull = hull[:len(hull)-1]

	if len(hull) < 3 {
		return model.Hull{Skipped: true, Reason: ReasonCollinear}
	}
	return model.Hull{Vertices: hull}
}

// Area returns the polygon area of vertices (shoelace formula).
func Area(vertices []model.Point) float64 {
	if len(vertices) < 3 {
		return 0
	}
	var a float64
	for i := range vertices {
		j := (i + 1) % len(vertices)
		a += vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
	}
	if a < 0 {
		a = -a
	}
	return a / 2
}

// distinct returns the unique points sorted by x, then y.
func distinct(points []model.Point) []model.Point {
	pts := make([]model.Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	out := pts[:0]
	for _, p := range pts {
		if len(out) > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// cross is the z component of (a→b)×(a→c).
func cross(a, b, c model.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
