// Package qualifier recovers derived fields from the sparse qualifier slots
// of OPTA event rows.
package qualifier

import (
	"math"
	"strconv"
	"strings"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
)

// Resolve derives the destination of e from its qualifier slots.
//
// Slots are visited in schema-discovery order. Qualifier 140 sets EndX and
// 141 sets EndY; when a row carries the same id twice the later slot wins and
// EndAmbiguous is set. A value that is not a number leaves the coordinate nil.
func Resolve(e model.RawEvent) model.ResolvedEvent {
	out := model.ResolvedEvent{RawEvent: e}
	var seenX, seenY bool
	for _, q := range e.Qualifiers {
		switch q.ID {
		case model.QualifierEndX:
			if seenX {
				out.EndAmbiguous = true
			}
			seenX = true
			out.EndX = parseCoord(q.Value)
		case model.QualifierEndY:
			if seenY {
				out.EndAmbiguous = true
			}
			seenY = true
			out.EndY = parseCoord(q.Value)
		}
	}
	return out
}

// ResolveAll resolves every row of events, preserving order.
func ResolveAll(events []model.RawEvent) []model.ResolvedEvent {
	out := make([]model.ResolvedEvent, len(events))
	for i, e := range events {
		out[i] = Resolve(e)
	}
	return out
}

// CountAmbiguous returns the number of rows with duplicate destination slots.
func CountAmbiguous(events []model.ResolvedEvent) int {
	n := 0
	for i := range events {
		if events[i].EndAmbiguous {
			n++
		}
	}
	return n
}

func parseCoord(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
