package qualifier

import (
	"testing"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
)

// slot builds a qualifier slot with a generated prefix.
func slot(i, id int, value string) model.QualifierSlot {
	return model.QualifierSlot{Prefix: "qualifier/" + string(rune('0'+i)), ID: id, Value: value}
}

func TestResolve_EndCoordinatesFromQualifiers(t *testing.T) {
	e := model.RawEvent{
		EventID: 1, TypeID: 1, X: 40, Y: 50,
		Qualifiers: []model.QualifierSlot{
			slot(0, 56, "Back"),
			slot(1, 140, "62.4"),
			slot(2, 212, "18.1"),
			slot(3, 141, "33.0"),
		},
	}

	r := Resolve(e)
	if r.EndX == nil || *r.EndX != 62.4 {
		t.Fatalf("EndX: want 62.4, got %v", r.EndX)
	}
	if r.EndY == nil || *r.EndY != 33.0 {
		t.Fatalf("EndY: want 33.0, got %v", r.EndY)
	}
	if r.EndAmbiguous {
		t.Error("single 140/141 slots should not be ambiguous")
	}
	if r.EventID != 1 || r.X != 40 {
		t.Errorf("raw fields not carried through: %+v", r.RawEvent)
	}
}

func TestResolve_NoDirectionalQualifiers(t *testing.T) {
	// A tackle carries no destination; that is not an error.
	e := model.RawEvent{EventID: 2, TypeID: 7, Qualifiers: []model.QualifierSlot{slot(0, 285, "1")}}
	r := Resolve(e)
	if r.EndX != nil || r.EndY != nil {
		t.Errorf("expected nil end coordinates, got x=%v y=%v", r.EndX, r.EndY)
	}
	if r.HasEnd() {
		t.Error("HasEnd should be false")
	}

	bare := Resolve(model.RawEvent{EventID: 3, TypeID: 16})
	if bare.EndX != nil || bare.EndY != nil {
		t.Error("row with no qualifiers should have nil end coordinates")
	}
}

func TestResolve_OnlyOneAxis(t *testing.T) {
	r := Resolve(model.RawEvent{Qualifiers: []model.QualifierSlot{slot(0, 140, "70")}})
	if r.EndX == nil || *r.EndX != 70 {
		t.Fatalf("EndX: want 70, got %v", r.EndX)
	}
	if r.EndY != nil {
		t.Errorf("EndY: want nil, got %v", *r.EndY)
	}
	if r.HasEnd() {
		t.Error("HasEnd requires both coordinates")
	}
}

func TestResolve_NonNumericValueYieldsNil(t *testing.T) {
	for _, v := range []string{"", "  ", "abc", "NaN", "Inf"} {
		r := Resolve(model.RawEvent{Qualifiers: []model.QualifierSlot{
			slot(0, 140, v),
			slot(1, 141, "12.5"),
		}})
		if r.EndX != nil {
			t.Errorf("value %q: expected nil EndX, got %v", v, *r.EndX)
		}
		if r.EndY == nil || *r.EndY != 12.5 {
			t.Errorf("value %q: EndY should still resolve", v)
		}
	}
}

func TestResolve_TrimsWhitespace(t *testing.T) {
	r := Resolve(model.RawEvent{Qualifiers: []model.QualifierSlot{slot(0, 141, " 48.7 ")}})
	if r.EndY == nil || *r.EndY != 48.7 {
		t.Fatalf("EndY: want 48.7, got %v", r.EndY)
	}
}

// TestResolve_DuplicateSlotLastWins pins the duplicate policy: the later slot
// in discovery order wins and the row is flagged as ambiguous.
func TestResolve_DuplicateSlotLastWins(t *testing.T) {
	r := Resolve(model.RawEvent{Qualifiers: []model.QualifierSlot{
		slot(0, 140, "10"),
		slot(1, 141, "20"),
		slot(2, 140, "90"),
	}})
	if r.EndX == nil || *r.EndX != 90 {
		t.Fatalf("EndX: want 90 (last slot), got %v", r.EndX)
	}
	if r.EndY == nil || *r.EndY != 20 {
		t.Fatalf("EndY: want 20, got %v", r.EndY)
	}
	if !r.EndAmbiguous {
		t.Error("duplicate 140 slots should set EndAmbiguous")
	}
}

func TestResolve_DuplicateSlotLastNonNumericClears(t *testing.T) {
	r := Resolve(model.RawEvent{Qualifiers: []model.QualifierSlot{
		slot(0, 141, "20"),
		slot(1, 141, "n/a"),
	}})
	if r.EndY != nil {
		t.Errorf("later non-numeric slot should win and clear EndY, got %v", *r.EndY)
	}
	if !r.EndAmbiguous {
		t.Error("expected EndAmbiguous")
	}
}

func TestResolveAll_PreservesOrderAndIsDeterministic(t *testing.T) {
	events := []model.RawEvent{
		{RowIndex: 0, EventID: 10, Qualifiers: []model.QualifierSlot{slot(0, 140, "1"), slot(1, 141, "2")}},
		{RowIndex: 1, EventID: 11},
		{RowIndex: 2, EventID: 12, Qualifiers: []model.QualifierSlot{slot(0, 140, "3"), slot(1, 140, "4")}},
	}
	first := ResolveAll(events)
	second := ResolveAll(events)
	if len(first) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(first))
	}
	for i := range first {
		if first[i].EventID != events[i].EventID {
			t.Errorf("row %d: order not preserved", i)
		}
		if (first[i].EndX == nil) != (second[i].EndX == nil) {
			t.Errorf("row %d: resolution not deterministic", i)
		}
	}
	if got := CountAmbiguous(first); got != 1 {
		t.Errorf("CountAmbiguous: want 1, got %d", got)
	}
	// Input rows are not mutated.
	if len(events[1].Qualifiers) != 0 {
		t.Error("input mutated")
	}
}
