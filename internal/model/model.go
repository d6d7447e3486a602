package model

// Qualifier ids that carry the destination of a directional event.
const (
	QualifierEndX = 140
	QualifierEndY = 141
)

// PositionGoalkeeper is the listed position that switches the goalkeeper view on.
const PositionGoalkeeper = "Goalkeeper"

// ---- Raw rows emitted by the parser ----

// QualifierSlot is one non-null (qualifierId, value) column pair of a row.
type QualifierSlot struct {
	Prefix string // column prefix shared by the pair, e.g. "qualifier/3"
	ID     int
	Value  string // raw cell text; coerced by the resolver
}

// RawEvent is one row of a match event log.
type RawEvent struct {
	RowIndex   int // 0-based position in the source table
	EventID    int64
	TypeID     int
	Outcome    *int // nil when the column is absent or the cell is empty
	X, Y       float64
	PlayerName string
	TeamName   string
	Position   string
	Assist     *int
	KeyPass    *int
	Qualifiers []QualifierSlot // schema-discovery order
}

// QualifierPair names the two columns of one qualifier slot.
type QualifierPair struct {
	Prefix      string
	IDColumn    string
	ValueColumn string
}

// Schema records which optional columns a match file carried.
type Schema struct {
	HasOutcome     bool
	HasAssist      bool
	HasKeyPass     bool
	HasPosition    bool
	QualifierPairs []QualifierPair
}

// HasQualifiers reports whether any qualifier slot pair was discovered.
func (s Schema) HasQualifiers() bool { return len(s.QualifierPairs) > 0 }

// EventTable is the immutable event log of one match.
type EventTable struct {
	Match  string
	Schema Schema
	Events []RawEvent
}

// ResolvedEvent is a RawEvent with its destination recovered from qualifiers.
type ResolvedEvent struct {
	RawEvent
	EndX, EndY *float64
	// EndAmbiguous is set when more than one slot supplied the same destination id.
	EndAmbiguous bool
}

// HasEnd reports whether both destination coordinates are known.
func (e *ResolvedEvent) HasEnd() bool { return e.EndX != nil && e.EndY != nil }

// IsOutcome reports whether the outcome column is present and equal to v.
func (e *RawEvent) IsOutcome(v int) bool { return e.Outcome != nil && *e.Outcome == v }

// ---- Render plan handed to the renderer ----

// Point is a pitch location in OPTA coordinates (0-100 on both axes).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Marker is one drawn event. EndX/EndY are nil when the destination is unknown.
type Marker struct {
	EventID int64    `json:"event_id"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	EndX    *float64 `json:"end_x,omitempty"`
	EndY    *float64 `json:"end_y,omitempty"`
}

// Layer is the ordered marker list of one category.
type Layer struct {
	Category    Category `json:"category"`
	Label       string   `json:"label"`
	Directional bool     `json:"directional"`
	Markers     []Marker `json:"markers"`
}

// Hull is the convex hull result for a selection.
type Hull struct {
	Skipped  bool    `json:"skipped"`
	Reason   string  `json:"reason,omitempty"`
	Vertices []Point `json:"vertices,omitempty"`
}

// RenderPlan is everything the renderer needs for one selection.
type RenderPlan struct {
	Selection    Selection  `json:"selection"`
	Goalkeeper   bool       `json:"goalkeeper"`
	Layers       []Layer    `json:"layers"`
	DensityInput []Point    `json:"density_input,omitempty"`
	HullInput    []Point    `json:"hull_input,omitempty"`
	Hull         *Hull      `json:"hull,omitempty"`
	Unavailable  []Category `json:"unavailable,omitempty"`
	EventCount   int        `json:"event_count"`
}

// Layer returns the layer for c, or nil.
func (p *RenderPlan) Layer(c Category) *Layer {
	for i := range p.Layers {
		if p.Layers[i].Category == c {
			return &p.Layers[i]
		}
	}
	return nil
}

// MatchSummary is a lightweight record for list commands.
type MatchSummary struct {
	Name       string
	SourcePath string
	Teams      []string
	EventCount int
	IngestedAt string
}
