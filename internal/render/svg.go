// Package render draws a render plan onto an SVG pitch.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
)

// Pitch dimensions in metres; OPTA coordinates are 0-100 on both axes and are
// stretched onto this ratio.
const (
	pitchLength = 105.0
	pitchWidth  = 68.0
)

// Density grid resolution.
const (
	densityCols = 12
	densityRows = 8
)

const legendHeight = 40

// palette assigns a stroke colour to each layer. Categories without an entry
// use fallbackColor.
var palette = map[model.Category]string{
	model.CategoryPass:              "#9e9e9e",
	model.CategoryCompletedPass:     "#2e7d32",
	model.CategoryIncompletePass:    "#c62828",
	model.CategoryKeyPass:           "#f9a825",
	model.CategoryAssist:            "#6a1b9a",
	model.CategoryGoal:              "#00c853",
	model.CategoryShotOffTarget:     "#ef6c00",
	model.CategoryShotOffWoodwork:   "#8d6e63",
	model.CategoryShotSaved:         "#1565c0",
	model.CategoryDribble:           "#4dd0e1",
	model.CategorySuccessfulDribble: "#00838f",
	model.CategoryTackle:            "#5d4037",
	model.CategorySuccessfulTackle:  "#3e2723",
	model.CategoryInterception:      "#283593",
	model.CategoryBlock:             "#37474f",
	model.CategoryClearance:         "#ad1457",
	model.CategoryAerialWon:         "#1b5e20",
	model.CategoryAerialLost:        "#b71c1c",
	model.CategoryBallRecovery:      "#0277bd",
}

const fallbackColor = "#424242"

// Canvas maps OPTA coordinates onto pixel space.
type Canvas struct {
	Width, Height int
}

// NewCanvas returns a canvas of the given pixel width with the pitch aspect ratio.
func NewCanvas(width int) Canvas {
	return Canvas{Width: width, Height: int(math.Round(float64(width) * pitchWidth / pitchLength))}
}

// X maps an OPTA x (0 own goal line, 100 opponent goal line) to pixels.
func (c Canvas) X(x float64) int {
	return int(math.Round(vmap(x, 0, 100, 0, float64(c.Width))))
}

// Y maps an OPTA y (0 right touchline) to pixels, top of the image being y=100.
func (c Canvas) Y(y float64) int {
	return int(math.Round(vmap(y, 0, 100, float64(c.Height), 0)))
}

// vmap maps one range into another
func vmap(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}

// Render writes plan as an SVG document of the given width.
func Render(w io.Writer, plan *model.RenderPlan, width int) error {
	if plan == nil {
		return fmt.Errorf("nil render plan")
	}
	if width <= 0 {
		return fmt.Errorf("invalid width %d", width)
	}
	c := NewCanvas(width)
	canvas := svg.New(w)
	canvas.Start(c.Width, c.Height+legendHeight)
	canvas.Title(title(plan))

	canvas.Def()
	canvas.Marker("arrow", 10, 5, 10, 10, `orient="auto" markerUnits="strokeWidth"`)
	canvas.Path("M0,0 L10,5 L0,10 z", "fill:context-stroke")
	canvas.MarkerEnd()
	canvas.DefEnd()

	drawPitch(canvas, c)
	if len(plan.DensityInput) > 0 {
		drawDensity(canvas, c, plan.DensityInput)
	}
	if plan.Hull != nil && !plan.Hull.Skipped {
		drawHull(canvas, c, plan.Hull.Vertices)
	}
	if plan.Hull != nil {
		for _, p := range plan.HullInput {
			canvas.Circle(c.X(p.X), c.Y(p.Y), 3, "fill:#1a237e;fill-opacity:0.6")
		}
	}
	for _, l := range plan.Layers {
		drawLayer(canvas, c, l)
	}
	drawLegend(canvas, c, plan)
	canvas.End()
	return nil
}

func title(plan *model.RenderPlan) string {
	sel := plan.Selection
	t := sel.Match
	if sel.Team != "" {
		t += " - " + sel.Team
	}
	if sel.Player != "" {
		t += " - " + sel.Player
	}
	return t + " (" + string(sel.View) + ")"
}

func drawPitch(canvas *svg.SVG, c Canvas) {
	line := "fill:none;stroke:white;stroke-width:2"
	canvas.Rect(0, 0, c.Width, c.Height, "fill:#3a7d44")
	canvas.Rect(0, 0, c.Width, c.Height, line)
	canvas.Line(c.X(50), c.Y(0), c.X(50), c.Y(100), line)
	canvas.Circle(c.X(50), c.Y(50), int(math.Round(vmap(9.15, 0, pitchLength, 0, float64(c.Width)))), line)
	canvas.Circle(c.X(50), c.Y(50), 3, "fill:white")

	// Penalty areas, six-yard boxes and goals at both ends.
	for _, end := range []struct{ goal, box, six float64 }{{0, 17, 5.8}, {100, 83, 94.2}} {
		penaltyBox(canvas, c, end.goal, end.box, 21.1, 78.9, line)
		penaltyBox(canvas, c, end.goal, end.six, 36.8, 63.2, line)
		canvas.Line(c.X(end.goal), c.Y(45.2), c.X(end.goal), c.Y(54.8), "stroke:white;stroke-width:6")
	}
	canvas.Circle(c.X(11.5), c.Y(50), 2, "fill:white")
	canvas.Circle(c.X(88.5), c.Y(50), 2, "fill:white")
}

func penaltyBox(canvas *svg.SVG, c Canvas, x1, x2, y1, y2 float64, style string) {
	xs := []int{c.X(x1), c.X(x2), c.X(x2), c.X(x1)}
	ys := []int{c.Y(y1), c.Y(y1), c.Y(y2), c.Y(y2)}
	canvas.Polyline(xs, ys, style)
}

// DensityGrid bins points into a densityCols x densityRows grid; cell [0][0]
// covers the lowest x and y.
func DensityGrid(points []model.Point) [densityCols][densityRows]int {
	var grid [densityCols][densityRows]int
	for _, p := range points {
		i := bin(p.X, densityCols)
		j := bin(p.Y, densityRows)
		grid[i][j]++
	}
	return grid
}

func bin(v float64, n int) int {
	i := int(v / 100 * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func drawDensity(canvas *svg.SVG, c Canvas, points []model.Point) {
	grid := DensityGrid(points)
	peak := 0
	for i := range grid {
		for j := range grid[i] {
			peak = max(peak, grid[i][j])
		}
	}
	if peak == 0 {
		return
	}
	cw := 100.0 / densityCols
	ch := 100.0 / densityRows
	canvas.Gstyle("fill:#ffeb3b")
	for i := range grid {
		for j := range grid[i] {
			if grid[i][j] == 0 {
				continue
			}
			x0, y1 := c.X(float64(i)*cw), c.Y(float64(j+1)*ch)
			x1, y0 := c.X(float64(i+1)*cw), c.Y(float64(j)*ch)
			opacity := 0.15 + 0.6*float64(grid[i][j])/float64(peak)
			canvas.Rect(x0, y1, x1-x0, y0-y1, fmt.Sprintf("fill-opacity:%.2f", opacity))
		}
	}
	canvas.Gend()
}

func drawHull(canvas *svg.SVG, c Canvas, vertices []model.Point) {
	xs := make([]int, len(vertices))
	ys := make([]int, len(vertices))
	for i, v := range vertices {
		xs[i], ys[i] = c.X(v.X), c.Y(v.Y)
	}
	canvas.Polygon(xs, ys, "fill:#3949ab;fill-opacity:0.25;stroke:#1a237e;stroke-width:2")
}

func drawLayer(canvas *svg.SVG, c Canvas, l model.Layer) {
	color := layerColor(l.Category)
	canvas.Gstyle("stroke:" + color + ";fill:" + color)
	for _, m := range l.Markers {
		x, y := c.X(m.X), c.Y(m.Y)
		if l.Directional && m.EndX != nil && m.EndY != nil {
			canvas.Line(x, y, c.X(*m.EndX), c.Y(*m.EndY), "stroke-width:1.5;marker-end:url(#arrow)")
		}
		canvas.Circle(x, y, 4, "fill-opacity:0.8")
	}
	canvas.Gend()
}

func drawLegend(canvas *svg.SVG, c Canvas, plan *model.RenderPlan) {
	top := c.Height
	canvas.Rect(0, top, c.Width, legendHeight, "fill:white")
	canvas.Gstyle("font-family:sans-serif;font-size:12px")
	x := 10
	for _, l := range plan.Layers {
		if len(l.Markers) == 0 {
			continue
		}
		label := fmt.Sprintf("%s (%d)", l.Label, len(l.Markers))
		canvas.Circle(x+5, top+20, 5, "fill:"+layerColor(l.Category))
		canvas.Text(x+14, top+24, label, "fill:#212121")
		x += 24 + 7*len(label)
	}
	if plan.Hull != nil && plan.Hull.Skipped {
		canvas.Text(x, top+24, "hull skipped: "+plan.Hull.Reason, "fill:#757575")
	}
	canvas.Gend()
}

func layerColor(c model.Category) string {
	if col, ok := palette[c]; ok {
		return col
	}
	return fallbackColor
}
