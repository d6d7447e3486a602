package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
)

func samplePlan() *model.RenderPlan {
	endX, endY := 60.0, 30.0
	return &model.RenderPlan{
		Selection: model.Selection{Match: "goa-vs-odisha", Team: "FC Goa", View: model.ViewPassing},
		Layers: []model.Layer{{
			Category: model.CategoryCompletedPass, Label: "Completed Pass", Directional: true,
			Markers: []model.Marker{{EventID: 2, X: 50, Y: 50, EndX: &endX, EndY: &endY}},
		}},
		DensityInput: []model.Point{{X: 50, Y: 50}},
		EventCount:   1,
	}
}

func TestWritePlanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	if err := writePlanFile(path, samplePlan(), "json"); err != nil {
		t.Fatalf("writePlanFile: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var got struct {
		Layers []struct {
			Category model.Category `json:"category"`
		} `json:"layers"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, b)
	}
	if len(got.Layers) != 1 || got.Layers[0].Category != model.CategoryCompletedPass {
		t.Errorf("decoded layers: %+v", got.Layers)
	}
}

func TestWritePlanFile_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir", "plan.json")
	if err := writePlanFile(missing, samplePlan(), "json"); err == nil {
		t.Error("expected error for an output path in a missing directory")
	}
}

func TestSourcePath(t *testing.T) {
	got := sourcePath(filepath.Join("Matches", "goa-vs-odisha.csv"))
	if !filepath.IsAbs(got) {
		t.Errorf("expected an absolute path, got %q", got)
	}
	if filepath.Base(got) != "goa-vs-odisha.csv" {
		t.Errorf("file name lost: %q", got)
	}
}
