package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/aggregator"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/render"
	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/report"
)

var (
	plotTeam     string
	plotPlayer   string
	plotView     string
	plotPosition string
	plotFormat   string
	plotOut      string
)

var plotCmd = &cobra.Command{
	Use:   "plot <match>",
	Short: "Build the render plan for a team or player",
	Long: `Build the render plan of one selection and write it as JSON or SVG.

Views:
  all        every action category
  passing    passes, key passes, assists and the pass density input
  offensive  shots, goals, dribbles, key passes, assists, fouls won, aerials won
  defensive  tackles, interceptions, blocks, clearances, aerials, recoveries, keeper actions
  hull       convex hull of the selection's on-ball locations

A goalkeeper selection (position "Goalkeeper", from the data or --position)
only shows goalkeeper categories, with blocks labelled "Save".`,
	Args: cobra.ExactArgs(1),
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotTeam, "team", "", "team name (empty: whole match)")
	plotCmd.Flags().StringVar(&plotPlayer, "player", "", "player name (empty: whole team)")
	plotCmd.Flags().StringVar(&plotView, "view", "all", "all, passing, offensive, defensive or hull")
	plotCmd.Flags().StringVar(&plotPosition, "position", "", "position override, e.g. Goalkeeper")
	plotCmd.Flags().StringVar(&plotFormat, "format", "json", "json or svg")
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "", "output file (default stdout)")
}

func runPlot(cmd *cobra.Command, args []string) error {
	if plotFormat != "json" && plotFormat != "svg" {
		return fmt.Errorf("unknown format %q (want json or svg)", plotFormat)
	}
	view, err := model.ParseViewMode(plotView)
	if err != nil {
		return err
	}
	table, err := loadTable(args[0])
	if err != nil {
		return err
	}

	plan, err := aggregator.BuildPlan(table, model.Selection{
		Team: plotTeam, Player: plotPlayer, Position: plotPosition, View: view,
	})
	if err != nil {
		return fmt.Errorf("build plan: %w", err)
	}
	if plan.Hull != nil && plan.Hull.Skipped {
		log.Info().Str("reason", plan.Hull.Reason).Msg("convex hull skipped")
	}

	if plotOut == "" {
		return writePlan(os.Stdout, plan, plotFormat)
	}
	if err := writePlanFile(plotOut, plan, plotFormat); err != nil {
		return err
	}

	report.PrintPlanSummary(os.Stdout, plan)
	fmt.Fprintf(os.Stdout, "\nWrote %s\n", plotOut)
	return nil
}

func writePlan(w io.Writer, plan *model.RenderPlan, format string) error {
	var err error
	switch format {
	case "svg":
		err = render.Render(w, plan, cfg.PlotWidth)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(plan)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// writePlanFile writes the plan to path, including the error from closing it.
func writePlanFile(path string, plan *model.RenderPlan, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writePlan(f, plan, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
