package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/geoquery-cli/internal/geo"
	"github.com/sells-group/geoquery-cli/internal/render"
	"github.com/sells-group/geoquery-cli/pkg/geosql"
)

var queryJSON bool

var queryCmd = &cobra.Command{
	Use:   "query <question>",
	Short: "Run a natural-language query and render the results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Input validation happens here, at the boundary: a blank question
		// never reaches the session.
		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			return eris.New("question must not be blank")
		}

		sess := newSession()
		resp, err := sess.ExecuteQuery(cmd.Context(), question)
		if err != nil {
			return eris.New(geosql.ErrorMessage(err))
		}

		snap := sess.Store().Snapshot()
		features := render.SelectAll(resp.Results)
		viewport := geo.FitViewport(geo.CollectBounds(resp.Results), snap.Viewport())

		if queryJSON {
			return printPlanJSON(resp.SQL, resp.ResultCount, resp.ExecutionTime, viewport, features)
		}

		fmt.Printf("SQL: %s\n", resp.SQL)
		fmt.Printf("Results: %d  Execution Time: %.1fms\n", resp.ResultCount, resp.ExecutionTime)
		fmt.Printf("Viewport: (%.4f, %.4f) zoom %d\n\n", viewport.Center.Lat, viewport.Center.Lng, viewport.Zoom)
		printFeatures(features)
		return nil
	},
}

type renderPlan struct {
	SQL           string           `json:"sql"`
	ResultCount   int              `json:"result_count"`
	ExecutionTime float64          `json:"execution_time"`
	Viewport      geo.Viewport     `json:"viewport"`
	Features      []render.Feature `json:"features"`
}

func printPlanJSON(sql string, count int, execTime float64, viewport geo.Viewport, features []render.Feature) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(renderPlan{
		SQL:           sql,
		ResultCount:   count,
		ExecutionTime: execTime,
		Viewport:      viewport,
		Features:      features,
	}); err != nil {
		return eris.Wrap(err, "cmd: encode render plan")
	}
	return nil
}

func printFeatures(features []render.Feature) {
	for _, f := range features {
		switch f.Mode {
		case render.ModeMarker:
			fmt.Printf("  [%d] marker at (%.4f, %.4f)\n", f.ID, f.Position.Lat, f.Position.Lng)
		default:
			fmt.Printf("  [%d] %s shape (stroke %s", f.ID, f.Geometry.Type, f.Style.Color)
			if f.Style.FillColor != "" {
				fmt.Printf(", fill %s @ %.1f", f.Style.FillColor, f.Style.FillOpacity)
			}
			fmt.Println(")")
		}
		for _, row := range f.Popup {
			fmt.Printf("      %s: %s\n", row.Key, row.Value)
		}
	}
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "emit the render plan as JSON")
	rootCmd.AddCommand(queryCmd)
}
