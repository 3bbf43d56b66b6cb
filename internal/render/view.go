// Package render turns an analysis Result into a presentation View. Rendering
// is pure: the same Result always yields the same View and the Result is
// never mutated, so a view can be rebuilt at any time from session state.
package render

import (
	"coanalyst/domain/analysis"
)

// View is the complete presentation of one result
type View struct {
	Title          string                  `json:"title"`
	Method         string                  `json:"method"`
	ResultType     string                  `json:"result_type"`
	Tiles          []Tile                  `json:"tiles"`
	Sections       []Section               `json:"sections,omitempty"`
	Interpretation analysis.Interpretation `json:"interpretation"`
	Chart          *ChartConfig            `json:"chart,omitempty"`
	ChartFallback  string                  `json:"chart_fallback,omitempty"`
	GeneratedAt    string                  `json:"generated_at"`
}

// Tile is one formatted summary figure
type Tile struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is one titled table of formatted values
type Section struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ChartConfig is the chart descriptor handed to the charting collaborator,
// with series colors already assigned.
type ChartConfig struct {
	Kind       string   `json:"kind"`
	Title      string   `json:"title"`
	XAxis      string   `json:"x_axis,omitempty"`
	YAxis      string   `json:"y_axis,omitempty"`
	Labels     []string `json:"labels,omitempty"`
	Series     []Series `json:"series"`
	ShowLegend bool     `json:"show_legend"`
	ShowGrid   bool     `json:"show_grid"`
}

// Series is one colored chart series. Exactly one of Values, Points or Box is
// populated, matching the chart kind.
type Series struct {
	Name   string                      `json:"name"`
	Values []float64                   `json:"values,omitempty"`
	Points []analysis.Point            `json:"points,omitempty"`
	Box    *analysis.FiveNumberSummary `json:"box,omitempty"`
	Color  string                      `json:"color,omitempty"`
}
