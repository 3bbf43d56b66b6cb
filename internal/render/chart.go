package render

import (
	"coanalyst/domain/analysis"
)

// Default color palette cycled across chart series
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// renderChart assigns colors and maps the domain chart onto the config the
// charting collaborator consumes. Charts with no drawable series render as
// nil so the caller can fall back to text.
func renderChart(chart *analysis.Chart) *ChartConfig {
	if len(chart.Datasets) == 0 {
		return nil
	}

	series := make([]Series, 0, len(chart.Datasets))
	for i, ds := range chart.Datasets {
		if len(ds.Values) == 0 && len(ds.Points) == 0 && ds.Box == nil {
			continue
		}

		color := ds.Color
		if color == "" {
			color = defaultColors[i%len(defaultColors)]
		}
		series = append(series, Series{
			Name:   ds.Label,
			Values: ds.Values,
			Points: ds.Points,
			Box:    ds.Box,
			Color:  color,
		})
	}
	if len(series) == 0 {
		return nil
	}

	return &ChartConfig{
		Kind:       string(chart.Kind),
		Title:      chart.Title,
		XAxis:      chart.XLabel,
		YAxis:      chart.YLabel,
		Labels:     chart.Labels,
		Series:     series,
		ShowLegend: len(series) > 1,
		ShowGrid:   true,
	}
}
