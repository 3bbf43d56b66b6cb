package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coanalyst/domain/analysis"
)

func TestFormatValueNumbers(t *testing.T) {
	assert.Equal(t, "0.1234", FormatValue(0.1234))
	assert.Equal(t, "-0.5000", FormatValue(-0.5))
	assert.Equal(t, "12.34", FormatValue(12.34))
	assert.Equal(t, "999.99", FormatValue(999.99))
	assert.Equal(t, "1,234,568", FormatValue(1234567.8))
	assert.Equal(t, "-1,000", FormatValue(-1000.0))
	assert.Equal(t, "42.00", FormatValue(42))
}

func TestFormatValueNonNumeric(t *testing.T) {
	assert.Equal(t, "yes", FormatValue(true))
	assert.Equal(t, "no", FormatValue(false))
	assert.Equal(t, "hello", FormatValue("hello"))
	assert.Equal(t, "a, b, c", FormatValue([]string{"a", "b", "c"}))
	assert.Equal(t, "x, 2.00", FormatValue([]interface{}{"x", 2.0}))
}

func TestRenderIsIdempotent(t *testing.T) {
	result := analysis.NewResult(analysis.ResultDescStats, analysis.MethodDescStats)
	result.Summary["sample_size"] = 3
	result.Summary["variables"] = []string{"a"}
	result.Statistics = map[string]analysis.ColumnStats{
		"a": {Count: 3, Mean: 3, Median: 3, Min: 1, Max: 5},
	}
	result.Interpretation = analysis.Interpretation{Summary: "ok"}

	first := Render(result)
	second := Render(result)
	assert.Equal(t, first, second)
}

func TestRenderStatisticsSection(t *testing.T) {
	result := analysis.NewResult(analysis.ResultDescStats, analysis.MethodDescStats)
	result.Summary["variables"] = []string{"b", "a"}
	result.Statistics = map[string]analysis.ColumnStats{
		"a": {Count: 2, Mean: 1.5},
		"b": {Count: 2, Mean: 4.5},
	}
	result.Interpretation = analysis.Interpretation{Summary: "ok"}

	view := Render(result)
	require.Len(t, view.Sections, 1)

	section := view.Sections[0]
	assert.Equal(t, "Descriptive Statistics", section.Title)
	require.Len(t, section.Rows, 2)
	// Row order follows the variables summary entry
	assert.Equal(t, "b", section.Rows[0][0])
	assert.Equal(t, "a", section.Rows[1][0])
}

func TestRenderMatrixFlagsStrongCells(t *testing.T) {
	result := analysis.NewResult(analysis.ResultCorrelation, analysis.MethodCorrelation)
	result.CorrelationMatrix = map[string]map[string]float64{
		"a": {"a": 1.0, "b": 0.85},
		"b": {"a": 0.85, "b": 1.0},
	}
	result.Interpretation = analysis.Interpretation{Summary: "ok"}

	view := Render(result)
	require.Len(t, view.Sections, 1)

	section := view.Sections[0]
	assert.Equal(t, []string{"", "a", "b"}, section.Columns)
	assert.Equal(t, "0.85 *", section.Rows[0][2])
	// The diagonal is never flagged
	assert.Equal(t, "1.00", section.Rows[0][1])
}

func TestRenderModelSectionAppendsIntercept(t *testing.T) {
	result := analysis.NewResult(analysis.ResultRegression, analysis.MethodRegression)
	result.Model = &analysis.RegressionModel{
		Target:       "price",
		Features:     []string{"size"},
		Coefficients: []float64{1.5},
		Intercept:    -3.25,
	}
	result.Interpretation = analysis.Interpretation{Summary: "ok"}

	view := Render(result)
	require.Len(t, view.Sections, 1)

	rows := view.Sections[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"size", "1.50"}, rows[0])
	assert.Equal(t, []string{"(intercept)", "-3.25"}, rows[1])
}

func TestRenderClusterSectionShares(t *testing.T) {
	result := analysis.NewResult(analysis.ResultClustering, analysis.MethodClustering)
	result.Clusters = &analysis.ClusterResult{
		K:           2,
		Assignments: []int{0, 0, 0, 1},
		Features:    []string{"x", "y"},
	}
	result.Interpretation = analysis.Interpretation{Summary: "ok"}

	view := Render(result)
	rows := view.Sections[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Cluster 0", "3", "75.0%"}, rows[0])
	assert.Equal(t, []string{"Cluster 1", "1", "25.0%"}, rows[1])
}

func TestRenderChartFallbackWhenNoChart(t *testing.T) {
	result := analysis.NewResult(analysis.ResultGeneric, analysis.MethodGeneric)
	result.Interpretation = analysis.Interpretation{Summary: "ok"}

	view := Render(result)
	assert.Nil(t, view.Chart)
	assert.NotEmpty(t, view.ChartFallback)
}

func TestRenderChartAssignsColors(t *testing.T) {
	result := analysis.NewResult(analysis.ResultClustering, analysis.MethodClustering)
	result.Interpretation = analysis.Interpretation{Summary: "ok"}
	result.ChartData = &analysis.Chart{
		Kind:  analysis.ChartClusterScatter,
		Title: "clusters",
		Datasets: []analysis.ChartDataset{
			{Label: "Cluster 0", Points: []analysis.Point{{X: 1, Y: 1}}},
			{Label: "Cluster 1", Points: []analysis.Point{{X: 2, Y: 2}}},
		},
	}

	view := Render(result)
	require.NotNil(t, view.Chart)
	require.Len(t, view.Chart.Series, 2)
	assert.NotEmpty(t, view.Chart.Series[0].Color)
	assert.NotEqual(t, view.Chart.Series[0].Color, view.Chart.Series[1].Color)
	assert.True(t, view.Chart.ShowLegend)
	assert.Empty(t, view.ChartFallback)
}

func TestRenderSkipsEmptySeries(t *testing.T) {
	result := analysis.NewResult(analysis.ResultDescStats, analysis.MethodDescStats)
	result.Interpretation = analysis.Interpretation{Summary: "ok"}
	result.ChartData = &analysis.Chart{
		Kind:     analysis.ChartHistogram,
		Datasets: []analysis.ChartDataset{{Label: "empty"}},
	}

	view := Render(result)
	assert.Nil(t, view.Chart)
	assert.NotEmpty(t, view.ChartFallback)
}

func TestTileLabels(t *testing.T) {
	result := analysis.NewResult(analysis.ResultGeneric, analysis.MethodGeneric)
	result.Summary["sample_size"] = 10
	result.Summary["significant"] = true
	result.Interpretation = analysis.Interpretation{Summary: "ok"}

	view := Render(result)
	require.Len(t, view.Tiles, 2)
	// Tiles come out in sorted key order with title-cased labels
	assert.Equal(t, Tile{Label: "Sample Size", Value: "10.00"}, view.Tiles[0])
	assert.Equal(t, Tile{Label: "Significant", Value: "yes"}, view.Tiles[1])
}
