package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"coanalyst/domain/analysis"
)

func sampleResult() *analysis.Result {
	result := analysis.NewResult(analysis.ResultDescStats, analysis.MethodDescStats)
	result.Summary["sample_size"] = 3
	result.Summary["variables"] = []string{"a"}
	result.Statistics = map[string]analysis.ColumnStats{
		"a": {Count: 3, Mean: 3, Median: 3, Std: 1.63, Min: 1, Max: 5, Q25: 1, Q75: 5},
	}
	result.Interpretation = analysis.Interpretation{
		Summary:         "Computed descriptive statistics for 1 numeric variable(s).",
		Details:         []string{"a: mean 3.00, median 3.00, range 1.00 to 5.00."},
		Recommendations: []string{"Inspect the distribution of key variables before modeling."},
	}
	return result
}

func TestMarkdownStructure(t *testing.T) {
	doc := Markdown("data.csv", sampleResult())

	assert.True(t, strings.HasPrefix(doc, "# Descriptive Statistics"))
	assert.Contains(t, doc, "Dataset: data.csv")
	assert.Contains(t, doc, "## Summary")
	assert.Contains(t, doc, "## Descriptive Statistics")
	assert.Contains(t, doc, "| Variable | Count |")
	assert.Contains(t, doc, "## Interpretation")
	assert.Contains(t, doc, "### Recommendations")
}

func TestMarkdownOmitsEmptyDatasetName(t *testing.T) {
	doc := Markdown("", sampleResult())
	assert.NotContains(t, doc, "Dataset:")
}

func TestHTMLRendersTables(t *testing.T) {
	html := HTML("data.csv", sampleResult())

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>3</td>")
}
