// Package compute implements the per-method analysis strategies behind
// ports.MethodStrategy. Descriptive statistics and the data quality check
// derive their figures from the uploaded data; the model-based methods report
// sampled placeholder figures drawn through ports.MetricSampler while keeping
// the full output contract of a real computation.
package compute

import (
	"context"
	"fmt"
	"math"

	"coanalyst/domain/analysis"
	"coanalyst/ports"
)

// DescStatsStrategy summarizes every selected numeric column
type DescStatsStrategy struct{}

// NewDescStatsStrategy creates the descriptive statistics strategy
func NewDescStatsStrategy() *DescStatsStrategy {
	return &DescStatsStrategy{}
}

// Method identifies the strategy
func (s *DescStatsStrategy) Method() analysis.Method {
	return analysis.MethodDescStats
}

// Compute builds a per-column statistics block plus a histogram of the first
// selected column.
func (s *DescStatsStrategy) Compute(_ context.Context, cfg analysis.Config) (*analysis.Result, error) {
	columns := selectNumericColumns(cfg, "variables")
	if len(columns) == 0 {
		return analysis.NewInsufficientDataResult(s.Method(),
			"No numeric columns found to summarize."), nil
	}

	result := analysis.NewResult(analysis.ResultDescStats, s.Method())
	result.Statistics = make(map[string]analysis.ColumnStats, len(columns))
	for _, col := range columns {
		result.Statistics[col] = describeColumn(cfg.Table.NumericColumn(col))
	}

	result.Summary["variables_analyzed"] = len(columns)
	result.Summary["sample_size"] = cfg.Table.RowCount()
	result.Summary["variables"] = columns

	result.Interpretation = s.interpret(columns, result.Statistics)
	result.ChartData = s.chart(cfg, columns[0])
	return result, nil
}

func (s *DescStatsStrategy) interpret(columns []string, stats map[string]analysis.ColumnStats) analysis.Interpretation {
	interp := analysis.Interpretation{
		Summary: fmt.Sprintf("Computed descriptive statistics for %d numeric variable(s).", len(columns)),
	}

	for _, col := range columns {
		cs := stats[col]
		interp.Details = append(interp.Details, fmt.Sprintf(
			"%s: mean %.2f, median %.2f, range %.2f to %.2f.",
			col, cs.Mean, cs.Median, cs.Min, cs.Max))

		// A mean far from the median suggests skew worth flagging
		if cs.Std > 0 && math.Abs(cs.Mean-cs.Median) > cs.Std {
			interp.Details = append(interp.Details, fmt.Sprintf(
				"%s: mean and median differ noticeably, the distribution may be skewed.", col))
		}
	}

	interp.Recommendations = append(interp.Recommendations,
		"Inspect the distribution of key variables before modeling.")
	return interp
}

func (s *DescStatsStrategy) chart(cfg analysis.Config, column string) *analysis.Chart {
	values := cfg.Table.NumericColumn(column)
	labels, counts := histogramBins(values, 10)
	if len(labels) == 0 {
		return nil
	}

	return &analysis.Chart{
		Kind:   analysis.ChartHistogram,
		Title:  fmt.Sprintf("Distribution of %s", column),
		XLabel: column,
		YLabel: "Frequency",
		Labels: labels,
		Datasets: []analysis.ChartDataset{
			{Label: column, Values: counts},
		},
	}
}

var _ ports.MethodStrategy = (*DescStatsStrategy)(nil)
