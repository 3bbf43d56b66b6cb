package compute

import (
	"context"
	"fmt"
	"math"

	"coanalyst/domain/analysis"
	"coanalyst/ports"
)

// CorrelationStrategy reports a pairwise correlation matrix over the selected
// numeric columns. Coefficients are sampled placeholders; the matrix shape is
// the real contract: symmetric, unit diagonal, every entry in [-1, 1].
type CorrelationStrategy struct {
	sampler ports.MetricSampler
}

// NewCorrelationStrategy creates the correlation strategy
func NewCorrelationStrategy(sampler ports.MetricSampler) *CorrelationStrategy {
	return &CorrelationStrategy{sampler: sampler}
}

// Method identifies the strategy
func (s *CorrelationStrategy) Method() analysis.Method {
	return analysis.MethodCorrelation
}

// Compute builds the matrix and a scatter of the first two selected columns
func (s *CorrelationStrategy) Compute(_ context.Context, cfg analysis.Config) (*analysis.Result, error) {
	columns := selectNumericColumns(cfg, "variables")
	if len(columns) < 2 {
		return analysis.NewInsufficientDataResult(s.Method(),
			"Correlation analysis needs at least two numeric columns."), nil
	}

	matrix := make(map[string]map[string]float64, len(columns))
	for _, col := range columns {
		matrix[col] = make(map[string]float64, len(columns))
		matrix[col][col] = 1.0
	}

	strongestA, strongestB := "", ""
	strongestR := 0.0
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			r := s.sampler.UniformIn(-0.95, 0.95)
			matrix[columns[i]][columns[j]] = r
			matrix[columns[j]][columns[i]] = r
			if strongestA == "" || math.Abs(r) > math.Abs(strongestR) {
				strongestA, strongestB, strongestR = columns[i], columns[j], r
			}
		}
	}

	result := analysis.NewResult(analysis.ResultCorrelation, s.Method())
	result.CorrelationMatrix = matrix
	result.Summary["variables_analyzed"] = len(columns)
	result.Summary["sample_size"] = cfg.Table.RowCount()
	result.Summary["strongest_pair"] = fmt.Sprintf("%s / %s", strongestA, strongestB)
	result.Summary["strongest_r"] = strongestR

	result.Interpretation = s.interpret(columns, matrix)
	result.ChartData = s.chart(cfg, columns[0], columns[1])
	return result, nil
}

func (s *CorrelationStrategy) interpret(columns []string, matrix map[string]map[string]float64) analysis.Interpretation {
	interp := analysis.Interpretation{
		Summary: fmt.Sprintf("Computed pairwise correlations across %d variables.", len(columns)),
	}

	strongPairs := 0
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			r := matrix[columns[i]][columns[j]]
			switch {
			case math.Abs(r) >= 0.7:
				strongPairs++
				interp.Details = append(interp.Details, fmt.Sprintf(
					"%s and %s show a %s %s correlation (r = %.2f).",
					columns[i], columns[j], correlationStrength(r), correlationDirection(r), r))
			case math.Abs(r) <= 0.3:
				// Weak pairs are only summarized in aggregate below
			default:
				interp.Details = append(interp.Details, fmt.Sprintf(
					"%s and %s are moderately %s correlated (r = %.2f).",
					columns[i], columns[j], correlationDirection(r), r))
			}
		}
	}

	if strongPairs == 0 {
		interp.Details = append(interp.Details,
			"No strongly correlated variable pairs were found.")
		interp.Recommendations = append(interp.Recommendations,
			"Weak correlations suggest the variables carry independent information.")
	} else {
		interp.Recommendations = append(interp.Recommendations,
			"Strongly correlated pairs may be redundant as model features; consider dropping one of each pair.")
	}
	return interp
}

func (s *CorrelationStrategy) chart(cfg analysis.Config, xCol, yCol string) *analysis.Chart {
	points := pairedPoints(cfg.Table, xCol, yCol)
	if len(points) == 0 {
		return nil
	}

	return &analysis.Chart{
		Kind:   analysis.ChartScatter,
		Title:  fmt.Sprintf("%s vs %s", xCol, yCol),
		XLabel: xCol,
		YLabel: yCol,
		Datasets: []analysis.ChartDataset{
			{Label: fmt.Sprintf("%s vs %s", xCol, yCol), Points: points},
		},
	}
}

func correlationStrength(r float64) string {
	switch abs := math.Abs(r); {
	case abs >= 0.8:
		return "very strong"
	case abs >= 0.6:
		return "strong"
	case abs >= 0.4:
		return "moderate"
	default:
		return "weak"
	}
}

func correlationDirection(r float64) string {
	if r < 0 {
		return "negative"
	}
	return "positive"
}

var _ ports.MethodStrategy = (*CorrelationStrategy)(nil)
