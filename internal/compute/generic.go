package compute

import (
	"context"
	"fmt"

	"coanalyst/domain/analysis"
	"coanalyst/ports"
)

// GenericStrategy is the fallback for unrecognized methods and blank
// instructions. It reports dataset shape only and never carries a chart.
type GenericStrategy struct{}

// NewGenericStrategy creates the generic fallback strategy
func NewGenericStrategy() *GenericStrategy {
	return &GenericStrategy{}
}

// Method identifies the strategy
func (s *GenericStrategy) Method() analysis.Method {
	return analysis.MethodGeneric
}

// Compute reports row, column and numeric-column counts
func (s *GenericStrategy) Compute(_ context.Context, cfg analysis.Config) (*analysis.Result, error) {
	numeric := cfg.Table.NumericColumns()

	result := analysis.NewResult(analysis.ResultGeneric, s.Method())
	result.Summary["row_count"] = cfg.Table.RowCount()
	result.Summary["column_count"] = cfg.Table.ColumnCount()
	result.Summary["numeric_columns"] = len(numeric)

	result.Interpretation = analysis.Interpretation{
		Summary: fmt.Sprintf("The dataset holds %d rows across %d columns, %d of them numeric.",
			cfg.Table.RowCount(), cfg.Table.ColumnCount(), len(numeric)),
		Details: []string{
			"No specific analysis method was requested, so only the dataset shape was examined.",
		},
		Recommendations: []string{
			"Pick a specific method, or describe the question you want answered in the instructions box.",
		},
	}
	return result, nil
}

var _ ports.MethodStrategy = (*GenericStrategy)(nil)
