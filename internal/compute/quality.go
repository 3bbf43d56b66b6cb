package compute

import (
	"context"
	"fmt"

	"coanalyst/domain/analysis"
	"coanalyst/domain/table"
	"coanalyst/ports"
)

// QualityStrategy reports real per-column health figures. Unlike the
// model-based methods nothing here is sampled; the counts come straight from
// the uploaded data.
type QualityStrategy struct{}

// NewQualityStrategy creates the data quality strategy
func NewQualityStrategy() *QualityStrategy {
	return &QualityStrategy{}
}

// Method identifies the strategy
func (s *QualityStrategy) Method() analysis.Method {
	return analysis.MethodDataQuality
}

// Compute profiles every column and summarizes missing values and outliers
func (s *QualityStrategy) Compute(ctx context.Context, cfg analysis.Config) (*analysis.Result, error) {
	if cfg.Table.RowCount() == 0 {
		return analysis.NewInsufficientDataResult(s.Method(),
			"The dataset has no data rows to check."), nil
	}

	profiles, err := cfg.Table.Profile(ctx)
	if err != nil {
		return nil, err
	}

	totalMissing, columnsWithMissing, totalOutliers := 0, 0, 0
	for _, p := range profiles {
		totalMissing += p.MissingCount
		totalOutliers += p.OutlierCount
		if p.MissingCount > 0 {
			columnsWithMissing++
		}
	}

	result := analysis.NewResult(analysis.ResultDataQuality, s.Method())
	result.Quality = &analysis.QualityReport{
		TotalRows:    cfg.Table.RowCount(),
		TotalColumns: cfg.Table.ColumnCount(),
		Columns:      profiles,
	}
	result.Summary["total_rows"] = cfg.Table.RowCount()
	result.Summary["total_columns"] = cfg.Table.ColumnCount()
	result.Summary["columns_with_missing"] = columnsWithMissing
	result.Summary["total_missing"] = totalMissing
	result.Summary["outlier_candidates"] = totalOutliers

	result.Interpretation = s.interpret(cfg, profiles, totalMissing)
	result.ChartData = s.chart(profiles)
	return result, nil
}

func (s *QualityStrategy) interpret(cfg analysis.Config, profiles []table.ColumnProfile, totalMissing int) analysis.Interpretation {
	cells := cfg.Table.RowCount() * cfg.Table.ColumnCount()
	missingRate := 0.0
	if cells > 0 {
		missingRate = float64(totalMissing) / float64(cells)
	}

	interp := analysis.Interpretation{}
	switch {
	case missingRate == 0:
		interp.Summary = "The dataset is complete; no missing values were found."
	case missingRate > 0.3:
		interp.Summary = fmt.Sprintf(
			"Data quality needs attention: %.0f%% of all cells are missing.", missingRate*100)
		interp.Recommendations = append(interp.Recommendations,
			"Consider dropping or imputing the worst-affected columns before analysis.")
	case missingRate > 0.1:
		interp.Summary = fmt.Sprintf(
			"Moderate data quality: %.0f%% of all cells are missing.", missingRate*100)
		interp.Recommendations = append(interp.Recommendations,
			"Impute or filter missing values before running model-based methods.")
	default:
		interp.Summary = fmt.Sprintf(
			"Good data quality overall: only %.1f%% of cells are missing.", missingRate*100)
	}

	for _, p := range profiles {
		if p.MissingCount == 0 && p.OutlierCount == 0 {
			continue
		}
		detail := fmt.Sprintf("%s: %d missing value(s)", p.Name, p.MissingCount)
		if p.OutlierCount > 0 {
			detail += fmt.Sprintf(", %d outlier candidate(s)", p.OutlierCount)
		}
		interp.Details = append(interp.Details, detail+".")
	}
	if len(interp.Details) == 0 {
		interp.Details = append(interp.Details,
			"No column shows missing values or outlier candidates.")
	}

	interp.Recommendations = append(interp.Recommendations,
		"Re-run this check after any cleaning step to confirm the fixes.")
	return interp
}

// chart plots missing counts per column as a bar chart
func (s *QualityStrategy) chart(profiles []table.ColumnProfile) *analysis.Chart {
	labels := make([]string, len(profiles))
	missing := make([]float64, len(profiles))
	for i, p := range profiles {
		labels[i] = p.Name
		missing[i] = float64(p.MissingCount)
	}

	return &analysis.Chart{
		Kind:   analysis.ChartBar,
		Title:  "Missing values per column",
		XLabel: "Column",
		YLabel: "Missing count",
		Labels: labels,
		Datasets: []analysis.ChartDataset{
			{Label: "Missing values", Values: missing},
		},
	}
}

var _ ports.MethodStrategy = (*QualityStrategy)(nil)
