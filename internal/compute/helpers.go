package compute

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"

	"coanalyst/domain/analysis"
	"coanalyst/domain/table"
)

// selectNumericColumns resolves which numeric columns a method operates on.
// User-selected parameter values take precedence when they name columns that
// are actually numeric; otherwise selection falls back to every numeric
// column in header order.
func selectNumericColumns(cfg analysis.Config, paramName string) []string {
	if selected := selectedNumericColumns(cfg, paramName); len(selected) > 0 {
		return selected
	}
	return cfg.Table.NumericColumns()
}

// selectedNumericColumns returns the user-selected columns that are actually
// numeric, in request order. Empty when the parameter is absent or names no
// numeric column.
func selectedNumericColumns(cfg analysis.Config, paramName string) []string {
	requested := cfg.ParamList(paramName)
	if len(requested) == 0 {
		return nil
	}

	numeric := cfg.Table.NumericColumns()
	allowed := make(map[string]bool, len(numeric))
	for _, h := range numeric {
		allowed[h] = true
	}

	selected := make([]string, 0, len(requested))
	for _, h := range requested {
		if allowed[h] {
			selected = append(selected, h)
		}
	}
	return selected
}

// describeColumn computes the descriptive statistics of one value slice.
// Standard deviation is the population form; quartiles use the nearest-rank
// definition without interpolation.
func describeColumn(values []float64) analysis.ColumnStats {
	if len(values) == 0 {
		return analysis.ColumnStats{}
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	std, _ := stats.StandardDeviationPopulation(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	return analysis.ColumnStats{
		Count:  len(values),
		Mean:   mean,
		Median: median,
		Std:    std,
		Min:    min,
		Max:    max,
		Q25:    nearestRank(values, 25),
		Q75:    nearestRank(values, 75),
	}
}

// nearestRank returns the percentile value at sorted index floor(p/100 * N)
func nearestRank(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	idx := int(math.Floor(p / 100.0 * float64(len(sorted))))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// columnRange returns the min and max of a value slice, or (-1, 1) when empty
func columnRange(values []float64) (float64, float64) {
	if len(values) == 0 {
		return -1, 1
	}
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	if min == max {
		return min - 1, max + 1
	}
	return min, max
}

// pairedPoints extracts {x, y} points from two columns, keeping only rows
// where both cells parse as numbers.
func pairedPoints(t *table.Table, xCol, yCol string) []analysis.Point {
	xi := t.ColumnIndex(xCol)
	yi := t.ColumnIndex(yCol)
	if xi < 0 || yi < 0 {
		return nil
	}

	points := make([]analysis.Point, 0, t.RowCount())
	for _, row := range t.Rows {
		x, okX := parseCell(row[xi])
		y, okY := parseCell(row[yi])
		if !okX || !okY {
			continue
		}
		points = append(points, analysis.Point{X: x, Y: y})
	}
	return points
}

func parseCell(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// histogramBins splits values into up to binCount labeled bins
func histogramBins(values []float64, binCount int) ([]string, []float64) {
	if len(values) == 0 || binCount < 1 {
		return nil, nil
	}

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	if min == max {
		return []string{fmt.Sprintf("%.1f", min)}, []float64{float64(len(values))}
	}

	width := (max - min) / float64(binCount)
	labels := make([]string, binCount)
	counts := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		lo := min + float64(i)*width
		labels[i] = fmt.Sprintf("%.1f to %.1f", lo, lo+width)
	}
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		counts[idx]++
	}
	return labels, counts
}

// fiveNumbersAround synthesizes a plausible boxplot summary spread around a
// sampled mean; the spread mirrors a roughly normal shape.
func fiveNumbersAround(mean, sd float64) *analysis.FiveNumberSummary {
	if sd <= 0 {
		sd = 1
	}
	return &analysis.FiveNumberSummary{
		Min:    mean - 2*sd,
		Q25:    mean - 0.67*sd,
		Median: mean,
		Q75:    mean + 0.67*sd,
		Max:    mean + 2*sd,
	}
}
