package table

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ColumnProfile captures per-column quality signals used by the data quality
// report and by parameter auto-fill.
type ColumnProfile struct {
	Name            string     `json:"name"`
	Type            ColumnType `json:"type"`
	MissingCount    int        `json:"missing_count"`
	UniqueCount     int        `json:"unique_count"`
	OutlierCount    int        `json:"outlier_count"`
	SampleValues    []string   `json:"sample_values,omitempty"`
	NumericCoverage float64    `json:"numeric_coverage"`
}

// Profile computes a ColumnProfile for every column. Columns are profiled
// concurrently; profiling is read-only so the shared Table needs no locking.
func (t *Table) Profile(ctx context.Context) ([]ColumnProfile, error) {
	profiles := make([]ColumnProfile, len(t.Headers))
	numeric := make(map[string]bool)
	for _, h := range t.NumericColumns() {
		numeric[h] = true
	}

	g, _ := errgroup.WithContext(ctx)
	for i, header := range t.Headers {
		g.Go(func() error {
			profiles[i] = t.profileColumn(header, numeric[header])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (t *Table) profileColumn(header string, isNumeric bool) ColumnProfile {
	raw := t.Column(header)

	profile := ColumnProfile{
		Name: header,
		Type: ColumnText,
	}
	if isNumeric {
		profile.Type = ColumnNumeric
	}

	seen := make(map[string]struct{}, len(raw))
	parsed := 0
	for _, cell := range raw {
		if cell == "" {
			profile.MissingCount++
			continue
		}
		seen[cell] = struct{}{}
		if _, ok := parseFinite(cell); ok {
			parsed++
		}
	}
	profile.UniqueCount = len(seen)
	if len(raw) > 0 {
		profile.NumericCoverage = float64(parsed) / float64(len(raw))
	}

	sampleLen := len(raw)
	if sampleLen > 5 {
		sampleLen = 5
	}
	profile.SampleValues = append([]string(nil), raw[:sampleLen]...)

	if isNumeric {
		profile.OutlierCount = countIQROutliers(t.NumericColumn(header))
	}
	return profile
}

// countIQROutliers flags values outside [q25 - 1.5*IQR, q75 + 1.5*IQR],
// with quartiles taken at the nearest sorted rank.
func countIQROutliers(values []float64) int {
	if len(values) < 4 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	q25 := sorted[len(sorted)/4]
	q75 := sorted[(len(sorted)*3)/4]
	iqr := q75 - q25
	lower := q25 - 1.5*iqr
	upper := q75 + 1.5*iqr

	count := 0
	for _, v := range values {
		if v < lower || v > upper {
			count++
		}
	}
	return count
}
