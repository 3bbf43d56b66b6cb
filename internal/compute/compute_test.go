package compute

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coanalyst/domain/analysis"
	"coanalyst/domain/table"
)

// stubSampler returns midpoints and cycles integer draws so every strategy
// output is predictable without a real random source.
type stubSampler struct {
	intCalls int
}

func (s *stubSampler) UniformIn(lo, hi float64) float64 { return (lo + hi) / 2 }

func (s *stubSampler) NormalAround(mean, _ float64) float64 { return mean }

func (s *stubSampler) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	v := lo + s.intCalls%(hi-lo)
	s.intCalls++
	return v
}

func mustParse(t *testing.T, raw string) *table.Table {
	t.Helper()
	tbl, err := table.Parse(raw)
	require.NoError(t, err)
	return tbl
}

func configFor(t *testing.T, method analysis.Method, raw string) analysis.Config {
	t.Helper()
	return analysis.Config{Method: method, Table: mustParse(t, raw)}
}

func TestDescStatsKnownValues(t *testing.T) {
	cfg := configFor(t, analysis.MethodDescStats, "a,b\n1,2\n3,4\n5,6")

	result, err := NewDescStatsStrategy().Compute(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, result.Validate())

	require.Contains(t, result.Statistics, "a")
	cs := result.Statistics["a"]
	assert.Equal(t, 3, cs.Count)
	assert.InDelta(t, 3.0, cs.Mean, 1e-9)
	assert.InDelta(t, 3.0, cs.Median, 1e-9)
	assert.InDelta(t, 1.0, cs.Min, 1e-9)
	assert.InDelta(t, 5.0, cs.Max, 1e-9)
	assert.InDelta(t, math.Sqrt(8.0/3.0), cs.Std, 1e-9)
}

func TestDescStatsQuartileOrdering(t *testing.T) {
	cfg := configFor(t, analysis.MethodDescStats, "v\n9\n1\n4\n7\n2\n8\n3")

	result, err := NewDescStatsStrategy().Compute(context.Background(), cfg)
	require.NoError(t, err)

	cs := result.Statistics["v"]
	assert.LessOrEqual(t, cs.Min, cs.Q25)
	assert.LessOrEqual(t, cs.Q25, cs.Median)
	assert.LessOrEqual(t, cs.Median, cs.Q75)
	assert.LessOrEqual(t, cs.Q75, cs.Max)
}

func TestDescStatsEvenCountMedianAverages(t *testing.T) {
	cfg := configFor(t, analysis.MethodDescStats, "v\n1\n2\n3\n4")

	result, err := NewDescStatsStrategy().Compute(context.Background(), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, result.Statistics["v"].Median, 1e-9)
}

func TestDescStatsHonorsSelectedVariables(t *testing.T) {
	cfg := configFor(t, analysis.MethodDescStats, "a,b\n1,2\n3,4")
	cfg.Parameters = map[string][]string{"variables": {"b"}}

	result, err := NewDescStatsStrategy().Compute(context.Background(), cfg)
	require.NoError(t, err)

	assert.Contains(t, result.Statistics, "b")
	assert.NotContains(t, result.Statistics, "a")
}

func TestDescStatsInsufficientData(t *testing.T) {
	cfg := configFor(t, analysis.MethodDescStats, "name\nalice\nbob")

	result, err := NewDescStatsStrategy().Compute(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, analysis.ResultInsufficientData, result.Type)
	assert.Nil(t, result.Statistics)
}

func TestCorrelationMatrixShape(t *testing.T) {
	cfg := configFor(t, analysis.MethodCorrelation, "x,y,z\n1,2,3\n4,5,6\n7,8,9")

	result, err := NewCorrelationStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, result.Validate())

	matrix := result.CorrelationMatrix
	require.Len(t, matrix, 3)
	for a, row := range matrix {
		assert.InDelta(t, 1.0, row[a], 1e-9)
		for b, r := range row {
			assert.GreaterOrEqual(t, r, -1.0)
			assert.LessOrEqual(t, r, 1.0)
			assert.Equal(t, matrix[b][a], r, "matrix must be symmetric")
		}
	}

	assert.Equal(t, analysis.ChartScatter, result.ChartData.Kind)
	assert.Len(t, result.ChartData.Datasets[0].Points, 3)
}

func TestCorrelationNeedsTwoColumns(t *testing.T) {
	cfg := configFor(t, analysis.MethodCorrelation, "x,label\n1,a\n2,b")

	result, err := NewCorrelationStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, analysis.ResultInsufficientData, result.Type)
}

func TestRegressionModelShape(t *testing.T) {
	cfg := configFor(t, analysis.MethodRegression, "price,size,age\n100,50,5\n200,80,2\n150,60,8")

	result, err := NewRegressionStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, result.Validate())

	model := result.Model
	require.NotNil(t, model)
	assert.Equal(t, "price", model.Target)
	assert.Equal(t, []string{"size", "age"}, model.Features)
	assert.Len(t, model.Coefficients, 2)
	assert.GreaterOrEqual(t, model.R2, 0.3)
	assert.LessOrEqual(t, model.R2, 0.95)
}

func TestRegressionHonorsTargetParameter(t *testing.T) {
	cfg := configFor(t, analysis.MethodRegression, "price,size\n100,50\n200,80")
	cfg.Parameters = map[string][]string{"target": {"size"}}

	result, err := NewRegressionStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "size", result.Model.Target)
	assert.Equal(t, []string{"price"}, result.Model.Features)
}

func TestRegressionIgnoresNonNumericTarget(t *testing.T) {
	cfg := configFor(t, analysis.MethodRegression, "price,size,label\n100,50,a\n200,80,b")
	cfg.Parameters = map[string][]string{"target": {"label"}}

	result, err := NewRegressionStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)

	// A non-numeric selection is recomputed from the data
	assert.Equal(t, "price", result.Model.Target)
}

func TestClusteringFeatureSelection(t *testing.T) {
	const data = "a,b,c\n1,2,3\n4,5,6\n7,8,9"

	// No selection: the first two numeric columns are the features
	cfg := configFor(t, analysis.MethodClustering, data)
	result, err := NewClusteringStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result.Clusters.Features)

	// A valid selection is honored as given
	cfg = configFor(t, analysis.MethodClustering, data)
	cfg.Parameters = map[string][]string{"features": {"b", "c"}}
	result, err = NewClusteringStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, result.Clusters.Features)

	// A selection naming no numeric column falls back like an absent one
	cfg = configFor(t, analysis.MethodClustering, data)
	cfg.Parameters = map[string][]string{"features": {"nope", "also_nope"}}
	result, err = NewClusteringStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result.Clusters.Features)
}

func TestClusteringAssignmentInvariants(t *testing.T) {
	cfg := configFor(t, analysis.MethodClustering, "x,y\n1,1\n2,2\n3,3\n4,4\n5,5\n6,6")
	cfg.Parameters = map[string][]string{"n_clusters": {"3"}}

	result, err := NewClusteringStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, result.Validate())

	clusters := result.Clusters
	require.NotNil(t, clusters)
	assert.Equal(t, 3, clusters.K)
	assert.Len(t, clusters.Assignments, cfg.Table.RowCount())
	for _, a := range clusters.Assignments {
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, clusters.K)
	}
	assert.Len(t, clusters.Centers, 3)
	for _, center := range clusters.Centers {
		assert.Len(t, center, len(clusters.Features))
	}

	assert.Equal(t, analysis.ChartClusterScatter, result.ChartData.Kind)
}

func TestClusteringDefaultsToFourClusters(t *testing.T) {
	cfg := configFor(t, analysis.MethodClustering, "x,y\n1,1\n2,2\n3,3\n4,4\n5,5")

	result, err := NewClusteringStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, analysis.DefaultClusterCount, result.Clusters.K)
}

func TestClusteringClampsClusterCountToRows(t *testing.T) {
	cfg := configFor(t, analysis.MethodClustering, "x,y\n1,1\n2,2\n3,3")
	cfg.Parameters = map[string][]string{"n_clusters": {"10"}}

	result, err := NewClusteringStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Clusters.K)
}

func TestTTestComparesFirstTwoGroups(t *testing.T) {
	cfg := configFor(t, analysis.MethodTTest,
		"group,score\nA,10\nB,20\nA,12\nB,22\nC,99")

	result, err := NewTTestStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, result.Validate())

	tt := result.TTest
	require.NotNil(t, tt)
	assert.Equal(t, "group", tt.GroupColumn)
	assert.Equal(t, "score", tt.ValueColumn)
	assert.Equal(t, []string{"A", "B"}, tt.GroupNames)
	assert.Equal(t, []int{2, 2}, tt.GroupSizes)
	assert.Equal(t, analysis.ChartBoxplot, result.ChartData.Kind)
}

func TestTTestNeedsTwoGroups(t *testing.T) {
	cfg := configFor(t, analysis.MethodTTest, "group,score\nA,10\nA,12")

	result, err := NewTTestStrategy(&stubSampler{}).Compute(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, analysis.ResultInsufficientData, result.Type)
}

func TestQualityCountsMissing(t *testing.T) {
	cfg := configFor(t, analysis.MethodDataQuality, "a,b\n1,x\n,y\n3,")

	result, err := NewQualityStrategy().Compute(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, result.Validate())

	assert.Equal(t, 3, result.Summary["total_rows"])
	assert.Equal(t, 2, result.Summary["total_columns"])
	assert.Equal(t, 2, result.Summary["columns_with_missing"])
	assert.Equal(t, 2, result.Summary["total_missing"])
	assert.Equal(t, analysis.ChartBar, result.ChartData.Kind)
}

func TestGenericResultHasNoChart(t *testing.T) {
	cfg := configFor(t, analysis.MethodGeneric, "a,b\n1,x\n2,y")

	result, err := NewGenericStrategy().Compute(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, result.Validate())

	assert.Nil(t, result.ChartData)
	assert.NotEmpty(t, result.Interpretation.Summary)
	assert.NotEmpty(t, result.Interpretation.Details)
	assert.Equal(t, 2, result.Summary["row_count"])
	assert.Equal(t, 1, result.Summary["numeric_columns"])
}

func TestRegistryDispatchesOnMethod(t *testing.T) {
	registry := NewRegistry(&stubSampler{})

	cfg := configFor(t, analysis.MethodDescStats, "a\n1\n2")
	result, err := registry.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, analysis.ResultDescStats, result.Type)
}

func TestRegistryFallsBackToGeneric(t *testing.T) {
	registry := NewRegistry(&stubSampler{})

	cfg := configFor(t, analysis.Method("unknown_method"), "a\n1\n2")
	result, err := registry.Generate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, analysis.ResultGeneric, result.Type)
}

func TestRegistryRejectsMissingTable(t *testing.T) {
	registry := NewRegistry(&stubSampler{})

	_, err := registry.Generate(context.Background(), analysis.Config{Method: analysis.MethodDescStats})
	assert.Error(t, err)
}
