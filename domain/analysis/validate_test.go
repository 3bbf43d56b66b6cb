package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult() *Result {
	r := NewResult(ResultGeneric, MethodGeneric)
	r.Interpretation = Interpretation{Summary: "ok"}
	return r
}

func TestValidateRequiresInterpretation(t *testing.T) {
	r := NewResult(ResultGeneric, MethodGeneric)
	assert.Error(t, r.Validate())

	r.Interpretation.Summary = "something"
	assert.NoError(t, r.Validate())
}

func TestValidateDetailExclusivity(t *testing.T) {
	r := validResult()
	r.Statistics = map[string]ColumnStats{"x": {}}
	require.NoError(t, r.Validate())

	r.Model = &RegressionModel{}
	assert.Error(t, r.Validate())
}

func TestValidateMatrixSymmetry(t *testing.T) {
	r := validResult()
	r.CorrelationMatrix = map[string]map[string]float64{
		"a": {"a": 1.0, "b": 0.5},
		"b": {"a": 0.5, "b": 1.0},
	}
	require.NoError(t, r.Validate())

	r.CorrelationMatrix["a"]["b"] = -0.5
	assert.Error(t, r.Validate())
}

func TestValidateMatrixDiagonalAndRange(t *testing.T) {
	r := validResult()
	r.CorrelationMatrix = map[string]map[string]float64{
		"a": {"a": 0.9},
	}
	assert.Error(t, r.Validate(), "diagonal must be exactly 1")

	r.CorrelationMatrix = map[string]map[string]float64{
		"a": {"a": 1.0, "b": 1.2},
		"b": {"a": 1.2, "b": 1.0},
	}
	assert.Error(t, r.Validate(), "entries must stay within [-1, 1]")
}

func TestValidateModelCoefficientCount(t *testing.T) {
	r := validResult()
	r.Model = &RegressionModel{
		Coefficients: []float64{1.0},
		Features:     []string{"x", "y"},
	}
	assert.Error(t, r.Validate())
}

func TestValidateClusterAssignmentsInRange(t *testing.T) {
	r := validResult()
	r.Clusters = &ClusterResult{
		K:           2,
		Assignments: []int{0, 1, 2},
		Features:    []string{"x", "y"},
	}
	assert.Error(t, r.Validate())

	r.Clusters.Assignments = []int{0, 1, 1}
	assert.NoError(t, r.Validate())
}

func TestInsufficientDataResultIsTotal(t *testing.T) {
	r := NewInsufficientDataResult(MethodClustering, "not enough columns")

	require.NoError(t, r.Validate())
	assert.Equal(t, ResultInsufficientData, r.Type)
	assert.Equal(t, "not enough columns", r.Summary["reason"])
	assert.Nil(t, r.Clusters)
	assert.Nil(t, r.ChartData)
	assert.NotEmpty(t, r.Interpretation.Summary)
}
