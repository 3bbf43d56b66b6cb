package analysis

import (
	"strconv"

	"coanalyst/domain/core"
	"coanalyst/domain/table"
)

// Config is a single execution request. It is built once per request and
// consumed exactly once by the generator; nothing mutates it afterwards.
type Config struct {
	Method       Method              `json:"method"`
	Instructions string              `json:"instructions,omitempty"`
	Parameters   map[string][]string `json:"parameters,omitempty"`
	Table        *table.Table        `json:"-"`
}

// Param returns the first value collected for a parameter, or "" when unset
func (c Config) Param(name string) string {
	values := c.Parameters[name]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// ParamList returns every value collected for a parameter
func (c Config) ParamList(name string) []string {
	return c.Parameters[name]
}

// IntParam returns an integer parameter, falling back when unset or invalid
func (c Config) IntParam(name string, fallback int) int {
	raw := c.Param(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// ResultType tags the detail shape carried by a Result
type ResultType string

const (
	ResultDescStats        ResultType = "desc_stats_summary"
	ResultCorrelation      ResultType = "correlation_analysis"
	ResultRegression       ResultType = "linear_regression"
	ResultClustering       ResultType = "kmeans_clustering"
	ResultTTest            ResultType = "t_test_independent"
	ResultDataQuality      ResultType = "data_quality_check"
	ResultGeneric          ResultType = "generic_analysis"
	ResultInsufficientData ResultType = "insufficient_data"
)

// ColumnStats holds the descriptive statistics of one numeric column.
// Std is the population standard deviation; Q25/Q75 use nearest-rank
// percentiles without interpolation.
type ColumnStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// RegressionModel is the fitted-model shape reported for linear regression
type RegressionModel struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Features     []string  `json:"features"`
	R2           float64   `json:"r2"`
	RMSE         float64   `json:"rmse"`
	Target       string    `json:"target"`
}

// ClusterResult is the assignment shape reported for k-means clustering
type ClusterResult struct {
	Assignments []int       `json:"assignments"`
	Centers     [][]float64 `json:"centers"`
	Features    []string    `json:"features"`
	Silhouette  float64     `json:"silhouette"`
	K           int         `json:"k"`
}

// TTestResult holds the two-group comparison shape
type TTestResult struct {
	GroupColumn string    `json:"group_column"`
	ValueColumn string    `json:"value_column"`
	GroupNames  []string  `json:"group_names"`
	GroupMeans  []float64 `json:"group_means"`
	GroupStds   []float64 `json:"group_stds"`
	GroupSizes  []int     `json:"group_sizes"`
	TStatistic  float64   `json:"t_statistic"`
	PValue      float64   `json:"p_value"`
}

// QualityReport summarizes dataset health per column
type QualityReport struct {
	TotalRows    int                   `json:"total_rows"`
	TotalColumns int                   `json:"total_columns"`
	Columns      []table.ColumnProfile `json:"columns"`
}

// Interpretation is the natural-language reading of a result
type Interpretation struct {
	Summary         string   `json:"summary"`
	Details         []string `json:"details"`
	Recommendations []string `json:"recommendations"`
}

// Result is the structured output of one analysis execution. Summary and
// Interpretation are always present; at most one detail block is set,
// matching Type. Results are created fresh per execution and never mutated.
type Result struct {
	ID     core.RunID `json:"id"`
	Type   ResultType `json:"type"`
	Method Method     `json:"method"`

	Summary map[string]interface{} `json:"summary"`

	Statistics        map[string]ColumnStats        `json:"statistics,omitempty"`
	CorrelationMatrix map[string]map[string]float64 `json:"correlation_matrix,omitempty"`
	Model             *RegressionModel              `json:"model,omitempty"`
	Clusters          *ClusterResult                `json:"clusters,omitempty"`
	TTest             *TTestResult                  `json:"t_test,omitempty"`
	Quality           *QualityReport                `json:"quality,omitempty"`

	Interpretation Interpretation `json:"interpretation"`
	ChartData      *Chart         `json:"chart_data,omitempty"`

	GeneratedAt core.Timestamp `json:"generated_at"`
}

// NewResult creates a result shell with identity and timestamp filled in
func NewResult(resultType ResultType, method Method) *Result {
	return &Result{
		ID:          core.RunID(core.NewID()),
		Type:        resultType,
		Method:      method,
		Summary:     make(map[string]interface{}),
		GeneratedAt: core.Now(),
	}
}

// NewInsufficientDataResult builds the explicit degraded variant used when a
// method cannot find the columns it needs. It is total: summary and
// interpretation are populated, detail blocks and chart stay empty.
func NewInsufficientDataResult(method Method, reason string) *Result {
	r := NewResult(ResultInsufficientData, method)
	r.Summary["reason"] = reason
	r.Interpretation = Interpretation{
		Summary: "The dataset does not contain enough suitable columns for this analysis.",
		Details: []string{reason},
		Recommendations: []string{
			"Upload a dataset with more numeric columns, or pick a different analysis method.",
		},
	}
	return r
}
