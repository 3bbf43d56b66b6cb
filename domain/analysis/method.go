package analysis

// Method identifies one of the fixed analysis procedures
type Method string

const (
	MethodDescStats   Method = "desc_stats_summary"
	MethodCorrelation Method = "correlation_analysis"
	MethodRegression  Method = "linear_regression"
	MethodClustering  Method = "kmeans_clustering"
	MethodTTest       Method = "t_test_independent"
	MethodDataQuality Method = "data_quality_check"
	MethodGeneric     Method = "generic_analysis"
)

// Methods lists every registered method in presentation order,
// generic fallback excluded.
func Methods() []Method {
	return []Method{
		MethodDescStats,
		MethodCorrelation,
		MethodRegression,
		MethodClustering,
		MethodTTest,
		MethodDataQuality,
	}
}

// ParseMethod maps an identifier onto the method enumeration. Unknown or
// blank identifiers route to the generic fallback rather than failing.
func ParseMethod(s string) Method {
	switch Method(s) {
	case MethodDescStats, MethodCorrelation, MethodRegression,
		MethodClustering, MethodTTest, MethodDataQuality:
		return Method(s)
	default:
		return MethodGeneric
	}
}

// DisplayName returns the human-readable name of a method
func (m Method) DisplayName() string {
	switch m {
	case MethodDescStats:
		return "Descriptive Statistics"
	case MethodCorrelation:
		return "Correlation Analysis"
	case MethodRegression:
		return "Linear Regression"
	case MethodClustering:
		return "K-means Clustering"
	case MethodTTest:
		return "Independent Two-Sample T-Test"
	case MethodDataQuality:
		return "Data Quality Check"
	default:
		return "General Analysis"
	}
}

// ParameterKind describes how a parameter value is collected
type ParameterKind string

const (
	ParamSingleColumn ParameterKind = "single_column"
	ParamMultiColumn  ParameterKind = "multi_column"
	ParamInteger      ParameterKind = "integer"
)

// ParameterSpec describes one named parameter of a method
type ParameterSpec struct {
	Name        string        `json:"name"`
	Kind        ParameterKind `json:"kind"`
	Description string        `json:"description"`
	Required    bool          `json:"required"`
}

// parameterTable is the fixed registry of method parameter schemas.
// Order within each slice is presentation order.
var parameterTable = map[Method][]ParameterSpec{
	MethodDescStats: {
		{Name: "variables", Kind: ParamMultiColumn, Description: "Numeric columns to summarize (all numeric columns when empty)", Required: false},
	},
	MethodCorrelation: {
		{Name: "variables", Kind: ParamMultiColumn, Description: "Numeric columns to correlate (all numeric columns when empty)", Required: false},
	},
	MethodRegression: {
		{Name: "target", Kind: ParamSingleColumn, Description: "Numeric column to predict", Required: true},
		{Name: "features", Kind: ParamMultiColumn, Description: "Numeric columns used as predictors", Required: true},
	},
	MethodClustering: {
		{Name: "features", Kind: ParamMultiColumn, Description: "Numeric columns used as clustering features", Required: true},
		{Name: "n_clusters", Kind: ParamInteger, Description: "Number of clusters", Required: false},
	},
	MethodTTest: {
		{Name: "group_column", Kind: ParamSingleColumn, Description: "Column holding exactly two group labels", Required: true},
		{Name: "value_column", Kind: ParamSingleColumn, Description: "Numeric column compared between groups", Required: true},
	},
	MethodDataQuality: {},
}

// ParametersFor returns the ordered parameter schema of a method. Unknown
// methods yield an empty schema, never an error.
func ParametersFor(m Method) []ParameterSpec {
	specs, ok := parameterTable[m]
	if !ok {
		return []ParameterSpec{}
	}
	out := make([]ParameterSpec, len(specs))
	copy(out, specs)
	return out
}

// DefaultClusterCount is used when kmeans_clustering receives no n_clusters
const DefaultClusterCount = 4
