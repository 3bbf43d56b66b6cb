package plan

import (
	"time"

	"coanalyst/domain/analysis"
	"coanalyst/internal/progress"
)

// Common pipeline stages shared by every method plan
const (
	stepLoad      = "Loading dataset"
	stepInterpret = "Interpreting results"
)

// For returns the ordered step sequence the progress emitter walks for a
// method. Every plan starts by loading the dataset and ends with result
// interpretation; the middle stages depend on the method.
func For(method analysis.Method) []progress.Step {
	switch method {
	case analysis.MethodDescStats:
		return steps(
			stepLoad,
			"Selecting numeric variables",
			"Computing descriptive statistics",
			stepInterpret,
		)
	case analysis.MethodCorrelation:
		return steps(
			stepLoad,
			"Selecting numeric variables",
			"Computing correlation matrix",
			"Building heatmap data",
			stepInterpret,
		)
	case analysis.MethodRegression:
		return steps(
			stepLoad,
			"Selecting target and features",
			"Preprocessing data",
			"Fitting linear model",
			stepInterpret,
		)
	case analysis.MethodClustering:
		return steps(
			stepLoad,
			"Selecting features",
			"Standardizing features",
			"Running k-means",
			"Profiling clusters",
			stepInterpret,
		)
	case analysis.MethodTTest:
		return steps(
			stepLoad,
			"Checking group variables",
			"Running independent t-test",
			stepInterpret,
		)
	case analysis.MethodDataQuality:
		return steps(
			stepLoad,
			"Scanning for missing values",
			"Checking outlier candidates",
			stepInterpret,
		)
	default:
		return steps(
			stepLoad,
			"Exploring dataset",
			stepInterpret,
		)
	}
}

// steps attaches the simulated duration to each stage name. Durations are
// cosmetic; progress percentages ignore them.
func steps(names ...string) []progress.Step {
	out := make([]progress.Step, len(names))
	for i, name := range names {
		out[i] = progress.Step{Name: name, Duration: 400 * time.Millisecond}
	}
	return out
}
