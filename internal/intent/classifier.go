// Package intent maps free-text analysis instructions onto a registered
// method by keyword scoring. It mirrors how the prototype's instruction box
// behaves: the highest-scoring intent wins and anything unrecognized falls
// back to general exploration.
package intent

import (
	"strings"

	"coanalyst/domain/analysis"
)

var keywordTable = map[analysis.Method][]string{
	analysis.MethodDescStats: {
		"descriptive", "summary statistics", "mean", "median",
		"standard deviation", "summarize", "basic statistics",
	},
	analysis.MethodCorrelation: {
		"correlation", "correlate", "relationship", "related", "association",
	},
	analysis.MethodRegression: {
		"regression", "predict", "forecast", "linear model", "model",
	},
	analysis.MethodClustering: {
		"cluster", "segment", "group", "k-means", "kmeans",
	},
	analysis.MethodTTest: {
		"t-test", "t test", "ttest", "significant difference",
		"hypothesis test", "compare groups",
	},
	analysis.MethodDataQuality: {
		"quality", "missing", "outlier", "clean", "null",
	},
}

// Classify scores the instructions against each method's keyword list and
// returns the best match. Multi-word phrases outweigh single keywords so
// "significant difference between groups" reads as a t-test, not clustering.
// Blank or unmatched text yields the generic fallback, never an error.
func Classify(instructions string) analysis.Method {
	text := strings.ToLower(instructions)
	if strings.TrimSpace(text) == "" {
		return analysis.MethodGeneric
	}

	best := analysis.MethodGeneric
	bestScore := 0
	for _, method := range analysis.Methods() {
		score := 0
		for _, keyword := range keywordTable[method] {
			weight := len(strings.Fields(keyword))
			score += strings.Count(text, keyword) * weight
		}
		if score > bestScore {
			best = method
			bestScore = score
		}
	}
	return best
}
