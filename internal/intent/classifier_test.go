package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coanalyst/domain/analysis"
)

func TestClassifyKeywords(t *testing.T) {
	cases := []struct {
		instructions string
		want         analysis.Method
	}{
		{"show me the correlation between price and size", analysis.MethodCorrelation},
		{"predict sales with a linear model", analysis.MethodRegression},
		{"segment the customers into groups", analysis.MethodClustering},
		{"is there a significant difference between the groups?", analysis.MethodTTest},
		{"summarize the mean and median of each column", analysis.MethodDescStats},
		{"check for missing values and outliers", analysis.MethodDataQuality},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.instructions), "instructions: %s", tc.instructions)
	}
}

func TestClassifyFallsBackToGeneric(t *testing.T) {
	assert.Equal(t, analysis.MethodGeneric, Classify(""))
	assert.Equal(t, analysis.MethodGeneric, Classify("   "))
	assert.Equal(t, analysis.MethodGeneric, Classify("tell me something interesting"))
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, analysis.MethodCorrelation, Classify("CORRELATION analysis please"))
}
