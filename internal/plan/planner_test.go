package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coanalyst/domain/analysis"
)

func TestEveryMethodHasAPlan(t *testing.T) {
	for _, m := range analysis.Methods() {
		steps := For(m)
		require.NotEmpty(t, steps, "method %s", m)

		assert.Equal(t, "Loading dataset", steps[0].Name)
		assert.Equal(t, "Interpreting results", steps[len(steps)-1].Name)
		for _, step := range steps {
			assert.Positive(t, step.Duration)
		}
	}
}

func TestUnknownMethodGetsGenericPlan(t *testing.T) {
	steps := For(analysis.Method("whatever"))
	require.Len(t, steps, 3)
	assert.Equal(t, "Exploring dataset", steps[1].Name)
}
