package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformInBounds(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.UniformIn(-0.95, 0.95)
		assert.GreaterOrEqual(t, v, -0.95)
		assert.Less(t, v, 0.95)
	}
}

func TestUniformInDegenerateBounds(t *testing.T) {
	s := New(1)
	assert.Equal(t, 2.0, s.UniformIn(2, 2))
	assert.Equal(t, 5.0, s.UniformIn(5, 3))
}

func TestIntBetweenBounds(t *testing.T) {
	s := New(1)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := s.IntBetween(0, 4)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
		seen[v] = true
	}
	// Every cluster index should come up over enough draws
	assert.Len(t, seen, 4)
}

func TestNormalAroundDegenerateSd(t *testing.T) {
	s := New(1)
	assert.Equal(t, 3.5, s.NormalAround(3.5, 0))
	assert.Equal(t, 3.5, s.NormalAround(3.5, -1))
}

func TestSeedDeterminism(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.UniformIn(0, 1), b.UniformIn(0, 1))
	}

	c := New(7)
	assert.NotEqual(t, New(42).UniformIn(0, 1), c.UniformIn(0, 1))
}
