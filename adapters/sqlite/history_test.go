package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coanalyst/domain/analysis"
	"coanalyst/domain/core"
	"coanalyst/ports"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h
}

func record(method analysis.Method) ports.RunRecord {
	return ports.RunRecord{
		ID:          core.RunID(core.NewID()),
		Method:      method,
		ResultType:  "desc_stats_summary",
		SummaryJSON: `{"sample_size":3}`,
		CreatedAt:   core.Now(),
	}
}

func TestRecordAndList(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	first := record(analysis.MethodDescStats)
	second := record(analysis.MethodCorrelation)
	require.NoError(t, h.Record(ctx, first))
	require.NoError(t, h.Record(ctx, second))

	runs, err := h.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, analysis.MethodCorrelation, runs[0].Method)
	assert.Equal(t, `{"sample_size":3}`, runs[0].SummaryJSON)
}

func TestListHonorsLimit(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, h.Record(ctx, record(analysis.MethodGeneric)))
	}

	runs, err := h.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestListEmptyHistory(t *testing.T) {
	h := openTestHistory(t)

	runs, err := h.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
