package ports

import (
	"context"

	"coanalyst/domain/analysis"
	"coanalyst/domain/core"
	"coanalyst/domain/table"
)

// TableReader turns an uploaded file into a Table. Implementations exist for
// delimiter-naive CSV text and for Excel workbooks.
type TableReader interface {
	ReadTable(filename string, data []byte) (*table.Table, error)
}

// MetricSampler supplies the pseudorandom placeholder figures the prototype
// reports for correlation, regression, clustering and t-test outputs. Keeping
// it behind a port lets a real statistical engine replace the sampling
// without touching rendering or progress contracts.
type MetricSampler interface {
	// UniformIn draws a value uniformly from [lo, hi)
	UniformIn(lo, hi float64) float64
	// NormalAround draws from a normal distribution with the given mean and
	// standard deviation
	NormalAround(mean, sd float64) float64
	// IntBetween draws an integer uniformly from [lo, hi)
	IntBetween(lo, hi int) int
}

// MethodStrategy computes the result of one analysis method. Strategies must
// be total: when the data cannot support the method they return an explicit
// insufficient-data result, never a partial one.
type MethodStrategy interface {
	Method() analysis.Method
	Compute(ctx context.Context, cfg analysis.Config) (*analysis.Result, error)
}

// RunRecord is one persisted entry of the optional analysis history
type RunRecord struct {
	ID           core.RunID      `json:"id"`
	Method       analysis.Method `json:"method"`
	Instructions string          `json:"instructions,omitempty"`
	ResultType   string          `json:"result_type"`
	SummaryJSON  string          `json:"summary_json"`
	CreatedAt    core.Timestamp  `json:"created_at"`
}

// RunHistory persists executed analyses. The in-memory session state stays
// authoritative; history is a convenience log and may be absent entirely.
type RunHistory interface {
	Record(ctx context.Context, rec RunRecord) error
	List(ctx context.Context, limit int) ([]RunRecord, error)
	Close() error
}
