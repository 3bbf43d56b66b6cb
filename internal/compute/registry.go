package compute

import (
	"context"

	"coanalyst/domain/analysis"
	apperrors "coanalyst/internal/errors"
	"coanalyst/ports"
)

// Registry dispatches an AnalysisConfig to its method strategy. Dispatch keys
// solely on the method enum; instructions influence nothing once the method
// has been resolved. Unregistered methods route to the generic fallback.
type Registry struct {
	strategies map[analysis.Method]ports.MethodStrategy
	fallback   ports.MethodStrategy
}

// NewRegistry wires every built-in strategy against the given sampler
func NewRegistry(sampler ports.MetricSampler) *Registry {
	r := &Registry{
		strategies: make(map[analysis.Method]ports.MethodStrategy),
		fallback:   NewGenericStrategy(),
	}

	r.Register(NewDescStatsStrategy())
	r.Register(NewCorrelationStrategy(sampler))
	r.Register(NewRegressionStrategy(sampler))
	r.Register(NewClusteringStrategy(sampler))
	r.Register(NewTTestStrategy(sampler))
	r.Register(NewQualityStrategy())
	return r
}

// Register adds or replaces the strategy for its method
func (r *Registry) Register(strategy ports.MethodStrategy) {
	r.strategies[strategy.Method()] = strategy
}

// Strategy returns the strategy for a method, or the generic fallback
func (r *Registry) Strategy(method analysis.Method) ports.MethodStrategy {
	if s, ok := r.strategies[method]; ok {
		return s
	}
	return r.fallback
}

// Generate runs the strategy for cfg.Method and validates the result shape
// before handing it back.
func (r *Registry) Generate(ctx context.Context, cfg analysis.Config) (*analysis.Result, error) {
	if cfg.Table == nil {
		return nil, apperrors.ConfigInvalid("analysis config carries no dataset")
	}

	result, err := r.Strategy(cfg.Method).Compute(ctx, cfg)
	if err != nil {
		return nil, apperrors.ExecutionFailed("analysis computation failed", err)
	}

	if err := result.Validate(); err != nil {
		return nil, apperrors.ExecutionFailed("generated result failed validation", err)
	}
	if result.Clusters != nil && len(result.Clusters.Assignments) != cfg.Table.RowCount() {
		return nil, apperrors.ExecutionFailed("cluster assignments do not cover every row", nil)
	}
	return result, nil
}
