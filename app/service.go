package app

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"coanalyst/domain/analysis"
	"coanalyst/domain/core"
	"coanalyst/internal"
	"coanalyst/internal/api"
	apperrors "coanalyst/internal/errors"
	"coanalyst/internal/intent"
	"coanalyst/internal/plan"
	"coanalyst/internal/progress"
	"coanalyst/ports"
)

// AnalysisService orchestrates one analysis at a time: it resolves the
// method, walks the simulated progress plan, generates the result and stores
// it in the session. A second execute request while a run is in flight is a
// no-op rather than an error or a queued run.
type AnalysisService struct {
	logger   *internal.Logger
	session  *Session
	registry ResultGenerator
	hub      *api.SSEHub
	history  ports.RunHistory // nil disables history

	progressScale float64

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

// ResultGenerator produces a result from a config. It is the dispatch surface
// of the compute registry.
type ResultGenerator interface {
	Generate(ctx context.Context, cfg analysis.Config) (*analysis.Result, error)
}

// NewAnalysisService wires the orchestrator. history may be nil.
func NewAnalysisService(
	logger *internal.Logger,
	session *Session,
	registry ResultGenerator,
	hub *api.SSEHub,
	history ports.RunHistory,
	progressScale float64,
) *AnalysisService {
	return &AnalysisService{
		logger:        logger,
		session:       session,
		registry:      registry,
		hub:           hub,
		history:       history,
		progressScale: progressScale,
	}
}

// ResolveMethod maps the request onto the method enum. An explicit method
// identifier wins; otherwise the free-text instructions are classified.
func (s *AnalysisService) ResolveMethod(methodID, instructions string) analysis.Method {
	if strings.TrimSpace(methodID) != "" {
		return analysis.ParseMethod(methodID)
	}
	return intent.Classify(instructions)
}

// Execute starts an analysis run in the background. It returns false without
// side effects when no dataset is loaded or another run is already in flight.
func (s *AnalysisService) Execute(cfg analysis.Config) bool {
	state := s.session.Snapshot()
	if !state.HasDataset() {
		return false
	}
	cfg.Table = state.Table
	datasetID := state.DatasetID

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Warn("Execute ignored: an analysis is already running")
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.running = true
	s.cancel = cancel
	s.mu.Unlock()

	s.session.Dispatch(func(state *SessionState) {
		state.InProgress = true
		state.Instructions = cfg.Instructions
		state.Parameters = cfg.Parameters
	})

	go s.run(ctx, cfg, datasetID)
	return true
}

// ExecuteSync runs an analysis on the caller's goroutine, bypassing the
// single-flight gate and the event stream. The CLI uses this path.
func (s *AnalysisService) ExecuteSync(ctx context.Context, cfg analysis.Config) (*analysis.Result, error) {
	if cfg.Table == nil {
		state := s.session.Snapshot()
		if !state.HasDataset() {
			return nil, apperrors.ConfigInvalid("no dataset loaded")
		}
		cfg.Table = state.Table
	}

	runner := &progress.Runner{Scale: s.progressScale}
	if err := runner.Run(ctx, plan.For(cfg.Method)); err != nil {
		return nil, err
	}

	result, err := s.registry.Generate(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s.recordRun(cfg, result)
	return result, nil
}

// Cancel aborts the in-flight run, if any
func (s *AnalysisService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

// Running reports whether an analysis is currently in flight
func (s *AnalysisService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *AnalysisService) run(ctx context.Context, cfg analysis.Config, datasetID core.DatasetID) {
	defer s.finish()

	sessionID := s.session.ID().String()
	s.logger.Info("Starting %s analysis for session %s", cfg.Method, sessionID)

	s.hub.Broadcast(api.AnalysisEvent{
		SessionID: sessionID,
		EventType: api.EventAnalysisStarted,
		Progress:  0,
		Data: map[string]interface{}{
			"method":       string(cfg.Method),
			"display_name": cfg.Method.DisplayName(),
		},
		Timestamp: time.Now(),
	})

	runner := &progress.Runner{
		Scale: s.progressScale,
		Sink:  s.progressSink(sessionID),
	}
	if err := runner.Run(ctx, plan.For(cfg.Method)); err != nil {
		s.fail(sessionID, "analysis cancelled", err)
		return
	}

	result, err := s.registry.Generate(ctx, cfg)
	if err != nil {
		s.fail(sessionID, "analysis failed", err)
		return
	}

	// The dataset can be cleared or replaced while the run is in flight; a
	// result computed from a table the session no longer holds is dropped.
	stored := false
	s.session.Dispatch(func(state *SessionState) {
		if state.DatasetID == datasetID {
			state.Result = result
			stored = true
		}
	})
	if !stored {
		s.logger.Warn("Discarding %s result: the dataset changed during the run", cfg.Method)
		s.fail(sessionID, "dataset changed during analysis",
			apperrors.ExecutionFailed("dataset changed during analysis", nil))
		return
	}
	s.recordRun(cfg, result)

	s.hub.Broadcast(api.AnalysisEvent{
		SessionID: sessionID,
		EventType: api.EventAnalysisComplete,
		Progress:  100,
		Data: map[string]interface{}{
			"run_id":      result.ID.String(),
			"result_type": string(result.Type),
		},
		Timestamp: time.Now(),
	})
	s.logger.Info("Completed %s analysis (run %s)", cfg.Method, result.ID)
}

// progressSink translates runner events into SSE broadcasts
func (s *AnalysisService) progressSink(sessionID string) progress.Sink {
	return func(ev progress.Event) {
		eventType := api.EventStepStarted
		if ev.Phase == progress.PhaseCompleted {
			eventType = api.EventStepCompleted
		}

		s.hub.Broadcast(api.AnalysisEvent{
			SessionID: sessionID,
			EventType: eventType,
			Progress:  ev.Progress,
			Data: map[string]interface{}{
				"step":        ev.Step,
				"total_steps": ev.TotalSteps,
				"step_name":   ev.StepName,
				"is_final":    ev.IsFinal,
			},
			Timestamp: time.Now(),
		})
	}
}

func (s *AnalysisService) fail(sessionID, message string, err error) {
	s.logger.Error("%s: %v", message, err)
	s.hub.Broadcast(api.AnalysisEvent{
		SessionID: sessionID,
		EventType: api.EventAnalysisFailed,
		Data: map[string]interface{}{
			"error": message,
			"code":  apperrors.GetCode(err),
		},
		Timestamp: time.Now(),
	})
}

func (s *AnalysisService) finish() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.running = false
	s.cancel = nil
	s.mu.Unlock()

	s.session.Dispatch(func(state *SessionState) {
		state.InProgress = false
	})
}

// recordRun appends the run to the optional history log. Failures are logged
// and swallowed; history never blocks the analysis flow.
func (s *AnalysisService) recordRun(cfg analysis.Config, result *analysis.Result) {
	if s.history == nil {
		return
	}

	summaryJSON, err := json.Marshal(result.Summary)
	if err != nil {
		s.logger.Warn("Could not marshal run summary for history: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rec := ports.RunRecord{
		ID:           result.ID,
		Method:       cfg.Method,
		Instructions: cfg.Instructions,
		ResultType:   string(result.Type),
		SummaryJSON:  string(summaryJSON),
		CreatedAt:    core.Now(),
	}
	if err := s.history.Record(ctx, rec); err != nil {
		s.logger.Warn("Could not record run in history: %v", err)
	}
}
