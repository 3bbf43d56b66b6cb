package progress

import (
	"context"
	"time"
)

// Step is one named stage of a simulated analysis pipeline
type Step struct {
	Name     string
	Duration time.Duration
}

// Phase distinguishes the two events emitted per step
type Phase string

const (
	PhaseStarted   Phase = "started"
	PhaseCompleted Phase = "completed"
)

// Event reports the state of the sequence to a subscriber. Progress moves
// linearly by 100/len(steps) per completed step, independent of durations.
type Event struct {
	Step       int
	TotalSteps int
	StepName   string
	Phase      Phase
	Progress   float64
	IsFinal    bool
}

// Sink receives progress events
type Sink func(Event)

// Runner walks an ordered step sequence, emitting a started event, waiting
// out the step duration, then emitting a completed event. Scale multiplies
// every duration; 0 runs the sequence without real delays.
type Runner struct {
	Scale float64
	Sink  Sink
}

// NewRunner creates a runner with unit time scale
func NewRunner(sink Sink) *Runner {
	return &Runner{Scale: 1.0, Sink: sink}
}

// Run executes the sequence. Cancelling the context stops the walk between
// or during delays and returns ctx.Err(); no further events are emitted.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	total := len(steps)
	if total == 0 {
		return nil
	}

	increment := 100.0 / float64(total)
	for i, step := range steps {
		before := float64(i) * increment

		r.emit(Event{
			Step:       i,
			TotalSteps: total,
			StepName:   step.Name,
			Phase:      PhaseStarted,
			Progress:   before,
		})

		if err := r.wait(ctx, step.Duration); err != nil {
			return err
		}

		r.emit(Event{
			Step:       i,
			TotalSteps: total,
			StepName:   step.Name,
			Phase:      PhaseCompleted,
			Progress:   before + increment,
			IsFinal:    i == total-1,
		})
	}
	return nil
}

func (r *Runner) emit(ev Event) {
	if r.Sink != nil {
		r.Sink(ev)
	}
}

func (r *Runner) wait(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * r.Scale)
	if scaled <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(scaled)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
