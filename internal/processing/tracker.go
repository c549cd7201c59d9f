package processing

import "time"

// Snapshot is the UI-facing state after a tick. Stage is the weighted stage
// the elapsed time falls into and can differ from Phase, which follows the
// percent thresholds.
type Snapshot struct {
	Elapsed  time.Duration
	Percent  float64 // 0-100
	Phase    Phase
	Stage    Stage
	Steps    Steps
	Complete bool
}

// Tracker maps elapsed time onto progress, phase and stepper state. It is
// owned by a single driver and is not safe for concurrent use.
type Tracker struct {
	stages     []Stage
	total      time.Duration
	thresholds Thresholds

	elapsed  time.Duration
	steps    Steps
	complete bool
}

type Option func(*Tracker)

func WithStages(stages ...Stage) Option {
	return func(t *Tracker) {
		t.stages = append([]Stage(nil), stages...)
	}
}

func WithThresholds(th Thresholds) Option {
	return func(t *Tracker) {
		t.thresholds = th
	}
}

func NewTracker(opts ...Option) (*Tracker, error) {
	t := &Tracker{
		stages:     DefaultStages(),
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(t)
	}

	total, err := validateStages(t.stages)
	if err != nil {
		return nil, err
	}
	t.total = total

	return t, nil
}

func (t *Tracker) Total() time.Duration { return t.total }

func (t *Tracker) Complete() bool { return t.complete }

// Tick advances elapsed time by delta. Negative deltas count as zero. The
// second return value is true only on the tick that completes the run.
func (t *Tracker) Tick(delta time.Duration) (Snapshot, bool) {
	if delta > 0 {
		t.elapsed += delta
	}

	percent := t.percent()
	t.steps = t.steps.merge(t.thresholds.steps(percent))

	var completed bool
	if !t.complete && t.elapsed >= t.total {
		t.complete = true
		completed = true
	}

	return t.snapshot(percent), completed
}

func (t *Tracker) Snapshot() Snapshot {
	return t.snapshot(t.percent())
}

// Stage returns the stage the elapsed time currently falls into by weight.
func (t *Tracker) Stage() Stage {
	var cumulative time.Duration
	for _, s := range t.stages {
		cumulative += s.Duration
		if t.elapsed < cumulative {
			return s
		}
	}
	return t.stages[len(t.stages)-1]
}

func (t *Tracker) percent() float64 {
	if t.elapsed >= t.total {
		return 100
	}
	return float64(t.elapsed) * 100 / float64(t.total)
}

func (t *Tracker) snapshot(percent float64) Snapshot {
	return Snapshot{
		Elapsed:  t.elapsed,
		Percent:  percent,
		Phase:    t.thresholds.phase(percent),
		Stage:    t.Stage(),
		Steps:    t.steps,
		Complete: t.complete,
	}
}
