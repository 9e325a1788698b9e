package fx

import "time"

// PassStats holds execution timing for a single pass.
type PassStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// PipelineStats is a snapshot of pipeline activity since creation.
type PipelineStats struct {
	Frames         int64 // frames that went through BeginCapture
	CapturedFrames int64 // frames that were captured and composited
	Passes         []PassStats
	Pool           PoolStats
}

// passTimes accumulates draw timings for one pass.
type passTimes struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	last  time.Duration
	total time.Duration
}

func newPassTimes(name string) *passTimes {
	return &passTimes{name: name, min: time.Duration(1<<63 - 1)}
}

func (t *passTimes) record(d time.Duration) {
	t.count++
	t.last = d
	t.total += d
	if d < t.min {
		t.min = d
	}
	if d > t.max {
		t.max = d
	}
}

func (t *passTimes) snapshot() PassStats {
	s := PassStats{
		Name:           t.name,
		ExecutionCount: t.count,
		MaxDuration:    t.max,
		LastDuration:   t.last,
		TotalDuration:  t.total,
	}
	if t.count > 0 {
		s.MinDuration = t.min
		s.AvgDuration = t.total / time.Duration(t.count)
	}
	return s
}
