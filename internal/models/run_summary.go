package models

import (
	"fmt"
	"time"
)

// RunSummary accumulates outcome counts across all sites in one run.
type RunSummary struct {
	NoChange  int
	Changed   int
	FirstRun  int
	Errors    int
	StartedAt time.Time
	Duration  time.Duration
}

// NewRunSummary creates a zeroed summary stamped with the run start time.
func NewRunSummary(startedAt time.Time) RunSummary {
	return RunSummary{StartedAt: startedAt}
}

// Record increments the bucket matching the given outcome kind.
func (s *RunSummary) Record(kind OutcomeKind) {
	switch kind {
	case OutcomeNoChange:
		s.NoChange++
	case OutcomeChanged:
		s.Changed++
	case OutcomeFirstRun:
		s.FirstRun++
	case OutcomeError:
		s.Errors++
	}
}

// Total returns the number of sites processed.
func (s RunSummary) Total() int {
	return s.NoChange + s.Changed + s.FirstRun + s.Errors
}

// String formats the summary the way it appears in logs and the admin email.
func (s RunSummary) String() string {
	return fmt.Sprintf("No change: %d. Change: %d. First run: %d. Error: %d.",
		s.NoChange, s.Changed, s.FirstRun, s.Errors)
}
