package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunSummary_Record(t *testing.T) {
	summary := NewRunSummary(time.Now())

	summary.Record(OutcomeNoChange)
	summary.Record(OutcomeNoChange)
	summary.Record(OutcomeChanged)
	summary.Record(OutcomeFirstRun)
	summary.Record(OutcomeError)

	assert.Equal(t, 2, summary.NoChange)
	assert.Equal(t, 1, summary.Changed)
	assert.Equal(t, 1, summary.FirstRun)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 5, summary.Total())
}

func TestRunSummary_String(t *testing.T) {
	summary := RunSummary{NoChange: 3, Changed: 1, FirstRun: 2, Errors: 0}
	assert.Equal(t, "No change: 3. Change: 1. First run: 2. Error: 0.", summary.String())
}

func TestOutcomeConstructors(t *testing.T) {
	first := FirstRunOutcome("content")
	assert.Equal(t, OutcomeFirstRun, first.Kind)
	assert.Equal(t, "content", first.Latest)

	noChange := NoChangeOutcome("content")
	assert.Equal(t, OutcomeNoChange, noChange.Kind)
	assert.Equal(t, noChange.Previous, noChange.Latest)

	changed := ChangedOutcome("old", "new")
	assert.Equal(t, OutcomeChanged, changed.Kind)
	assert.Equal(t, "old", changed.Previous)
	assert.Equal(t, "new", changed.Latest)

	errOutcome := ErrorOutcome(ErrorFetch, "it broke")
	assert.Equal(t, OutcomeError, errOutcome.Kind)
	assert.Equal(t, ErrorFetch, errOutcome.ErrKind)
	assert.Equal(t, "it broke", errOutcome.Message)
}
