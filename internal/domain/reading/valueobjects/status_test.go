package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	valid := []Status{
		StatusAwaitingAI, StatusAIConfirmed, StatusManualReview,
		StatusFailed, StatusWebCorrected, StatusProcessed,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}

	assert.False(t, Status("unknown").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   Status
		to     Status
		wantOK bool
	}{
		{"awaiting to confirmed", StatusAwaitingAI, StatusAIConfirmed, true},
		{"awaiting to manual review", StatusAwaitingAI, StatusManualReview, true},
		{"awaiting to failed", StatusAwaitingAI, StatusFailed, true},
		{"awaiting to corrected skips settlement", StatusAwaitingAI, StatusWebCorrected, false},
		{"confirmed to corrected", StatusAIConfirmed, StatusWebCorrected, true},
		{"failed to corrected", StatusFailed, StatusWebCorrected, true},
		{"manual review to corrected", StatusManualReview, StatusWebCorrected, true},
		{"processed to corrected", StatusProcessed, StatusWebCorrected, true},
		{"corrected again", StatusWebCorrected, StatusWebCorrected, true},
		{"confirmed back to awaiting", StatusAIConfirmed, StatusAwaitingAI, false},
		{"failed to confirmed", StatusFailed, StatusAIConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOK, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_NeedsAttention(t *testing.T) {
	assert.True(t, StatusManualReview.NeedsAttention())
	assert.True(t, StatusFailed.NeedsAttention())
	assert.False(t, StatusAIConfirmed.NeedsAttention())
	assert.False(t, StatusWebCorrected.NeedsAttention())
	assert.False(t, StatusProcessed.NeedsAttention())
	assert.False(t, StatusAwaitingAI.NeedsAttention())
}
