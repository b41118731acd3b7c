// Package valueobjects provides value objects for the reading domain.
package valueobjects

// Status represents the lifecycle state of a meter reading.
//
// A reading captured from a photo starts in StatusAwaitingAI and moves to
// StatusAIConfirmed, StatusManualReview or StatusFailed depending on the
// recognition outcome. Operators can later fix any reading from the web,
// which moves it to StatusWebCorrected. Readings ingested from spreadsheet
// imports are final from the start and carry StatusProcessed.
type Status string

const (
	StatusAwaitingAI   Status = "awaiting_ai"
	StatusAIConfirmed  Status = "ai_confirmed"
	StatusManualReview Status = "manual_review"
	StatusFailed       Status = "failed"
	StatusWebCorrected Status = "web_corrected"
	StatusProcessed    Status = "processed"
)

// IsValid checks if the status is valid.
func (s Status) IsValid() bool {
	switch s {
	case StatusAwaitingAI, StatusAIConfirmed, StatusManualReview,
		StatusFailed, StatusWebCorrected, StatusProcessed:
		return true
	default:
		return false
	}
}

// IsFinal returns true if the reading needs no further attention.
func (s Status) IsFinal() bool {
	switch s {
	case StatusAIConfirmed, StatusWebCorrected, StatusProcessed:
		return true
	default:
		return false
	}
}

// NeedsAttention returns true if the reading should be highlighted for
// operator review.
func (s Status) NeedsAttention() bool {
	return s == StatusManualReview || s == StatusFailed
}

// CanTransitionTo checks whether the status may move to the target state.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusAwaitingAI:
		return target == StatusAIConfirmed || target == StatusManualReview || target == StatusFailed
	case StatusAIConfirmed, StatusManualReview, StatusFailed, StatusProcessed:
		return target == StatusWebCorrected
	case StatusWebCorrected:
		return target == StatusWebCorrected
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}
