package domain

import "time"

// Urgency is the ordinal severity attached to advice and alerts.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Intent is the coarse category assigned to a free-text farmer query.
type Intent string

const (
	IntentPest       Intent = "PEST"
	IntentIrrigation Intent = "IRRIGATION"
	IntentGeneric    Intent = "GENERIC"
)

// Advice is one synthesized advisory. Created per request, never mutated;
// feedback records reference it by ID.
type Advice struct {
	ID         string    `json:"id"`
	Text       string    `json:"advice"`
	Confidence float64   `json:"confidence"`
	Urgency    Urgency   `json:"urgency"`
	Reasoning  string    `json:"reasoning"`
	Intent     Intent    `json:"intent"`
	CreatedAt  time.Time `json:"timestamp"`
}

// FeedbackRecord links a farmer-reported outcome to a prior advisory.
// Read-only after creation; it never retroactively alters the Advice.
type FeedbackRecord struct {
	FarmerID    string    `json:"farmer_id"`
	AdviceID    string    `json:"advice_id"`
	ActionTaken bool      `json:"action_taken"`
	Outcome     string    `json:"outcome"`
	RecordedAt  time.Time `json:"timestamp"`
}
