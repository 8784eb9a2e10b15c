package types

import "time"

// Candidate categories recognized by the opportunity scorer.
const (
	CategorySolutionRequest = "solution-request"
	CategoryAdviceRequest   = "advice-request"
)

// Candidate is a mention pre-filtered by an upstream query (fresh requests,
// high-intent leads, high-engagement posts) and offered to the opportunity
// scorer. Signal fields are sparse; a missing signal simply means the
// corresponding scoring rules do not fire.
type Candidate struct {
	ID       string `json:"id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Platform string `json:"platform,omitempty"`
	URL      string `json:"url,omitempty"`

	// CreatedAt drives the freshness rules. Nil disables them.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	// LeadScore estimates how likely the mention represents a sales
	// opportunity (0-100). Nil disables the intent rules.
	LeadScore *float64 `json:"lead_score,omitempty" validate:"omitempty,min=0,max=100"`
	// Engagement is the platform-native popularity metric.
	Engagement *float64 `json:"engagement,omitempty" validate:"omitempty,min=0"`
	// Category is the classification tag, if any.
	Category string `json:"category,omitempty"`
}

// Opportunity is the single highest-priority candidate selected for
// featured display, with its accumulated score and one human-readable
// justification. It is derived per request and never persisted.
type Opportunity struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Platform string  `json:"platform,omitempty"`
	URL      string  `json:"url,omitempty"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason"`
}
