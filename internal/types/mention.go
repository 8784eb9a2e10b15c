// Package types provides type definitions for structured data used throughout the mention-monitor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Mention represents a single piece of content collected from a monitored
// platform for a tracked keyword. Most signal fields are optional: platforms
// differ in what they expose, and a missing field only excludes the mention
// from selection criteria that need it.
type Mention struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`

	// Engagement is a normalized popularity metric (votes, replies, likes).
	// Nil when the source platform reports none.
	Engagement *float64 `json:"engagement,omitempty" validate:"omitempty,min=0"`
	// Rating is a bounded review rating (1-5). Nil for non-review content.
	Rating *float64 `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	// CreatedAt is the publication time on the source platform, when known.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	// Category is an optional content classification tag
	// (e.g. solution-request, advice-request).
	Category string `json:"category,omitempty"`

	// Presentation passthrough; never used by selection.
	Platform string `json:"platform,omitempty"`
	URL      string `json:"url,omitempty"`
}

// BodyLength returns the body text length used by the most-detailed
// selection pass. A missing body counts as zero detail.
func (m *Mention) BodyLength() int {
	return len(m.Body)
}
