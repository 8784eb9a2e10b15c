// Package opportunity scores pre-filtered mention candidates and picks the
// single best next action to feature for the user.
package opportunity

import (
	"time"

	"github.com/mhollis/mention-monitor/internal/types"
)

// Freshness bands and signal thresholds used by the scoring rules.
const (
	freshAgeLimit  = 6 * time.Hour
	recentAgeLimit = 12 * time.Hour
	staleAgeLimit  = 24 * time.Hour

	highIntentLeadScore = 80
	strongLeadScore     = 60

	hotEngagement  = 50
	mildEngagement = 20
)

// defaultReason is used when no rule fires for the winning candidate.
const defaultReason = "good opportunity"

// rule is one entry of the scoring rule engine. Rules are evaluated in
// declaration order for every candidate: each match adds points, and the
// reason slot is written unconditionally by overriding rules (later
// override wins) but only once by the rest.
type rule struct {
	points    float64
	reason    string
	overrides bool
	matches   func(c *types.Candidate, now time.Time) bool
}

// scoringRules is the full precedence-ordered rule table. Order is part of
// the contract: it decides which reason the user sees when several rules
// fire, so append-only changes are strongly preferred.
var scoringRules = []rule{
	{
		points:    30,
		reason:    "fresh post",
		overrides: true,
		matches:   ageUnder(freshAgeLimit),
	},
	{
		points:    40,
		reason:    "high intent",
		overrides: true,
		matches:   leadScoreBetween(highIntentLeadScore, -1),
	},
	{
		points:  20,
		reason:  "recent post",
		matches: ageBetween(freshAgeLimit, recentAgeLimit),
	},
	{
		points:  25,
		reason:  "strong lead signal",
		matches: leadScoreBetween(strongLeadScore, highIntentLeadScore),
	},
	{
		// Points only: a day-old post is still worth a nudge, but not a headline.
		points:  10,
		matches: ageBetween(recentAgeLimit, staleAgeLimit),
	},
	{
		points:  20,
		reason:  "hot discussion",
		matches: engagementBetween(hotEngagement, -1),
	},
	{
		points:  10,
		matches: engagementBetween(mildEngagement, hotEngagement),
	},
	{
		points:  25,
		reason:  "asking for recommendations",
		matches: hasCategory(types.CategorySolutionRequest),
	},
	{
		points:  15,
		reason:  "seeking advice",
		matches: hasCategory(types.CategoryAdviceRequest),
	},
}

func ageUnder(limit time.Duration) func(*types.Candidate, time.Time) bool {
	return func(c *types.Candidate, now time.Time) bool {
		if c.CreatedAt == nil {
			return false
		}
		age := now.Sub(*c.CreatedAt)
		return age < limit
	}
}

// ageBetween matches min <= age < max.
func ageBetween(min, max time.Duration) func(*types.Candidate, time.Time) bool {
	return func(c *types.Candidate, now time.Time) bool {
		if c.CreatedAt == nil {
			return false
		}
		age := now.Sub(*c.CreatedAt)
		return age >= min && age < max
	}
}

// leadScoreBetween matches min <= score, and score < max when max >= 0.
func leadScoreBetween(min, max float64) func(*types.Candidate, time.Time) bool {
	return func(c *types.Candidate, _ time.Time) bool {
		if c.LeadScore == nil {
			return false
		}
		if *c.LeadScore < min {
			return false
		}
		return max < 0 || *c.LeadScore < max
	}
}

// engagementBetween matches min <= engagement, and engagement < max when max >= 0.
func engagementBetween(min, max float64) func(*types.Candidate, time.Time) bool {
	return func(c *types.Candidate, _ time.Time) bool {
		if c.Engagement == nil {
			return false
		}
		if *c.Engagement < min {
			return false
		}
		return max < 0 || *c.Engagement < max
	}
}

func hasCategory(category string) func(*types.Candidate, time.Time) bool {
	return func(c *types.Candidate, _ time.Time) bool {
		return c.Category == category
	}
}
