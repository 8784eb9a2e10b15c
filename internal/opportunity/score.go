package opportunity

import (
	"time"

	"github.com/mhollis/mention-monitor/internal/types"
)

// TopOpportunity evaluates every candidate against the scoring rule table
// and returns the highest-scoring one with its justification, or nil when
// the candidate list is empty.
//
// Ties are broken by input order: the first candidate to reach the maximum
// score wins. Callers assembling candidates from several pre-filtered lists
// therefore control tie priority by concatenation order.
func TopOpportunity(candidates []types.Candidate) *types.Opportunity {
	return topOpportunityAt(candidates, time.Now())
}

// topOpportunityAt is TopOpportunity with an explicit reference time for
// the freshness rules.
func topOpportunityAt(candidates []types.Candidate, now time.Time) *types.Opportunity {
	if len(candidates) == 0 {
		return nil
	}

	var best *types.Opportunity
	for i := range candidates {
		score, reason := scoreCandidate(&candidates[i], now)
		if best != nil && score <= best.Score {
			continue
		}
		c := &candidates[i]
		best = &types.Opportunity{
			ID:       c.ID,
			Title:    c.Title,
			Platform: c.Platform,
			URL:      c.URL,
			Score:    score,
			Reason:   reason,
		}
	}
	return best
}

// scoreCandidate runs the rule table in order. Every matching rule adds its
// points; the reason reflects the highest-precedence rule that fired.
func scoreCandidate(c *types.Candidate, now time.Time) (float64, string) {
	score := 0.0
	reason := ""
	for _, r := range scoringRules {
		if !r.matches(c, now) {
			continue
		}
		score += r.points
		if r.reason == "" {
			continue
		}
		if r.overrides || reason == "" {
			reason = r.reason
		}
	}
	if reason == "" {
		reason = defaultReason
	}
	return score, reason
}
