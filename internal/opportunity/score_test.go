package opportunity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhollis/mention-monitor/internal/types"
)

var scoreNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func floatPtr(v float64) *float64 { return &v }

// agedCandidate builds a candidate created the given duration before scoreNow.
func agedCandidate(id string, age time.Duration) types.Candidate {
	created := scoreNow.Add(-age)
	return types.Candidate{ID: id, Title: id, CreatedAt: &created}
}

func TestTopOpportunity_EmptyInput(t *testing.T) {
	assert.Nil(t, TopOpportunity(nil))
	assert.Nil(t, TopOpportunity([]types.Candidate{}))
}

func TestTopOpportunity_HighIntentBeatsHotDiscussion(t *testing.T) {
	// A: 3h old with lead score 85 -> 30 (fresh) + 40 (high intent) = 70,
	// reason "high intent" because the intent rule overrides freshness.
	a := agedCandidate("a", 3*time.Hour)
	a.LeadScore = floatPtr(85)

	// B: 20h old with engagement 60 -> 10 (freshness band) + 20 (hot) = 30,
	// reason "hot discussion".
	b := agedCandidate("b", 20*time.Hour)
	b.Engagement = floatPtr(60)

	top := topOpportunityAt([]types.Candidate{a, b}, scoreNow)

	require.NotNil(t, top)
	assert.Equal(t, "a", top.ID)
	assert.Equal(t, 70.0, top.Score)
	assert.Equal(t, "high intent", top.Reason)
}

func TestScoreCandidate_FreshnessBands(t *testing.T) {
	tests := []struct {
		name   string
		age    time.Duration
		score  float64
		reason string
	}{
		{"under 6h", 3 * time.Hour, 30, "fresh post"},
		{"at 6h boundary", 6 * time.Hour, 20, "recent post"},
		{"under 12h", 11 * time.Hour, 20, "recent post"},
		{"at 12h boundary", 12 * time.Hour, 10, "good opportunity"},
		{"under 24h", 23 * time.Hour, 10, "good opportunity"},
		{"at 24h boundary", 24 * time.Hour, 0, "good opportunity"},
		{"days old", 72 * time.Hour, 0, "good opportunity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := agedCandidate("c", tt.age)
			score, reason := scoreCandidate(&c, scoreNow)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestScoreCandidate_LeadScoreBands(t *testing.T) {
	tests := []struct {
		name   string
		lead   float64
		score  float64
		reason string
	}{
		{"high intent", 80, 40, "high intent"},
		{"above high intent", 95, 40, "high intent"},
		{"strong lead", 60, 25, "strong lead signal"},
		{"upper strong lead", 79, 25, "strong lead signal"},
		{"below strong lead", 59, 0, "good opportunity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := types.Candidate{ID: "c", LeadScore: floatPtr(tt.lead)}
			score, reason := scoreCandidate(&c, scoreNow)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestScoreCandidate_EngagementBands(t *testing.T) {
	tests := []struct {
		name   string
		eng    float64
		score  float64
		reason string
	}{
		{"hot", 50, 20, "hot discussion"},
		{"very hot", 5000, 20, "hot discussion"},
		{"mild", 20, 10, "good opportunity"},
		{"upper mild", 49, 10, "good opportunity"},
		{"quiet", 19, 0, "good opportunity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := types.Candidate{ID: "c", Engagement: floatPtr(tt.eng)}
			score, reason := scoreCandidate(&c, scoreNow)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestScoreCandidate_Categories(t *testing.T) {
	c := types.Candidate{ID: "c", Category: types.CategorySolutionRequest}
	score, reason := scoreCandidate(&c, scoreNow)
	assert.Equal(t, 25.0, score)
	assert.Equal(t, "asking for recommendations", reason)

	c.Category = types.CategoryAdviceRequest
	score, reason = scoreCandidate(&c, scoreNow)
	assert.Equal(t, 15.0, score)
	assert.Equal(t, "seeking advice", reason)

	c.Category = "unrelated"
	score, reason = scoreCandidate(&c, scoreNow)
	assert.Equal(t, 0.0, score)
	assert.Equal(t, "good opportunity", reason)
}

func TestScoreCandidate_ReasonPrecedence(t *testing.T) {
	// Recent post (20) + strong lead (25) + hot discussion (20) +
	// solution request (25) = 90. The reason slot is claimed by the first
	// non-override rule to fire ("recent post"); later ones never steal it.
	c := agedCandidate("c", 8*time.Hour)
	c.LeadScore = floatPtr(70)
	c.Engagement = floatPtr(80)
	c.Category = types.CategorySolutionRequest

	score, reason := scoreCandidate(&c, scoreNow)

	assert.Equal(t, 90.0, score)
	assert.Equal(t, "recent post", reason)
}

func TestScoreCandidate_OverrideRulesClaimReasonLate(t *testing.T) {
	// Hot discussion fires, but a high-intent lead overrides the reason
	// even though the freshness slot is already taken.
	c := agedCandidate("c", 2*time.Hour)
	c.LeadScore = floatPtr(90)
	c.Engagement = floatPtr(100)

	score, reason := scoreCandidate(&c, scoreNow)

	assert.Equal(t, 90.0, score) // 30 + 40 + 20
	assert.Equal(t, "high intent", reason)
}

func TestScoreCandidate_MissingSignalsSkipRules(t *testing.T) {
	c := types.Candidate{ID: "bare", Title: "no signals at all"}
	score, reason := scoreCandidate(&c, scoreNow)
	assert.Equal(t, 0.0, score)
	assert.Equal(t, defaultReason, reason)
}

func TestTopOpportunity_TieBreaksByInputOrder(t *testing.T) {
	first := types.Candidate{ID: "first", Engagement: floatPtr(60)}
	second := types.Candidate{ID: "second", Engagement: floatPtr(75)}

	top := topOpportunityAt([]types.Candidate{first, second}, scoreNow)

	require.NotNil(t, top)
	assert.Equal(t, "first", top.ID)
	assert.Equal(t, 20.0, top.Score)

	// Reversing the input flips the winner.
	top = topOpportunityAt([]types.Candidate{second, first}, scoreNow)
	require.NotNil(t, top)
	assert.Equal(t, "second", top.ID)
}

func TestTopOpportunity_CarriesPresentationFields(t *testing.T) {
	c := types.Candidate{
		ID:       "m1",
		Title:    "Anyone know a good monitoring tool?",
		Platform: "reddit",
		URL:      "https://reddit.com/r/saas/m1",
		Category: types.CategorySolutionRequest,
	}

	top := topOpportunityAt([]types.Candidate{c}, scoreNow)

	require.NotNil(t, top)
	assert.Equal(t, "m1", top.ID)
	assert.Equal(t, "Anyone know a good monitoring tool?", top.Title)
	assert.Equal(t, "reddit", top.Platform)
	assert.Equal(t, "https://reddit.com/r/saas/m1", top.URL)
	assert.Equal(t, "asking for recommendations", top.Reason)
}
