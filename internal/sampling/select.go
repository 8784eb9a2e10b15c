package sampling

import (
	"math/rand"
	"sort"

	"github.com/mhollis/mention-monitor/internal/types"
)

// Select reduces a mention population to a representative sample of
// cfg.SampleSize items, built across five ordered deduplicating passes:
//
//  1. top engagement (descending, only mentions reporting engagement)
//  2. most recent (descending creation time, only mentions with one)
//  3. lowest rating (ascending, only rated mentions - catches complaints)
//  4. most detailed (descending body length, missing body counts as 0)
//  5. uniform random fill from whatever was not yet selected
//
// A mention picked by an earlier pass is skipped by later ones, so the
// result never contains duplicate IDs. If the population already fits the
// budget it is returned unchanged. Sorting is stable, so the result is
// deterministic except for the intentionally randomized fill pass.
//
// Select is pure apart from the shuffle and never fails: mentions missing
// an optional field are simply excluded from the passes that need it, and
// a pass short on eligible mentions contributes as many as exist.
func Select(mentions []types.Mention, cfg types.SamplingConfig) []types.Mention {
	if len(mentions) <= cfg.SampleSize {
		return mentions
	}

	picker := newPicker(cfg.SampleSize, len(mentions))

	// Pass 1: top engagement.
	engaged := filterMentions(mentions, func(m *types.Mention) bool { return m.Engagement != nil })
	sort.SliceStable(engaged, func(i, j int) bool {
		return *engaged[i].Engagement > *engaged[j].Engagement
	})
	picker.take(engaged, cfg.TopEngaged)

	// Pass 2: most recent.
	dated := filterMentions(mentions, func(m *types.Mention) bool { return m.CreatedAt != nil })
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].CreatedAt.After(*dated[j].CreatedAt)
	})
	picker.take(dated, cfg.MostRecent)

	// Pass 3: lowest rating, so complaints survive sampling.
	rated := filterMentions(mentions, func(m *types.Mention) bool { return m.Rating != nil })
	sort.SliceStable(rated, func(i, j int) bool {
		return *rated[i].Rating < *rated[j].Rating
	})
	picker.take(rated, cfg.LowestRated)

	// Pass 4: most detailed. Every mention is eligible here.
	detailed := make([]types.Mention, len(mentions))
	copy(detailed, mentions)
	sort.SliceStable(detailed, func(i, j int) bool {
		return detailed[i].BodyLength() > detailed[j].BodyLength()
	})
	picker.take(detailed, cfg.MostDetailed)

	// Pass 5: random fill up to the full budget. rand.Shuffle performs an
	// unbiased Fisher-Yates permutation, which keeps the "random" category
	// a uniform draw over the leftover pool.
	if remaining := cfg.SampleSize - len(picker.selected); remaining > 0 {
		pool := filterMentions(mentions, func(m *types.Mention) bool { return !picker.seen[m.ID] })
		rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		picker.take(pool, remaining)
	}

	return picker.selected
}

// picker accumulates selection passes while enforcing ID uniqueness and the
// overall sample budget. Pass counts are clamped defensively: a negative
// count contributes nothing and an oversized one can never push the result
// past the budget.
type picker struct {
	budget   int
	seen     map[string]bool
	selected []types.Mention
}

func newPicker(budget, population int) *picker {
	capacity := budget
	if population < capacity {
		capacity = population
	}
	return &picker{
		budget:   budget,
		seen:     make(map[string]bool, capacity),
		selected: make([]types.Mention, 0, capacity),
	}
}

// take appends up to count not-yet-seen mentions from candidates, stopping
// early at the overall budget.
func (p *picker) take(candidates []types.Mention, count int) {
	taken := 0
	for i := 0; i < len(candidates) && taken < count && len(p.selected) < p.budget; i++ {
		m := candidates[i]
		if p.seen[m.ID] {
			continue
		}
		p.seen[m.ID] = true
		p.selected = append(p.selected, m)
		taken++
	}
}

// filterMentions returns the mentions satisfying keep, preserving order.
func filterMentions(mentions []types.Mention, keep func(*types.Mention) bool) []types.Mention {
	out := make([]types.Mention, 0, len(mentions))
	for i := range mentions {
		if keep(&mentions[i]) {
			out = append(out, mentions[i])
		}
	}
	return out
}
