// Package sampling reduces a mention population to a small, deduplicated,
// multi-criteria representative sample before it is handed to the per-item
// AI analysis step.
package sampling

import (
	"math"

	"github.com/mhollis/mention-monitor/internal/types"
)

// Adaptive budget constants. The floor guarantees a minimum of analytical
// coverage for small populations; the ceiling caps the absolute cost of the
// pay-per-item analysis step for very large ones.
const (
	// MinSampleSize is the smallest sample ever requested.
	MinSampleSize = 25
	// MaxSampleSize is the largest sample ever requested.
	MaxSampleSize = 150
	// CoveragePercent is the target share of the population to analyze.
	CoveragePercent = 15
)

// categoryCount is how many named selection categories share the budget.
const categoryCount = 5

// SampleSize returns the adaptive sample size for a population:
// CoveragePercent of the population, clamped to [MinSampleSize, MaxSampleSize].
func SampleSize(totalCount int) int {
	target := int(math.Ceil(float64(totalCount) * CoveragePercent / 100))
	if target < MinSampleSize {
		return MinSampleSize
	}
	if target > MaxSampleSize {
		return MaxSampleSize
	}
	return target
}

// ConfigForPopulation derives the default sampling configuration for a
// population. The budget is split evenly across the four named categories;
// the division remainder (at most 4 slots) is left for the random-fill pass.
func ConfigForPopulation(totalCount int) types.SamplingConfig {
	size := SampleSize(totalCount)
	perCategory := size / categoryCount

	return types.SamplingConfig{
		SampleSize:   size,
		TopEngaged:   perCategory,
		MostRecent:   perCategory,
		LowestRated:  perCategory,
		MostDetailed: perCategory,
	}
}
