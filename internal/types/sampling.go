package types

// SamplingConfig describes how a mention population is reduced to a
// representative sample. It is an immutable value: derive one from the
// population size with sampling.ConfigForPopulation, or build one by hand.
//
// The four category counts are intended to sum to at most SampleSize; any
// shortfall is filled by uniform random sampling of the remaining pool.
type SamplingConfig struct {
	// SampleSize is the total number of mentions to keep.
	SampleSize int `json:"sample_size"`

	// TopEngaged is how many mentions to take by descending engagement.
	TopEngaged int `json:"top_engaged"`
	// MostRecent is how many mentions to take by descending creation time.
	MostRecent int `json:"most_recent"`
	// LowestRated is how many mentions to take by ascending rating,
	// so that complaints are never sampled away.
	LowestRated int `json:"lowest_rated"`
	// MostDetailed is how many mentions to take by descending body length.
	MostDetailed int `json:"most_detailed"`
}
