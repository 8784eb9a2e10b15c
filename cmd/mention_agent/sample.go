package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhollis/mention-monitor/internal/config"
	"github.com/mhollis/mention-monitor/internal/observability"
	"github.com/mhollis/mention-monitor/internal/sampling"
	"github.com/mhollis/mention-monitor/internal/schemas"
	"github.com/mhollis/mention-monitor/internal/summarize"
	"github.com/mhollis/mention-monitor/internal/types"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Select a representative sample from a mention population",
	Long:  "Reduces a mention population to a deduplicated multi-criteria sample sized by the adaptive budget (or explicit overrides), optionally summarizing the sample with Gemini.",
	RunE:  runSample,
}

var (
	sampleInput      string
	sampleOutput     string
	sampleConfigPath string
	sampleSize       int
	sampleKeyword    string
	sampleSummarize  bool
	sampleVerbose    bool
)

func init() {
	sampleCmd.Flags().StringVarP(&sampleInput, "input", "i", "", "Path to input mentions JSON file (required)")
	sampleCmd.Flags().StringVarP(&sampleOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	sampleCmd.Flags().StringVar(&sampleConfigPath, "config", "", "Path to JSON config file with sampling overrides")
	sampleCmd.Flags().IntVar(&sampleSize, "sample-size", 0, "Fixed sample size (default: adaptive budget)")
	sampleCmd.Flags().StringVar(&sampleKeyword, "keyword", "", "Keyword the mentions were collected for (used in summaries)")
	sampleCmd.Flags().BoolVar(&sampleSummarize, "summarize", false, "Summarize the sample with Gemini (requires GEMINI_API_KEY)")
	sampleCmd.Flags().BoolVarP(&sampleVerbose, "verbose", "v", false, "Print detailed progress information")

	if err := sampleCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(sampleCmd)
}

// sampleResult is the JSON document the sample command emits.
type sampleResult struct {
	Population int                  `json:"population"`
	Config     types.SamplingConfig `json:"config"`
	Sample     []types.Mention      `json:"sample"`
	Summary    string               `json:"summary,omitempty"`
}

func runSample(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(sampleConfigPath)
	if err != nil {
		return err
	}

	// 1. Validate and load the mention population
	if err := schemas.ValidateMentionsFile(sampleInput); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	mentions, err := loadMentions(sampleInput)
	if err != nil {
		return err
	}

	// 2. Resolve the sampling configuration: adaptive budget by default,
	// file config and flags override it.
	cfg := resolveSamplingConfig(len(mentions), fileCfg, sampleSize)

	printer := observability.NewPrinter(os.Stderr)
	if sampleVerbose || fileCfg.Verbose {
		printer.PrintSamplingConfig(len(mentions), cfg)
	}

	// 3. Select the sample
	sample := sampling.Select(mentions, cfg)
	if sampleVerbose || fileCfg.Verbose {
		printer.PrintSample(sample)
	}

	result := sampleResult{
		Population: len(mentions),
		Config:     cfg,
		Sample:     sample,
	}

	// 4. Optionally summarize the sample
	if sampleSummarize {
		apiKey := fileCfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		summary, err := summarizeSample(context.Background(), apiKey, sampleKeyword, sample)
		if err != nil {
			return err
		}
		result.Summary = summary
	}

	return writeJSON(sampleOutput, result)
}

// resolveSamplingConfig merges the adaptive default with file config and
// the command line, most specific last.
func resolveSamplingConfig(population int, fileCfg *config.Config, flagSize int) types.SamplingConfig {
	size := flagSize
	if size == 0 {
		size = fileCfg.SampleSize
	}

	if size == 0 {
		cfg := sampling.ConfigForPopulation(population)
		applyCategoryOverrides(&cfg, fileCfg)
		return cfg
	}

	// A fixed size still splits evenly across categories unless the file
	// config pins individual counts.
	per := size / 5
	cfg := types.SamplingConfig{
		SampleSize:   size,
		TopEngaged:   per,
		MostRecent:   per,
		LowestRated:  per,
		MostDetailed: per,
	}
	applyCategoryOverrides(&cfg, fileCfg)
	return cfg
}

func applyCategoryOverrides(cfg *types.SamplingConfig, fileCfg *config.Config) {
	if fileCfg.TopEngaged > 0 {
		cfg.TopEngaged = fileCfg.TopEngaged
	}
	if fileCfg.MostRecent > 0 {
		cfg.MostRecent = fileCfg.MostRecent
	}
	if fileCfg.LowestRated > 0 {
		cfg.LowestRated = fileCfg.LowestRated
	}
	if fileCfg.MostDetailed > 0 {
		cfg.MostDetailed = fileCfg.MostDetailed
	}
}

func summarizeSample(ctx context.Context, apiKey, keyword string, sample []types.Mention) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is required for --summarize")
	}

	client, err := summarize.NewGeminiClient(ctx, apiKey)
	if err != nil {
		return "", fmt.Errorf("failed to create summarize client: %w", err)
	}
	defer func() { _ = client.Close() }()

	summary, err := client.SummarizeMentions(ctx, keyword, sample)
	if err != nil {
		return "", fmt.Errorf("failed to summarize sample: %w", err)
	}
	return summary, nil
}

// loadFileConfig loads and validates an optional config file, returning an
// empty config when no path was given.
func loadFileConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadMentions reads a mentions JSON document.
func loadMentions(path string) ([]types.Mention, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mentions file %s: %w", path, err)
	}

	var doc struct {
		Mentions []types.Mention `json:"mentions"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mentions JSON: %w", err)
	}
	return doc.Mentions, nil
}

// writeJSON marshals a result with indentation to a file, or stdout when
// no path was given.
func writeJSON(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
