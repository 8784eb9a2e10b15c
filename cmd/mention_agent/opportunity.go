package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhollis/mention-monitor/internal/observability"
	"github.com/mhollis/mention-monitor/internal/opportunity"
	"github.com/mhollis/mention-monitor/internal/schemas"
	"github.com/mhollis/mention-monitor/internal/types"
)

var opportunityCmd = &cobra.Command{
	Use:   "opportunity",
	Short: "Score candidates and pick the top opportunity",
	Long:  "Scores pre-filtered candidate mentions with the weighted rule engine and prints the single top-ranked opportunity with its justification.",
	RunE:  runOpportunity,
}

var (
	opportunityInput   string
	opportunityOutput  string
	opportunityVerbose bool
)

func init() {
	opportunityCmd.Flags().StringVarP(&opportunityInput, "input", "i", "", "Path to input candidates JSON file (required)")
	opportunityCmd.Flags().StringVarP(&opportunityOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	opportunityCmd.Flags().BoolVarP(&opportunityVerbose, "verbose", "v", false, "Print detailed progress information")

	if err := opportunityCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(opportunityCmd)
}

// opportunityResult is the JSON document the opportunity command emits.
// Opportunity is null when there were no candidates.
type opportunityResult struct {
	Candidates  int                `json:"candidates"`
	Opportunity *types.Opportunity `json:"opportunity"`
}

func runOpportunity(_ *cobra.Command, _ []string) error {
	// 1. Validate and load candidates
	if err := schemas.ValidateCandidatesFile(opportunityInput); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	candidates, err := loadCandidates(opportunityInput)
	if err != nil {
		return err
	}

	// 2. Score and pick
	top := opportunity.TopOpportunity(candidates)

	if opportunityVerbose {
		observability.NewPrinter(os.Stderr).PrintOpportunity(top)
	}

	return writeJSON(opportunityOutput, opportunityResult{
		Candidates:  len(candidates),
		Opportunity: top,
	})
}

// loadCandidates reads a candidates JSON document.
func loadCandidates(path string) ([]types.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	var doc struct {
		Candidates []types.Candidate `json:"candidates"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
	}
	return doc.Candidates, nil
}
