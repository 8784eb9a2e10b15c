package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhollis/mention-monitor/internal/config"
	"github.com/mhollis/mention-monitor/internal/types"
)

func writeMentionsFile(t *testing.T, count int) string {
	t.Helper()

	var sb strings.Builder
	sb.WriteString(`{"mentions": [`)
	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"id": "m%03d", "title": "mention %d", "engagement": %d}`, i, i, i)
	}
	sb.WriteString(`]}`)

	path := filepath.Join(t.TempDir(), "mentions.json")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))
	return path
}

func resetSampleFlags() {
	sampleInput = ""
	sampleOutput = ""
	sampleConfigPath = ""
	sampleSize = 0
	sampleKeyword = ""
	sampleSummarize = false
	sampleVerbose = false
}

func TestRunSample_WritesSelectedSample(t *testing.T) {
	resetSampleFlags()
	sampleInput = writeMentionsFile(t, 40)
	sampleOutput = filepath.Join(t.TempDir(), "sample.json")

	require.NoError(t, runSample(nil, nil))

	data, err := os.ReadFile(sampleOutput)
	require.NoError(t, err)

	var result sampleResult
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, 40, result.Population)
	// Adaptive floor applies for a population of 40.
	assert.Equal(t, 25, result.Config.SampleSize)
	assert.Len(t, result.Sample, 25)
	assert.Empty(t, result.Summary)
}

func TestRunSample_IdentityForSmallPopulation(t *testing.T) {
	resetSampleFlags()
	sampleInput = writeMentionsFile(t, 10)
	sampleOutput = filepath.Join(t.TempDir(), "sample.json")

	require.NoError(t, runSample(nil, nil))

	data, err := os.ReadFile(sampleOutput)
	require.NoError(t, err)

	var result sampleResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Len(t, result.Sample, 10)
}

func TestRunSample_RejectsInvalidInput(t *testing.T) {
	resetSampleFlags()
	path := filepath.Join(t.TempDir(), "mentions.json")
	// Rating out of the schema's 1-5 bounds.
	require.NoError(t, os.WriteFile(path, []byte(`{"mentions": [{"id": "m1", "rating": 9}]}`), 0o600))
	sampleInput = path

	err := runSample(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input validation failed")
}

func TestRunSample_MissingInputFile(t *testing.T) {
	resetSampleFlags()
	sampleInput = filepath.Join(t.TempDir(), "nope.json")

	assert.Error(t, runSample(nil, nil))
}

func TestRunSample_SummarizeWithoutAPIKey(t *testing.T) {
	resetSampleFlags()
	t.Setenv("GEMINI_API_KEY", "")
	sampleInput = writeMentionsFile(t, 5)
	sampleSummarize = true

	err := runSample(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestResolveSamplingConfig_AdaptiveDefault(t *testing.T) {
	cfg := resolveSamplingConfig(500, &config.Config{}, 0)

	assert.Equal(t, 75, cfg.SampleSize)
	assert.Equal(t, 15, cfg.TopEngaged)
}

func TestResolveSamplingConfig_FlagOverridesEverything(t *testing.T) {
	cfg := resolveSamplingConfig(500, &config.Config{SampleSize: 100}, 20)

	assert.Equal(t, 20, cfg.SampleSize)
	assert.Equal(t, 4, cfg.TopEngaged)
}

func TestResolveSamplingConfig_FileOverrides(t *testing.T) {
	fileCfg := &config.Config{SampleSize: 50, LowestRated: 20}
	cfg := resolveSamplingConfig(500, fileCfg, 0)

	assert.Equal(t, types.SamplingConfig{
		SampleSize:   50,
		TopEngaged:   10,
		MostRecent:   10,
		LowestRated:  20,
		MostDetailed: 10,
	}, cfg)
}
