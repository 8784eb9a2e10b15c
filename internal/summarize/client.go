// Package summarize sends representative mention samples to an LLM and
// returns a digest of themes, sentiment, and complaints. It is the
// downstream consumer of the sampling package: callers are expected to
// reduce the population first so the per-item analysis cost stays bounded.
package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"github.com/mhollis/mention-monitor/internal/types"
)

const (
	// defaultModel handles summarization well at the lowest cost tier.
	defaultModel = "gemini-2.5-flash-lite"
	// chunkSize is how many mentions go into a single prompt. Larger
	// samples are split and summarized concurrently, then merged.
	chunkSize = 50
	// maxConcurrentChunks bounds parallel requests against rate limits.
	maxConcurrentChunks = 4
)

// Client is an abstraction over LLM providers
type Client interface {
	// SummarizeMentions produces a digest of the given mention sample
	SummarizeMentions(ctx context.Context, keyword string, mentions []types.Mention) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  defaultModel,
	}, nil
}

// SummarizeMentions summarizes a mention sample. Samples larger than one
// chunk are summarized concurrently and the partial digests are merged
// with a final request.
func (c *GeminiClient) SummarizeMentions(ctx context.Context, keyword string, mentions []types.Mention) (string, error) {
	if len(mentions) == 0 {
		return "", fmt.Errorf("no mentions to summarize")
	}

	chunks := chunkMentions(mentions, chunkSize)
	if len(chunks) == 1 {
		return c.generate(ctx, SummaryPrompt(keyword, chunks[0]))
	}

	partials := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChunks)
	for i, chunk := range chunks {
		g.Go(func() error {
			text, err := c.generate(gctx, SummaryPrompt(keyword, chunk))
			if err != nil {
				return fmt.Errorf("chunk %d: %w", i, err)
			}
			partials[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return c.generate(ctx, MergePrompt(keyword, partials))
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse pulls the text parts out of a Gemini response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", fmt.Errorf("no text content in model response")
	}
	return result, nil
}

// chunkMentions splits a sample into chunks of at most size mentions.
func chunkMentions(mentions []types.Mention, size int) [][]types.Mention {
	var chunks [][]types.Mention
	for start := 0; start < len(mentions); start += size {
		end := start + size
		if end > len(mentions) {
			end = len(mentions)
		}
		chunks = append(chunks, mentions[start:end])
	}
	return chunks
}
