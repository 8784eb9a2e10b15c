package summarize

import (
	"fmt"
	"strings"
	"time"

	"github.com/mhollis/mention-monitor/internal/types"
)

// maxBodyChars truncates very long mention bodies inside prompts; a review
// rarely needs more than this to convey its point, and the sample is
// supposed to bound cost, not reintroduce it through prompt size.
const maxBodyChars = 600

// SummaryPrompt builds the summarization prompt for one chunk of a
// representative mention sample.
func SummaryPrompt(keyword string, mentions []types.Mention) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are analyzing a representative sample of online mentions of %q.\n", keyword)
	sb.WriteString("Summarize in 3-5 short paragraphs: dominant themes, overall sentiment, ")
	sb.WriteString("notable complaints, and any recurring feature requests. ")
	sb.WriteString("Be concrete and quote short phrases where useful.\n\nMentions:\n")

	for i, m := range mentions {
		fmt.Fprintf(&sb, "\n--- mention %d", i+1)
		if m.Platform != "" {
			fmt.Fprintf(&sb, " (%s)", m.Platform)
		}
		sb.WriteString(" ---\n")
		if m.Title != "" {
			fmt.Fprintf(&sb, "Title: %s\n", m.Title)
		}
		if m.Rating != nil {
			fmt.Fprintf(&sb, "Rating: %.0f/5\n", *m.Rating)
		}
		if m.Engagement != nil {
			fmt.Fprintf(&sb, "Engagement: %.0f\n", *m.Engagement)
		}
		if m.CreatedAt != nil {
			fmt.Fprintf(&sb, "Posted: %s\n", m.CreatedAt.Format(time.RFC3339))
		}
		if body := truncate(m.Body, maxBodyChars); body != "" {
			fmt.Fprintf(&sb, "Text: %s\n", body)
		}
	}

	return sb.String()
}

// MergePrompt combines partial chunk digests into a final summary request.
func MergePrompt(keyword string, partials []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Below are partial summaries of separate batches of mentions of %q.\n", keyword)
	sb.WriteString("Merge them into one coherent 3-5 paragraph summary. ")
	sb.WriteString("Deduplicate overlapping observations and keep the most specific details.\n")

	for i, partial := range partials {
		fmt.Fprintf(&sb, "\n--- batch %d ---\n%s\n", i+1, partial)
	}

	return sb.String()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
