package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mhollis/mention-monitor/internal/types"
)

// Candidate assembly windows and thresholds. These mirror the pre-filtered
// lists the dashboard highlight is built from: fresh solution/advice
// requests, high-intent leads, and high-engagement posts.
const (
	requestWindow    = 48 * time.Hour
	engagementWindow = 24 * time.Hour

	minLeadScore  = 60
	minEngagement = 20
)

// ListMentions returns every mention collected for a keyword since the
// given time, newest first. Optional columns come back as nil pointers so
// the selector can degrade per criterion.
func (db *DB) ListMentions(ctx context.Context, keywordID uuid.UUID, since time.Time) ([]types.Mention, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, body, engagement, rating, published_at, category, platform, url
		 FROM mentions
		 WHERE keyword_id = $1 AND collected_at >= $2
		 ORDER BY collected_at DESC`,
		keywordID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentions: %w", err)
	}
	defer rows.Close()

	return scanMentions(rows)
}

// ListCandidates assembles the pre-filtered candidate lists for the
// opportunity scorer and concatenates them in priority order: fresh
// solution/advice requests first, then high-intent leads, then
// high-engagement posts. A mention appearing in several lists keeps its
// first occurrence, which also fixes tie-break priority downstream.
func (db *DB) ListCandidates(ctx context.Context, keywordID uuid.UUID) ([]types.Candidate, error) {
	now := time.Now()

	requests, err := db.queryCandidates(ctx,
		`SELECT id, title, platform, url, published_at, lead_score, engagement, category
		 FROM mentions
		 WHERE keyword_id = $1 AND published_at >= $2 AND category IN ($3, $4)
		 ORDER BY published_at DESC`,
		keywordID, now.Add(-requestWindow), types.CategorySolutionRequest, types.CategoryAdviceRequest,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list request candidates: %w", err)
	}

	leads, err := db.queryCandidates(ctx,
		`SELECT id, title, platform, url, published_at, lead_score, engagement, category
		 FROM mentions
		 WHERE keyword_id = $1 AND lead_score >= $2
		 ORDER BY lead_score DESC`,
		keywordID, minLeadScore,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead candidates: %w", err)
	}

	engaged, err := db.queryCandidates(ctx,
		`SELECT id, title, platform, url, published_at, lead_score, engagement, category
		 FROM mentions
		 WHERE keyword_id = $1 AND published_at >= $2 AND engagement >= $3
		 ORDER BY engagement DESC`,
		keywordID, now.Add(-engagementWindow), minEngagement,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list engagement candidates: %w", err)
	}

	return MergeCandidates(requests, leads, engaged), nil
}

// SaveSummary persists the AI summary produced for a sample of mentions.
func (db *DB) SaveSummary(ctx context.Context, keywordID uuid.UUID, mentionIDs []string, summary string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO mention_summaries (keyword_id, mention_ids, summary)
		 VALUES ($1, $2, $3)`,
		keywordID, mentionIDs, summary,
	)
	if err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}
	return nil
}

// MergeCandidates concatenates candidate lists in priority order,
// keeping only the first occurrence of each ID.
func MergeCandidates(lists ...[]types.Candidate) []types.Candidate {
	seen := make(map[string]bool)
	var merged []types.Candidate
	for _, list := range lists {
		for _, c := range list {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			merged = append(merged, c)
		}
	}
	return merged
}

func scanMentions(rows pgx.Rows) ([]types.Mention, error) {
	var mentions []types.Mention
	for rows.Next() {
		var (
			m        types.Mention
			title    *string
			body     *string
			category *string
			platform *string
			url      *string
		)
		if err := rows.Scan(&m.ID, &title, &body, &m.Engagement, &m.Rating,
			&m.CreatedAt, &category, &platform, &url); err != nil {
			return nil, fmt.Errorf("failed to scan mention: %w", err)
		}
		m.Title = derefString(title)
		m.Body = derefString(body)
		m.Category = derefString(category)
		m.Platform = derefString(platform)
		m.URL = derefString(url)
		mentions = append(mentions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mentions: %w", err)
	}
	return mentions, nil
}

func (db *DB) queryCandidates(ctx context.Context, sql string, args ...any) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []types.Candidate
	for rows.Next() {
		var (
			c        types.Candidate
			title    *string
			platform *string
			url      *string
			category *string
		)
		if err := rows.Scan(&c.ID, &title, &platform, &url,
			&c.CreatedAt, &c.LeadScore, &c.Engagement, &category); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		c.Title = derefString(title)
		c.Platform = derefString(platform)
		c.URL = derefString(url)
		c.Category = derefString(category)
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return candidates, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
