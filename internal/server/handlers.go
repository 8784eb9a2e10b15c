package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mhollis/mention-monitor/internal/opportunity"
	"github.com/mhollis/mention-monitor/internal/sampling"
	"github.com/mhollis/mention-monitor/internal/types"
)

// defaultLookbackHours is how far back keyword endpoints reach when the
// caller does not say otherwise.
const defaultLookbackHours = 24

// SampleRequest is the body of POST /sample. When Config is omitted the
// adaptive budget derives one from the population size.
type SampleRequest struct {
	Mentions []types.Mention       `json:"mentions" validate:"dive"`
	Config   *types.SamplingConfig `json:"config,omitempty"`
	Keyword  string                `json:"keyword,omitempty"`
}

// OpportunityRequest is the body of POST /opportunity.
type OpportunityRequest struct {
	Candidates []types.Candidate `json:"candidates" validate:"dive"`
}

// handleSample reduces a caller-supplied mention population to a
// representative sample.
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	var req SampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validateRequest(&req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	cfg := req.Config
	if cfg == nil {
		derived := sampling.ConfigForPopulation(len(req.Mentions))
		cfg = &derived
	}

	sample := sampling.Select(req.Mentions, *cfg)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"population":  len(req.Mentions),
		"sample_size": len(sample),
		"config":      cfg,
		"sample":      sample,
	})
}

// handleOpportunity scores caller-supplied candidates and returns the top
// opportunity, or a null opportunity when there are no candidates.
func (s *Server) handleOpportunity(w http.ResponseWriter, r *http.Request) {
	var req OpportunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validateRequest(&req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	top := opportunity.TopOpportunity(req.Candidates)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates":  len(req.Candidates),
		"opportunity": top,
	})
}

// handleKeywordSample samples the mentions collected for a keyword.
func (s *Server) handleKeywordSample(w http.ResponseWriter, r *http.Request) {
	keywordID, err := s.requireKeyword(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	mentions, err := s.loadMentions(r, keywordID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	cfg := sampling.ConfigForPopulation(len(mentions))
	sample := sampling.Select(mentions, cfg)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"keyword_id":  keywordID,
		"population":  len(mentions),
		"sample_size": len(sample),
		"config":      cfg,
		"sample":      sample,
	})
}

// handleKeywordOpportunity assembles the pre-filtered candidate lists for a
// keyword and returns the top opportunity.
func (s *Server) handleKeywordOpportunity(w http.ResponseWriter, r *http.Request) {
	keywordID, err := s.requireKeyword(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	candidates, err := s.db.ListCandidates(r.Context(), keywordID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	top := opportunity.TopOpportunity(candidates)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"keyword_id":  keywordID,
		"candidates":  len(candidates),
		"opportunity": top,
	})
}

// handleKeywordAnalyze samples a keyword's mentions, summarizes the sample,
// and persists the digest.
func (s *Server) handleKeywordAnalyze(w http.ResponseWriter, r *http.Request) {
	keywordID, err := s.requireKeyword(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if s.summarizer == nil {
		err := &ErrAnalysisUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	mentions, err := s.loadMentions(r, keywordID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if len(mentions) == 0 {
		s.errorResponse(w, http.StatusNotFound, "No mentions collected in the requested window")
		return
	}

	cfg := sampling.ConfigForPopulation(len(mentions))
	sample := sampling.Select(mentions, cfg)

	keyword := r.URL.Query().Get("keyword")
	summary, err := s.summarizer.SummarizeMentions(r.Context(), keyword, sample)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Summarization failed: "+err.Error())
		return
	}

	sampleIDs := make([]string, 0, len(sample))
	for _, m := range sample {
		sampleIDs = append(sampleIDs, m.ID)
	}
	if err := s.db.SaveSummary(r.Context(), keywordID, sampleIDs, summary); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"keyword_id":  keywordID,
		"population":  len(mentions),
		"sample_size": len(sample),
		"summary":     summary,
	})
}

// requireKeyword checks that the store is configured and parses the
// keyword ID path segment.
func (s *Server) requireKeyword(r *http.Request) (uuid.UUID, error) {
	if s.db == nil {
		return uuid.Nil, &ErrStoreUnavailable{}
	}
	keywordID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a valid keyword UUID"}
	}
	return keywordID, nil
}

// loadMentions fetches a keyword's mentions within the requested lookback window.
func (s *Server) loadMentions(r *http.Request, keywordID uuid.UUID) ([]types.Mention, error) {
	hours := parseQueryInt(r, "hours", defaultLookbackHours, 24*30)
	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	return s.db.ListMentions(r.Context(), keywordID, since)
}

// validateRequest runs struct validation and converts the first failure
// into an ErrValidation.
func (s *Server) validateRequest(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ErrValidation{Field: verrs[0].Field(), Message: verrs[0].Tag()}
	}
	return &ErrValidation{Field: "(request)", Message: err.Error()}
}

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}
