package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Samtech361/Jobupdates-cs-project/internal/matching"
	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

// maxBodyBytes caps request bodies; resumes and postings are small text.
const maxBodyBytes = 1 << 20

// handleMatch scores one resume against one job posting
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	result, err := s.engine.CalculateMatchScore(&req.Job, req.ResumeText)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// BatchMatchResponse pairs each result with its input position
type BatchMatchResponse struct {
	Results []types.MatchResult `json:"results"`
	Count   int                 `json:"count"`
}

// handleBatchMatch scores one resume against several job postings
func (s *Server) handleBatchMatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchMatchRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	results, err := s.engine.ScoreAll(r.Context(), req.Jobs, req.ResumeText)
	if err != nil {
		if errors.Is(err, matching.ErrNilJob) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, BatchMatchResponse{Results: results, Count: len(results)})
}

// handleSkillsGap reports the skills the job asks for that the resume lacks
func (s *Server) handleSkillsGap(w http.ResponseWriter, r *http.Request) {
	var req types.GapRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	report, err := s.gapAnalyzer.AnalyzeGap(&req.Job, req.ResumeText)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeResume runs the standalone resume analysis
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.AnalyzeResume(req.ResumeText))
}
