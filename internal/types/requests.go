package types

import (
	"github.com/go-playground/validator/v10"
)

// MatchRequest is the request body for scoring one resume against one job.
type MatchRequest struct {
	Job        JobPosting `json:"job" validate:"required"`
	ResumeText string     `json:"resume_text" validate:"required"`
}

// BatchMatchRequest scores one resume against several job postings.
type BatchMatchRequest struct {
	Jobs       []JobPosting `json:"jobs" validate:"required,min=1"`
	ResumeText string       `json:"resume_text" validate:"required"`
}

// GapRequest is the request body for a skills-gap analysis.
type GapRequest struct {
	Job        JobPosting `json:"job" validate:"required"`
	ResumeText string     `json:"resume_text" validate:"required"`
}

// AnalyzeRequest is the request body for resume-only analysis.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchMatchRequest using the validator.
func (r *BatchMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GapRequest using the validator.
func (r *GapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
