// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting is a job posting as supplied by an upstream source (search API
// or stored posting). The engine consumes it read-only.
type JobPosting struct {
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}
