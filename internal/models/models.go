package models

import "strings"

// PRDetails holds information about the pull request being reviewed.
type PRDetails struct {
	Owner    string
	Repo     string
	PRNumber int
	Title    string
	Branch   string
	URL      string
	HeadSHA  string
}

// Change statuses reported for a file in a pull request diff.
const (
	StatusAdded    = "added"
	StatusModified = "modified"
	StatusRemoved  = "removed"
	StatusRenamed  = "renamed"
)

// ChangedFile is one file touched by a pull request. Instances are built once
// from the fetch step and are not mutated afterwards.
type ChangedFile struct {
	Path      string
	Status    string
	Additions int
	Deletions int
	Changes   int
	Patch     string // empty for binary or removed files
	Ref       string // head commit SHA, used to fetch full content
}

// Severity levels an issue can carry.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Issue is a single finding reported by the analysis capability.
type Issue struct {
	Severity   Severity `json:"severity"`
	Category   string   `json:"category"`
	Message    string   `json:"message"`
	Line       int      `json:"line,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// FileAnalysisResult is the per-file outcome of one analysis attempt.
// Exactly one result exists per analyzed file; a failed attempt produces a
// placeholder result rather than an error.
type FileAnalysisResult struct {
	Path     string  `json:"path"`
	Language string  `json:"language"`
	Issues   []Issue `json:"issues"`
	Score    int     `json:"score"`
	Summary  string  `json:"summary"`
}

const failureSummaryPrefix = "analysis failed: "

// NewFailureResult synthesizes the placeholder result for a file whose
// analysis could not be obtained.
func NewFailureResult(path, language, reason string) FileAnalysisResult {
	return FileAnalysisResult{
		Path:     path,
		Language: language,
		Score:    0,
		Summary:  failureSummaryPrefix + reason,
	}
}

// Failed reports whether this result is a failure placeholder.
func (r FileAnalysisResult) Failed() bool {
	return strings.HasPrefix(r.Summary, failureSummaryPrefix)
}

// FailureReason returns the reason carried by a placeholder result.
func (r FileAnalysisResult) FailureReason() string {
	return strings.TrimPrefix(r.Summary, failureSummaryPrefix)
}

// AggregateVerdict is the single combined judgment over all analyzed files
// in one run. Files keeps the original fetch order.
type AggregateVerdict struct {
	OverallScore  int                  `json:"overall_score"`
	TotalIssues   int                  `json:"total_issues"`
	CriticalCount int                  `json:"critical_count"`
	WarningCount  int                  `json:"warning_count"`
	Files         []FileAnalysisResult `json:"files"`
	Summary       string               `json:"summary"`
}

// Comment represents a single review comment to be posted.
type Comment struct {
	Body     string
	Path     string
	Position int // For GitHub and Gitea's review endpoint
	Line     int // For Gitea's fallback line comment endpoint
}
