package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tuseefahmed786/code-intelligence-ai/internal/models"
)

// Analysis is the shape the external analysis capability must return for one
// file.
type Analysis struct {
	Issues  []models.Issue `json:"issues"`
	Score   int            `json:"score"`
	Summary string         `json:"summary"`
}

// AnalyzeFunc is the external analysis capability: fallible and network-bound.
type AnalyzeFunc func(ctx context.Context, code, language, contextLabel string) (*Analysis, error)

// ContentFetchFunc fetches the full text of one file at a ref.
type ContentFetchFunc func(ctx context.Context, path, ref string) (string, error)

// Orchestrator drives one analysis call per eligible changed file, strictly
// sequentially and in fetch order, degrading per-file failures to placeholder
// results. One instance serves exactly one run; nothing is shared across runs.
type Orchestrator struct {
	FetchContent    ContentFetchFunc
	Analyze         AnalyzeFunc
	Pace            time.Duration
	MaxPayloadChars int
}

// languageByExtension is the recognized code/document set; anything else is
// skipped before analysis.
var languageByExtension = map[string]string{
	".go":    "go",
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".py":    "python",
	".java":  "java",
	".rb":    "ruby",
	".rs":    "rust",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".php":   "php",
	".kt":    "kotlin",
	".swift": "swift",
	".sql":   "sql",
	".sh":    "shell",
	".yaml":  "yaml",
	".yml":   "yaml",
	".json":  "json",
	".tf":    "terraform",
	".md":    "markdown",
}

// Eligible reports whether a changed file should be analyzed. Removed files
// carry no reviewable content; unrecognized extensions are skipped.
func Eligible(f models.ChangedFile) bool {
	if f.Status == models.StatusRemoved {
		return false
	}
	_, ok := languageByExtension[strings.ToLower(filepath.Ext(f.Path))]
	return ok
}

// LanguageFor returns the language tag for a path, or "text" when unknown.
func LanguageFor(path string) string {
	if lang, ok := languageByExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return "text"
}

// Run analyzes each eligible file once, in input order. A per-file failure
// becomes a placeholder result and never aborts the remaining files. When ctx
// is cancelled no further files are submitted and the results accumulated so
// far are returned alongside ctx.Err(); the caller decides whether to keep
// them.
func (o *Orchestrator) Run(ctx context.Context, files []models.ChangedFile) ([]models.FileAnalysisResult, error) {
	var results []models.FileAnalysisResult
	first := true
	for _, f := range files {
		if !Eligible(f) {
			continue
		}
		if !first {
			if err := o.pause(ctx); err != nil {
				return results, err
			}
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}
		first = false
		results = append(results, o.analyzeFile(ctx, f))
	}
	return results, nil
}

// pause waits out the pacing interval, or returns early when the run is
// cancelled.
func (o *Orchestrator) pause(ctx context.Context) error {
	if o.Pace <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(o.Pace)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (o *Orchestrator) analyzeFile(ctx context.Context, f models.ChangedFile) models.FileAnalysisResult {
	language := LanguageFor(f.Path)

	code, err := o.FetchContent(ctx, f.Path, f.Ref)
	if err != nil {
		return models.NewFailureResult(f.Path, language, fmt.Sprintf("could not fetch content: %v", err))
	}
	if o.MaxPayloadChars > 0 && len(code) > o.MaxPayloadChars {
		code = code[:o.MaxPayloadChars]
	}

	contextLabel := fmt.Sprintf("file %s (%s)", f.Path, f.Status)
	analysis, err := o.Analyze(ctx, code, language, contextLabel)
	if err != nil {
		return models.NewFailureResult(f.Path, language, err.Error())
	}

	score := analysis.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return models.FileAnalysisResult{
		Path:     f.Path,
		Language: language,
		Issues:   analysis.Issues,
		Score:    score,
		Summary:  analysis.Summary,
	}
}
