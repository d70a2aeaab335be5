package utils

import (
	"testing"

	"github.com/tuseefahmed786/code-intelligence-ai/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatSummaryComment(t *testing.T) {
	pr := &models.PRDetails{Owner: "test", Repo: "repo", PRNumber: 7}

	t.Run("carries the idempotency marker", func(t *testing.T) {
		body := FormatSummaryComment(pr, &models.AggregateVerdict{OverallScore: 100, Summary: "Nothing changed."})
		assert.Contains(t, body, SummaryMarker)
		assert.Contains(t, body, "100/100")
	})

	t.Run("lists failed files distinguishably", func(t *testing.T) {
		verdict := &models.AggregateVerdict{
			OverallScore: 45,
			Summary:      "Reviewed 2 file(s).",
			Files: []models.FileAnalysisResult{
				{Path: "ok.go", Language: "go", Score: 90, Summary: "Looks fine."},
				models.NewFailureResult("broken.go", "go", "could not fetch content: not found"),
			},
		}
		body := FormatSummaryComment(pr, verdict)
		assert.Contains(t, body, "`ok.go` | 90/100")
		assert.Contains(t, body, "could not analyze")
		assert.Contains(t, body, "Files That Could Not Be Analyzed")
		assert.Contains(t, body, "`broken.go`: could not fetch content: not found")
	})

	t.Run("renders issues with severity and line anchors", func(t *testing.T) {
		verdict := &models.AggregateVerdict{
			OverallScore: 60,
			TotalIssues:  1,
			Summary:      "Reviewed 1 file(s).",
			Files: []models.FileAnalysisResult{
				{
					Path: "main.go", Language: "go", Score: 60, Summary: "One problem.",
					Issues: []models.Issue{{
						Severity: models.SeverityCritical, Category: "security",
						Message: "SQL built by string concatenation", Line: 42,
						Suggestion: "use parameterized queries",
					}},
				},
			},
		}
		body := FormatSummaryComment(pr, verdict)
		assert.Contains(t, body, "critical/security")
		assert.Contains(t, body, "(line 42)")
		assert.Contains(t, body, "use parameterized queries")
	})
}
