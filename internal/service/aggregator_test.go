package service

import (
	"testing"

	"github.com/tuseefahmed786/code-intelligence-ai/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_Empty(t *testing.T) {
	verdict := Aggregate(nil)
	assert.Equal(t, 100, verdict.OverallScore)
	assert.Equal(t, 0, verdict.TotalIssues)
	assert.Equal(t, 0, verdict.CriticalCount)
	assert.Equal(t, 0, verdict.WarningCount)
	assert.Empty(t, verdict.Files)
	assert.NotEmpty(t, verdict.Summary)
}

func TestAggregate_MeanIsRounded(t *testing.T) {
	verdict := Aggregate([]models.FileAnalysisResult{
		{Path: "a.go", Score: 90},
		{Path: "b.go", Score: 70},
		{Path: "c.go", Score: 50},
	})
	assert.Equal(t, 70, verdict.OverallScore)

	// 85+84 = 169/2 = 84.5, rounds to 85
	verdict = Aggregate([]models.FileAnalysisResult{
		{Path: "a.go", Score: 85},
		{Path: "b.go", Score: 84},
	})
	assert.Equal(t, 85, verdict.OverallScore)
}

func TestAggregate_Counts(t *testing.T) {
	verdict := Aggregate([]models.FileAnalysisResult{
		{
			Path: "a.go", Score: 40,
			Issues: []models.Issue{
				{Severity: models.SeverityCritical, Message: "nil deref"},
				{Severity: models.SeverityWarning, Message: "unused var"},
				{Severity: models.SeverityInfo, Message: "naming"},
			},
		},
		{
			Path: "b.go", Score: 80,
			Issues: []models.Issue{
				{Severity: models.SeverityWarning, Message: "shadowed err"},
			},
		},
	})

	assert.Equal(t, 4, verdict.TotalIssues)
	assert.Equal(t, 1, verdict.CriticalCount)
	assert.Equal(t, 2, verdict.WarningCount)
	assert.Equal(t, 60, verdict.OverallScore)
	assert.Contains(t, verdict.Summary, "Reviewed 2 file(s)")
	assert.Contains(t, verdict.Summary, "4 issue(s)")
}

func TestAggregate_PreservesOrder(t *testing.T) {
	results := []models.FileAnalysisResult{
		{Path: "z.go", Score: 10},
		{Path: "a.go", Score: 20},
		{Path: "m.go", Score: 30},
	}
	verdict := Aggregate(results)
	assert.Equal(t, "z.go", verdict.Files[0].Path)
	assert.Equal(t, "a.go", verdict.Files[1].Path)
	assert.Equal(t, "m.go", verdict.Files[2].Path)
}

func TestAggregate_ReportsFailedFiles(t *testing.T) {
	verdict := Aggregate([]models.FileAnalysisResult{
		{Path: "ok.go", Score: 100},
		models.NewFailureResult("bad.go", "go", "model timed out"),
	})
	assert.Equal(t, 50, verdict.OverallScore)
	assert.Contains(t, verdict.Summary, "1 file(s) could not be analyzed")
}
