package service

import (
	"fmt"
	"math"

	"github.com/tuseefahmed786/code-intelligence-ai/internal/models"
)

// Aggregate folds per-file results into one verdict. Pure and total: no
// failure mode, input order preserved in Files. Zero analyzed files means
// nothing changed and nothing to flag, so the score is a clean 100.
func Aggregate(results []models.FileAnalysisResult) models.AggregateVerdict {
	verdict := models.AggregateVerdict{
		OverallScore: 100,
		Files:        results,
	}
	if len(results) == 0 {
		verdict.Summary = "No files were analyzed; nothing to flag."
		return verdict
	}

	scoreSum := 0
	failedCount := 0
	for _, r := range results {
		scoreSum += r.Score
		if r.Failed() {
			failedCount++
		}
		for _, issue := range r.Issues {
			verdict.TotalIssues++
			switch issue.Severity {
			case models.SeverityCritical:
				verdict.CriticalCount++
			case models.SeverityWarning:
				verdict.WarningCount++
			}
		}
	}
	verdict.OverallScore = int(math.Round(float64(scoreSum) / float64(len(results))))

	verdict.Summary = fmt.Sprintf("Reviewed %d file(s): overall score %d/100, %d issue(s) (%d critical, %d warning).",
		len(results), verdict.OverallScore, verdict.TotalIssues, verdict.CriticalCount, verdict.WarningCount)
	if failedCount > 0 {
		verdict.Summary += fmt.Sprintf(" %d file(s) could not be analyzed.", failedCount)
	}
	return verdict
}
