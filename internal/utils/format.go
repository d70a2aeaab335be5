package utils

import (
	"fmt"
	"strings"

	"github.com/tuseefahmed786/code-intelligence-ai/internal/models"
)

// SummaryMarker is embedded invisibly in every published summary so that a
// later run can find and replace its own comment instead of stacking a new
// one per push.
const SummaryMarker = "<!-- code-intelligence-ai:summary -->"

// FormatSummaryComment renders the aggregate verdict as one markdown comment
// body. Files whose analysis failed are listed explicitly so reviewers see a
// "could not analyze" entry rather than a silently missing file.
func FormatSummaryComment(pr *models.PRDetails, verdict *models.AggregateVerdict) string {
	var b strings.Builder

	b.WriteString(SummaryMarker + "\n")
	b.WriteString(fmt.Sprintf("## 🤖 AI Code Review — PR #%d\n\n", pr.PRNumber))
	b.WriteString(fmt.Sprintf("**Overall Score:** `%d/100`\n\n", verdict.OverallScore))
	b.WriteString(fmt.Sprintf("%s\n\n", verdict.Summary))

	if len(verdict.Files) > 0 {
		b.WriteString("#### 📄 Reviewed Files\n")
		b.WriteString("| File | Score | Issues |\n|------|-------|--------|\n")
		for _, f := range verdict.Files {
			if f.Failed() {
				b.WriteString(fmt.Sprintf("| `%s` | — | could not analyze |\n", f.Path))
			} else {
				b.WriteString(fmt.Sprintf("| `%s` | %d/100 | %d |\n", f.Path, f.Score, len(f.Issues)))
			}
		}
		b.WriteString("\n")
	}

	var failed []models.FileAnalysisResult
	for _, f := range verdict.Files {
		if f.Failed() {
			failed = append(failed, f)
		}
	}
	if len(failed) > 0 {
		b.WriteString("#### ⚠️ Files That Could Not Be Analyzed\n")
		for _, f := range failed {
			b.WriteString(fmt.Sprintf("- `%s`: %s\n", f.Path, f.FailureReason()))
		}
		b.WriteString("\n")
	}

	if verdict.TotalIssues > 0 {
		b.WriteString("<details>\n<summary>📝 Detailed Findings</summary>\n\n")
		for _, f := range verdict.Files {
			if len(f.Issues) == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("**`%s`** — %s\n\n", f.Path, f.Summary))
			for _, issue := range f.Issues {
				b.WriteString(fmt.Sprintf("- %s **[%s/%s]** %s", severityEmoji(issue.Severity), issue.Severity, issue.Category, issue.Message))
				if issue.Line > 0 {
					b.WriteString(fmt.Sprintf(" (line %d)", issue.Line))
				}
				b.WriteString("\n")
				if issue.Suggestion != "" {
					b.WriteString(fmt.Sprintf("  - 💡 %s\n", issue.Suggestion))
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("</details>\n")
	}

	return b.String()
}

func severityEmoji(s models.Severity) string {
	switch s {
	case models.SeverityCritical:
		return "🔴"
	case models.SeverityWarning:
		return "🟡"
	default:
		return "🔵"
	}
}
