package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"text/template"

	"github.com/tuseefahmed786/code-intelligence-ai/config"
	"github.com/tuseefahmed786/code-intelligence-ai/internal/diffparser"
	"github.com/tuseefahmed786/code-intelligence-ai/internal/models"
	"github.com/tuseefahmed786/code-intelligence-ai/internal/repository"
	"github.com/tuseefahmed786/code-intelligence-ai/internal/utils"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// ReviewService encapsulates the core business logic for reviewing a pull request.
type ReviewService struct {
	repo repository.VcsRepository
	g    *genkit.Genkit
	cfg  *config.Config
}

var genkitGenerate = genkit.Generate

// NewReviewService creates a new service instance.
func NewReviewService(vcsRepo repository.VcsRepository, g *genkit.Genkit, cfg *config.Config) *ReviewService {
	return &ReviewService{repo: vcsRepo, g: g, cfg: cfg}
}

// ProcessPullRequest is the main orchestration method: fetch the changed
// files, analyze each one, aggregate, publish. Fetch failures are fatal to
// the run; per-file analysis failures are folded into the verdict; publish
// failures are logged and never invalidate the computed verdict, which is
// returned to the caller regardless.
func (s *ReviewService) ProcessPullRequest(ctx context.Context, prDetails *models.PRDetails) (*models.AggregateVerdict, error) {
	log.Printf("Starting review for PR #%d in %s/%s", prDetails.PRNumber, prDetails.Owner, prDetails.Repo)

	pr, err := s.repo.GetPullRequest(ctx, prDetails.Owner, prDetails.Repo, prDetails.PRNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull request (%s): %w", describeFetchError(err), err)
	}

	files, err := s.repo.ListChangedFiles(ctx, pr.Owner, pr.Repo, pr.PRNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch changed files (%s): %w", describeFetchError(err), err)
	}
	log.Printf("PR #%d touches %d file(s).", pr.PRNumber, len(files))

	orch := &Orchestrator{
		FetchContent: func(ctx context.Context, path, ref string) (string, error) {
			return s.repo.GetFileContent(ctx, pr.Owner, pr.Repo, path, ref)
		},
		Analyze:         s.analyzeSource,
		Pace:            s.cfg.PacingInterval(),
		MaxPayloadChars: s.cfg.Review.MaxPayloadChars,
	}

	results, err := orch.Run(ctx, files)
	if err != nil {
		// Cancelled mid-run: hand the partial verdict back without publishing.
		verdict := Aggregate(results)
		return &verdict, fmt.Errorf("review cancelled after %d file(s): %w", len(results), err)
	}

	verdict := Aggregate(results)
	log.Println(verdict.Summary)

	body := utils.FormatSummaryComment(pr, &verdict)
	if err := s.repo.UpsertSummaryComment(ctx, pr.Owner, pr.Repo, pr.PRNumber, body); err != nil {
		log.Printf("Warning: failed to publish summary comment for PR #%d: %v", pr.PRNumber, err)
	}

	s.postLineComments(ctx, pr, files, &verdict)

	return &verdict, nil
}

// postLineComments anchors critical findings to the added lines they refer
// to, when the file's patch confirms the line was actually introduced by this
// PR. Failures here are logged only; the summary comment already carries
// every finding.
func (s *ReviewService) postLineComments(ctx context.Context, pr *models.PRDetails, files []models.ChangedFile, verdict *models.AggregateVerdict) {
	patches := make(map[string]string, len(files))
	for _, f := range files {
		patches[f.Path] = f.Patch
	}

	var comments []*models.Comment
	for _, result := range verdict.Files {
		if result.Failed() || patches[result.Path] == "" {
			continue
		}
		positions := diffparser.AddedLinePositions(patches[result.Path])
		for _, issue := range result.Issues {
			if issue.Severity != models.SeverityCritical || issue.Line <= 0 {
				continue
			}
			position, ok := positions[issue.Line]
			if !ok {
				continue
			}
			body := issue.Message
			if issue.Suggestion != "" {
				body += "\n\n💡 " + issue.Suggestion
			}
			comments = append(comments, &models.Comment{
				Body:     body,
				Path:     result.Path,
				Position: position,
				Line:     issue.Line,
			})
		}
	}
	if len(comments) == 0 {
		return
	}

	log.Printf("Submitting a review with %d line comment(s).", len(comments))
	if err := s.repo.PostReview(ctx, pr.Owner, pr.Repo, pr.PRNumber, comments, pr.HeadSHA); err != nil {
		log.Printf("Warning: failed to post line comments for PR #%d: %v", pr.PRNumber, err)
	}
}

// analyzeSource asks the LLM to judge one file's code. Any malformed or
// empty response is an error for this file only; the orchestrator converts
// it to a placeholder result.
func (s *ReviewService) analyzeSource(ctx context.Context, code, language, contextLabel string) (*Analysis, error) {
	prompt, err := preparePrompt(s.cfg.ReviewPrompt, language, contextLabel, code)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare prompt: %w", err)
	}

	res, err := genkitGenerate(ctx, s.g, ai.WithModelName(s.cfg.LLM.ModelName), ai.WithPrompt(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate LLM response: %w", err)
	}

	responseText := res.Text()
	if responseText == "" {
		return nil, fmt.Errorf("empty LLM response")
	}

	sanitizedJSON := sanitizeJSONObject(responseText)
	if sanitizedJSON == "" {
		return nil, fmt.Errorf("no JSON object in LLM response")
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(sanitizedJSON), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}
	return &analysis, nil
}

func describeFetchError(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "not found"
	case errors.Is(err, repository.ErrUnauthorized):
		return "authentication failed"
	default:
		return "transport error"
	}
}

var trailingCommaRe = regexp.MustCompile(`,(\s*[\}\]])`)

// sanitizeJSONObject extracts the outermost JSON object from a possibly
// fenced or chatty LLM response and strips trailing commas.
func sanitizeJSONObject(s string) string {
	startIndex := strings.Index(s, "{")
	endIndex := strings.LastIndex(s, "}")
	if startIndex == -1 || endIndex == -1 || endIndex < startIndex {
		return ""
	}
	s = s[startIndex : endIndex+1]
	return trailingCommaRe.ReplaceAllString(s, "$1")
}

func preparePrompt(promptTmpl, language, contextLabel, code string) (string, error) {
	tmpl, err := template.New("review_prompt").Parse(promptTmpl)
	if err != nil {
		return "", err
	}
	data := struct {
		Language string
		Context  string
		Code     string
	}{
		Language: language,
		Context:  contextLabel,
		Code:     code,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
