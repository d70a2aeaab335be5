package repository

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/tuseefahmed786/code-intelligence-ai/internal/diffparser"
	"github.com/tuseefahmed786/code-intelligence-ai/internal/models"
	"github.com/tuseefahmed786/code-intelligence-ai/internal/utils"

	"code.gitea.io/sdk/gitea"
)

// GiteaRepository implements the VcsRepository interface for Gitea.
type GiteaRepository struct {
	client *gitea.Client
}

// NewGiteaRepository creates a new client for interacting with the Gitea API.
func NewGiteaRepository(ctx context.Context, baseURL, token string) (*GiteaRepository, error) {
	c, err := gitea.NewClient(baseURL, gitea.SetToken(token))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gitea client: %w", err)
	}
	return &GiteaRepository{client: c}, nil
}

func giteaStatusCode(resp *gitea.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func (g *GiteaRepository) GetPullRequest(ctx context.Context, owner, repo string, prNumber int) (*models.PRDetails, error) {
	pr, resp, err := g.client.GetPullRequest(owner, repo, int64(prNumber))
	if err != nil {
		return nil, wrapStatusErr("get pull request", giteaStatusCode(resp), err)
	}
	details := &models.PRDetails{
		Owner:    owner,
		Repo:     repo,
		PRNumber: prNumber,
		Title:    pr.Title,
		URL:      pr.HTMLURL,
	}
	if pr.Head != nil {
		details.Branch = pr.Head.Ref
		details.HeadSHA = pr.Head.Sha
	}
	return details, nil
}

// ListChangedFiles combines the files API with the whole-PR diff: Gitea's
// changed-files endpoint does not return per-file patch text, so patches are
// recovered by splitting the raw diff.
func (g *GiteaRepository) ListChangedFiles(ctx context.Context, owner, repo string, prNumber int) ([]models.ChangedFile, error) {
	pr, err := g.GetPullRequest(ctx, owner, repo, prNumber)
	if err != nil {
		return nil, err
	}

	diff, resp, err := g.client.GetPullRequestDiff(owner, repo, int64(prNumber), gitea.PullRequestDiffOptions{})
	if err != nil {
		return nil, wrapStatusErr("get pull request diff", giteaStatusCode(resp), err)
	}
	patches := diffparser.SplitFilePatches(string(diff))

	var files []models.ChangedFile
	opts := gitea.ListPullRequestFilesOptions{ListOptions: gitea.ListOptions{Page: 1, PageSize: 100}}
	for {
		page, resp, err := g.client.ListPullRequestFiles(owner, repo, int64(prNumber), opts)
		if err != nil {
			return nil, wrapStatusErr("list changed files", giteaStatusCode(resp), err)
		}
		for _, f := range page {
			files = append(files, models.ChangedFile{
				Path:      f.Filename,
				Status:    f.Status,
				Additions: f.Additions,
				Deletions: f.Deletions,
				Changes:   f.Changes,
				Patch:     patches[f.Filename],
				Ref:       pr.HeadSHA,
			})
		}
		if len(page) < opts.PageSize {
			break
		}
		opts.Page++
	}
	return files, nil
}

func (g *GiteaRepository) GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, error) {
	contents, resp, err := g.client.GetContents(owner, repo, ref, path)
	if err != nil {
		return "", wrapStatusErr("get file content", giteaStatusCode(resp), err)
	}
	if contents == nil || contents.Content == nil {
		return "", wrapStatusErr("get file content", 404, ErrNotFound)
	}
	decoded, err := base64.StdEncoding.DecodeString(*contents.Content)
	if err != nil {
		return "", fmt.Errorf("decode file content: %w", err)
	}
	return string(decoded), nil
}

func (g *GiteaRepository) UpsertSummaryComment(ctx context.Context, owner, repo string, prNumber int, body string) error {
	comments, resp, err := g.client.ListIssueComments(owner, repo, int64(prNumber), gitea.ListIssueCommentOptions{})
	if err != nil {
		return wrapStatusErr("list comments", giteaStatusCode(resp), err)
	}
	for _, c := range comments {
		if strings.Contains(c.Body, utils.SummaryMarker) {
			_, resp, err := g.client.EditIssueComment(owner, repo, c.ID, gitea.EditIssueCommentOption{Body: body})
			return wrapStatusErr("update summary comment", giteaStatusCode(resp), err)
		}
	}
	_, resp, err = g.client.CreateIssueComment(owner, repo, int64(prNumber), gitea.CreateIssueCommentOption{Body: body})
	return wrapStatusErr("create summary comment", giteaStatusCode(resp), err)
}

func (g *GiteaRepository) PostReview(ctx context.Context, owner, repo string, prNumber int, comments []*models.Comment, commitID string) error {
	var giteaComments []gitea.CreatePullReviewComment
	for _, c := range comments {
		giteaComments = append(giteaComments, gitea.CreatePullReviewComment{
			Path:       c.Path,
			Body:       c.Body,
			NewLineNum: int64(c.Line),
		})
	}
	opts := gitea.CreatePullReviewOptions{
		State:    gitea.ReviewStateComment,
		CommitID: commitID,
		Comments: giteaComments,
	}
	_, _, err := g.client.CreatePullReview(owner, repo, int64(prNumber), opts)
	if err != nil && strings.Contains(err.Error(), "404 Not Found") {
		log.Println("WARNING: Gitea instance may be too old to support batch reviews. Falling back to a summary comment.")
		var summary strings.Builder
		summary.WriteString("### AI Code Review Comments\n\n")
		for _, c := range comments {
			summary.WriteString(fmt.Sprintf("- **File `%s` (line %d):** %s\n", c.Path, c.Line, c.Body))
		}
		_, resp, err := g.client.CreateIssueComment(owner, repo, int64(prNumber), gitea.CreateIssueCommentOption{Body: summary.String()})
		return wrapStatusErr("post review fallback comment", giteaStatusCode(resp), err)
	}
	return err
}
