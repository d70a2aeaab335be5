package repository

import (
	"context"
	"strings"

	"github.com/tuseefahmed786/code-intelligence-ai/internal/models"
	"github.com/tuseefahmed786/code-intelligence-ai/internal/utils"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// GitHubRepository implements the VcsRepository interface for GitHub.
type GitHubRepository struct {
	client *github.Client
}

// NewGitHubRepository creates a new client for interacting with the GitHub API.
func NewGitHubRepository(ctx context.Context, token string) *GitHubRepository {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)
	return &GitHubRepository{client: client}
}

func statusCode(resp *github.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func (g *GitHubRepository) GetPullRequest(ctx context.Context, owner, repo string, prNumber int) (*models.PRDetails, error) {
	pr, resp, err := g.client.PullRequests.Get(ctx, owner, repo, prNumber)
	if err != nil {
		return nil, wrapStatusErr("get pull request", statusCode(resp), err)
	}
	return &models.PRDetails{
		Owner:    owner,
		Repo:     repo,
		PRNumber: prNumber,
		Title:    pr.GetTitle(),
		Branch:   pr.GetHead().GetRef(),
		URL:      pr.GetHTMLURL(),
		HeadSHA:  pr.GetHead().GetSHA(),
	}, nil
}

func (g *GitHubRepository) ListChangedFiles(ctx context.Context, owner, repo string, prNumber int) ([]models.ChangedFile, error) {
	pr, err := g.GetPullRequest(ctx, owner, repo, prNumber)
	if err != nil {
		return nil, err
	}

	var files []models.ChangedFile
	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := g.client.PullRequests.ListFiles(ctx, owner, repo, prNumber, opts)
		if err != nil {
			return nil, wrapStatusErr("list changed files", statusCode(resp), err)
		}
		for _, f := range page {
			files = append(files, models.ChangedFile{
				Path:      f.GetFilename(),
				Status:    f.GetStatus(),
				Additions: f.GetAdditions(),
				Deletions: f.GetDeletions(),
				Changes:   f.GetChanges(),
				Patch:     f.GetPatch(),
				Ref:       pr.HeadSHA,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return files, nil
}

func (g *GitHubRepository) GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, error) {
	fileContent, _, resp, err := g.client.Repositories.GetContents(ctx, owner, repo, path,
		&github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return "", wrapStatusErr("get file content", statusCode(resp), err)
	}
	if fileContent == nil {
		return "", wrapStatusErr("get file content", 404, ErrNotFound)
	}
	content, err := fileContent.GetContent()
	if err != nil {
		return "", wrapStatusErr("decode file content", 0, err)
	}
	return content, nil
}

func (g *GitHubRepository) UpsertSummaryComment(ctx context.Context, owner, repo string, prNumber int, body string) error {
	opts := &github.IssueListCommentsOptions{ListOptions: github.ListOptions{PerPage: 100}}
	for {
		comments, resp, err := g.client.Issues.ListComments(ctx, owner, repo, prNumber, opts)
		if err != nil {
			return wrapStatusErr("list comments", statusCode(resp), err)
		}
		for _, c := range comments {
			if strings.Contains(c.GetBody(), utils.SummaryMarker) {
				_, resp, err := g.client.Issues.EditComment(ctx, owner, repo, c.GetID(),
					&github.IssueComment{Body: &body})
				return wrapStatusErr("update summary comment", statusCode(resp), err)
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	issueComment := &github.IssueComment{Body: &body}
	_, resp, err := g.client.Issues.CreateComment(ctx, owner, repo, prNumber, issueComment)
	return wrapStatusErr("create summary comment", statusCode(resp), err)
}

func (g *GitHubRepository) PostReview(ctx context.Context, owner, repo string, prNumber int, comments []*models.Comment, commitID string) error {
	var reviewComments []*github.DraftReviewComment
	for _, c := range comments {
		reviewComments = append(reviewComments, &github.DraftReviewComment{
			Path:     &c.Path,
			Position: &c.Position,
			Body:     &c.Body,
		})
	}
	reviewRequest := &github.PullRequestReviewRequest{
		CommitID: &commitID,
		Event:    github.String("COMMENT"),
		Comments: reviewComments,
	}
	_, resp, err := g.client.PullRequests.CreateReview(ctx, owner, repo, prNumber, reviewRequest)
	return wrapStatusErr("post review", statusCode(resp), err)
}
