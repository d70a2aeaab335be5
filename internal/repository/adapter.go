package repository

import (
	"context"

	"github.com/tuseefahmed786/code-intelligence-ai/internal/models"
)

// VcsRepository defines the interface for data access operations related to a VCS.
//
//go:generate mockgen -source=adapter.go -destination=repository_mock.go -package=repository
type VcsRepository interface {
	// GetPullRequest fetches PR metadata including the head commit SHA.
	GetPullRequest(ctx context.Context, owner, repo string, prNumber int) (*models.PRDetails, error)
	// ListChangedFiles returns the files touched by the PR, in platform order,
	// each carrying its patch text and content ref.
	ListChangedFiles(ctx context.Context, owner, repo string, prNumber int) ([]models.ChangedFile, error)
	// GetFileContent fetches the full text of one file at a ref.
	GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, error)
	// UpsertSummaryComment creates the pipeline's summary comment, or edits the
	// prior one when the PR was already reviewed, so repeated runs never stack
	// duplicate summaries.
	UpsertSummaryComment(ctx context.Context, owner, repo string, prNumber int, body string) error
	// PostReview submits line-anchored review comments against a commit.
	PostReview(ctx context.Context, owner, repo string, prNumber int, comments []*models.Comment, commitID string) error
}
