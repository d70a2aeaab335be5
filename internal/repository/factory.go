package repository

import (
	"context"
	"fmt"

	"github.com/tuseefahmed786/code-intelligence-ai/config"
	"github.com/tuseefahmed786/code-intelligence-ai/constants"
)

// New creates and returns the appropriate VCS repository client based on the
// configuration. This factory function is primarily used by the CLI tool to
// select the correct provider.
func New(ctx context.Context, cfg *config.VCSConfig) (VcsRepository, error) {
	switch cfg.Provider {
	case constants.GITHUB:
		if cfg.GitHub.Token == "" {
			return nil, fmt.Errorf("github provider selected but GITHUB_TOKEN is not configured")
		}
		return NewGitHubRepository(ctx, cfg.GitHub.Token), nil
	case constants.GITEA:
		if cfg.Gitea.Token == "" {
			return nil, fmt.Errorf("gitea provider selected but GITEA_TOKEN is not configured")
		}
		return NewGiteaRepository(ctx, cfg.Gitea.BaseURL, cfg.Gitea.Token)
	default:
		return nil, fmt.Errorf("unsupported VCS provider in config: '%s'", cfg.Provider)
	}
}
