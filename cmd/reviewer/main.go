package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tuseefahmed786/code-intelligence-ai/config"
	"github.com/tuseefahmed786/code-intelligence-ai/constants"
	"github.com/tuseefahmed786/code-intelligence-ai/internal/models"
	"github.com/tuseefahmed786/code-intelligence-ai/internal/repository"
	"github.com/tuseefahmed786/code-intelligence-ai/internal/service"

	"github.com/spf13/cobra"

	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/compat_oai/openai"
	"github.com/firebase/genkit/go/plugins/googlegenai"
)

var (
	configPath string
	repoOwner  string
	repoName   string
	prNumber   int
)

func main() {
	Execute()
}

var rootCmd = &cobra.Command{
	Use:   "code-intelligence-ai",
	Short: "AI-powered Code Reviewer",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		g, err := initGenkit(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Genkit: %v", err)
		}

		prDetails, err := getPRDetailsFromEnv(cfg.VCS.Provider)
		if err != nil {
			log.Fatalf("Failed to get PR details: %v", err)
		}

		vcsClient, err := repository.New(ctx, &cfg.VCS)
		if err != nil {
			log.Fatalf("Failed to create VCS client: %v", err)
		}

		reviewService := service.NewReviewService(vcsClient, g, cfg)
		verdict, err := reviewService.ProcessPullRequest(ctx, prDetails)
		if err != nil {
			log.Fatalf("Code review process failed: %v", err)
		}

		log.Printf("Process finished: %s", verdict.Summary)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "/app/config/config.yaml", "Path to config.yaml")
	rootCmd.Flags().StringVar(&repoOwner, "repo-owner", "", "Repository owner (overrides env)")
	rootCmd.Flags().StringVar(&repoName, "repo-name", "", "Repository name (overrides env)")
	rootCmd.Flags().IntVar(&prNumber, "pr-number", 0, "PR number (overrides env)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// initGenkit initializes the Genkit instance and loads the appropriate LLM plugin.
func initGenkit(ctx context.Context, cfg *config.Config) (*genkit.Genkit, error) {
	var plugin genkit.Plugin
	switch cfg.LLM.Provider {
	case constants.GOOGLEAI:
		plugin = &googlegenai.GoogleAI{APIKey: cfg.LLM.APIKey}
	case constants.OPENAI:
		plugin = &openai.OpenAI{APIKey: cfg.LLM.APIKey}
	default:
		return nil, fmt.Errorf("unsupported LLM provider in config: %s", cfg.LLM.Provider)
	}
	return genkit.Init(ctx, genkit.WithPlugins(plugin))
}

// getPRDetailsFromEnv retrieves PR information from environment variables,
// with flag overrides taking precedence.
func getPRDetailsFromEnv(provider string) (*models.PRDetails, error) {
	if repoOwner != "" && repoName != "" && prNumber > 0 {
		return &models.PRDetails{Owner: repoOwner, Repo: repoName, PRNumber: prNumber}, nil
	}

	var repoSlug string
	if provider == constants.GITEA {
		repoSlug = os.Getenv(constants.GITEA_REPOSITORY)
	} else {
		repoSlug = os.Getenv(constants.GITHUB_REPOSITORY)
	}

	if repoSlug == "" {
		owner := os.Getenv(constants.REPO_OWNER)
		name := os.Getenv(constants.REPO_NAME)
		if owner == "" || name == "" {
			return nil, fmt.Errorf("GITHUB_REPOSITORY (or REPO_OWNER/REPO_NAME) env var not set")
		}
		repoSlug = fmt.Sprintf("%s/%s", owner, name)
	}

	parts := strings.Split(repoSlug, "/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid GITHUB_REPOSITORY format: %s", repoSlug)
	}

	prNumberStr := os.Getenv(constants.PR_NUMBER)
	if prNumberStr == "" {
		return nil, fmt.Errorf("PR_NUMBER env var not set")
	}

	number, err := strconv.Atoi(prNumberStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PR_NUMBER: %w", err)
	}

	return &models.PRDetails{
		Owner:    parts[0],
		Repo:     parts[1],
		PRNumber: number,
	}, nil
}
