package config

import (
	"fmt"
	"os"
	"time"

	"github.com/tuseefahmed786/code-intelligence-ai/constants"

	"gopkg.in/yaml.v3"
)

// LLMConfig selects the analysis provider and model.
type LLMConfig struct {
	Provider  string `yaml:"provider"`
	APIKey    string `yaml:"api_key"`
	ModelName string `yaml:"model_name"`
}

// GitHubConfig holds GitHub credentials.
type GitHubConfig struct {
	Token string `yaml:"token"`
}

// GiteaConfig holds Gitea connection details.
type GiteaConfig struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
}

// VCSConfig selects the source-hosting provider.
type VCSConfig struct {
	Provider string       `yaml:"provider"`
	GitHub   GitHubConfig `yaml:"github"`
	Gitea    GiteaConfig  `yaml:"gitea"`
}

// ReviewConfig tunes the analysis pipeline.
type ReviewConfig struct {
	// PaceMillis is the fixed delay between successive analysis calls.
	PaceMillis int `yaml:"pace_ms"`
	// MaxPayloadChars is the hard ceiling on file content sent per call.
	MaxPayloadChars int `yaml:"max_payload_chars"`
}

// Config is the top-level application configuration.
type Config struct {
	LLM          LLMConfig    `yaml:"llm"`
	VCS          VCSConfig    `yaml:"vcs"`
	Review       ReviewConfig `yaml:"review"`
	ReviewPrompt string       `yaml:"review_prompt"`
}

const (
	defaultPaceMillis      = 1000
	defaultMaxPayloadChars = 48000
)

// DefaultReviewPrompt is used when the config file does not override it. The
// response contract (a single JSON object) is what the service parser expects.
const DefaultReviewPrompt = `You are an expert code reviewer. Review the following {{.Language}} code from {{.Context}}.

Respond with ONLY a JSON object of the form:
{"issues": [{"severity": "critical|warning|info", "category": "...", "message": "...", "line": 0, "suggestion": "..."}], "score": 0-100, "summary": "one short paragraph"}

Code:
{{.Code}}`

// LoadConfig reads and validates the YAML configuration file, applying
// defaults and environment fallbacks for tokens.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Review.PaceMillis <= 0 {
		c.Review.PaceMillis = defaultPaceMillis
	}
	if c.Review.MaxPayloadChars <= 0 {
		c.Review.MaxPayloadChars = defaultMaxPayloadChars
	}
	if c.ReviewPrompt == "" {
		c.ReviewPrompt = DefaultReviewPrompt
	}
	if c.VCS.GitHub.Token == "" {
		c.VCS.GitHub.Token = os.Getenv(constants.GITHUB_TOKEN)
	}
	if c.VCS.Gitea.Token == "" {
		c.VCS.Gitea.Token = os.Getenv(constants.GITEA_TOKEN)
	}
}

func (c *Config) validate() error {
	if c.LLM.Provider == "" {
		return fmt.Errorf("llm.provider is required")
	}
	if c.LLM.ModelName == "" {
		return fmt.Errorf("llm.model_name is required")
	}
	return nil
}

// PacingInterval returns the configured inter-call delay.
func (c *Config) PacingInterval() time.Duration {
	return time.Duration(c.Review.PaceMillis) * time.Millisecond
}
