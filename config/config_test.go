package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("Success - full config", func(t *testing.T) {
		path := writeConfigFile(t, `
llm:
  provider: googleai
  api_key: fake-key
  model_name: gemini-2.0-flash
vcs:
  provider: Github
  github:
    token: ghp_fake
review:
  pace_ms: 250
  max_payload_chars: 1000
review_prompt: "custom {{.Code}}"
`)
		cfg, err := LoadConfig(path)
		assert.NoError(t, err)
		assert.Equal(t, "googleai", cfg.LLM.Provider)
		assert.Equal(t, "ghp_fake", cfg.VCS.GitHub.Token)
		assert.Equal(t, 250*time.Millisecond, cfg.PacingInterval())
		assert.Equal(t, 1000, cfg.Review.MaxPayloadChars)
		assert.Equal(t, "custom {{.Code}}", cfg.ReviewPrompt)
	})

	t.Run("Success - defaults applied", func(t *testing.T) {
		path := writeConfigFile(t, `
llm:
  provider: openai
  model_name: gpt-4o-mini
`)
		cfg, err := LoadConfig(path)
		assert.NoError(t, err)
		assert.Equal(t, time.Second, cfg.PacingInterval())
		assert.Equal(t, defaultMaxPayloadChars, cfg.Review.MaxPayloadChars)
		assert.Equal(t, DefaultReviewPrompt, cfg.ReviewPrompt)
	})

	t.Run("Success - token falls back to env", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "env-token")
		path := writeConfigFile(t, `
llm:
  provider: openai
  model_name: gpt-4o-mini
vcs:
  provider: Github
`)
		cfg, err := LoadConfig(path)
		assert.NoError(t, err)
		assert.Equal(t, "env-token", cfg.VCS.GitHub.Token)
	})

	t.Run("Failure - missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
	})

	t.Run("Failure - invalid yaml", func(t *testing.T) {
		path := writeConfigFile(t, "llm: [unclosed")
		_, err := LoadConfig(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("Failure - missing provider", func(t *testing.T) {
		path := writeConfigFile(t, `
llm:
  model_name: gpt-4o-mini
`)
		_, err := LoadConfig(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "llm.provider is required")
	})
}
