package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Agent.MaxIterations)
	assert.Equal(t, 3, cfg.Agent.MaxReplans)
	assert.Equal(t, 3, cfg.Agent.MaxRetriesPerStep)
	assert.Equal(t, 100, cfg.Agent.MaxEventStreamSize)
	assert.Equal(t, 180*time.Second, cfg.Agent.StepTimeout)
	assert.Equal(t, 1200*time.Second, cfg.Agent.CrewTimeout)
	assert.Equal(t, 30*time.Second, cfg.Agent.CodeExecTimeout)
	assert.Equal(t, 60*time.Second, cfg.LLM.CallTimeout)
	assert.Equal(t, 60*time.Second, cfg.HTTP.LLMAPITimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.GitHubAPITimeout)
	assert.Equal(t, "/tmp/healops_scratchpads", cfg.ScratchpadDir)
	assert.Equal(t, 3*time.Minute, cfg.DedupWindow)
	assert.Equal(t, 8, cfg.Bus.Partitions)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAX_AGENT_ITERATIONS", "10")
	t.Setenv("AGENT_STEP_TIMEOUT", "60")
	t.Setenv("SLACK_SIGNING_SECRETS", "s1, s2 ,s3")
	t.Setenv("DEDUP_WINDOW", "90s")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Agent.MaxIterations)
	assert.Equal(t, 60*time.Second, cfg.Agent.StepTimeout)
	assert.Equal(t, []string{"s1", "s2", "s3"}, cfg.Slack.SigningSecrets)
	assert.Equal(t, 90*time.Second, cfg.DedupWindow)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("MAX_REPLANS", "not-a-number")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Agent.MaxReplans)
}
