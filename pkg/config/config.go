// Package config loads HealOps runtime configuration from the environment.
//
// A .env file (if present) is loaded first via godotenv, then every value is
// resolved from the process environment with the documented default. The
// assembled Config is validated once at startup; invalid values fail fast.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration for the HealOps core.
type Config struct {
	Agent   AgentConfig
	Bus     BusConfig
	Worker  WorkerConfig
	HTTP    HTTPConfig
	Slack   SlackConfig
	GitHub  GitHubConfig
	Linear  LinearConfig
	LLM     LLMConfig
	Embed   EmbeddingConfig
	Cleanup CleanupConfig

	// ScratchpadDir is where per-incident scratchpad files are written when
	// the target repo is not used as the scratchpad backend.
	ScratchpadDir string `validate:"required"`

	// DedupWindow bounds the merge lookup: an ERROR/CRITICAL log merges into
	// an OPEN incident with the same (user, service, source) seen within it.
	DedupWindow time.Duration `validate:"gt=0"`
}

// AgentConfig bounds the agent loop.
type AgentConfig struct {
	MaxIterations      int           `validate:"gt=0"`
	MaxReplans         int           `validate:"gte=0"`
	MaxRetriesPerStep  int           `validate:"gte=0"`
	MaxEventStreamSize int           `validate:"gt=1"`
	StepTimeout        time.Duration `validate:"gt=0"`
	CrewTimeout        time.Duration `validate:"gt=0"`
	CodeExecTimeout    time.Duration `validate:"gt=0"`
}

// BusConfig configures the Redis Streams message bus gateway.
type BusConfig struct {
	RedisAddr     string `validate:"required"`
	RedisPassword string
	Partitions    int    `validate:"gt=0"`
	ConsumerGroup string `validate:"required"`
}

// WorkerConfig configures the resolution worker pool.
type WorkerConfig struct {
	WorkerCount        int           `validate:"gt=0"`
	PollInterval       time.Duration `validate:"gt=0"`
	PollIntervalJitter time.Duration `validate:"gte=0"`
	OrphanThreshold    time.Duration `validate:"gt=0"`
	OrphanScanInterval time.Duration `validate:"gt=0"`
}

// HTTPConfig holds transport-level timeouts for external HTTP calls.
type HTTPConfig struct {
	LLMAPITimeout    time.Duration `validate:"gt=0"`
	GitHubAPITimeout time.Duration `validate:"gt=0"`
}

// SlackConfig configures the chat adapter.
type SlackConfig struct {
	BotToken string
	// SigningSecrets is the set of secrets any of which may validate an
	// inbound event signature.
	SigningSecrets []string
	Channel        string
}

// GitHubConfig configures the repo host adapter.
type GitHubConfig struct {
	Token         string
	DefaultBranch string
}

// LinearConfig configures the ticket host adapter.
type LinearConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// LLMConfig configures the model provider client.
type LLMConfig struct {
	APIKey      string
	Model       string        `validate:"required"`
	CallTimeout time.Duration `validate:"gt=0"`
	MaxTokens   int           `validate:"gt=0"`
}

// EmbeddingConfig configures the embedding sidecar used by the knowledge
// retriever. An empty Addr disables the sidecar; the retriever falls back to
// its deterministic in-process embedder.
type EmbeddingConfig struct {
	Addr string
	// Model is passed through to the sidecar; empty uses the sidecar default.
	Model      string
	Dimensions int `validate:"gt=0"`
}

// CleanupConfig configures the retention loop.
type CleanupConfig struct {
	Interval           time.Duration `validate:"gt=0"`
	AgentEventTTL      time.Duration `validate:"gt=0"`
	ResolvedAfter      time.Duration `validate:"gt=0"`
	ScratchpadFileTTL  time.Duration `validate:"gt=0"`
}

// Load reads .env from dir (best-effort) and assembles the Config from the
// environment, applying documented defaults and validating the result.
func Load(dir string) (*Config, error) {
	envPath := dir + "/.env"
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("No .env file loaded, using process environment", "path", envPath)
	}

	cfg := &Config{
		Agent: AgentConfig{
			MaxIterations:      envInt("MAX_AGENT_ITERATIONS", 50),
			MaxReplans:         envInt("MAX_REPLANS", 3),
			MaxRetriesPerStep:  envInt("MAX_RETRIES_PER_STEP", 3),
			MaxEventStreamSize: envInt("MAX_EVENT_STREAM_SIZE", 100),
			StepTimeout:        envSeconds("AGENT_STEP_TIMEOUT", 180),
			CrewTimeout:        envSeconds("CREW_EXECUTION_TIMEOUT", 1200),
			CodeExecTimeout:    envSeconds("CODE_EXECUTION_TIMEOUT", 30),
		},
		Bus: BusConfig{
			RedisAddr:     envStr("REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			Partitions:    envInt("BUS_PARTITIONS", 8),
			ConsumerGroup: envStr("BUS_CONSUMER_GROUP", "healops-workers"),
		},
		Worker: WorkerConfig{
			WorkerCount:        envInt("WORKER_COUNT", 4),
			PollInterval:       envDuration("WORKER_POLL_INTERVAL", time.Second),
			PollIntervalJitter: envDuration("WORKER_POLL_JITTER", 500*time.Millisecond),
			OrphanThreshold:    envDuration("ORPHAN_THRESHOLD", 30*time.Minute),
			OrphanScanInterval: envDuration("ORPHAN_SCAN_INTERVAL", 5*time.Minute),
		},
		HTTP: HTTPConfig{
			LLMAPITimeout:    envSeconds("HTTP_LLM_API_TIMEOUT", 60),
			GitHubAPITimeout: envSeconds("HTTP_GITHUB_API_TIMEOUT", 30),
		},
		Slack: SlackConfig{
			BotToken:       os.Getenv("SLACK_BOT_TOKEN"),
			SigningSecrets: envList("SLACK_SIGNING_SECRETS"),
			Channel:        envStr("SLACK_CHANNEL", "#incidents"),
		},
		GitHub: GitHubConfig{
			Token:         os.Getenv("GITHUB_TOKEN"),
			DefaultBranch: envStr("GITHUB_DEFAULT_BRANCH", "main"),
		},
		Linear: LinearConfig{
			ClientID:     os.Getenv("LINEAR_CLIENT_ID"),
			ClientSecret: os.Getenv("LINEAR_CLIENT_SECRET"),
			TokenURL:     envStr("LINEAR_TOKEN_URL", "https://api.linear.app/oauth/token"),
		},
		LLM: LLMConfig{
			APIKey:      os.Getenv("ANTHROPIC_API_KEY"),
			Model:       envStr("LLM_MODEL", "claude-sonnet-4-20250514"),
			CallTimeout: envSeconds("LLM_CALL_TIMEOUT", 60),
			MaxTokens:   envInt("LLM_MAX_TOKENS", 8192),
		},
		Embed: EmbeddingConfig{
			Addr:       os.Getenv("EMBEDDING_SERVICE_ADDR"),
			Model:      os.Getenv("EMBEDDING_MODEL"),
			Dimensions: envInt("EMBEDDING_DIMENSIONS", 256),
		},
		Cleanup: CleanupConfig{
			Interval:          envDuration("CLEANUP_INTERVAL", time.Hour),
			AgentEventTTL:     envDuration("AGENT_EVENT_TTL", 7*24*time.Hour),
			ResolvedAfter:     envDuration("RESOLVED_RETENTION", 30*24*time.Hour),
			ScratchpadFileTTL: envDuration("SCRATCHPAD_FILE_TTL", 24*time.Hour),
		},
		ScratchpadDir: envStr("SCRATCHPAD_DIR", "/tmp/healops_scratchpads"),
		DedupWindow:   envDuration("DEDUP_WINDOW", 3*time.Minute),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

// envSeconds reads an integer number of seconds, matching the contract used
// by the original deployment (timeouts are plain second counts).
func envSeconds(key string, defSeconds int) time.Duration {
	return time.Duration(envInt(key, defSeconds)) * time.Second
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("Invalid duration in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
