// Package llm wraps the Anthropic Messages API behind a small completion
// interface with per-call timeouts and a circuit breaker.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sony/gobreaker"
)

// Request is one completion request.
type Request struct {
	System    string
	Prompt    string
	Model     string // empty means the configured default
	MaxTokens int    // 0 means the configured default
}

// Usage is the token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	Model        string
}

// Response is one completion result.
type Response struct {
	Text  string
	Usage Usage
}

// UsageRecorder receives token usage after each successful call. Telemetry
// implements it; nil disables cost accounting.
type UsageRecorder interface {
	RecordUsage(usage Usage)
}

// Client is the completion interface the rest of the system depends on.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Options configures the Anthropic client.
type Options struct {
	APIKey       string
	DefaultModel string
	MaxTokens    int
	CallTimeout  time.Duration
	Recorder     UsageRecorder
}

// messagesAPI is the subset of the SDK used; satisfied by *sdk.MessageService.
type messagesAPI interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicClient implements Client against the Anthropic Messages API.
type AnthropicClient struct {
	msg          messagesAPI
	defaultModel string
	maxTokens    int
	callTimeout  time.Duration
	recorder     UsageRecorder
	breaker      *gobreaker.CircuitBreaker
	logger       *slog.Logger
}

// NewAnthropicClient builds a client from an API key.
func NewAnthropicClient(opts Options) (*AnthropicClient, error) {
	if opts.APIKey == "" {
		return nil, errors.New("llm: api key is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(opts.APIKey))
	return newAnthropicClient(&ac.Messages, opts), nil
}

func newAnthropicClient(msg messagesAPI, opts Options) *AnthropicClient {
	if opts.DefaultModel == "" {
		opts.DefaultModel = string(sdk.ModelClaudeSonnet4_5)
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 4096
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 60 * time.Second
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "anthropic",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &AnthropicClient{
		msg:          msg,
		defaultModel: opts.DefaultModel,
		maxTokens:    opts.MaxTokens,
		callTimeout:  opts.CallTimeout,
		recorder:     opts.Recorder,
		breaker:      breaker,
		logger:       slog.Default().With("component", "llm"),
	}
}

// Complete issues one Messages.New call under the per-call timeout and the
// circuit breaker.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errors.New("llm: prompt is required")
	}

	model := req.Model
	if model == "" {
		model = c.defaultModel
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: int64(maxTokens),
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt))},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	raw, err := c.breaker.Execute(func() (interface{}, error) {
		return c.msg.New(callCtx, params)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("llm: circuit breaker open: %w", err)
		}
		return nil, fmt.Errorf("llm: messages.new: %w", err)
	}

	msg := raw.(*sdk.Message)
	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	resp := &Response{
		Text: text.String(),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
			Model:        model,
		},
	}
	if c.recorder != nil {
		c.recorder.RecordUsage(resp.Usage)
	}
	return resp, nil
}

// IsRetryable reports whether an LLM error is worth retrying: timeouts,
// rate limits, and 5xx-class transport failures.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"timeout", "429", "rate limit", "rate_limit", "503", "502", "500", "504", "connection reset", "overloaded"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
