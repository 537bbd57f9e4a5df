package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessages struct {
	resp *sdk.Message
	err  error
	last sdk.MessageNewParams
}

func (f *fakeMessages) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	f.last = body
	return f.resp, f.err
}

type captureRecorder struct {
	usages []Usage
}

func (r *captureRecorder) RecordUsage(u Usage) { r.usages = append(r.usages, u) }

func textMessage(text string, in, out int64) *sdk.Message {
	return &sdk.Message{
		Content: []sdk.ContentBlockUnion{{Type: "text", Text: text}},
		Usage:   sdk.Usage{InputTokens: in, OutputTokens: out},
	}
}

func TestComplete_ReturnsTextAndUsage(t *testing.T) {
	fake := &fakeMessages{resp: textMessage("Detected error in svc-a", 120, 18)}
	rec := &captureRecorder{}
	c := newAnthropicClient(fake, Options{DefaultModel: "claude-test", MaxTokens: 512, Recorder: rec})

	resp, err := c.Complete(context.Background(), Request{Prompt: "summarize"})
	require.NoError(t, err)
	assert.Equal(t, "Detected error in svc-a", resp.Text)
	assert.Equal(t, 138, resp.Usage.TotalTokens)
	assert.Equal(t, "claude-test", resp.Usage.Model)

	require.Len(t, rec.usages, 1)
	assert.Equal(t, 120, rec.usages[0].InputTokens)

	assert.Equal(t, sdk.Model("claude-test"), fake.last.Model)
	assert.Equal(t, int64(512), fake.last.MaxTokens)
}

func TestComplete_SystemPromptAndOverrides(t *testing.T) {
	fake := &fakeMessages{resp: textMessage("ok", 1, 1)}
	c := newAnthropicClient(fake, Options{DefaultModel: "claude-default"})

	_, err := c.Complete(context.Background(), Request{
		System:    "you are terse",
		Prompt:    "hi",
		Model:     "claude-override",
		MaxTokens: 64,
	})
	require.NoError(t, err)
	assert.Equal(t, sdk.Model("claude-override"), fake.last.Model)
	assert.Equal(t, int64(64), fake.last.MaxTokens)
	require.Len(t, fake.last.System, 1)
	assert.Equal(t, "you are terse", fake.last.System[0].Text)
}

func TestComplete_EmptyPrompt(t *testing.T) {
	c := newAnthropicClient(&fakeMessages{}, Options{})
	_, err := c.Complete(context.Background(), Request{Prompt: "   "})
	assert.Error(t, err)
}

func TestComplete_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	fake := &fakeMessages{err: errors.New("boom")}
	c := newAnthropicClient(fake, Options{CallTimeout: time.Second})

	for i := 0; i < 5; i++ {
		_, err := c.Complete(context.Background(), Request{Prompt: "x"})
		require.Error(t, err)
	}
	_, err := c.Complete(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(errors.New("http 429 Too Many Requests")))
	assert.True(t, IsRetryable(errors.New("upstream 503 unavailable")))
	assert.False(t, IsRetryable(errors.New("invalid request body")))
	assert.False(t, IsRetryable(nil))
}
