// Package slack is the chat adapter: message posting with a thinking
// indicator, per-thread conversation context, multi-secret request
// verification, and agent mention resolution.
package slack

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	slackapi "github.com/slack-go/slack"
)

// conversationTTL is how long per-thread context is retained.
const conversationTTL = 30 * time.Minute

// maxConversationTurns bounds the retained turns per thread.
const maxConversationTurns = 20

// dedupTTL is the window in which an identical outbound message or an
// already-handled thread is suppressed.
const dedupTTL = 5 * time.Minute

// api is the subset of the slack-go client used; satisfied by *slackapi.Client.
type api interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
	DeleteMessageContext(ctx context.Context, channel, messageTimestamp string) (string, string, error)
}

// Turn is one stored conversation turn.
type Turn struct {
	Role string
	Text string
	At   time.Time
}

type conversation struct {
	turns     []Turn
	updatedAt time.Time
}

// Client posts messages and tracks short-lived conversation state.
type Client struct {
	api    api
	logger *slog.Logger

	mu            sync.Mutex
	conversations map[string]*conversation

	postedMessages   *ttlCache
	respondedThreads *ttlCache
	now              func() time.Time
}

// NewClient creates a Slack client from a bot token.
func NewClient(botToken string) *Client {
	return newClient(slackapi.New(botToken))
}

func newClient(a api) *Client {
	return &Client{
		api:              a,
		logger:           slog.Default().With("component", "slack"),
		conversations:    make(map[string]*conversation),
		postedMessages:   newTTLCache(dedupTTL, 1000),
		respondedThreads: newTTLCache(dedupTTL, 1000),
		now:              time.Now,
	}
}

// PostMessage sends text to a channel, optionally threaded. Duplicate
// (channel, thread, text) posts inside the dedup window are suppressed.
// Returns the message timestamp ("" when suppressed).
func (c *Client) PostMessage(ctx context.Context, channel, text, thread string) (string, error) {
	dedupKey := channel + "|" + thread + "|" + text
	if c.postedMessages.Seen(dedupKey) {
		c.logger.Debug("Suppressed duplicate message", "channel", channel, "thread", thread)
		return "", nil
	}

	opts := []slackapi.MsgOption{slackapi.MsgOptionText(text, false)}
	if thread != "" {
		opts = append(opts, slackapi.MsgOptionTS(thread))
	}
	_, ts, err := c.api.PostMessageContext(ctx, channel, opts...)
	if err != nil {
		return "", fmt.Errorf("post message to %s: %w", channel, err)
	}
	return ts, nil
}

// PostThinkingIndicator posts a transient "thinking" message and returns its
// timestamp for later deletion.
func (c *Client) PostThinkingIndicator(ctx context.Context, channel, thread string) (string, error) {
	opts := []slackapi.MsgOption{slackapi.MsgOptionText("_thinking..._", false)}
	if thread != "" {
		opts = append(opts, slackapi.MsgOptionTS(thread))
	}
	_, ts, err := c.api.PostMessageContext(ctx, channel, opts...)
	if err != nil {
		return "", fmt.Errorf("post thinking indicator to %s: %w", channel, err)
	}
	return ts, nil
}

// DeleteThinkingIndicator removes a previously posted thinking message.
// Best-effort: a failure is logged, not surfaced.
func (c *Client) DeleteThinkingIndicator(ctx context.Context, channel, ts string) {
	if ts == "" {
		return
	}
	if _, _, err := c.api.DeleteMessageContext(ctx, channel, ts); err != nil {
		c.logger.Warn("Failed to delete thinking indicator", "channel", channel, "ts", ts, "error", err)
	}
}

// MarkThreadResponded records that a thread was handled; returns true if it
// was already handled within the dedup window.
func (c *Client) MarkThreadResponded(channel, thread string) bool {
	return c.respondedThreads.Seen(channel + "|" + thread)
}

// AppendConversationTurn stores one turn of a threaded conversation.
func (c *Client) AppendConversationTurn(channel, thread, role, text string) {
	key := channel + "|" + thread
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneConversationsLocked(now)

	conv := c.conversations[key]
	if conv == nil {
		conv = &conversation{}
		c.conversations[key] = conv
	}
	conv.turns = append(conv.turns, Turn{Role: role, Text: text, At: now})
	if len(conv.turns) > maxConversationTurns {
		conv.turns = conv.turns[len(conv.turns)-maxConversationTurns:]
	}
	conv.updatedAt = now
}

// ConversationContext returns the retained turns for a thread, oldest first.
func (c *Client) ConversationContext(channel, thread string) []Turn {
	key := channel + "|" + thread

	c.mu.Lock()
	defer c.mu.Unlock()
	conv := c.conversations[key]
	if conv == nil || c.now().Sub(conv.updatedAt) > conversationTTL {
		return nil
	}
	out := make([]Turn, len(conv.turns))
	copy(out, conv.turns)
	return out
}

func (c *Client) pruneConversationsLocked(now time.Time) {
	for key, conv := range c.conversations {
		if now.Sub(conv.updatedAt) > conversationTTL {
			delete(c.conversations, key)
		}
	}
}
