package slack

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"testing"
	"time"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	posts   []string
	deletes []string
	nextTS  int
}

func (f *fakeAPI) PostMessageContext(_ context.Context, channelID string, _ ...slackapi.MsgOption) (string, string, error) {
	f.nextTS++
	f.posts = append(f.posts, channelID)
	return channelID, fmt.Sprintf("171234.%06d", f.nextTS), nil
}

func (f *fakeAPI) DeleteMessageContext(_ context.Context, channel, ts string) (string, string, error) {
	f.deletes = append(f.deletes, channel+"|"+ts)
	return channel, ts, nil
}

func TestPostMessage_DeduplicatesWithinWindow(t *testing.T) {
	fake := &fakeAPI{}
	c := newClient(fake)

	ts, err := c.PostMessage(context.Background(), "C1", "incident resolved", "T1")
	require.NoError(t, err)
	assert.NotEmpty(t, ts)

	ts, err = c.PostMessage(context.Background(), "C1", "incident resolved", "T1")
	require.NoError(t, err)
	assert.Empty(t, ts)
	assert.Len(t, fake.posts, 1)

	// Different text still goes through.
	_, err = c.PostMessage(context.Background(), "C1", "another update", "T1")
	require.NoError(t, err)
	assert.Len(t, fake.posts, 2)
}

func TestThinkingIndicatorLifecycle(t *testing.T) {
	fake := &fakeAPI{}
	c := newClient(fake)

	ts, err := c.PostThinkingIndicator(context.Background(), "C1", "T1")
	require.NoError(t, err)
	c.DeleteThinkingIndicator(context.Background(), "C1", ts)
	require.Len(t, fake.deletes, 1)
	assert.Equal(t, "C1|"+ts, fake.deletes[0])

	// Empty ts is a no-op.
	c.DeleteThinkingIndicator(context.Background(), "C1", "")
	assert.Len(t, fake.deletes, 1)
}

func TestConversationContext(t *testing.T) {
	c := newClient(&fakeAPI{})

	c.AppendConversationTurn("C1", "T1", "user", "what happened?")
	c.AppendConversationTurn("C1", "T1", "assistant", "svc-a is failing")

	turns := c.ConversationContext("C1", "T1")
	require.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0].Role)
	assert.Empty(t, c.ConversationContext("C1", "other"))
}

func TestConversationContext_Expires(t *testing.T) {
	c := newClient(&fakeAPI{})
	base := time.Now()
	c.now = func() time.Time { return base }

	c.AppendConversationTurn("C1", "T1", "user", "hi")

	c.now = func() time.Time { return base.Add(conversationTTL + time.Minute) }
	assert.Empty(t, c.ConversationContext("C1", "T1"))
}

func TestMarkThreadResponded(t *testing.T) {
	c := newClient(&fakeAPI{})
	assert.False(t, c.MarkThreadResponded("C1", "T1"))
	assert.True(t, c.MarkThreadResponded("C1", "T1"))
	assert.False(t, c.MarkThreadResponded("C1", "T2"))
}

func TestTTLCacheFastForward(t *testing.T) {
	cache := newTTLCache(time.Minute, 10)
	base := time.Now()
	cache.now = func() time.Time { return base }

	assert.False(t, cache.Seen("k"))
	assert.True(t, cache.Seen("k"))

	cache.now = func() time.Time { return base.Add(2 * time.Minute) }
	assert.False(t, cache.Seen("k"))
}

func signedHeaders(secret string, body []byte, at time.Time) http.Header {
	ts := fmt.Sprintf("%d", at.Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("v0:" + ts + ":" + string(body)))
	h := http.Header{}
	h.Set("X-Slack-Request-Timestamp", ts)
	h.Set("X-Slack-Signature", "v0="+hex.EncodeToString(mac.Sum(nil)))
	return h
}

func TestVerify_AnySecretMatches(t *testing.T) {
	v := NewVerifier([]string{"old-secret", "new-secret"})
	body := []byte(`{"type":"event_callback"}`)

	assert.NoError(t, v.Verify(signedHeaders("new-secret", body, time.Now()), body))
	assert.NoError(t, v.Verify(signedHeaders("old-secret", body, time.Now()), body))

	err := v.Verify(signedHeaders("wrong", body, time.Now()), body)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerify_StaleTimestamp(t *testing.T) {
	v := NewVerifier([]string{"s"})
	body := []byte(`{}`)
	err := v.Verify(signedHeaders("s", body, time.Now().Add(-10*time.Minute)), body)
	assert.ErrorIs(t, err, ErrStaleTimestamp)
}

func TestURLVerificationChallenge(t *testing.T) {
	challenge := URLVerificationChallenge([]byte(`{"type":"url_verification","challenge":"abc"}`))
	assert.Equal(t, "abc", challenge)
	assert.Empty(t, URLVerificationChallenge([]byte(`{"type":"event_callback"}`)))
	assert.Empty(t, URLVerificationChallenge([]byte(`not json`)))
}

func agents() []AgentProfile {
	return []AgentProfile{
		{ID: "a1", SlackUserID: "U100", Name: "Riley Chen", Nicknames: []string{"rchen"}, Role: "backend", Keywords: []string{"database"}},
		{ID: "a2", SlackUserID: "U200", Name: "Sam Ortiz", Nicknames: []string{"sammy"}, Role: "frontend"},
	}
}

func TestMatchMention_ExactUserID(t *testing.T) {
	got := MatchMention("hey <@U200> can you look?", []string{"U200"}, agents())
	require.NotNil(t, got)
	assert.Equal(t, "a2", got.ID)
}

func TestMatchMention_FullName(t *testing.T) {
	got := MatchMention("riley chen should take this", nil, agents())
	require.NotNil(t, got)
	assert.Equal(t, "a1", got.ID)
}

func TestMatchMention_NicknameBeatsRole(t *testing.T) {
	got := MatchMention("sammy please check the database", nil, agents())
	require.NotNil(t, got)
	assert.Equal(t, "a2", got.ID)
}

func TestMatchMention_NoDefaultFallback(t *testing.T) {
	assert.Nil(t, MatchMention("hey <@U999> can you help?", []string{"U999"}, agents()))
}
