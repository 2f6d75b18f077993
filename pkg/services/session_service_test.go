package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentloom/loom/ent/schema"
)

func TestTruncateTitle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short message", "Fix my deploy script", "Fix my deploy script"},
		{"first line only", "Fix my deploy script\nIt fails on line 3", "Fix my deploy script"},
		{"long message truncated", strings.Repeat("a", 60), strings.Repeat("a", 40) + "…"},
		{"whitespace only falls back", "   \n  ", schema.DefaultTopicTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TruncateTitle(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateSessionValidation(t *testing.T) {
	client, logger := testClient(t)
	svc := NewSessionService(client.Client, nil, logger)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, "", "agent-1", "", "", true)
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateSession(ctx, "user-1", "", "", "", true)
	assert.True(t, IsValidationError(err))

	session, err := svc.CreateSession(ctx, "user-1", "agent-1", "mkt-1", "dev-1", false)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "mkt-1", *session.MarketplaceID)
	assert.False(t, session.ConfigEditable)
}

func TestCreateTopicHidesForeignSessions(t *testing.T) {
	client, logger := testClient(t)
	svc := NewSessionService(client.Client, nil, logger)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "user-1", "agent-1", "", "", true)
	require.NoError(t, err)

	topic, err := svc.CreateTopic(ctx, session.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultTopicTitle, topic.Title)

	_, err = svc.CreateTopic(ctx, session.ID, "other-user")
	assert.ErrorIs(t, err, ErrNotFound, "foreign sessions look missing")

	_, err = svc.CreateTopic(ctx, "no-such-session", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidateTopicAccess(t *testing.T) {
	client, logger := testClient(t)
	svc := NewSessionService(client.Client, nil, logger)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "user-1", "agent-1", "", "", true)
	require.NoError(t, err)
	topic, err := svc.CreateTopic(ctx, session.ID, "user-1")
	require.NoError(t, err)

	t.Run("owner passes", func(t *testing.T) {
		gotSession, gotTopic, err := svc.ValidateTopicAccess(ctx, session.ID, topic.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, session.ID, gotSession.ID)
		assert.Equal(t, topic.ID, gotTopic.ID)
	})

	t.Run("missing topic", func(t *testing.T) {
		_, _, err := svc.ValidateTopicAccess(ctx, session.ID, "no-such-topic", "user-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("topic under different session", func(t *testing.T) {
		other, err := svc.CreateSession(ctx, "user-1", "agent-1", "", "", true)
		require.NoError(t, err)
		_, _, err = svc.ValidateTopicAccess(ctx, other.ID, topic.ID, "user-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("foreign user denied", func(t *testing.T) {
		_, _, err := svc.ValidateTopicAccess(ctx, session.ID, topic.ID, "other-user")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestValidateSessionAccess(t *testing.T) {
	client, logger := testClient(t)
	svc := NewSessionService(client.Client, nil, logger)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "user-1", "agent-1", "", "", true)
	require.NoError(t, err)

	got, err := svc.ValidateSessionAccess(ctx, session.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = svc.ValidateSessionAccess(ctx, session.ID, "other-user")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ValidateSessionAccess(ctx, "no-such-session", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveAttribution(t *testing.T) {
	client, logger := testClient(t)
	svc := NewSessionService(client.Client, nil, logger)
	ctx := context.Background()

	t.Run("marketplace locked fork", func(t *testing.T) {
		session, err := svc.CreateSession(ctx, "user-1", "agent-1", "mkt-1", "dev-1", false)
		require.NoError(t, err)
		attr := svc.ResolveAttribution(session)
		assert.Equal(t, "agent-1", attr.AgentID)
		assert.Equal(t, "mkt-1", attr.MarketplaceID)
		assert.Equal(t, "dev-1", attr.DeveloperUserID)
		assert.Equal(t, "locked", attr.ForkMode)
		assert.True(t, attr.Attributed())
	})

	t.Run("own editable agent", func(t *testing.T) {
		session, err := svc.CreateSession(ctx, "user-1", "agent-2", "", "", true)
		require.NoError(t, err)
		attr := svc.ResolveAttribution(session)
		assert.Equal(t, "editable", attr.ForkMode)
		assert.False(t, attr.Attributed())
	})
}

func TestMaybeGenerateTitle(t *testing.T) {
	client, logger := testClient(t)
	svc := NewSessionService(client.Client, nil, logger)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "user-1", "agent-1", "", "", true)
	require.NoError(t, err)
	topic, err := svc.CreateTopic(ctx, session.ID, "user-1")
	require.NoError(t, err)

	svc.MaybeGenerateTitle(ctx, topic.ID, "Summarize my quarterly report")

	got, err := client.Topic.Get(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summarize my quarterly report", got.Title)

	// A second run leaves the generated title alone.
	svc.MaybeGenerateTitle(ctx, topic.ID, "Something else entirely")
	got, err = client.Topic.Get(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summarize my quarterly report", got.Title)
}

func TestTouchTopic(t *testing.T) {
	client, logger := testClient(t)
	svc := NewSessionService(client.Client, nil, logger)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "user-1", "agent-1", "", "", true)
	require.NoError(t, err)
	topic, err := svc.CreateTopic(ctx, session.ID, "user-1")
	require.NoError(t, err)
	require.Nil(t, topic.LastMessageAt)

	require.NoError(t, svc.TouchTopic(ctx, topic.ID))
	got, err := client.Topic.Get(ctx, topic.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.LastMessageAt)

	assert.ErrorIs(t, svc.TouchTopic(ctx, "no-such-topic"), ErrNotFound)
}
