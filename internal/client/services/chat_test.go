package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_PerUserHistory(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := NewChatService(store)

	m1, err := svc.Append(ctx, "42", RoleUser, "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, m1.ID)

	_, err = svc.Append(ctx, "42", RoleAssistant, "How are you feeling?")
	require.NoError(t, err)
	_, err = svc.Append(ctx, "7", RoleUser, "someone else")
	require.NoError(t, err)

	h, err := svc.History(ctx, "42")
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, m1.ID, h[0].ID)
	assert.Equal(t, RoleAssistant, h[1].Role)

	raw, err := store.Get(ctx, "chatHistory_42")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "How are you feeling?")

	require.NoError(t, svc.Clear(ctx, "42"))
	h, err = svc.History(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, h)

	other, err := svc.History(ctx, "7")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestChatService_RequiresUser(t *testing.T) {
	svc := NewChatService(openStore(t))

	_, err := svc.History(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrLoginRequired)
	_, err = svc.Append(context.Background(), "", RoleUser, "x")
	assert.ErrorIs(t, err, common.ErrLoginRequired)
}

func TestChatService_HistoryIsBounded(t *testing.T) {
	ctx := context.Background()
	svc := NewChatService(openStore(t))

	for i := 0; i < maxChatHistory+5; i++ {
		_, err := svc.Append(ctx, "1", RoleUser, fmt.Sprintf("m%d", i))
		require.NoError(t, err)
	}

	h, err := svc.History(ctx, "1")
	require.NoError(t, err)
	require.Len(t, h, maxChatHistory)
	assert.Equal(t, "m5", h[0].Text)
}
