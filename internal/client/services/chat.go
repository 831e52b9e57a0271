package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/storage"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// maxChatHistory bounds the stored history per user; older messages drop off.
const maxChatHistory = 200

type ChatMessage struct {
	ID   string    `json:"id"`
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// ChatService keeps the local chat log of each user under
// "chatHistory_<userId>". Nothing is sent to the backend.
type ChatService interface {
	History(ctx context.Context, userID string) ([]ChatMessage, error)
	Append(ctx context.Context, userID, role, text string) (ChatMessage, error)
	Clear(ctx context.Context, userID string) error
}

type chatService struct {
	store *storage.Store
	now   func() time.Time
}

func NewChatService(store *storage.Store) ChatService {
	return &chatService{store: store, now: time.Now}
}

func (s *chatService) History(ctx context.Context, userID string) ([]ChatMessage, error) {
	if userID == "" {
		return nil, common.ErrLoginRequired
	}
	var msgs []ChatMessage
	err := storage.GetJSON(ctx, s.store, common.ChatHistoryKey(userID), &msgs)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	return msgs, err
}

func (s *chatService) Append(ctx context.Context, userID, role, text string) (ChatMessage, error) {
	if userID == "" {
		return ChatMessage{}, common.ErrLoginRequired
	}
	msg := ChatMessage{ID: uuid.NewString(), Role: role, Text: text, At: s.now().UTC()}

	err := storage.UpdateJSON(ctx, s.store, common.ChatHistoryKey(userID), func(msgs []ChatMessage) ([]ChatMessage, error) {
		msgs = append(msgs, msg)
		if len(msgs) > maxChatHistory {
			msgs = msgs[len(msgs)-maxChatHistory:]
		}
		return msgs, nil
	})
	if err != nil {
		return ChatMessage{}, err
	}
	return msg, nil
}

func (s *chatService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return common.ErrLoginRequired
	}
	return s.store.Delete(ctx, common.ChatHistoryKey(userID))
}
