package services

import (
	"context"
	"testing"
	"time"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture(subscribed bool, chats ...*models.Chat) (ChatService, *fakeChatRepo) {
	var sub *models.Subscription
	if subscribed {
		sub = &models.Subscription{
			BaseModel:  models.BaseModel{ID: "sub-1"},
			EmployerID: "employer-1",
			Status:     models.SubscriptionStatusActive,
			ExpiresAt:  frozenNow.Add(24 * time.Hour),
		}
	}
	access, _ := newAccessFixture(activeEmployer(), sub)

	chatRepo := newFakeChatRepo(chats...)
	profileRepo := newFakeProfileRepo(workerProfile("worker-1", true))

	return NewChatService(chatRepo, profileRepo, newFakeEmployerRepo(activeEmployer()), access), chatRepo
}

func existingChat() *models.Chat {
	return &models.Chat{
		BaseModel:  models.BaseModel{ID: "chat-1"},
		EmployerID: "user-1",
		WorkerID:   "worker-1",
	}
}

func TestStartChat(t *testing.T) {
	t.Parallel()

	svc, _ := newChatFixture(true)

	chat, err := svc.StartChat(context.Background(), nil, "user-1", models.UserRoleEmployer, &dto.StartChatRequest{
		WorkerID: "worker-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", chat.EmployerID)
	assert.Equal(t, "worker-1", chat.WorkerID)

	// Starting again returns the same thread.
	again, err := svc.StartChat(context.Background(), nil, "user-1", models.UserRoleEmployer, &dto.StartChatRequest{
		WorkerID: "worker-1",
	})
	require.NoError(t, err)
	assert.Equal(t, chat.ID, again.ID)
}

func TestStartChat_RequiresSubscription(t *testing.T) {
	t.Parallel()

	svc, _ := newChatFixture(false)

	_, err := svc.StartChat(context.Background(), nil, "user-1", models.UserRoleEmployer, &dto.StartChatRequest{
		WorkerID: "worker-1",
	})
	assert.Equal(t, apperrors.ErrSubscriptionRequired, err)
}

func TestSendMessage_WorkerRepliesFree(t *testing.T) {
	t.Parallel()

	// The employer has no subscription at all, but the worker can still
	// reply into the existing thread.
	svc, repo := newChatFixture(false, existingChat())

	msg, err := svc.SendMessage(context.Background(), nil, "worker-1", models.UserRoleWorker, "chat-1", &dto.SendMessageRequest{
		Body: "Available on Monday po",
	})
	require.NoError(t, err)
	assert.Equal(t, "worker-1", msg.SenderID)
	assert.Len(t, repo.messages["chat-1"], 1)

	// The employer side of the same thread stays gated.
	_, err = svc.SendMessage(context.Background(), nil, "user-1", models.UserRoleEmployer, "chat-1", &dto.SendMessageRequest{
		Body: "Great, see you then",
	})
	assert.Equal(t, apperrors.ErrSubscriptionRequired, err)
}

func TestSendMessage_NonParticipant(t *testing.T) {
	t.Parallel()

	svc, _ := newChatFixture(true, existingChat())

	_, err := svc.SendMessage(context.Background(), nil, "stranger", models.UserRoleWorker, "chat-1", &dto.SendMessageRequest{
		Body: "hello",
	})
	assert.Equal(t, apperrors.ErrChatAccessDenied, err)
}

func TestGetMessages_ReadableWhenLapsed(t *testing.T) {
	t.Parallel()

	svc, repo := newChatFixture(false, existingChat())
	repo.messages["chat-1"] = []models.ChatMessage{
		{BaseModel: models.BaseModel{ID: "msg-1"}, ChatID: "chat-1", SenderID: "user-1", Body: "Hi"},
	}

	msgs, err := svc.GetMessages(context.Background(), nil, "user-1", models.UserRoleEmployer, "chat-1", 0, 20)
	require.NoError(t, err)
	assert.Len(t, msgs, 1, "history stays readable without a subscription")
}

func TestListChats_ByRole(t *testing.T) {
	t.Parallel()

	svc, _ := newChatFixture(false, existingChat())

	chats, err := svc.ListChats(context.Background(), nil, "worker-1", models.UserRoleWorker)
	require.NoError(t, err)
	assert.Len(t, chats, 1)

	_, err = svc.ListChats(context.Background(), nil, "admin-1", models.UserRoleAdmin)
	assert.Equal(t, apperrors.ErrInvalidUserRole, err)
}
