package services

import (
	"context"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/repositories"
	"kasambahay_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ChatService mediates employer/worker conversations. Starting a chat
// and sending messages are employer-subscription gated; reading an
// existing thread is not, so lapsed employers keep their history.
type ChatService interface {
	StartChat(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, req *dto.StartChatRequest) (*models.Chat, error)
	SendMessage(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, chatID string, req *dto.SendMessageRequest) (*models.ChatMessage, error)
	ListChats(ctx context.Context, db *gorm.DB, userID string, role models.UserRole) ([]models.Chat, error)
	GetMessages(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, chatID string, offset, limit int) ([]models.ChatMessage, error)
}

type chatService struct {
	chatRepo     repositories.ChatRepository
	profileRepo  repositories.EmployeeProfileRepository
	employerRepo repositories.EmployerProfileRepository
	access       AccessService
}

func NewChatService(
	chatRepo repositories.ChatRepository,
	profileRepo repositories.EmployeeProfileRepository,
	employerRepo repositories.EmployerProfileRepository,
	access AccessService,
) ChatService {
	return &chatService{
		chatRepo:     chatRepo,
		profileRepo:  profileRepo,
		employerRepo: employerRepo,
		access:       access,
	}
}

func (s *chatService) StartChat(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, req *dto.StartChatRequest) (*models.Chat, error) {
	if _, err := s.access.RequireActiveSubscription(db, userID, role, ActionMessage); err != nil {
		return nil, err
	}

	// The worker must exist and be reachable.
	if _, err := s.profileRepo.FindByUserID(db, req.WorkerID); err != nil {
		if err == repositories.ErrProfileNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	chat, err := s.chatRepo.FindOrCreate(db, userID, req.WorkerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return chat, nil
}

func (s *chatService) SendMessage(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, chatID string, req *dto.SendMessageRequest) (*models.ChatMessage, error) {
	chat, err := s.participantChat(db, userID, chatID)
	if err != nil {
		return nil, err
	}

	// Only the employer side is paywalled; workers always reply free.
	if role == models.UserRoleEmployer {
		if _, err := s.access.RequireActiveSubscription(db, userID, role, ActionMessage); err != nil {
			return nil, err
		}
	}

	msg := &models.ChatMessage{
		ChatID:   chat.ID,
		SenderID: userID,
		Body:     req.Body,
	}
	if err := s.chatRepo.AddMessage(db, msg); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return msg, nil
}

func (s *chatService) ListChats(ctx context.Context, db *gorm.DB, userID string, role models.UserRole) ([]models.Chat, error) {
	var (
		chats []models.Chat
		err   error
	)
	switch role {
	case models.UserRoleEmployer:
		chats, err = s.chatRepo.ListByEmployer(db, userID)
	case models.UserRoleWorker:
		chats, err = s.chatRepo.ListByWorker(db, userID)
	default:
		return nil, apperrors.ErrInvalidUserRole
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return chats, nil
}

func (s *chatService) GetMessages(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, chatID string, offset, limit int) ([]models.ChatMessage, error) {
	if _, err := s.participantChat(db, userID, chatID); err != nil {
		return nil, err
	}
	msgs, err := s.chatRepo.ListMessages(db, chatID, offset, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return msgs, nil
}

// participantChat loads the chat and rejects anyone who is not one of
// its two participants.
func (s *chatService) participantChat(db *gorm.DB, userID, chatID string) (*models.Chat, error) {
	chat, err := s.chatRepo.FindByID(db, chatID)
	if err != nil {
		if err == repositories.ErrChatNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if chat.EmployerID != userID && chat.WorkerID != userID {
		return nil, apperrors.ErrChatAccessDenied
	}
	return chat, nil
}
