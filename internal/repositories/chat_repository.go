package repositories

import (
	"errors"

	"kasambahay_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrChatNotFound    = errors.New("chat not found")
	ErrMessageNotFound = errors.New("chat message not found")
)

type ChatRepository interface {
	// FindOrCreate returns the single chat for an employer/worker pair,
	// creating it on first contact.
	FindOrCreate(db *gorm.DB, employerID, workerID string) (*models.Chat, error)
	FindByID(db *gorm.DB, id string) (*models.Chat, error)
	ListByEmployer(db *gorm.DB, employerID string) ([]models.Chat, error)
	ListByWorker(db *gorm.DB, workerID string) ([]models.Chat, error)

	AddMessage(db *gorm.DB, msg *models.ChatMessage) error
	ListMessages(db *gorm.DB, chatID string, offset, limit int) ([]models.ChatMessage, error)
	CountMessages(db *gorm.DB, chatID string) (int64, error)
}

type ChatRepositoryImpl struct{}

func NewChatRepository() ChatRepository {
	return &ChatRepositoryImpl{}
}

func (r *ChatRepositoryImpl) FindOrCreate(db *gorm.DB, employerID, workerID string) (*models.Chat, error) {
	var chat models.Chat
	err := db.Where("employer_id = ? AND worker_id = ?", employerID, workerID).First(&chat).Error
	if err == nil {
		return &chat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	chat = models.Chat{EmployerID: employerID, WorkerID: workerID}
	if err := db.Create(&chat).Error; err != nil {
		// A concurrent first message can win the unique-pair race.
		var existing models.Chat
		if ferr := db.Where("employer_id = ? AND worker_id = ?", employerID, workerID).
			First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &chat, nil
}

func (r *ChatRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Chat, error) {
	var chat models.Chat
	err := db.First(&chat, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return &chat, nil
}

func (r *ChatRepositoryImpl) ListByEmployer(db *gorm.DB, employerID string) ([]models.Chat, error) {
	var chats []models.Chat
	err := db.Where("employer_id = ?", employerID).Order("updated_at DESC").Find(&chats).Error
	return chats, err
}

func (r *ChatRepositoryImpl) ListByWorker(db *gorm.DB, workerID string) ([]models.Chat, error) {
	var chats []models.Chat
	err := db.Where("worker_id = ?", workerID).Order("updated_at DESC").Find(&chats).Error
	return chats, err
}

func (r *ChatRepositoryImpl) AddMessage(db *gorm.DB, msg *models.ChatMessage) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		// Touch the chat so conversation lists sort by last activity.
		return tx.Model(&models.Chat{}).Where("id = ?", msg.ChatID).
			Update("updated_at", msg.CreatedAt).Error
	})
}

func (r *ChatRepositoryImpl) ListMessages(db *gorm.DB, chatID string, offset, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var msgs []models.ChatMessage
	err := db.Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepositoryImpl) CountMessages(db *gorm.DB, chatID string) (int64, error) {
	var count int64
	err := db.Model(&models.ChatMessage{}).Where("chat_id = ?", chatID).Count(&count).Error
	return count, err
}
