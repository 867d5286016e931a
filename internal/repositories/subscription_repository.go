package repositories

import (
	"errors"
	"time"

	"kasambahay_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionRepository interface {
	Create(db *gorm.DB, sub *models.Subscription) error
	FindByID(db *gorm.DB, id string) (*models.Subscription, error)
	// FindLatestByEmployer returns the most recently created row; older
	// rows are history and never drive access decisions.
	FindLatestByEmployer(db *gorm.DB, employerID string) (*models.Subscription, error)
	FindByProviderID(db *gorm.DB, providerID string) (*models.Subscription, error)
	UpdateStatus(db *gorm.DB, id string, status models.SubscriptionStatus) error
	UpdateStatusAndExpiry(db *gorm.DB, id string, status models.SubscriptionStatus, expiresAt time.Time) error
	// FindLapsedActive returns active rows whose expiry has passed, for
	// the nightly reconciliation sweep.
	FindLapsedActive(db *gorm.DB, now time.Time, limit int) ([]models.Subscription, error)

	AddBillingEvent(db *gorm.DB, event *models.BillingHistory) error
	ListBillingByEmployer(db *gorm.DB, employerID string, limit int) ([]models.BillingHistory, error)
}

type SubscriptionRepositoryImpl struct{}

func NewSubscriptionRepository() SubscriptionRepository {
	return &SubscriptionRepositoryImpl{}
}

func (r *SubscriptionRepositoryImpl) Create(db *gorm.DB, sub *models.Subscription) error {
	return db.Create(sub).Error
}

func (r *SubscriptionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Subscription, error) {
	var sub models.Subscription
	err := db.First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) FindLatestByEmployer(db *gorm.DB, employerID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := db.Where("employer_id = ?", employerID).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) FindByProviderID(db *gorm.DB, providerID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := db.Where("provider_id = ?", providerID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.SubscriptionStatus) error {
	result := db.Model(&models.Subscription{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) UpdateStatusAndExpiry(db *gorm.DB, id string, status models.SubscriptionStatus, expiresAt time.Time) error {
	result := db.Model(&models.Subscription{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"expires_at": expiresAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) FindLapsedActive(db *gorm.DB, now time.Time, limit int) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := db.Where("status = ? AND expires_at < ?", models.SubscriptionStatusActive, now).
		Order("expires_at ASC").
		Limit(limit).
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) AddBillingEvent(db *gorm.DB, event *models.BillingHistory) error {
	return db.Create(event).Error
}

func (r *SubscriptionRepositoryImpl) ListBillingByEmployer(db *gorm.DB, employerID string, limit int) ([]models.BillingHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	var events []models.BillingHistory
	err := db.Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
