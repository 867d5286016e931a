package repositories

import (
	"errors"

	"kasambahay_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEmployerProfileNotFound = errors.New("employer profile not found")

type EmployerProfileRepository interface {
	Create(db *gorm.DB, profile *models.EmployerProfile) error
	FindByID(db *gorm.DB, id string) (*models.EmployerProfile, error)
	FindByUserID(db *gorm.DB, userID string) (*models.EmployerProfile, error)
	FindByStripeCustomerID(db *gorm.DB, customerID string) (*models.EmployerProfile, error)
	Update(db *gorm.DB, profile *models.EmployerProfile) error
	SetStripeCustomerID(db *gorm.DB, profileID, customerID string) error
}

type EmployerProfileRepositoryImpl struct{}

func NewEmployerProfileRepository() EmployerProfileRepository {
	return &EmployerProfileRepositoryImpl{}
}

func (r *EmployerProfileRepositoryImpl) Create(db *gorm.DB, profile *models.EmployerProfile) error {
	return db.Create(profile).Error
}

func (r *EmployerProfileRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *EmployerProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *EmployerProfileRepositoryImpl) FindByStripeCustomerID(db *gorm.DB, customerID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := db.Where("stripe_customer_id = ?", customerID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *EmployerProfileRepositoryImpl) Update(db *gorm.DB, profile *models.EmployerProfile) error {
	return db.Model(profile).Select(
		"display_name", "city", "province", "phone", "household_size",
	).Updates(profile).Error
}

func (r *EmployerProfileRepositoryImpl) SetStripeCustomerID(db *gorm.DB, profileID, customerID string) error {
	result := db.Model(&models.EmployerProfile{}).Where("id = ?", profileID).
		Update("stripe_customer_id", customerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployerProfileNotFound
	}
	return nil
}
