package repositories

import (
	"errors"

	"kasambahay_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSavedSearchNotFound = errors.New("saved search not found")

type SavedSearchRepository interface {
	// Create clears any existing default in the same transaction when the
	// new search is marked default, so at most one default survives.
	Create(db *gorm.DB, search *models.SavedSearch) error
	FindByID(db *gorm.DB, id string) (*models.SavedSearch, error)
	ListByEmployer(db *gorm.DB, employerID string) ([]models.SavedSearch, error)
	Update(db *gorm.DB, search *models.SavedSearch) error
	Delete(db *gorm.DB, employerID, id string) error
	SetDefault(db *gorm.DB, employerID, id string) error
}

type SavedSearchRepositoryImpl struct{}

func NewSavedSearchRepository() SavedSearchRepository {
	return &SavedSearchRepositoryImpl{}
}

func (r *SavedSearchRepositoryImpl) Create(db *gorm.DB, search *models.SavedSearch) error {
	if !search.IsDefault {
		return db.Create(search).Error
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := clearDefault(tx, search.EmployerID); err != nil {
			return err
		}
		return tx.Create(search).Error
	})
}

func (r *SavedSearchRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.SavedSearch, error) {
	var search models.SavedSearch
	err := db.First(&search, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavedSearchNotFound
		}
		return nil, err
	}
	return &search, nil
}

func (r *SavedSearchRepositoryImpl) ListByEmployer(db *gorm.DB, employerID string) ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	err := db.Where("employer_id = ?", employerID).
		Order("is_default DESC, created_at DESC").
		Find(&searches).Error
	return searches, err
}

func (r *SavedSearchRepositoryImpl) Update(db *gorm.DB, search *models.SavedSearch) error {
	if !search.IsDefault {
		return db.Model(search).Select("name", "filters", "is_default").Updates(search).Error
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := clearDefault(tx, search.EmployerID); err != nil {
			return err
		}
		return tx.Model(search).Select("name", "filters", "is_default").Updates(search).Error
	})
}

func (r *SavedSearchRepositoryImpl) Delete(db *gorm.DB, employerID, id string) error {
	result := db.Where("id = ? AND employer_id = ?", id, employerID).Delete(&models.SavedSearch{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedSearchNotFound
	}
	return nil
}

func (r *SavedSearchRepositoryImpl) SetDefault(db *gorm.DB, employerID, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := clearDefault(tx, employerID); err != nil {
			return err
		}
		result := tx.Model(&models.SavedSearch{}).
			Where("id = ? AND employer_id = ?", id, employerID).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSavedSearchNotFound
		}
		return nil
	})
}

func clearDefault(tx *gorm.DB, employerID string) error {
	return tx.Model(&models.SavedSearch{}).
		Where("employer_id = ? AND is_default = ?", employerID, true).
		Update("is_default", false).Error
}
