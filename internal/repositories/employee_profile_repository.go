package repositories

import (
	"errors"

	"kasambahay_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("worker profile not found")
	ErrProfileAlreadyExists = errors.New("worker profile already exists for this user")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrReferenceNotFound    = errors.New("reference not found")
)

type EmployeeProfileRepository interface {
	Create(db *gorm.DB, profile *models.EmployeeProfile) error
	FindByID(db *gorm.DB, id string) (*models.EmployeeProfile, error)
	FindByUserID(db *gorm.DB, userID string) (*models.EmployeeProfile, error)
	FindByUserIDs(db *gorm.DB, userIDs []string) ([]models.EmployeeProfile, error)
	Update(db *gorm.DB, profile *models.EmployeeProfile) error
	UpdateScore(db *gorm.DB, profileID string, score int) error
	Delete(db *gorm.DB, id string) error

	// ListVisible pages through publishable profiles for full reindexing.
	ListVisible(db *gorm.DB, offset, limit int) ([]models.EmployeeProfile, error)
	CountVisible(db *gorm.DB) (int64, error)

	AddDocument(db *gorm.DB, doc *models.Document) error
	FindDocument(db *gorm.DB, documentID string) (*models.Document, error)
	ListDocuments(db *gorm.DB, profileID string) ([]models.Document, error)
	UpdateDocumentStatus(db *gorm.DB, documentID string, status models.DocumentStatus) error
	DeleteDocument(db *gorm.DB, profileID, documentID string) error

	AddReference(db *gorm.DB, ref *models.Reference) error
	ListReferences(db *gorm.DB, profileID string) ([]models.Reference, error)
	DeleteReference(db *gorm.DB, profileID, referenceID string) error
}

type EmployeeProfileRepositoryImpl struct{}

func NewEmployeeProfileRepository() EmployeeProfileRepository {
	return &EmployeeProfileRepositoryImpl{}
}

func (r *EmployeeProfileRepositoryImpl) Create(db *gorm.DB, profile *models.EmployeeProfile) error {
	var existing models.EmployeeProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return db.Create(profile).Error
}

func (r *EmployeeProfileRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.EmployeeProfile, error) {
	var profile models.EmployeeProfile
	err := db.Preload("Documents").Preload("References").
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *EmployeeProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.EmployeeProfile, error) {
	var profile models.EmployeeProfile
	err := db.Preload("Documents").Preload("References").
		Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *EmployeeProfileRepositoryImpl) FindByUserIDs(db *gorm.DB, userIDs []string) ([]models.EmployeeProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []models.EmployeeProfile
	err := db.Where("user_id IN ?", userIDs).Find(&profiles).Error
	return profiles, err
}

func (r *EmployeeProfileRepositoryImpl) Update(db *gorm.DB, profile *models.EmployeeProfile) error {
	return db.Model(profile).Select(
		"first_name", "last_name", "city", "province", "skills", "languages",
		"experience_years", "salary_min", "salary_max", "employment_type",
		"headline", "visibility", "address", "phone", "email",
	).Updates(profile).Error
}

func (r *EmployeeProfileRepositoryImpl) UpdateScore(db *gorm.DB, profileID string, score int) error {
	result := db.Model(&models.EmployeeProfile{}).Where("id = ?", profileID).
		Update("profile_score", score)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *EmployeeProfileRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", id).Delete(&models.Reference{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.EmployeeProfile{}, "id = ?", id).Error
	})
}

func (r *EmployeeProfileRepositoryImpl) ListVisible(db *gorm.DB, offset, limit int) ([]models.EmployeeProfile, error) {
	var profiles []models.EmployeeProfile
	err := db.Where("visibility = ?", true).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&profiles).Error
	return profiles, err
}

func (r *EmployeeProfileRepositoryImpl) CountVisible(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.EmployeeProfile{}).Where("visibility = ?", true).Count(&count).Error
	return count, err
}

// Document operations

func (r *EmployeeProfileRepositoryImpl) AddDocument(db *gorm.DB, doc *models.Document) error {
	return db.Create(doc).Error
}

func (r *EmployeeProfileRepositoryImpl) FindDocument(db *gorm.DB, documentID string) (*models.Document, error) {
	var doc models.Document
	err := db.First(&doc, "id = ?", documentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *EmployeeProfileRepositoryImpl) ListDocuments(db *gorm.DB, profileID string) ([]models.Document, error) {
	var docs []models.Document
	err := db.Where("profile_id = ?", profileID).Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *EmployeeProfileRepositoryImpl) UpdateDocumentStatus(db *gorm.DB, documentID string, status models.DocumentStatus) error {
	result := db.Model(&models.Document{}).Where("id = ?", documentID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *EmployeeProfileRepositoryImpl) DeleteDocument(db *gorm.DB, profileID, documentID string) error {
	result := db.Where("id = ? AND profile_id = ?", documentID, profileID).Delete(&models.Document{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// Reference operations

func (r *EmployeeProfileRepositoryImpl) AddReference(db *gorm.DB, ref *models.Reference) error {
	return db.Create(ref).Error
}

func (r *EmployeeProfileRepositoryImpl) ListReferences(db *gorm.DB, profileID string) ([]models.Reference, error) {
	var refs []models.Reference
	err := db.Where("profile_id = ?", profileID).Order("created_at ASC").Find(&refs).Error
	return refs, err
}

func (r *EmployeeProfileRepositoryImpl) DeleteReference(db *gorm.DB, profileID, referenceID string) error {
	result := db.Where("id = ? AND profile_id = ?", referenceID, profileID).Delete(&models.Reference{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReferenceNotFound
	}
	return nil
}
