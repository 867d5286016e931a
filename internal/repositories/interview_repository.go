package repositories

import (
	"errors"

	"kasambahay_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	Create(db *gorm.DB, interview *models.Interview) error
	FindByID(db *gorm.DB, id string) (*models.Interview, error)
	Update(db *gorm.DB, interview *models.Interview) error
	ListByEmployer(db *gorm.DB, employerID string) ([]models.Interview, error)
	ListByWorker(db *gorm.DB, workerID string) ([]models.Interview, error)
}

type InterviewRepositoryImpl struct{}

func NewInterviewRepository() InterviewRepository {
	return &InterviewRepositoryImpl{}
}

func (r *InterviewRepositoryImpl) Create(db *gorm.DB, interview *models.Interview) error {
	return db.Create(interview).Error
}

func (r *InterviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Interview, error) {
	var interview models.Interview
	err := db.First(&interview, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepositoryImpl) Update(db *gorm.DB, interview *models.Interview) error {
	return db.Model(interview).Select("starts_at", "status", "notes").Updates(interview).Error
}

func (r *InterviewRepositoryImpl) ListByEmployer(db *gorm.DB, employerID string) ([]models.Interview, error) {
	var interviews []models.Interview
	err := db.Where("employer_id = ?", employerID).Order("starts_at ASC").Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepositoryImpl) ListByWorker(db *gorm.DB, workerID string) ([]models.Interview, error) {
	var interviews []models.Interview
	err := db.Where("worker_id = ?", workerID).Order("starts_at ASC").Find(&interviews).Error
	return interviews, err
}
