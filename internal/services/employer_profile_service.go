package services

import (
	"context"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/repositories"
	"kasambahay_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type EmployerProfileService interface {
	// Upsert creates the employer profile on first save, updates after.
	Upsert(ctx context.Context, db *gorm.DB, userID string, req *dto.UpsertEmployerProfileRequest) (*models.EmployerProfile, error)
	GetOwn(ctx context.Context, db *gorm.DB, userID string) (*models.EmployerProfile, error)
}

type employerProfileService struct {
	employerRepo repositories.EmployerProfileRepository
}

func NewEmployerProfileService(employerRepo repositories.EmployerProfileRepository) EmployerProfileService {
	return &employerProfileService{employerRepo: employerRepo}
}

func (s *employerProfileService) Upsert(ctx context.Context, db *gorm.DB, userID string, req *dto.UpsertEmployerProfileRequest) (*models.EmployerProfile, error) {
	profile, err := s.employerRepo.FindByUserID(db, userID)
	if err != nil && err != repositories.ErrEmployerProfileNotFound {
		return nil, apperrors.InternalError(err)
	}

	if profile == nil {
		profile = &models.EmployerProfile{
			UserID:        userID,
			DisplayName:   req.DisplayName,
			City:          req.City,
			Province:      req.Province,
			Phone:         req.Phone,
			HouseholdSize: req.HouseholdSize,
		}
		if err := s.employerRepo.Create(db, profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	}

	profile.DisplayName = req.DisplayName
	profile.City = req.City
	profile.Province = req.Province
	profile.Phone = req.Phone
	profile.HouseholdSize = req.HouseholdSize
	if err := s.employerRepo.Update(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *employerProfileService) GetOwn(ctx context.Context, db *gorm.DB, userID string) (*models.EmployerProfile, error) {
	profile, err := s.employerRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrEmployerProfileNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
