package services

import (
	"context"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/repositories"
	"kasambahay_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SavedSearchService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.SaveSearchRequest) (*models.SavedSearch, error)
	List(ctx context.Context, db *gorm.DB, userID string) ([]models.SavedSearch, error)
	Update(ctx context.Context, db *gorm.DB, userID, searchID string, req *dto.UpdateSavedSearchRequest) (*models.SavedSearch, error)
	Delete(ctx context.Context, db *gorm.DB, userID, searchID string) error
	SetDefault(ctx context.Context, db *gorm.DB, userID, searchID string) error
}

type savedSearchService struct {
	searchRepo   repositories.SavedSearchRepository
	employerRepo repositories.EmployerProfileRepository
}

func NewSavedSearchService(
	searchRepo repositories.SavedSearchRepository,
	employerRepo repositories.EmployerProfileRepository,
) SavedSearchService {
	return &savedSearchService{
		searchRepo:   searchRepo,
		employerRepo: employerRepo,
	}
}

func (s *savedSearchService) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.SaveSearchRequest) (*models.SavedSearch, error) {
	employerID, err := s.employerID(db, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.searchRepo.ListByEmployer(db, employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, sv := range existing {
		if sv.Name == req.Name {
			return nil, apperrors.ErrConflict(nil, "saved_search", "A saved search with this name already exists")
		}
	}

	search := &models.SavedSearch{
		EmployerID: employerID,
		Name:       req.Name,
		Filters:    datatypes.JSON(req.Filters),
		IsDefault:  req.IsDefault,
	}
	if err := s.searchRepo.Create(db, search); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return search, nil
}

func (s *savedSearchService) List(ctx context.Context, db *gorm.DB, userID string) ([]models.SavedSearch, error) {
	employerID, err := s.employerID(db, userID)
	if err != nil {
		return nil, err
	}
	searches, err := s.searchRepo.ListByEmployer(db, employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return searches, nil
}

func (s *savedSearchService) Update(ctx context.Context, db *gorm.DB, userID, searchID string, req *dto.UpdateSavedSearchRequest) (*models.SavedSearch, error) {
	search, err := s.ownedSearch(db, userID, searchID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		search.Name = *req.Name
	}
	if req.Filters != nil {
		search.Filters = datatypes.JSON(req.Filters)
	}
	if req.IsDefault != nil {
		search.IsDefault = *req.IsDefault
	}

	if err := s.searchRepo.Update(db, search); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return search, nil
}

func (s *savedSearchService) Delete(ctx context.Context, db *gorm.DB, userID, searchID string) error {
	employerID, err := s.employerID(db, userID)
	if err != nil {
		return err
	}
	if err := s.searchRepo.Delete(db, employerID, searchID); err != nil {
		if err == repositories.ErrSavedSearchNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *savedSearchService) SetDefault(ctx context.Context, db *gorm.DB, userID, searchID string) error {
	employerID, err := s.employerID(db, userID)
	if err != nil {
		return err
	}
	if err := s.searchRepo.SetDefault(db, employerID, searchID); err != nil {
		if err == repositories.ErrSavedSearchNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *savedSearchService) employerID(db *gorm.DB, userID string) (string, error) {
	employer, err := s.employerRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrEmployerProfileNotFound {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.InternalError(err)
	}
	return employer.ID, nil
}

func (s *savedSearchService) ownedSearch(db *gorm.DB, userID, searchID string) (*models.SavedSearch, error) {
	employerID, err := s.employerID(db, userID)
	if err != nil {
		return nil, err
	}
	search, err := s.searchRepo.FindByID(db, searchID)
	if err != nil {
		if err == repositories.ErrSavedSearchNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if search.EmployerID != employerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return search, nil
}
