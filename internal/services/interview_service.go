package services

import (
	"context"
	"time"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/repositories"
	"kasambahay_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type InterviewService interface {
	Schedule(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, req *dto.ScheduleInterviewRequest) (*models.Interview, error)
	Update(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, interviewID string, req *dto.UpdateInterviewRequest) (*models.Interview, error)
	Cancel(ctx context.Context, db *gorm.DB, userID string, interviewID string) error
	List(ctx context.Context, db *gorm.DB, userID string, role models.UserRole) ([]models.Interview, error)
}

type interviewService struct {
	interviewRepo repositories.InterviewRepository
	profileRepo   repositories.EmployeeProfileRepository
	access        AccessService
	now           func() time.Time
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	profileRepo repositories.EmployeeProfileRepository,
	access AccessService,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		profileRepo:   profileRepo,
		access:        access,
		now:           time.Now,
	}
}

func (s *interviewService) Schedule(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	// Input validation comes before the paywall: a past start time is a
	// 400 regardless of subscription state.
	if !req.StartsAt.After(s.now()) {
		return nil, apperrors.ValidationError(map[string]string{
			"starts_at": "Must be in the future",
		})
	}

	if _, err := s.access.RequireActiveSubscription(db, userID, role, ActionInterview); err != nil {
		return nil, err
	}

	if _, err := s.profileRepo.FindByUserID(db, req.WorkerID); err != nil {
		if err == repositories.ErrProfileNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	interview := &models.Interview{
		EmployerID: userID,
		WorkerID:   req.WorkerID,
		StartsAt:   req.StartsAt,
		Status:     models.InterviewStatusScheduled,
		Notes:      req.Notes,
	}
	if err := s.interviewRepo.Create(db, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interview, nil
}

func (s *interviewService) Update(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, interviewID string, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	interview, err := s.ownedInterview(db, userID, interviewID)
	if err != nil {
		return nil, err
	}

	// Rescheduling counts as a new interview action; status-only edits
	// (completing, canceling) stay available in read-only mode.
	if req.StartsAt != nil {
		if !req.StartsAt.After(s.now()) {
			return nil, apperrors.ValidationError(map[string]string{
				"starts_at": "Must be in the future",
			})
		}
		if _, err := s.access.RequireActiveSubscription(db, userID, role, ActionInterview); err != nil {
			return nil, err
		}
		interview.StartsAt = *req.StartsAt
	}
	if req.Status != nil {
		interview.Status = models.InterviewStatus(*req.Status)
	}
	if req.Notes != nil {
		interview.Notes = *req.Notes
	}

	if err := s.interviewRepo.Update(db, interview); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interview, nil
}

func (s *interviewService) Cancel(ctx context.Context, db *gorm.DB, userID string, interviewID string) error {
	interview, err := s.interviewRepo.FindByID(db, interviewID)
	if err != nil {
		if err == repositories.ErrInterviewNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	// Either side may cancel.
	if interview.EmployerID != userID && interview.WorkerID != userID {
		return apperrors.ErrInsufficientPermissions
	}

	interview.Status = models.InterviewStatusCanceled
	if err := s.interviewRepo.Update(db, interview); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *interviewService) List(ctx context.Context, db *gorm.DB, userID string, role models.UserRole) ([]models.Interview, error) {
	var (
		interviews []models.Interview
		err        error
	)
	switch role {
	case models.UserRoleEmployer:
		interviews, err = s.interviewRepo.ListByEmployer(db, userID)
	case models.UserRoleWorker:
		interviews, err = s.interviewRepo.ListByWorker(db, userID)
	default:
		return nil, apperrors.ErrInvalidUserRole
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interviews, nil
}

func (s *interviewService) ownedInterview(db *gorm.DB, userID, interviewID string) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(db, interviewID)
	if err != nil {
		if err == repositories.ErrInterviewNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if interview.EmployerID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return interview, nil
}
