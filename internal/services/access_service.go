package services

import (
	"time"

	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/repositories"
	"kasambahay_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AccessAction classifies the operation being gated. Message and interview
// actions degrade to read-only mode on a lapsed subscription; general
// actions report plain expiry.
type AccessAction string

const (
	ActionGeneral   AccessAction = "general"
	ActionMessage   AccessAction = "message"
	ActionInterview AccessAction = "interview"
)

// AccessService is the subscription paywall. Every employer-only premium
// operation funnels through RequireActiveSubscription before touching
// domain state.
type AccessService interface {
	// RequireActiveSubscription returns the employer profile when access
	// is granted, or a typed AppError describing the denial.
	RequireActiveSubscription(db *gorm.DB, userID string, role models.UserRole, action AccessAction) (*models.EmployerProfile, error)

	// HasActiveSubscription reports gate status without returning an
	// error; used to shape private profile fields.
	HasActiveSubscription(db *gorm.DB, userID string, role models.UserRole) bool

	// MarkExpiredIfLapsed writes the active→expired transition when the
	// row's expiry has passed, and returns the row as it now stands.
	MarkExpiredIfLapsed(db *gorm.DB, sub *models.Subscription) (*models.Subscription, error)
}

type accessService struct {
	employerRepo     repositories.EmployerProfileRepository
	subscriptionRepo repositories.SubscriptionRepository
	now              func() time.Time
}

func NewAccessService(
	employerRepo repositories.EmployerProfileRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) AccessService {
	return &accessService{
		employerRepo:     employerRepo,
		subscriptionRepo: subscriptionRepo,
		now:              time.Now,
	}
}

func (s *accessService) RequireActiveSubscription(db *gorm.DB, userID string, role models.UserRole, action AccessAction) (*models.EmployerProfile, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("Authentication required")
	}
	if role != models.UserRoleEmployer {
		return nil, apperrors.ErrInvalidUserRole
	}

	employer, err := s.employerRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrEmployerProfileNotFound {
			// No profile means the employer never reached billing.
			return nil, apperrors.ErrSubscriptionRequired
		}
		return nil, apperrors.InternalError(err)
	}

	sub, err := s.subscriptionRepo.FindLatestByEmployer(db, employer.ID)
	if err != nil {
		if err == repositories.ErrSubscriptionNotFound {
			return nil, apperrors.ErrSubscriptionRequired
		}
		return nil, apperrors.InternalError(err)
	}

	sub, err = s.MarkExpiredIfLapsed(db, sub)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if sub.Status == models.SubscriptionStatusActive {
		return employer, nil
	}

	// A row exists, so this is a lapsed subscriber, never a stranger.
	switch action {
	case ActionMessage, ActionInterview:
		return nil, apperrors.ErrReadOnlyMode
	default:
		return nil, apperrors.ErrSubscriptionExpired
	}
}

func (s *accessService) HasActiveSubscription(db *gorm.DB, userID string, role models.UserRole) bool {
	if role == models.UserRoleAdmin {
		return true
	}
	_, err := s.RequireActiveSubscription(db, userID, role, ActionGeneral)
	return err == nil
}

func (s *accessService) MarkExpiredIfLapsed(db *gorm.DB, sub *models.Subscription) (*models.Subscription, error) {
	if sub.Status != models.SubscriptionStatusActive || sub.ExpiresAt.After(s.now()) {
		return sub, nil
	}
	if err := s.subscriptionRepo.UpdateStatus(db, sub.ID, models.SubscriptionStatusExpired); err != nil {
		return nil, err
	}
	updated := *sub
	updated.Status = models.SubscriptionStatusExpired
	return &updated, nil
}
