package services

import (
	"context"
	"time"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/email"
	"kasambahay_backend/internal/logger"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/payments"
	"kasambahay_backend/internal/repositories"
	"kasambahay_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlatformStats is the admin roll-up of subscription state.
type PlatformStats struct {
	TotalSubscriptions int64            `json:"total_subscriptions"`
	ByStatus           map[string]int64 `json:"by_status"`
	VisibleProfiles    int64            `json:"visible_profiles"`
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, req *dto.SubscribeRequest) (*dto.SubscribeResponse, error)
	GetMySubscription(ctx context.Context, db *gorm.DB, userID string) (*models.Subscription, error)
	Cancel(ctx context.Context, db *gorm.DB, userID string) error
	ListBilling(ctx context.Context, db *gorm.DB, userID string, limit int) ([]models.BillingHistory, error)

	// ProcessWebhook applies a verified provider event to subscription
	// state and the billing ledger.
	ProcessWebhook(ctx context.Context, db *gorm.DB, providerName string, payload []byte, signature string) error

	// ReconcileLapsed expires overdue active rows in bulk and notifies
	// the affected employers. Returns how many rows transitioned.
	ReconcileLapsed(ctx context.Context, db *gorm.DB) (int, error)

	GetPlatformStats(ctx context.Context, db *gorm.DB) (*PlatformStats, error)
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	employerRepo     repositories.EmployerProfileRepository
	profileRepo      repositories.EmployeeProfileRepository
	userRepo         repositories.UserRepository
	providers        *payments.Registry
	mailer           email.Sender
	now              func() time.Time
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	employerRepo repositories.EmployerProfileRepository,
	profileRepo repositories.EmployeeProfileRepository,
	userRepo repositories.UserRepository,
	providers *payments.Registry,
	mailer email.Sender,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		employerRepo:     employerRepo,
		profileRepo:      profileRepo,
		userRepo:         userRepo,
		providers:        providers,
		mailer:           mailer,
		now:              time.Now,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, db *gorm.DB, userID string, role models.UserRole, req *dto.SubscribeRequest) (*dto.SubscribeResponse, error) {
	if role != models.UserRoleEmployer {
		return nil, apperrors.ErrInvalidUserRole
	}

	employer, err := s.employerRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrEmployerProfileNotFound {
			return nil, apperrors.ErrInvalidOperation("subscription", "Create an employer profile before subscribing")
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	provider, err := s.providers.Get(req.Provider)
	if err != nil {
		return nil, err
	}

	result, err := provider.Subscribe(ctx, payments.SubscribeParams{
		CustomerEmail: user.Email,
		CustomerID:    employer.StripeCustomerID,
		PlanID:        req.PlanID,
	})
	if err != nil {
		return nil, err
	}

	if result.CustomerID != "" && result.CustomerID != employer.StripeCustomerID {
		if err := s.employerRepo.SetStripeCustomerID(db, employer.ID, result.CustomerID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	sub := &models.Subscription{
		EmployerID: employer.ID,
		Status:     models.SubscriptionStatusPending,
		Provider:   provider.Name(),
		ProviderID: result.SubscriptionID,
		ExpiresAt:  result.ExpiresAt,
	}
	if err := s.subscriptionRepo.Create(db, sub); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.subscriptionRepo.AddBillingEvent(db, &models.BillingHistory{
		EmployerID:     employer.ID,
		SubscriptionID: sub.ID,
		Event:          "subscription_created",
		Currency:       "PHP",
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SubscribeResponse{
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
		ClientSecret:   result.ClientSecret,
		RedirectURL:    result.RedirectURL,
	}, nil
}

func (s *subscriptionService) GetMySubscription(ctx context.Context, db *gorm.DB, userID string) (*models.Subscription, error) {
	employer, err := s.employerRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrEmployerProfileNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	sub, err := s.subscriptionRepo.FindLatestByEmployer(db, employer.ID)
	if err != nil {
		if err == repositories.ErrSubscriptionNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return sub, nil
}

func (s *subscriptionService) Cancel(ctx context.Context, db *gorm.DB, userID string) error {
	employer, err := s.employerRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrEmployerProfileNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	sub, err := s.subscriptionRepo.FindLatestByEmployer(db, employer.ID)
	if err != nil {
		if err == repositories.ErrSubscriptionNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if sub.Status == models.SubscriptionStatusCanceled || sub.Status == models.SubscriptionStatusExpired {
		return apperrors.ErrInvalidOperation("subscription", "Subscription is not active")
	}

	provider, err := s.providers.Get(sub.Provider)
	if err != nil {
		return err
	}
	if sub.ProviderID != "" {
		if err := provider.Cancel(ctx, sub.ProviderID); err != nil {
			return err
		}
	}

	if err := s.subscriptionRepo.UpdateStatus(db, sub.ID, models.SubscriptionStatusCanceled); err != nil {
		return apperrors.InternalError(err)
	}
	return s.recordEvent(db, employer.ID, sub.ID, "subscription_canceled", 0, "PHP", nil)
}

func (s *subscriptionService) ListBilling(ctx context.Context, db *gorm.DB, userID string, limit int) ([]models.BillingHistory, error) {
	employer, err := s.employerRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrEmployerProfileNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	events, err := s.subscriptionRepo.ListBillingByEmployer(db, employer.ID, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return events, nil
}

func (s *subscriptionService) ProcessWebhook(ctx context.Context, db *gorm.DB, providerName string, payload []byte, signature string) error {
	provider, err := s.providers.Get(providerName)
	if err != nil {
		return err
	}

	event, err := provider.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}
	if event == nil {
		// Verified but uninteresting event type.
		return nil
	}

	sub, err := s.subscriptionRepo.FindByProviderID(db, event.SubscriptionID)
	if err != nil {
		if err == repositories.ErrSubscriptionNotFound {
			logger.CtxWarn(ctx, "webhook for unknown subscription",
				"provider", providerName, "provider_subscription_id", event.SubscriptionID)
			return nil
		}
		return apperrors.InternalError(err)
	}

	switch event.Kind {
	case payments.EventPaymentSucceeded:
		expiresAt := sub.ExpiresAt
		if !event.PeriodEnd.IsZero() {
			expiresAt = event.PeriodEnd
		} else if !expiresAt.After(s.now()) {
			expiresAt = s.now().AddDate(0, 1, 0)
		}
		if err := s.subscriptionRepo.UpdateStatusAndExpiry(db, sub.ID, models.SubscriptionStatusActive, expiresAt); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.recordEvent(db, sub.EmployerID, sub.ID, "payment_succeeded", event.AmountCentavos, event.Currency, event.Raw); err != nil {
			return err
		}
		s.notifyReceipt(ctx, db, sub.EmployerID, event.AmountCentavos, event.Currency)
		return nil

	case payments.EventPaymentFailed:
		if err := s.subscriptionRepo.UpdateStatus(db, sub.ID, models.SubscriptionStatusPastDue); err != nil {
			return apperrors.InternalError(err)
		}
		return s.recordEvent(db, sub.EmployerID, sub.ID, "payment_failed", event.AmountCentavos, event.Currency, event.Raw)

	case payments.EventSubscriptionUpdated:
		if !event.PeriodEnd.IsZero() {
			if err := s.subscriptionRepo.UpdateStatusAndExpiry(db, sub.ID, sub.Status, event.PeriodEnd); err != nil {
				return apperrors.InternalError(err)
			}
		}
		return s.recordEvent(db, sub.EmployerID, sub.ID, "subscription_updated", 0, event.Currency, event.Raw)

	case payments.EventSubscriptionCanceled:
		if err := s.subscriptionRepo.UpdateStatus(db, sub.ID, models.SubscriptionStatusCanceled); err != nil {
			return apperrors.InternalError(err)
		}
		return s.recordEvent(db, sub.EmployerID, sub.ID, "subscription_canceled", 0, event.Currency, event.Raw)
	}

	return nil
}

func (s *subscriptionService) ReconcileLapsed(ctx context.Context, db *gorm.DB) (int, error) {
	const batchSize = 200
	total := 0
	for {
		lapsed, err := s.subscriptionRepo.FindLapsedActive(db, s.now(), batchSize)
		if err != nil {
			return total, apperrors.InternalError(err)
		}
		if len(lapsed) == 0 {
			return total, nil
		}
		for i := range lapsed {
			sub := &lapsed[i]
			if err := s.subscriptionRepo.UpdateStatus(db, sub.ID, models.SubscriptionStatusExpired); err != nil {
				return total, apperrors.InternalError(err)
			}
			total++
			s.notifyExpiry(ctx, db, sub.EmployerID, sub.ExpiresAt)
		}
		if len(lapsed) < batchSize {
			return total, nil
		}
	}
}

func (s *subscriptionService) GetPlatformStats(ctx context.Context, db *gorm.DB) (*PlatformStats, error) {
	stats := &PlatformStats{ByStatus: make(map[string]int64)}

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := db.Model(&models.Subscription{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
		stats.TotalSubscriptions += row.Count
	}

	visible, err := s.profileRepo.CountVisible(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.VisibleProfiles = visible

	return stats, nil
}

func (s *subscriptionService) recordEvent(db *gorm.DB, employerID, subscriptionID, event string, amount int64, currency string, payload []byte) error {
	if currency == "" {
		currency = "PHP"
	}
	entry := &models.BillingHistory{
		EmployerID:     employerID,
		SubscriptionID: subscriptionID,
		Event:          event,
		AmountCentavos: amount,
		Currency:       currency,
	}
	if len(payload) > 0 {
		entry.Payload = datatypes.JSON(payload)
	}
	if err := s.subscriptionRepo.AddBillingEvent(db, entry); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Billing emails are best effort.

func (s *subscriptionService) notifyReceipt(ctx context.Context, db *gorm.DB, employerID string, amount int64, currency string) {
	addr := s.employerEmail(db, employerID)
	if addr == "" || s.mailer == nil {
		return
	}
	if err := s.mailer.SendPaymentReceipt(addr, amount, currency, s.now()); err != nil {
		logger.CtxWarn(ctx, "failed to send payment receipt", "employer_id", employerID, "error", err.Error())
	}
}

func (s *subscriptionService) notifyExpiry(ctx context.Context, db *gorm.DB, employerID string, expiredAt time.Time) {
	addr := s.employerEmail(db, employerID)
	if addr == "" || s.mailer == nil {
		return
	}
	if err := s.mailer.SendSubscriptionExpired(addr, expiredAt); err != nil {
		logger.CtxWarn(ctx, "failed to send expiry notice", "employer_id", employerID, "error", err.Error())
	}
}

func (s *subscriptionService) employerEmail(db *gorm.DB, employerID string) string {
	employer, err := s.employerRepo.FindByID(db, employerID)
	if err != nil {
		return ""
	}
	user, err := s.userRepo.FindByID(db, employer.UserID)
	if err != nil {
		return ""
	}
	return user.Email
}
