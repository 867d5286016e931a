package services

import (
	"kasambahay_backend/internal/cache"
	"kasambahay_backend/internal/config"
	"kasambahay_backend/internal/email"
	"kasambahay_backend/internal/payments"
	"kasambahay_backend/internal/repositories"
	"kasambahay_backend/internal/search"
	"kasambahay_backend/internal/storage"
)

// ServiceContainer wires every service once at boot; handlers receive it
// whole and pick what they need.
type ServiceContainer struct {
	Access          AccessService
	EmployeeProfile EmployeeProfileService
	EmployerProfile EmployerProfileService
	Chat            ChatService
	Interview       InterviewService
	SavedSearch     SavedSearchService
	SearchSync      SearchSyncService
	Search          SearchService
	Subscription    SubscriptionService
	Upload          UploadService
}

// Dependencies are the external clients the services sit on.
type Dependencies struct {
	Config    *config.Config
	Index     search.Index
	Cache     cache.Cache
	Storage   storage.Storage
	Providers *payments.Registry
	Mailer    email.Sender
}

func NewServiceContainer(deps Dependencies) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewEmployeeProfileRepository()
	employerRepo := repositories.NewEmployerProfileRepository()
	subscriptionRepo := repositories.NewSubscriptionRepository()
	chatRepo := repositories.NewChatRepository()
	interviewRepo := repositories.NewInterviewRepository()
	savedSearchRepo := repositories.NewSavedSearchRepository()

	access := NewAccessService(employerRepo, subscriptionRepo)
	searchSync := NewSearchSyncService(profileRepo, deps.Index, deps.Cache)

	return &ServiceContainer{
		Access:          access,
		EmployeeProfile: NewEmployeeProfileService(profileRepo, access, searchSync),
		EmployerProfile: NewEmployerProfileService(employerRepo),
		Chat:            NewChatService(chatRepo, profileRepo, employerRepo, access),
		Interview:       NewInterviewService(interviewRepo, profileRepo, access),
		SavedSearch:     NewSavedSearchService(savedSearchRepo, employerRepo),
		SearchSync:      searchSync,
		Search:          NewSearchService(deps.Index, deps.Cache),
		Subscription:    NewSubscriptionService(subscriptionRepo, employerRepo, profileRepo, userRepo, deps.Providers, deps.Mailer),
		Upload:          NewUploadService(deps.Storage, deps.Config),
	}
}
