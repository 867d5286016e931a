package handlers

import (
	"kasambahay_backend/internal/cache"
	"kasambahay_backend/internal/services"
	"kasambahay_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	EmployeeProfileHandler *EmployeeProfileHandler
	EmployerProfileHandler *EmployerProfileHandler
	ChatHandler            *ChatHandler
	InterviewHandler       *InterviewHandler
	SavedSearchHandler     *SavedSearchHandler
	SearchHandler          *SearchHandler
	SubscriptionHandler    *SubscriptionHandler
	UploadHandler          *UploadHandler
	CronHandler            *CronHandler
	SEOHandler             *SEOHandler
}

func NewAppHandlers(v *validator.Validator, sc *services.ServiceContainer, c cache.Cache) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		EmployeeProfileHandler: NewEmployeeProfileHandler(base, sc.EmployeeProfile),
		EmployerProfileHandler: NewEmployerProfileHandler(base, sc.EmployerProfile),
		ChatHandler:            NewChatHandler(base, sc.Chat),
		InterviewHandler:       NewInterviewHandler(base, sc.Interview),
		SavedSearchHandler:     NewSavedSearchHandler(base, sc.SavedSearch),
		SearchHandler:          NewSearchHandler(base, sc.Search),
		SubscriptionHandler:    NewSubscriptionHandler(base, sc.Subscription),
		UploadHandler:          NewUploadHandler(base, sc.Upload),
		CronHandler:            NewCronHandler(base, sc.SearchSync, sc.Search, sc.Subscription),
		SEOHandler:             NewSEOHandler(base, sc.EmployeeProfile, c),
	}
}
