package routes

import (
	"kasambahay_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole HTTP surface: the /api/v1 group plus
// the root-level SEO paths.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.EmployeeProfileHandler.RegisterRoutes(api)
		appHandlers.EmployerProfileHandler.RegisterRoutes(api)
		appHandlers.ChatHandler.RegisterRoutes(api)
		appHandlers.InterviewHandler.RegisterRoutes(api)
		appHandlers.SavedSearchHandler.RegisterRoutes(api)
		appHandlers.SearchHandler.RegisterRoutes(api)
		appHandlers.SubscriptionHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
		appHandlers.CronHandler.RegisterRoutes(api)
		appHandlers.SEOHandler.RegisterRoutes(api)
	}

	appHandlers.SEOHandler.RegisterRootRoutes(ginRouter)
}
