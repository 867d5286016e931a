package handlers

import (
	"net/http"
	"time"

	"kasambahay_backend/internal/config"
	"kasambahay_backend/internal/logger"
	"kasambahay_backend/internal/services"
	"kasambahay_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// CronHandler exposes the maintenance jobs behind a shared bearer
// secret, so an external scheduler can drive them. The process itself
// runs no background loops.
type CronHandler struct {
	*BaseHandler
	syncService         services.SearchSyncService
	searchService       services.SearchService
	subscriptionService services.SubscriptionService
}

func NewCronHandler(
	base *BaseHandler,
	syncService services.SearchSyncService,
	searchService services.SearchService,
	subscriptionService services.SubscriptionService,
) *CronHandler {
	return &CronHandler{
		BaseHandler:         base,
		syncService:         syncService,
		searchService:       searchService,
		subscriptionService: subscriptionService,
	}
}

func (h *CronHandler) RegisterRoutes(r *gin.RouterGroup) {
	cron := r.Group("/cron")
	cron.Use(h.requireCronSecret)
	{
		cron.POST("/reindex", h.Reindex)
		cron.POST("/sync", h.Sync)
		cron.POST("/reconcile-subscriptions", h.ReconcileSubscriptions)
		cron.POST("/cache-warm", h.CacheWarm)
	}
}

func (h *CronHandler) requireCronSecret(c *gin.Context) {
	secret := config.GetConfig().Cron.Secret
	if secret == "" || c.GetHeader("Authorization") != "Bearer "+secret {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid cron credentials"))
		c.Abort()
		return
	}
	c.Next()
}

func (h *CronHandler) Reindex(c *gin.Context) {
	start := time.Now()
	count, err := h.syncService.ReindexAll(c.Request.Context(), h.GetDB(c))
	logger.CronLog("reindex", time.Since(start), err)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"indexed": count})
}

func (h *CronHandler) Sync(c *gin.Context) {
	var req struct {
		UserIDs []string `json:"user_ids" validate:"required,min=1,max=500,dive,uuid4"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	start := time.Now()
	err := h.syncService.SyncProfiles(c.Request.Context(), h.GetDB(c), req.UserIDs)
	logger.CronLog("sync", time.Since(start), err)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": len(req.UserIDs)})
}

func (h *CronHandler) ReconcileSubscriptions(c *gin.Context) {
	start := time.Now()
	count, err := h.subscriptionService.ReconcileLapsed(c.Request.Context(), h.GetDB(c))
	logger.CronLog("reconcile-subscriptions", time.Since(start), err)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expired": count})
}

func (h *CronHandler) CacheWarm(c *gin.Context) {
	start := time.Now()
	err := h.searchService.WarmCache(c.Request.Context())
	logger.CronLog("cache-warm", time.Since(start), err)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"warmed": true})
}
