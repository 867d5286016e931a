package handlers

import (
	"net/http"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/middleware"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SavedSearchHandler struct {
	*BaseHandler
	savedSearchService services.SavedSearchService
}

func NewSavedSearchHandler(base *BaseHandler, savedSearchService services.SavedSearchService) *SavedSearchHandler {
	return &SavedSearchHandler{
		BaseHandler:        base,
		savedSearchService: savedSearchService,
	}
}

func (h *SavedSearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	searches := r.Group("/saved-searches")
	searches.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer))
	{
		searches.POST("", h.Create)
		searches.GET("", h.List)
		searches.PUT("/:id", h.Update)
		searches.DELETE("/:id", h.Delete)
		searches.PUT("/:id/default", h.SetDefault)
	}
}

func (h *SavedSearchHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveSearchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	saved, err := h.savedSearchService.Create(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *SavedSearchHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	searches, err := h.savedSearchService.List(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved_searches": searches})
}

func (h *SavedSearchHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSavedSearchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	saved, err := h.savedSearchService.Update(c.Request.Context(), h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *SavedSearchHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.savedSearchService.Delete(c.Request.Context(), h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SavedSearchHandler) SetDefault(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.savedSearchService.SetDefault(c.Request.Context(), h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"default": c.Param("id")})
}
