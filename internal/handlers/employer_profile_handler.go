package handlers

import (
	"net/http"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/middleware"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type EmployerProfileHandler struct {
	*BaseHandler
	employerService services.EmployerProfileService
}

func NewEmployerProfileHandler(base *BaseHandler, employerService services.EmployerProfileService) *EmployerProfileHandler {
	return &EmployerProfileHandler{
		BaseHandler:     base,
		employerService: employerService,
	}
}

func (h *EmployerProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/employer-profiles")
	profiles.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer))
	{
		profiles.PUT("/me", h.UpsertProfile)
		profiles.GET("/me", h.GetOwnProfile)
	}
}

func (h *EmployerProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertEmployerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.employerService.Upsert(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *EmployerProfileHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.employerService.GetOwn(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
