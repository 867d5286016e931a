package handlers

import (
	"net/http"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/middleware"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/services"
	"kasambahay_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type EmployeeProfileHandler struct {
	*BaseHandler
	profileService services.EmployeeProfileService
}

func NewEmployeeProfileHandler(base *BaseHandler, profileService services.EmployeeProfileService) *EmployeeProfileHandler {
	return &EmployeeProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *EmployeeProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/employee-profiles")
	{
		// Public read paths shape private fields per viewer.
		profiles.GET("/:id", middleware.OptionalAuthMiddleware(), h.GetProfile)

		own := profiles.Group("")
		own.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleWorker))
		{
			own.POST("", h.CreateProfile)
			own.GET("/me", h.GetOwnProfile)
			own.PUT("/me", h.UpdateProfile)
			own.DELETE("/me", h.DeleteProfile)

			own.POST("/me/references", h.AddReference)
			own.DELETE("/me/references/:refId", h.DeleteReference)

			own.POST("/me/documents", h.AttachDocument)
			own.DELETE("/me/documents/:docId", h.DeleteDocument)
		}
	}

	admin := r.Group("/admin/documents")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.PUT("/:docId/status", h.SetDocumentStatus)
	}
}

func (h *EmployeeProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEmployeeProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *EmployeeProfileHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetOwn(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *EmployeeProfileHandler) GetProfile(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing profile id"))
		return
	}

	profile, err := h.profileService.GetByID(c.Request.Context(), h.GetDB(c), id, h.Viewer(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *EmployeeProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *EmployeeProfileHandler) DeleteProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EmployeeProfileHandler) AddReference(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddReferenceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ref, err := h.profileService.AddReference(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

func (h *EmployeeProfileHandler) DeleteReference(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteReference(c.Request.Context(), h.GetDB(c), userID, c.Param("refId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EmployeeProfileHandler) AttachDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AttachDocumentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	doc, err := h.profileService.AttachDocument(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *EmployeeProfileHandler) DeleteDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteDocument(c.Request.Context(), h.GetDB(c), userID, c.Param("docId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EmployeeProfileHandler) SetDocumentStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" validate:"required,oneof=pending verified rejected"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.profileService.SetDocumentStatus(
		c.Request.Context(), h.GetDB(c), c.Param("docId"), models.DocumentStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
