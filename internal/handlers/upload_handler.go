package handlers

import (
	"net/http"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/middleware"
	"kasambahay_backend/internal/services"
	"kasambahay_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UploadHandler issues signed URLs; file bytes never pass through here.
type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("/sign", h.SignUpload)
		uploads.GET("/download-url", h.SignDownload)
	}
}

func (h *UploadHandler) SignUpload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SignUploadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.uploadService.SignUpload(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UploadHandler) SignDownload(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing key query parameter"))
		return
	}

	url, err := h.uploadService.SignDownload(c.Request.Context(), key)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"download_url": url})
}
