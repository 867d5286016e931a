package handlers

import (
	"net/http"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/middleware"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

func (h *InterviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	interviews := r.Group("/interviews")
	interviews.Use(middleware.AuthMiddleware())
	{
		interviews.POST("", middleware.RequireRoles(models.UserRoleEmployer), h.Schedule)
		interviews.GET("", h.List)
		interviews.PUT("/:id", middleware.RequireRoles(models.UserRoleEmployer), h.Update)
		interviews.DELETE("/:id", h.Cancel)
	}
}

func (h *InterviewHandler) Schedule(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleInterviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	interview, err := h.interviewService.Schedule(
		c.Request.Context(), h.GetDB(c), userID, middleware.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interview)
}

func (h *InterviewHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	interviews, err := h.interviewService.List(
		c.Request.Context(), h.GetDB(c), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": interviews})
}

func (h *InterviewHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInterviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	interview, err := h.interviewService.Update(
		c.Request.Context(), h.GetDB(c), userID, middleware.GetUserRole(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) Cancel(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.interviewService.Cancel(c.Request.Context(), h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
