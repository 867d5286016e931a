package handlers

import (
	"net/http"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/middleware"
	"kasambahay_backend/internal/models"
	"kasambahay_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
	}
}

func (h *ChatHandler) RegisterRoutes(r *gin.RouterGroup) {
	chats := r.Group("/chats")
	chats.Use(middleware.AuthMiddleware())
	{
		chats.POST("", middleware.RequireRoles(models.UserRoleEmployer), h.StartChat)
		chats.GET("", h.ListChats)
		chats.GET("/:id/messages", h.GetMessages)
		chats.POST("/:id/messages", h.SendMessage)
	}
}

func (h *ChatHandler) StartChat(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.StartChatRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	chat, err := h.chatService.StartChat(c.Request.Context(), h.GetDB(c), userID, middleware.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chat)
}

func (h *ChatHandler) ListChats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	chats, err := h.chatService.ListChats(c.Request.Context(), h.GetDB(c), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	msgs, err := h.chatService.GetMessages(
		c.Request.Context(), h.GetDB(c), userID, middleware.GetUserRole(c),
		c.Param("id"), (page-1)*pageSize, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs, "page": page, "page_size": pageSize})
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	msg, err := h.chatService.SendMessage(
		c.Request.Context(), h.GetDB(c), userID, middleware.GetUserRole(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
