package handlers

import (
	"net/http"

	"kasambahay_backend/internal/dto"
	"kasambahay_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves the public candidate search. No auth: search
// results only ever contain index-public fields.
type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	search := r.Group("/search")
	{
		search.GET("/workers", h.SearchWorkers)
		search.GET("/facets", h.Facets)
		search.GET("/suggestions", h.Suggest)
	}
}

func (h *SearchHandler) SearchWorkers(c *gin.Context) {
	var query dto.SearchWorkersQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	result, err := h.searchService.SearchWorkers(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SearchHandler) Facets(c *gin.Context) {
	facets, err := h.searchService.Facets(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"facets": facets})
}

func (h *SearchHandler) Suggest(c *gin.Context) {
	var query dto.SuggestQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	suggestions, err := h.searchService.Suggest(c.Request.Context(), query.Q, query.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
