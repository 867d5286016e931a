package handlers

import (
	"net/http"

	"kasambahay_backend/internal/cache"
	"kasambahay_backend/internal/config"
	"kasambahay_backend/internal/search"
	"kasambahay_backend/internal/seo"
	"kasambahay_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SEOHandler serves the metadata a prerenderer needs for public worker
// pages, plus robots.txt and the health probe.
type SEOHandler struct {
	*BaseHandler
	profileService services.EmployeeProfileService
	cache          cache.Cache
}

func NewSEOHandler(base *BaseHandler, profileService services.EmployeeProfileService, c cache.Cache) *SEOHandler {
	return &SEOHandler{
		BaseHandler:    base,
		profileService: profileService,
		cache:          c,
	}
}

func (h *SEOHandler) RegisterRoutes(r *gin.RouterGroup) {
	seoGroup := r.Group("/seo")
	{
		seoGroup.GET("/workers/:slug", h.WorkerPage)
	}
	r.GET("/health", h.Health)
}

// RegisterRootRoutes attaches the paths that must live at the site root.
func (h *SEOHandler) RegisterRootRoutes(r *gin.Engine) {
	r.GET("/robots.txt", h.RobotsTxt)
}

func (h *SEOHandler) WorkerPage(c *gin.Context) {
	cfg := config.GetConfig()

	// Anonymous viewer: the page only ever exposes public fields.
	profile, err := h.profileService.GetBySlug(
		c.Request.Context(), h.GetDB(c), c.Param("slug"), services.Viewer{})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	doc := search.NewWorkerDocument(profile)
	c.JSON(http.StatusOK, gin.H{
		"profile": doc,
		"meta":    seo.ProfileMeta(&doc, cfg.SEO.SiteURL, cfg.SEO.SiteName),
		"json_ld": seo.PersonJSONLD(&doc, cfg.SEO.SiteURL),
	})
}

func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	cfg := config.GetConfig()
	c.String(http.StatusOK, seo.RobotsTxt(cfg.SEO.SiteURL))
}

func (h *SEOHandler) Health(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{"db": "ok", "cache": "ok"}

	sqlDB, err := h.GetDB(c).DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		checks["db"] = "unreachable"
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		if err := h.cache.Ping(c.Request.Context()); err != nil {
			checks["cache"] = "unreachable"
		}
	}

	c.JSON(status, gin.H{"status": httpStatusWord(status), "checks": checks})
}

func httpStatusWord(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
