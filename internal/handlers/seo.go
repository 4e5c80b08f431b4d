// internal/handlers/seo.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/rentall-backend/internal/services"
	"github.com/javajoker/rentall-backend/internal/utils"
)

type SEOHandler struct {
	sitemapService *services.SitemapService
}

func NewSEOHandler(sitemapService *services.SitemapService) *SEOHandler {
	return &SEOHandler{sitemapService: sitemapService}
}

// GET /sitemap.xml
func (h *SEOHandler) Sitemap(c *gin.Context) {
	body, err := h.sitemapService.XML(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// GET /robots.txt
func (h *SEOHandler) Robots(c *gin.Context) {
	c.String(http.StatusOK, h.sitemapService.Robots())
}
