package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"evervow/services/wedding"
)

// SiteHandler serves the internal rendering paths the tenant router
// rewrites to. Template rendering itself lives in the frontend; these
// endpoints supply the wedding's public payload for a page.
type SiteHandler struct {
	Weddings wedding.WeddingService
}

// NewSiteHandler creates a new site handler.
func NewSiteHandler(weddings wedding.WeddingService) *SiteHandler {
	return &SiteHandler{Weddings: weddings}
}

// TenantSite handles GET /tenant/*rest, the rewrite target for
// subdomain-hosted wedding sites.
func (h *SiteHandler) TenantSite(c *gin.Context) {
	subdomain, page := splitSitePath(c.Param("rest"))
	if subdomain == "" {
		h.NotFound(c)
		return
	}
	w, err := h.Weddings.GetBySubdomain(subdomain)
	if err != nil || w == nil {
		h.NotFound(c)
		return
	}
	h.renderSite(c, w.ID, page)
}

// CustomDomainSite handles GET /site/*rest, the rewrite target for
// custom-domain wedding sites.
func (h *SiteHandler) CustomDomainSite(c *gin.Context) {
	domain, page := splitSitePath(c.Param("rest"))
	if domain == "" {
		h.NotFound(c)
		return
	}
	// Resolve through the same lookup the router used so a stale rewrite
	// cannot leak another tenant's site.
	lookups := h.Weddings.RouterLookups()
	id, err := lookups.WeddingIDByApexDomain(c.Request.Context(), domain)
	if err != nil || id == "" {
		h.NotFound(c)
		return
	}
	h.renderSite(c, id, page)
}

// NotFound handles /404 and any unmatched route.
func (h *SiteHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
}

func (h *SiteHandler) renderSite(c *gin.Context, weddingID, page string) {
	w, err := h.Weddings.GetWedding(weddingID)
	if err != nil {
		h.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"partnerOne": w.PartnerOne,
		"partnerTwo": w.PartnerTwo,
		"date":       w.Date,
		"venue":      w.Venue,
		"template":   w.Template,
		"page":       page,
	})
}

// splitSitePath breaks a rewrite catch-all ("/acme/photos") into the
// tenant key and the page path.
func splitSitePath(rest string) (key, page string) {
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" {
		return "", ""
	}
	if i := strings.Index(rest, "/"); i != -1 {
		return rest[:i], rest[i:]
	}
	return rest, "/"
}
