package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"evervow/handlers"
	"evervow/middleware"
	"evervow/utils"
)

// RegisterRSVPRoutes registers the guest-facing conversation endpoints.
// They are public and rate-limited; guests never authenticate.
func RegisterRSVPRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rsvp")
	{
		api.Use(middleware.RateLimitMiddleware())
		api.POST("/session", hb.RSVP.StartSession)
		api.POST("/session/:sessionID/name", hb.RSVP.SubmitName)
		api.POST("/session/:sessionID/answer", hb.RSVP.Answer)
		api.POST("/session/:sessionID/back", hb.RSVP.Back)
		api.POST("/session/:sessionID/reset", hb.RSVP.Reset)
	}
}

// RegisterWeddingRoutes registers the dashboard endpoints.
func RegisterWeddingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/weddings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Wedding.CreateWedding)

		// Per-wedding routes require the token to be bound to that wedding.
		scoped := api.Group("/:weddingID")
		scoped.Use(middleware.RequireWeddingAccess())
		scoped.GET("", hb.Wedding.GetWedding)
		scoped.PATCH("", hb.Wedding.UpdateWedding)
		scoped.DELETE("", hb.Wedding.DeleteWedding)
		scoped.POST("/reminders", hb.Wedding.ScheduleReminders)

		scoped.GET("/guests", hb.Guest.ListGuests)
		scoped.GET("/guests/summary", hb.Guest.RSVPSummary)
		scoped.POST("/guests", hb.Guest.CreateGuest)
		scoped.PUT("/guests/:guestID", hb.Guest.UpdateGuest)
		scoped.DELETE("/guests/:guestID", hb.Guest.DeleteGuest)
	}

	sub := r.Group("/api/subdomains")
	{
		sub.Use(middleware.JWTAuthMiddleware())
		sub.GET("/:subdomain/availability", hb.Wedding.SubdomainAvailability)
	}
}

// RegisterSiteRoutes registers the internal rendering paths the tenant
// router rewrites to. They are never addressed directly by clients.
func RegisterSiteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/tenant/*rest", hb.Site.TenantSite)
	r.GET("/site/*rest", hb.Site.CustomDomainSite)
	r.GET("/404", hb.Site.NotFound)
	r.NoRoute(hb.Site.NotFound)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRSVPRoutes(r, hb)
	RegisterWeddingRoutes(r, hb)
	RegisterSiteRoutes(r, hb)
	RegisterHealthRoute(r)
}
