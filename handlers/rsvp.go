package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evervow/services/rsvp"
	"evervow/services/wedding"
	"evervow/utils"
)

// RSVPHandler exposes the guest-facing RSVP conversation endpoints.
type RSVPHandler struct {
	Sessions rsvp.SessionService
	Weddings wedding.WeddingService
}

// NewRSVPHandler creates a new RSVP handler.
func NewRSVPHandler(sessions rsvp.SessionService, weddings wedding.WeddingService) *RSVPHandler {
	return &RSVPHandler{Sessions: sessions, Weddings: weddings}
}

// StartSession handles POST /api/rsvp/session.
func (h *RSVPHandler) StartSession(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Subdomain string `json:"subdomain" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.Weddings.GetBySubdomain(req.Subdomain)
	if err != nil {
		logger.Error("Failed to resolve wedding for RSVP session", zap.String("subdomain", req.Subdomain), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start RSVP session"})
		return
	}
	if w == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wedding not found"})
		return
	}

	session, err := h.Sessions.StartSession(c.Request.Context(), w.ID)
	if err != nil {
		logger.Error("Failed to start RSVP session", zap.String("weddingId", w.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start RSVP session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// SubmitName handles POST /api/rsvp/session/:sessionID/name.
func (h *RSVPHandler) SubmitName(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Sessions.SubmitGuestName(c.Request.Context(), sessionID, req.Name)
	if err != nil {
		utils.GetLogger().Warn("RSVP session unavailable", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// Answer handles POST /api/rsvp/session/:sessionID/answer.
func (h *RSVPHandler) Answer(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var req struct {
		Question string `json:"question" binding:"required"`
		Value    bool   `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var event rsvp.Event
	switch req.Question {
	case "attendance":
		event = rsvp.AttendanceAnswered{CanAttend: req.Value}
	case "plus-one":
		event = rsvp.PlusOneAnswered{Bringing: req.Value}
	case "companion":
		event = rsvp.KnownCompanionAnswered{Coming: req.Value}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown question: " + req.Question})
		return
	}

	h.applyEvent(c, sessionID, event)
}

// Back handles POST /api/rsvp/session/:sessionID/back.
func (h *RSVPHandler) Back(c *gin.Context) {
	h.applyEvent(c, c.Param("sessionID"), rsvp.Back{})
}

// Reset handles POST /api/rsvp/session/:sessionID/reset.
func (h *RSVPHandler) Reset(c *gin.Context) {
	h.applyEvent(c, c.Param("sessionID"), rsvp.Reset{})
}

func (h *RSVPHandler) applyEvent(c *gin.Context, sessionID string, event rsvp.Event) {
	session, err := h.Sessions.Answer(c.Request.Context(), sessionID, event)
	if err != nil {
		utils.GetLogger().Warn("Failed to advance RSVP session", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, session)
}
