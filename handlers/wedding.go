package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evervow/models"
	"evervow/services/tasks"
	"evervow/services/wedding"
	"evervow/utils"
)

// WeddingHandler exposes the dashboard's wedding settings endpoints.
type WeddingHandler struct {
	Weddings  wedding.WeddingService
	Reminders *tasks.ReminderScheduler
}

// NewWeddingHandler creates a new wedding handler.
func NewWeddingHandler(weddings wedding.WeddingService, reminders *tasks.ReminderScheduler) *WeddingHandler {
	return &WeddingHandler{Weddings: weddings, Reminders: reminders}
}

// CreateWedding handles POST /api/weddings.
func (h *WeddingHandler) CreateWedding(c *gin.Context) {
	var req models.Wedding
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Weddings.CreateWedding(req)
	if err != nil {
		var verr *wedding.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusConflict, gin.H{"error": verr.Message, "code": verr.Code})
			return
		}
		utils.GetLogger().Error("Failed to create wedding", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create wedding"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetWedding handles GET /api/weddings/:weddingID.
func (h *WeddingHandler) GetWedding(c *gin.Context) {
	id := c.Param("weddingID")

	w, err := h.Weddings.GetWedding(id)
	if err != nil {
		utils.GetLogger().Error("Wedding not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Wedding not found"})
		return
	}
	c.JSON(http.StatusOK, w)
}

// UpdateWedding handles PATCH /api/weddings/:weddingID.
func (h *WeddingHandler) UpdateWedding(c *gin.Context) {
	var req models.WeddingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("weddingID")

	updated, err := h.Weddings.UpdateWedding(req)
	if err != nil {
		var verr *wedding.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusConflict, gin.H{"error": verr.Message, "code": verr.Code})
			return
		}
		utils.GetLogger().Error("Failed to update wedding", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update wedding"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteWedding handles DELETE /api/weddings/:weddingID.
func (h *WeddingHandler) DeleteWedding(c *gin.Context) {
	id := c.Param("weddingID")

	if err := h.Weddings.DeleteWedding(id); err != nil {
		utils.GetLogger().Error("Failed to delete wedding", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete wedding"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// SubdomainAvailability handles GET /api/subdomains/:subdomain/availability.
func (h *WeddingHandler) SubdomainAvailability(c *gin.Context) {
	sub := c.Param("subdomain")

	available, err := h.Weddings.SubdomainAvailable(sub)
	if err != nil {
		utils.GetLogger().Error("Failed to check subdomain", zap.String("subdomain", sub), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not check availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subdomain": sub, "available": available})
}

// ScheduleReminders handles POST /api/weddings/:weddingID/reminders.
func (h *WeddingHandler) ScheduleReminders(c *gin.Context) {
	weddingID := c.Param("weddingID")

	var req struct {
		FireAt time.Time `json:"fireAt" binding:"required"`
		Title  string    `json:"title"`
		Body   string    `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" {
		req.Title = "RSVP reminder"
	}

	scheduled, err := h.Reminders.ScheduleForPending(weddingID, req.FireAt, req.Title, req.Body)
	if err != nil {
		utils.GetLogger().Error("Failed to schedule reminders", zap.String("weddingId", weddingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not schedule reminders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scheduled": scheduled})
}
