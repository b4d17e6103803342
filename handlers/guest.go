package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	guestRepo "evervow/database/repository/guest"
	"evervow/models"
	"evervow/utils"
)

// GuestHandler exposes the dashboard's roster management endpoints.
type GuestHandler struct {
	Repo guestRepo.GuestRepository
}

// NewGuestHandler creates a new guest handler.
func NewGuestHandler(repo guestRepo.GuestRepository) *GuestHandler {
	return &GuestHandler{Repo: repo}
}

// ListGuests handles GET /api/weddings/:weddingID/guests.
func (h *GuestHandler) ListGuests(c *gin.Context) {
	weddingID := c.Param("weddingID")

	guests, err := h.Repo.ListByWedding(weddingID)
	if err != nil {
		utils.GetLogger().Error("Failed to list guests", zap.String("weddingId", weddingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load guest list"})
		return
	}
	c.JSON(http.StatusOK, guests)
}

// CreateGuest handles POST /api/weddings/:weddingID/guests.
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	weddingID := c.Param("weddingID")

	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if guest.FirstName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstName is required"})
		return
	}

	guest.ID = uuid.New().String()
	guest.WeddingID = weddingID
	guest.RSVPStatus = models.RSVPPending

	if err := h.Repo.Create(&guest); err != nil {
		utils.GetLogger().Error("Failed to create guest", zap.String("weddingId", weddingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not add guest"})
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// UpdateGuest handles PUT /api/weddings/:weddingID/guests/:guestID.
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	weddingID := c.Param("weddingID")
	guestID := c.Param("guestID")

	existing, err := h.Repo.GetByID(guestID)
	if err != nil || existing.WeddingID != weddingID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest.ID = guestID
	guest.WeddingID = weddingID
	guest.CreatedAt = existing.CreatedAt

	if err := h.Repo.Update(&guest); err != nil {
		utils.GetLogger().Error("Failed to update guest", zap.String("guestId", guestID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update guest"})
		return
	}
	c.JSON(http.StatusOK, guest)
}

// DeleteGuest handles DELETE /api/weddings/:weddingID/guests/:guestID.
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	weddingID := c.Param("weddingID")
	guestID := c.Param("guestID")

	existing, err := h.Repo.GetByID(guestID)
	if err != nil || existing.WeddingID != weddingID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	if err := h.Repo.Delete(guestID); err != nil {
		utils.GetLogger().Error("Failed to delete guest", zap.String("guestId", guestID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not remove guest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest removed"})
}

// RSVPSummary handles GET /api/weddings/:weddingID/guests/summary.
func (h *GuestHandler) RSVPSummary(c *gin.Context) {
	weddingID := c.Param("weddingID")

	guests, err := h.Repo.ListByWedding(weddingID)
	if err != nil {
		utils.GetLogger().Error("Failed to summarize RSVPs", zap.String("weddingId", weddingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load RSVP summary"})
		return
	}

	summary := gin.H{"total": len(guests)}
	counts := map[models.RSVPStatus]int{}
	plusOnes := 0
	companions := 0
	for _, g := range guests {
		counts[g.RSVPStatus]++
		if g.PlusOneComing {
			plusOnes++
		}
		if g.CompanionComes {
			companions++
		}
	}
	summary["pending"] = counts[models.RSVPPending]
	summary["accepted"] = counts[models.RSVPAccepted]
	summary["declined"] = counts[models.RSVPDeclined]
	summary["plusOnes"] = plusOnes
	summary["companions"] = companions

	c.JSON(http.StatusOK, summary)
}
