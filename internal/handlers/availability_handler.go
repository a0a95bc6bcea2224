package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/carelinkhq/telemed-scheduler/internal/httperr"
	"github.com/carelinkhq/telemed-scheduler/internal/httpresp"
	"github.com/carelinkhq/telemed-scheduler/internal/middleware"
	"github.com/carelinkhq/telemed-scheduler/internal/models"
	"github.com/carelinkhq/telemed-scheduler/internal/timezone"
)

// AvailabilityHandler manages a provider's per-weekday availability and
// one-off blocked ranges.
type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

// ======================================================
// DAY AVAILABILITY
// ======================================================

type DayConfig struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityUpdateRequest struct {
	Days []DayConfig `json:"days" binding:"required"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(string)

	var days []models.DayAvailability
	if err := h.db.
		Where("provider_id = ?", providerID).
		Order("day_of_week ASC").
		Find(&days).Error; err != nil {

		httperr.Internal(c, "failed_to_get_availability", "Could not load availability.")
		return
	}

	httpresp.OK(c, days)
}

// Update replaces the full per-weekday configuration in one call, the same
// replace-all contract the settings screen saves with.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(string)

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	seen := make(map[string]bool, len(req.Days))
	for _, d := range req.Days {
		if !isValidWeekday(d.DayOfWeek) {
			httperr.BadRequest(c, "invalid_weekday", "Unknown weekday "+d.DayOfWeek+".")
			return
		}
		if seen[d.DayOfWeek] {
			httperr.BadRequest(c, "duplicate_weekday", "Weekday "+d.DayOfWeek+" appears twice.")
			return
		}
		seen[d.DayOfWeek] = true

		// each bound is optional but must parse on its own; a stored
		// malformed bound would fail every slot query for the weekday
		if d.StartTime != "" && !isValidClock(d.StartTime) {
			httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
			return
		}
		if d.EndTime != "" && !isValidClock(d.EndTime) {
			httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
			return
		}
		if d.StartTime != "" && d.EndTime != "" && !clockBefore(d.StartTime, d.EndTime) {
			httperr.BadRequest(c, "invalid_time_range", "Start time must be before end time.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("provider_id = ?", providerID).
			Delete(&models.DayAvailability{}).Error; err != nil {
			return err
		}

		for _, d := range req.Days {
			record := models.DayAvailability{
				ProviderID: providerID,
				DayOfWeek:  d.DayOfWeek,
				Enabled:    d.Enabled,
				StartTime:  d.StartTime,
				EndTime:    d.EndTime,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_availability", "Could not save availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// BLOCKED TIME SLOTS
// ======================================================

type CreateBlockedSlotRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

func (h *AvailabilityHandler) ListBlocked(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(string)

	var blocks []models.BlockedTimeSlot
	if err := h.db.
		Where("provider_id = ?", providerID).
		Order("date ASC, start_time ASC").
		Find(&blocks).Error; err != nil {

		httperr.Internal(c, "failed_to_get_blocked_slots", "Could not load blocked slots.")
		return
	}

	httpresp.List(c, blocks)
}

func (h *AvailabilityHandler) CreateBlocked(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(string)

	var provider models.User
	if err := h.db.First(&provider, "id = ?", providerID).Error; err != nil {
		httperr.Internal(c, "provider_not_found", "Provider not found.")
		return
	}

	var req CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !isValidClock(req.StartTime) || !isValidClock(req.EndTime) {
		httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
		return
	}
	if !clockBefore(req.StartTime, req.EndTime) {
		httperr.BadRequest(c, "invalid_time_range", "Start time must be before end time.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		req.Date,
		timezone.Location(provider.Timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	block := models.BlockedTimeSlot{
		ProviderID: providerID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_blocked_slot", "Could not save the blocked slot.")
		return
	}

	httpresp.Created(c, block)
}

func (h *AvailabilityHandler) DeleteBlocked(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(string)

	result := h.db.
		Where("id = ? AND provider_id = ?", c.Param("id"), providerID).
		Delete(&models.BlockedTimeSlot{})

	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_blocked_slot", "Could not delete the blocked slot.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "blocked_slot_not_found", "Blocked slot not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
