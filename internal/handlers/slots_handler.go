package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/carelinkhq/telemed-scheduler/internal/config"
	"github.com/carelinkhq/telemed-scheduler/internal/httperr"
	"github.com/carelinkhq/telemed-scheduler/internal/httpresp"
	ucAppointment "github.com/carelinkhq/telemed-scheduler/internal/usecase/appointment"
)

type SlotsHandler struct {
	listSlots *ucAppointment.ListAvailableSlots
	config    *config.Config
}

func NewSlotsHandler(listSlots *ucAppointment.ListAvailableSlots, cfg *config.Config) *SlotsHandler {
	return &SlotsHandler{
		listSlots: listSlots,
		config:    cfg,
	}
}

// List returns the candidate slots for a provider on one date. The window
// defaults to the clinic-wide bounds unless the caller narrows it.
func (h *SlotsHandler) List(c *gin.Context) {
	providerID := c.Param("id")

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	windowStart := c.DefaultQuery("start", h.config.DefaultWindowStart)
	windowEnd := c.DefaultQuery("end", h.config.DefaultWindowEnd)

	if !isValidClock(windowStart) || !isValidClock(windowEnd) {
		httperr.BadRequest(c, "invalid_window", "Window bounds must be HH:MM.")
		return
	}

	slots, err := h.listSlots.Execute(
		c.Request.Context(),
		ucAppointment.SlotQuery{
			ProviderID:  providerID,
			Date:        dateStr,
			WindowStart: windowStart,
			WindowEnd:   windowEnd,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
