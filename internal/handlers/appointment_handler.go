package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/carelinkhq/telemed-scheduler/internal/dispatch"
	domain "github.com/carelinkhq/telemed-scheduler/internal/domain/appointment"
	"github.com/carelinkhq/telemed-scheduler/internal/httperr"
	"github.com/carelinkhq/telemed-scheduler/internal/httpresp"
	"github.com/carelinkhq/telemed-scheduler/internal/middleware"
	"github.com/carelinkhq/telemed-scheduler/internal/models"
	ucAppointment "github.com/carelinkhq/telemed-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC     *ucAppointment.BookAppointment
	statusUC   *ucAppointment.SetStatus
	respondUC  *ucAppointment.RespondToReschedule
	completeUC *ucAppointment.CompleteAppointment
	callUC     *ucAppointment.SetCallActive

	repo domain.Repository
	chat dispatch.ChatProvisioner
}

func NewAppointmentHandler(
	bookUC *ucAppointment.BookAppointment,
	statusUC *ucAppointment.SetStatus,
	respondUC *ucAppointment.RespondToReschedule,
	completeUC *ucAppointment.CompleteAppointment,
	callUC *ucAppointment.SetCallActive,
	repo domain.Repository,
	chat dispatch.ChatProvisioner,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:     bookUC,
		statusUC:   statusUC,
		respondUC:  respondUC,
		completeUC: completeUC,
		callUC:     callUC,
		repo:       repo,
		chat:       chat,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ProviderID          string `json:"provider_id" binding:"required"`
	DateTime            string `json:"date_time" binding:"required"`
	Reason              string `json:"reason" binding:"required"`
	ShareMedicalRecords bool   `json:"share_medical_records"`
	IsVideoCall         bool   `json:"is_video_call"`
}

type SetStatusRequest struct {
	Status      string `json:"status" binding:"required"`
	NewDateTime string `json:"new_date_time"`
	Notes       string `json:"notes"`
}

type RescheduleResponseRequest struct {
	Action string `json:"action" binding:"required,oneof=confirm cancel"`
}

type CompleteAppointmentRequest struct {
	Notes            string `json:"notes"`
	FollowUpDateTime string `json:"follow_up_date_time"`
}

type SetCallActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(string)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.bookUC.Execute(
		c.Request.Context(),
		ucAppointment.BookAppointmentInput{
			PatientID:           patientID,
			ProviderID:          req.ProviderID,
			DateTime:            req.DateTime,
			Reason:              req.Reason,
			ShareMedicalRecords: req.ShareMedicalRecords,
			IsVideoCall:         req.IsVideoCall,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATUS (confirm / cancel / reschedule)
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.statusUC.Execute(
		c.Request.Context(),
		ucAppointment.SetStatusInput{
			AppointmentID: c.Param("id"),
			CallerID:      callerID,
			Status:        req.Status,
			NewDateTime:   req.NewDateTime,
			Notes:         req.Notes,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// RESCHEDULE RESPONSE
// ======================================================

func (h *AppointmentHandler) RespondToReschedule(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	var req RescheduleResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.respondUC.Execute(
		c.Request.Context(),
		ucAppointment.RespondToRescheduleInput{
			AppointmentID: c.Param("id"),
			CallerID:      callerID,
			Action:        req.Action,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, followUp, err := h.completeUC.Execute(
		c.Request.Context(),
		ucAppointment.CompleteAppointmentInput{
			AppointmentID:    c.Param("id"),
			CallerID:         callerID,
			Notes:            req.Notes,
			FollowUpDateTime: req.FollowUpDateTime,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	resp := gin.H{"appointment": ap}
	if followUp != nil {
		resp["follow_up"] = followUp
	}
	httpresp.OK(c, resp)
}

// ======================================================
// VIDEO CALL
// ======================================================

func (h *AppointmentHandler) SetCallActive(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	var req SetCallActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.callUC.Execute(
		c.Request.Context(),
		ucAppointment.SetCallActiveInput{
			AppointmentID: c.Param("id"),
			CallerID:      callerID,
			Active:        *req.Active,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CHAT CHANNEL (repair path)
// ======================================================

// EnsureChatChannel re-runs idempotent channel provisioning for a confirmed
// appointment. Covers the gap left when the post-commit provisioning side
// effect failed.
func (h *AppointmentHandler) EnsureChatChannel(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	ap, err := h.repo.GetAppointmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if callerID != ap.PatientID && callerID != ap.ProviderID {
		httperr.Forbidden(c, "not_appointment_party", "You are not part of this appointment.")
		return
	}

	if ap.Status != string(domain.StatusConfirmed) {
		httperr.Conflict(c, "invalid_transition", "Chat channels exist only for confirmed appointments.")
		return
	}

	channel, err := h.chat.EnsureChannel(c.Request.Context(), ap.PatientID, ap.ProviderID, ap.ID)
	if err != nil {
		httperr.Internal(c, "chat_provisioning_failed", "Could not provision the chat channel.")
		return
	}

	httpresp.OK(c, gin.H{"channel_id": channel})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)
	role := models.Role(c.MustGet(middleware.ContextUserRole).(string))

	aps, err := h.repo.ListAppointmentsForUser(c.Request.Context(), callerID, role)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}
