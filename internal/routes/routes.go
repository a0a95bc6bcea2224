package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/carelinkhq/telemed-scheduler/internal/chat"
	"github.com/carelinkhq/telemed-scheduler/internal/config"
	"github.com/carelinkhq/telemed-scheduler/internal/dispatch"
	domain "github.com/carelinkhq/telemed-scheduler/internal/domain/appointment"
	"github.com/carelinkhq/telemed-scheduler/internal/handlers"
	infraRepo "github.com/carelinkhq/telemed-scheduler/internal/infra/repository"
	"github.com/carelinkhq/telemed-scheduler/internal/middleware"
	"github.com/carelinkhq/telemed-scheduler/internal/notify"
	ucAppointment "github.com/carelinkhq/telemed-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	notifier := notify.New(db)
	provisioner := chat.NewRedisProvisioner(rdb)
	dispatcher := dispatch.New(notifier, provisioner, log, cfg.DispatchQueueSize)

	clock := domain.SystemClock{}

	// ======================================================
	// USE CASES
	// ======================================================
	listSlotsUC := ucAppointment.NewListAvailableSlots(appointmentRepo)
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, clock, dispatcher)
	statusUC := ucAppointment.NewSetStatus(appointmentRepo, dispatcher)
	respondUC := ucAppointment.NewRespondToReschedule(appointmentRepo, dispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, clock, dispatcher)
	callUC := ucAppointment.NewSetCallActive(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	slotsHandler := handlers.NewSlotsHandler(listSlotsUC, cfg)
	availabilityHandler := handlers.NewAvailabilityHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		statusUC,
		respondUC,
		completeUC,
		callUC,
		appointmentRepo,
		provisioner,
	)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/providers/:id/slots", slotsHandler.List)

			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.POST("/appointments", appointmentHandler.Book)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
			secured.PATCH("/appointments/:id/reschedule-response", appointmentHandler.RespondToReschedule)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/call", appointmentHandler.SetCallActive)
			secured.POST("/appointments/:id/chat-channel", appointmentHandler.EnsureChatChannel)

			secured.GET("/me/availability", availabilityHandler.Get)
			secured.PUT("/me/availability", availabilityHandler.Update)

			secured.GET("/me/blocked-slots", availabilityHandler.ListBlocked)
			secured.POST("/me/blocked-slots", availabilityHandler.CreateBlocked)
			secured.DELETE("/me/blocked-slots/:id", availabilityHandler.DeleteBlocked)
		}
	}
}
