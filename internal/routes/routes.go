package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HennaArtStudio/henna-booking-api/internal/audit"
	"github.com/HennaArtStudio/henna-booking-api/internal/config"
	"github.com/HennaArtStudio/henna-booking-api/internal/handlers"
	"github.com/HennaArtStudio/henna-booking-api/internal/infra/repository"
	"github.com/HennaArtStudio/henna-booking-api/internal/mailer"
	"github.com/HennaArtStudio/henna-booking-api/internal/media"
	"github.com/HennaArtStudio/henna-booking-api/internal/middleware"
	"github.com/HennaArtStudio/henna-booking-api/internal/tokens"
	ucBooking "github.com/HennaArtStudio/henna-booking-api/internal/usecase/booking"
	ucSchedule "github.com/HennaArtStudio/henna-booking-api/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	tokenStore *tokens.Store,
	mediaStore *media.Store,
	m *mailer.Mailer,
) {

	// ======================================================
	// INFRA
	// ======================================================

	bookingRepo := repository.NewBookingGormRepository(db)
	auditDispatcher := audit.NewDispatcher(audit.New(db))

	// ======================================================
	// USE CASES
	// ======================================================

	createBooking := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, cfg.StudioTimezone)
	listBookings := ucBooking.NewListBookings(bookingRepo)
	updateStatus := ucBooking.NewUpdateStatus(bookingRepo, auditDispatcher)
	trashBooking := ucBooking.NewTrashBooking(bookingRepo, auditDispatcher)
	restoreBooking := ucBooking.NewRestoreBooking(bookingRepo, auditDispatcher)
	purgeBooking := ucBooking.NewPurgeBooking(bookingRepo, auditDispatcher)
	dashboardStats := ucBooking.NewDashboardStats(bookingRepo)
	dailyReport := ucBooking.NewDailyReport(bookingRepo)

	availability := ucSchedule.NewGetAvailability(bookingRepo, cfg.StudioTimezone)

	// ======================================================
	// HANDLERS
	// ======================================================

	authHandler := handlers.NewAuthHandler(db, cfg, tokenStore, m)
	meHandler := handlers.NewMeHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db)
	timeSlotHandler := handlers.NewTimeSlotHandler(db, availability)
	bookingHandler := handlers.NewBookingHandler(createBooking, listBookings)
	adminBookingHandler := handlers.NewAdminBookingHandler(
		listBookings, updateStatus, trashBooking, restoreBooking, purgeBooking,
	)
	reportHandler := handlers.NewReportHandler(dashboardStats, dailyReport)
	customersHandler := handlers.NewCustomersHandler(bookingRepo)
	adminListHandler := handlers.NewAdminListHandler(db, cfg)
	settingsHandler := handlers.NewSettingsHandler(db)
	mediaHandler := handlers.NewMediaHandler(db, mediaStore)
	contactHandler := handlers.NewContactHandler(m, cfg)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC
	// ======================================================

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/verify-email", authHandler.ConfirmVerification)
	r.POST("/auth/password-reset", authHandler.RequestPasswordReset)
	r.POST("/auth/password-reset/confirm", authHandler.ConfirmPasswordReset)

	r.GET("/services", serviceHandler.List)
	r.GET("/availability", timeSlotHandler.AvailabilityForDate)
	r.GET("/availability/dates", timeSlotHandler.AvailableDates)
	r.GET("/settings/:key", settingsHandler.Get)
	r.GET("/media", mediaHandler.List)
	r.POST("/contact", contactHandler.Send)

	// ======================================================
	// AUTHENTICATED
	// ======================================================

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)
		secured.POST("/auth/request-verification", authHandler.RequestVerification)

		secured.POST("/bookings", bookingHandler.Create)
		secured.GET("/bookings/mine", bookingHandler.MyBookings)
	}

	// ======================================================
	// ADMIN
	// ======================================================

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware(db, cfg))
	{
		admin.GET("/bookings", adminBookingHandler.ListActive)
		admin.GET("/bookings/trash", adminBookingHandler.ListTrashed)
		admin.PATCH("/bookings/:id/status", adminBookingHandler.UpdateStatus)
		admin.POST("/bookings/:id/trash", adminBookingHandler.Trash)
		admin.POST("/bookings/:id/restore", adminBookingHandler.Restore)
		admin.DELETE("/bookings/:id", adminBookingHandler.Purge)

		admin.GET("/stats", reportHandler.Stats)
		admin.GET("/reports/daily", reportHandler.Daily)
		admin.GET("/customers", customersHandler.List)

		admin.POST("/services", serviceHandler.Create)
		admin.PATCH("/services/:id", serviceHandler.Update)
		admin.DELETE("/services/:id", serviceHandler.Delete)

		admin.GET("/time-slots", timeSlotHandler.List)
		admin.POST("/time-slots", timeSlotHandler.Create)
		admin.PATCH("/time-slots/:id/availability", timeSlotHandler.ToggleAvailability)
		admin.DELETE("/time-slots/:id", timeSlotHandler.Delete)

		admin.GET("/admins", adminListHandler.Get)
		admin.POST("/admins", adminListHandler.Add)
		admin.DELETE("/admins", adminListHandler.Remove)

		admin.PUT("/settings/:key", settingsHandler.Put)

		admin.POST("/media", mediaHandler.Upload)
		admin.DELETE("/media/:id", mediaHandler.Delete)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
