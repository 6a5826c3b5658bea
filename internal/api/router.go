package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syndicma/syndic-platform/internal/api/handler"
	"github.com/syndicma/syndic-platform/internal/api/middleware"
	"github.com/syndicma/syndic-platform/internal/auth"
	"github.com/syndicma/syndic-platform/internal/core/service"
	mongodb "github.com/syndicma/syndic-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/syndicma/syndic-platform/internal/infrastructure/db/redis"
	"github.com/syndicma/syndic-platform/internal/infrastructure/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *auth.TokenMaker, hasher *auth.PasswordHasher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("syndic"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	apartmentRepo := mongodb.NewApartmentRepository(db)
	billRepo := mongodb.NewBillRepository(db)
	maintenanceRepo := mongodb.NewMaintenanceRepository(db)
	expenseRepo := mongodb.NewExpenseRepository(db)
	meetingRepo := mongodb.NewMeetingRepository(db)
	announcementRepo := mongodb.NewAnnouncementRepository(db)
	revoker := redisdb.NewTokenRevoker(rdb)

	// The HTTP deployment has no durable client-side session of its own;
	// each API caller holds its token. A memory store satisfies the
	// auth service's session dependency.
	authService := service.NewAuthService(userRepo, hasher, tokens, session.NewMemoryStore(), revoker, log)
	userService := service.NewUserService(userRepo, hasher, log)
	apartmentService := service.NewApartmentService(apartmentRepo, log)
	billService := service.NewBillService(billRepo, apartmentRepo, service.NoopGateway{}, log)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, log)
	expenseService := service.NewExpenseService(expenseRepo, log)
	meetingService := service.NewMeetingService(meetingRepo, log)
	announcementService := service.NewAnnouncementService(announcementRepo, log)
	reportService := service.NewReportService(userRepo, apartmentRepo, billRepo, maintenanceRepo, expenseRepo, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	apartmentHandler := handler.NewApartmentHandler(apartmentService)
	billHandler := handler.NewBillHandler(billService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	reportHandler := handler.NewReportHandler(reportService)

	authed := middleware.Auth(tokens, revoker)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout, authed)
	e.GET("/auth/me", authHandler.Me, authed)

	// --- User management (admin only) ---
	users := e.Group("/users", authed, middleware.RequireCapability(auth.CapManageUsers))
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.UpdateProfile)
	users.PUT("/:id/role", userHandler.ChangeRole)
	users.PUT("/:id/status", userHandler.ChangeStatus)

	// --- Apartments ---
	apartments := e.Group("/apartments", authed)
	apartments.GET("", apartmentHandler.List,
		middleware.RequireAnyCapability(auth.CapViewApartments, auth.CapManageApartments))
	apartments.GET("/:id", apartmentHandler.Get,
		middleware.RequireAnyCapability(auth.CapViewApartments, auth.CapManageApartments))
	apartments.POST("", apartmentHandler.Create,
		middleware.RequireCapability(auth.CapManageApartments))
	apartments.PATCH("/:id", apartmentHandler.Update,
		middleware.RequireCapability(auth.CapManageApartments))

	// --- Bills ---
	bills := e.Group("/bills", authed)
	bills.GET("", billHandler.List,
		middleware.RequireAnyCapability(auth.CapViewOwnBills, auth.CapManageBills))
	bills.POST("", billHandler.Create,
		middleware.RequireCapability(auth.CapManageBills))
	bills.POST("/:id/payments", billHandler.RecordPayment,
		middleware.RequireCapability(auth.CapRecordPayments))

	// --- Maintenance ---
	maintenance := e.Group("/maintenance", authed)
	maintenance.POST("", maintenanceHandler.Submit,
		middleware.RequireCapability(auth.CapSubmitMaintenance))
	maintenance.GET("", maintenanceHandler.List,
		middleware.RequireAnyCapability(auth.CapSubmitMaintenance, auth.CapManageMaintenance, auth.CapWorkMaintenance))
	maintenance.PUT("/:id/assign", maintenanceHandler.Assign,
		middleware.RequireCapability(auth.CapManageMaintenance))
	maintenance.PUT("/:id/status", maintenanceHandler.UpdateStatus,
		middleware.RequireAnyCapability(auth.CapManageMaintenance, auth.CapWorkMaintenance))

	// --- Expenses ---
	expenses := e.Group("/expenses", authed, middleware.RequireCapability(auth.CapManageExpenses))
	expenses.GET("", expenseHandler.List)
	expenses.POST("", expenseHandler.Create)
	expenses.PUT("/:id/approve", expenseHandler.Approve)
	expenses.PUT("/:id/pay", expenseHandler.MarkPaid)

	// --- Meetings and votes ---
	meetings := e.Group("/meetings", authed)
	meetings.GET("", meetingHandler.List,
		middleware.RequireAnyCapability(auth.CapManageMeetings, auth.CapVote))
	meetings.POST("", meetingHandler.Schedule,
		middleware.RequireCapability(auth.CapManageMeetings))
	meetings.PUT("/:id/status", meetingHandler.UpdateStatus,
		middleware.RequireCapability(auth.CapManageMeetings))
	meetings.POST("/:id/votes", meetingHandler.OpenVote,
		middleware.RequireCapability(auth.CapManageMeetings))
	meetings.POST("/:id/votes/:voteId/ballots", meetingHandler.CastBallot,
		middleware.RequireCapability(auth.CapVote))
	meetings.PUT("/:id/votes/:voteId/close", meetingHandler.CloseVote,
		middleware.RequireCapability(auth.CapManageMeetings))

	// --- Announcements ---
	announcements := e.Group("/announcements", authed)
	announcements.GET("", announcementHandler.List)
	announcements.POST("", announcementHandler.Publish,
		middleware.RequireCapability(auth.CapManageAnnouncements))

	// --- Reports ---
	e.GET("/reports/summary", reportHandler.Summary, authed,
		middleware.RequireCapability(auth.CapViewReports))

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
