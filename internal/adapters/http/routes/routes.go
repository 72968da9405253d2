package routes

import (
	"log"

	"dbt-setu/internal/adapters/http/handlers"
	"dbt-setu/internal/adapters/http/middleware"
	"dbt-setu/internal/adapters/persistence/repositories"
	"dbt-setu/internal/config"
	"dbt-setu/internal/core/services"
	"dbt-setu/internal/pkg/crypto"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	profileRepo := repositories.NewProfileRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	ticketRepo := repositories.NewTicketRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	volunteerRepo := repositories.NewVolunteerRepository(db)

	// Field-level encryption for bank details
	encryptor, err := crypto.New(cfg.Security.DataEncryptionKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize encryption: %v", err)
	}

	// Initialize services
	notifyService := services.NewNotificationService(cfg.Notify.WebhookURL)
	authService := services.NewAuthService(profileRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(profileRepo, refreshTokenRepo)
	verificationService := services.NewVerificationService(ticketRepo, encryptor, notifyService)
	eventService := services.NewEventService(eventRepo)
	volunteerService := services.NewVolunteerService(volunteerRepo, notifyService)
	helpdeskService := services.NewHelpdeskService()
	dashboardService := services.NewDashboardService(profileRepo, ticketRepo, eventRepo, volunteerRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	verificationHandler := handlers.NewVerificationHandler(verificationService)
	eventHandler := handlers.NewEventHandler(eventService)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerService)
	helpdeskHandler := handlers.NewHelpdeskHandler(helpdeskService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, authHandler, userHandler, verificationHandler,
		eventHandler, volunteerHandler, helpdeskHandler, dashboardHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	verificationHandler *handlers.VerificationHandler,
	eventHandler *handlers.EventHandler,
	volunteerHandler *handlers.VolunteerHandler,
	helpdeskHandler *handlers.HelpdeskHandler,
	dashboardHandler *handlers.DashboardHandler,
	cfg *config.Config,
) {
	// ============================================================
	// Auth routes
	// ============================================================
	auth := router.Group("/auth")
	auth.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/logout-all", middleware.AuthMiddleware(cfg), authHandler.LogoutAll)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// ============================================================
	// Verification routes
	// ============================================================
	verification := router.Group("/verification")
	verification.Get("/track/:tracking_no", verificationHandler.Track) // Public tracking
	verification.Use(middleware.AuthMiddleware(cfg))
	verification.Post("/", middleware.StudentOnly(), middleware.SubmitRateLimiter(), verificationHandler.Submit)
	verification.Get("/my-status", middleware.StudentOnly(), verificationHandler.MyStatus)
	verification.Post("/:id/reapply", middleware.StudentOnly(), verificationHandler.Reapply)
	verification.Get("/queue", middleware.ReviewerOnly(), verificationHandler.Queue)
	verification.Post("/:id/decision", middleware.ReviewerOnly(), verificationHandler.Decide)
	verification.Get("/:id/details", middleware.ReviewerOnly(), verificationHandler.Reveal)
	verification.Post("/analyze", middleware.ReviewerOnly(), verificationHandler.Analyze)

	// ============================================================
	// User administration routes (admin)
	// ============================================================
	users := router.Group("/users", middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	users.Get("/", userHandler.List)
	users.Get("/pending", userHandler.PendingApprovals)
	users.Get("/:id", userHandler.Get)
	users.Post("/:id/approve", userHandler.Approve)
	users.Delete("/:id", userHandler.Reject)

	// ============================================================
	// Event / notice routes
	// ============================================================
	events := router.Group("/events")
	events.Get("/", eventHandler.List) // Public listing
	events.Use(middleware.AuthMiddleware(cfg))
	events.Get("/mine", middleware.PosterOnly(), eventHandler.Mine)
	events.Post("/", middleware.PosterOnly(), eventHandler.Create)
	events.Delete("/:id", middleware.PosterOnly(), eventHandler.Delete)

	// ============================================================
	// Volunteer routes
	// ============================================================
	volunteers := router.Group("/volunteers")
	volunteers.Post("/", volunteerHandler.Apply) // Public application
	volunteers.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	volunteers.Get("/", volunteerHandler.List)
	volunteers.Get("/:id/progress", volunteerHandler.Progress)
	volunteers.Post("/:id/certificate", volunteerHandler.IssueCertificate)

	// ============================================================
	// Helpdesk routes (public)
	// ============================================================
	helpdesk := router.Group("/helpdesk")
	helpdesk.Get("/faqs", helpdeskHandler.FAQs)
	helpdesk.Post("/chat", helpdeskHandler.Chat)

	// ============================================================
	// Dashboard routes
	// ============================================================
	dashboard := router.Group("/dashboard", middleware.AuthMiddleware(cfg))
	dashboard.Get("/summary", middleware.ReviewerOnly(), dashboardHandler.Summary)
	dashboard.Get("/stats", middleware.AdminOnly(), dashboardHandler.Stats)
}
