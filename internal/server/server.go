// Package server contains the HTTP handlers for the application's API
// endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"retrospace/internal/cache"
	"retrospace/internal/config"
	"retrospace/internal/database"
	"retrospace/internal/media"
	"retrospace/internal/middleware"
	"retrospace/internal/models"
	"retrospace/internal/repository"
	"retrospace/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	mediaStore     *media.Store

	userRepo        repository.UserRepository
	profileRepo     repository.ProfileRepository
	friendRepo      repository.FriendRepository
	testimonialRepo repository.TestimonialRepository
	visitRepo       repository.VisitRepository
	topFiveRepo     repository.TopFiveRepository
	galleryRepo     repository.GalleryRepository

	profileService     *service.ProfileService
	friendService      *service.FriendService
	testimonialService *service.TestimonialService
	topFiveService     *service.TopFiveService
	galleryService     *service.GalleryService
	searchService      *service.SearchService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	topFiveRepo := repository.NewTopFiveRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	prom := middleware.InitMetrics("retrospace-api")

	server := &Server{
		config:          cfg,
		db:              db,
		redis:           redisClient,
		promMiddleware:  prom,
		mediaStore:      media.NewStore(cfg.MediaDir, cfg.MediaMaxUploadSizeMB),
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		friendRepo:      friendRepo,
		testimonialRepo: testimonialRepo,
		visitRepo:       visitRepo,
		topFiveRepo:     topFiveRepo,
		galleryRepo:     galleryRepo,
	}

	server.profileService = service.NewProfileService(
		profileRepo, userRepo, friendRepo, visitRepo, testimonialRepo, topFiveRepo, galleryRepo)
	server.friendService = service.NewFriendService(friendRepo, userRepo)
	server.testimonialService = service.NewTestimonialService(testimonialRepo, profileRepo)
	server.topFiveService = service.NewTopFiveService(topFiveRepo, profileRepo)
	server.galleryService = service.NewGalleryService(galleryRepo, profileRepo)
	server.searchService = service.NewSearchService(userRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Tracing spans per request
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Retrospace Backend Metrics Dashboard",
	}))

	// Serve uploaded media
	app.Static("/media", s.mediaStore.Dir())

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", middleware.AuthRequired, s.Logout)

	// Public profile pages; viewer identity is optional
	api.Get("/u/:username", middleware.AuthOptional, s.ViewProfile)
	api.Get("/search", middleware.RateLimit(
		s.redis, 30, time.Minute, "search"), middleware.AuthRequired, s.SearchUsers)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// Own profile
	profile := protected.Group("/profile")
	profile.Get("/me", s.GetMyProfile)
	profile.Put("/me", s.UpdateMyProfile)

	protected.Get("/dashboard", s.GetDashboard)
	protected.Get("/visitors", s.GetVisitors)

	// Friend routes
	friends := protected.Group("/friends")
	friends.Get("/", s.GetFriends)
	// Specific /requests routes before generic /:userId
	friends.Get("/requests", s.GetPendingRequests)
	friends.Get("/requests/sent", s.GetSentRequests)
	friends.Post("/requests/:requestId/accept", s.AcceptFriendRequest)
	friends.Post("/requests/:requestId/reject", s.RejectFriendRequest)
	friends.Post("/requests/:userId", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "friend_request"), s.SendFriendRequest)

	// Testimonials: writing happens on someone else's page,
	// moderation on your own
	protected.Post("/u/:username/testimonials", middleware.RateLimit(
		s.redis, 5, time.Minute, "testimonial"), s.WriteTestimonial)
	testimonials := protected.Group("/testimonials")
	testimonials.Get("/", s.GetMyTestimonials)
	testimonials.Post("/:id/hide", s.HideTestimonial)
	testimonials.Post("/:id/unhide", s.UnhideTestimonial)
	testimonials.Delete("/:id", s.DeleteTestimonial)

	// Top five lists
	topfives := protected.Group("/topfives")
	topfives.Get("/", s.GetMyTopFives)
	topfives.Post("/", s.CreateTopFive)
	topfives.Put("/:id", s.UpdateTopFive)
	topfives.Delete("/:id", s.DeleteTopFive)

	// Albums and gallery
	albums := protected.Group("/albums")
	albums.Get("/", s.GetMyAlbums)
	albums.Post("/", s.CreateAlbum)
	albums.Delete("/:id", s.DeleteAlbum)

	gallery := protected.Group("/gallery")
	gallery.Get("/", s.GetMyGallery)
	gallery.Post("/", s.AddGalleryImage)
	gallery.Put("/:id", s.UpdateGalleryImage)
	gallery.Delete("/:id", s.DeleteGalleryImage)

	// Media uploads
	protected.Post("/media/:kind", middleware.RateLimit(
		s.redis, 10, time.Minute, "media_upload"), s.UploadMedia)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The app degrades without Redis, report it but stay ready
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:   "Retrospace API",
		BodyLimit: (s.config.MediaMaxUploadSizeMB + 1) * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
