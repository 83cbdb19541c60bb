package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cloudpillers-api/internal/auth"
	"cloudpillers-api/internal/config"
	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/handler"
	"cloudpillers-api/internal/infrastructure/database"
	"cloudpillers-api/internal/logger"
	"cloudpillers-api/internal/mailer"
	"cloudpillers-api/internal/metrics"
	"cloudpillers-api/internal/middleware"
	"cloudpillers-api/internal/repository"
	"cloudpillers-api/internal/service"
	"cloudpillers-api/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	// Connect to database
	dbConfig := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
	pool, err := database.NewPostgres(context.Background(), dbConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Apply pending migrations
	if err := database.Migrate(dbConfig.ConnString(), cfg.MigrationsPath); err != nil {
		logger.Fatal("Failed to run migrations",
			slog.String("error", err.Error()))
	}

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Email delivery is optional; the API still accepts lead submissions
	// when SES is unavailable.
	var mail mailer.Mailer
	if sesMailer, err := mailer.NewSESMailer(context.Background(), cfg.AWSRegion, cfg.EmailFrom); err != nil {
		logger.Warn("Email delivery disabled",
			slog.String("error", err.Error()))
	} else {
		mail = sesMailer
	}

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	contactRepo := repository.NewPostgresContactRepository(pool)
	assessmentRepo := repository.NewPostgresAssessmentRepository(pool)
	blogRepo := repository.NewPostgresBlogRepository(pool)
	faqRepo := repository.NewPostgresFAQRepository(pool)
	pricingRepo := repository.NewPostgresPricingRepository(pool)
	teamRepo := repository.NewPostgresTeamRepository(pool)
	testimonialRepo := repository.NewPostgresTestimonialRepository(pool)
	homepageRepo := repository.NewPostgresHomepageRepository(pool)
	settingsRepo := repository.NewPostgresSiteSettingsRepository(pool)
	serviceContentRepo := repository.NewPostgresServiceContentRepository(pool)
	seoRepo := repository.NewPostgresSEORepository(pool)
	newsletterRepo := repository.NewPostgresNewsletterRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, tokenIssuer)
	leadService := service.NewLeadService(contactRepo, assessmentRepo, mail, cfg.AdminEmail, cfg.ClientURL)
	blogService := service.NewBlogService(blogRepo)
	newsletterService := service.NewNewsletterService(newsletterRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, v)
	contactHandler := handler.NewContactHandler(leadService, v)
	assessmentHandler := handler.NewAssessmentHandler(leadService, v)
	blogHandler := handler.NewBlogHandler(blogService, v)
	faqHandler := handler.NewFAQHandler(faqRepo, v)
	pricingHandler := handler.NewPricingHandler(pricingRepo, v)
	teamHandler := handler.NewTeamHandler(teamRepo, v)
	testimonialHandler := handler.NewTestimonialHandler(testimonialRepo, v)
	homepageHandler := handler.NewHomepageHandler(homepageRepo)
	settingsHandler := handler.NewSiteSettingsHandler(settingsRepo)
	serviceContentHandler := handler.NewServiceContentHandler(serviceContentRepo, v)
	seoHandler := handler.NewSEOHandler(seoRepo, v)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService, v)
	healthHandler := handler.NewHealthHandler(pool)

	authed := middleware.RequireAuth(tokenIssuer)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	staffOnly := middleware.RequireRole(domain.RoleAdmin, domain.RoleEditor)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.RateLimitMaxRequests, cfg.RateLimitWindow))
	{
		// Admin accounts and sessions
		admin := v1.Group("/admin")
		{
			admin.POST("/login", authHandler.Login)
			admin.POST("/register", authed, adminOnly, authHandler.Register)
			admin.GET("/me", authed, authHandler.Me)
			admin.GET("/logout", authed, authHandler.Logout)
			admin.GET("/users", authed, adminOnly, authHandler.ListUsers)
			admin.DELETE("/users/:id", authed, adminOnly, authHandler.DeleteUser)
		}

		// Lead capture
		contact := v1.Group("/contact")
		{
			contact.POST("", contactHandler.Create)
			contact.GET("/admin", authed, staffOnly, contactHandler.List)
			contact.GET("/admin/:id", authed, staffOnly, contactHandler.Get)
			contact.PUT("/admin/:id/status", authed, staffOnly, contactHandler.UpdateStatus)
		}
		assessment := v1.Group("/assessment")
		{
			assessment.POST("", assessmentHandler.Create)
			assessment.GET("/admin", authed, staffOnly, assessmentHandler.List)
			assessment.GET("/admin/:id", authed, staffOnly, assessmentHandler.Get)
		}

		// Blog. Admin routes are registered before the slug route so
		// "/blog/admin" never binds as a slug.
		blog := v1.Group("/blog")
		{
			blog.GET("", blogHandler.ListPublished)
			blog.GET("/admin", authed, staffOnly, blogHandler.ListAll)
			blog.POST("/admin", authed, staffOnly, blogHandler.Create)
			blog.PUT("/admin/:id", authed, staffOnly, blogHandler.Update)
			blog.DELETE("/admin/:id", authed, adminOnly, blogHandler.Delete)
			blog.POST("/admin/:id/publish", authed, staffOnly, blogHandler.Publish)
			blog.GET("/:slug", blogHandler.GetBySlug)
		}

		// Marketing content
		faq := v1.Group("/faq")
		{
			faq.GET("", faqHandler.List)
			faq.GET("/admin", authed, adminOnly, faqHandler.ListAdmin)
			faq.GET("/:id", faqHandler.Get)
			faq.POST("", authed, adminOnly, faqHandler.Create)
			faq.PUT("/:id", authed, adminOnly, faqHandler.Update)
			faq.DELETE("/:id", authed, adminOnly, faqHandler.Delete)
		}
		pricing := v1.Group("/pricing")
		{
			pricing.GET("", pricingHandler.List)
			pricing.GET("/admin", authed, adminOnly, pricingHandler.ListAdmin)
			pricing.GET("/:id", pricingHandler.Get)
			pricing.POST("", authed, adminOnly, pricingHandler.Create)
			pricing.PUT("/:id", authed, adminOnly, pricingHandler.Update)
			pricing.DELETE("/:id", authed, adminOnly, pricingHandler.Delete)
		}
		team := v1.Group("/team")
		{
			team.GET("", teamHandler.List)
			team.GET("/admin", authed, adminOnly, teamHandler.ListAdmin)
			team.GET("/:id", teamHandler.Get)
			team.POST("", authed, adminOnly, teamHandler.Create)
			team.PUT("/:id", authed, adminOnly, teamHandler.Update)
			team.DELETE("/:id", authed, adminOnly, teamHandler.Delete)
		}
		testimonials := v1.Group("/testimonials")
		{
			testimonials.GET("", testimonialHandler.List)
			testimonials.GET("/admin", authed, adminOnly, testimonialHandler.ListAdmin)
			testimonials.GET("/:id", testimonialHandler.Get)
			testimonials.POST("", authed, adminOnly, testimonialHandler.Create)
			testimonials.PUT("/:id", authed, adminOnly, testimonialHandler.Update)
			testimonials.DELETE("/:id", authed, adminOnly, testimonialHandler.Delete)
		}

		// Singleton documents
		v1.GET("/homepage", homepageHandler.Get)
		v1.PUT("/homepage", authed, adminOnly, homepageHandler.Update)
		v1.GET("/settings", settingsHandler.Get)
		v1.PUT("/settings", authed, adminOnly, settingsHandler.Update)

		// Key-addressed content
		serviceContent := v1.Group("/services/content")
		{
			serviceContent.GET("", serviceContentHandler.List)
			serviceContent.GET("/:serviceId", serviceContentHandler.Get)
			serviceContent.POST("", authed, adminOnly, serviceContentHandler.Create)
			serviceContent.PUT("/:serviceId", authed, adminOnly, serviceContentHandler.Update)
			serviceContent.DELETE("/:serviceId", authed, adminOnly, serviceContentHandler.Delete)
		}
		seo := v1.Group("/seo")
		{
			seo.GET("", authed, adminOnly, seoHandler.List)
			seo.GET("/:page", seoHandler.Get)
			seo.PUT("/:page", authed, adminOnly, seoHandler.Update)
			seo.DELETE("/:page", authed, adminOnly, seoHandler.Delete)
		}

		// Newsletter
		newsletter := v1.Group("/newsletter")
		{
			newsletter.POST("", newsletterHandler.Subscribe)
			newsletter.POST("/unsubscribe", newsletterHandler.Unsubscribe)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
