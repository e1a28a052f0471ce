package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/alvarosc2000/BriefNest-Local/internal/application/billing"
	briefapp "github.com/alvarosc2000/BriefNest-Local/internal/application/brief"
	identityapp "github.com/alvarosc2000/BriefNest-Local/internal/application/identity"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/auth"
	infrabilling "github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/billing"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/cache"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/config"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/llm"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/logger"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/persistence"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/printing"
	"github.com/alvarosc2000/BriefNest-Local/internal/interfaces/http/handler"
	"github.com/alvarosc2000/BriefNest-Local/internal/interfaces/http/middleware"
	"github.com/alvarosc2000/BriefNest-Local/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting BriefNest",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Stripe adapter (checkout sessions + webhook signature verification share this config)
	stripeCfg := &infrabilling.StripeConfig{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		SuccessURL:    cfg.Stripe.SuccessURL,
		CancelURL:     cfg.Stripe.CancelURL,
		Currency:      cfg.Stripe.Currency,
	}
	stripeAdapter, err := infrabilling.NewStripeAdapter(stripeCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize Stripe adapter", zap.Error(err))
	}

	// Brief generation model client
	llmClient, err := llm.NewOpenAIClient(llm.Config{
		APIKey:      cfg.OpenAI.APIKey,
		Model:       cfg.OpenAI.Model,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Temperature: cfg.OpenAI.Temperature,
		Timeout:     cfg.OpenAI.Timeout,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize model client", zap.Error(err))
	}

	// PDF rendering (headless Chrome)
	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.PDF.Timeout,
		ExecPath:       cfg.PDF.ChromePath,
		NoSandbox:      cfg.PDF.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	briefTemplate, err := printing.NewBriefTemplate()
	if err != nil {
		log.Fatal("Failed to parse brief template", zap.Error(err))
	}

	// Webhook idempotency store (Redis when enabled, otherwise database-backed)
	idemFactory := cache.NewIdempotencyStoreFactory(cfg.Redis, db, log)
	idemStore, err := idemFactory.CreateStore()
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}
	defer func() {
		if err := idemStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}()

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	userService := identityapp.NewUserService(userRepo, log)
	briefService := briefapp.NewBriefService(userRepo, projectRepo, txScope, llmClient, log)
	planService := billingapp.NewPlanService()
	checkoutService := billingapp.NewCheckoutService(userRepo, stripeAdapter, log)
	webhookService := billingapp.NewStripeWebhookService(billingapp.StripeWebhookServiceConfig{
		Config:      stripeCfg,
		UserRepo:    userRepo,
		Idempotency: idemStore,
		Logger:      log,
	})

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	briefHandler := handler.NewBriefHandler(briefService, renderer, briefTemplate)
	planHandler := handler.NewPlanHandler(planService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	webhookHandler := handler.NewStripeWebhookHandler(webhookService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoints (outside API versioning)
	engine.GET("/health", healthHandler(db, log))
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/readyz", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	// Configure skip paths for public endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/plans",
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		SkipPathPrefixes: []string{
			"/api/v1/webhooks",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Identity domain - public routes
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)

	// Identity domain - protected routes
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.GET("/me", userHandler.GetProfile)

	// Brief domain (questionnaire -> generated brief -> PDF)
	briefRoutes := router.NewDomainGroup("briefs", "/briefs")
	briefRoutes.POST("", briefHandler.Generate)
	briefRoutes.GET("", briefHandler.List)
	briefRoutes.GET("/:id", briefHandler.Get)
	briefRoutes.GET("/:id/pdf", briefHandler.DownloadPDF)
	briefRoutes.DELETE("/:id", briefHandler.Delete)

	// Billing domain
	planRoutes := router.NewDomainGroup("plans", "/plans")
	planRoutes.GET("", planHandler.ListPlans)

	checkoutRoutes := router.NewDomainGroup("checkout", "/checkout")
	checkoutRoutes.POST("/plan", checkoutHandler.CreatePlanCheckout)
	checkoutRoutes.POST("/briefs", checkoutHandler.CreateBriefsCheckout)

	// Stripe webhook (signature-verified, no JWT)
	webhookRoutes := router.NewDomainGroup("webhooks", "/webhooks")
	webhookRoutes.POST("/stripe", webhookHandler.HandleStripeWebhook)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	// Register all domain groups
	r.Register(authRoutes).
		Register(userRoutes).
		Register(briefRoutes).
		Register(planRoutes).
		Register(checkoutRoutes).
		Register(webhookRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
