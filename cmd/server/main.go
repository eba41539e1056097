package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clickgate/internal/classifier"
	"clickgate/internal/config"
	"clickgate/internal/handler"
	"clickgate/internal/mq"
	"clickgate/internal/repository"
	"clickgate/internal/service"
	"clickgate/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Clickgate API
// @version 1.0
// @description Gated short links with click analytics
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	flag.Parse()

	// .env is optional outside development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	loc, err := cfg.Analytics.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid analytics timezone")
	}

	// Initialize repositories
	store, err := newStore(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize store")
	}
	defer store.Close()

	redisRepo := repository.NewRedisRepository(&cfg.Redis)
	defer redisRepo.Close()

	// Initialize services
	bloomSvc := service.NewBloomService(redisRepo.GetClient(), &cfg.Bloom)
	passwords := service.NewBcryptVerifier(0)
	linkSvc := service.NewLinkService(store, redisRepo, bloomSvc, passwords, cfg.Redis.LinkCacheTTL)
	resolver := service.NewResolver(linkSvc, store, passwords)
	recorder := service.NewRecorder(store, redisRepo, loc)
	reporter := service.NewReporter(store)
	clickEvents := service.NewClickEventService(store, recorder)

	// Initialize MQ (optional, can be nil)
	var producer mq.ProducerInterface
	if cfg.RocketMQ.NameServer != "" {
		p, err := mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		} else {
			producer = p
			defer p.Close()
		}
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.Server.AllowOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Swagger documentation
	setupSwagger(router)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		linkHandler := handler.NewLinkHandler(linkSvc, getDomain(cfg))
		v1.POST("/links", linkHandler.Register)
		v1.GET("/links/:shortCode", linkHandler.Get)
		v1.PATCH("/links/:shortCode/active", linkHandler.SetActive)
		v1.DELETE("/links/:shortCode", linkHandler.Delete)

		analyticsHandler := handler.NewAnalyticsHandler(reporter)
		v1.GET("/analytics/:shortCode", analyticsHandler.LinkAnalytics)
		v1.GET("/workspaces/:workspaceID/report", analyticsHandler.WorkspaceReport)
	}

	// Redirect handler (short codes)
	redirectHandler := handler.NewRedirectHandler(resolver, recorder, classifier.New(&cfg.Analytics), producer)
	redirects := []gin.HandlerFunc{redirectHandler.Redirect}
	if cfg.RateLimit.RPS > 0 {
		limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.Run(ctx, time.Minute)
		redirects = append([]gin.HandlerFunc{middleware.RateLimit(limiter)}, redirects...)
	}
	router.GET("/:shortCode", redirects...)
	router.POST("/:shortCode", redirects...)

	// Start MQ consumer if configured
	if cfg.RocketMQ.NameServer != "" {
		consumer, err := mq.NewConsumer(&cfg.RocketMQ, clickEvents.Handle)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := consumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer consumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// newStore opens the configured link and analytics store
func newStore(cfg *config.DatabaseConfig) (repository.Store, error) {
	if cfg.Driver == "memory" {
		log.Warn().Msg("Using in-memory store, data is lost on restart")
		return repository.NewMemoryRepository(), nil
	}
	return repository.NewSQLRepository(cfg)
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// getDomain returns the domain for short links
func getDomain(cfg *config.Config) string {
	if cfg.Server.Domain != "" {
		return cfg.Server.Domain
	}
	if port := cfg.Server.Port; port != 80 && port != 443 {
		return fmt.Sprintf("http://localhost:%d", port)
	}
	return "http://localhost"
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
