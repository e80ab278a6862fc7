package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/enrich"
	"linkpulse/internal/handler"
	"linkpulse/internal/mq"
	"linkpulse/internal/repository"
	"linkpulse/internal/service"
	"linkpulse/internal/worker"
	"linkpulse/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gopkg.in/natefinch/lumberjack.v2"
)

// @title LinkPulse API
// @version 1.0
// @description Short links with click analytics
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	logFile := setupLogger(cfg.Server.Mode, &cfg.Log)
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	store, err := repository.NewSQLRepository(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer store.Close()

	cache := repository.CacheInterface(redisRepo)
	if cfg.Cache.LocalTTL > 0 {
		cache = repository.NewTieredCache(redisRepo, cfg.Cache.LocalTTL)
	}

	bloomSvc := service.NewBloomService(redisRepo.GetClient(), &cfg.Bloom)
	bloomSvc.Init(context.Background())

	geo, err := enrich.NewMaxMindLocator(cfg.GeoIP.DatabasePath)
	if err != nil {
		log.Warn().Err(err).Msg("GeoIP disabled, countries will be reported as Unknown")
		geo, _ = enrich.NewMaxMindLocator("")
	}
	defer geo.Close()

	// Initialize services
	aggregator := service.NewAggregator(store, redisRepo, &cfg.Aggregation)
	analyticsSvc := service.NewAnalyticsService(store, store, aggregator)
	shortLinkSvc := service.NewShortLinkService(store, cache, bloomSvc, &cfg.Links, cfg.Cache.TTL, cfg.Server.BaseURL)
	processor := worker.NewProcessor(store, store, enrich.NewEnricher(geo, cfg.Privacy.IPSalt), aggregator)

	// Initialize the click queue
	var (
		publisher   mq.Publisher
		redisQueue  *mq.RedisQueue
		deadLetters service.DeadLetterQueueInterface
		mqConsumer  *mq.Consumer
		mqProducer  *mq.Producer
	)
	switch cfg.Queue.Driver {
	case "rocketmq":
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize RocketMQ producer")
		}
		publisher = mqProducer
	default:
		redisQueue = mq.NewRedisQueue(redisRepo.GetClient(), &cfg.Queue)
		publisher = redisQueue
		deadLetters = redisQueue
	}

	dispatcher := service.NewDispatcher(publisher, cfg.Queue.DispatchBuffer, cfg.Queue.EnqueueTimeout)
	go dispatcher.Run()

	resolver := service.NewResolver(store, cache, dispatcher, &cfg.Cache)

	// Start workers
	var pool *worker.Pool
	if redisQueue != nil {
		if n, err := redisQueue.RecoverInFlight(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to recover in-flight click events")
		} else if n > 0 {
			log.Info().Int("recovered", n).Msg("Recovered in-flight click events")
		}
		pool = worker.NewPool(redisQueue, processor, aggregator, &cfg.Worker)
	} else {
		pool = worker.NewPool(nil, processor, aggregator, &cfg.Worker)
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if err := pool.Run(workerCtx); err != nil {
			log.Error().Err(err).Msg("Worker pool failed")
		}
	}()

	if cfg.Queue.Driver == "rocketmq" {
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, cfg.Queue.MaxAttempts, cfg.Worker.Concurrency, pool.Handle)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize RocketMQ consumer")
		}
		if err := mqConsumer.Subscribe(); err != nil {
			log.Fatal().Err(err).Msg("Failed to subscribe to RocketMQ")
		}
	}

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger("/health", "/metrics"))
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(corsMiddleware())

	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"database": func(ctx context.Context) error {
			db, err := store.GetDB().DB()
			if err != nil {
				return err
			}
			return db.PingContext(ctx)
		},
		"redis": func(ctx context.Context) error {
			return redisRepo.GetClient().Ping(ctx).Err()
		},
	})
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		linkHandler := handler.NewLinkHandler(shortLinkSvc)
		v1.POST("/links", linkHandler.Create)
		v1.DELETE("/links/:shortCode", linkHandler.Delete)

		analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc)
		v1.GET("/analytics/:shortCode", analyticsHandler.GetAnalytics)

		adminHandler := handler.NewAdminHandler(analyticsSvc, deadLetters)
		admin := v1.Group("/admin")
		admin.GET("/dead-letters", adminHandler.ListDeadLetters)
		admin.POST("/dead-letters/:id/requeue", adminHandler.RequeueDeadLetter)
		admin.POST("/links/:shortCode/rebuild", adminHandler.RebuildRollups)
	}

	// Swagger documentation
	setupSwagger(router)

	// Redirect handler (short codes)
	redirectHandler := handler.NewRedirectHandler(resolver)
	router.GET("/:shortCode", redirectHandler.Redirect)

	// Start server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Flush the events of redirects already served
	if err := dispatcher.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Click events lost on shutdown")
	}
	if mqProducer != nil {
		mqProducer.Close()
	}

	if mqConsumer != nil {
		mqConsumer.Close()
	}
	stopWorkers()
	select {
	case <-workersDone:
	case <-ctx.Done():
		log.Warn().Msg("Workers did not stop in time, unsettled events will be recovered on restart")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the global logger. It returns the rotating log file
// when one is configured.
func setupLogger(mode string, cfg *config.LogConfig) io.Closer {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
		if mode != gin.ReleaseMode {
			level = zerolog.DebugLevel
		}
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	if mode != gin.ReleaseMode {
		// Use console writer for pretty output
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	var file *lumberjack.Logger
	if cfg.File != "" {
		file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out = zerolog.MultiLevelWriter(out, file)
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	if file == nil {
		return nil
	}
	return file
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, "+handler.OwnerHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
