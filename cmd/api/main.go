package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"
	"venturemind/db"
	"venturemind/internal/auth"
	"venturemind/internal/config"
	"venturemind/internal/handler"
	"venturemind/internal/metrics"
	"venturemind/internal/ratelimit"
	"venturemind/internal/repository"
	"venturemind/internal/service"
	"venturemind/pkg/channel"
	"venturemind/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if cfg.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is not set")
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	ai, err := llm.NewCompleter(context.Background(), cfg.AIProvider, cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	if err != nil {
		log.Fatalf("error creating AI client: %v", err)
	}
	slog.Info("ai backend configured", "provider", ai.Name(), "model", cfg.AIModel)

	datasetRepo := repository.NewDatasetRepository(conn)
	contentRepo := repository.NewContentRepository(conn)
	profileRepo := repository.NewProfileRepository(conn)

	backends := channel.NewRegistry(
		channel.NewInstagramClient(cfg.ChannelTimeout),
		channel.NewLinkedInClient(cfg.LinkedInAuthorURN, cfg.ChannelTimeout),
		channel.NewWebhookClient(cfg.ChannelTimeout),
		channel.NewChatClient(cfg.ChatWebhookURL, cfg.ChannelTimeout),
	)

	analyzer := service.NewAnalyzer(contentRepo, ai, cfg.AITimeout, slog.Default())
	dispatcher := service.NewDispatcher(contentRepo, profileRepo, backends, slog.Default())

	analysisHandler := handler.NewAnalysisHandler(analyzer)
	publishHandler := handler.NewPublishHandler(dispatcher)
	contentHandler := handler.NewContentHandler(contentRepo)
	datasetHandler := handler.NewDatasetHandler(datasetRepo)
	profileHandler := handler.NewProfileHandler(profileRepo)
	healthHandler := handler.NewHealthHandler(conn)

	r := gin.Default()
	r.Use(metrics.Middleware())

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/health", healthHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/")
	api.Use(auth.Middleware([]byte(cfg.JWTSecret)))

	analyze := []gin.HandlerFunc{analysisHandler.Analyze}
	if redisClient != nil {
		limiter := ratelimit.New(ratelimit.NewRedisCounter(redisClient, db.RateLimitKeyPrefix), cfg.AnalyzeRateLimit, cfg.AnalyzeRateWindow)
		analyze = append([]gin.HandlerFunc{limiter.Middleware()}, analyze...)
	} else {
		slog.Warn("REDIS_URL not set, analysis rate limit disabled")
	}
	api.POST("/analyze", analyze...)

	api.POST("/publish", publishHandler.Publish(service.TargetByPlatform))
	api.POST("/publish/instagram", publishHandler.Publish(service.TargetChannel(channel.KindInstagram)))
	api.POST("/publish/linkedin", publishHandler.Publish(service.TargetChannel(channel.KindLinkedIn)))
	api.POST("/publish/webhook", publishHandler.Publish(service.TargetChannel(channel.KindWebhook)))
	api.POST("/publish/chat", publishHandler.Publish(service.TargetChannel(channel.KindChat)))
	api.POST("/ads/:id/approve", publishHandler.Approve)

	api.GET("/ads", contentHandler.GetAds)
	api.GET("/insights", contentHandler.GetInsights)

	api.GET("/datasets", datasetHandler.GetDatasets)
	api.POST("/datasets", datasetHandler.CreateDataset)
	api.DELETE("/datasets/:id", datasetHandler.DeleteDataset)

	api.GET("/profile", profileHandler.GetProfile)
	api.PUT("/profile", profileHandler.UpdateProfile)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.AITimeout + 30*time.Second,
	}

	slog.Info("starting server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
