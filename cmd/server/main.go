package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sentimentai/internal/bot"
	"sentimentai/internal/cache"
	"sentimentai/internal/config"
	"sentimentai/internal/db"
	"sentimentai/internal/handler"
	"sentimentai/internal/news"
	"sentimentai/internal/provider"
	"sentimentai/internal/quote"
	"sentimentai/internal/repository"
	"sentimentai/internal/service"
	"sentimentai/internal/ticker"
	"sentimentai/internal/verdict"
	"sentimentai/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initPostgresFunc       = db.InitPostgres
	initRedisFunc          = cache.InitRedis
	initTracerFunc         = tracing.InitTracer
	startTelegramBotFunc   = bot.StartTelegramBot
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           SentimentAI API
// @version         1.0
// @description     Market verdict engine: price history, news sentiment, and a weighted scorer ensemble.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initPostgresFunc(ctx, cfg.DatabaseURL)
	initRedisFunc(ctx, cfg.RedisURL)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Without Postgres the API still serves analyses; the subscription
	// endpoint reports itself unavailable instead of touching a nil pool.
	var subStore handler.SubscriptionStore
	if db.Pool != nil {
		subRepo := repository.NewSubscriptionRepository(db.Pool, tracer)
		if err := subRepo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		subStore = subRepo
	}

	// Data acquisition: one shared transport behind every provider.
	mode := provider.ModeDirect
	if cfg.TransportMode == "wrapped" {
		mode = provider.ModeWrapped
	}
	fetcher := provider.NewFetcher(mode, time.Duration(cfg.ProviderTimeoutSecs)*time.Second)

	resolver := ticker.NewResolver(
		provider.NewGrowwProvider(fetcher, tracer),
		provider.NewYahooSearchProvider(fetcher, tracer),
		tracer,
	)
	quotes := quote.NewAcquirer(provider.NewYahooChartProvider(fetcher, tracer), tracer)
	headlines := news.NewAcquirer(
		provider.NewGNewsProvider(fetcher, cfg.GNewsAPIKey, 15, tracer),
		provider.NewMediaStackProvider(fetcher, cfg.MediaStackAPIKey, 15, tracer),
		provider.NewNewsAPIProvider(fetcher, cfg.NewsAPIKey, 20, tracer),
		tracer,
	)

	analysisService := service.NewAnalysisService(
		resolver, quotes, headlines, verdict.NewCombiner(),
		cache.Client, time.Duration(cfg.CacheTTLSecs)*time.Second, tracer,
	)

	startTelegramBotFunc(analysisService)

	h := handler.New(tracer, analysisService, subStore)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("sentimentai"))
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
