package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sentimentai/internal/config"
	"sentimentai/internal/db"
	"sentimentai/internal/job"
	"sentimentai/internal/mailer"
	"sentimentai/internal/repository"
	"sentimentai/pkg/tracing"

	"github.com/joho/godotenv"
)

var (
	loadEnvFunc       = godotenv.Load
	loadConfigFunc    = config.Load
	initPostgresFunc  = db.InitPostgres
	initTracerFunc    = tracing.InitTracer
	setupSignalNotify = signal.Notify
	runMigrationsFunc = func(ctx context.Context, repo *repository.SubscriptionRepository) error {
		return repo.RunMigrations(ctx)
	}
	startDispatcher = func(d *job.Dispatcher, ctx context.Context) { d.Start(ctx) }
)

func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initPostgresFunc(ctx, cfg.DatabaseURL)
	if db.Pool == nil {
		log.Fatal("dispatcher requires a Postgres connection")
	}

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	subRepo := repository.NewSubscriptionRepository(db.Pool, tracer)
	if err := runMigrationsFunc(ctx, subRepo); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	sender := mailer.NewResendClient(cfg.ResendAPIKey, cfg.NewsletterSender, tracer)
	dispatcher := job.NewDispatcher(tracer, subRepo, sender, cfg.DispatchPollSecs, cfg.DispatchBatchSize)

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down dispatcher...")
		cancel()
	}()

	startDispatcher(dispatcher, ctx)
	log.Println("Dispatcher exiting")
}
