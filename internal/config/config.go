package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	TelegramBotToken string
	DatabaseURL      string
	RedisURL         string
	HTTPPort         int

	TransportMode       string
	ProviderTimeoutSecs int
	CacheTTLSecs        int

	GNewsAPIKey      string
	MediaStackAPIKey string
	NewsAPIKey       string

	ResendAPIKey      string
	NewsletterSender  string
	DispatchPollSecs  int
	DispatchBatchSize int
}

func Load() *Config {
	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		GNewsAPIKey:      os.Getenv("GNEWS_API_KEY"),
		MediaStackAPIKey: os.Getenv("MEDIASTACK_API_KEY"),
		NewsAPIKey:       os.Getenv("NEWSAPI_KEY"),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		NewsletterSender: strings.TrimSpace(os.Getenv("NEWSLETTER_SENDER")),
	}

	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}
	if cfg.GNewsAPIKey == "" {
		log.Println("Warning: GNEWS_API_KEY not set, primary news stage will fail over")
	}
	if cfg.ResendAPIKey == "" {
		log.Println("Warning: RESEND_API_KEY not set, newsletter delivery will fail")
	}

	cfg.HTTPPort = 8080
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	cfg.TransportMode = strings.ToLower(strings.TrimSpace(os.Getenv("TRANSPORT_MODE")))
	if cfg.TransportMode == "" {
		cfg.TransportMode = "direct"
	}
	if cfg.TransportMode != "direct" && cfg.TransportMode != "wrapped" {
		log.Printf("Warning: unsupported TRANSPORT_MODE=%q, defaulting to direct", cfg.TransportMode)
		cfg.TransportMode = "direct"
	}

	cfg.ProviderTimeoutSecs = 15
	if v := strings.TrimSpace(os.Getenv("PROVIDER_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ProviderTimeoutSecs = n
		}
	}

	cfg.CacheTTLSecs = 300
	if v := strings.TrimSpace(os.Getenv("CACHE_TTL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTLSecs = n
		}
	}

	cfg.DispatchPollSecs = 60
	if v := strings.TrimSpace(os.Getenv("DISPATCH_POLL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DispatchPollSecs = n
		}
	}

	cfg.DispatchBatchSize = 25
	if v := strings.TrimSpace(os.Getenv("DISPATCH_BATCH_SIZE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DispatchBatchSize = n
		}
	}

	return cfg
}
