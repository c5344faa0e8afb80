package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"sentimentai/internal/domain"
)

// Analyzer is the slice of the analysis service the bot needs.
type Analyzer interface {
	Analyze(ctx context.Context, query string) (*domain.Analysis, error)
}

func StartTelegramBot(analysis Analyzer) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/verdict", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send("Usage: /verdict <company or ticker>\nExample: /verdict Reliance")
		}
		query := strings.Join(args, " ")
		result, err := analysis.Analyze(context.Background(), query)
		if err != nil {
			return c.Send(fmt.Sprintf("Error analyzing %s: %v", query, err))
		}
		return c.Send(verdictMessage(result))
	})

	b.Handle("/price", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send("Usage: /price <company or ticker>\nExample: /price TCS")
		}
		query := strings.Join(args, " ")
		result, err := analysis.Analyze(context.Background(), query)
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching price for %s: %v", query, err))
		}
		return c.Send(priceMessage(result))
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func verdictMessage(result *domain.Analysis) string {
	return fmt.Sprintf(
		"%s (%s)\nVerdict: %s\nConfidence: %.0f%%\nPositive: %d  Negative: %d  Neutral: %d",
		result.Snapshot.Name, result.Symbol, result.Verdict.Verdict,
		result.Summary.DisplayConfidence(),
		result.Summary.Positive, result.Summary.Negative, result.Summary.Neutral,
	)
}

func priceMessage(result *domain.Analysis) string {
	snap := result.Snapshot
	return fmt.Sprintf(
		"%s (%s)\nPrice: %.2f %s\nChange: %+.2f (%.2f%%)",
		snap.Name, result.Symbol, snap.Price, snap.Currency, snap.Change, snap.ChangePercent,
	)
}
