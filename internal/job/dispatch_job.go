// Package job runs the background delivery loop for pending newsletters.
package job

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel/trace"

	"sentimentai/internal/domain"
)

// PendingLister reads and updates newsletter subscriptions.
type PendingLister interface {
	ListPending(ctx context.Context, limit int) ([]domain.Subscription, error)
	MarkDelivered(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64) error
}

// Sender delivers one rendered newsletter.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) (string, error)
}

// Dispatcher polls for pending subscriptions and mails them out.
type Dispatcher struct {
	tracer       trace.Tracer
	subs         PendingLister
	sender       Sender
	pollInterval time.Duration
	batchSize    int
}

func NewDispatcher(tracer trace.Tracer, subs PendingLister, sender Sender, pollIntervalSecs, batchSize int) *Dispatcher {
	return &Dispatcher{
		tracer:       tracer,
		subs:         subs,
		sender:       sender,
		pollInterval: time.Duration(pollIntervalSecs) * time.Second,
		batchSize:    batchSize,
	}
}

// Start blocks until ctx is cancelled, running one dispatch cycle per tick.
func (d *Dispatcher) Start(ctx context.Context) {
	log.Println("Newsletter dispatcher starting...")

	// Run immediately on start
	d.RunCycle(ctx)

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Newsletter dispatcher stopped")
			return
		case <-ticker.C:
			d.RunCycle(ctx)
		}
	}
}

// RunCycle drains one batch of pending subscriptions. A failed send marks the
// row failed rather than blocking the rest of the batch.
func (d *Dispatcher) RunCycle(ctx context.Context) {
	ctx, span := d.tracer.Start(ctx, "dispatcher.run-cycle")
	defer span.End()

	pending, err := d.subs.ListPending(ctx, d.batchSize)
	if err != nil {
		log.Printf("dispatcher: list pending failed: %v", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	for _, sub := range pending {
		subject := "Your Automated AI Market Brief: " + sub.StockName
		id, err := d.sender.Send(ctx, sub.Email, subject, sub.HTMLPayload)
		if err != nil {
			log.Printf("dispatcher: send to %s failed: %v", sub.Email, err)
			if err := d.subs.MarkFailed(ctx, sub.ID); err != nil {
				log.Printf("dispatcher: mark failed for %d: %v", sub.ID, err)
			}
			continue
		}
		log.Printf("dispatcher: delivered %s to %s (provider id %s)", sub.StockName, sub.Email, id)
		if err := d.subs.MarkDelivered(ctx, sub.ID); err != nil {
			log.Printf("dispatcher: mark delivered for %d: %v", sub.ID, err)
		}
	}
}
