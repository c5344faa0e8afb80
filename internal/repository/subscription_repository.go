// Package repository persists newsletter subscriptions in Postgres.
package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/trace"

	"sentimentai/internal/domain"
)

const createSubscriptionsTable = `
CREATE TABLE IF NOT EXISTS newsletter_subscriptions (
    id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    email        TEXT        NOT NULL,
    stock_name   TEXT        NOT NULL,
    html_payload TEXT        NOT NULL,
    status       TEXT        NOT NULL DEFAULT 'pending',
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    delivered_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_newsletter_subscriptions_status
    ON newsletter_subscriptions (status, created_at);
`

type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type SubscriptionRepository struct {
	pool   PgxPool
	tracer trace.Tracer
}

func NewSubscriptionRepository(pool PgxPool, tracer trace.Tracer) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool, tracer: tracer}
}

func (r *SubscriptionRepository) RunMigrations(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "subscription-repo.run-migrations")
	defer span.End()

	_, err := r.pool.Exec(ctx, createSubscriptionsTable)
	return err
}

// Insert stores a pending subscription and returns its id.
func (r *SubscriptionRepository) Insert(ctx context.Context, email, stockName, htmlPayload string) (int64, error) {
	_, span := r.tracer.Start(ctx, "subscription-repo.insert")
	defer span.End()

	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO newsletter_subscriptions (email, stock_name, html_payload, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		email, stockName, htmlPayload, domain.StatusPending,
	).Scan(&id)
	return id, err
}

// ListPending returns up to limit undelivered subscriptions, oldest first.
func (r *SubscriptionRepository) ListPending(ctx context.Context, limit int) ([]domain.Subscription, error) {
	_, span := r.tracer.Start(ctx, "subscription-repo.list-pending")
	defer span.End()

	rows, err := r.pool.Query(ctx,
		`SELECT id, email, stock_name, html_payload, status, created_at
		 FROM newsletter_subscriptions
		 WHERE status = $1
		 ORDER BY created_at
		 LIMIT $2`,
		domain.StatusPending, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var s domain.Subscription
		var ts time.Time
		if err := rows.Scan(&s.ID, &s.Email, &s.StockName, &s.HTMLPayload, &s.Status, &ts); err != nil {
			return nil, err
		}
		s.CreatedAt = ts.UTC()
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// MarkDelivered stamps a subscription as sent.
func (r *SubscriptionRepository) MarkDelivered(ctx context.Context, id int64) error {
	_, span := r.tracer.Start(ctx, "subscription-repo.mark-delivered")
	defer span.End()

	_, err := r.pool.Exec(ctx,
		`UPDATE newsletter_subscriptions
		 SET status = $1, delivered_at = now()
		 WHERE id = $2`,
		domain.StatusDelivered, id,
	)
	return err
}

// MarkFailed records a delivery failure so the dispatcher stops retrying it.
func (r *SubscriptionRepository) MarkFailed(ctx context.Context, id int64) error {
	_, span := r.tracer.Start(ctx, "subscription-repo.mark-failed")
	defer span.End()

	_, err := r.pool.Exec(ctx,
		`UPDATE newsletter_subscriptions
		 SET status = $1
		 WHERE id = $2`,
		domain.StatusFailed, id,
	)
	return err
}
