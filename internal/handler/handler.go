package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"sentimentai/internal/domain"
)

// AnalysisRunner runs one analysis pipeline for a query.
type AnalysisRunner interface {
	Analyze(ctx context.Context, query string) (*domain.Analysis, error)
}

// SubscriptionStore persists newsletter delivery requests.
type SubscriptionStore interface {
	Insert(ctx context.Context, email, stockName, htmlPayload string) (int64, error)
}

type Handler struct {
	tracer   trace.Tracer
	analysis AnalysisRunner
	subs     SubscriptionStore
}

// New builds the handler set. subs may be nil when no database is
// configured; the subscription endpoint then responds 503.
func New(tracer trace.Tracer, analysis AnalysisRunner, subs SubscriptionStore) *Handler {
	return &Handler{
		tracer:   tracer,
		analysis: analysis,
		subs:     subs,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/analysis", h.GetAnalysis)
	r.POST("/api/subscriptions", h.CreateSubscription)
}
