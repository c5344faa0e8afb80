package handler

import (
	"net/http"
	"net/mail"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"sentimentai/internal/report"
)

type subscribeRequest struct {
	Email string `json:"email" binding:"required"`
	Query string `json:"query" binding:"required"`
}

// CreateSubscription godoc
// @Summary      Subscribe to a market brief
// @Description  Runs an analysis for the query, renders the newsletter, and queues it for delivery
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        request  body  subscribeRequest  true  "Recipient and stock query"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/subscriptions [post]
func (h *Handler) CreateSubscription(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.create-subscription")
	defer span.End()

	if h.subs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "subscriptions unavailable: no database configured"})
		return
	}

	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and query are required"})
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
		return
	}
	span.SetAttributes(attribute.String("query", req.Query))

	analysis, err := h.analysis.Analyze(ctx, req.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	html, err := report.RenderNewsletter(req.Email, analysis)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id, err := h.subs.Insert(ctx, req.Email, analysis.Snapshot.Name, html)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"status":  "pending",
		"stock":   analysis.Snapshot.Name,
		"verdict": analysis.Verdict.Verdict,
	})
}
