package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"sentimentai/internal/service"
)

// GetAnalysis godoc
// @Summary      Analyze a stock
// @Description  Resolves the query to a symbol, gathers prices and news, and returns the verdict
// @Tags         analysis
// @Produce      json
// @Param        q  query  string  true  "Company name or ticker (e.g., Reliance, TCS.NS)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/analysis [get]
func (h *Handler) GetAnalysis(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-analysis")
	defer span.End()

	query := c.Query("q")
	span.SetAttributes(attribute.String("query", query))

	analysis, err := h.analysis.Analyze(ctx, query)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis":   analysis,
		"confidence": analysis.Summary.DisplayConfidence(),
	})
}
