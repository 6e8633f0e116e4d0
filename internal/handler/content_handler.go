package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
	"venturemind/internal/auth"
	"venturemind/internal/model"

	"github.com/gin-gonic/gin"
)

type ContentStore interface {
	GetInsights(ctx context.Context, ownerID string) ([]model.Insight, error)
	GetAds(ctx context.Context, ownerID string) ([]model.AdContent, error)
}

type ContentHandler struct {
	repository ContentStore
}

func NewContentHandler(repository ContentStore) *ContentHandler {
	return &ContentHandler{repository: repository}
}

func (h *ContentHandler) GetInsights(c *gin.Context) {
	insights, err := h.repository.GetInsights(c.Request.Context(), auth.OwnerID(c))
	if err != nil {
		slog.Error("error fetching insights", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]InsightResponse, 0, len(insights))
	for _, i := range insights {
		res = append(res, InsightResponse{
			ID:               i.ID,
			DatasetID:        i.DatasetID,
			ProblemStatement: i.ProblemStatement,
			InsightsText:     i.InsightsText,
			CreatedAt:        i.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *ContentHandler) GetAds(c *gin.Context) {
	ads, err := h.repository.GetAds(c.Request.Context(), auth.OwnerID(c))
	if err != nil {
		slog.Error("error fetching ads", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]AdResponse, 0, len(ads))
	for _, a := range ads {
		res = append(res, toAdResponse(a))
	}

	c.JSON(http.StatusOK, res)
}
