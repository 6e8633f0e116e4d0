package handler

import (
	"context"
	"net/http"
	"venturemind/internal/auth"
	"venturemind/internal/model"

	"github.com/gin-gonic/gin"
)

type Analyzer interface {
	Analyze(ctx context.Context, ownerID, datasetID, datasetText, problemStatement string) (*model.Insight, error)
}

type AnalysisHandler struct {
	analyzer Analyzer
}

func NewAnalysisHandler(analyzer Analyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer}
}

func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	insight, err := h.analyzer.Analyze(c.Request.Context(), auth.OwnerID(c), req.DatasetID, req.DatasetContent, req.ProblemStatement)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{Success: true, Insights: insight.InsightsText})
}
