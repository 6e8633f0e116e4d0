package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"venturemind/internal/metrics"
	"venturemind/internal/model"
	"venturemind/pkg/llm"
)

// DefaultAITimeout bounds one generative call when no timeout is configured.
const DefaultAITimeout = 30 * time.Second

type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, insight *model.Insight, ads []*model.AdContent) error
}

// Analyzer turns a dataset and a business problem into a stored insight plus draft posts.
type Analyzer struct {
	store   AnalysisStore
	ai      llm.Completer
	timeout time.Duration
	logger  *slog.Logger
}

func NewAnalyzer(store AnalysisStore, ai llm.Completer, timeout time.Duration, logger *slog.Logger) *Analyzer {
	if timeout <= 0 {
		timeout = DefaultAITimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{store: store, ai: ai, timeout: timeout, logger: logger}
}

// Analyze calls the model exactly once and persists the insight and its drafts
// together. Nothing is stored when the model call or the write fails.
func (a *Analyzer) Analyze(ctx context.Context, ownerID, datasetID, datasetText, problemStatement string) (*model.Insight, error) {
	if ownerID == "" {
		return nil, model.ErrUnauthorized
	}
	if strings.TrimSpace(problemStatement) == "" {
		metrics.AnalysesTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: problem statement is required", model.ErrValidation)
	}
	if strings.TrimSpace(datasetText) == "" {
		metrics.AnalysesTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: dataset content is required", model.ErrValidation)
	}

	systemPrompt, userPrompt := llm.BuildAnalysisPrompt(problemStatement, datasetText)

	reply, err := a.complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("ai_error").Inc()
		a.logger.Error("ai backend call failed", "owner_id", ownerID, "dataset_id", datasetID, "provider", a.ai.Name(), "error", err)
		return nil, toAIBackendError(err)
	}

	sections := llm.ParseSections(reply)

	insight := &model.Insight{
		OwnerID:          ownerID,
		DatasetID:        datasetID,
		ProblemStatement: problemStatement,
		InsightsText:     sections.Insights,
	}

	var ads []*model.AdContent
	if sections.Instagram != nil && *sections.Instagram != "" {
		ads = append(ads, draft(ownerID, model.PlatformInstagram, *sections.Instagram))
	}
	if sections.LinkedIn != nil && *sections.LinkedIn != "" {
		ads = append(ads, draft(ownerID, model.PlatformLinkedIn, *sections.LinkedIn))
	}

	if err := a.store.SaveAnalysis(ctx, insight, ads); err != nil {
		metrics.AnalysesTotal.WithLabelValues("storage_error").Inc()
		a.logger.Error("error saving analysis", "owner_id", ownerID, "dataset_id", datasetID, "error", err)
		return nil, fmt.Errorf("%w: save analysis: %w", model.ErrStorage, err)
	}

	metrics.AnalysesTotal.WithLabelValues("success").Inc()
	a.logger.Info("analysis saved", "owner_id", ownerID, "dataset_id", datasetID, "insight_id", insight.ID, "ads", len(ads))

	return insight, nil
}

func (a *Analyzer) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	reply, err := a.ai.Complete(ctx, systemPrompt, userPrompt)
	metrics.AIRequestDuration.WithLabelValues(a.ai.Name()).Observe(time.Since(start).Seconds())

	return reply, err
}

func draft(ownerID string, platform model.Platform, text string) *model.AdContent {
	return &model.AdContent{
		OwnerID:  ownerID,
		Platform: platform,
		AdText:   text,
		Status:   model.StatusDraft,
	}
}

func toAIBackendError(err error) error {
	var apiErr *llm.APIError
	if errors.As(err, &apiErr) {
		return &model.AIBackendError{StatusCode: apiErr.StatusCode, Body: apiErr.Body, Err: err}
	}
	return &model.AIBackendError{Err: err}
}
