package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"venturemind/internal/auth"
	"venturemind/internal/model"

	"github.com/gin-gonic/gin"
)

type ProfileStore interface {
	GetProfile(ctx context.Context, ownerID string) (*model.Profile, error)
	UpsertProfile(ctx context.Context, p *model.Profile) error
}

type ProfileHandler struct {
	repository ProfileStore
}

func NewProfileHandler(repository ProfileStore) *ProfileHandler {
	return &ProfileHandler{repository: repository}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.repository.GetProfile(c.Request.Context(), auth.OwnerID(c))
	if err != nil {
		slog.Error("error fetching profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(*profile))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.WebhookURL != nil && *req.WebhookURL != "" && !validWebhookURL(*req.WebhookURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "webhook_url must be an absolute http(s) URL"})
		return
	}

	ownerID := auth.OwnerID(c)

	profile, err := h.repository.GetProfile(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error("error fetching profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if profile == nil {
		profile = &model.Profile{OwnerID: ownerID}
	}

	if req.BusinessName != nil {
		profile.BusinessName = *req.BusinessName
	}
	if req.OwnerName != nil {
		profile.OwnerName = *req.OwnerName
	}
	if req.InstagramAPIKey != nil {
		profile.InstagramToken = emptyToNil(*req.InstagramAPIKey)
	}
	if req.LinkedInAPIKey != nil {
		profile.LinkedInToken = emptyToNil(*req.LinkedInAPIKey)
	}
	if req.WebhookURL != nil {
		profile.WebhookURL = emptyToNil(*req.WebhookURL)
	}

	if err := h.repository.UpsertProfile(c.Request.Context(), profile); err != nil {
		slog.Error("error saving profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(*profile))
}

func toProfileResponse(p model.Profile) ProfileResponse {
	return ProfileResponse{
		BusinessName:        p.BusinessName,
		OwnerName:           p.OwnerName,
		InstagramConfigured: p.InstagramToken != nil,
		LinkedInConfigured:  p.LinkedInToken != nil,
		WebhookConfigured:   p.WebhookURL != nil,
	}
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func validWebhookURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
