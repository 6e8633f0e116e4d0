package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"venturemind/internal/auth"
	"venturemind/internal/model"
	"venturemind/internal/service"
	"venturemind/pkg/channel"

	"github.com/gin-gonic/gin"
)

type Publisher interface {
	Publish(ctx context.Context, ownerID, adID string, target service.Target) (*model.AdContent, error)
	Approve(ctx context.Context, ownerID, adID string) (*model.AdContent, error)
}

type PublishHandler struct {
	publisher Publisher
}

func NewPublishHandler(publisher Publisher) *PublishHandler {
	return &PublishHandler{publisher: publisher}
}

// Publish returns a handler that sends the ad in the body to target.
func (h *PublishHandler) Publish(target service.Target) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PublishRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "adId is required"})
			return
		}

		ad, err := h.publisher.Publish(c.Request.Context(), auth.OwnerID(c), req.AdID, target)
		if err != nil {
			respondError(c, err)
			return
		}

		kind := target.Kind
		if kind == "" {
			kind, _ = channel.ForPlatform(string(ad.Platform))
		}

		c.JSON(http.StatusOK, PublishResponse{
			Success: true,
			Message: fmt.Sprintf("Posted to %s successfully", displayName(kind)),
		})
	}
}

func (h *PublishHandler) Approve(c *gin.Context) {
	ad, err := h.publisher.Approve(c.Request.Context(), auth.OwnerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAdResponse(*ad))
}

func displayName(kind channel.Kind) string {
	switch kind {
	case channel.KindInstagram:
		return "Instagram"
	case channel.KindLinkedIn:
		return "LinkedIn"
	}
	return string(kind)
}

func toAdResponse(a model.AdContent) AdResponse {
	res := AdResponse{
		ID:        a.ID,
		Platform:  string(a.Platform),
		AdText:    a.AdText,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if a.PostedAt != nil {
		posted := a.PostedAt.Format(time.RFC3339)
		res.PostedAt = &posted
	}
	return res
}
