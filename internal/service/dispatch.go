package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"venturemind/internal/metrics"
	"venturemind/internal/model"
	"venturemind/pkg/channel"
)

type AdStore interface {
	GetAd(ctx context.Context, ownerID, id string) (*model.AdContent, error)
	ApproveAd(ctx context.Context, ownerID, id string) (*model.AdContent, error)
	PublishAd(ctx context.Context, ownerID, id string, postedAt time.Time, send func(model.AdContent) error) (*model.AdContent, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, ownerID string) (*model.Profile, error)
}

type Backends interface {
	Get(kind channel.Kind) (channel.Backend, bool)
}

// Target selects where an ad goes. The zero value resolves the channel from the ad's platform.
type Target struct {
	Kind channel.Kind
}

var TargetByPlatform = Target{}

func TargetChannel(kind channel.Kind) Target {
	return Target{Kind: kind}
}

func (t Target) label() string {
	if t.Kind == "" {
		return "auto"
	}
	return string(t.Kind)
}

// Dispatcher moves ads through approve and publish.
type Dispatcher struct {
	ads      AdStore
	profiles ProfileStore
	backends Backends
	now      func() time.Time
	logger   *slog.Logger
}

func NewDispatcher(ads AdStore, profiles ProfileStore, backends Backends, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		ads:      ads,
		profiles: profiles,
		backends: backends,
		now:      time.Now,
		logger:   logger,
	}
}

// Publish sends the ad to the target channel and marks it posted only after
// the channel accepted it. Checks run in order: ownership, channel
// configuration, status.
func (d *Dispatcher) Publish(ctx context.Context, ownerID, adID string, target Target) (*model.AdContent, error) {
	if ownerID == "" {
		return nil, model.ErrUnauthorized
	}

	ad, err := d.ads.GetAd(ctx, ownerID, adID)
	if err != nil {
		d.observe(target.label(), "storage_error")
		return nil, fmt.Errorf("%w: get ad: %w", model.ErrStorage, err)
	}
	if ad == nil {
		d.observe(target.label(), "not_found")
		return nil, fmt.Errorf("%w: ad %s", model.ErrNotFound, adID)
	}

	kind := target.Kind
	if kind == "" {
		k, ok := channel.ForPlatform(string(ad.Platform))
		if !ok {
			d.observe(target.label(), "not_configured")
			return nil, fmt.Errorf("%w: no channel for platform %s", model.ErrConfiguration, ad.Platform)
		}
		kind = k
	}

	backend, ok := d.backends.Get(kind)
	if !ok {
		d.observe(string(kind), "not_configured")
		return nil, fmt.Errorf("%w: %s is not enabled", model.ErrConfiguration, kind)
	}

	var credential string
	if backend.RequiresCredential() {
		profile, err := d.profiles.GetProfile(ctx, ownerID)
		if err != nil {
			d.observe(string(kind), "storage_error")
			return nil, fmt.Errorf("%w: get profile: %w", model.ErrStorage, err)
		}
		credential = credentialFor(profile, kind)
		if credential == "" {
			d.observe(string(kind), "not_configured")
			return nil, fmt.Errorf("%w: %s", model.ErrConfiguration, missingCredential(kind))
		}
	}

	if !ad.Status.Publishable() {
		d.observe(string(kind), "invalid_state")
		return nil, fmt.Errorf("%w: ad is already %s", model.ErrInvalidState, ad.Status)
	}

	var sendErr error
	posted, err := d.ads.PublishAd(ctx, ownerID, adID, d.now().UTC(), func(locked model.AdContent) error {
		sendErr = backend.Send(ctx, channel.Post{Platform: string(locked.Platform), Text: locked.AdText}, credential)
		return sendErr
	})

	switch {
	case sendErr != nil:
		d.observe(string(kind), "channel_error")
		d.logger.Error("channel send failed", "owner_id", ownerID, "ad_id", adID, "channel", kind, "error", sendErr)
		return nil, toChannelError(kind, sendErr)
	case errors.Is(err, model.ErrInvalidState):
		d.observe(string(kind), "invalid_state")
		return nil, fmt.Errorf("%w: ad %s was published concurrently", model.ErrInvalidState, adID)
	case err != nil:
		d.observe(string(kind), "storage_error")
		d.logger.Error("error marking ad posted", "owner_id", ownerID, "ad_id", adID, "channel", kind, "error", err)
		return nil, fmt.Errorf("%w: publish ad: %w", model.ErrStorage, err)
	case posted == nil:
		d.observe(string(kind), "not_found")
		return nil, fmt.Errorf("%w: ad %s", model.ErrNotFound, adID)
	}

	d.observe(string(kind), "success")
	d.logger.Info("ad posted", "owner_id", ownerID, "ad_id", adID, "channel", kind)

	return posted, nil
}

// Approve moves a draft to approved without posting it.
func (d *Dispatcher) Approve(ctx context.Context, ownerID, adID string) (*model.AdContent, error) {
	if ownerID == "" {
		return nil, model.ErrUnauthorized
	}

	ad, err := d.ads.ApproveAd(ctx, ownerID, adID)
	if errors.Is(err, model.ErrInvalidState) {
		return nil, fmt.Errorf("%w: only drafts can be approved", model.ErrInvalidState)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: approve ad: %w", model.ErrStorage, err)
	}
	if ad == nil {
		return nil, fmt.Errorf("%w: ad %s", model.ErrNotFound, adID)
	}

	d.logger.Info("ad approved", "owner_id", ownerID, "ad_id", adID)
	return ad, nil
}

func (d *Dispatcher) observe(ch, outcome string) {
	metrics.PublishesTotal.WithLabelValues(ch, outcome).Inc()
}

func credentialFor(p *model.Profile, kind channel.Kind) string {
	if p == nil {
		return ""
	}
	var v *string
	switch kind {
	case channel.KindInstagram:
		v = p.InstagramToken
	case channel.KindLinkedIn:
		v = p.LinkedInToken
	case channel.KindWebhook:
		v = p.WebhookURL
	}
	if v == nil {
		return ""
	}
	return *v
}

func missingCredential(kind channel.Kind) string {
	switch kind {
	case channel.KindInstagram:
		return "Instagram API key not found"
	case channel.KindLinkedIn:
		return "LinkedIn API key not found"
	case channel.KindWebhook:
		return "Webhook URL not configured"
	}
	return fmt.Sprintf("%s credential not found", kind)
}

func toChannelError(kind channel.Kind, err error) error {
	var chErr *channel.Error
	if errors.As(err, &chErr) {
		return &model.ChannelError{Channel: string(kind), StatusCode: chErr.StatusCode, Body: chErr.Body, Err: err}
	}
	return &model.ChannelError{Channel: string(kind), Err: err}
}
