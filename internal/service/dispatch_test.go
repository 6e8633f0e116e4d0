package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"
	"venturemind/internal/model"
	"venturemind/pkg/channel"

	"github.com/go-playground/assert/v2"
)

const (
	owner = "owner-1"
	adID  = "ad-1"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type dispatchFixture struct {
	ads       *fakeAdStore
	profiles  *fakeProfiles
	instagram *fakeBackend
	linkedin  *fakeBackend
	webhook   *fakeBackend
	chat      *fakeBackend
	d         *Dispatcher
}

func newDispatchFixture(ad model.AdContent) *dispatchFixture {
	f := &dispatchFixture{
		ads: newFakeAdStore(ad),
		profiles: &fakeProfiles{profile: &model.Profile{
			OwnerID:        owner,
			InstagramToken: strPtr("ig-token"),
			LinkedInToken:  strPtr("li-token"),
			WebhookURL:     strPtr("https://hooks.example.com/x"),
		}},
		instagram: &fakeBackend{kind: channel.KindInstagram, needsCred: true},
		linkedin:  &fakeBackend{kind: channel.KindLinkedIn, needsCred: true},
		webhook:   &fakeBackend{kind: channel.KindWebhook, needsCred: true},
		chat:      &fakeBackend{kind: channel.KindChat},
	}
	backends := fakeBackends{
		channel.KindInstagram: f.instagram,
		channel.KindLinkedIn:  f.linkedin,
		channel.KindWebhook:   f.webhook,
		channel.KindChat:      f.chat,
	}
	f.d = NewDispatcher(f.ads, f.profiles, backends, nil)
	f.d.now = func() time.Time { return fixedNow }
	return f
}

func draftAd(platform model.Platform) model.AdContent {
	return model.AdContent{
		ID:       adID,
		OwnerID:  owner,
		Platform: platform,
		AdText:   "Our Q3 results show strong momentum.",
		Status:   model.StatusDraft,
	}
}

func TestPublish_Success(t *testing.T) {
	f := newDispatchFixture(draftAd(model.PlatformLinkedIn))

	ad, err := f.d.Publish(context.Background(), owner, adID, TargetChannel(channel.KindLinkedIn))

	assert.Equal(t, nil, err)
	assert.Equal(t, model.StatusPosted, ad.Status)
	assert.Equal(t, fixedNow, *ad.PostedAt)
	assert.Equal(t, 1, f.linkedin.calls())
	assert.Equal(t, "li-token", f.linkedin.credentials[0])
	assert.Equal(t, channel.Post{Platform: "linkedin", Text: "Our Q3 results show strong momentum."}, f.linkedin.posts[0])
}

func TestPublish_ByPlatform(t *testing.T) {
	f := newDispatchFixture(draftAd(model.PlatformInstagram))

	_, err := f.d.Publish(context.Background(), owner, adID, TargetByPlatform)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, f.instagram.calls())
	assert.Equal(t, 0, f.linkedin.calls())
}

func TestPublish_FromApproved(t *testing.T) {
	ad := draftAd(model.PlatformInstagram)
	ad.Status = model.StatusApproved
	f := newDispatchFixture(ad)

	posted, err := f.d.Publish(context.Background(), owner, adID, TargetChannel(channel.KindWebhook))

	assert.Equal(t, nil, err)
	assert.Equal(t, model.StatusPosted, posted.Status)
	assert.Equal(t, "https://hooks.example.com/x", f.webhook.credentials[0])
}

func TestPublish_ChatNeedsNoProfile(t *testing.T) {
	f := newDispatchFixture(draftAd(model.PlatformInstagram))
	f.profiles.profile = nil

	_, err := f.d.Publish(context.Background(), owner, adID, TargetChannel(channel.KindChat))

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, f.chat.calls())
	assert.Equal(t, "", f.chat.credentials[0])
}

func TestPublish_Twice(t *testing.T) {
	f := newDispatchFixture(draftAd(model.PlatformLinkedIn))

	_, err := f.d.Publish(context.Background(), owner, adID, TargetChannel(channel.KindLinkedIn))
	assert.Equal(t, nil, err)

	_, err = f.d.Publish(context.Background(), owner, adID, TargetChannel(channel.KindLinkedIn))

	assert.Equal(t, true, errors.Is(err, model.ErrInvalidState))
	assert.Equal(t, 1, f.linkedin.calls())

	stored := f.ads.get(adID)
	assert.Equal(t, model.StatusPosted, stored.Status)
	assert.Equal(t, fixedNow, *stored.PostedAt)
}

func TestPublish_AlreadyPostedMakesNoCalls(t *testing.T) {
	ad := draftAd(model.PlatformInstagram)
	ad.Status = model.StatusPosted
	f := newDispatchFixture(ad)

	for _, k := range []channel.Kind{channel.KindInstagram, channel.KindLinkedIn, channel.KindWebhook, channel.KindChat} {
		_, err := f.d.Publish(context.Background(), owner, adID, TargetChannel(k))
		assert.Equal(t, true, errors.Is(err, model.ErrInvalidState))
	}

	assert.Equal(t, 0, f.instagram.calls()+f.linkedin.calls()+f.webhook.calls()+f.chat.calls())
}

func TestPublish_OtherOwnerIsNotFound(t *testing.T) {
	f := newDispatchFixture(draftAd(model.PlatformInstagram))

	_, err := f.d.Publish(context.Background(), "owner-2", adID, TargetChannel(channel.KindChat))

	assert.Equal(t, true, errors.Is(err, model.ErrNotFound))
	assert.Equal(t, 0, f.chat.calls())
	assert.Equal(t, model.StatusDraft, f.ads.get(adID).Status)
}

func TestPublish_MissingCredential(t *testing.T) {
	f := newDispatchFixture(draftAd(model.PlatformInstagram))
	f.profiles.profile.InstagramToken = nil

	_, err := f.d.Publish(context.Background(), owner, adID, TargetByPlatform)

	assert.Equal(t, true, errors.Is(err, model.ErrConfiguration))
	assert.Equal(t, "channel not configured: Instagram API key not found", err.Error())
	assert.Equal(t, 0, f.instagram.calls())
}

func TestPublish_ConfigurationCheckedBeforeState(t *testing.T) {
	ad := draftAd(model.PlatformLinkedIn)
	ad.Status = model.StatusPosted
	f := newDispatchFixture(ad)
	f.profiles.profile = nil

	_, err := f.d.Publish(context.Background(), owner, adID, TargetChannel(channel.KindWebhook))

	assert.Equal(t, true, errors.Is(err, model.ErrConfiguration))
}

func TestPublish_ChannelFailureLeavesDraft(t *testing.T) {
	f := newDispatchFixture(draftAd(model.PlatformInstagram))
	f.instagram.err = &channel.Error{Kind: channel.KindInstagram, StatusCode: http.StatusBadRequest, Body: "bad token"}

	_, err := f.d.Publish(context.Background(), owner, adID, TargetByPlatform)

	var chErr *model.ChannelError
	assert.Equal(t, true, errors.As(err, &chErr))
	assert.Equal(t, "instagram", chErr.Channel)
	assert.Equal(t, http.StatusBadRequest, chErr.StatusCode)
	assert.Equal(t, "bad token", chErr.Body)

	stored := f.ads.get(adID)
	assert.Equal(t, model.StatusDraft, stored.Status)
	assert.Equal(t, (*time.Time)(nil), stored.PostedAt)
}

func TestPublish_NetworkFailure(t *testing.T) {
	f := newDispatchFixture(draftAd(model.PlatformLinkedIn))
	f.webhook.err = &channel.Error{Kind: channel.KindWebhook, Err: errors.New("dial tcp: connection refused")}

	_, err := f.d.Publish(context.Background(), owner, adID, TargetChannel(channel.KindWebhook))

	var chErr *model.ChannelError
	assert.Equal(t, true, errors.As(err, &chErr))
	assert.Equal(t, 0, chErr.StatusCode)
	assert.Equal(t, model.StatusDraft, f.ads.get(adID).Status)
}

func TestPublish_Concurrent(t *testing.T) {
	f := newDispatchFixture(draftAd(model.PlatformInstagram))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.d.Publish(context.Background(), owner, adID, TargetChannel(channel.KindChat))
		}(i)
	}
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, model.ErrInvalidState):
			rejected++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 1, f.chat.calls())
}

func TestApprove(t *testing.T) {
	f := newDispatchFixture(draftAd(model.PlatformInstagram))

	ad, err := f.d.Approve(context.Background(), owner, adID)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.StatusApproved, ad.Status)
	assert.Equal(t, 0, f.instagram.calls())

	_, err = f.d.Approve(context.Background(), owner, adID)
	assert.Equal(t, true, errors.Is(err, model.ErrInvalidState))

	_, err = f.d.Approve(context.Background(), "owner-2", adID)
	assert.Equal(t, true, errors.Is(err, model.ErrNotFound))
}
