package model

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestPublishable(t *testing.T) {
	assert.Equal(t, true, StatusDraft.Publishable())
	assert.Equal(t, true, StatusApproved.Publishable())
	assert.Equal(t, false, StatusPosted.Publishable())
}

func TestParseAdStatus(t *testing.T) {
	s, err := ParseAdStatus("approved")
	assert.Equal(t, nil, err)
	assert.Equal(t, StatusApproved, s)

	_, err = ParseAdStatus("archived")
	assert.NotEqual(t, nil, err)
}

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform("linkedin")
	assert.Equal(t, nil, err)
	assert.Equal(t, PlatformLinkedIn, p)

	_, err = ParsePlatform("tiktok")
	assert.Equal(t, true, errors.Is(err, ErrValidation))
}

func TestUpstreamErrors(t *testing.T) {
	cause := errors.New("connection refused")

	aiErr := &AIBackendError{Err: cause}
	assert.Equal(t, true, errors.Is(aiErr, cause))
	assert.Equal(t, "ai backend unavailable: connection refused", aiErr.Error())

	chErr := &ChannelError{Channel: "linkedin", StatusCode: 401}
	assert.Equal(t, "failed to post to linkedin: status 401", chErr.Error())
}
