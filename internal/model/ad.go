package model

import (
	"fmt"
	"time"
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
)

func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(s); p {
	case PlatformInstagram, PlatformLinkedIn:
		return p, nil
	}
	return "", fmt.Errorf("%w: unsupported platform %q", ErrValidation, s)
}

// AdStatus moves one way only: draft -> approved -> posted, or draft -> posted.
type AdStatus string

const (
	StatusDraft    AdStatus = "draft"
	StatusApproved AdStatus = "approved"
	StatusPosted   AdStatus = "posted"
)

func ParseAdStatus(s string) (AdStatus, error) {
	switch st := AdStatus(s); st {
	case StatusDraft, StatusApproved, StatusPosted:
		return st, nil
	}
	return "", fmt.Errorf("unknown ad status %q", s)
}

// Publishable reports whether an ad in this status may still be sent to a channel.
func (s AdStatus) Publishable() bool {
	return s == StatusDraft || s == StatusApproved
}

type AdContent struct {
	ID        string
	OwnerID   string
	Platform  Platform
	AdText    string
	Status    AdStatus
	CreatedAt time.Time
	PostedAt  *time.Time
}
