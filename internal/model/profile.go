package model

type Profile struct {
	ID             string
	OwnerID        string
	BusinessName   string
	OwnerName      string
	InstagramToken *string
	LinkedInToken  *string
	WebhookURL     *string
}
