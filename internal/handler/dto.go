package handler

type AnalyzeRequest struct {
	DatasetContent   string `json:"datasetContent"`
	ProblemStatement string `json:"problemStatement"`
	DatasetID        string `json:"datasetId"`
}

type AnalyzeResponse struct {
	Success  bool   `json:"success"`
	Insights string `json:"insights"`
}

type PublishRequest struct {
	AdID string `json:"adId" binding:"required"`
}

type PublishResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type InsightResponse struct {
	ID               string `json:"id"`
	DatasetID        string `json:"dataset_id"`
	ProblemStatement string `json:"problem_statement"`
	InsightsText     string `json:"insights_text"`
	CreatedAt        string `json:"created_at"`
}

type AdResponse struct {
	ID        string  `json:"id"`
	Platform  string  `json:"platform"`
	AdText    string  `json:"ad_text"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	PostedAt  *string `json:"posted_at"`
}

type DatasetRequest struct {
	FileName string `json:"fileName" binding:"required"`
	FileType string `json:"fileType" binding:"required"`
}

type DatasetResponse struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name"`
	FileType   string `json:"file_type"`
	UploadDate string `json:"upload_date"`
}

// ProfileRequest fields left out of the body keep their stored value; an empty string clears a credential.
type ProfileRequest struct {
	BusinessName    *string `json:"business_name"`
	OwnerName       *string `json:"owner_name"`
	InstagramAPIKey *string `json:"instagram_api_key"`
	LinkedInAPIKey  *string `json:"linkedin_api_key"`
	WebhookURL      *string `json:"webhook_url"`
}

// ProfileResponse never echoes credentials.
type ProfileResponse struct {
	BusinessName        string `json:"business_name"`
	OwnerName           string `json:"owner_name"`
	InstagramConfigured bool   `json:"instagram_configured"`
	LinkedInConfigured  bool   `json:"linkedin_configured"`
	WebhookConfigured   bool   `json:"webhook_configured"`
}
