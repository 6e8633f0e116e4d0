package model

import "time"

type Insight struct {
	ID               string
	OwnerID          string
	DatasetID        string
	ProblemStatement string
	InsightsText     string
	CreatedAt        time.Time
}
