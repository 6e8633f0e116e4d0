package model

import "time"

type Dataset struct {
	ID         string
	OwnerID    string
	FileName   string
	FileType   string
	UploadDate time.Time
}
