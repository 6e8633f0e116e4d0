package repository

import (
	"context"
	"database/sql"
	"venturemind/internal/model"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, ownerID string) (*model.Profile, error) {
	var (
		p         model.Profile
		instagram sql.NullString
		linkedin  sql.NullString
		webhook   sql.NullString
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, business_name, owner_name, instagram_api_key, linkedin_api_key, webhook_url
		FROM profiles
		WHERE owner_id = $1
	`, ownerID).Scan(&p.ID, &p.OwnerID, &p.BusinessName, &p.OwnerName, &instagram, &linkedin, &webhook)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	p.InstagramToken = nullableString(instagram)
	p.LinkedInToken = nullableString(linkedin)
	p.WebhookURL = nullableString(webhook)

	return &p, nil
}

// UpsertProfile creates the owner's profile or replaces its fields.
func (r *ProfileRepository) UpsertProfile(ctx context.Context, p *model.Profile) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO profiles(id, owner_id, business_name, owner_name, instagram_api_key, linkedin_api_key, webhook_url)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (owner_id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			owner_name = EXCLUDED.owner_name,
			instagram_api_key = EXCLUDED.instagram_api_key,
			linkedin_api_key = EXCLUDED.linkedin_api_key,
			webhook_url = EXCLUDED.webhook_url
		RETURNING id
	`, uuid.NewString(), p.OwnerID, p.BusinessName, p.OwnerName, p.InstagramToken, p.LinkedInToken, p.WebhookURL).Scan(&p.ID)
}

func nullableString(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}
