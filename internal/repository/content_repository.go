package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"venturemind/internal/model"

	"github.com/google/uuid"
)

type ContentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// SaveAnalysis writes the insight and its ad drafts in one transaction.
// Either every row is stored or none is.
func (r *ContentRepository) SaveAnalysis(ctx context.Context, insight *model.Insight, ads []*model.AdContent) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insight.ID = uuid.NewString()
	err = tx.QueryRowContext(ctx, `
		INSERT INTO business_insights(id, owner_id, dataset_id, problem_statement, insights_text)
		VALUES($1, $2, $3, $4, $5)
		RETURNING created_at
	`, insight.ID, insight.OwnerID, insight.DatasetID, insight.ProblemStatement, insight.InsightsText).Scan(&insight.CreatedAt)
	if err != nil {
		return err
	}

	for _, ad := range ads {
		ad.ID = uuid.NewString()
		err = tx.QueryRowContext(ctx, `
			INSERT INTO ad_content(id, owner_id, platform, ad_text, status)
			VALUES($1, $2, $3, $4, $5)
			RETURNING created_at
		`, ad.ID, ad.OwnerID, string(ad.Platform), ad.AdText, string(ad.Status)).Scan(&ad.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *ContentRepository) GetInsights(ctx context.Context, ownerID string) ([]model.Insight, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, dataset_id, problem_statement, insights_text, created_at
		FROM business_insights
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insights []model.Insight
	for rows.Next() {
		var i model.Insight
		err := rows.Scan(&i.ID, &i.OwnerID, &i.DatasetID, &i.ProblemStatement, &i.InsightsText, &i.CreatedAt)
		if err != nil {
			return nil, err
		}
		insights = append(insights, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return insights, nil
}

func (r *ContentRepository) GetAds(ctx context.Context, ownerID string) ([]model.AdContent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, platform, ad_text, status, created_at, posted_at
		FROM ad_content
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []model.AdContent
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, *ad)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ads, nil
}

// GetAd returns nil when the ad does not exist or belongs to another owner.
func (r *ContentRepository) GetAd(ctx context.Context, ownerID, id string) (*model.AdContent, error) {
	if !validID(id) {
		return nil, nil
	}

	ad, err := scanAd(r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, platform, ad_text, status, created_at, posted_at
		FROM ad_content
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID))

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return ad, nil
}

// ApproveAd moves a draft to approved. It returns nil when the ad is missing and
// model.ErrInvalidState when the ad exists but is no longer a draft.
func (r *ContentRepository) ApproveAd(ctx context.Context, ownerID, id string) (*model.AdContent, error) {
	if !validID(id) {
		return nil, nil
	}

	ad, err := scanAd(r.db.QueryRowContext(ctx, `
		UPDATE ad_content SET status = $1
		WHERE id = $2 AND owner_id = $3 AND status = $4
		RETURNING id, owner_id, platform, ad_text, status, created_at, posted_at
	`, string(model.StatusApproved), id, ownerID, string(model.StatusDraft)))

	if err == sql.ErrNoRows {
		existing, err := r.GetAd(ctx, ownerID, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, nil
		}
		return nil, model.ErrInvalidState
	}

	if err != nil {
		return nil, err
	}

	return ad, nil
}

// PublishAd locks the ad row, calls send while the lock is held and marks the ad
// posted only if send succeeds. A concurrent caller blocks on the lock and then
// sees the posted status. Errors returned by send are passed through unchanged.
func (r *ContentRepository) PublishAd(ctx context.Context, ownerID, id string, postedAt time.Time, send func(model.AdContent) error) (*model.AdContent, error) {
	if !validID(id) {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ad, err := scanAd(tx.QueryRowContext(ctx, `
		SELECT id, owner_id, platform, ad_text, status, created_at, posted_at
		FROM ad_content
		WHERE id = $1 AND owner_id = $2
		FOR UPDATE
	`, id, ownerID))

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if !ad.Status.Publishable() {
		return nil, model.ErrInvalidState
	}

	if err := send(*ad); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE ad_content SET status = $1, posted_at = $2
		WHERE id = $3 AND owner_id = $4 AND status IN ($5, $6)
	`, string(model.StatusPosted), postedAt, id, ownerID, string(model.StatusDraft), string(model.StatusApproved))
	if err != nil {
		return nil, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n != 1 {
		return nil, model.ErrInvalidState
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	ad.Status = model.StatusPosted
	ad.PostedAt = &postedAt
	return ad, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAd(row rowScanner) (*model.AdContent, error) {
	var (
		ad       model.AdContent
		platform string
		status   string
		postedAt sql.NullTime
	)

	err := row.Scan(&ad.ID, &ad.OwnerID, &platform, &ad.AdText, &status, &ad.CreatedAt, &postedAt)
	if err != nil {
		return nil, err
	}

	ad.Platform = model.Platform(platform)
	ad.Status, err = model.ParseAdStatus(status)
	if err != nil {
		return nil, fmt.Errorf("ad %s: %w", ad.ID, err)
	}

	if postedAt.Valid {
		t := postedAt.Time
		ad.PostedAt = &t
	}

	return &ad, nil
}
