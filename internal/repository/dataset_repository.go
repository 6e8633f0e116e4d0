package repository

import (
	"context"
	"database/sql"
	"venturemind/internal/model"

	"github.com/google/uuid"
)

type DatasetRepository struct {
	db *sql.DB
}

func NewDatasetRepository(db *sql.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

func (r *DatasetRepository) SaveDataset(ctx context.Context, dataset *model.Dataset) error {
	dataset.ID = uuid.NewString()
	return r.db.QueryRowContext(ctx, `
		INSERT INTO datasets(id, owner_id, file_name, file_type)
		VALUES($1, $2, $3, $4)
		RETURNING upload_date
	`, dataset.ID, dataset.OwnerID, dataset.FileName, dataset.FileType).Scan(&dataset.UploadDate)
}

func (r *DatasetRepository) GetDatasets(ctx context.Context, ownerID string) ([]model.Dataset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, file_name, file_type, upload_date
		FROM datasets
		WHERE owner_id = $1
		ORDER BY upload_date DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []model.Dataset
	for rows.Next() {
		var d model.Dataset
		err := rows.Scan(&d.ID, &d.OwnerID, &d.FileName, &d.FileType, &d.UploadDate)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return datasets, nil
}

// DeleteDataset reports false when no dataset with that id belongs to the owner.
// Insights that reference the dataset are left in place.
func (r *DatasetRepository) DeleteDataset(ctx context.Context, ownerID, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM datasets WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
