package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
	"venturemind/internal/auth"
	"venturemind/internal/model"

	"github.com/gin-gonic/gin"
)

type DatasetStore interface {
	SaveDataset(ctx context.Context, dataset *model.Dataset) error
	GetDatasets(ctx context.Context, ownerID string) ([]model.Dataset, error)
	DeleteDataset(ctx context.Context, ownerID, id string) (bool, error)
}

type DatasetHandler struct {
	repository DatasetStore
}

func NewDatasetHandler(repository DatasetStore) *DatasetHandler {
	return &DatasetHandler{repository: repository}
}

func (h *DatasetHandler) CreateDataset(c *gin.Context) {
	var req DatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileName and fileType are required"})
		return
	}

	dataset := &model.Dataset{
		OwnerID:  auth.OwnerID(c),
		FileName: req.FileName,
		FileType: req.FileType,
	}

	if err := h.repository.SaveDataset(c.Request.Context(), dataset); err != nil {
		slog.Error("error saving dataset", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, toDatasetResponse(*dataset))
}

func (h *DatasetHandler) GetDatasets(c *gin.Context) {
	datasets, err := h.repository.GetDatasets(c.Request.Context(), auth.OwnerID(c))
	if err != nil {
		slog.Error("error fetching datasets", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]DatasetResponse, 0, len(datasets))
	for _, d := range datasets {
		res = append(res, toDatasetResponse(d))
	}

	c.JSON(http.StatusOK, res)
}

func (h *DatasetHandler) DeleteDataset(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.repository.DeleteDataset(c.Request.Context(), auth.OwnerID(c), id)
	if err != nil {
		slog.Error("error deleting dataset", "error", err, "dataset_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func toDatasetResponse(d model.Dataset) DatasetResponse {
	return DatasetResponse{
		ID:         d.ID,
		FileName:   d.FileName,
		FileType:   d.FileType,
		UploadDate: d.UploadDate.Format(time.RFC3339),
	}
}
