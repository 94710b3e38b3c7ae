package repository

import (
	"context"

	"github.com/corpreg/furnishings-engine/internal/domain"
	"gorm.io/gorm"
)

// BatchRepository is the batch source: it only reads the ordered entries the
// upstream batch-selection job produced for the current run.
type BatchRepository interface {
	ListStageOneEntries(ctx context.Context) ([]domain.BatchProcessing, error)
}

type GormBatchRepo struct {
	db *gorm.DB
}

func NewGormBatchRepo(db *gorm.DB) *GormBatchRepo {
	return &GormBatchRepo{db: db}
}

func (r *GormBatchRepo) ListStageOneEntries(ctx context.Context) ([]domain.BatchProcessing, error) {
	var models []BatchProcessingModel
	err := r.db.WithContext(ctx).
		Where("step = ? AND status = ?", domain.StepDissolutionStageOne, domain.BatchProcessingStatusProcessing).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entries := make([]domain.BatchProcessing, 0, len(models))
	for i := range models {
		entries = append(entries, *batchProcessingModelToDomain(&models[i]))
	}

	return entries, nil
}
