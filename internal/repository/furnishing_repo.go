package repository

import (
	"context"
	"errors"
	"time"

	"github.com/corpreg/furnishings-engine/internal/domain"
	"gorm.io/gorm"
)

type FurnishingRepository interface {
	Create(ctx context.Context, f *domain.Furnishing) error
	CreateWithAddress(ctx context.Context, f *domain.Furnishing, addr *domain.FurnishingAddress) error
	FindByBusinessID(ctx context.Context, businessID int64) ([]domain.Furnishing, error)
	ListQueuedMail(ctx context.Context) ([]domain.Furnishing, error)
	GetAddress(ctx context.Context, furnishingID int64) (*domain.FurnishingAddress, error)
	RecordOutcome(ctx context.Context, id int64, status domain.FurnishingStatus, processedDate *time.Time, note string) error
	AppendNote(ctx context.Context, id int64, note string) error
}

type GormFurnishingRepo struct {
	db *gorm.DB
}

func NewGormFurnishingRepo(db *gorm.DB) *GormFurnishingRepo {
	return &GormFurnishingRepo{db: db}
}

func (r *GormFurnishingRepo) Create(ctx context.Context, f *domain.Furnishing) error {
	model := furnishingModelFromDomain(f)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	if f != nil {
		*f = *furnishingModelToDomain(model)
	}
	return nil
}

// CreateWithAddress persists a MAIL furnishing and its address snapshot in
// one transaction, so a queued letter never exists without a destination.
func (r *GormFurnishingRepo) CreateWithAddress(ctx context.Context, f *domain.Furnishing, addr *domain.FurnishingAddress) error {
	model := furnishingModelFromDomain(f)
	addrModel := furnishingAddressModelFromDomain(addr)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		if addrModel != nil {
			addrModel.FurnishingID = model.ID
			if err := tx.Create(addrModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if f != nil {
		*f = *furnishingModelToDomain(model)
	}
	if addr != nil && addrModel != nil {
		*addr = *furnishingAddressModelToDomain(addrModel)
	}
	return nil
}

func (r *GormFurnishingRepo) FindByBusinessID(ctx context.Context, businessID int64) ([]domain.Furnishing, error) {
	var models []FurnishingModel
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	furnishings := make([]domain.Furnishing, 0, len(models))
	for i := range models {
		furnishings = append(furnishings, *furnishingModelToDomain(&models[i]))
	}

	return furnishings, nil
}

func (r *GormFurnishingRepo) ListQueuedMail(ctx context.Context) ([]domain.Furnishing, error) {
	var models []FurnishingModel
	err := r.db.WithContext(ctx).
		Where("furnishing_type = ? AND status = ?", domain.FurnishingTypeMail, domain.FurnishingStatusQueued).
		Order("created_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	furnishings := make([]domain.Furnishing, 0, len(models))
	for i := range models {
		furnishings = append(furnishings, *furnishingModelToDomain(&models[i]))
	}

	return furnishings, nil
}

func (r *GormFurnishingRepo) GetAddress(ctx context.Context, furnishingID int64) (*domain.FurnishingAddress, error) {
	var model FurnishingAddressModel
	err := r.db.WithContext(ctx).
		Where("furnishing_id = ?", furnishingID).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return furnishingAddressModelToDomain(&model), nil
}

func (r *GormFurnishingRepo) RecordOutcome(ctx context.Context, id int64, status domain.FurnishingStatus, processedDate *time.Time, note string) error {
	updates := map[string]any{
		"status": status,
		"notes":  gorm.Expr("CASE WHEN notes = '' THEN ? ELSE notes || E'\\n' || ? END", note, note),
	}
	if processedDate != nil {
		updates["processed_date"] = *processedDate
	}

	result := r.db.WithContext(ctx).
		Model(&FurnishingModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormFurnishingRepo) AppendNote(ctx context.Context, id int64, note string) error {
	result := r.db.WithContext(ctx).
		Model(&FurnishingModel{}).
		Where("id = ?", id).
		Update("notes", gorm.Expr("CASE WHEN notes = '' THEN ? ELSE notes || E'\\n' || ? END", note, note))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
