package repository

import (
	"context"
	"errors"

	"github.com/corpreg/furnishings-engine/internal/domain"
	"gorm.io/gorm"
)

const (
	filingTypeRestoration = "restoration"
	filingStatusCompleted = "COMPLETED"
)

type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	GetMailingAddress(ctx context.Context, businessID int64) (*domain.Address, error)
	HasCompletedRestorationFiling(ctx context.Context, businessID int64) (bool, error)
}

type GormBusinessRepo struct {
	db *gorm.DB
}

func NewGormBusinessRepo(db *gorm.DB) *GormBusinessRepo {
	return &GormBusinessRepo{db: db}
}

func (r *GormBusinessRepo) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	var model BusinessModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return businessModelToDomain(&model), nil
}

func (r *GormBusinessRepo) GetMailingAddress(ctx context.Context, businessID int64) (*domain.Address, error) {
	var model AddressModel
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND address_type = ?", businessID, domain.AddressTypeMailing).
		Order("id DESC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNoMailingAddress
	}
	if err != nil {
		return nil, err
	}
	return addressModelToDomain(&model), nil
}

func (r *GormBusinessRepo) HasCompletedRestorationFiling(ctx context.Context, businessID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FilingModel{}).
		Where("business_id = ? AND filing_type = ? AND status = ?", businessID, filingTypeRestoration, filingStatusCompleted).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
