package repository

import (
	"time"

	"github.com/corpreg/furnishings-engine/internal/domain"
)

// BusinessModel is the persistence model for the businesses table.
type BusinessModel struct {
	ID           int64            `gorm:"primaryKey"`
	Identifier   string           `gorm:"type:varchar(10);not null;uniqueIndex"`
	LegalName    string           `gorm:"type:varchar(1000);not null"`
	LegalType    domain.LegalType `gorm:"type:varchar(10);not null"`
	FoundingDate time.Time        `gorm:"not null"`
	LastARDate   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (BusinessModel) TableName() string {
	return "businesses"
}

// FilingModel is the persistence model for the filings table. Only the
// columns the restoration-history check needs are mapped.
type FilingModel struct {
	ID             int64  `gorm:"primaryKey"`
	BusinessID     int64  `gorm:"not null"`
	FilingType     string `gorm:"type:varchar(30);not null"`
	Status         string `gorm:"type:varchar(20);not null"`
	CompletionDate *time.Time
	CreatedAt      time.Time
}

func (FilingModel) TableName() string {
	return "filings"
}

// AddressModel is the persistence model for live business addresses.
type AddressModel struct {
	ID                      int64              `gorm:"primaryKey"`
	AddressType             domain.AddressType `gorm:"type:varchar(20);not null"`
	StreetAddress           string             `gorm:"type:varchar(4096)"`
	StreetAddressAdditional string             `gorm:"type:varchar(4096)"`
	City                    string             `gorm:"type:varchar(1000)"`
	Region                  string             `gorm:"type:varchar(2)"`
	Country                 string             `gorm:"type:varchar(2)"`
	PostalCode              string             `gorm:"type:varchar(15)"`
	DeliveryInstructions    string             `gorm:"type:varchar(4096)"`
	BusinessID              *int64
	OfficeID                *int64
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (AddressModel) TableName() string {
	return "addresses"
}

// BatchProcessingModel is the persistence model for batch_processing.
type BatchProcessingModel struct {
	ID                 int64                        `gorm:"primaryKey"`
	BatchID            int64                        `gorm:"not null;index"`
	BusinessID         int64                        `gorm:"not null;index"`
	BusinessIdentifier string                       `gorm:"type:varchar(10);not null"`
	Step               domain.BatchStep             `gorm:"type:varchar(30);not null"`
	Status             domain.BatchProcessingStatus `gorm:"type:varchar(20);not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (BatchProcessingModel) TableName() string {
	return "batch_processing"
}

// FurnishingModel is the persistence model for the furnishings ledger.
type FurnishingModel struct {
	ID                 int64                   `gorm:"primaryKey"`
	BusinessID         int64                   `gorm:"not null;index"`
	BusinessIdentifier string                  `gorm:"type:varchar(10);not null"`
	FurnishingType     domain.FurnishingType   `gorm:"type:varchar(10);not null"`
	FurnishingName     domain.FurnishingName   `gorm:"type:varchar(50);not null"`
	Status             domain.FurnishingStatus `gorm:"type:varchar(20);not null"`
	FurnishingGroupID  string                  `gorm:"type:uuid;not null"`
	Email              *string                 `gorm:"type:varchar(254)"`
	BusinessName       string                  `gorm:"type:varchar(1000);not null"`
	LastARDate         *time.Time
	Notes              string `gorm:"type:text"`
	CreatedDate        time.Time
	ProcessedDate      *time.Time
}

func (FurnishingModel) TableName() string {
	return "furnishings"
}

// FurnishingAddressModel is the persistence model for furnishing-owned
// mailing-address snapshots.
type FurnishingAddressModel struct {
	ID                      int64              `gorm:"primaryKey"`
	FurnishingID            int64              `gorm:"not null;index"`
	AddressType             domain.AddressType `gorm:"type:varchar(20);not null"`
	StreetAddress           string             `gorm:"type:varchar(4096)"`
	StreetAddressAdditional string             `gorm:"type:varchar(4096)"`
	City                    string             `gorm:"type:varchar(1000)"`
	Region                  string             `gorm:"type:varchar(2)"`
	Country                 string             `gorm:"type:varchar(2)"`
	PostalCode              string             `gorm:"type:varchar(15)"`
	DeliveryInstructions    string             `gorm:"type:varchar(4096)"`
	BusinessID              *int64
	OfficeID                *int64
	CreatedAt               time.Time
}

func (FurnishingAddressModel) TableName() string {
	return "furnishing_addresses"
}

func businessModelToDomain(m *BusinessModel) *domain.Business {
	if m == nil {
		return nil
	}

	return &domain.Business{
		ID:           m.ID,
		Identifier:   m.Identifier,
		LegalName:    m.LegalName,
		LegalType:    m.LegalType,
		FoundingDate: m.FoundingDate,
		LastARDate:   m.LastARDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func addressModelToDomain(m *AddressModel) *domain.Address {
	if m == nil {
		return nil
	}

	return &domain.Address{
		ID:                      m.ID,
		AddressType:             m.AddressType,
		StreetAddress:           m.StreetAddress,
		StreetAddressAdditional: m.StreetAddressAdditional,
		City:                    m.City,
		Region:                  m.Region,
		Country:                 m.Country,
		PostalCode:              m.PostalCode,
		DeliveryInstructions:    m.DeliveryInstructions,
		BusinessID:              m.BusinessID,
		OfficeID:                m.OfficeID,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

func batchProcessingModelToDomain(m *BatchProcessingModel) *domain.BatchProcessing {
	if m == nil {
		return nil
	}

	return &domain.BatchProcessing{
		ID:                 m.ID,
		BatchID:            m.BatchID,
		BusinessID:         m.BusinessID,
		BusinessIdentifier: m.BusinessIdentifier,
		Step:               m.Step,
		Status:             m.Status,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func furnishingModelFromDomain(f *domain.Furnishing) *FurnishingModel {
	if f == nil {
		return nil
	}

	return &FurnishingModel{
		ID:                 f.ID,
		BusinessID:         f.BusinessID,
		BusinessIdentifier: f.BusinessIdentifier,
		FurnishingType:     f.FurnishingType,
		FurnishingName:     f.FurnishingName,
		Status:             f.Status,
		FurnishingGroupID:  f.FurnishingGroupID,
		Email:              f.Email,
		BusinessName:       f.BusinessName,
		LastARDate:         f.LastARDate,
		Notes:              f.Notes,
		CreatedDate:        f.CreatedDate,
		ProcessedDate:      f.ProcessedDate,
	}
}

func furnishingModelToDomain(m *FurnishingModel) *domain.Furnishing {
	if m == nil {
		return nil
	}

	return &domain.Furnishing{
		ID:                 m.ID,
		BusinessID:         m.BusinessID,
		BusinessIdentifier: m.BusinessIdentifier,
		FurnishingType:     m.FurnishingType,
		FurnishingName:     m.FurnishingName,
		Status:             m.Status,
		FurnishingGroupID:  m.FurnishingGroupID,
		Email:              m.Email,
		BusinessName:       m.BusinessName,
		LastARDate:         m.LastARDate,
		Notes:              m.Notes,
		CreatedDate:        m.CreatedDate,
		ProcessedDate:      m.ProcessedDate,
	}
}

func furnishingAddressModelFromDomain(a *domain.FurnishingAddress) *FurnishingAddressModel {
	if a == nil {
		return nil
	}

	return &FurnishingAddressModel{
		ID:                      a.ID,
		FurnishingID:            a.FurnishingID,
		AddressType:             a.AddressType,
		StreetAddress:           a.StreetAddress,
		StreetAddressAdditional: a.StreetAddressAdditional,
		City:                    a.City,
		Region:                  a.Region,
		Country:                 a.Country,
		PostalCode:              a.PostalCode,
		DeliveryInstructions:    a.DeliveryInstructions,
		BusinessID:              a.BusinessID,
		OfficeID:                a.OfficeID,
		CreatedAt:               a.CreatedAt,
	}
}

func furnishingAddressModelToDomain(m *FurnishingAddressModel) *domain.FurnishingAddress {
	if m == nil {
		return nil
	}

	return &domain.FurnishingAddress{
		ID:                      m.ID,
		FurnishingID:            m.FurnishingID,
		AddressType:             m.AddressType,
		StreetAddress:           m.StreetAddress,
		StreetAddressAdditional: m.StreetAddressAdditional,
		City:                    m.City,
		Region:                  m.Region,
		Country:                 m.Country,
		PostalCode:              m.PostalCode,
		DeliveryInstructions:    m.DeliveryInstructions,
		BusinessID:              m.BusinessID,
		OfficeID:                m.OfficeID,
		CreatedAt:               m.CreatedAt,
	}
}
