package domain

import (
	"fmt"
	"strings"
	"time"
)

// LegalType is the registered legal type of a business.
type LegalType string

const (
	LegalTypeComp       LegalType = "BC"  // BC limited company
	LegalTypeBenefit    LegalType = "BEN" // benefit company
	LegalTypeULC        LegalType = "ULC" // unlimited liability company
	LegalTypeCCC        LegalType = "CC"  // community contribution company
	LegalTypeExtraProA  LegalType = "A"   // extraprovincial company
	LegalTypeContinueIn LegalType = "C"   // continued in company
)

func (t LegalType) String() string { return string(t) }

// EntityCategory partitions legal types for letter batching: domestic (BC)
// companies and extraprovincial (XPRO) registrations.
type EntityCategory string

const (
	CategoryBC   EntityCategory = "BC"
	CategoryXPRO EntityCategory = "XPRO"
)

func (c EntityCategory) String() string { return string(c) }

// EntityCategory maps a legal type to its letter-batch category.
// Legal types outside the dissolution process return ErrUnsupportedLegalType.
func (t LegalType) EntityCategory() (EntityCategory, error) {
	switch t {
	case LegalTypeComp, LegalTypeBenefit, LegalTypeULC, LegalTypeCCC, LegalTypeContinueIn:
		return CategoryBC, nil
	case LegalTypeExtraProA:
		return CategoryXPRO, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLegalType, t)
}

// Business is the registry view of a company under dissolution consideration.
type Business struct {
	ID           int64     `gorm:"primaryKey"`
	Identifier   string    `gorm:"type:varchar(10);not null;uniqueIndex"`
	LegalName    string    `gorm:"type:varchar(1000);not null"`
	LegalType    LegalType `gorm:"type:varchar(10);not null"`
	FoundingDate time.Time `gorm:"not null"`
	LastARDate   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (b *Business) Validate() error {
	if strings.TrimSpace(b.Identifier) == "" {
		return fmt.Errorf("%w: business identifier is required", ErrValidation)
	}
	if strings.TrimSpace(b.LegalName) == "" {
		return fmt.Errorf("%w: legal name is required", ErrValidation)
	}
	return nil
}

// LastARDateOrFounding returns the date of the last annual report, falling
// back to the founding date when no annual report was ever filed.
func (b *Business) LastARDateOrFounding() time.Time {
	if b.LastARDate != nil {
		return *b.LastARDate
	}
	return b.FoundingDate
}

// Address is a live mailing or delivery address attached to a business office.
type Address struct {
	ID                      int64       `gorm:"primaryKey"`
	AddressType             AddressType `gorm:"type:varchar(20);not null"`
	StreetAddress           string      `gorm:"type:varchar(4096)"`
	StreetAddressAdditional string      `gorm:"type:varchar(4096)"`
	City                    string      `gorm:"type:varchar(1000)"`
	Region                  string      `gorm:"type:varchar(2)"`
	Country                 string      `gorm:"type:varchar(2)"`
	PostalCode              string      `gorm:"type:varchar(15)"`
	DeliveryInstructions    string      `gorm:"type:varchar(4096)"`
	BusinessID              *int64
	OfficeID                *int64
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// AddressType distinguishes mailing from delivery addresses.
type AddressType string

const (
	AddressTypeMailing  AddressType = "mailing"
	AddressTypeDelivery AddressType = "delivery"
)

func (t AddressType) String() string { return string(t) }
