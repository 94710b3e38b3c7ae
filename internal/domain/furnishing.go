package domain

import (
	"fmt"
	"strings"
	"time"
)

// FurnishingType is the notification delivery channel.
type FurnishingType string

const (
	FurnishingTypeEmail FurnishingType = "EMAIL"
	FurnishingTypeMail  FurnishingType = "MAIL"
)

func (t FurnishingType) String() string { return string(t) }

func (t FurnishingType) IsValid() bool {
	switch t {
	case FurnishingTypeEmail, FurnishingTypeMail:
		return true
	}
	return false
}

// FurnishingStatus is the lifecycle state of a furnishing ledger entry.
type FurnishingStatus string

const (
	FurnishingStatusQueued    FurnishingStatus = "QUEUED"
	FurnishingStatusProcessed FurnishingStatus = "PROCESSED"
	FurnishingStatusFailed    FurnishingStatus = "FAILED"
)

func (s FurnishingStatus) String() string { return string(s) }

func (s FurnishingStatus) IsValid() bool {
	switch s {
	case FurnishingStatusQueued, FurnishingStatusProcessed, FurnishingStatusFailed:
		return true
	}
	return false
}

func ParseFurnishingStatusFromString(s string) (FurnishingStatus, error) {
	st := FurnishingStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: invalid furnishing status %q", ErrValidation, s)
	}
	return st, nil
}

// FurnishingName identifies the notice variant, keyed by entity category
// crossed with dissolution cause.
type FurnishingName string

const (
	NameCommencementNoAR     FurnishingName = "DISSOLUTION_COMMENCEMENT_NO_AR"
	NameCommencementNoTR     FurnishingName = "DISSOLUTION_COMMENCEMENT_NO_TR"
	NameCommencementNoARXpro FurnishingName = "DISSOLUTION_COMMENCEMENT_NO_AR_XPRO"
	NameCommencementNoTRXpro FurnishingName = "DISSOLUTION_COMMENCEMENT_NO_TR_XPRO"
)

func (n FurnishingName) String() string { return string(n) }

func (n FurnishingName) IsValid() bool {
	switch n {
	case NameCommencementNoAR, NameCommencementNoTR, NameCommencementNoARXpro, NameCommencementNoTRXpro:
		return true
	}
	return false
}

// Category returns the letter-batch category the notice variant belongs to.
func (n FurnishingName) Category() EntityCategory {
	switch n {
	case NameCommencementNoARXpro, NameCommencementNoTRXpro:
		return CategoryXPRO
	}
	return CategoryBC
}

// FurnishingNamesForCategory returns the notice variants batched together in
// one merged letter for a category.
func FurnishingNamesForCategory(category EntityCategory) []FurnishingName {
	if category == CategoryXPRO {
		return []FurnishingName{NameCommencementNoARXpro, NameCommencementNoTRXpro}
	}
	return []FurnishingName{NameCommencementNoAR, NameCommencementNoTR}
}

// Furnishing is one entry in the escalation ledger: a single notification
// (email or letter) owed to a business. The business name and last-AR date
// are denormalized at creation time and never refreshed.
type Furnishing struct {
	ID                 int64            `gorm:"primaryKey"`
	BusinessID         int64            `gorm:"not null;index"`
	BusinessIdentifier string           `gorm:"type:varchar(10);not null"`
	FurnishingType     FurnishingType   `gorm:"type:varchar(10);not null"`
	FurnishingName     FurnishingName   `gorm:"type:varchar(50);not null"`
	Status             FurnishingStatus `gorm:"type:varchar(20);not null"`
	FurnishingGroupID  string           `gorm:"type:uuid;not null"`
	Email              *string          `gorm:"type:varchar(254)"`
	BusinessName       string           `gorm:"type:varchar(1000);not null"`
	LastARDate         *time.Time
	Notes              string `gorm:"type:text"`
	CreatedDate        time.Time
	ProcessedDate      *time.Time
}

func (f *Furnishing) Validate() error {
	if f.BusinessID == 0 {
		return fmt.Errorf("%w: business id is required", ErrValidation)
	}
	if strings.TrimSpace(f.BusinessIdentifier) == "" {
		return fmt.Errorf("%w: business identifier is required", ErrValidation)
	}
	if !f.FurnishingType.IsValid() {
		return fmt.Errorf("%w: invalid furnishing type %q", ErrValidation, f.FurnishingType)
	}
	if !f.FurnishingName.IsValid() {
		return fmt.Errorf("%w: invalid furnishing name %q", ErrValidation, f.FurnishingName)
	}
	if !f.Status.IsValid() {
		return fmt.Errorf("%w: invalid furnishing status %q", ErrValidation, f.Status)
	}
	if strings.TrimSpace(f.FurnishingGroupID) == "" {
		return fmt.Errorf("%w: furnishing group id is required", ErrValidation)
	}
	if f.FurnishingType == FurnishingTypeEmail && (f.Email == nil || strings.TrimSpace(*f.Email) == "") {
		return fmt.Errorf("%w: email is required for EMAIL furnishings", ErrValidation)
	}
	return nil
}

// FurnishingAddress is the mailing-address snapshot attached to a MAIL
// furnishing. It is owned by the furnishing alone: business and office links
// are always NULL so later moves never rewrite a queued letter.
type FurnishingAddress struct {
	ID                      int64       `gorm:"primaryKey"`
	FurnishingID            int64       `gorm:"not null;index"`
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
}

// SnapshotAddress copies a live business address into a furnishing-owned
// snapshot with the business and office links cleared.
func SnapshotAddress(src *Address) *FurnishingAddress {
	if src == nil {
		return nil
	}
	return &FurnishingAddress{
		AddressType:             src.AddressType,
		StreetAddress:           src.StreetAddress,
		StreetAddressAdditional: src.StreetAddressAdditional,
		City:                    src.City,
		Region:                  src.Region,
		Country:                 src.Country,
		PostalCode:              src.PostalCode,
		DeliveryInstructions:    src.DeliveryInstructions,
		BusinessID:              nil,
		OfficeID:                nil,
	}
}
