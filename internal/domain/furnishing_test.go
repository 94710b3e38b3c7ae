package domain

import (
	"errors"
	"testing"
)

func TestFurnishingNameCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     FurnishingName
		category EntityCategory
	}{
		{NameCommencementNoAR, CategoryBC},
		{NameCommencementNoTR, CategoryBC},
		{NameCommencementNoARXpro, CategoryXPRO},
		{NameCommencementNoTRXpro, CategoryXPRO},
	}

	for _, tt := range tests {
		if got := tt.name.Category(); got != tt.category {
			t.Fatalf("%s category = %s, want %s", tt.name, got, tt.category)
		}
	}
}

func TestFurnishingNamesForCategory(t *testing.T) {
	t.Parallel()

	bc := FurnishingNamesForCategory(CategoryBC)
	if len(bc) != 2 {
		t.Fatalf("BC names len = %d, want 2", len(bc))
	}
	for _, name := range bc {
		if name.Category() != CategoryBC {
			t.Fatalf("name %s should be in the BC partition", name)
		}
	}

	xpro := FurnishingNamesForCategory(CategoryXPRO)
	if len(xpro) != 2 {
		t.Fatalf("XPRO names len = %d, want 2", len(xpro))
	}
	for _, name := range xpro {
		if name.Category() != CategoryXPRO {
			t.Fatalf("name %s should be in the XPRO partition", name)
		}
	}
}

func TestLegalTypeEntityCategory(t *testing.T) {
	t.Parallel()

	if got, err := LegalTypeComp.EntityCategory(); err != nil || got != CategoryBC {
		t.Fatalf("BC category = %s, err = %v, want BC", got, err)
	}
	if got, err := LegalTypeExtraProA.EntityCategory(); err != nil || got != CategoryXPRO {
		t.Fatalf("A category = %s, err = %v, want XPRO", got, err)
	}

	_, err := LegalType("GP").EntityCategory()
	if !errors.Is(err, ErrUnsupportedLegalType) {
		t.Fatalf("error = %v, want ErrUnsupportedLegalType", err)
	}
}

func TestFurnishingValidate(t *testing.T) {
	t.Parallel()

	email := "test@no-reply.com"
	valid := Furnishing{
		BusinessID:         7,
		BusinessIdentifier: "BC1234567",
		FurnishingType:     FurnishingTypeEmail,
		FurnishingName:     NameCommencementNoAR,
		Status:             FurnishingStatusQueued,
		FurnishingGroupID:  "c0b0b7a0-0000-4000-8000-000000000001",
		Email:              &email,
		BusinessName:       "TEST COMP",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	noEmail := valid
	noEmail.Email = nil
	if err := noEmail.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("EMAIL furnishing without email: error = %v, want ErrValidation", err)
	}

	noGroup := valid
	noGroup.FurnishingGroupID = ""
	if err := noGroup.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing group id: error = %v, want ErrValidation", err)
	}

	badName := valid
	badName.FurnishingName = "NOT_A_NAME"
	if err := badName.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("invalid name: error = %v, want ErrValidation", err)
	}
}

func TestSnapshotAddressClearsOwnership(t *testing.T) {
	t.Parallel()

	businessID := int64(7)
	officeID := int64(12)
	src := &Address{
		AddressType:   AddressTypeMailing,
		StreetAddress: "100 Main St",
		City:          "Victoria",
		Region:        "BC",
		Country:       "CA",
		PostalCode:    "V8V 1A1",
		BusinessID:    &businessID,
		OfficeID:      &officeID,
	}

	snap := SnapshotAddress(src)
	if snap == nil {
		t.Fatal("snapshot should not be nil")
	}
	if snap.BusinessID != nil || snap.OfficeID != nil {
		t.Fatal("snapshot must not keep business or office links")
	}
	if snap.StreetAddress != src.StreetAddress || snap.PostalCode != src.PostalCode {
		t.Fatal("snapshot should copy address fields")
	}
	if snap.AddressType != AddressTypeMailing {
		t.Fatalf("snapshot address type = %s, want mailing", snap.AddressType)
	}

	if SnapshotAddress(nil) != nil {
		t.Fatal("nil source should produce nil snapshot")
	}
}
