package service

import (
	"errors"
	"testing"

	"github.com/corpreg/furnishings-engine/internal/domain"
)

func TestClassifyFurnishingName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		legalType      domain.LegalType
		hasRestoration bool
		want           domain.FurnishingName
	}{
		{"bc company no restoration", domain.LegalTypeComp, false, domain.NameCommencementNoAR},
		{"bc company with restoration", domain.LegalTypeComp, true, domain.NameCommencementNoTR},
		{"benefit company no restoration", domain.LegalTypeBenefit, false, domain.NameCommencementNoAR},
		{"ulc with restoration", domain.LegalTypeULC, true, domain.NameCommencementNoTR},
		{"ccc no restoration", domain.LegalTypeCCC, false, domain.NameCommencementNoAR},
		{"continued in with restoration", domain.LegalTypeContinueIn, true, domain.NameCommencementNoTR},
		{"xpro no restoration", domain.LegalTypeExtraProA, false, domain.NameCommencementNoARXpro},
		{"xpro with restoration", domain.LegalTypeExtraProA, true, domain.NameCommencementNoTRXpro},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ClassifyFurnishingName(tt.legalType, tt.hasRestoration)
			if err != nil {
				t.Fatalf("ClassifyFurnishingName() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ClassifyFurnishingName() = %s, want %s", got, tt.want)
			}
			if !got.IsValid() {
				t.Fatalf("classified name %s is not a valid furnishing name", got)
			}
		})
	}
}

func TestClassifyFurnishingNameUnsupportedType(t *testing.T) {
	t.Parallel()

	_, err := ClassifyFurnishingName(domain.LegalType("SP"), false)
	if !errors.Is(err, domain.ErrUnsupportedLegalType) {
		t.Fatalf("expected ErrUnsupportedLegalType, got %v", err)
	}
}

func TestClassifyFurnishingNameCategoryRoundTrip(t *testing.T) {
	t.Parallel()

	for _, legalType := range []domain.LegalType{domain.LegalTypeComp, domain.LegalTypeExtraProA} {
		wantCategory, err := legalType.EntityCategory()
		if err != nil {
			t.Fatalf("EntityCategory() error = %v", err)
		}
		for _, hasRestoration := range []bool{false, true} {
			name, err := ClassifyFurnishingName(legalType, hasRestoration)
			if err != nil {
				t.Fatalf("ClassifyFurnishingName() error = %v", err)
			}
			if name.Category() != wantCategory {
				t.Fatalf("name %s category = %s, want %s", name, name.Category(), wantCategory)
			}
		}
	}
}
