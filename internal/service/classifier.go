package service

import (
	"github.com/corpreg/furnishings-engine/internal/domain"
)

// ClassifyFurnishingName picks the notice variant for a business: its entity
// category crossed with the dissolution cause. A completed restoration filing
// in the history means the business missed its transition filing; otherwise
// it missed its annual report.
func ClassifyFurnishingName(legalType domain.LegalType, hasRestorationFiling bool) (domain.FurnishingName, error) {
	category, err := legalType.EntityCategory()
	if err != nil {
		return "", err
	}

	if category == domain.CategoryXPRO {
		if hasRestorationFiling {
			return domain.NameCommencementNoTRXpro, nil
		}
		return domain.NameCommencementNoARXpro, nil
	}

	if hasRestorationFiling {
		return domain.NameCommencementNoTR, nil
	}
	return domain.NameCommencementNoAR, nil
}
