package queue

import (
	"fmt"
	"strings"

	"github.com/corpreg/furnishings-engine/internal/domain"
)

// EmailMessage is the broker payload consumed by the entity-emailer service.
type EmailMessage struct {
	FurnishingID       int64                 `json:"furnishingId"`
	BusinessIdentifier string                `json:"businessIdentifier"`
	FurnishingName     domain.FurnishingName `json:"furnishingName"`
	Email              string                `json:"email"`
}

func (m EmailMessage) Validate() error {
	if m.FurnishingID == 0 {
		return fmt.Errorf("furnishingId is required")
	}
	if strings.TrimSpace(m.BusinessIdentifier) == "" {
		return fmt.Errorf("businessIdentifier is required")
	}
	if !m.FurnishingName.IsValid() {
		return fmt.Errorf("invalid furnishing name %q", m.FurnishingName)
	}
	if strings.TrimSpace(m.Email) == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}
