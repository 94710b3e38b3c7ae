package domain

import "time"

// BatchStep identifies the escalation round a batch entry sits in.
type BatchStep string

const (
	StepDissolutionStageOne BatchStep = "DISSOLUTION_STAGE_1"
)

func (s BatchStep) String() string { return string(s) }

// BatchProcessingStatus is the upstream processing state of a batch entry.
type BatchProcessingStatus string

const (
	BatchProcessingStatusProcessing BatchProcessingStatus = "PROCESSING"
	BatchProcessingStatusCompleted  BatchProcessingStatus = "COMPLETED"
	BatchProcessingStatusWithdrawn  BatchProcessingStatus = "WITHDRAWN"
)

func (s BatchProcessingStatus) String() string { return string(s) }

// BatchProcessing is one business under consideration in the current
// dissolution batch run. Entries are produced by the upstream batch-selection
// job and are immutable for the duration of a run.
type BatchProcessing struct {
	ID                 int64                 `gorm:"primaryKey"`
	BatchID            int64                 `gorm:"not null;index"`
	BusinessID         int64                 `gorm:"not null;index"`
	BusinessIdentifier string                `gorm:"type:varchar(10);not null"`
	Step               BatchStep             `gorm:"type:varchar(30);not null"`
	Status             BatchProcessingStatus `gorm:"type:varchar(20);not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
