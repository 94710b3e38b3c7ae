package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corpreg/furnishings-engine/internal/authsvc"
	"github.com/corpreg/furnishings-engine/internal/domain"
	"github.com/corpreg/furnishings-engine/internal/observability"
	"github.com/corpreg/furnishings-engine/internal/queue"
	"github.com/corpreg/furnishings-engine/internal/ratelimit"
	"github.com/corpreg/furnishings-engine/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const authServiceName = "auth"

// StageOneProcessor evaluates every batch entry sequentially: classify the
// notice variant, decide the escalation step, and materialize at most one
// furnishing per business per run. Emails go out synchronously (a durable
// publish to the emailer queue); letters stay QUEUED for the assembler.
type StageOneProcessor struct {
	businesses  repository.BusinessRepository
	furnishings repository.FurnishingRepository
	contacts    authsvc.ContactLookup
	publisher   queue.Publisher
	limiter     ratelimit.RateLimiter
	delayDays   int
	logger      *zap.Logger
	metrics     *observability.Metrics
	now         func() time.Time
	newGroupID  func() string
}

func NewStageOneProcessor(
	businesses repository.BusinessRepository,
	furnishings repository.FurnishingRepository,
	contacts authsvc.ContactLookup,
	publisher queue.Publisher,
	limiter ratelimit.RateLimiter,
	delayDays int,
	logger *zap.Logger,
) (*StageOneProcessor, error) {
	if businesses == nil {
		return nil, fmt.Errorf("business repository is required")
	}
	if furnishings == nil {
		return nil, fmt.Errorf("furnishing repository is required")
	}
	if contacts == nil {
		return nil, fmt.Errorf("contact lookup is required")
	}
	if publisher == nil {
		return nil, fmt.Errorf("publisher is required")
	}
	if delayDays <= 0 {
		return nil, fmt.Errorf("second notice delay must be positive, got %d", delayDays)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &StageOneProcessor{
		businesses:  businesses,
		furnishings: furnishings,
		contacts:    contacts,
		publisher:   publisher,
		limiter:     limiter,
		delayDays:   delayDays,
		logger:      logger,
		metrics:     nil,
		now:         time.Now,
		newGroupID:  uuid.NewString,
	}, nil
}

func (p *StageOneProcessor) SetMetrics(metrics *observability.Metrics) {
	if p == nil {
		return
	}
	p.metrics = metrics
}

// Run processes the batch entries strictly in order. Per-business failures
// are logged and skipped; one bad business never blocks the rest.
func (p *StageOneProcessor) Run(ctx context.Context, entries []domain.BatchProcessing) {
	if ctx == nil {
		ctx = context.Background()
	}

	for i := range entries {
		entry := entries[i]
		if err := p.processEntry(ctx, entry); err != nil {
			reason := skipReason(err)
			p.metrics.IncBusinessSkipped(reason)
			p.logger.Warn("business skipped during stage one",
				zap.String("identifier", entry.BusinessIdentifier),
				zap.Int64("businessId", entry.BusinessID),
				zap.String("reason", reason),
				zap.Error(err),
			)
		}
	}
}

func (p *StageOneProcessor) processEntry(ctx context.Context, entry domain.BatchProcessing) error {
	business, err := p.businesses.GetByID(ctx, entry.BusinessID)
	if err != nil {
		return fmt.Errorf("failed to load business: %w", err)
	}

	hasRestoration, err := p.businesses.HasCompletedRestorationFiling(ctx, business.ID)
	if err != nil {
		return fmt.Errorf("failed to check restoration history: %w", err)
	}

	name, err := ClassifyFurnishingName(business.LegalType, hasRestoration)
	if err != nil {
		return err
	}

	prior, err := p.furnishings.FindByBusinessID(ctx, business.ID)
	if err != nil {
		return fmt.Errorf("failed to load furnishing history: %w", err)
	}

	decision := DecideEscalation(prior, p.now(), p.delayDays)
	switch decision.Kind {
	case DecisionFirstNotice:
		return p.sendFirstNotice(ctx, business, name)
	case DecisionSecondNotice:
		return p.createMailFurnishing(ctx, business, name)
	default:
		p.logger.Debug("no escalation action due",
			zap.String("identifier", business.Identifier),
			zap.String("reason", string(decision.Reason)),
		)
		return nil
	}
}

func (p *StageOneProcessor) sendFirstNotice(ctx context.Context, business *domain.Business, name domain.FurnishingName) error {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx, authServiceName); err != nil {
			return fmt.Errorf("rate limiter wait failed: %w", err)
		}
	}

	email, err := p.contacts.GetContactEmail(ctx, business.Identifier)
	if err != nil {
		// Token or lookup failure skips the business for this run; it is
		// re-evaluated on the next one. No silent fallback to mail.
		return fmt.Errorf("contact lookup failed: %w", err)
	}

	if email == "" {
		return p.createMailFurnishing(ctx, business, name)
	}
	return p.createEmailFurnishing(ctx, business, name, email)
}

func (p *StageOneProcessor) createEmailFurnishing(ctx context.Context, business *domain.Business, name domain.FurnishingName, email string) error {
	furnishing := p.newFurnishing(business, name, domain.FurnishingTypeEmail)
	furnishing.Email = &email

	if err := furnishing.Validate(); err != nil {
		return err
	}

	if err := p.furnishings.Create(ctx, furnishing); err != nil {
		return fmt.Errorf("failed to persist email furnishing: %w", err)
	}

	msg := queue.EmailMessage{
		FurnishingID:       furnishing.ID,
		BusinessIdentifier: furnishing.BusinessIdentifier,
		FurnishingName:     furnishing.FurnishingName,
		Email:              email,
	}
	if err := p.publisher.Publish(ctx, queue.EmailQueueName, msg); err != nil {
		// The record stays QUEUED; the next run sees it inside the delay
		// window and simply waits, so nothing double-sends.
		return fmt.Errorf("failed to publish email notice: %w", err)
	}

	// PROCESSED means the message is durably on the queue, not that the
	// emailer has delivered it.
	processedAt := p.now().UTC()
	if err := p.furnishings.RecordOutcome(ctx, furnishing.ID, domain.FurnishingStatusProcessed, &processedAt, ""); err != nil {
		return fmt.Errorf("failed to mark email furnishing processed: %w", err)
	}

	p.metrics.IncFurnishingCreated(furnishing.FurnishingType.String(), furnishing.FurnishingName.String())
	p.logger.Info("email notice sent",
		zap.String("identifier", business.Identifier),
		zap.String("furnishingName", name.String()),
		zap.String("groupId", furnishing.FurnishingGroupID),
	)
	return nil
}

func (p *StageOneProcessor) createMailFurnishing(ctx context.Context, business *domain.Business, name domain.FurnishingName) error {
	mailingAddress, err := p.businesses.GetMailingAddress(ctx, business.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNoMailingAddress) {
			return fmt.Errorf("%w: business %s", domain.ErrNoMailingAddress, business.Identifier)
		}
		return fmt.Errorf("failed to load mailing address: %w", err)
	}

	furnishing := p.newFurnishing(business, name, domain.FurnishingTypeMail)
	if err := furnishing.Validate(); err != nil {
		return err
	}

	snapshot := domain.SnapshotAddress(mailingAddress)
	if err := p.furnishings.CreateWithAddress(ctx, furnishing, snapshot); err != nil {
		return fmt.Errorf("failed to persist mail furnishing: %w", err)
	}

	p.metrics.IncFurnishingCreated(furnishing.FurnishingType.String(), furnishing.FurnishingName.String())
	p.logger.Info("letter notice queued",
		zap.String("identifier", business.Identifier),
		zap.String("furnishingName", name.String()),
		zap.String("groupId", furnishing.FurnishingGroupID),
	)
	return nil
}

func (p *StageOneProcessor) newFurnishing(business *domain.Business, name domain.FurnishingName, furnishingType domain.FurnishingType) *domain.Furnishing {
	lastAR := business.LastARDateOrFounding()
	return &domain.Furnishing{
		BusinessID:         business.ID,
		BusinessIdentifier: business.Identifier,
		FurnishingType:     furnishingType,
		FurnishingName:     name,
		Status:             domain.FurnishingStatusQueued,
		FurnishingGroupID:  p.newGroupID(),
		BusinessName:       business.LegalName,
		LastARDate:         &lastAR,
		CreatedDate:        p.now().UTC(),
	}
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedLegalType):
		return "unsupported_legal_type"
	case errors.Is(err, domain.ErrNoMailingAddress):
		return "no_mailing_address"
	case errors.Is(err, domain.ErrNotFound):
		return "business_not_found"
	default:
		return "external_call_failed"
	}
}
