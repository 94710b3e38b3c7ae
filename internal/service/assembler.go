package service

import (
	"context"
	"fmt"
	"time"

	"github.com/corpreg/furnishings-engine/internal/delivery"
	"github.com/corpreg/furnishings-engine/internal/documents"
	"github.com/corpreg/furnishings-engine/internal/domain"
	"github.com/corpreg/furnishings-engine/internal/observability"
	"github.com/corpreg/furnishings-engine/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	noteSuccessBC   = "SFTP of BC batch letter was a success"
	noteSuccessXPRO = "SFTP of XPRO batch letter was a success"
	noteSFTPOnHold  = "SFTP delivery disabled, letter held for next run"
)

// LetterAssembler drains the queued MAIL furnishings: partition by entity
// category, merge each partition into one PDF, ship it to the print vendor,
// and record the outcome on every member.
type LetterAssembler struct {
	furnishings repository.FurnishingRepository
	merger      documents.Merger
	uploader    delivery.Uploader
	remoteDir   string
	disabled    bool
	logger      *zap.Logger
	metrics     *observability.Metrics
	now         func() time.Time
}

func NewLetterAssembler(
	furnishings repository.FurnishingRepository,
	merger documents.Merger,
	uploader delivery.Uploader,
	remoteDir string,
	disabled bool,
	logger *zap.Logger,
) (*LetterAssembler, error) {
	if furnishings == nil {
		return nil, fmt.Errorf("furnishing repository is required")
	}
	if merger == nil {
		return nil, fmt.Errorf("merger is required")
	}
	if uploader == nil && !disabled {
		return nil, fmt.Errorf("uploader is required when sftp delivery is enabled")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LetterAssembler{
		furnishings: furnishings,
		merger:      merger,
		uploader:    uploader,
		remoteDir:   remoteDir,
		disabled:    disabled,
		logger:      logger,
		now:         time.Now,
	}, nil
}

func (a *LetterAssembler) SetMetrics(metrics *observability.Metrics) {
	if a == nil {
		return
	}
	a.metrics = metrics
}

// Run processes the BC and XPRO partitions concurrently. A partition failure
// is recorded on its members and logged; it never propagates, so one bad
// batch cannot take down the other.
func (a *LetterAssembler) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	queued, err := a.furnishings.ListQueuedMail(ctx)
	if err != nil {
		return fmt.Errorf("failed to list queued letters: %w", err)
	}
	if len(queued) == 0 {
		a.logger.Info("no queued letters to assemble")
		return nil
	}

	partitions := map[domain.EntityCategory][]domain.Furnishing{}
	for i := range queued {
		category := queued[i].FurnishingName.Category()
		partitions[category] = append(partitions[category], queued[i])
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, category := range []domain.EntityCategory{domain.CategoryBC, domain.CategoryXPRO} {
		members := partitions[category]
		if len(members) == 0 {
			continue
		}
		category := category
		group.Go(func() error {
			a.processPartition(groupCtx, category, members)
			return nil
		})
	}

	return group.Wait()
}

func (a *LetterAssembler) processPartition(ctx context.Context, category domain.EntityCategory, members []domain.Furnishing) {
	logger := a.logger.With(
		zap.String("category", category.String()),
		zap.Int("letters", len(members)),
	)

	ids := make([]int64, 0, len(members))
	for i := range members {
		ids = append(ids, members[i].ID)
	}

	start := a.now()
	document, err := a.merger.Merge(ctx, category, ids)
	a.metrics.ObserveExternalCall("report", a.now().Sub(start))
	if err != nil {
		a.metrics.IncLetterBatchFailed(category.String(), "merge")
		logger.Error("letter merge failed", zap.Error(err))
		a.recordAll(ctx, members, domain.FurnishingStatusFailed, nil, fmt.Sprintf("letter merge failed: %v", err), logger)
		return
	}

	if a.disabled {
		// Upload is switched off; keep the letters QUEUED so the next run
		// with delivery enabled picks them up again.
		logger.Info("sftp delivery disabled, holding letters")
		for i := range members {
			if noteErr := a.furnishings.AppendNote(ctx, members[i].ID, noteSFTPOnHold); noteErr != nil {
				logger.Warn("failed to append hold note",
					zap.Int64("furnishingId", members[i].ID),
					zap.Error(noteErr),
				)
			}
		}
		return
	}

	fileName := delivery.LetterFileName(category.String(), a.now())
	start = a.now()
	remotePath, err := a.uploader.Upload(ctx, document, a.remoteDir, fileName)
	a.metrics.ObserveExternalCall("sftp", a.now().Sub(start))
	if err != nil {
		a.metrics.IncLetterBatchFailed(category.String(), "upload")
		logger.Error("letter upload failed", zap.Error(err))
		a.recordAll(ctx, members, domain.FurnishingStatusFailed, nil, fmt.Sprintf("letter upload failed: %v", err), logger)
		return
	}

	processedAt := a.now().UTC()
	a.recordAll(ctx, members, domain.FurnishingStatusProcessed, &processedAt, successNote(category), logger)
	a.metrics.IncLetterUploaded(category.String())
	logger.Info("letter batch uploaded", zap.String("remotePath", remotePath))
}

func (a *LetterAssembler) recordAll(ctx context.Context, members []domain.Furnishing, status domain.FurnishingStatus, processedDate *time.Time, note string, logger *zap.Logger) {
	for i := range members {
		if err := a.furnishings.RecordOutcome(ctx, members[i].ID, status, processedDate, note); err != nil {
			logger.Warn("failed to record letter outcome",
				zap.Int64("furnishingId", members[i].ID),
				zap.String("status", status.String()),
				zap.Error(err),
			)
		}
	}
}

func successNote(category domain.EntityCategory) string {
	if category == domain.CategoryXPRO {
		return noteSuccessXPRO
	}
	return noteSuccessBC
}
