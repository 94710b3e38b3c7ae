package service

import (
	"context"
	"sync"
	"time"

	"github.com/corpreg/furnishings-engine/internal/domain"
	"github.com/corpreg/furnishings-engine/internal/queue"
)

type fakeBusinessRepo struct {
	getByIDFn           func(ctx context.Context, id int64) (*domain.Business, error)
	getMailingAddressFn func(ctx context.Context, businessID int64) (*domain.Address, error)
	hasRestorationFn    func(ctx context.Context, businessID int64) (bool, error)
}

func (f *fakeBusinessRepo) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeBusinessRepo) GetMailingAddress(ctx context.Context, businessID int64) (*domain.Address, error) {
	if f.getMailingAddressFn == nil {
		return &domain.Address{AddressType: domain.AddressTypeMailing, StreetAddress: "940 Blanshard St"}, nil
	}
	return f.getMailingAddressFn(ctx, businessID)
}

func (f *fakeBusinessRepo) HasCompletedRestorationFiling(ctx context.Context, businessID int64) (bool, error) {
	if f.hasRestorationFn == nil {
		return false, nil
	}
	return f.hasRestorationFn(ctx, businessID)
}

type outcomeRecord struct {
	id            int64
	status        domain.FurnishingStatus
	processedDate *time.Time
	note          string
}

type fakeFurnishingRepo struct {
	mu sync.Mutex

	findByBusinessIDFn func(ctx context.Context, businessID int64) ([]domain.Furnishing, error)
	listQueuedMailFn   func(ctx context.Context) ([]domain.Furnishing, error)
	createErr          error
	recordOutcomeErr   error

	nextID    int64
	created   []domain.Furnishing
	addresses []domain.FurnishingAddress
	outcomes  []outcomeRecord
	notes     []string
}

func (f *fakeFurnishingRepo) Create(ctx context.Context, furnishing *domain.Furnishing) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	furnishing.ID = f.nextID
	f.created = append(f.created, *furnishing)
	return nil
}

func (f *fakeFurnishingRepo) CreateWithAddress(ctx context.Context, furnishing *domain.Furnishing, addr *domain.FurnishingAddress) error {
	if err := f.Create(ctx, furnishing); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if addr != nil {
		addr.FurnishingID = furnishing.ID
		f.addresses = append(f.addresses, *addr)
	}
	return nil
}

func (f *fakeFurnishingRepo) FindByBusinessID(ctx context.Context, businessID int64) ([]domain.Furnishing, error) {
	if f.findByBusinessIDFn == nil {
		return nil, nil
	}
	return f.findByBusinessIDFn(ctx, businessID)
}

func (f *fakeFurnishingRepo) ListQueuedMail(ctx context.Context) ([]domain.Furnishing, error) {
	if f.listQueuedMailFn == nil {
		return nil, nil
	}
	return f.listQueuedMailFn(ctx)
}

func (f *fakeFurnishingRepo) GetAddress(ctx context.Context, furnishingID int64) (*domain.FurnishingAddress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.addresses {
		if f.addresses[i].FurnishingID == furnishingID {
			addr := f.addresses[i]
			return &addr, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeFurnishingRepo) RecordOutcome(ctx context.Context, id int64, status domain.FurnishingStatus, processedDate *time.Time, note string) error {
	if f.recordOutcomeErr != nil {
		return f.recordOutcomeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, outcomeRecord{id: id, status: status, processedDate: processedDate, note: note})
	return nil
}

func (f *fakeFurnishingRepo) AppendNote(ctx context.Context, id int64, note string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, note)
	return nil
}

type fakeContactLookup struct {
	getContactEmailFn func(ctx context.Context, identifier string) (string, error)
	calls             int
}

func (f *fakeContactLookup) GetContactEmail(ctx context.Context, identifier string) (string, error) {
	f.calls++
	if f.getContactEmailFn == nil {
		return "", nil
	}
	return f.getContactEmailFn(ctx, identifier)
}

type fakePublisher struct {
	publishFn func(ctx context.Context, queueName string, msg queue.EmailMessage) error
	published []queue.EmailMessage
}

func (f *fakePublisher) Publish(ctx context.Context, queueName string, msg queue.EmailMessage) error {
	if f.publishFn != nil {
		if err := f.publishFn(ctx, queueName, msg); err != nil {
			return err
		}
	}
	f.published = append(f.published, msg)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

type fakeLimiter struct {
	waits int
}

func (f *fakeLimiter) Allow(ctx context.Context, service string) (bool, error) {
	return true, nil
}

func (f *fakeLimiter) Wait(ctx context.Context, service string) error {
	f.waits++
	return nil
}

type mergeCall struct {
	category domain.EntityCategory
	ids      []int64
}

type fakeMerger struct {
	mu      sync.Mutex
	mergeFn func(ctx context.Context, category domain.EntityCategory, ids []int64) ([]byte, error)
	calls   []mergeCall
}

func (f *fakeMerger) Merge(ctx context.Context, category domain.EntityCategory, ids []int64) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, mergeCall{category: category, ids: ids})
	f.mu.Unlock()
	if f.mergeFn == nil {
		return []byte("%PDF-1.4 merged"), nil
	}
	return f.mergeFn(ctx, category, ids)
}

type uploadCall struct {
	remoteDir string
	fileName  string
	size      int
}

type fakeUploader struct {
	mu       sync.Mutex
	uploadFn func(ctx context.Context, data []byte, remoteDir, fileName string) (string, error)
	calls    []uploadCall
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, remoteDir string, fileName string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, uploadCall{remoteDir: remoteDir, fileName: fileName, size: len(data)})
	f.mu.Unlock()
	if f.uploadFn == nil {
		return remoteDir + "/" + fileName, nil
	}
	return f.uploadFn(ctx, data, remoteDir, fileName)
}
