package controllers

import (
	"context"
	"io"
	"log/slog"

	"elevatecart/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakePageRepo implements domain.PageRepository.
type fakePageRepo struct {
	pages map[string]*domain.PageConfig
	err   error
}

func (f *fakePageRepo) GetByID(ctx context.Context, id string) (*domain.PageConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.pages[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// fakeListingService implements domain.ListingService.
type fakeListingService struct {
	listings []*domain.GroupListing
	err      error
	lastPage *domain.PageConfig
}

func (f *fakeListingService) ListGroups(ctx context.Context, page *domain.PageConfig) ([]*domain.GroupListing, error) {
	f.lastPage = page
	return f.listings, f.err
}

// fakeCartService implements domain.CartService.
type fakeCartService struct {
	snapshot     *domain.CartSnapshot
	err          error
	lastScope    domain.CartScope
	lastItem     domain.CartItem
	lastWaitlist bool
	lastRemoveID string
	calls        []string
}

func (f *fakeCartService) Add(ctx context.Context, scope domain.CartScope, item domain.CartItem, waitlist bool) (*domain.CartSnapshot, error) {
	f.calls = append(f.calls, "add")
	f.lastScope, f.lastItem, f.lastWaitlist = scope, item, waitlist
	return f.result()
}

func (f *fakeCartService) Remove(ctx context.Context, scope domain.CartScope, instanceObjectID string) (*domain.CartSnapshot, error) {
	f.calls = append(f.calls, "remove")
	f.lastScope, f.lastRemoveID = scope, instanceObjectID
	return f.result()
}

func (f *fakeCartService) Empty(ctx context.Context, scope domain.CartScope) (*domain.CartSnapshot, error) {
	f.calls = append(f.calls, "empty")
	f.lastScope = scope
	return f.result()
}

func (f *fakeCartService) Snapshot(ctx context.Context, scope domain.CartScope) (*domain.CartSnapshot, error) {
	f.calls = append(f.calls, "snapshot")
	f.lastScope = scope
	return f.result()
}

func (f *fakeCartService) result() (*domain.CartSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.snapshot == nil {
		return &domain.CartSnapshot{Items: []domain.CartItem{}, FriendlyTotal: "$0.00"}, nil
	}
	return f.snapshot, nil
}

// fakeFetchLogRepo implements domain.FetchLogRepository.
type fakeFetchLogRepo struct {
	logs       []*domain.FetchLog
	total      int
	err        error
	lastParams domain.PaginationParams
}

func (f *fakeFetchLogRepo) Create(ctx context.Context, log *domain.FetchLog) error { return nil }

func (f *fakeFetchLogRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.FetchLog, int, error) {
	f.lastParams = params
	return f.logs, f.total, f.err
}
