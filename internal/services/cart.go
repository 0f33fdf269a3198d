package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"elevatecart/internal/domain"
)

const cartLockStripes = 64

// CartConfig configures the cart service.
type CartConfig struct {
	// CheckoutURL is the external commerce endpoint receiving id1..idN.
	CheckoutURL string
}

type cartService struct {
	repo  domain.CartRepository
	cfg   CartConfig
	locks [cartLockStripes]sync.Mutex
}

// NewCartService creates a CartService persisting through repo.
func NewCartService(repo domain.CartRepository, cfg CartConfig) domain.CartService {
	return &cartService{repo: repo, cfg: cfg}
}

// lock serialises read-modify-write cycles on one cart.
func (s *cartService) lock(scope domain.CartScope) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(scope.SessionID))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(scope.Key()))
	mu := &s.locks[h.Sum32()%cartLockStripes]
	mu.Lock()
	return mu.Unlock
}

func (s *cartService) load(ctx context.Context, scope domain.CartScope) ([]domain.CartItem, error) {
	items, ok, err := s.repo.Get(ctx, scope.SessionID, scope.Key())
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !ok || items == nil {
		return []domain.CartItem{}, nil
	}
	return items, nil
}

func (s *cartService) save(ctx context.Context, scope domain.CartScope, items []domain.CartItem) error {
	if err := s.repo.Set(ctx, scope.SessionID, scope.Key(), items); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Add appends item unless an item with the same instance id is present. A
// waitlist join is stored with fee 0.
func (s *cartService) Add(ctx context.Context, scope domain.CartScope, item domain.CartItem, waitlist bool) (*domain.CartSnapshot, error) {
	if strings.TrimSpace(item.InstanceObjectID) == "" {
		return nil, fmt.Errorf("%w: instance_object_id is required", domain.ErrInvalidInput)
	}
	unlock := s.lock(scope)
	defer unlock()

	items, err := s.load(ctx, scope)
	if err != nil {
		return nil, err
	}
	if indexOfItem(items, item.InstanceObjectID) >= 0 {
		return nil, domain.ErrDuplicateItem
	}
	if waitlist {
		item.Fee = 0
		item.AddedToWaitlist = true
	}
	if item.Sections == nil {
		item.Sections = []domain.Section{}
	}
	items = append(items, item)
	if err := s.save(ctx, scope, items); err != nil {
		return nil, err
	}
	return s.snapshot(items), nil
}

// Remove drops the item with the given instance id.
func (s *cartService) Remove(ctx context.Context, scope domain.CartScope, instanceObjectID string) (*domain.CartSnapshot, error) {
	unlock := s.lock(scope)
	defer unlock()

	items, err := s.load(ctx, scope)
	if err != nil {
		return nil, err
	}
	i := indexOfItem(items, instanceObjectID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	items = append(items[:i:i], items[i+1:]...)
	if err := s.save(ctx, scope, items); err != nil {
		return nil, err
	}
	return s.snapshot(items), nil
}

// Empty persists an empty cart.
func (s *cartService) Empty(ctx context.Context, scope domain.CartScope) (*domain.CartSnapshot, error) {
	unlock := s.lock(scope)
	defer unlock()

	items := []domain.CartItem{}
	if err := s.save(ctx, scope, items); err != nil {
		return nil, err
	}
	return s.snapshot(items), nil
}

func (s *cartService) Snapshot(ctx context.Context, scope domain.CartScope) (*domain.CartSnapshot, error) {
	unlock := s.lock(scope)
	defer unlock()

	items, err := s.load(ctx, scope)
	if err != nil {
		return nil, err
	}
	return s.snapshot(items), nil
}

func (s *cartService) snapshot(items []domain.CartItem) *domain.CartSnapshot {
	total := CartTotal(items)
	snap := &domain.CartSnapshot{
		Items:         items,
		Count:         len(items),
		Total:         total,
		FriendlyTotal: FormatCurrency(total),
	}
	if len(items) > 0 {
		snap.CheckoutLink = CheckoutLink(s.cfg.CheckoutURL, items)
		snap.CheckoutEnabled = true
	}
	return snap
}

// CartTotal sums item fees as stored. Waitlisted items already carry 0.
func CartTotal(items []domain.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Fee
	}
	return total
}

// CheckoutLink appends ?id1=..&id2=.. to baseURL in cart order. Keys are
// positional, so url.Values (which sorts) cannot be used.
func CheckoutLink(baseURL string, items []domain.CartItem) string {
	if len(items) == 0 {
		return baseURL
	}
	var b strings.Builder
	b.WriteString(baseURL)
	if strings.Contains(baseURL, "?") {
		b.WriteByte('&')
	} else {
		b.WriteByte('?')
	}
	for i, it := range items {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString("id")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(it.InstanceObjectID))
	}
	return b.String()
}

func indexOfItem(items []domain.CartItem, instanceObjectID string) int {
	for i, it := range items {
		if it.InstanceObjectID == instanceObjectID {
			return i
		}
	}
	return -1
}
