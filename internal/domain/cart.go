package domain

import (
	"context"
	"fmt"
	"net/url"
)

// CartKeySuffix is appended to host+path to form the cart storage key.
const CartKeySuffix = "-cart-program-instances"

// CartItem is a visitor-held reference to one program instance plus a
// snapshot of what was shown when it was added.
type CartItem struct {
	InstanceObjectID  string    `json:"instance_object_id"`
	ProgramInstanceID string    `json:"program_instance_id"`
	Title             string    `json:"title"`
	Fee               float64   `json:"fee"`
	Sections          []Section `json:"sections"`
	AddedToWaitlist   bool      `json:"added_to_waitlist"`
}

// CartScope identifies one cart: a browsing session on one page location.
type CartScope struct {
	SessionID string
	Host      string
	Path      string
}

// NewCartScope derives the scope of the page at pageURL for a session.
func NewCartScope(sessionID, pageURL string) (CartScope, error) {
	if sessionID == "" {
		return CartScope{}, fmt.Errorf("%w: missing session", ErrInvalidInput)
	}
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return CartScope{}, fmt.Errorf("%w: page_url must be an absolute URL", ErrInvalidInput)
	}
	return CartScope{SessionID: sessionID, Host: u.Hostname(), Path: u.Path}, nil
}

// Key is the storage key of the cart within its session.
func (s CartScope) Key() string {
	return s.Host + s.Path + CartKeySuffix
}

// CartSnapshot is the cart state handed to the presentation layer.
type CartSnapshot struct {
	Items           []CartItem `json:"items"`
	Count           int        `json:"count"`
	Total           float64    `json:"total"`
	FriendlyTotal   string     `json:"friendly_total"`
	CheckoutLink    string     `json:"checkout_link,omitempty"`
	CheckoutEnabled bool       `json:"checkout_enabled"`
}

// CartRepository persists cart items per session and key. Get reports
// ok=false when nothing was stored.
type CartRepository interface {
	Get(ctx context.Context, sessionID, key string) (items []CartItem, ok bool, err error)
	Set(ctx context.Context, sessionID, key string, items []CartItem) error
}

// CartService maintains the deduplicated cart selection.
type CartService interface {
	Add(ctx context.Context, scope CartScope, item CartItem, waitlist bool) (*CartSnapshot, error)
	Remove(ctx context.Context, scope CartScope, instanceObjectID string) (*CartSnapshot, error)
	Empty(ctx context.Context, scope CartScope) (*CartSnapshot, error)
	Snapshot(ctx context.Context, scope CartScope) (*CartSnapshot, error)
}
