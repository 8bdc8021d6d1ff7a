package cart

import (
	"context"

	"github.com/salonyai/storefront/internal/domain"
)

// Store persists cart state per (slug, session) scope plus the session's
// selected language. The cart value is the full JSON-serialized line-item
// list; every mutation rewrites it whole, last writer wins. No cross-session
// locking is provided.
type Store interface {
	// GetCart returns the serialized line-item list, or nil when no cart
	// has been saved for this scope.
	GetCart(ctx context.Context, slug, sessionID string) ([]byte, error)
	SaveCart(ctx context.Context, slug, sessionID string, data []byte) error
	DeleteCart(ctx context.Context, slug, sessionID string) error

	// GetLanguage returns the session's selected language, or 0 when unset.
	GetLanguage(ctx context.Context, sessionID string) (domain.LanguageCode, error)
	SetLanguage(ctx context.Context, sessionID string, lang domain.LanguageCode) error
}
