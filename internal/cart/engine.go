package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/domain"
	"github.com/salonyai/storefront/internal/i18n"
)

// Engine owns the line items of one (slug, session) scope. It loads the
// persisted list once, mutates in memory, and rewrites the whole list to the
// store after every mutation. Operations never return domain errors for
// invalid input; quantities are clamped or the call is ignored.
//
// A cart holds at most one line item per product. For every item the
// invariant 0 < Quantity <= StockQuantity holds; an item whose quantity
// would drop to zero is removed, never retained at zero.
type Engine struct {
	store     Store
	slug      string
	sessionID string
	items     []domain.CartLineItem
	logger    *zap.Logger
}

// NewEngine creates a cart engine scoped to one tenant slug and session
func NewEngine(store Store, slug, sessionID string, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		store:     store,
		slug:      slug,
		sessionID: sessionID,
		logger:    logger,
	}
}

// Load reads the persisted cart into memory. A missing or unparseable value
// yields an empty cart; parse failures are logged, not surfaced.
func (e *Engine) Load(ctx context.Context) error {
	data, err := e.store.GetCart(ctx, e.slug, e.sessionID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	if len(data) == 0 {
		e.items = nil
		return nil
	}

	var items []domain.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		e.logger.Warn("Discarding unparseable cart data",
			zap.String("slug", e.slug),
			zap.String("session_id", e.sessionID),
			zap.Error(err),
		)
		e.items = nil
		return nil
	}
	e.items = items
	return nil
}

// AddToCart adds quantity units of the product, clamped to its stock
// ceiling, merging with an existing line item for the same product. It
// returns the quantity actually added so callers can distinguish "added"
// from "already at maximum stock" (0). A product with zero stock and no
// existing line item inserts nothing.
func (e *Engine) AddToCart(ctx context.Context, product domain.Product, quantity int) (int, error) {
	if product.ID == 0 {
		return 0, nil
	}
	if quantity <= 0 {
		quantity = 1
	}

	for i := range e.items {
		if e.items[i].ProductID != product.ID {
			continue
		}
		current := e.items[i].Quantity
		newQuantity := current + quantity
		if newQuantity > product.StockQuantity {
			newQuantity = product.StockQuantity
		}
		added := newQuantity - current
		if added <= 0 {
			return 0, nil
		}
		e.items[i].Quantity = newQuantity
		e.items[i].StockQuantity = product.StockQuantity
		if err := e.persist(ctx); err != nil {
			return 0, err
		}
		return added, nil
	}

	added := quantity
	if added > product.StockQuantity {
		added = product.StockQuantity
	}
	if added <= 0 {
		return 0, nil
	}

	name := i18n.FallbackProductName
	description := ""
	if len(product.Translations) > 0 {
		name = product.Translations[0].Name
		description = product.Translations[0].Description
	}

	e.items = append(e.items, domain.CartLineItem{
		ID:            uuid.NewString(),
		ProductID:     product.ID,
		Name:          name,
		Description:   description,
		Price:         product.Price,
		ImageURL:      product.PrimaryImageURL(),
		Quantity:      added,
		StockQuantity: product.StockQuantity,
	})
	if err := e.persist(ctx); err != nil {
		return 0, err
	}
	return added, nil
}

// RemoveFromCart deletes the line item for the product. No-op when absent.
func (e *Engine) RemoveFromCart(ctx context.Context, productID int) error {
	for i := range e.items {
		if e.items[i].ProductID == productID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return e.persist(ctx)
		}
	}
	return nil
}

// UpdateQuantity sets the line item's quantity, clamped to its stock
// ceiling. A quantity of zero or less removes the item. No-op when the
// product is not in the cart.
func (e *Engine) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	if quantity <= 0 {
		return e.RemoveFromCart(ctx, productID)
	}
	for i := range e.items {
		if e.items[i].ProductID != productID {
			continue
		}
		if quantity > e.items[i].StockQuantity {
			quantity = e.items[i].StockQuantity
		}
		e.items[i].Quantity = quantity
		return e.persist(ctx)
	}
	return nil
}

// Clear empties the cart, used after checkout success and on explicit user
// action.
func (e *Engine) Clear(ctx context.Context) error {
	e.items = nil
	if err := e.store.DeleteCart(ctx, e.slug, e.sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Slug returns the tenant slug this cart is scoped to
func (e *Engine) Slug() string { return e.slug }

// SessionID returns the session this cart belongs to
func (e *Engine) SessionID() string { return e.sessionID }

// Items returns a copy of the line items in insertion order
func (e *Engine) Items() []domain.CartLineItem {
	out := make([]domain.CartLineItem, len(e.items))
	copy(out, e.items)
	return out
}

// ItemCount returns the sum of all line items' quantities
func (e *Engine) ItemCount() int {
	count := 0
	for _, item := range e.items {
		count += item.Quantity
	}
	return count
}

// Total returns the sum of price * quantity over all line items
func (e *Engine) Total() float64 {
	total := 0.0
	for _, item := range e.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (e *Engine) persist(ctx context.Context) error {
	data, err := json.Marshal(e.items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := e.store.SaveCart(ctx, e.slug, e.sessionID, data); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
