package cart

import (
	"context"
	"reflect"
	"testing"

	"github.com/salonyai/storefront/internal/domain"
)

func testProduct(id int, price float64, stock int) domain.Product {
	return domain.Product{
		ID:            id,
		Price:         price,
		StockQuantity: stock,
		Translations: []domain.Translation{
			{LanguageCode: domain.LanguageEnglish, Name: "Shampoo", Description: "Argan oil shampoo"},
		},
		Images: []domain.ProductImage{
			{ImageURL: "https://cdn.example.com/shampoo.jpg", IsMain: true},
		},
	}
}

func newTestEngine(t *testing.T, store Store) *Engine {
	t.Helper()
	eng := NewEngine(store, "glamour-salon", "session-1", nil)
	if err := eng.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return eng
}

func TestAddToCartClampsToStock(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, NewMemoryStore())
	product := testProduct(1, 10, 2)

	added, err := eng.AddToCart(ctx, product, 1)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if added != 1 {
		t.Errorf("first add: got %d, want 1", added)
	}

	added, err = eng.AddToCart(ctx, product, 1)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if added != 1 {
		t.Errorf("second add: got %d, want 1", added)
	}

	items := eng.Items()
	if len(items) != 1 {
		t.Fatalf("got %d line items, want 1", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("quantity: got %d, want 2", items[0].Quantity)
	}
	if total := eng.Total(); total != 20 {
		t.Errorf("total: got %v, want 20", total)
	}

	// Third add is blocked by the ceiling.
	added, err = eng.AddToCart(ctx, product, 1)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if added != 0 {
		t.Errorf("add at ceiling: got %d, want 0", added)
	}
	if got := eng.Items()[0].Quantity; got != 2 {
		t.Errorf("quantity after blocked add: got %d, want 2", got)
	}
}

func TestAddToCartOverRequestIsPartiallyApplied(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, NewMemoryStore())

	added, err := eng.AddToCart(ctx, testProduct(1, 5, 3), 10)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if added != 3 {
		t.Errorf("got %d, want 3", added)
	}
	if got := eng.Items()[0].Quantity; got != 3 {
		t.Errorf("quantity: got %d, want 3", got)
	}
}

func TestAddToCartZeroStockInsertsNothing(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, NewMemoryStore())

	added, err := eng.AddToCart(ctx, testProduct(1, 10, 0), 1)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if added != 0 {
		t.Errorf("got %d, want 0", added)
	}
	if len(eng.Items()) != 0 {
		t.Errorf("zero-stock add created a line item")
	}
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, NewMemoryStore())

	added, err := eng.AddToCart(ctx, testProduct(1, 10, 5), 0)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if added != 1 {
		t.Errorf("got %d, want 1", added)
	}
}

func TestAddToCartSnapshotsProduct(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, NewMemoryStore())

	if _, err := eng.AddToCart(ctx, testProduct(7, 12.5, 4), 2); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	item := eng.Items()[0]
	if item.ID == "" {
		t.Error("line item has no local identifier")
	}
	if item.Name != "Shampoo" {
		t.Errorf("name: got %q, want %q", item.Name, "Shampoo")
	}
	if item.Description != "Argan oil shampoo" {
		t.Errorf("description: got %q", item.Description)
	}
	if item.ImageURL != "https://cdn.example.com/shampoo.jpg" {
		t.Errorf("image: got %q", item.ImageURL)
	}
	if item.Price != 12.5 || item.StockQuantity != 4 {
		t.Errorf("snapshot: got price=%v stock=%d", item.Price, item.StockQuantity)
	}
}

func TestAddToCartWithoutTranslationsUsesFallback(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, NewMemoryStore())

	product := domain.Product{ID: 3, Price: 2, StockQuantity: 1}
	if _, err := eng.AddToCart(ctx, product, 1); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	item := eng.Items()[0]
	if item.Name != "Unnamed Product" {
		t.Errorf("name: got %q, want %q", item.Name, "Unnamed Product")
	}
	if item.Description != "" {
		t.Errorf("description: got %q, want empty", item.Description)
	}
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()

	build := func() *Engine {
		eng := newTestEngine(t, NewMemoryStore())
		if _, err := eng.AddToCart(ctx, testProduct(1, 5, 10), 2); err != nil {
			t.Fatalf("AddToCart: %v", err)
		}
		if _, err := eng.AddToCart(ctx, testProduct(2, 3, 10), 1); err != nil {
			t.Fatalf("AddToCart: %v", err)
		}
		return eng
	}

	updated := build()
	if err := updated.UpdateQuantity(ctx, 1, 0); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}

	removed := build()
	if err := removed.RemoveFromCart(ctx, 1); err != nil {
		t.Fatalf("RemoveFromCart: %v", err)
	}

	stripIDs := func(items []domain.CartLineItem) []domain.CartLineItem {
		for i := range items {
			items[i].ID = ""
		}
		return items
	}
	if !reflect.DeepEqual(stripIDs(updated.Items()), stripIDs(removed.Items())) {
		t.Errorf("UpdateQuantity(1, 0) state differs from RemoveFromCart(1)")
	}
}

func TestUpdateQuantityClampsToCeiling(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, NewMemoryStore())

	if _, err := eng.AddToCart(ctx, testProduct(1, 5, 4), 1); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if err := eng.UpdateQuantity(ctx, 1, 99); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if got := eng.Items()[0].Quantity; got != 4 {
		t.Errorf("quantity: got %d, want 4", got)
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, NewMemoryStore())

	if err := eng.UpdateQuantity(ctx, 42, 3); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if len(eng.Items()) != 0 {
		t.Errorf("no-op update created a line item")
	}
}

func TestRemoveFromCartUnknownProductIsNoop(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, NewMemoryStore())

	if err := eng.RemoveFromCart(ctx, 42); err != nil {
		t.Fatalf("RemoveFromCart: %v", err)
	}
}

func TestCartTotals(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, NewMemoryStore())

	if got := eng.Total(); got != 0 {
		t.Errorf("empty cart total: got %v, want 0", got)
	}
	if got := eng.ItemCount(); got != 0 {
		t.Errorf("empty cart count: got %d, want 0", got)
	}

	if _, err := eng.AddToCart(ctx, testProduct(1, 5, 10), 2); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if _, err := eng.AddToCart(ctx, testProduct(2, 3, 10), 1); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	if got := eng.Total(); got != 13 {
		t.Errorf("total: got %v, want 13", got)
	}
	if got := eng.ItemCount(); got != 3 {
		t.Errorf("count: got %d, want 3", got)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	eng := newTestEngine(t, store)
	if _, err := eng.AddToCart(ctx, testProduct(1, 5, 10), 2); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if _, err := eng.AddToCart(ctx, testProduct(2, 3, 10), 1); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	// Simulated page reload: a fresh engine over the same store.
	reloaded := newTestEngine(t, store)
	if !reflect.DeepEqual(eng.Items(), reloaded.Items()) {
		t.Errorf("reloaded cart differs:\n got %+v\nwant %+v", reloaded.Items(), eng.Items())
	}
}

func TestCartsAreScopedBySlugAndSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	eng := newTestEngine(t, store)
	if _, err := eng.AddToCart(ctx, testProduct(1, 5, 10), 1); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	otherTenant := NewEngine(store, "other-salon", "session-1", nil)
	if err := otherTenant.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(otherTenant.Items()) != 0 {
		t.Errorf("cart leaked across tenant slugs")
	}

	otherSession := NewEngine(store, "glamour-salon", "session-2", nil)
	if err := otherSession.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(otherSession.Items()) != 0 {
		t.Errorf("cart leaked across sessions")
	}
}

func TestClearEmptiesCartAndStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	eng := newTestEngine(t, store)
	if _, err := eng.AddToCart(ctx, testProduct(1, 5, 10), 2); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if err := eng.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(eng.Items()) != 0 || eng.Total() != 0 {
		t.Errorf("cart not empty after Clear")
	}

	reloaded := newTestEngine(t, store)
	if len(reloaded.Items()) != 0 {
		t.Errorf("store still holds items after Clear")
	}
}

func TestLoadDiscardsUnparseableData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.SaveCart(ctx, "glamour-salon", "session-1", []byte("{not json")); err != nil {
		t.Fatalf("SaveCart: %v", err)
	}

	eng := newTestEngine(t, store)
	if len(eng.Items()) != 0 {
		t.Errorf("unparseable cart data was not discarded")
	}
}
