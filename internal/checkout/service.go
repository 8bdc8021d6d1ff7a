package checkout

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/cart"
	"github.com/salonyai/storefront/internal/domain"
	"github.com/salonyai/storefront/internal/events"
	"github.com/salonyai/storefront/internal/salonapi"
	"github.com/salonyai/storefront/pkg/errors"
)

// Tax is fixed at zero in this deployment; the field exists so the total
// formula reads the same as the upstream contract.
const taxAmount = 0.0

type Service struct {
	client   *salonapi.Client
	producer *events.Producer // nil when Kafka is not configured
	logger   *zap.Logger
}

// NewService creates a checkout service
func NewService(client *salonapi.Client, producer *events.Producer, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		producer: producer,
		logger:   logger,
	}
}

// Result is what a successful submission returns to the caller
type Result struct {
	Message string          `json:"message"`
	Order   json.RawMessage `json:"order,omitempty"`
}

// Totals breaks down the amount a cart will be charged
type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
}

// ComputeTotals returns the cart's charge breakdown for the given tenant
func ComputeTotals(eng *cart.Engine, settings *domain.TenantSettings) Totals {
	subtotal := eng.Total()
	shipping := 0.0
	if settings != nil {
		shipping = settings.ShippingCost
	}
	return Totals{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          taxAmount,
		Total:        subtotal + shipping + taxAmount,
	}
}

// Submit assembles an OrderPayload from the cart and customer fields and
// posts it upstream. The tenant identifier must already be resolved;
// otherwise submission is refused before any network call. On success the
// cart is cleared; on failure it is left untouched so the user can retry.
// The request is a single fire-and-await with no retry.
func (s *Service) Submit(ctx context.Context, settings *domain.TenantSettings, eng *cart.Engine, customer domain.Customer) (*Result, error) {
	if settings == nil || settings.TenantIdentifier == "" {
		return nil, &errors.ErrValidation{Message: "tenant identifier is not resolved"}
	}
	items := eng.Items()
	if len(items) == 0 {
		return nil, &errors.ErrValidation{Message: "cart is empty"}
	}

	totals := ComputeTotals(eng, settings)

	orderItems := make([]domain.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = domain.OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.Price,
			TotalPrice: item.Price * float64(item.Quantity),
		}
	}

	payload := domain.OrderPayload{
		TenantIdentifier: settings.TenantIdentifier,
		Customer:         customer,
		TotalAmount:      totals.Total,
		Source:           domain.OrderSourceWebsite,
		Items:            orderItems,
	}

	data, message, err := s.client.CreateOrder(ctx, settings.TenantIdentifier, payload)
	if err != nil {
		return nil, err
	}

	// The order is placed; a failed cart clear must not fail the checkout.
	if err := eng.Clear(ctx); err != nil {
		s.logger.Warn("Failed to clear cart after checkout",
			zap.String("slug", settings.Slug),
			zap.Error(err),
		)
	}

	if s.producer != nil {
		s.producer.PublishOrderPlaced(events.OrderPlaced{
			Slug:        settings.Slug,
			SessionID:   eng.SessionID(),
			TotalAmount: totals.Total,
			ItemCount:   len(items),
			PlacedAt:    time.Now(),
		})
	}

	s.logger.Info("Order placed",
		zap.String("slug", settings.Slug),
		zap.Float64("total", totals.Total),
		zap.Int("items", len(items)),
	)

	if message == "" {
		message = "Order placed successfully!"
	}
	return &Result{Message: message, Order: data}, nil
}
