package salonapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/salonyai/storefront/internal/config"
	"github.com/salonyai/storefront/internal/domain"
	"github.com/salonyai/storefront/pkg/errors"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.UpstreamConfig{
		BaseURL:           baseURL,
		BootstrapTenantID: "bootstrap-tenant",
	}, nil)
}

func TestGetWebsiteSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/WebsiteSetting/glamour-salon" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		if got := r.Header.Get(TenantHeader); got != "bootstrap-tenant" {
			t.Errorf("tenant header: got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"isSuccessful": true,
			"message":      "",
			"data": map[string]interface{}{
				"tenantIdentifier":   "tenant-123",
				"slug":               "glamour-salon",
				"shippingCost":       2.5,
				"supportedLanguages": []int{1, 2},
			},
		})
	}))
	defer srv.Close()

	settings, err := newTestClient(srv.URL).GetWebsiteSettings(context.Background(), "glamour-salon")
	if err != nil {
		t.Fatalf("GetWebsiteSettings: %v", err)
	}
	if settings.TenantIdentifier != "tenant-123" {
		t.Errorf("tenantIdentifier: got %q", settings.TenantIdentifier)
	}
	if settings.ShippingCost != 2.5 {
		t.Errorf("shippingCost: got %v", settings.ShippingCost)
	}
	if len(settings.SupportedLanguages) != 2 || settings.SupportedLanguages[0] != domain.LanguageEnglish {
		t.Errorf("supportedLanguages: got %v", settings.SupportedLanguages)
	}
}

func TestGetWebsiteSettingsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetWebsiteSettings(context.Background(), "no-such-salon")
	var notFound *errors.ErrNotFound
	if nf, ok := err.(*errors.ErrNotFound); ok {
		notFound = nf
	}
	if notFound == nil {
		t.Fatalf("got %v, want *errors.ErrNotFound", err)
	}
	if notFound.ID != "no-such-salon" {
		t.Errorf("not found ID: got %q", notFound.ID)
	}
}

func TestServerErrorMapsToUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListCategories(context.Background(), "tenant-123", 0, 10)
	upstream, ok := err.(*errors.ErrUpstream)
	if !ok {
		t.Fatalf("got %v, want *errors.ErrUpstream", err)
	}
	if upstream.Status != http.StatusInternalServerError {
		t.Errorf("status: got %d", upstream.Status)
	}
}

func TestUnsuccessfulEnvelopeMapsToUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"isSuccessful": false,
			"message":      "tenant is suspended",
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListCategories(context.Background(), "tenant-123", 0, 10)
	upstream, ok := err.(*errors.ErrUpstream)
	if !ok {
		t.Fatalf("got %v, want *errors.ErrUpstream", err)
	}
	if upstream.Message != "tenant is suspended" {
		t.Errorf("message: got %q", upstream.Message)
	}
}

func TestListProductsQueryAndHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("categoryId") != "7" || q.Get("skip") != "20" || q.Get("take") != "10" {
			t.Errorf("query: got %v", q)
		}
		if got := r.Header.Get(TenantHeader); got != "tenant-123" {
			t.Errorf("tenant header: got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"isSuccessful": true,
			"data": []map[string]interface{}{
				{"id": 1, "categoryId": 7, "price": 9.99, "isActive": true, "stockQuantity": 3},
			},
		})
	}))
	defer srv.Close()

	products, err := newTestClient(srv.URL).ListProducts(context.Background(), "tenant-123", 7, 20, 10)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 || products[0].ID != 1 || products[0].StockQuantity != 3 {
		t.Errorf("products: got %+v", products)
	}
}

func TestListProductsDefaultsPageSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("skip") != "0" || q.Get("take") != "10" {
			t.Errorf("query: got %v", q)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"isSuccessful": true, "data": []interface{}{}})
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).ListProducts(context.Background(), "tenant-123", 7, -5, 0); err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
}

func TestCreateOrderSendsPayloadAndHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/Order" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get(TenantHeader); got != "tenant-123" {
			t.Errorf("tenant header: got %q", got)
		}
		var payload domain.OrderPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.TenantIdentifier != "tenant-123" {
			t.Errorf("payload tenant: got %q", payload.TenantIdentifier)
		}
		if payload.Source != domain.OrderSourceWebsite {
			t.Errorf("payload source: got %d", payload.Source)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"isSuccessful": true,
			"message":      "order created",
			"data":         map[string]interface{}{"orderId": 55},
		})
	}))
	defer srv.Close()

	payload := domain.OrderPayload{
		TenantIdentifier: "tenant-123",
		Customer:         domain.Customer{Name: "Lina", PhoneNumber: "0790000000", Address: "Amman"},
		TotalAmount:      13,
		Source:           domain.OrderSourceWebsite,
		Items:            []domain.OrderItem{{ProductID: 1, Quantity: 2, UnitPrice: 5, TotalPrice: 10}},
	}
	data, message, err := newTestClient(srv.URL).CreateOrder(context.Background(), "tenant-123", payload)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if message != "order created" {
		t.Errorf("message: got %q", message)
	}
	if data == nil {
		t.Error("expected order data in response")
	}
}
