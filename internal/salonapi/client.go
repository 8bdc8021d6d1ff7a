package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/config"
	"github.com/salonyai/storefront/internal/domain"
	"github.com/salonyai/storefront/pkg/errors"
)

// TenantHeader routes every request to the right tenant upstream
const TenantHeader = "x-tenant-identifier"

const defaultPageSize = 10

// Client talks to the Salony REST API. All responses follow the envelope
// {isSuccessful, message, statusCode, data}.
type Client struct {
	baseURL           string
	bootstrapTenantID string
	httpClient        *http.Client
	logger            *zap.Logger
}

// NewClient creates a new Salony API client
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:           strings.TrimSuffix(cfg.BaseURL, "/"),
		bootstrapTenantID: cfg.BootstrapTenantID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// envelope is the common Salony API response wrapper
type envelope struct {
	Message      string          `json:"message"`
	StatusCode   int             `json:"statusCode"`
	Data         json.RawMessage `json:"data"`
	IsSuccessful bool            `json:"isSuccessful"`
}

// GetWebsiteSettings fetches tenant branding/settings by slug. The lookup is
// slug-keyed but the gateway still requires a routing header, so the
// bootstrap identifier is sent.
func (c *Client) GetWebsiteSettings(ctx context.Context, slug string) (*domain.TenantSettings, error) {
	data, _, err := c.call(ctx, http.MethodGet, "/WebsiteSetting/"+url.PathEscape(slug), nil, c.bootstrapTenantID, nil, "website settings", slug)
	if err != nil {
		return nil, err
	}

	var settings domain.TenantSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal website settings: %w", err)
	}
	return &settings, nil
}

// ListCategories fetches a page of the tenant's product categories
func (c *Client) ListCategories(ctx context.Context, tenantID string, skip, take int) ([]domain.Category, error) {
	data, _, err := c.call(ctx, http.MethodGet, "/ProductCategory", pageQuery(skip, take), tenantID, nil, "categories", tenantID)
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

// ListProducts fetches a page of products within a category
func (c *Client) ListProducts(ctx context.Context, tenantID string, categoryID, skip, take int) ([]domain.Product, error) {
	query := pageQuery(skip, take)
	query.Set("categoryId", strconv.Itoa(categoryID))

	data, _, err := c.call(ctx, http.MethodGet, "/Product", query, tenantID, nil, "products", strconv.Itoa(categoryID))
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal products: %w", err)
	}
	return products, nil
}

// CreateOrder submits an order. The tenant identifier travels both in the
// payload body and as the routing header. A single fire-and-await request
// with no retry and no idempotency key; a user-triggered retry after a
// transient failure can create a duplicate order.
func (c *Client) CreateOrder(ctx context.Context, tenantID string, payload domain.OrderPayload) (json.RawMessage, string, error) {
	return c.call(ctx, http.MethodPost, "/Order", nil, tenantID, payload, "order", payload.TenantIdentifier)
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, tenantID string, body interface{}, resource, resourceID string) (json.RawMessage, string, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tenantID != "" {
		req.Header.Set(TenantHeader, tenantID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Salony API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, "", fmt.Errorf("salony api request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", &errors.ErrNotFound{Resource: resource, ID: resourceID}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The envelope message, when decodable, beats a raw body dump.
		var env envelope
		msg := ""
		if json.Unmarshal(respBody, &env) == nil {
			msg = env.Message
		}
		return nil, "", &errors.ErrUpstream{Status: resp.StatusCode, Message: msg}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal response envelope: %w", err)
	}

	if !env.IsSuccessful {
		return nil, "", &errors.ErrUpstream{Status: resp.StatusCode, Message: env.Message}
	}

	return env.Data, env.Message, nil
}

func pageQuery(skip, take int) url.Values {
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		take = defaultPageSize
	}
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("take", strconv.Itoa(take))
	return query
}
