package catalog

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

	pkgerrors "github.com/nataliebakery/storefront/pkg/errors"
	"github.com/nataliebakery/storefront/pkg/metrics"
)

const (
	defaultBaseURL             = "http://localhost:8000/api"
	errorBodyReadLimit   int64 = 4096
	defaultClientTimeout       = 10 * time.Second
)

// Client wraps the upstream bakery API consumed by the storefront.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *metrics.StorefrontMetrics
}

// ClientOption configures optional client behavior.
type ClientOption func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured API base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithMetrics wires request observations into the provided collector.
func WithMetrics(m *metrics.StorefrontMetrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds the bakery API client.
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultClientTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultClientTimeout}
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}

	return client
}

// ListProductsParams filters the upstream product listing.
type ListProductsParams struct {
	Limit    int
	Featured bool
	Category string
	Search   string
	Ordering string
}

// ListProducts fetches the product catalog with optional filters.
func (c *Client) ListProducts(ctx context.Context, params ListProductsParams) ([]Product, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Featured {
		query.Set("is_featured", "1")
	}
	if params.Category != "" {
		query.Set("category__slug", params.Category)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Ordering != "" {
		query.Set("ordering", params.Ordering)
	}

	var products []Product
	if err := c.getJSON(ctx, "products", "/products/", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by slug, including its available options.
func (c *Client) GetProduct(ctx context.Context, slug string) (*Product, error) {
	trimmed := strings.TrimSpace(slug)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product slug is required")
	}

	var product Product
	path := fmt.Sprintf("/products/%s/", url.PathEscape(trimmed))
	if err := c.getJSON(ctx, "product_detail", path, nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCategories fetches the category list.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.getJSON(ctx, "categories", "/categories/", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListCakeOptions fetches the flat legacy option catalog.
func (c *Client) ListCakeOptions(ctx context.Context) ([]Option, error) {
	var options []Option
	if err := c.getJSON(ctx, "cake_options", "/cake-options/", nil, nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// GetSiteContent fetches the CMS content bag. The payload is passed through
// untyped and is never cached by the storefront.
func (c *Client) GetSiteContent(ctx context.Context) (json.RawMessage, error) {
	var content json.RawMessage
	headers := http.Header{"Cache-Control": []string{"no-store"}}
	if err := c.getJSON(ctx, "site_content", "/site-content/", nil, headers, &content); err != nil {
		return nil, err
	}
	return content, nil
}

// Ping checks the upstream API is reachable. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	var categories []Category
	if err := c.getJSON(ctx, "ping", "/categories/", nil, nil, &categories); err != nil {
		return fmt.Errorf("bakery api ping: %w", err)
	}
	return nil
}

// SubmitOrder posts a pickup order upstream and returns the confirmation.
func (c *Client) SubmitOrder(ctx context.Context, order OrderSubmission) (*OrderConfirmation, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal order payload")
	}

	endpoint := "orders"
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL("/orders/"), bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build order request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, "error", start)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submit order")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.observe(endpoint, "failure", start)
		return nil, c.responseError(resp, "order rejected")
	}

	var confirmation OrderConfirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		c.observe(endpoint, "error", start)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode order confirmation")
	}

	c.observe(endpoint, "success", start)
	return &confirmation, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, headers http.Header, dest any) error {
	target := c.buildURL(path)
	if len(query) > 0 {
		target = target + "?" + query.Encode()
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, "error", start)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "bakery api unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		c.observe(endpoint, "not_found", start)
		return pkgerrors.New(pkgerrors.CodeNotFound, "resource not found upstream")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.observe(endpoint, "failure", start)
		return c.responseError(resp, "bakery api request failed")
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		c.observe(endpoint, "error", start)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode bakery api response")
	}

	c.observe(endpoint, "success", start)
	return nil
}

// responseError maps a non-2xx upstream response to a coded error, surfacing
// the human-readable message from {detail} or {pickup_datetime} bodies.
func (c *Client) responseError(resp *http.Response, fallback string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
	message := upstreamErrorMessage(body)
	if message == "" {
		message = fallback
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return pkgerrors.New(pkgerrors.CodeUnprocessable, message).
			WithDetails(map[string]any{"upstream_status": resp.StatusCode})
	}
	return pkgerrors.Wrap(
		pkgerrors.CodeDependency,
		fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		fallback,
	)
}

// upstreamErrorMessage extracts a displayable message from an error body.
// DRF emits either {"detail": "..."} or field errors like
// {"pickup_datetime": ["..."]}.
func upstreamErrorMessage(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}

	for _, key := range []string{"detail", "pickup_datetime"} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var single string
		if err := json.Unmarshal(raw, &single); err == nil && single != "" {
			return single
		}
		var many []string
		if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
			return many[0]
		}
	}
	return ""
}

func (c *Client) observe(endpoint, outcome string, start time.Time) {
	c.metrics.ObserveUpstream(endpoint, outcome, time.Since(start))
}

func (c *Client) buildURL(path string) string {
	trimmed := strings.TrimRight(c.baseURL, "/")
	return trimmed + "/" + strings.TrimLeft(path, "/")
}
