package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tradehub/models"
)

// Fallback messages shown when the server gives no structured error.
const (
	genericOrderError = "Error placing order. Please try again."
	genericFetchError = "Error fetching data. Please try again."
)

// Client consumes the Trade Hub REST API: catalog reads, order creation and
// contact-form submission.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// envelope is the API's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// do sends the request and decodes the envelope. Non-2xx responses surface
// the server's message verbatim when present, else fallback.
func (c *Client) do(req *http.Request, fallback string) (envelope, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && env.Message != "" {
			return envelope{}, fmt.Errorf("%s", env.Message)
		}
		return envelope{}, fmt.Errorf("%s", fallback)
	}
	if decodeErr != nil {
		return envelope{}, fmt.Errorf("%s: %w", fallback, decodeErr)
	}
	return env, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	env, err := c.do(req, genericFetchError)
	if err != nil {
		return err
	}
	return json.Unmarshal(env.Data, out)
}

// PlaceOrder submits a new order and returns the server receipt.
func (c *Client) PlaceOrder(ctx context.Context, orderReq CreateOrderRequest) (Receipt, error) {
	body, err := json.Marshal(orderReq)
	if err != nil {
		return Receipt{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return Receipt{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	env, err := c.do(req, genericOrderError)
	if err != nil {
		return Receipt{}, err
	}

	var receipt Receipt
	if err := json.Unmarshal(env.Data, &receipt); err != nil {
		return Receipt{}, fmt.Errorf("%s: %w", genericOrderError, err)
	}
	return receipt, nil
}

// ListProducts fetches the catalog, optionally filtered by category.
func (c *Client) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	path := "/api/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var products []models.Product
	if err := c.get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FeaturedProducts fetches the homepage featured selection.
func (c *Client) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/api/products/featured", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by slug.
func (c *Client) GetProduct(ctx context.Context, slug string) (models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "/api/products/"+url.PathEscape(slug), &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// SendMessage submits the contact form.
func (c *Client) SendMessage(ctx context.Context, name, email, subject, message string) error {
	body, err := json.Marshal(map[string]string{
		"name":    name,
		"email":   email,
		"subject": subject,
		"message": message,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/contact", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req, "Error submitting message")
	return err
}
