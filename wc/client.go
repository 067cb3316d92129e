package wc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/therafiali/woocommerce-storefront/config"
	"github.com/therafiali/woocommerce-storefront/models"
)

// Client talks to the WooCommerce REST API of one storefront site. Every
// operation is a single attempt: no retries, no backoff, default transport
// timeout only.
type Client struct {
	cfg  config.Config
	http *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{cfg: cfg, http: &http.Client{}}
}

// restURL builds a /wp-json/wc/v3 path with the query-string credentials
// WooCommerce accepts for server-to-server calls.
func (c *Client) restURL(path string) string {
	q := url.Values{}
	q.Set("consumer_key", c.cfg.ConsumerKey)
	q.Set("consumer_secret", c.cfg.ConsumerSecret)
	return c.cfg.SiteURL + "/wp-json/wc/v3" + path + "?" + q.Encode()
}

// cocartURL targets the CoCart plugin's cart endpoints.
func (c *Client) cocartURL(path string) string {
	q := url.Values{}
	q.Set("consumer_key", c.cfg.ConsumerKey)
	q.Set("consumer_secret", c.cfg.ConsumerSecret)
	return c.cfg.SiteURL + "/wp-json/cocart/v2" + path + "?" + q.Encode()
}

// FetchProducts loads the catalog. Non-success statuses and transport
// failures come back as *NetworkError.
func (c *Client) FetchProducts() ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(c.restURL("/products"), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct loads a single catalog entry by id.
func (c *Client) GetProduct(id uint) (models.Product, error) {
	var product models.Product
	if err := c.getJSON(c.restURL(fmt.Sprintf("/products/%d", id)), &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// CreateProduct submits a product draft to the catalog. The draft type is
// always forced to "simple".
func (c *Client) CreateProduct(draft models.ProductDraft) (models.Product, error) {
	draft.Type = "simple"
	if draft.StockStatus == "" {
		draft.StockStatus = models.StockInStock
	}
	var created models.Product
	if err := c.postJSON(c.restURL("/products"), draft, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// CreateOrder places an order on the WooCommerce site.
func (c *Client) CreateOrder(req models.OrderRequest) (models.Order, error) {
	var order models.Order
	if err := c.postJSON(c.restURL("/orders"), req, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// CartItemPricing is the custom pricing metadata the enhanced cart endpoint
// stores alongside the item.
type CartItemPricing struct {
	CustomPrice   float64 `json:"custom_price"`
	ExtraCharge   float64 `json:"extra_charge"`
	OriginalPrice float64 `json:"original_price"`
}

// CartAddResponse is the slice of the CoCart response the workflow reads.
// ItemCount stays nil when the endpoint does not report a cart size.
type CartAddResponse struct {
	ItemCount *int `json:"item_count"`
}

// CartAddItem pushes one product into the remote WooCommerce cart through the
// CoCart endpoint, carrying the surcharge metadata.
func (c *Client) CartAddItem(productID uint, quantity int, pricing CartItemPricing) (CartAddResponse, error) {
	payload := map[string]interface{}{
		"id":             strconv.Itoa(int(productID)),
		"quantity":       strconv.Itoa(quantity),
		"cart_item_data": pricing,
	}
	var resp CartAddResponse
	if err := c.postJSON(c.cocartURL("/cart/add-item"), payload, &resp); err != nil {
		return CartAddResponse{}, err
	}
	return resp, nil
}

// AddToCartURL is the native storefront add-to-cart link a browser can open
// directly, used as the fallback when the API paths fail.
func (c *Client) AddToCartURL(productID uint, quantity int) string {
	return fmt.Sprintf("%s/?add-to-cart=%d&quantity=%d", c.cfg.SiteURL, productID, quantity)
}

func (c *Client) getJSON(rawURL string, out interface{}) error {
	resp, err := c.http.Get(rawURL)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &NetworkError{StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Err: fmt.Errorf("failed to parse response: %v", err)}
	}
	return nil
}

func (c *Client) postJSON(rawURL string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, rawURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(data)}
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse response: %v", err)
		}
	}
	return nil
}
