package wooclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/samber/lo"

	"github.com/yakkt/campervan-configurator/internal/model"
)

const createOrderPath = "/wp-json/yakkt/v1/create-order"

// client talks to the WooCommerce bridge plugin that turns a configurator
// payload into a store order and returns its checkout URL.
type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	productID  int64
}

func NewClient(httpClient *http.Client, baseURL, apiKey string, productID int64) *client {
	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		productID:  productID,
	}
}

type createOrderRequest struct {
	ProductID   int64            `json:"productId"`
	Chassis     string           `json:"chassis"`
	ChassisName string           `json:"chassisName"`
	Components  []orderComponent `json:"components"`
	TotalPrice  float64          `json:"totalPrice"`
}

type orderComponent struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type createOrderResponse struct {
	Success     bool   `json:"success"`
	OrderID     int64  `json:"orderId"`
	CheckoutURL string `json:"checkoutUrl"`
	AddURL      string `json:"addUrl"`
}

// CreateOrder submits the configured build and returns the store order id and
// the checkout URL the user should be redirected to.
func (c *client) CreateOrder(
	ctx context.Context,
	chassisID, chassisName string,
	components []model.CheckoutComponent,
	totalPrice float64,
) (int64, string, error) {
	const op = "wooclient.CreateOrder"

	payload := createOrderRequest{
		ProductID:   c.productID,
		Chassis:     chassisID,
		ChassisName: chassisName,
		Components: lo.Map(components, func(comp model.CheckoutComponent, _ int) orderComponent {
			return orderComponent{
				ID:          comp.ID,
				Name:        comp.Name,
				Price:       comp.Price,
				Description: comp.Description,
				Category:    string(comp.Category),
			}
		}),
		TotalPrice: totalPrice,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, "", fmt.Errorf("%s marshal: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createOrderPath, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("%s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Yakkt-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("%s do: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return 0, "", fmt.Errorf("%s: unexpected status %d: %s", op, resp.StatusCode, string(raw))
	}

	var out createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, "", fmt.Errorf("%s decode: %w", op, err)
	}
	if !out.Success {
		return 0, "", fmt.Errorf("%s: store rejected the order", op)
	}

	checkoutURL := out.CheckoutURL
	if checkoutURL == "" {
		checkoutURL = out.AddURL
	}

	return out.OrderID, checkoutURL, nil
}
