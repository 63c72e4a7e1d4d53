package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

// PayPalClient cliente REST de PayPal (checkout orders v2).
// El access token OAuth se pide por operación; PayPal los cachea del lado
// del servidor y la frecuencia de pagos no justifica cachearlo aquí.
type PayPalClient struct {
	clientID     string
	clientSecret string
	baseURL      string
}

// NewPayPalClient construye el cliente. mode: "sandbox" o "live".
func NewPayPalClient(clientID, clientSecret, mode string) *PayPalClient {
	return &PayPalClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      fmt.Sprintf("https://api-m.%s.paypal.com", mode),
	}
}

func (c *PayPalClient) accessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/oauth2/token", strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("armar request oauth paypal: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: paypal oauth: %v", ErrGateway, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, "paypal"); err != nil {
		return "", err
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decodificar token paypal: %w", err)
	}
	return body.AccessToken, nil
}

// PayPalOrder respuesta de la creación de una orden de PayPal.
type PayPalOrder struct {
	ID          string
	ApprovalURL string
}

// CreateOrder crea una orden CAPTURE en PayPal y devuelve el link de aprobación.
func (c *PayPalClient) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, orderID string) (*PayPalOrder, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{{
			"amount": map[string]string{
				"currency_code": currency,
				"value":         amount.StringFixed(2),
			},
			"reference_id": orderID,
		}},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("serializar orden paypal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/checkout/orders", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("armar request paypal: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: paypal: %v", ErrGateway, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, "paypal"); err != nil {
		return nil, err
	}

	var body struct {
		ID    string `json:"id"`
		Links []struct {
			Rel  string `json:"rel"`
			Href string `json:"href"`
		} `json:"links"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decodificar orden paypal: %w", err)
	}

	order := &PayPalOrder{ID: body.ID}
	for _, link := range body.Links {
		if link.Rel == "approve" {
			order.ApprovalURL = link.Href
			break
		}
	}
	return order, nil
}
