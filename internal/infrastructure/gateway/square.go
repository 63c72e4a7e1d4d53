package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const squareAPIVersion = "2024-11-20"

// SquareClient cliente REST de Square (payments).
type SquareClient struct {
	accessToken string
	baseURL     string
}

// NewSquareClient construye el cliente. environment: "sandbox" o "production".
func NewSquareClient(accessToken, environment string) *SquareClient {
	base := "https://connect.sandbox.squareup.com"
	if environment == "production" {
		base = "https://connect.squareup.com"
	}
	return &SquareClient{accessToken: accessToken, baseURL: base}
}

// SquarePayment respuesta de la creación de un pago en Square.
type SquarePayment struct {
	ID     string
	Status string // Square reporta COMPLETED de inmediato para cargos síncronos
}

// CreatePayment cobra el sourceId (nonce de la tarjeta) por el monto dado.
// La clave de idempotencia es un UUID nuevo por intento: un retry del caller
// genera un cargo nuevo, igual que el comportamiento previo del sistema.
func (c *SquareClient) CreatePayment(ctx context.Context, sourceID string, amount decimal.Decimal, currency, orderID string) (*SquarePayment, error) {
	payload := map[string]any{
		"source_id": sourceID,
		"amount_money": map[string]any{
			"amount":   toMinorUnits(amount),
			"currency": currency,
		},
		"idempotency_key": uuid.New().String(),
		"reference_id":    orderID,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("serializar pago square: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/payments", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("armar request square: %w", err)
	}
	req.Header.Set("Square-Version", squareAPIVersion)
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: square: %v", ErrGateway, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, "square"); err != nil {
		return nil, err
	}

	var body struct {
		Payment struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"payment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decodificar pago square: %w", err)
	}
	return &SquarePayment{ID: body.Payment.ID, Status: body.Payment.Status}, nil
}
