package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const stripeAPIBase = "https://api.stripe.com/v1"

// Tolerancia máxima entre el timestamp firmado y ahora (anti-replay).
const stripeSignatureTolerance = 5 * time.Minute

// StripeClient cliente REST de Stripe (payment intents + webhooks).
type StripeClient struct {
	secretKey     string
	webhookSecret string
	baseURL       string
	now           func() time.Time
}

// NewStripeClient construye el cliente con las credenciales de configuración.
func NewStripeClient(secretKey, webhookSecret string) *StripeClient {
	return &StripeClient{
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		baseURL:       stripeAPIBase,
		now:           time.Now,
	}
}

// PaymentIntent respuesta de la creación de un payment intent.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// CreatePaymentIntent crea un payment intent. El monto va en centavos;
// orderId viaja como metadata para poder asociar el webhook a la orden.
func (c *StripeClient) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency, orderID string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(toMinorUnits(amount), 10))
	form.Set("currency", currency)
	form.Set("metadata[orderId]", orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("armar request stripe: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: stripe: %v", ErrGateway, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, "stripe"); err != nil {
		return nil, err
	}

	var pi PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&pi); err != nil {
		return nil, fmt.Errorf("decodificar respuesta stripe: %w", err)
	}
	return &pi, nil
}

// WebhookEvent evento de webhook de Stripe ya verificado.
type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string `json:"id"`
			Metadata struct {
				OrderID string `json:"orderId"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// VerifyWebhook valida la cabecera Stripe-Signature (t=...,v1=...) contra el
// cuerpo crudo: HMAC-SHA256 de "{t}.{payload}" con el webhook secret, más
// chequeo de tolerancia del timestamp. Devuelve el evento decodificado.
func (c *StripeClient) VerifyWebhook(payload []byte, signatureHeader string) (*WebhookEvent, error) {
	var ts string
	var sigs []string
	for _, part := range strings.Split(signatureHeader, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			ts = v
		case "v1":
			sigs = append(sigs, v)
		}
	}
	if ts == "" || len(sigs) == 0 {
		return nil, ErrInvalidSignature
	}

	tsInt, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil, ErrInvalidSignature
	}
	if d := c.now().Sub(time.Unix(tsInt, 0)); d > stripeSignatureTolerance || d < -stripeSignatureTolerance {
		return nil, ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	valid := false
	for _, sig := range sigs {
		if hmac.Equal([]byte(expected), []byte(sig)) {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidSignature
	}

	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("decodificar webhook stripe: %w", err)
	}
	return &event, nil
}
