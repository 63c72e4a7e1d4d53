package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

const testWebhookSecret = "whsec_test_secret"

// firma un payload como lo haría Stripe: HMAC-SHA256 de "{t}.{payload}".
func signPayload(secret string, ts int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func testStripeClient(now time.Time) *StripeClient {
	c := NewStripeClient("sk_test_xxx", testWebhookSecret)
	c.now = func() time.Time { return now }
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests VerifyWebhook
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyWebhook_FirmaValida_DecodificaElEvento(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	payload := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123","metadata":{"orderId":"ord-9"}}}}`)
	header := fmt.Sprintf("t=%d,v1=%s", now.Unix(), signPayload(testWebhookSecret, now.Unix(), payload))

	event, err := testStripeClient(now).VerifyWebhook(payload, header)
	require.NoError(t, err)

	assert.Equal(t, "payment_intent.succeeded", event.Type)
	assert.Equal(t, "pi_123", event.Data.Object.ID)
	assert.Equal(t, "ord-9", event.Data.Object.Metadata.OrderID)
}

func TestVerifyWebhook_SecretIncorrecto_RetornaErrInvalidSignature(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	header := fmt.Sprintf("t=%d,v1=%s", now.Unix(), signPayload("otro-secret", now.Unix(), payload))

	_, err := testStripeClient(now).VerifyWebhook(payload, header)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyWebhook_PayloadAlterado_RetornaErrInvalidSignature(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	header := fmt.Sprintf("t=%d,v1=%s", now.Unix(), signPayload(testWebhookSecret, now.Unix(), payload))

	tampered := []byte(`{"type":"payment_intent.payment_failed"}`)
	_, err := testStripeClient(now).VerifyWebhook(tampered, header)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

// El timestamp firmado fuera de la ventana de tolerancia se rechaza aunque la
// firma sea correcta (anti-replay).
func TestVerifyWebhook_TimestampViejo_RetornaErrInvalidSignature(t *testing.T) {
	signed := time.Unix(1_700_000_000, 0)
	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	header := fmt.Sprintf("t=%d,v1=%s", signed.Unix(), signPayload(testWebhookSecret, signed.Unix(), payload))

	// 6 minutos después: fuera de los 5 de tolerancia.
	_, err := testStripeClient(signed.Add(6*time.Minute)).VerifyWebhook(payload, header)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyWebhook_TimestampLimite_Acepta(t *testing.T) {
	signed := time.Unix(1_700_000_000, 0)
	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	header := fmt.Sprintf("t=%d,v1=%s", signed.Unix(), signPayload(testWebhookSecret, signed.Unix(), payload))

	_, err := testStripeClient(signed.Add(4*time.Minute)).VerifyWebhook(payload, header)
	assert.NoError(t, err, "dentro de la tolerancia la firma debe aceptarse")
}

func TestVerifyWebhook_HeaderMalformado_RetornaErrInvalidSignature(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := testStripeClient(now)

	for _, header := range []string{"", "garbage", "t=123", "v1=deadbeef", "t=abc,v1=deadbeef"} {
		_, err := c.VerifyWebhook([]byte(`{}`), header)
		assert.ErrorIs(t, err, ErrInvalidSignature, "header %q debe rechazarse", header)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests conversión a unidades menores
// ──────────────────────────────────────────────────────────────────────────────

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1050), toMinorUnits(mustDecimal(t, "10.50")))
	assert.Equal(t, int64(100), toMinorUnits(mustDecimal(t, "1")))
	assert.Equal(t, int64(0), toMinorUnits(mustDecimal(t, "0")))
	assert.Equal(t, int64(99), toMinorUnits(mustDecimal(t, "0.99")))
}
