// Package gateway contiene los clientes HTTP de las pasarelas de pago
// externas (Stripe, PayPal, Square). Cada cliente habla REST directo con la
// API de su pasarela; no se usan SDKs oficiales.
package gateway

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// ErrGateway error genérico de la pasarela (respuesta no-2xx o red).
var ErrGateway = errors.New("error de pasarela de pago")

// ErrInvalidSignature firma de webhook inválida.
var ErrInvalidSignature = errors.New("firma de webhook inválida")

// httpClient cliente compartido con timeout; las pasarelas externas no deben
// poder colgar un request nuestro indefinidamente.
var httpClient = &http.Client{Timeout: 15 * time.Second}

// toMinorUnits convierte un monto decimal a la unidad menor (centavos).
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// drainBody lee el cuerpo (acotado) para mensajes de error.
func drainBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	return string(b)
}

// checkStatus valida 2xx; si no, envuelve ErrGateway con el cuerpo.
func checkStatus(resp *http.Response, gatewayName string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("%w: %s devolvió %d: %s", ErrGateway, gatewayName, resp.StatusCode, drainBody(resp.Body))
}
