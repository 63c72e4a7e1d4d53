package payments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
	"github.com/kellyos/kellyos-api/internal/infrastructure/gateway"
)

// UseCase pagos: crea cobros en las pasarelas externas, mantiene la tabla
// espejo local y procesa los webhooks de confirmación.
type UseCase struct {
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	stripe   *gateway.StripeClient
	paypal   *gateway.PayPalClient
	square   *gateway.SquareClient
}

// NewUseCase construye el caso de uso.
func NewUseCase(payments repository.PaymentRepository, orders repository.OrderRepository,
	stripe *gateway.StripeClient, paypal *gateway.PayPalClient, square *gateway.SquareClient) *UseCase {
	return &UseCase{payments: payments, orders: orders, stripe: stripe, paypal: paypal, square: square}
}

// recordPayment inserta la fila espejo del pago.
func (uc *UseCase) recordPayment(gatewayName, transactionID, currency, orderID, status string, in dto.CreatePaymentIntentRequest) error {
	now := time.Now()
	return uc.payments.Create(&entity.Payment{
		ID:            uuid.New().String(),
		Gateway:       gatewayName,
		TransactionID: transactionID,
		Amount:        in.Amount,
		Currency:      currency,
		Status:        status,
		OrderID:       orderID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// CreateStripeIntent crea un payment intent en Stripe y registra el pago local
// en "pending". El clientSecret vuelve al frontend para confirmar el cobro.
func (uc *UseCase) CreateStripeIntent(ctx context.Context, in dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = "usd"
	}
	intent, err := uc.stripe.CreatePaymentIntent(ctx, in.Amount, currency, in.OrderID)
	if err != nil {
		return nil, err
	}
	if err := uc.recordPayment(entity.GatewayStripe, intent.ID, currency, in.OrderID, entity.PaymentPending, in); err != nil {
		return nil, err
	}
	return &dto.PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// CreatePayPalOrder crea una orden CAPTURE en PayPal y registra el pago local.
func (uc *UseCase) CreatePayPalOrder(ctx context.Context, in dto.CreatePayPalOrderRequest) (*dto.PayPalOrderResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	order, err := uc.paypal.CreateOrder(ctx, in.Amount, currency, in.OrderID)
	if err != nil {
		return nil, err
	}
	record := dto.CreatePaymentIntentRequest{Amount: in.Amount, Currency: currency, OrderID: in.OrderID}
	if err := uc.recordPayment(entity.GatewayPayPal, order.ID, currency, in.OrderID, entity.PaymentPending, record); err != nil {
		return nil, err
	}
	return &dto.PayPalOrderResponse{OrderID: order.ID, ApprovalURL: order.ApprovalURL}, nil
}

// CreateSquarePayment cobra el nonce de tarjeta vía Square. Square confirma
// los cargos síncronos de inmediato: COMPLETED se registra como "completed".
func (uc *UseCase) CreateSquarePayment(ctx context.Context, in dto.CreateSquarePaymentRequest) (*dto.SquarePaymentResponse, error) {
	if in.SourceID == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	payment, err := uc.square.CreatePayment(ctx, in.SourceID, in.Amount, currency, in.OrderID)
	if err != nil {
		return nil, err
	}
	status := entity.PaymentPending
	if payment.Status == "COMPLETED" {
		status = entity.PaymentCompleted
	}
	record := dto.CreatePaymentIntentRequest{Amount: in.Amount, Currency: currency, OrderID: in.OrderID}
	if err := uc.recordPayment(entity.GatewaySquare, payment.ID, currency, in.OrderID, status, record); err != nil {
		return nil, err
	}
	return &dto.SquarePaymentResponse{PaymentID: payment.ID, Status: payment.Status}, nil
}

// updateStatus actualiza el espejo local; un transaction_id desconocido solo
// se loguea: el webhook puede llegar antes que el INSERT local o referirse a
// un cobro hecho fuera de esta aplicación.
func (uc *UseCase) updateStatus(transactionID, status string) error {
	err := uc.payments.UpdateStatusByTransactionID(transactionID, status)
	if errors.Is(err, domain.ErrNotFound) {
		log.Warn().Str("transaction_id", transactionID).Msg("webhook de pago desconocido")
		return nil
	}
	return err
}

// HandleStripeWebhook verifica la firma y aplica el evento. Un intent
// exitoso con orderId en metadata también marca la orden como pagada.
func (uc *UseCase) HandleStripeWebhook(payload []byte, signature string) error {
	event, err := uc.stripe.VerifyWebhook(payload, signature)
	if err != nil {
		return err
	}
	log.Info().Str("type", event.Type).Msg("webhook stripe recibido")

	switch event.Type {
	case "payment_intent.succeeded":
		if err := uc.updateStatus(event.Data.Object.ID, entity.PaymentCompleted); err != nil {
			return err
		}
		if orderID := event.Data.Object.Metadata.OrderID; orderID != "" {
			if err := uc.orders.UpdatePaymentStatus(orderID, entity.PaymentStatusPaid); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
		}
	case "payment_intent.payment_failed":
		return uc.updateStatus(event.Data.Object.ID, entity.PaymentFailed)
	default:
		log.Info().Str("type", event.Type).Msg("evento stripe ignorado")
	}
	return nil
}

// PayPalWebhook cuerpo mínimo que procesamos de los webhooks de PayPal.
type PayPalWebhook struct {
	EventType string `json:"event_type"`
	Resource  struct {
		ID string `json:"id"`
	} `json:"resource"`
}

// HandlePayPalWebhook aplica el evento de captura de PayPal.
func (uc *UseCase) HandlePayPalWebhook(body PayPalWebhook) error {
	log.Info().Str("type", body.EventType).Msg("webhook paypal recibido")
	switch body.EventType {
	case "PAYMENT.CAPTURE.COMPLETED":
		return uc.updateStatus(body.Resource.ID, entity.PaymentCompleted)
	case "PAYMENT.CAPTURE.DENIED":
		return uc.updateStatus(body.Resource.ID, entity.PaymentFailed)
	default:
		log.Info().Str("type", body.EventType).Msg("evento paypal ignorado")
	}
	return nil
}

// SquareWebhook cuerpo mínimo que procesamos de los webhooks de Square.
type SquareWebhook struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			Payment struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"payment"`
		} `json:"object"`
	} `json:"data"`
}

// HandleSquareWebhook aplica el evento de pago de Square.
func (uc *UseCase) HandleSquareWebhook(body SquareWebhook) error {
	log.Info().Str("type", body.Type).Msg("webhook square recibido")
	if body.Type != "payment.updated" {
		log.Info().Str("type", body.Type).Msg("evento square ignorado")
		return nil
	}
	switch body.Data.Object.Payment.Status {
	case "COMPLETED":
		return uc.updateStatus(body.Data.Object.Payment.ID, entity.PaymentCompleted)
	case "FAILED":
		return uc.updateStatus(body.Data.Object.Payment.ID, entity.PaymentFailed)
	}
	return nil
}

// GetPayment obtiene un pago local por ID.
func (uc *UseCase) GetPayment(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	return toPaymentResponse(payment), nil
}

// ListPayments historial de pagos, más recientes primero.
func (uc *UseCase) ListPayments(page dto.PageRequest) ([]dto.PaymentResponse, error) {
	page.DefaultPage()
	list, err := uc.payments.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		result = append(result, *toPaymentResponse(p))
	}
	return result, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:            p.ID,
		Gateway:       p.Gateway,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        p.Status,
		OrderID:       p.OrderID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
