package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/application/sales"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[string]*entity.Product
}

func (r *stubProductRepo) Create(p *entity.Product) error            { r.products[p.ID] = p; return nil }
func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *stubProductRepo) GetBySKU(string) (*entity.Product, error)  { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error              { return nil }
func (r *stubProductRepo) Delete(string) error                       { return nil }
func (r *stubProductRepo) List(int, int) ([]*entity.Product, error)  { return nil, nil }
func (r *stubProductRepo) ListLowStock() ([]*entity.Product, error)  { return nil, nil }

func (r *stubProductRepo) AddStock(id string, qty int64) (*entity.Product, error) {
	p := r.products[id]
	p.Quantity += qty
	return p, nil
}

func (r *stubProductRepo) SubtractStockFloored(id string, qty int64) (*entity.Product, error) {
	p := r.products[id]
	p.Quantity -= qty
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	return p, nil
}

func (r *stubProductRepo) SetStock(id string, qty int64) (*entity.Product, error) {
	p := r.products[id]
	p.Quantity = qty
	return p, nil
}

func (r *stubProductRepo) DecrementStock(id string, qty int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity -= qty // sin tope: la sobreventa queda visible
	return nil
}

type stubMovementRepo struct{}

func (stubMovementRepo) Create(*entity.StockMovement) error { return nil }
func (stubMovementRepo) ListByProduct(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}

type stubCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *stubCustomerRepo) Create(c *entity.Customer) error             { r.customers[c.ID] = c; return nil }
func (r *stubCustomerRepo) GetByID(id string) (*entity.Customer, error) { return r.customers[id], nil }
func (r *stubCustomerRepo) Update(*entity.Customer) error               { return nil }
func (r *stubCustomerRepo) Delete(string) error                         { return nil }
func (r *stubCustomerRepo) List(int, int) ([]*entity.Customer, error)   { return nil, nil }
func (r *stubCustomerRepo) CreateInteraction(*entity.Interaction) error { return nil }
func (r *stubCustomerRepo) ListInteractions(string, int, int) ([]*entity.Interaction, error) {
	return nil, nil
}

type stubOrderRepo struct {
	orders   map[string]*entity.Order
	items    map[string][]*entity.OrderItem
	invoices map[string]string // orderID -> número de factura
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders:   make(map[string]*entity.Order),
		items:    make(map[string][]*entity.OrderItem),
		invoices: make(map[string]string),
	}
}

func (r *stubOrderRepo) Create(o *entity.Order) error { r.orders[o.ID] = o; return nil }

func (r *stubOrderRepo) CreateItem(it *entity.OrderItem) error {
	r.items[it.OrderID] = append(r.items[it.OrderID], it)
	return nil
}

func (r *stubOrderRepo) GetByID(id string) (*entity.Order, error) { return r.orders[id], nil }

func (r *stubOrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	return r.items[orderID], nil
}

func (r *stubOrderRepo) List(int, int) ([]repository.OrderSummary, error) { return nil, nil }

func (r *stubOrderRepo) UpdateStatus(id, status string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	o.Status = status
	return o, nil
}

func (r *stubOrderRepo) UpdatePaymentStatus(id, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.PaymentStatus = status
	return nil
}

func (r *stubOrderRepo) ListInvoices(int, int) ([]repository.InvoiceRow, error) { return nil, nil }
func (r *stubOrderRepo) GetInvoiceByID(string) (*repository.InvoiceRow, error)  { return nil, nil }

func (r *stubOrderRepo) CreateInvoice(_, orderID, number string, _ time.Time) error {
	if _, exists := r.invoices[orderID]; exists {
		return domain.ErrDuplicate
	}
	r.invoices[orderID] = number
	return nil
}

// stubSalesTx ejecuta el closure directamente contra los fakes.
type stubSalesTx struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	orders    repository.OrderRepository
}

func (f *stubSalesTx) RunSales(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockMovementRepository,
	repository.OrderRepository,
) error) error {
	return fn(f.products, f.movements, f.orders)
}

type salesFixture struct {
	uc        *sales.UseCase
	products  *stubProductRepo
	customers *stubCustomerRepo
	orders    *stubOrderRepo
}

func buildSalesFixture() *salesFixture {
	products := &stubProductRepo{products: make(map[string]*entity.Product)}
	customers := &stubCustomerRepo{customers: make(map[string]*entity.Customer)}
	orders := newStubOrderRepo()
	tx := &stubSalesTx{products: products, movements: stubMovementRepo{}, orders: orders}
	return &salesFixture{
		uc:        sales.NewUseCase(tx, orders, customers, products, nil, nil, "KellyOS"),
		products:  products,
		customers: customers,
		orders:    orders,
	}
}

func (f *salesFixture) seedProduct(id string, price int64, quantity int64) {
	f.products.products[id] = &entity.Product{
		ID:       id,
		SKU:      "SKU-" + id,
		Name:     "Producto " + id,
		Price:    decimal.NewFromInt(price),
		Quantity: quantity,
	}
}

func (f *salesFixture) seedCustomer(id, name string) {
	f.customers.customers[id] = &entity.Customer{ID: id, Name: name, Email: name + "@test.local"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_CalculaTotalYSnapshotDePrecios(t *testing.T) {
	f := buildSalesFixture()
	f.seedCustomer("c1", "Cliente Uno")
	f.seedProduct("p1", 150, 10) // 150 × 2 = 300
	f.seedProduct("p2", 40, 10)  // 40 × 3 = 120

	resp, err := f.uc.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		CustomerID: "c1",
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(420).Equal(resp.Total),
		"total = Σ(precio_vigente × cantidad): 150×2 + 40×3 = 420")
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Equal(t, entity.PaymentStatusUnpaid, resp.PaymentStatus)
	assert.Equal(t, "Cliente Uno", resp.CustomerName)
	require.Len(t, resp.Items, 2)

	// El precio de la línea es un snapshot: subir el precio del producto
	// después de la venta no altera la orden ya creada.
	f.products.products["p1"].Price = decimal.NewFromInt(999)
	again, err := f.uc.GetOrder(resp.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(again.Items[0].Price),
		"la línea debe conservar el precio al momento de la venta")
	assert.True(t, decimal.NewFromInt(420).Equal(again.Total))
}

func TestCreateOrder_DebitaStockSinTopeEnCero(t *testing.T) {
	f := buildSalesFixture()
	f.seedCustomer("c1", "Cliente Uno")
	f.seedProduct("p1", 100, 3)

	_, err := f.uc.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		CustomerID: "c1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(-2), f.products.products["p1"].Quantity,
		"la venta puede dejar el conteo negativo: la sobreventa queda visible")
}

func TestCreateOrder_ProductoInexistente_AbortaLaOrdenCompleta(t *testing.T) {
	f := buildSalesFixture()
	f.seedCustomer("c1", "Cliente Uno")
	f.seedProduct("p1", 100, 10)

	_, err := f.uc.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		CustomerID: "c1",
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "fantasma", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.orders.orders, "no debe persistirse ninguna cabecera")
	assert.Equal(t, int64(10), f.products.products["p1"].Quantity,
		"no debe debitarse stock de las líneas válidas")
}

func TestCreateOrder_SinItems_RetornaErrInvalidInput(t *testing.T) {
	f := buildSalesFixture()
	f.seedCustomer("c1", "Cliente Uno")

	_, err := f.uc.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		CustomerID: "c1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_CantidadCero_RetornaErrInvalidInput(t *testing.T) {
	f := buildSalesFixture()
	f.seedCustomer("c1", "Cliente Uno")
	f.seedProduct("p1", 100, 10)

	_, err := f.uc.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		CustomerID: "c1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_ClienteInexistente_RetornaErrNotFound(t *testing.T) {
	f := buildSalesFixture()
	f.seedProduct("p1", 100, 10)

	_, err := f.uc.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		CustomerID: "nadie",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateOrderStatus — emisión de factura
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateOrderStatus_TransicionAPaid_EmiteFacturaUnaSolaVez(t *testing.T) {
	f := buildSalesFixture()
	f.seedCustomer("c1", "Cliente Uno")
	f.seedProduct("p1", 100, 10)

	resp, err := f.uc.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		CustomerID: "c1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateOrderStatus(resp.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusPaid})
	require.NoError(t, err)
	first, hasInvoice := f.orders.invoices[resp.ID]
	require.True(t, hasInvoice, "pasar a paid debe emitir la factura")
	assert.Contains(t, first, "INV-", "el número de factura lleva el prefijo INV-")

	// Segunda transición a paid: la factura existente no debe duplicarse ni
	// romper la operación.
	_, err = f.uc.UpdateOrderStatus(resp.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusPaid})
	require.NoError(t, err)
	assert.Equal(t, first, f.orders.invoices[resp.ID])
}

func TestUpdateOrderStatus_EstadoInvalido_RetornaErrInvalidInput(t *testing.T) {
	f := buildSalesFixture()

	_, err := f.uc.UpdateOrderStatus("cualquiera", dto.UpdateOrderStatusRequest{Status: "teleported"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateOrderStatus_OrdenInexistente_RetornaErrNotFound(t *testing.T) {
	f := buildSalesFixture()

	_, err := f.uc.UpdateOrderStatus("no-existe", dto.UpdateOrderStatusRequest{Status: entity.OrderStatusShipped})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
