package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Resultados agregados de analítica. Son vistas derivadas de solo lectura
// sobre las tablas ledger (orders, payments, products, stock_movements,
// customers); ningún método tiene efectos de escritura.

// DashboardStats contadores globales del dashboard.
type DashboardStats struct {
	TotalProducts  int64
	TotalOrders    int64
	TotalCustomers int64
	TotalRevenue   decimal.Decimal // pagos completados
}

// OrderBucket bucket diario de órdenes (date_trunc('day')).
type OrderBucket struct {
	Date    time.Time
	Orders  int64
	Revenue decimal.Decimal
}

// RevenueBucket bucket diario de ingresos por pagos completados.
type RevenueBucket struct {
	Date    time.Time
	Revenue decimal.Decimal
}

// TopProduct producto con mayor ingreso del período.
type TopProduct struct {
	Name    string
	Revenue decimal.Decimal
}

// InventoryTotals agregados globales de inventario.
type InventoryTotals struct {
	LowStockCount int64
	TotalStock    int64
	StockValue    decimal.Decimal // Σ(quantity × cost)
}

// CategoryStock stock agrupado por categoría.
type CategoryStock struct {
	Category string
	Quantity int64
}

// MovementBucket neto diario de movimientos: add suma, subtract/set restan su crudo.
type MovementBucket struct {
	Date time.Time
	Net  int64
}

// CustomerBucket clientes nuevos por día.
type CustomerBucket struct {
	Date  time.Time
	Count int64
}

// TopCustomer cliente por valor de vida (Σ totales de órdenes).
type TopCustomer struct {
	Name          string
	LifetimeValue decimal.Decimal
	Orders        int64
}

// GatewayRevenue ingresos por pasarela de pago.
type GatewayRevenue struct {
	Gateway string
	Revenue decimal.Decimal
}

// AnalyticsRepository consultas agregadas de solo lectura con bucketing por día.
// days ya llega validado por el caso de uso (clamp [1,365], default 30).
// gateway vacío o "all" = sin filtro de canal.
type AnalyticsRepository interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	GetOrdersTimeseries(ctx context.Context, days int) ([]OrderBucket, error)
	GetPaymentsTimeseries(ctx context.Context, days int, gateway string) ([]RevenueBucket, error)
	GetTopProducts(ctx context.Context, days, limit int) ([]TopProduct, error)
	GetInventoryTotals(ctx context.Context) (*InventoryTotals, error)
	GetCategoryBreakdown(ctx context.Context) ([]CategoryStock, error)
	GetMovementsTimeseries(ctx context.Context, days int) ([]MovementBucket, error)
	GetNewCustomersTimeseries(ctx context.Context, days int) ([]CustomerBucket, error)
	GetTopCustomers(ctx context.Context, limit int) ([]TopCustomer, error)
	GetRevenueByGateway(ctx context.Context, days int, gateway string) ([]GatewayRevenue, error)
}
