package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse contadores globales del dashboard.
type DashboardStatsResponse struct {
	TotalProducts  int64           `json:"totalProducts"`
	TotalOrders    int64           `json:"totalOrders"`
	TotalCustomers int64           `json:"totalCustomers"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
}

// TimeseriesPoint punto diario de la serie de órdenes.
type TimeseriesPoint struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenuePoint punto diario de ingresos.
type RevenuePoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TopProductDTO producto con mayor ingreso.
type TopProductDTO struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesTotals totales del período.
type SalesTotals struct {
	Orders        int64           `json:"orders"`
	Revenue       decimal.Decimal `json:"revenue"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
}

// SalesAnalyticsResponse analítica de ventas del período.
type SalesAnalyticsResponse struct {
	Timeseries        []TimeseriesPoint `json:"timeseries"`
	PaymentTimeseries []RevenuePoint    `json:"paymentTimeseries"`
	TopProducts       []TopProductDTO   `json:"topProducts"`
	Totals            SalesTotals       `json:"totals"`
}

// CategoryBreakdownDTO stock por categoría.
type CategoryBreakdownDTO struct {
	Category string `json:"category"`
	Quantity int64  `json:"quantity"`
}

// MovementPoint neto diario de movimientos de stock.
type MovementPoint struct {
	Date string `json:"date"`
	Net  int64  `json:"net"`
}

// InventoryAnalyticsResponse analítica de inventario.
type InventoryAnalyticsResponse struct {
	LowStockCount     int64                  `json:"lowStockCount"`
	TotalStock        int64                  `json:"totalStock"`
	StockValue        decimal.Decimal        `json:"stockValue"`
	CategoryBreakdown []CategoryBreakdownDTO `json:"categoryBreakdown"`
	Movements         []MovementPoint        `json:"movements"`
}

// NewCustomerPoint clientes nuevos por día.
type NewCustomerPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// TopCustomerDTO cliente por valor de vida.
type TopCustomerDTO struct {
	Name          string          `json:"name"`
	LifetimeValue decimal.Decimal `json:"lifetimeValue"`
	Orders        int64           `json:"orders"`
}

// CustomerAnalyticsResponse analítica de clientes.
type CustomerAnalyticsResponse struct {
	NewCustomers []NewCustomerPoint `json:"newCustomers"`
	TopCustomers []TopCustomerDTO   `json:"topCustomers"`
}

// GatewayRevenueDTO ingresos por pasarela.
type GatewayRevenueDTO struct {
	Gateway string          `json:"gateway"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenueAnalyticsResponse analítica de ingresos.
type RevenueAnalyticsResponse struct {
	ByGateway    []GatewayRevenueDTO `json:"byGateway"`
	Timeseries   []RevenuePoint      `json:"timeseries"`
	TotalRevenue decimal.Decimal     `json:"totalRevenue"`
}
