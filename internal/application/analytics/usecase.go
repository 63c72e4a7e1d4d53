package analytics

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
	"github.com/kellyos/kellyos-api/internal/infrastructure/cache"
)

const (
	defaultRangeDays = 30
	maxRangeDays     = 365
	topLimit         = 5
)

// ParseRange interpreta el parámetro days de los endpoints de analítica.
// Vacío o inválido cae al default de 30; el rango queda acotado a [1, 365].
func ParseRange(raw string) int {
	if raw == "" {
		return defaultRangeDays
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultRangeDays
	}
	if n > maxRangeDays {
		return maxRangeDays
	}
	return n
}

// UseCase vistas agregadas de solo lectura sobre ventas, inventario,
// clientes e ingresos.
type UseCase struct {
	repo  repository.AnalyticsRepository
	cache *cache.Cache
}

// NewUseCase construye el caso de uso. cache puede ser nil.
func NewUseCase(repo repository.AnalyticsRepository, c *cache.Cache) *UseCase {
	return &UseCase{repo: repo, cache: c}
}

// Dashboard contadores globales. Cacheado 60 segundos: es la vista más
// consultada y tolera ese desfase.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	var cached dto.DashboardStatsResponse
	if uc.cache.GetDashboardStats(ctx, &cached) {
		return &cached, nil
	}

	stats, err := uc.repo.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.DashboardStatsResponse{
		TotalProducts:  stats.TotalProducts,
		TotalOrders:    stats.TotalOrders,
		TotalCustomers: stats.TotalCustomers,
		TotalRevenue:   stats.TotalRevenue,
	}
	uc.cache.SetDashboardStats(ctx, resp)
	return resp, nil
}

// Sales analítica de ventas del período: serie de órdenes, serie de pagos,
// top de productos y totales.
func (uc *UseCase) Sales(ctx context.Context, days int, gateway string) (*dto.SalesAnalyticsResponse, error) {
	orders, err := uc.repo.GetOrdersTimeseries(ctx, days)
	if err != nil {
		return nil, err
	}
	payments, err := uc.repo.GetPaymentsTimeseries(ctx, days, gateway)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.GetTopProducts(ctx, days, topLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.SalesAnalyticsResponse{
		Timeseries:        make([]dto.TimeseriesPoint, 0, len(orders)),
		PaymentTimeseries: make([]dto.RevenuePoint, 0, len(payments)),
		TopProducts:       make([]dto.TopProductDTO, 0, len(top)),
	}
	for _, b := range orders {
		resp.Timeseries = append(resp.Timeseries, dto.TimeseriesPoint{
			Date:    b.Date.Format("2006-01-02"),
			Orders:  b.Orders,
			Revenue: b.Revenue,
		})
		resp.Totals.Orders += b.Orders
		resp.Totals.Revenue = resp.Totals.Revenue.Add(b.Revenue)
	}
	if resp.Totals.Orders > 0 {
		resp.Totals.AvgOrderValue = resp.Totals.Revenue.Div(decimal.NewFromInt(resp.Totals.Orders)).Round(2)
	}
	for _, b := range payments {
		resp.PaymentTimeseries = append(resp.PaymentTimeseries, dto.RevenuePoint{
			Date:    b.Date.Format("2006-01-02"),
			Revenue: b.Revenue,
		})
	}
	for _, t := range top {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductDTO{Name: t.Name, Revenue: t.Revenue})
	}
	return resp, nil
}

// Inventory analítica de inventario: totales, categorías y neto de movimientos.
func (uc *UseCase) Inventory(ctx context.Context, days int) (*dto.InventoryAnalyticsResponse, error) {
	totals, err := uc.repo.GetInventoryTotals(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.repo.GetCategoryBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := uc.repo.GetMovementsTimeseries(ctx, days)
	if err != nil {
		return nil, err
	}

	resp := &dto.InventoryAnalyticsResponse{
		LowStockCount:     totals.LowStockCount,
		TotalStock:        totals.TotalStock,
		StockValue:        totals.StockValue,
		CategoryBreakdown: make([]dto.CategoryBreakdownDTO, 0, len(categories)),
		Movements:         make([]dto.MovementPoint, 0, len(movements)),
	}
	for _, c := range categories {
		resp.CategoryBreakdown = append(resp.CategoryBreakdown, dto.CategoryBreakdownDTO{
			Category: c.Category,
			Quantity: c.Quantity,
		})
	}
	for _, m := range movements {
		resp.Movements = append(resp.Movements, dto.MovementPoint{
			Date: m.Date.Format("2006-01-02"),
			Net:  m.Net,
		})
	}
	return resp, nil
}

// Customer analítica de clientes: altas por día y top por valor de vida.
func (uc *UseCase) Customer(ctx context.Context, days int) (*dto.CustomerAnalyticsResponse, error) {
	newCustomers, err := uc.repo.GetNewCustomersTimeseries(ctx, days)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.GetTopCustomers(ctx, topLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.CustomerAnalyticsResponse{
		NewCustomers: make([]dto.NewCustomerPoint, 0, len(newCustomers)),
		TopCustomers: make([]dto.TopCustomerDTO, 0, len(top)),
	}
	for _, b := range newCustomers {
		resp.NewCustomers = append(resp.NewCustomers, dto.NewCustomerPoint{
			Date:  b.Date.Format("2006-01-02"),
			Count: b.Count,
		})
	}
	for _, t := range top {
		resp.TopCustomers = append(resp.TopCustomers, dto.TopCustomerDTO{
			Name:          t.Name,
			LifetimeValue: t.LifetimeValue,
			Orders:        t.Orders,
		})
	}
	return resp, nil
}

// Revenue analítica de ingresos: por pasarela, serie diaria y total.
func (uc *UseCase) Revenue(ctx context.Context, days int, gateway string) (*dto.RevenueAnalyticsResponse, error) {
	byGateway, err := uc.repo.GetRevenueByGateway(ctx, days, gateway)
	if err != nil {
		return nil, err
	}
	series, err := uc.repo.GetPaymentsTimeseries(ctx, days, gateway)
	if err != nil {
		return nil, err
	}

	resp := &dto.RevenueAnalyticsResponse{
		ByGateway:  make([]dto.GatewayRevenueDTO, 0, len(byGateway)),
		Timeseries: make([]dto.RevenuePoint, 0, len(series)),
	}
	for _, g := range byGateway {
		resp.ByGateway = append(resp.ByGateway, dto.GatewayRevenueDTO{Gateway: g.Gateway, Revenue: g.Revenue})
		resp.TotalRevenue = resp.TotalRevenue.Add(g.Revenue)
	}
	for _, b := range series {
		resp.Timeseries = append(resp.Timeseries, dto.RevenuePoint{
			Date:    b.Date.Format("2006-01-02"),
			Revenue: b.Revenue,
		})
	}
	return resp, nil
}
