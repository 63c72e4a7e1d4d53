package postgres

import (
	"context"
	"fmt"

	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura. Todos los buckets
// diarios usan date_trunc('day') y el rango NOW() - (days || ' days')::interval.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetDashboardStats contadores globales + ingreso de pagos completados.
func (r *AnalyticsRepo) GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM customers),
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'completed')`
	var s repository.DashboardStats
	if err := r.q.QueryRow(ctx, query).Scan(&s.TotalProducts, &s.TotalOrders, &s.TotalCustomers, &s.TotalRevenue); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &s, nil
}

// GetOrdersTimeseries órdenes e ingresos por día del período.
func (r *AnalyticsRepo) GetOrdersTimeseries(ctx context.Context, days int) ([]repository.OrderBucket, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE created_at >= NOW() - ($1 || ' days')::interval
		GROUP BY day ORDER BY day`
	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("orders timeseries: %w", err)
	}
	defer rows.Close()

	var list []repository.OrderBucket
	for rows.Next() {
		var b repository.OrderBucket
		if err := rows.Scan(&b.Date, &b.Orders, &b.Revenue); err != nil {
			return nil, fmt.Errorf("scan order bucket: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// GetPaymentsTimeseries ingresos diarios por pagos completados, con filtro
// opcional de pasarela (vacío o "all" = todas).
func (r *AnalyticsRepo) GetPaymentsTimeseries(ctx context.Context, days int, gateway string) ([]repository.RevenueBucket, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = 'completed'
		  AND created_at >= NOW() - ($1 || ' days')::interval
		  AND ($2 = '' OR $2 = 'all' OR gateway = $2)
		GROUP BY day ORDER BY day`
	rows, err := r.q.Query(ctx, query, days, gateway)
	if err != nil {
		return nil, fmt.Errorf("payments timeseries: %w", err)
	}
	defer rows.Close()

	var list []repository.RevenueBucket
	for rows.Next() {
		var b repository.RevenueBucket
		if err := rows.Scan(&b.Date, &b.Revenue); err != nil {
			return nil, fmt.Errorf("scan revenue bucket: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// GetTopProducts productos con mayor ingreso (precio snapshot × cantidad) del período.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, days, limit int) ([]repository.TopProduct, error) {
	query := `
		SELECT p.name, COALESCE(SUM(oi.price * oi.quantity), 0) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.created_at >= NOW() - ($1 || ' days')::interval
		GROUP BY p.name ORDER BY revenue DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, days, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var list []repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.Name, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetInventoryTotals agregados globales de inventario.
func (r *AnalyticsRepo) GetInventoryTotals(ctx context.Context) (*repository.InventoryTotals, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE quantity <= min_stock_level),
			COALESCE(SUM(quantity), 0),
			COALESCE(SUM(quantity * cost), 0)
		FROM products`
	var t repository.InventoryTotals
	if err := r.q.QueryRow(ctx, query).Scan(&t.LowStockCount, &t.TotalStock, &t.StockValue); err != nil {
		return nil, fmt.Errorf("inventory totals: %w", err)
	}
	return &t, nil
}

// GetCategoryBreakdown stock por categoría.
func (r *AnalyticsRepo) GetCategoryBreakdown(ctx context.Context) ([]repository.CategoryStock, error) {
	query := `
		SELECT COALESCE(NULLIF(category, ''), 'uncategorized'), COALESCE(SUM(quantity), 0)
		FROM products GROUP BY 1 ORDER BY 2 DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	defer rows.Close()

	var list []repository.CategoryStock
	for rows.Next() {
		var c repository.CategoryStock
		if err := rows.Scan(&c.Category, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan category stock: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetMovementsTimeseries neto diario de movimientos: add suma su cantidad
// cruda, subtract y set la restan.
func (r *AnalyticsRepo) GetMovementsTimeseries(ctx context.Context, days int) ([]repository.MovementBucket, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day,
		       COALESCE(SUM(CASE WHEN operation = 'add' THEN quantity ELSE -quantity END), 0)
		FROM stock_movements
		WHERE created_at >= NOW() - ($1 || ' days')::interval
		GROUP BY day ORDER BY day`
	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("movements timeseries: %w", err)
	}
	defer rows.Close()

	var list []repository.MovementBucket
	for rows.Next() {
		var b repository.MovementBucket
		if err := rows.Scan(&b.Date, &b.Net); err != nil {
			return nil, fmt.Errorf("scan movement bucket: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// GetNewCustomersTimeseries clientes nuevos por día del período.
func (r *AnalyticsRepo) GetNewCustomersTimeseries(ctx context.Context, days int) ([]repository.CustomerBucket, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, COUNT(*)
		FROM customers
		WHERE created_at >= NOW() - ($1 || ' days')::interval
		GROUP BY day ORDER BY day`
	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("new customers timeseries: %w", err)
	}
	defer rows.Close()

	var list []repository.CustomerBucket
	for rows.Next() {
		var b repository.CustomerBucket
		if err := rows.Scan(&b.Date, &b.Count); err != nil {
			return nil, fmt.Errorf("scan customer bucket: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// GetTopCustomers clientes por valor de vida (Σ totales de sus órdenes).
func (r *AnalyticsRepo) GetTopCustomers(ctx context.Context, limit int) ([]repository.TopCustomer, error) {
	query := `
		SELECT c.name, COALESCE(SUM(o.total), 0) AS lifetime, COUNT(o.id)
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		GROUP BY c.name ORDER BY lifetime DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()

	var list []repository.TopCustomer
	for rows.Next() {
		var t repository.TopCustomer
		if err := rows.Scan(&t.Name, &t.LifetimeValue, &t.Orders); err != nil {
			return nil, fmt.Errorf("scan top customer: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetRevenueByGateway ingresos de pagos completados agrupados por pasarela.
func (r *AnalyticsRepo) GetRevenueByGateway(ctx context.Context, days int, gateway string) ([]repository.GatewayRevenue, error) {
	query := `
		SELECT gateway, COALESCE(SUM(amount), 0) AS revenue
		FROM payments
		WHERE status = 'completed'
		  AND created_at >= NOW() - ($1 || ' days')::interval
		  AND ($2 = '' OR $2 = 'all' OR gateway = $2)
		GROUP BY gateway ORDER BY revenue DESC`
	rows, err := r.q.Query(ctx, query, days, gateway)
	if err != nil {
		return nil, fmt.Errorf("revenue by gateway: %w", err)
	}
	defer rows.Close()

	var list []repository.GatewayRevenue
	for rows.Next() {
		var g repository.GatewayRevenue
		if err := rows.Scan(&g.Gateway, &g.Revenue); err != nil {
			return nil, fmt.Errorf("scan gateway revenue: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}
