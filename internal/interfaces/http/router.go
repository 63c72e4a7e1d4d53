package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kellyos/kellyos-api/internal/domain/entity"
)

// RouterDeps agrupa los handlers que monta el router.
type RouterDeps struct {
	JWTSecret string

	Auth       *AuthHandler
	Products   *ProductHandler
	Inventory  *InventoryHandler
	Orders     *OrderHandler
	Customers  *CustomerHandler
	Accounting *AccountingHandler
	HR         *HRHandler
	Analytics  *AnalyticsHandler
	Payments   *PaymentHandler
}

// MountRoutes registra todas las rutas bajo /api y devuelve el grupo
// /api/plugins para que el manager de plugins monte rutas adicionales.
func MountRoutes(app *fiber.App, deps RouterDeps) fiber.Router {
	api := app.Group("/api")

	// ── Rutas públicas ──
	authGroup := api.Group("/auth")
	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/login", deps.Auth.Login)
	authGroup.Post("/refresh", deps.Auth.Refresh)
	authGroup.Post("/logout", deps.Auth.Logout)

	webhooks := api.Group("/payments/webhooks")
	webhooks.Post("/stripe", deps.Payments.StripeWebhook)
	webhooks.Post("/paypal", deps.Payments.PayPalWebhook)
	webhooks.Post("/square", deps.Payments.SquareWebhook)

	// ── Rutas protegidas ──
	protected := api.Use(AuthMiddleware(deps.JWTSecret))
	adminOrManager := RequireRole(entity.RoleAdmin, entity.RoleManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	inventory := protected.Group("/inventory")
	inventory.Get("/low-stock", deps.Inventory.ListLowStock)
	inventory.Post("/products", deps.Products.Create)
	inventory.Get("/products", deps.Products.List)
	inventory.Get("/products/:id", deps.Products.GetByID)
	inventory.Put("/products/:id", deps.Products.Update)
	inventory.Delete("/products/:id", adminOrManager, deps.Products.Delete)
	inventory.Post("/products/:id/stock", adminOrManager, deps.Inventory.AdjustStock)
	inventory.Get("/products/:id/movements", deps.Inventory.ListMovements)

	salesGroup := protected.Group("/sales")
	salesGroup.Post("/orders", deps.Orders.Create)
	salesGroup.Get("/orders", deps.Orders.List)
	salesGroup.Get("/orders/:id", deps.Orders.GetByID)
	salesGroup.Put("/orders/:id/status", adminOrManager, deps.Orders.UpdateStatus)
	salesGroup.Get("/orders/:id/pdf", deps.Orders.OrderPDF)
	salesGroup.Get("/invoices", deps.Orders.ListInvoices)
	salesGroup.Get("/invoices/:id", deps.Orders.GetInvoice)

	crm := protected.Group("/crm")
	crm.Post("/customers", deps.Customers.Create)
	crm.Get("/customers", deps.Customers.List)
	crm.Get("/customers/:id", deps.Customers.GetByID)
	crm.Put("/customers/:id", deps.Customers.Update)
	crm.Delete("/customers/:id", adminOnly, deps.Customers.Delete)
	crm.Post("/interactions", deps.Customers.CreateInteraction)
	crm.Get("/customers/:id/interactions", deps.Customers.ListInteractions)

	accounting := protected.Group("/accounting", RequireRole(entity.RoleAdmin, entity.RoleAccountant))
	accounting.Post("/transactions", deps.Accounting.CreateTransaction)
	accounting.Get("/transactions", deps.Accounting.ListTransactions)
	accounting.Get("/transactions/:id", deps.Accounting.GetTransaction)
	accounting.Get("/balance-sheet", deps.Accounting.BalanceSheet)
	accounting.Get("/income-statement", deps.Accounting.IncomeStatement)

	hr := protected.Group("/hr", RequireRole(entity.RoleAdmin, entity.RoleHR))
	hr.Post("/employees", deps.HR.CreateEmployee)
	hr.Get("/employees", deps.HR.ListEmployees)
	hr.Get("/employees/:id", deps.HR.GetEmployee)
	hr.Put("/employees/:id", deps.HR.UpdateEmployee)
	hr.Delete("/employees/:id", adminOnly, deps.HR.DeleteEmployee)
	hr.Post("/payroll", deps.HR.CreatePayroll)
	hr.Get("/payroll", deps.HR.ListPayroll)

	analyticsGroup := protected.Group("/analytics")
	analyticsGroup.Get("/dashboard", deps.Analytics.Dashboard)
	analyticsGroup.Get("/sales", deps.Analytics.Sales)
	analyticsGroup.Get("/inventory", deps.Analytics.Inventory)
	analyticsGroup.Get("/customer", deps.Analytics.Customer)
	analyticsGroup.Get("/revenue", deps.Analytics.Revenue)

	paymentsGroup := protected.Group("/payments")
	paymentsGroup.Post("/stripe/create-payment-intent", deps.Payments.CreateStripeIntent)
	paymentsGroup.Post("/paypal/create-order", deps.Payments.CreatePayPalOrder)
	paymentsGroup.Post("/square/create-payment", deps.Payments.CreateSquarePayment)
	paymentsGroup.Get("/history", deps.Payments.ListPayments)
	paymentsGroup.Get("/:id", deps.Payments.GetPayment)

	return protected.Group("/plugins")
}

// MountPluginRoutes registra el ciclo de vida de plugins sobre el grupo
// /api/plugins. Separado de MountRoutes: el manager necesita el grupo ya
// creado para montar las rutas propias de cada plugin.
func MountPluginRoutes(group fiber.Router, h *PluginHandler) {
	adminOnly := RequireRole(entity.RoleAdmin)
	group.Get("/", h.List)
	group.Post("/install", adminOnly, h.Install)
	group.Get("/:id", h.GetByID)
	group.Post("/:id/enable", adminOnly, h.Enable)
	group.Post("/:id/disable", adminOnly, h.Disable)
	group.Delete("/:id", adminOnly, h.Uninstall)
}
