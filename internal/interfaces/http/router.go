// Package http expone la API REST del almacén sobre Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/order"
	"github.com/jhoicas/almacen-api/internal/application/production"
	"github.com/jhoicas/almacen-api/internal/application/receipt"
	"github.com/jhoicas/almacen-api/internal/application/transaction"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CategoryUC    *usecase.CategoryUseCase
	UnitUC        *usecase.UnitUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	ClientUC      *usecase.ClientUseCase
	UserUC        *usecase.UserUseCase
	ItemUC        *usecase.ItemUseCase
	ProductUC     *usecase.ProductUseCase
	OrderUC       *order.UseCase
	ReceiptUC     *receipt.UseCase
	ProductionUC  *production.UseCase
	TransactionUC *transaction.UseCase
	ReportUC      *usecase.ReportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Las rutas con parámetro se registran
// después de las literales para que Fiber no las capture.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Units
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Users (solo ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Items (materia prima)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/code/:code", itemHandler.GetByCode)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Products (producto terminado)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/code/:code", productHandler.GetByCode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Orders (órdenes de compra)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/number/:number", orderHandler.GetByNumber)
	orders.Get("/status/:status", orderHandler.ListByStatus)
	orders.Get("/user/:userId", orderHandler.ListByUser)
	orders.Get("/warehouse/:warehouseId", orderHandler.ListByWarehouse)
	orders.Get("/date-range", orderHandler.ListByDateRange)
	orders.Get("/search", orderHandler.SearchBySupplier)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/confirm", orderHandler.Confirm)
	orders.Post("/:id/receive", orderHandler.Receive)
	orders.Post("/:id/cancel", orderHandler.Cancel)
	orders.Get("/:id/items", orderHandler.ListItems)
	orders.Post("/:id/items", orderHandler.AddItem)
	orders.Put("/:id/items/:itemId", orderHandler.UpdateItem)
	orders.Delete("/:id/items/:itemId", orderHandler.RemoveItem)

	// Receipts (recepciones de material)
	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/number/:number", receiptHandler.GetByNumber)
	receipts.Get("/status/:status", receiptHandler.ListByStatus)
	receipts.Get("/user/:userId", receiptHandler.ListByUser)
	receipts.Get("/warehouse/:warehouseId", receiptHandler.ListByWarehouse)
	receipts.Get("/date-range", receiptHandler.ListByDateRange)
	receipts.Get("/search", receiptHandler.SearchBySupplier)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Put("/:id", receiptHandler.Update)
	receipts.Delete("/:id", receiptHandler.Delete)
	receipts.Post("/:id/receive", receiptHandler.Receive)
	receipts.Post("/:id/cancel", receiptHandler.Cancel)
	receipts.Get("/:id/items", receiptHandler.ListItems)
	receipts.Post("/:id/items", receiptHandler.AddItem)
	receipts.Put("/:id/items/:itemId", receiptHandler.UpdateItem)
	receipts.Delete("/:id/items/:itemId", receiptHandler.RemoveItem)

	// Productions (órdenes de producción)
	productions := protected.Group("/productions")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	productions.Post("/", productionHandler.Create)
	productions.Get("/", productionHandler.List)
	productions.Get("/number/:number", productionHandler.GetByNumber)
	productions.Get("/status/:status", productionHandler.ListByStatus)
	productions.Get("/user/:userId", productionHandler.ListByUser)
	productions.Get("/warehouse/:warehouseId", productionHandler.ListByWarehouse)
	productions.Get("/product/:productId", productionHandler.ListByProduct)
	productions.Get("/date-range", productionHandler.ListByDateRange)
	productions.Get("/:id", productionHandler.GetByID)
	productions.Put("/:id", productionHandler.Update)
	productions.Delete("/:id", productionHandler.Delete)
	productions.Post("/:id/start", productionHandler.Start)
	productions.Post("/:id/complete", productionHandler.Complete)
	productions.Post("/:id/cancel", productionHandler.Cancel)
	productions.Get("/:id/items", productionHandler.ListItems)
	productions.Post("/:id/items", productionHandler.AddItem)
	productions.Put("/:id/items/:itemId", productionHandler.UpdateItem)
	productions.Delete("/:id/items/:itemId", productionHandler.RemoveItem)

	// Transactions (ledger + movimientos rápidos)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/item/inbound", transactionHandler.ItemInbound)
	transactions.Post("/item/outbound", transactionHandler.ItemOutbound)
	transactions.Post("/product/inbound", transactionHandler.ProductInbound)
	transactions.Post("/product/outbound", transactionHandler.ProductOutbound)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/recent", transactionHandler.Recent)
	transactions.Get("/search", transactionHandler.SearchByReference)
	transactions.Get("/date-range", transactionHandler.ListByDateRange)
	transactions.Get("/type/:type", transactionHandler.ListByType)
	transactions.Get("/entity-type/:entityType", transactionHandler.ListByEntityType)
	transactions.Get("/status/:status", transactionHandler.ListByStatus)
	transactions.Get("/user/:userId", transactionHandler.ListByUser)
	transactions.Get("/warehouse/:warehouseId", transactionHandler.ListByWarehouse)
	transactions.Get("/item/:itemId", transactionHandler.ListByItem)
	transactions.Get("/product/:productId", transactionHandler.ListByProduct)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock/pdf", reportHandler.StockPDF)
}
