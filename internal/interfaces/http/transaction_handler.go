package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/transaction"
)

// TransactionHandler maneja el ledger de transacciones y las entradas/salidas
// rápidas de stock (protegido).
type TransactionHandler struct {
	uc *transaction.UseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *transaction.UseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// ── Entradas/salidas rápidas ──────────────────────────────────────────────────

// ItemInbound registra una entrada rápida de stock de un item.
// POST /api/transactions/item/inbound
func (h *TransactionHandler) ItemInbound(c *fiber.Ctx) error {
	var in dto.QuickTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ItemID == "" {
		return badRequest(c, "item_id es requerido")
	}
	out, err := h.uc.CreateItemInbound(c.Context(), in.ItemID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ProductInbound registra una entrada rápida de stock de un producto.
// POST /api/transactions/product/inbound
func (h *TransactionHandler) ProductInbound(c *fiber.Ctx) error {
	var in dto.QuickTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ProductID == "" {
		return badRequest(c, "product_id es requerido")
	}
	out, err := h.uc.CreateProductInbound(c.Context(), in.ProductID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ItemOutbound registra una salida rápida de stock de un item. Falla con 409
// si el stock es insuficiente.
// POST /api/transactions/item/outbound
func (h *TransactionHandler) ItemOutbound(c *fiber.Ctx) error {
	var in dto.QuickTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ItemID == "" {
		return badRequest(c, "item_id es requerido")
	}
	out, err := h.uc.CreateItemOutbound(c.Context(), in.ItemID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ProductOutbound registra una salida rápida de stock de un producto.
// POST /api/transactions/product/outbound
func (h *TransactionHandler) ProductOutbound(c *fiber.Ctx) error {
	var in dto.QuickTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ProductID == "" {
		return badRequest(c, "product_id es requerido")
	}
	out, err := h.uc.CreateProductOutbound(c.Context(), in.ProductID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ── API independiente del ledger ──────────────────────────────────────────────

// Create crea un asiento directo. No mueve stock.
// POST /api/transactions
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un asiento por ID.
// GET /api/transactions/:id
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update modifica un asiento directo. No mueve stock.
// PUT /api/transactions/:id
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un asiento directo. No mueve stock.
// DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "asiento eliminado"})
}

// List lista asientos con paginación.
// GET /api/transactions
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Recent lista los asientos más recientes (?limit=, 10 por defecto).
// GET /api/transactions/recent
func (h *TransactionHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByType lista asientos por tipo de movimiento.
// GET /api/transactions/type/:type
func (h *TransactionHandler) ListByType(c *fiber.Ctx) error {
	out, err := h.uc.ListByType(c.Params("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByEntityType lista asientos por familia de cuenta (ITEMS o PRODUCTS).
// GET /api/transactions/entity-type/:entityType
func (h *TransactionHandler) ListByEntityType(c *fiber.Ctx) error {
	out, err := h.uc.ListByEntityType(c.Params("entityType"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByStatus lista asientos por estado.
// GET /api/transactions/status/:status
func (h *TransactionHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByUser lista asientos de un usuario.
// GET /api/transactions/user/:userId
func (h *TransactionHandler) ListByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByWarehouse lista asientos de una bodega.
// GET /api/transactions/warehouse/:warehouseId
func (h *TransactionHandler) ListByWarehouse(c *fiber.Ctx) error {
	out, err := h.uc.ListByWarehouse(c.Params("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByItem lista asientos de un item.
// GET /api/transactions/item/:itemId
func (h *TransactionHandler) ListByItem(c *fiber.Ctx) error {
	out, err := h.uc.ListByItem(c.Params("itemId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct lista asientos de un producto.
// GET /api/transactions/product/:productId
func (h *TransactionHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByDateRange lista asientos en un rango de fechas.
// GET /api/transactions/date-range?start=...&end=...
func (h *TransactionHandler) ListByDateRange(c *fiber.Ctx) error {
	start, end, err := dateRangeParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.ListByDateRange(start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SearchByReference busca asientos por número de referencia.
// GET /api/transactions/search?reference=...
func (h *TransactionHandler) SearchByReference(c *fiber.Ctx) error {
	reference := c.Query("reference")
	if reference == "" {
		return badRequest(c, "reference es requerido")
	}
	out, err := h.uc.SearchByReference(reference)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
