package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/receipt"
)

// ReceiptHandler maneja las recepciones de material y sus líneas (protegido).
// Mismo contrato que las órdenes, sin paso de confirmación.
type ReceiptHandler struct {
	uc *receipt.UseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receipt.UseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Create godoc
// @Summary      Crear recepción de material
// @Tags         receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "Datos de la recepción (nace PENDING)"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.WarehouseID == "" || in.UserID == "" {
		return badRequest(c, "warehouse_id y user_id son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una recepción por ID.
// GET /api/receipts/:id
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByNumber obtiene una recepción por su número.
// GET /api/receipts/number/:number
func (h *ReceiptHandler) GetByNumber(c *fiber.Ctx) error {
	out, err := h.uc.GetByNumber(c.Params("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista recepciones con paginación.
// GET /api/receipts
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByStatus lista recepciones por estado.
// GET /api/receipts/status/:status
func (h *ReceiptHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByUser lista recepciones de un usuario.
// GET /api/receipts/user/:userId
func (h *ReceiptHandler) ListByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByWarehouse lista recepciones de una bodega.
// GET /api/receipts/warehouse/:warehouseId
func (h *ReceiptHandler) ListByWarehouse(c *fiber.Ctx) error {
	out, err := h.uc.ListByWarehouse(c.Params("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByDateRange lista recepciones en un rango de fechas.
// GET /api/receipts/date-range?start=...&end=...
func (h *ReceiptHandler) ListByDateRange(c *fiber.Ctx) error {
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

// SearchBySupplier busca recepciones por proveedor.
// GET /api/receipts/search?supplier=...
func (h *ReceiptHandler) SearchBySupplier(c *fiber.Ctx) error {
	supplier := c.Query("supplier")
	if supplier == "" {
		return badRequest(c, "supplier es requerido")
	}
	out, err := h.uc.SearchBySupplier(supplier)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza los campos editables de una recepción (nunca status ni total).
// PUT /api/receipts/:id
func (h *ReceiptHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una recepción y sus líneas.
// DELETE /api/receipts/:id
func (h *ReceiptHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "recepción eliminada"})
}

// Receive transiciona PENDING → RECEIVED: suma stock de cada línea y registra
// los asientos INBOUND.
// POST /api/receipts/:id/receive
func (h *ReceiptHandler) Receive(c *fiber.Ctx) error {
	out, err := h.uc.Receive(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel transiciona la recepción a CANCELLED.
// POST /api/receipts/:id/cancel
func (h *ReceiptHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListItems lista las líneas de una recepción.
// GET /api/receipts/:id/items
func (h *ReceiptHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem agrega una línea a la recepción y recalcula el total.
// POST /api/receipts/:id/items
func (h *ReceiptHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddReceiptItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem actualiza una línea y recalcula el total.
// PUT /api/receipts/:id/items/:itemId
func (h *ReceiptHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateReceiptItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateItem(c.Context(), c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem elimina una línea y recalcula el total.
// DELETE /api/receipts/:id/items/:itemId
func (h *ReceiptHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(c.Context(), c.Params("id"), c.Params("itemId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "línea eliminada"})
}
