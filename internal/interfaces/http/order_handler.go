package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/order"
)

// OrderHandler maneja las órdenes de compra y sus líneas (protegido).
type OrderHandler struct {
	uc *order.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos de la orden (nace PENDING)"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
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

// GetByID obtiene una orden por ID.
// GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByNumber obtiene una orden por su número.
// GET /api/orders/number/:number
func (h *OrderHandler) GetByNumber(c *fiber.Ctx) error {
	out, err := h.uc.GetByNumber(c.Params("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista órdenes con paginación.
// GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByStatus lista órdenes por estado.
// GET /api/orders/status/:status
func (h *OrderHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByUser lista órdenes de un usuario.
// GET /api/orders/user/:userId
func (h *OrderHandler) ListByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByWarehouse lista órdenes de una bodega.
// GET /api/orders/warehouse/:warehouseId
func (h *OrderHandler) ListByWarehouse(c *fiber.Ctx) error {
	out, err := h.uc.ListByWarehouse(c.Params("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByDateRange lista órdenes en un rango de fechas.
// GET /api/orders/date-range?start=...&end=...
func (h *OrderHandler) ListByDateRange(c *fiber.Ctx) error {
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

// SearchBySupplier busca órdenes por proveedor.
// GET /api/orders/search?supplier=...
func (h *OrderHandler) SearchBySupplier(c *fiber.Ctx) error {
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

// Update actualiza los campos editables de una orden (nunca status ni total).
// PUT /api/orders/:id
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una orden y sus líneas.
// DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "orden eliminada"})
}

// Confirm transiciona la orden PENDING → CONFIRMED.
// POST /api/orders/:id/confirm
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	out, err := h.uc.Confirm(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receive transiciona CONFIRMED → RECEIVED: suma stock de cada línea y
// registra los asientos INBOUND.
// POST /api/orders/:id/receive
func (h *OrderHandler) Receive(c *fiber.Ctx) error {
	out, err := h.uc.Receive(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel transiciona la orden a CANCELLED.
// POST /api/orders/:id/cancel
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListItems lista las líneas de una orden.
// GET /api/orders/:id/items
func (h *OrderHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem agrega una línea a la orden y recalcula el total.
// POST /api/orders/:id/items
func (h *OrderHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddOrderItemRequest
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
// PUT /api/orders/:id/items/:itemId
func (h *OrderHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateOrderItemRequest
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
// DELETE /api/orders/:id/items/:itemId
func (h *OrderHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(c.Context(), c.Params("id"), c.Params("itemId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "línea eliminada"})
}
