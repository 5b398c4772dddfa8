package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/production"
)

// ProductionHandler maneja las órdenes de producción y sus líneas de consumo
// (protegido).
type ProductionHandler struct {
	uc *production.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de producción
// @Tags         productions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRequest  true  "Datos de la producción (nace PLANNED)"
// @Success      201   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productions [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ProductID == "" || in.WarehouseID == "" || in.UserID == "" {
		return badRequest(c, "product_id, warehouse_id y user_id son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una producción por ID.
// GET /api/productions/:id
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByNumber obtiene una producción por su número.
// GET /api/productions/number/:number
func (h *ProductionHandler) GetByNumber(c *fiber.Ctx) error {
	out, err := h.uc.GetByNumber(c.Params("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista producciones con paginación.
// GET /api/productions
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByStatus lista producciones por estado.
// GET /api/productions/status/:status
func (h *ProductionHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByUser lista producciones de un usuario.
// GET /api/productions/user/:userId
func (h *ProductionHandler) ListByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByWarehouse lista producciones de una bodega.
// GET /api/productions/warehouse/:warehouseId
func (h *ProductionHandler) ListByWarehouse(c *fiber.Ctx) error {
	out, err := h.uc.ListByWarehouse(c.Params("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct lista producciones de un producto.
// GET /api/productions/product/:productId
func (h *ProductionHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByDateRange lista producciones en un rango de fechas.
// GET /api/productions/date-range?start=...&end=...
func (h *ProductionHandler) ListByDateRange(c *fiber.Ctx) error {
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

// Update actualiza los campos editables de una producción (nunca status ni total).
// PUT /api/productions/:id
func (h *ProductionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una producción y sus líneas.
// DELETE /api/productions/:id
func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producción eliminada"})
}

// Start transiciona PLANNED → IN_PROGRESS: valida stock de todas las líneas,
// descuenta los items y registra los asientos PRODUCTION de salida.
// POST /api/productions/:id/start
func (h *ProductionHandler) Start(c *fiber.Ctx) error {
	out, err := h.uc.Start(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Complete transiciona IN_PROGRESS → COMPLETED: suma el producto terminado y
// registra el asiento PRODUCTION de entrada.
// POST /api/productions/:id/complete
func (h *ProductionHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel transiciona a CANCELLED. Si estaba IN_PROGRESS devuelve el stock
// consumido con asientos ADJUSTMENT.
// POST /api/productions/:id/cancel
func (h *ProductionHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListItems lista las líneas de consumo de una producción.
// GET /api/productions/:id/items
func (h *ProductionHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem agrega una línea de consumo y recalcula el costo total.
// POST /api/productions/:id/items
func (h *ProductionHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddProductionItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem actualiza una línea de consumo y recalcula el costo total.
// PUT /api/productions/:id/items/:itemId
func (h *ProductionHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateProductionItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateItem(c.Context(), c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem elimina una línea de consumo y recalcula el costo total.
// DELETE /api/productions/:id/items/:itemId
func (h *ProductionHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(c.Context(), c.Params("id"), c.Params("itemId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "línea eliminada"})
}
