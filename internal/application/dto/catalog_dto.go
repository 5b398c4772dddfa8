package dto

import "time"

// ── Category ──────────────────────────────────────────────────────────────────

// CreateCategoryRequest datos para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCategoryRequest datos para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse representación de salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ── Unit ──────────────────────────────────────────────────────────────────────

// CreateUnitRequest datos para crear una unidad de medida.
type CreateUnitRequest struct {
	Name string `json:"name"`
}

// UpdateUnitRequest datos para actualizar una unidad de medida.
type UpdateUnitRequest struct {
	Name string `json:"name"`
}

// UnitResponse representación de salida de una unidad.
type UnitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Warehouse ─────────────────────────────────────────────────────────────────

// CreateWarehouseRequest datos para crear una bodega.
type CreateWarehouseRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Manager     string `json:"manager"`
	Description string `json:"description"`
}

// UpdateWarehouseRequest datos para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Manager     string `json:"manager"`
	Description string `json:"description"`
}

// WarehouseResponse representación de salida de una bodega.
type WarehouseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Manager     string    `json:"manager"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ── Client ────────────────────────────────────────────────────────────────────

// CreateClientRequest datos para crear un cliente.
type CreateClientRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Tel           string `json:"tel"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Memo          string `json:"memo"`
}

// UpdateClientRequest datos para actualizar un cliente.
type UpdateClientRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Tel           string `json:"tel"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Memo          string `json:"memo"`
}

// ClientResponse representación de salida de un cliente.
type ClientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Tel           string    `json:"tel"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Memo          string    `json:"memo"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
