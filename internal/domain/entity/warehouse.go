package entity

import "time"

// Warehouse bodega física donde se almacenan items y productos.
type Warehouse struct {
	ID          string
	Name        string
	Location    string
	Manager     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
