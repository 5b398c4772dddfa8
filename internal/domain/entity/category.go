package entity

import "time"

// Category categoría de items y productos (datos de referencia).
type Category struct {
	ID          string
	Name        string // único
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
