package entity

import "time"

// Unit unidad de medida (kg, unidad, litro...).
type Unit struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
	UpdatedAt time.Time
}
