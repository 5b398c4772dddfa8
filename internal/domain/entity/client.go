package entity

import "time"

// Client cliente de la empresa (datos de referencia).
type Client struct {
	ID            string
	Name          string
	ContactPerson string
	Tel           string
	Email         string
	Address       string
	Memo          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
