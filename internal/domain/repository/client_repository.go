package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	List(limit, offset int) ([]*entity.Client, error)
	SearchByName(name string, limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}
