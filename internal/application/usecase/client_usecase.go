package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/refnum"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo  repository.ClientRepository
	clock refnum.Clock
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, clock refnum.Clock) *ClientUseCase {
	if clock == nil {
		clock = refnum.SystemClock{}
	}
	return &ClientUseCase{repo: repo, clock: clock}
}

// Create crea un cliente.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	now := uc.clock.Now()
	client := &entity.Client{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Tel:           in.Tel,
		Email:         in.Email,
		Address:       in.Address,
		Memo:          in.Memo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update actualiza un cliente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		client.Name = in.Name
	}
	client.ContactPerson = in.ContactPerson
	client.Tel = in.Tel
	client.Email = in.Email
	client.Address = in.Address
	client.Memo = in.Memo
	client.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(limit, offset int) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// SearchByName busca clientes por nombre (substring) con paginación.
func (uc *ClientUseCase) SearchByName(name string, limit, offset int) ([]dto.ClientResponse, error) {
	list, err := uc.repo.SearchByName(name, limit, offset)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// Delete elimina un cliente por ID.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Tel:           c.Tel,
		Email:         c.Email,
		Address:       c.Address,
		Memo:          c.Memo,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toClientResponses(list []*entity.Client) []dto.ClientResponse {
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out
}
