package interfaces

import (
	"context"
	"gestion_oficina/internal/domain/entities"
)

//go:generate mockgen -source=cliente_repository_interface.go -destination=mocks/mock_cliente_repository_interface.go -package=mock_interfaces

// IClienteRepository persists Clientes.
//
// Lookups return a zero Cliente (empty ID) when the record does not exist.
// Update is an optimistic write: c.Version must be the stored version + 1,
// otherwise entities.ErrVersionConflict is returned.
type IClienteRepository interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	List(ctx context.Context) ([]entities.Cliente, error)
	Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	ReplaceAll(ctx context.Context, clientes []entities.Cliente) error
}
