package interfaces

import (
	"context"
	"gestion_oficina/internal/domain/entities"
)

//go:generate mockgen -source=trabajo_repository_interface.go -destination=mocks/mock_trabajo_repository_interface.go -package=mock_interfaces

// ITrabajoRepository persists Trabajos.
//
// Balance fields are only written through ILedgerRepository.Commit; Create is
// used for new trabajos whose saldo equals their cost.
type ITrabajoRepository interface {
	Create(ctx context.Context, t entities.Trabajo) (entities.Trabajo, error)
	GetByID(ctx context.Context, id string) (entities.Trabajo, error)
	List(ctx context.Context) ([]entities.Trabajo, error)
	ListByClienteID(ctx context.Context, clienteID string) ([]entities.Trabajo, error)
	ReplaceAll(ctx context.Context, trabajos []entities.Trabajo) error
}
