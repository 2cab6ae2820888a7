package interfaces

import (
	"context"
	"gestion_oficina/internal/domain/entities"
)

//go:generate mockgen -source=pago_repository_interface.go -destination=mocks/mock_pago_repository_interface.go -package=mock_interfaces

// IPagoRepository reads Pagos. Pagos are inserted and deleted only as part of
// a ledger unit (ILedgerRepository.Commit).
type IPagoRepository interface {
	GetByID(ctx context.Context, id string) (entities.Pago, error)
	List(ctx context.Context) ([]entities.Pago, error)
	ListByTrabajoID(ctx context.Context, trabajoID string) ([]entities.Pago, error)
	ReplaceAll(ctx context.Context, pagos []entities.Pago) error
}
