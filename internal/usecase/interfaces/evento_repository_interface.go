package interfaces

import (
	"context"
	"gestion_oficina/internal/domain/entities"
)

//go:generate mockgen -source=evento_repository_interface.go -destination=mocks/mock_evento_repository_interface.go -package=mock_interfaces

type IEventoRepository interface {
	Create(ctx context.Context, e entities.Evento) (entities.Evento, error)
	GetByID(ctx context.Context, id string) (entities.Evento, error)
	List(ctx context.Context) ([]entities.Evento, error)
	Update(ctx context.Context, e entities.Evento) (entities.Evento, error)
	Delete(ctx context.Context, id string) error
	// MarkReminderShown flips recordatorioMostrado to true only if it is still
	// false. It reports whether this call performed the flip.
	MarkReminderShown(ctx context.Context, id string) (bool, error)
	ReplaceAll(ctx context.Context, eventos []entities.Evento) error
}
