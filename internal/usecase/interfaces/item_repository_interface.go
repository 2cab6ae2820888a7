package interfaces

import (
	"context"
	"gestion_oficina/internal/domain/entities"
)

//go:generate mockgen -source=item_repository_interface.go -destination=mocks/mock_item_repository_interface.go -package=mock_interfaces

type IItemRepository interface {
	Create(ctx context.Context, it entities.Item) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
	List(ctx context.Context) ([]entities.Item, error)
	ListByTrabajoID(ctx context.Context, trabajoID string) ([]entities.Item, error)
	Update(ctx context.Context, it entities.Item) (entities.Item, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, items []entities.Item) error
}
