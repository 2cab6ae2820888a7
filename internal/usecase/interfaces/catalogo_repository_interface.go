package interfaces

import (
	"context"
	"gestion_oficina/internal/domain/entities"
)

type ICatalogoRepository interface {
	Create(ctx context.Context, e entities.CatalogoEntry) (entities.CatalogoEntry, error)
	GetByID(ctx context.Context, tipo entities.TipoCatalogo, id string) (entities.CatalogoEntry, error)
	ListByTipo(ctx context.Context, tipo entities.TipoCatalogo) ([]entities.CatalogoEntry, error)
	Delete(ctx context.Context, tipo entities.TipoCatalogo, id string) error
	// ReplaceAll replaces every entry of the given tipo.
	ReplaceAll(ctx context.Context, tipo entities.TipoCatalogo, entries []entities.CatalogoEntry) error
}
