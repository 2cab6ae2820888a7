package interfaces

import (
	"context"
	"gestion_oficina/internal/domain/entities"
)

type IDocumentoRepository interface {
	Create(ctx context.Context, d entities.Documento) (entities.Documento, error)
	GetByID(ctx context.Context, id string) (entities.Documento, error)
	List(ctx context.Context) ([]entities.Documento, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, documentos []entities.Documento) error
}
