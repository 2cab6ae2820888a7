package usecase

import (
	"context"
	"strings"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type CatalogoInput struct {
	Nombre string
	Color  string
	Orden  int
	Activo *bool
}

type ICatalogoUseCase interface {
	List(ctx context.Context, tipo entities.TipoCatalogo) ([]entities.CatalogoEntry, error)
	Create(ctx context.Context, tipo entities.TipoCatalogo, in CatalogoInput) (entities.CatalogoEntry, error)
	Delete(ctx context.Context, tipo entities.TipoCatalogo, id string) error
}

type CatalogoUseCase struct {
	repo interfaces.ICatalogoRepository
}

var _ ICatalogoUseCase = (*CatalogoUseCase)(nil)

func NewCatalogoUseCase(repo interfaces.ICatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

func (u *CatalogoUseCase) List(ctx context.Context, tipo entities.TipoCatalogo) ([]entities.CatalogoEntry, error) {
	if !tipo.Valid() {
		return nil, entities.ErrUnknownCatalogo
	}
	return u.repo.ListByTipo(ctx, tipo)
}

func (u *CatalogoUseCase) Create(ctx context.Context, tipo entities.TipoCatalogo, in CatalogoInput) (entities.CatalogoEntry, error) {
	if !tipo.Valid() {
		return entities.CatalogoEntry{}, entities.ErrUnknownCatalogo
	}
	nombre := strings.TrimSpace(in.Nombre)
	if err := checkLength("nombre", nombre, 1, 80); err != nil {
		return entities.CatalogoEntry{}, err
	}
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	return u.repo.Create(ctx, entities.CatalogoEntry{
		ID:     uuid.NewString(),
		Tipo:   tipo,
		Nombre: nombre,
		Color:  strings.TrimSpace(in.Color),
		Orden:  in.Orden,
		Activo: activo,
	})
}

func (u *CatalogoUseCase) Delete(ctx context.Context, tipo entities.TipoCatalogo, id string) error {
	if !tipo.Valid() {
		return entities.ErrUnknownCatalogo
	}
	e, err := u.repo.GetByID(ctx, tipo, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if e.ID == "" {
		return entities.ErrCatalogoNotFound
	}
	return u.repo.Delete(ctx, tipo, e.ID)
}
