package usecase

import (
	"context"
	"errors"
	"testing"

	"gestion_oficina/internal/adapter/persistence/memory"
	"gestion_oficina/internal/domain/entities"
)

func TestCatalogoUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewCatalogoUseCase(memory.NewStore().Catalogos())

	e, err := uc.Create(ctx, entities.CatalogoCategorias, CatalogoInput{Nombre: " Civil ", Color: "#ff0000", Orden: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Nombre != "Civil" || !e.Activo || e.Tipo != entities.CatalogoCategorias {
		t.Fatalf("unexpected entry: %+v", e)
	}

	list, err := uc.List(ctx, entities.CatalogoCategorias)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one entry, got %+v, %v", list, err)
	}
	other, err := uc.List(ctx, entities.CatalogoTiposTrabajo)
	if err != nil || len(other) != 0 {
		t.Fatalf("expected catalogs to be scoped by tipo, got %+v, %v", other, err)
	}

	if _, err := uc.List(ctx, "colores"); !errors.Is(err, entities.ErrUnknownCatalogo) {
		t.Fatalf("expected ErrUnknownCatalogo, got %v", err)
	}
	if _, err := uc.Create(ctx, entities.CatalogoCategorias, CatalogoInput{}); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := uc.Delete(ctx, entities.CatalogoTiposTrabajo, e.ID); !errors.Is(err, entities.ErrCatalogoNotFound) {
		t.Fatalf("expected ErrCatalogoNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, entities.CatalogoCategorias, e.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
