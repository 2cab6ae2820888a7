package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func seed(t *testing.T) (*Store, entities.Cliente, entities.Trabajo, entities.Item) {
	t.Helper()
	ctx := context.Background()
	s := NewStore()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	c, err := s.Clientes().Create(ctx, entities.Cliente{ID: "c1", Nombre: "Ana", Activo: true, DeudaTotalActual: decimal.NewFromInt(100), Version: 1, CreatedAt: now})
	if err != nil {
		t.Fatalf("seed cliente: %v", err)
	}
	tr, err := s.Trabajos().Create(ctx, entities.Trabajo{ID: "t1", ClienteID: "c1", Estado: entities.EstadoTrabajoPendiente, CostoFinal: decimal.NewFromInt(100), SaldoPendiente: decimal.NewFromInt(100), Version: 1, CreatedAt: now})
	if err != nil {
		t.Fatalf("seed trabajo: %v", err)
	}
	it, err := s.Items().Create(ctx, entities.Item{ID: "i1", TrabajoID: "t1", CostoTotal: decimal.NewFromInt(40), Saldo: decimal.NewFromInt(40), Version: 1, CreatedAt: now})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return s, c, tr, it
}

func TestLedgerRepository_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("applies every entity and inserts the pago", func(t *testing.T) {
		s, c, tr, it := seed(t)
		tr.Version, it.Version, c.Version = 2, 2, 2
		tr.PagadoTotal = decimal.NewFromInt(10)
		err := s.Ledger().Commit(ctx, interfaces.LedgerWrite{
			Trabajo: &tr, Item: &it, Cliente: &c,
			CreatePago: &entities.Pago{ID: "p1", TrabajoID: "t1", Monto: decimal.NewFromInt(10)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := s.Trabajos().GetByID(ctx, "t1")
		if got.Version != 2 || !got.PagadoTotal.Equal(decimal.NewFromInt(10)) {
			t.Fatalf("trabajo not updated: %+v", got)
		}
		if p, _ := s.Pagos().GetByID(ctx, "p1"); p.ID != "p1" {
			t.Fatalf("pago not inserted")
		}
	})

	t.Run("stale version writes nothing", func(t *testing.T) {
		s, c, tr, it := seed(t)
		tr.Version, it.Version = 2, 2
		c.Version = 5
		tr.PagadoTotal = decimal.NewFromInt(10)
		err := s.Ledger().Commit(ctx, interfaces.LedgerWrite{
			Trabajo: &tr, Item: &it, Cliente: &c,
			CreatePago: &entities.Pago{ID: "p1", TrabajoID: "t1"},
		})
		if !errors.Is(err, entities.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
		got, _ := s.Trabajos().GetByID(ctx, "t1")
		if got.Version != 1 || !got.PagadoTotal.IsZero() {
			t.Fatalf("partial write observed: %+v", got)
		}
		if p, _ := s.Pagos().GetByID(ctx, "p1"); p.ID != "" {
			t.Fatalf("pago must not be inserted")
		}
	})

	t.Run("creating an existing trabajo conflicts", func(t *testing.T) {
		s, c, tr, _ := seed(t)
		c.Version = 2
		dup := tr
		dup.Titulo = "Duplicado"
		err := s.Ledger().Commit(ctx, interfaces.LedgerWrite{CreateTrabajo: &dup, Cliente: &c})
		if !errors.Is(err, entities.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
		if got, _ := s.Clientes().GetByID(ctx, c.ID); got.Version != 1 {
			t.Fatalf("cliente must stay untouched, got version %d", got.Version)
		}
	})

	t.Run("new trabajo and owner commit together", func(t *testing.T) {
		s, c, _, _ := seed(t)
		c.Version = 2
		c.DeudaTotalActual = decimal.NewFromInt(150)
		created := entities.Trabajo{ID: "t2", ClienteID: c.ID, CostoFinal: decimal.NewFromInt(50), SaldoPendiente: decimal.NewFromInt(50), Version: 1}
		if err := s.Ledger().Commit(ctx, interfaces.LedgerWrite{CreateTrabajo: &created, Cliente: &c}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := s.Trabajos().GetByID(ctx, "t2"); got.ID != "t2" {
			t.Fatalf("expected trabajo t2 stored")
		}
	})

	t.Run("deleting a missing pago conflicts", func(t *testing.T) {
		s, _, tr, _ := seed(t)
		tr.Version = 2
		err := s.Ledger().Commit(ctx, interfaces.LedgerWrite{Trabajo: &tr, DeletePagoID: "nope"})
		if !errors.Is(err, entities.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}

func TestEventoRepository_MarkReminderShown(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Eventos()
	if _, err := repo.Create(ctx, entities.Evento{ID: "e1", Version: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flipped, err := repo.MarkReminderShown(ctx, "e1")
	if err != nil || !flipped {
		t.Fatalf("expected first call to flip, got %v %v", flipped, err)
	}
	flipped, err = repo.MarkReminderShown(ctx, "e1")
	if err != nil || flipped {
		t.Fatalf("expected second call to be a no-op, got %v %v", flipped, err)
	}
	got, _ := repo.GetByID(ctx, "e1")
	if !got.RecordatorioMostrado || got.Version != 2 {
		t.Fatalf("unexpected evento %+v", got)
	}
	if flipped, _ := repo.MarkReminderShown(ctx, "missing"); flipped {
		t.Fatalf("missing evento must not flip")
	}
}

func TestClienteRepository_UpdateRequiresNextVersion(t *testing.T) {
	ctx := context.Background()
	s, c, _, _ := seed(t)

	c.Nombre = "Ana María"
	if _, err := s.Clientes().Update(ctx, c); !errors.Is(err, entities.ErrVersionConflict) {
		t.Fatalf("expected conflict for same version, got %v", err)
	}
	c.Version = 2
	if _, err := s.Clientes().Update(ctx, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestItemRepository_ListByTrabajoIDOrdersByOrden(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	for _, it := range []entities.Item{
		{ID: "b", TrabajoID: "t1", Orden: 2},
		{ID: "a", TrabajoID: "t1", Orden: 1},
		{ID: "z", TrabajoID: "t2", Orden: 0},
	} {
		if _, err := s.Items().Create(ctx, it); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	got, _ := s.Items().ListByTrabajoID(ctx, "t1")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestCatalogoRepository_ReplaceAllScopedToTipo(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Catalogos()
	_, _ = repo.Create(ctx, entities.CatalogoEntry{ID: "1", Tipo: entities.CatalogoCategorias, Nombre: "Civil"})
	_, _ = repo.Create(ctx, entities.CatalogoEntry{ID: "1", Tipo: entities.CatalogoTiposCliente, Nombre: "Empresa"})

	if err := repo.ReplaceAll(ctx, entities.CatalogoCategorias, []entities.CatalogoEntry{{ID: "2", Nombre: "Penal"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cats, _ := repo.ListByTipo(ctx, entities.CatalogoCategorias)
	if len(cats) != 1 || cats[0].ID != "2" || cats[0].Tipo != entities.CatalogoCategorias {
		t.Fatalf("unexpected categorias %+v", cats)
	}
	tipos, _ := repo.ListByTipo(ctx, entities.CatalogoTiposCliente)
	if len(tipos) != 1 {
		t.Fatalf("other tipo must be untouched, got %+v", tipos)
	}
}
