package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/infrastructure/locking"
	"gestion_oficina/internal/usecase/interfaces"
	mock_interfaces "gestion_oficina/internal/usecase/interfaces/mocks"
	"gestion_oficina/pkg/clock"

	"go.uber.org/mock/gomock"
)

func TestTrabajoUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and debt", func(t *testing.T) {
		env := newOfficeEnv(t)
		c := env.cliente(t, "Quique Lamas")

		tr, err := env.trabajos.Create(ctx, TrabajoInput{ClienteID: c.ID, Titulo: "Sucesión", PresupuestoInicial: dec("1200")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.Estado != entities.EstadoTrabajoPendiente {
			t.Fatalf("expected estado Pendiente, got %s", tr.Estado)
		}
		assertDecimal(t, "costoFinal", tr.CostoFinal, "1200")
		assertDecimal(t, "saldo", tr.SaldoPendiente, "1200")
		if !tr.FechaInicio.Equal(env.now) {
			t.Fatalf("expected fechaInicio %s, got %s", env.now, tr.FechaInicio)
		}
		assertDecimal(t, "deuda", env.getCliente(t, c.ID).DeudaTotalActual, "1200")
	})

	t.Run("failed debt update stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newOfficeEnv(t)
		c := env.cliente(t, "Quique Lamas")

		s := env.store
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		ledgerRepo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w interfaces.LedgerWrite) error {
			if w.CreateTrabajo == nil || w.Cliente == nil {
				t.Fatalf("expected trabajo and cliente in one unit, got %+v", w)
			}
			return errors.New("transaction canceled")
		})
		engine := NewLedgerEngine(s.Trabajos(), s.Items(), s.Clientes(), s.Pagos(), ledgerRepo, locking.NewLocalLocker(), clock.NewFixed(env.now), quietLogger())
		uc := NewTrabajoUseCase(s.Trabajos(), s.Clientes(), s.Items(), s.Pagos(), engine, env.eventos, clock.NewFixed(env.now), quietLogger())

		if _, err := uc.Create(ctx, TrabajoInput{ClienteID: c.ID, Titulo: "Sucesión", PresupuestoInicial: dec("1200")}); err == nil {
			t.Fatal("expected error")
		}
		stored, err := s.Trabajos().ListByClienteID(ctx, c.ID)
		if err != nil || len(stored) != 0 {
			t.Fatalf("expected no stored trabajo, got %d, %v", len(stored), err)
		}
		assertDecimal(t, "deuda", env.getCliente(t, c.ID).DeudaTotalActual, "0")
	})

	t.Run("unknown cliente", func(t *testing.T) {
		env := newOfficeEnv(t)
		_, err := env.trabajos.Create(ctx, TrabajoInput{ClienteID: "missing", Titulo: "Sucesión"})
		if !errors.Is(err, entities.ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("due date before start", func(t *testing.T) {
		env := newOfficeEnv(t)
		c := env.cliente(t, "Rosa Maldonado")
		_, err := env.trabajos.Create(ctx, TrabajoInput{
			ClienteID:        c.ID,
			Titulo:           "Sucesión",
			FechaInicio:      time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			FechaFinEstimada: datePtr(2024, time.June, 1),
		})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("due date derives vencimiento evento", func(t *testing.T) {
		env := newOfficeEnv(t)
		c := env.cliente(t, "Santiago Vera")
		tr, err := env.trabajos.Create(ctx, TrabajoInput{ClienteID: c.ID, Titulo: "Apelación", FechaFinEstimada: datePtr(2024, time.June, 20)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		e, err := env.eventos.GetByID(ctx, "vencimiento-trabajo-"+tr.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Titulo != "Vencimiento: Apelación" || e.Tipo != entities.TipoEventoVencimiento || e.ClienteID != c.ID {
			t.Fatalf("unexpected evento: %+v", e)
		}
	})
}

func TestTrabajoUseCase_Update(t *testing.T) {
	ctx := context.Background()
	env := newOfficeEnv(t)
	c := env.cliente(t, "Teresa Álvarez")
	tr := env.trabajo(t, c.ID, "Sucesión", "100")

	t.Run("clienteId cannot change", func(t *testing.T) {
		other := env.cliente(t, "Otro")
		_, err := env.trabajos.Update(ctx, tr.ID, TrabajoInput{ClienteID: other.ID, Titulo: "Sucesión"})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown trabajo", func(t *testing.T) {
		_, err := env.trabajos.Update(ctx, "missing", TrabajoInput{Titulo: "Sucesión"})
		if !errors.Is(err, entities.ErrTrabajoNotFound) {
			t.Fatalf("expected ErrTrabajoNotFound, got %v", err)
		}
	})

	t.Run("moving the due date moves the evento", func(t *testing.T) {
		if _, err := env.trabajos.Update(ctx, tr.ID, TrabajoInput{Titulo: "Sucesión", PresupuestoInicial: dec("100"), FechaFinEstimada: datePtr(2024, time.June, 15)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := env.store.Eventos().MarkReminderShown(ctx, "vencimiento-trabajo-"+tr.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := env.trabajos.Update(ctx, tr.ID, TrabajoInput{Titulo: "Sucesión", PresupuestoInicial: dec("100"), FechaFinEstimada: datePtr(2024, time.June, 18)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		e, err := env.eventos.GetByID(ctx, "vencimiento-trabajo-"+tr.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !e.FechaEvento.Equal(*datePtr(2024, time.June, 18)) || e.RecordatorioMostrado {
			t.Fatalf("expected re-armed evento on the new date, got %+v", e)
		}
	})
}

func TestTrabajoUseCase_ChangeEstado(t *testing.T) {
	ctx := context.Background()
	env := newOfficeEnv(t)
	c := env.cliente(t, "Ulises Campos")
	tr := env.trabajo(t, c.ID, "Sucesión", "100")

	done, err := env.trabajos.ChangeEstado(ctx, tr.ID, entities.EstadoTrabajoCompletado)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.FechaFinReal == nil || !done.FechaFinReal.Equal(env.now) {
		t.Fatalf("expected fechaFinReal stamped, got %v", done.FechaFinReal)
	}

	reopened, err := env.trabajos.ChangeEstado(ctx, tr.ID, entities.EstadoTrabajoEnProceso)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reopened.FechaFinReal != nil {
		t.Fatalf("expected fechaFinReal cleared")
	}

	if _, err := env.trabajos.ChangeEstado(ctx, tr.ID, "Archivado"); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestTrabajoUseCase_GetDetalleAndList(t *testing.T) {
	ctx := context.Background()
	env := newOfficeEnv(t)
	c := env.cliente(t, "Valeria Ibarra")
	tr := env.trabajo(t, c.ID, "Sucesión", "300")
	env.item(t, tr.ID, "Paso 1", "100")
	if _, err := env.pagos.Create(ctx, PagoInput{TrabajoID: tr.ID, Monto: dec("50"), MetodoPago: entities.MetodoPagoEfectivo}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := env.trabajo(t, c.ID, "Otro", "10")
	if _, err := env.trabajos.ChangeEstado(ctx, other.ID, entities.EstadoTrabajoCancelado); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := env.trabajos.GetDetalle(ctx, tr.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Items) != 1 || len(d.Pagos) != 1 {
		t.Fatalf("unexpected detalle: %+v", d)
	}

	list, err := env.trabajos.List(ctx, TrabajoFilter{ClienteID: c.ID, Estado: entities.EstadoTrabajoCancelado})
	if err != nil || len(list) != 1 || list[0].ID != other.ID {
		t.Fatalf("unexpected filtered list: %+v, %v", list, err)
	}
}
