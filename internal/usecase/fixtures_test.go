package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"gestion_oficina/internal/adapter/persistence/memory"
	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/infrastructure/locking"
	"gestion_oficina/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return &t
}

// officeEnv wires every use case over one in-memory store and a movable
// clock.
type officeEnv struct {
	store    *memory.Store
	now      time.Time
	ledger   *LedgerEngine
	clientes *ClienteUseCase
	trabajos *TrabajoUseCase
	items    *ItemUseCase
	pagos    *PagoUseCase
	eventos  *EventoUseCase
}

func newOfficeEnv(t *testing.T) *officeEnv {
	t.Helper()
	env := &officeEnv{
		store: memory.NewStore(),
		now:   time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
	}
	clk := clock.NewFunc(func() time.Time { return env.now })
	log := quietLogger()
	s := env.store

	env.ledger = NewLedgerEngine(s.Trabajos(), s.Items(), s.Clientes(), s.Pagos(), s.Ledger(), locking.NewLocalLocker(), clk, log)
	env.eventos = NewEventoUseCase(s.Eventos(), s.Trabajos(), clk, time.UTC, log)
	env.clientes = NewClienteUseCase(s.Clientes(), s.Trabajos(), env.ledger, clk, "AR", log)
	env.trabajos = NewTrabajoUseCase(s.Trabajos(), s.Clientes(), s.Items(), s.Pagos(), env.ledger, env.eventos, clk, log)
	env.items = NewItemUseCase(s.Items(), s.Trabajos(), s.Pagos(), env.eventos, clk, log)
	env.pagos = NewPagoUseCase(s.Pagos(), s.Trabajos(), env.ledger, nil, PagoGatewayOptions{}, log)
	return env
}

func (env *officeEnv) cliente(t *testing.T, nombre string) entities.Cliente {
	t.Helper()
	c, err := env.clientes.Create(context.Background(), ClienteInput{Nombre: nombre})
	if err != nil {
		t.Fatalf("create cliente: %v", err)
	}
	return c
}

func (env *officeEnv) trabajo(t *testing.T, clienteID, titulo, costo string) entities.Trabajo {
	t.Helper()
	tr, err := env.trabajos.Create(context.Background(), TrabajoInput{
		ClienteID:          clienteID,
		Titulo:             titulo,
		PresupuestoInicial: dec(costo),
	})
	if err != nil {
		t.Fatalf("create trabajo: %v", err)
	}
	return tr
}

func (env *officeEnv) item(t *testing.T, trabajoID, titulo, costo string) entities.Item {
	t.Helper()
	it, err := env.items.Create(context.Background(), trabajoID, ItemInput{Titulo: titulo, CostoTotal: dec(costo)})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	return it
}

func (env *officeEnv) getTrabajo(t *testing.T, id string) entities.Trabajo {
	t.Helper()
	tr, err := env.trabajos.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get trabajo: %v", err)
	}
	return tr
}

func (env *officeEnv) getCliente(t *testing.T, id string) entities.Cliente {
	t.Helper()
	c, err := env.clientes.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get cliente: %v", err)
	}
	return c
}

func assertDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("%s: expected %s, got %s", field, want, got.String())
	}
}
