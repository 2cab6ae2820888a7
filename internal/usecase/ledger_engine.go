package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"
	"gestion_oficina/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	ledgerMaxAttempts = 3
	ledgerLockTTL     = 15 * time.Second
	ledgerLockWait    = 5 * time.Second
)

// ILedgerEngine keeps the derived balances of Trabajo, Item and Cliente
// consistent with the Pagos that exist.
//
// Every mutation is one ledger unit: it runs under the trabajo's lock,
// re-reads what it touches and commits all entities at once with version
// checks. Version conflicts are retried a bounded number of times.
type ILedgerEngine interface {
	ApplyPayment(ctx context.Context, trabajoID string, monto decimal.Decimal, itemID string) (entities.Trabajo, error)
	ValidatePago(ctx context.Context, trabajoID, itemID string) error
	RegisterPago(ctx context.Context, p entities.Pago) (entities.Pago, error)
	RemovePago(ctx context.Context, pagoID string) (entities.Pago, error)
	CreateTrabajo(ctx context.Context, t entities.Trabajo) (entities.Trabajo, error)
	SyncTrabajo(ctx context.Context, trabajoID string, edit func(*entities.Trabajo) error) (entities.Trabajo, error)
	RecalculateCliente(ctx context.Context, clienteID string) (entities.Cliente, error)
	CanDeactivateCliente(ctx context.Context, clienteID string) (bool, error)
}

type LedgerEngine struct {
	trabajos interfaces.ITrabajoRepository
	items    interfaces.IItemRepository
	clientes interfaces.IClienteRepository
	pagos    interfaces.IPagoRepository
	ledger   interfaces.ILedgerRepository
	locker   interfaces.ILocker
	clock    clock.Clock
	logger   logrus.FieldLogger
	tracer   trace.Tracer
}

var _ ILedgerEngine = (*LedgerEngine)(nil)

func NewLedgerEngine(
	trabajos interfaces.ITrabajoRepository,
	items interfaces.IItemRepository,
	clientes interfaces.IClienteRepository,
	pagos interfaces.IPagoRepository,
	ledger interfaces.ILedgerRepository,
	locker interfaces.ILocker,
	clk clock.Clock,
	logger logrus.FieldLogger,
) *LedgerEngine {
	return &LedgerEngine{
		trabajos: trabajos,
		items:    items,
		clientes: clientes,
		pagos:    pagos,
		ledger:   ledger,
		locker:   locker,
		clock:    clk,
		logger:   logger,
		tracer:   otel.Tracer("gestion_oficina/ledger"),
	}
}

// ApplyPayment moves monto (negative to reverse) into the trabajo and the
// optional item without recording a Pago.
func (e *LedgerEngine) ApplyPayment(ctx context.Context, trabajoID string, monto decimal.Decimal, itemID string) (entities.Trabajo, error) {
	trabajoID = strings.TrimSpace(trabajoID)
	if trabajoID == "" {
		return entities.Trabajo{}, ErrInvalidTrabajoID
	}

	var out entities.Trabajo
	err := e.unit(ctx, "ledger.ApplyPayment", trabajoLockKey(trabajoID), func(ctx context.Context) (interfaces.LedgerWrite, error) {
		w, err := e.planPayment(ctx, trabajoID, itemID, monto, nil)
		if err != nil {
			return w, err
		}
		out = *w.Trabajo
		return w, nil
	})
	return out, err
}

// ValidatePago reports whether a pago for trabajoID (and itemID, when set)
// would be accepted right now. It takes no lock and writes nothing.
func (e *LedgerEngine) ValidatePago(ctx context.Context, trabajoID, itemID string) error {
	trabajoID = strings.TrimSpace(trabajoID)
	if trabajoID == "" {
		return ErrInvalidTrabajoID
	}
	t, err := e.loadTrabajo(ctx, trabajoID)
	if err != nil {
		return err
	}
	if err := acceptsPagos(t); err != nil {
		return err
	}
	if itemID = strings.TrimSpace(itemID); itemID != "" {
		if _, err := e.loadItemOf(ctx, trabajoID, itemID); err != nil {
			return err
		}
	}
	return nil
}

func (e *LedgerEngine) RegisterPago(ctx context.Context, p entities.Pago) (entities.Pago, error) {
	p.TrabajoID = strings.TrimSpace(p.TrabajoID)
	p.ItemID = strings.TrimSpace(p.ItemID)
	if p.TrabajoID == "" {
		return entities.Pago{}, ErrInvalidTrabajoID
	}
	if !p.Monto.IsPositive() {
		return entities.Pago{}, entities.ErrInvalidMonto
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := e.clock.Now().UTC()
	if p.Fecha.IsZero() {
		p.Fecha = now
	}
	p.CreatedAt = now

	err := e.unit(ctx, "ledger.RegisterPago", trabajoLockKey(p.TrabajoID), func(ctx context.Context) (interfaces.LedgerWrite, error) {
		w, err := e.planPayment(ctx, p.TrabajoID, p.ItemID, p.Monto, acceptsPagos)
		if err != nil {
			return w, err
		}
		p.ClienteID = w.Trabajo.ClienteID
		pago := p
		w.CreatePago = &pago
		return w, nil
	})
	if err != nil {
		return entities.Pago{}, err
	}
	e.logger.WithFields(logrus.Fields{"pago_id": p.ID, "trabajo_id": p.TrabajoID, "monto": p.Monto.String()}).Info("[ledger][usecase] pago registered")
	return p, nil
}

func (e *LedgerEngine) RemovePago(ctx context.Context, pagoID string) (entities.Pago, error) {
	pagoID = strings.TrimSpace(pagoID)
	if pagoID == "" {
		return entities.Pago{}, entities.ErrInvalidID
	}
	current, err := e.pagos.GetByID(ctx, pagoID)
	if err != nil {
		return entities.Pago{}, err
	}
	if current.ID == "" {
		return entities.Pago{}, entities.ErrPagoAlreadyReversed
	}

	var removed entities.Pago
	err = e.unit(ctx, "ledger.RemovePago", trabajoLockKey(current.TrabajoID), func(ctx context.Context) (interfaces.LedgerWrite, error) {
		p, err := e.pagos.GetByID(ctx, pagoID)
		if err != nil {
			return interfaces.LedgerWrite{}, err
		}
		if p.ID == "" {
			return interfaces.LedgerWrite{}, entities.ErrPagoAlreadyReversed
		}
		w, err := e.planPayment(ctx, p.TrabajoID, p.ItemID, p.Monto.Neg(), nil)
		if err != nil {
			return w, err
		}
		w.DeletePagoID = p.ID
		removed = p
		return w, nil
	})
	if err != nil {
		return entities.Pago{}, err
	}
	e.logger.WithFields(logrus.Fields{"pago_id": removed.ID, "trabajo_id": removed.TrabajoID, "monto": removed.Monto.String()}).Info("[ledger][usecase] pago reversed")
	return removed, nil
}

// CreateTrabajo stores a new trabajo and adds it to its owner's debt in one
// unit. Nothing is stored when the owner cannot be updated.
func (e *LedgerEngine) CreateTrabajo(ctx context.Context, t entities.Trabajo) (entities.Trabajo, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if strings.TrimSpace(t.ClienteID) == "" {
		return entities.Trabajo{}, ErrInvalidClienteID
	}
	if t.Version == 0 {
		t.Version = 1
	}
	t.SaldoPendiente = t.CostoFinal.Sub(t.PagadoTotal)

	err := e.unit(ctx, "ledger.CreateTrabajo", trabajoLockKey(t.ID), func(ctx context.Context) (interfaces.LedgerWrite, error) {
		c, err := e.planCliente(ctx, t)
		if err != nil {
			return interfaces.LedgerWrite{}, err
		}
		created := t
		return interfaces.LedgerWrite{CreateTrabajo: &created, Cliente: &c}, nil
	})
	if err != nil {
		return entities.Trabajo{}, err
	}
	e.logger.WithFields(logrus.Fields{"trabajo_id": t.ID, "cliente_id": t.ClienteID}).Info("[ledger][usecase] trabajo created")
	return t, nil
}

// SyncTrabajo applies edit to a fresh copy of the trabajo, then recomputes its
// saldo and the owner's debt in the same unit. edit may run more than once.
// pagadoTotal and clienteId cannot be changed through it.
func (e *LedgerEngine) SyncTrabajo(ctx context.Context, trabajoID string, edit func(*entities.Trabajo) error) (entities.Trabajo, error) {
	trabajoID = strings.TrimSpace(trabajoID)
	if trabajoID == "" {
		return entities.Trabajo{}, ErrInvalidTrabajoID
	}

	var out entities.Trabajo
	err := e.unit(ctx, "ledger.SyncTrabajo", trabajoLockKey(trabajoID), func(ctx context.Context) (interfaces.LedgerWrite, error) {
		t, err := e.loadTrabajo(ctx, trabajoID)
		if err != nil {
			return interfaces.LedgerWrite{}, err
		}
		pagado, clienteID := t.PagadoTotal, t.ClienteID
		if err := edit(&t); err != nil {
			return interfaces.LedgerWrite{}, err
		}
		t.ID, t.PagadoTotal, t.ClienteID = trabajoID, pagado, clienteID
		t.SaldoPendiente = t.CostoFinal.Sub(t.PagadoTotal)
		t.Version++
		t.UpdatedAt = e.clock.Now().UTC()

		c, err := e.planCliente(ctx, t)
		if err != nil {
			return interfaces.LedgerWrite{}, err
		}
		out = t
		return interfaces.LedgerWrite{Trabajo: &t, Cliente: &c}, nil
	})
	return out, err
}

// RecalculateCliente rewrites deudaTotalActual from the cliente's trabajos.
func (e *LedgerEngine) RecalculateCliente(ctx context.Context, clienteID string) (entities.Cliente, error) {
	clienteID = strings.TrimSpace(clienteID)
	if clienteID == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}

	var out entities.Cliente
	err := e.unit(ctx, "ledger.RecalculateCliente", "ledger:cliente:"+clienteID, func(ctx context.Context) (interfaces.LedgerWrite, error) {
		c, err := e.planCliente(ctx, entities.Trabajo{ClienteID: clienteID})
		if err != nil {
			return interfaces.LedgerWrite{}, err
		}
		out = c
		return interfaces.LedgerWrite{Cliente: &c}, nil
	})
	return out, err
}

func (e *LedgerEngine) CanDeactivateCliente(ctx context.Context, clienteID string) (bool, error) {
	clienteID = strings.TrimSpace(clienteID)
	if clienteID == "" {
		return false, ErrInvalidClienteID
	}
	c, err := e.clientes.GetByID(ctx, clienteID)
	if err != nil {
		return false, err
	}
	if c.ID == "" {
		return false, entities.ErrClienteNotFound
	}
	trabajos, err := e.trabajos.ListByClienteID(ctx, clienteID)
	if err != nil {
		return false, err
	}
	for _, t := range trabajos {
		if t.Estado.Activo() {
			return false, nil
		}
	}
	return true, nil
}

func trabajoLockKey(trabajoID string) string {
	return "ledger:trabajo:" + trabajoID
}

// unit runs plan under the lock for lockKey and commits its result, retrying
// on version conflicts.
func (e *LedgerEngine) unit(ctx context.Context, name, lockKey string, plan func(context.Context) (interfaces.LedgerWrite, error)) (err error) {
	ctx, span := e.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("ledger.lock", lockKey)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	release, err := e.locker.Obtain(ctx, lockKey, ledgerLockTTL, ledgerLockWait)
	if errors.Is(err, interfaces.ErrLockNotObtained) {
		e.logger.WithField("key", lockKey).Warn("[ledger][usecase] lock busy")
		return entities.ErrLedgerContention
	}
	if err != nil {
		return err
	}
	defer release()

	for attempt := 1; attempt <= ledgerMaxAttempts; attempt++ {
		w, err := plan(ctx)
		if err != nil {
			return err
		}
		err = e.ledger.Commit(ctx, w)
		if err == nil {
			span.SetAttributes(attribute.Int("ledger.attempts", attempt))
			return nil
		}
		if !errors.Is(err, entities.ErrVersionConflict) {
			return err
		}
		e.logger.WithFields(logrus.Fields{"key": lockKey, "attempt": attempt}).Warn("[ledger][usecase] version conflict, retrying")
	}
	return entities.ErrLedgerContention
}

// planPayment builds the unit that moves monto into the trabajo/item. check
// may veto the operation after the trabajo is loaded.
func (e *LedgerEngine) planPayment(ctx context.Context, trabajoID, itemID string, monto decimal.Decimal, check func(entities.Trabajo) error) (interfaces.LedgerWrite, error) {
	t, err := e.loadTrabajo(ctx, trabajoID)
	if err != nil {
		return interfaces.LedgerWrite{}, err
	}
	if check != nil {
		if err := check(t); err != nil {
			return interfaces.LedgerWrite{}, err
		}
	}
	now := e.clock.Now().UTC()

	var w interfaces.LedgerWrite
	if itemID != "" {
		it, err := e.loadItemOf(ctx, trabajoID, itemID)
		if err != nil {
			return w, err
		}
		it.Pagado = it.Pagado.Add(monto)
		it.Saldo = it.CostoTotal.Sub(it.Pagado)
		it.Version++
		it.UpdatedAt = now
		w.Item = &it
	}

	t.PagadoTotal = t.PagadoTotal.Add(monto)
	t.SaldoPendiente = t.CostoFinal.Sub(t.PagadoTotal)
	t.Version++
	t.UpdatedAt = now
	w.Trabajo = &t

	c, err := e.planCliente(ctx, t)
	if err != nil {
		return w, err
	}
	w.Cliente = &c
	return w, nil
}

// planCliente returns the owner of changed with its debt recomputed, using
// changed in place of the stored copy of that trabajo. ListByClienteID must
// be a strongly consistent read.
func (e *LedgerEngine) planCliente(ctx context.Context, changed entities.Trabajo) (entities.Cliente, error) {
	c, err := e.clientes.GetByID(ctx, changed.ClienteID)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, fmt.Errorf("owner of trabajo %q: %w", changed.ID, entities.ErrClienteNotFound)
	}

	listed, err := e.trabajos.ListByClienteID(ctx, c.ID)
	if err != nil {
		return entities.Cliente{}, err
	}
	deuda := decimal.Zero
	seen := false
	for _, t := range listed {
		if t.ID == changed.ID {
			seen = true
			t = changed
		}
		if t.CountsTowardsDebt() {
			deuda = deuda.Add(t.SaldoPendiente)
		}
	}
	if !seen && changed.ID != "" && changed.CountsTowardsDebt() {
		deuda = deuda.Add(changed.SaldoPendiente)
	}

	c.DeudaTotalActual = deuda
	c.Version++
	c.UpdatedAt = e.clock.Now().UTC()
	return c, nil
}

func (e *LedgerEngine) loadTrabajo(ctx context.Context, id string) (entities.Trabajo, error) {
	t, err := e.trabajos.GetByID(ctx, id)
	if err != nil {
		return entities.Trabajo{}, err
	}
	if t.ID == "" {
		return entities.Trabajo{}, entities.ErrTrabajoNotFound
	}
	return t, nil
}

func (e *LedgerEngine) loadItemOf(ctx context.Context, trabajoID, itemID string) (entities.Item, error) {
	it, err := e.items.GetByID(ctx, itemID)
	if err != nil {
		return entities.Item{}, err
	}
	if it.ID == "" {
		return entities.Item{}, entities.ErrItemNotFound
	}
	if it.TrabajoID != trabajoID {
		return entities.Item{}, entities.ErrItemNotInTrabajo
	}
	return it, nil
}

func acceptsPagos(t entities.Trabajo) error {
	if t.Estado == entities.EstadoTrabajoCancelado {
		return entities.ErrTrabajoCancelado
	}
	return nil
}
