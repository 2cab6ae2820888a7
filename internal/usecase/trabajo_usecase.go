package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"
	"gestion_oficina/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrInvalidTrabajoID = fmt.Errorf("invalid trabajo id: %w", entities.ErrValidation)

type TrabajoInput struct {
	ClienteID          string
	Titulo             string
	Descripcion        string
	TipoTrabajoID      string
	CategoriaID        string
	EstadoKanbanID     string
	Estado             entities.EstadoTrabajo
	PresupuestoInicial decimal.Decimal
	// CostoFinal defaults to PresupuestoInicial when nil.
	CostoFinal       *decimal.Decimal
	FechaInicio      time.Time
	FechaFinEstimada *time.Time
}

type TrabajoFilter struct {
	ClienteID string
	Estado    entities.EstadoTrabajo
}

// TrabajoDetalle is a trabajo with its items and pagos.
type TrabajoDetalle struct {
	Trabajo entities.Trabajo
	Items   []entities.Item
	Pagos   []entities.Pago
}

type ITrabajoUseCase interface {
	Create(ctx context.Context, in TrabajoInput) (entities.Trabajo, error)
	Update(ctx context.Context, id string, in TrabajoInput) (entities.Trabajo, error)
	ChangeEstado(ctx context.Context, id string, estado entities.EstadoTrabajo) (entities.Trabajo, error)
	GetByID(ctx context.Context, id string) (entities.Trabajo, error)
	GetDetalle(ctx context.Context, id string) (TrabajoDetalle, error)
	List(ctx context.Context, f TrabajoFilter) ([]entities.Trabajo, error)
}

type TrabajoUseCase struct {
	repo     interfaces.ITrabajoRepository
	clientes interfaces.IClienteRepository
	items    interfaces.IItemRepository
	pagos    interfaces.IPagoRepository
	ledger   ILedgerEngine
	eventos  IEventoUseCase
	clock    clock.Clock
	logger   logrus.FieldLogger
}

var _ ITrabajoUseCase = (*TrabajoUseCase)(nil)

func NewTrabajoUseCase(
	repo interfaces.ITrabajoRepository,
	clientes interfaces.IClienteRepository,
	items interfaces.IItemRepository,
	pagos interfaces.IPagoRepository,
	ledger ILedgerEngine,
	eventos IEventoUseCase,
	clk clock.Clock,
	logger logrus.FieldLogger,
) *TrabajoUseCase {
	return &TrabajoUseCase{repo: repo, clientes: clientes, items: items, pagos: pagos, ledger: ledger, eventos: eventos, clock: clk, logger: logger}
}

// Create stores the trabajo with saldoPendiente = costoFinal and adds it to
// the owner's debt in the same ledger unit.
func (u *TrabajoUseCase) Create(ctx context.Context, in TrabajoInput) (entities.Trabajo, error) {
	in.ClienteID = strings.TrimSpace(in.ClienteID)
	if in.ClienteID == "" {
		return entities.Trabajo{}, entities.NewValidationError("clienteId", "required")
	}
	if in.Estado == "" {
		in.Estado = entities.EstadoTrabajoPendiente
	}
	now := u.clock.Now().UTC()
	if in.FechaInicio.IsZero() {
		in.FechaInicio = now
	}
	if err := validateTrabajoInput(in); err != nil {
		return entities.Trabajo{}, err
	}

	c, err := u.clientes.GetByID(ctx, in.ClienteID)
	if err != nil {
		return entities.Trabajo{}, err
	}
	if c.ID == "" {
		return entities.Trabajo{}, entities.ErrClienteNotFound
	}
	if !c.Activo {
		return entities.Trabajo{}, entities.ErrClienteInactive
	}

	t := entities.Trabajo{
		ID:          uuid.NewString(),
		ClienteID:   c.ID,
		PagadoTotal: decimal.Zero,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyTrabajoInput(&t, in, now)
	t.SaldoPendiente = t.CostoFinal

	created, err := u.ledger.CreateTrabajo(ctx, t)
	if err != nil {
		u.logger.WithError(err).WithField("trabajo_id", t.ID).Warn("[trabajo][usecase] create rejected by ledger")
		return entities.Trabajo{}, err
	}
	u.syncDueDate(ctx, created)
	u.logger.WithFields(logrus.Fields{"trabajo_id": created.ID, "cliente_id": created.ClienteID}).Info("[trabajo][usecase] created")
	return created, nil
}

// Update edits the trabajo through the ledger so saldoPendiente and the
// cliente's debt follow costoFinal/estado. clienteId cannot change.
func (u *TrabajoUseCase) Update(ctx context.Context, id string, in TrabajoInput) (entities.Trabajo, error) {
	if err := validateTrabajoInput(in); err != nil {
		return entities.Trabajo{}, err
	}
	clienteID := strings.TrimSpace(in.ClienteID)
	now := u.clock.Now().UTC()

	updated, err := u.ledger.SyncTrabajo(ctx, id, func(t *entities.Trabajo) error {
		in := in
		if clienteID != "" && clienteID != t.ClienteID {
			return entities.NewValidationError("clienteId", "cannot be changed")
		}
		if in.Estado == "" {
			in.Estado = t.Estado
		}
		if in.FechaInicio.IsZero() {
			in.FechaInicio = t.FechaInicio
		}
		if err := checkDateOrder("fechaFinEstimada", in.FechaInicio, in.FechaFinEstimada); err != nil {
			return err
		}
		applyTrabajoInput(t, in, now)
		return nil
	})
	if err != nil {
		return entities.Trabajo{}, err
	}
	u.syncDueDate(ctx, updated)
	return updated, nil
}

// ChangeEstado stamps fechaFinReal when the trabajo is completed and clears it
// when it is reopened.
func (u *TrabajoUseCase) ChangeEstado(ctx context.Context, id string, estado entities.EstadoTrabajo) (entities.Trabajo, error) {
	if !estado.Valid() {
		return entities.Trabajo{}, entities.NewValidationError("estado", "unknown estado")
	}
	now := u.clock.Now().UTC()
	return u.ledger.SyncTrabajo(ctx, id, func(t *entities.Trabajo) error {
		setEstadoTrabajo(t, estado, now)
		return nil
	})
}

func (u *TrabajoUseCase) GetByID(ctx context.Context, id string) (entities.Trabajo, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Trabajo{}, ErrInvalidTrabajoID
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Trabajo{}, err
	}
	if t.ID == "" {
		return entities.Trabajo{}, entities.ErrTrabajoNotFound
	}
	return t, nil
}

func (u *TrabajoUseCase) GetDetalle(ctx context.Context, id string) (TrabajoDetalle, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return TrabajoDetalle{}, err
	}
	items, err := u.items.ListByTrabajoID(ctx, t.ID)
	if err != nil {
		return TrabajoDetalle{}, err
	}
	pagos, err := u.pagos.ListByTrabajoID(ctx, t.ID)
	if err != nil {
		return TrabajoDetalle{}, err
	}
	return TrabajoDetalle{Trabajo: t, Items: items, Pagos: pagos}, nil
}

func (u *TrabajoUseCase) List(ctx context.Context, f TrabajoFilter) ([]entities.Trabajo, error) {
	var (
		all []entities.Trabajo
		err error
	)
	if id := strings.TrimSpace(f.ClienteID); id != "" {
		all, err = u.repo.ListByClienteID(ctx, id)
	} else {
		all, err = u.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	if f.Estado == "" {
		return all, nil
	}
	out := make([]entities.Trabajo, 0, len(all))
	for _, t := range all {
		if t.Estado == f.Estado {
			out = append(out, t)
		}
	}
	return out, nil
}

// syncDueDate is best effort: the trabajo is already committed.
func (u *TrabajoUseCase) syncDueDate(ctx context.Context, t entities.Trabajo) {
	err := u.eventos.SyncDueDate(ctx, DueDate{
		Origen:    entities.OrigenEventoTrabajo,
		SourceID:  t.ID,
		TrabajoID: t.ID,
		ClienteID: t.ClienteID,
		Titulo:    t.Titulo,
		Fecha:     t.FechaFinEstimada,
	})
	if err != nil {
		u.logger.WithError(err).WithField("trabajo_id", t.ID).Warn("[trabajo][usecase] due date evento sync failed")
	}
}

func validateTrabajoInput(in TrabajoInput) error {
	if err := checkLength("titulo", strings.TrimSpace(in.Titulo), 2, 200); err != nil {
		return err
	}
	if in.Estado != "" && !in.Estado.Valid() {
		return entities.NewValidationError("estado", "unknown estado")
	}
	if in.PresupuestoInicial.IsNegative() {
		return entities.NewValidationError("presupuestoInicial", "must be >= 0")
	}
	if in.CostoFinal != nil && in.CostoFinal.IsNegative() {
		return entities.NewValidationError("costoFinal", "must be >= 0")
	}
	return checkDateOrder("fechaFinEstimada", in.FechaInicio, in.FechaFinEstimada)
}

func applyTrabajoInput(t *entities.Trabajo, in TrabajoInput, now time.Time) {
	t.Titulo = strings.TrimSpace(in.Titulo)
	t.Descripcion = in.Descripcion
	t.TipoTrabajoID = strings.TrimSpace(in.TipoTrabajoID)
	t.CategoriaID = strings.TrimSpace(in.CategoriaID)
	t.EstadoKanbanID = strings.TrimSpace(in.EstadoKanbanID)
	t.PresupuestoInicial = in.PresupuestoInicial
	if in.CostoFinal != nil {
		t.CostoFinal = *in.CostoFinal
	} else {
		t.CostoFinal = in.PresupuestoInicial
	}
	t.FechaInicio = in.FechaInicio
	t.FechaFinEstimada = in.FechaFinEstimada
	setEstadoTrabajo(t, in.Estado, now)
}

func setEstadoTrabajo(t *entities.Trabajo, estado entities.EstadoTrabajo, now time.Time) {
	if estado == entities.EstadoTrabajoCompletado && t.FechaFinReal == nil {
		t.FechaFinReal = &now
	}
	if estado != entities.EstadoTrabajoCompletado {
		t.FechaFinReal = nil
	}
	t.Estado = estado
}
