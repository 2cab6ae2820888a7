package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"
	"gestion_oficina/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ItemInput struct {
	Titulo           string
	Descripcion      string
	Orden            *int
	Estado           entities.EstadoItem
	CostoTotal       decimal.Decimal
	FechaFinEstimada *time.Time
}

type IItemUseCase interface {
	Create(ctx context.Context, trabajoID string, in ItemInput) (entities.Item, error)
	Update(ctx context.Context, id string, in ItemInput) (entities.Item, error)
	ChangeEstado(ctx context.Context, id string, estado entities.EstadoItem) (entities.Item, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Item, error)
	ListByTrabajo(ctx context.Context, trabajoID string) ([]entities.Item, error)
}

type ItemUseCase struct {
	repo     interfaces.IItemRepository
	trabajos interfaces.ITrabajoRepository
	pagos    interfaces.IPagoRepository
	eventos  IEventoUseCase
	clock    clock.Clock
	logger   logrus.FieldLogger
}

var _ IItemUseCase = (*ItemUseCase)(nil)

func NewItemUseCase(repo interfaces.IItemRepository, trabajos interfaces.ITrabajoRepository, pagos interfaces.IPagoRepository, eventos IEventoUseCase, clk clock.Clock, logger logrus.FieldLogger) *ItemUseCase {
	return &ItemUseCase{repo: repo, trabajos: trabajos, pagos: pagos, eventos: eventos, clock: clk, logger: logger}
}

// Create appends the item at the end of the trabajo unless an orden is
// given.
func (u *ItemUseCase) Create(ctx context.Context, trabajoID string, in ItemInput) (entities.Item, error) {
	if in.Estado == "" {
		in.Estado = entities.EstadoItemPendiente
	}
	if err := validateItemInput(in); err != nil {
		return entities.Item{}, err
	}
	t, err := u.loadTrabajo(ctx, trabajoID)
	if err != nil {
		return entities.Item{}, err
	}

	orden := 1
	if in.Orden != nil {
		orden = *in.Orden
	} else {
		siblings, err := u.repo.ListByTrabajoID(ctx, t.ID)
		if err != nil {
			return entities.Item{}, err
		}
		for _, s := range siblings {
			if s.Orden >= orden {
				orden = s.Orden + 1
			}
		}
	}

	now := u.clock.Now().UTC()
	it := entities.Item{
		ID:        uuid.NewString(),
		TrabajoID: t.ID,
		Orden:     orden,
		Pagado:    decimal.Zero,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyItemInput(&it, in)

	created, err := u.repo.Create(ctx, it)
	if err != nil {
		return entities.Item{}, err
	}
	u.syncDueDate(ctx, t, created)
	return created, nil
}

// Update keeps pagado (ledger owned) and recomputes saldo.
func (u *ItemUseCase) Update(ctx context.Context, id string, in ItemInput) (entities.Item, error) {
	if err := validateItemInput(in); err != nil {
		return entities.Item{}, err
	}
	updated, err := u.update(ctx, id, func(it *entities.Item) {
		in := in
		if in.Estado == "" {
			in.Estado = it.Estado
		}
		if in.Orden == nil {
			o := it.Orden
			in.Orden = &o
		}
		applyItemInput(it, in)
	})
	if err != nil {
		return entities.Item{}, err
	}
	if t, err := u.loadTrabajo(ctx, updated.TrabajoID); err == nil {
		u.syncDueDate(ctx, t, updated)
	}
	return updated, nil
}

func (u *ItemUseCase) ChangeEstado(ctx context.Context, id string, estado entities.EstadoItem) (entities.Item, error) {
	if !estado.Valid() {
		return entities.Item{}, entities.NewValidationError("estado", "unknown estado")
	}
	return u.update(ctx, id, func(it *entities.Item) {
		it.Estado = estado
	})
}

// Delete refuses items that pagos still reference; reverse those first.
func (u *ItemUseCase) Delete(ctx context.Context, id string) error {
	it, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	pagos, err := u.pagos.ListByTrabajoID(ctx, it.TrabajoID)
	if err != nil {
		return err
	}
	for _, p := range pagos {
		if p.ItemID == it.ID {
			return entities.ErrItemHasPagos
		}
	}
	return u.repo.Delete(ctx, it.ID)
}

func (u *ItemUseCase) GetByID(ctx context.Context, id string) (entities.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Item{}, entities.ErrInvalidID
	}
	it, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Item{}, err
	}
	if it.ID == "" {
		return entities.Item{}, entities.ErrItemNotFound
	}
	return it, nil
}

func (u *ItemUseCase) ListByTrabajo(ctx context.Context, trabajoID string) ([]entities.Item, error) {
	t, err := u.loadTrabajo(ctx, trabajoID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByTrabajoID(ctx, t.ID)
}

func (u *ItemUseCase) update(ctx context.Context, id string, mutate func(*entities.Item)) (entities.Item, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		it, err := u.GetByID(ctx, id)
		if err != nil {
			return entities.Item{}, err
		}
		mutate(&it)
		it.Saldo = it.CostoTotal.Sub(it.Pagado)
		it.Version++
		it.UpdatedAt = u.clock.Now().UTC()

		updated, err := u.repo.Update(ctx, it)
		if errors.Is(err, entities.ErrVersionConflict) {
			continue
		}
		return updated, err
	}
	return entities.Item{}, entities.ErrVersionConflict
}

func (u *ItemUseCase) loadTrabajo(ctx context.Context, trabajoID string) (entities.Trabajo, error) {
	trabajoID = strings.TrimSpace(trabajoID)
	if trabajoID == "" {
		return entities.Trabajo{}, ErrInvalidTrabajoID
	}
	t, err := u.trabajos.GetByID(ctx, trabajoID)
	if err != nil {
		return entities.Trabajo{}, err
	}
	if t.ID == "" {
		return entities.Trabajo{}, entities.ErrTrabajoNotFound
	}
	return t, nil
}

func (u *ItemUseCase) syncDueDate(ctx context.Context, t entities.Trabajo, it entities.Item) {
	err := u.eventos.SyncDueDate(ctx, DueDate{
		Origen:    entities.OrigenEventoItem,
		SourceID:  it.ID,
		TrabajoID: t.ID,
		ClienteID: t.ClienteID,
		Titulo:    t.Titulo + " / " + it.Titulo,
		Fecha:     it.FechaFinEstimada,
	})
	if err != nil {
		u.logger.WithError(err).WithField("item_id", it.ID).Warn("[item][usecase] due date evento sync failed")
	}
}

func validateItemInput(in ItemInput) error {
	if err := checkLength("titulo", strings.TrimSpace(in.Titulo), 2, 200); err != nil {
		return err
	}
	if in.Estado != "" && !in.Estado.Valid() {
		return entities.NewValidationError("estado", "unknown estado")
	}
	if in.CostoTotal.IsNegative() {
		return entities.NewValidationError("costoTotal", "must be >= 0")
	}
	if in.Orden != nil && *in.Orden < 0 {
		return entities.NewValidationError("orden", "must be >= 0")
	}
	return nil
}

func applyItemInput(it *entities.Item, in ItemInput) {
	it.Titulo = strings.TrimSpace(in.Titulo)
	it.Descripcion = in.Descripcion
	if in.Orden != nil {
		it.Orden = *in.Orden
	}
	it.Estado = in.Estado
	it.CostoTotal = in.CostoTotal
	it.Saldo = in.CostoTotal.Sub(it.Pagado)
	it.FechaFinEstimada = in.FechaFinEstimada
}
