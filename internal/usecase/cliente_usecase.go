package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"
	"gestion_oficina/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidClienteID = fmt.Errorf("invalid cliente id: %w", entities.ErrValidation)

const maxUpdateAttempts = 3

type ClienteInput struct {
	Nombre         string
	Identificacion string
	Email          string
	Telefono       string
	Direccion      string
	TipoClienteID  string
	Notas          string
}

type ClienteFilter struct {
	Activo *bool
	Q      string
}

type IClienteUseCase interface {
	Create(ctx context.Context, in ClienteInput) (entities.Cliente, error)
	Update(ctx context.Context, id string, in ClienteInput) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	List(ctx context.Context, f ClienteFilter) ([]entities.Cliente, error)
	Activate(ctx context.Context, id string) (entities.Cliente, error)
	Deactivate(ctx context.Context, id string) (entities.Cliente, error)
	CanDeactivate(ctx context.Context, id string) (bool, error)
	ListTrabajos(ctx context.Context, id string) ([]entities.Trabajo, error)
	Recalculate(ctx context.Context, id string) (entities.Cliente, error)
}

type ClienteUseCase struct {
	repo     interfaces.IClienteRepository
	trabajos interfaces.ITrabajoRepository
	ledger   ILedgerEngine
	clock    clock.Clock
	region   string
	logger   logrus.FieldLogger
}

var _ IClienteUseCase = (*ClienteUseCase)(nil)

func NewClienteUseCase(repo interfaces.IClienteRepository, trabajos interfaces.ITrabajoRepository, ledger ILedgerEngine, clk clock.Clock, phoneRegion string, logger logrus.FieldLogger) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, trabajos: trabajos, ledger: ledger, clock: clk, region: phoneRegion, logger: logger}
}

func (u *ClienteUseCase) Create(ctx context.Context, in ClienteInput) (entities.Cliente, error) {
	in, err := u.normalize(in)
	if err != nil {
		return entities.Cliente{}, err
	}
	now := u.clock.Now().UTC()
	c := entities.Cliente{
		ID:        uuid.NewString(),
		Activo:    true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyClienteInput(&c, in)

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Cliente{}, err
	}
	u.logger.WithField("cliente_id", created.ID).Info("[cliente][usecase] created")
	return created, nil
}

func (u *ClienteUseCase) Update(ctx context.Context, id string, in ClienteInput) (entities.Cliente, error) {
	in, err := u.normalize(in)
	if err != nil {
		return entities.Cliente{}, err
	}
	return u.update(ctx, id, func(c *entities.Cliente) error {
		applyClienteInput(c, in)
		return nil
	})
}

func (u *ClienteUseCase) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, entities.ErrClienteNotFound
	}
	return c, nil
}

// List filters by activo and a case-insensitive search over nombre,
// identificacion and email.
func (u *ClienteUseCase) List(ctx context.Context, f ClienteFilter) ([]entities.Cliente, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(f.Q))
	out := make([]entities.Cliente, 0, len(all))
	for _, c := range all {
		if f.Activo != nil && c.Activo != *f.Activo {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Nombre), q) &&
			!strings.Contains(strings.ToLower(c.Identificacion), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (u *ClienteUseCase) Activate(ctx context.Context, id string) (entities.Cliente, error) {
	return u.update(ctx, id, func(c *entities.Cliente) error {
		c.Activo = true
		return nil
	})
}

// Deactivate fails with entities.ErrClienteHasActiveTrabajos while the cliente
// has Pendiente or En proceso trabajos.
func (u *ClienteUseCase) Deactivate(ctx context.Context, id string) (entities.Cliente, error) {
	ok, err := u.CanDeactivate(ctx, id)
	if err != nil {
		return entities.Cliente{}, err
	}
	if !ok {
		return entities.Cliente{}, entities.ErrClienteHasActiveTrabajos
	}
	return u.update(ctx, id, func(c *entities.Cliente) error {
		c.Activo = false
		return nil
	})
}

func (u *ClienteUseCase) CanDeactivate(ctx context.Context, id string) (bool, error) {
	return u.ledger.CanDeactivateCliente(ctx, id)
}

func (u *ClienteUseCase) ListTrabajos(ctx context.Context, id string) ([]entities.Trabajo, error) {
	if _, err := u.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return u.trabajos.ListByClienteID(ctx, strings.TrimSpace(id))
}

func (u *ClienteUseCase) Recalculate(ctx context.Context, id string) (entities.Cliente, error) {
	return u.ledger.RecalculateCliente(ctx, id)
}

// update re-reads and retries when a ledger unit bumped the version in
// between.
func (u *ClienteUseCase) update(ctx context.Context, id string, mutate func(*entities.Cliente) error) (entities.Cliente, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		c, err := u.GetByID(ctx, id)
		if err != nil {
			return entities.Cliente{}, err
		}
		if err := mutate(&c); err != nil {
			return entities.Cliente{}, err
		}
		c.Version++
		c.UpdatedAt = u.clock.Now().UTC()

		updated, err := u.repo.Update(ctx, c)
		if errors.Is(err, entities.ErrVersionConflict) {
			continue
		}
		return updated, err
	}
	return entities.Cliente{}, entities.ErrVersionConflict
}

func (u *ClienteUseCase) normalize(in ClienteInput) (ClienteInput, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Identificacion = strings.TrimSpace(in.Identificacion)
	in.Email = strings.TrimSpace(in.Email)
	in.Direccion = strings.TrimSpace(in.Direccion)
	in.TipoClienteID = strings.TrimSpace(in.TipoClienteID)

	if err := checkLength("nombre", in.Nombre, 2, 120); err != nil {
		return in, err
	}
	if err := checkEmail("email", in.Email); err != nil {
		return in, err
	}
	tel, err := normalizeTelefono("telefono", in.Telefono, u.region)
	if err != nil {
		return in, err
	}
	in.Telefono = tel
	return in, nil
}

func applyClienteInput(c *entities.Cliente, in ClienteInput) {
	c.Nombre = in.Nombre
	c.Identificacion = in.Identificacion
	c.Email = in.Email
	c.Telefono = in.Telefono
	c.Direccion = in.Direccion
	c.TipoClienteID = in.TipoClienteID
	c.Notas = in.Notas
}
