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
	"github.com/sirupsen/logrus"
)

const (
	defaultRecordatorioHoras = 24
	maxRecordatorioHoras     = 24 * 30
)

var ErrInvalidMes = fmt.Errorf("mes must be YYYY-MM: %w", entities.ErrValidation)

type EventoInput struct {
	Titulo                 string
	Descripcion            string
	FechaEvento            time.Time
	Tipo                   entities.TipoEvento
	TrabajoID              string
	ClienteID              string
	RecordatorioHorasAntes *int
}

type IEventoUseCase interface {
	Create(ctx context.Context, in EventoInput) (entities.Evento, error)
	Update(ctx context.Context, id string, in EventoInput) (entities.Evento, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Evento, error)
	List(ctx context.Context, mes string) ([]entities.Evento, error)
	Upcoming(ctx context.Context, within time.Duration) ([]entities.Evento, error)
	SyncDueDate(ctx context.Context, due DueDate) error
}

// DueDate identifies the trabajo or item a derived vencimiento evento
// mirrors.
type DueDate struct {
	Origen    entities.OrigenEvento
	SourceID  string
	TrabajoID string
	ClienteID string
	Titulo    string
	Fecha     *time.Time
}

type EventoUseCase struct {
	repo     interfaces.IEventoRepository
	trabajos interfaces.ITrabajoRepository
	clock    clock.Clock
	loc      *time.Location
	logger   logrus.FieldLogger
}

var _ IEventoUseCase = (*EventoUseCase)(nil)

func NewEventoUseCase(repo interfaces.IEventoRepository, trabajos interfaces.ITrabajoRepository, clk clock.Clock, loc *time.Location, logger logrus.FieldLogger) *EventoUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &EventoUseCase{repo: repo, trabajos: trabajos, clock: clk, loc: loc, logger: logger}
}

func (u *EventoUseCase) Create(ctx context.Context, in EventoInput) (entities.Evento, error) {
	in, err := u.validate(ctx, in)
	if err != nil {
		return entities.Evento{}, err
	}
	now := u.clock.Now().UTC()
	e := entities.Evento{
		ID:        uuid.NewString(),
		Origen:    entities.OrigenEventoManual,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyEventoInput(&e, in)
	return u.repo.Create(ctx, e)
}

// Update re-arms the reminder when the date or the lead time changes.
func (u *EventoUseCase) Update(ctx context.Context, id string, in EventoInput) (entities.Evento, error) {
	in, err := u.validate(ctx, in)
	if err != nil {
		return entities.Evento{}, err
	}
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		e, err := u.GetByID(ctx, id)
		if err != nil {
			return entities.Evento{}, err
		}
		prevFecha, prevHoras := e.FechaEvento, e.RecordatorioHorasAntes
		applyEventoInput(&e, in)
		if !e.FechaEvento.Equal(prevFecha) || e.RecordatorioHorasAntes != prevHoras {
			e.RecordatorioMostrado = false
		}
		e.Version++
		e.UpdatedAt = u.clock.Now().UTC()

		updated, err := u.repo.Update(ctx, e)
		if errors.Is(err, entities.ErrVersionConflict) {
			continue
		}
		return updated, err
	}
	return entities.Evento{}, entities.ErrVersionConflict
}

func (u *EventoUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *EventoUseCase) GetByID(ctx context.Context, id string) (entities.Evento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Evento{}, entities.ErrInvalidID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Evento{}, err
	}
	if e.ID == "" {
		return entities.Evento{}, entities.ErrEventoNotFound
	}
	return e, nil
}

// List returns eventos in chronological order, restricted to the calendar
// month mes (YYYY-MM, local time) when given.
func (u *EventoUseCase) List(ctx context.Context, mes string) ([]entities.Evento, error) {
	from, to, err := monthRange(mes, u.loc)
	if err != nil {
		return nil, err
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if from.IsZero() {
		return all, nil
	}
	out := make([]entities.Evento, 0, len(all))
	for _, e := range all {
		if !e.FechaEvento.Before(from) && e.FechaEvento.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Upcoming returns eventos between now and now+within.
func (u *EventoUseCase) Upcoming(ctx context.Context, within time.Duration) ([]entities.Evento, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := u.clock.Now()
	limit := now.Add(within)
	out := make([]entities.Evento, 0)
	for _, e := range all {
		if !e.FechaEvento.Before(now) && !e.FechaEvento.After(limit) {
			out = append(out, e)
		}
	}
	return out, nil
}

// SyncDueDate upserts the vencimiento evento derived from a trabajo or item
// due date. A removed due date leaves the evento in place.
func (u *EventoUseCase) SyncDueDate(ctx context.Context, due DueDate) error {
	if due.Fecha == nil {
		return nil
	}
	id := "vencimiento-" + string(due.Origen) + "-" + due.SourceID
	titulo := "Vencimiento: " + due.Titulo
	now := u.clock.Now().UTC()

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		existing, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing.ID == "" {
			_, err = u.repo.Create(ctx, entities.Evento{
				ID:                     id,
				Titulo:                 titulo,
				FechaEvento:            *due.Fecha,
				Tipo:                   entities.TipoEventoVencimiento,
				Origen:                 due.Origen,
				TrabajoID:              due.TrabajoID,
				ClienteID:              due.ClienteID,
				RecordatorioHorasAntes: defaultRecordatorioHoras,
				Version:                1,
				CreatedAt:              now,
				UpdatedAt:              now,
			})
		} else {
			if existing.FechaEvento.Equal(*due.Fecha) && existing.Titulo == titulo {
				return nil
			}
			if !existing.FechaEvento.Equal(*due.Fecha) {
				existing.RecordatorioMostrado = false
			}
			existing.FechaEvento = *due.Fecha
			existing.Titulo = titulo
			existing.Version++
			existing.UpdatedAt = now
			_, err = u.repo.Update(ctx, existing)
		}
		if errors.Is(err, entities.ErrVersionConflict) {
			continue
		}
		if err == nil {
			u.logger.WithFields(logrus.Fields{"evento_id": id, "fecha": due.Fecha}).Debug("[evento][usecase] due date synced")
		}
		return err
	}
	return entities.ErrVersionConflict
}

func (u *EventoUseCase) validate(ctx context.Context, in EventoInput) (EventoInput, error) {
	in.Titulo = strings.TrimSpace(in.Titulo)
	in.TrabajoID = strings.TrimSpace(in.TrabajoID)
	in.ClienteID = strings.TrimSpace(in.ClienteID)

	if err := checkLength("titulo", in.Titulo, 2, 200); err != nil {
		return in, err
	}
	if in.FechaEvento.IsZero() {
		return in, entities.NewValidationError("fechaEvento", "required")
	}
	if in.Tipo == "" {
		in.Tipo = entities.TipoEventoOtro
	}
	if !in.Tipo.Valid() {
		return in, entities.NewValidationError("tipo", "unknown tipo")
	}
	if in.RecordatorioHorasAntes == nil {
		h := defaultRecordatorioHoras
		in.RecordatorioHorasAntes = &h
	}
	if h := *in.RecordatorioHorasAntes; h < 0 || h > maxRecordatorioHoras {
		return in, entities.NewValidationError("recordatorioHorasAntes", fmt.Sprintf("must be between 0 and %d", maxRecordatorioHoras))
	}
	if in.TrabajoID != "" {
		t, err := u.trabajos.GetByID(ctx, in.TrabajoID)
		if err != nil {
			return in, err
		}
		if t.ID == "" {
			return in, entities.ErrTrabajoNotFound
		}
		if in.ClienteID == "" {
			in.ClienteID = t.ClienteID
		}
	}
	return in, nil
}

func applyEventoInput(e *entities.Evento, in EventoInput) {
	e.Titulo = in.Titulo
	e.Descripcion = in.Descripcion
	e.FechaEvento = in.FechaEvento
	e.Tipo = in.Tipo
	e.TrabajoID = in.TrabajoID
	e.ClienteID = in.ClienteID
	e.RecordatorioHorasAntes = *in.RecordatorioHorasAntes
}

// monthRange parses YYYY-MM into [first instant, first instant of next month)
// in loc. An empty mes yields zero times.
func monthRange(mes string, loc *time.Location) (time.Time, time.Time, error) {
	mes = strings.TrimSpace(mes)
	if mes == "" {
		return time.Time{}, time.Time{}, nil
	}
	start, err := time.ParseInLocation("2006-01", mes, loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMes
	}
	return start, start.AddDate(0, 1, 0), nil
}
