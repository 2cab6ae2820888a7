package usecase

import (
	"context"
	"sort"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"
	"gestion_oficina/pkg/clock"
)

const DefaultTriageHorizonDays = 7

// IDueDateTriageUseCase produces the ordered vencimientos list.
type IDueDateTriageUseCase interface {
	Vencimientos(ctx context.Context, horizonDays int) (entities.ResumenVencimientos, error)
}

type DueDateTriage struct {
	trabajos interfaces.ITrabajoRepository
	items    interfaces.IItemRepository
	clock    clock.Clock
	loc      *time.Location
	horizon  int
}

var _ IDueDateTriageUseCase = (*DueDateTriage)(nil)

// NewDueDateTriage counts calendar days in loc. A non-positive horizon falls
// back to DefaultTriageHorizonDays.
func NewDueDateTriage(trabajos interfaces.ITrabajoRepository, items interfaces.IItemRepository, clk clock.Clock, loc *time.Location, horizon int) *DueDateTriage {
	if loc == nil {
		loc = time.Local
	}
	if horizon <= 0 {
		horizon = DefaultTriageHorizonDays
	}
	return &DueDateTriage{trabajos: trabajos, items: items, clock: clk, loc: loc, horizon: horizon}
}

// Vencimientos uses the configured horizon when horizonDays <= 0.
func (u *DueDateTriage) Vencimientos(ctx context.Context, horizonDays int) (entities.ResumenVencimientos, error) {
	if horizonDays <= 0 {
		horizonDays = u.horizon
	}
	trabajos, err := u.trabajos.List(ctx)
	if err != nil {
		return entities.ResumenVencimientos{}, err
	}
	items, err := u.items.List(ctx)
	if err != nil {
		return entities.ResumenVencimientos{}, err
	}
	return ClassifyVencimientos(trabajos, items, u.clock.Now(), u.loc, horizonDays), nil
}

// ClassifyVencimientos is the pure triage: it selects open trabajos/items with
// a due date, classifies them by calendar days left and orders the result by
// days left, trabajos before items, titulo and id.
func ClassifyVencimientos(trabajos []entities.Trabajo, items []entities.Item, now time.Time, loc *time.Location, horizonDays int) entities.ResumenVencimientos {
	var all []entities.Vencimiento

	add := func(v entities.Vencimiento) {
		v.DiasRestantes = DiasRestantes(v.FechaVencimiento, now, loc)
		urg, ok := ClassifyUrgencia(v.DiasRestantes, horizonDays)
		if !ok {
			return
		}
		v.Urgencia = urg
		all = append(all, v)
	}

	for _, t := range trabajos {
		if !t.Estado.Activo() || t.FechaFinEstimada == nil {
			continue
		}
		add(entities.Vencimiento{
			ID:               t.ID,
			TrabajoID:        t.ID,
			Tipo:             entities.TipoVencimientoTrabajo,
			Titulo:           t.Titulo,
			FechaVencimiento: *t.FechaFinEstimada,
			Estado:           string(t.Estado),
		})
	}
	for _, it := range items {
		if it.Estado.Terminado() || it.FechaFinEstimada == nil {
			continue
		}
		add(entities.Vencimiento{
			ID:               it.ID,
			TrabajoID:        it.TrabajoID,
			Tipo:             entities.TipoVencimientoItem,
			Titulo:           it.Titulo,
			FechaVencimiento: *it.FechaFinEstimada,
			Estado:           string(it.Estado),
		})
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.DiasRestantes != b.DiasRestantes {
			return a.DiasRestantes < b.DiasRestantes
		}
		if a.Tipo != b.Tipo {
			return a.Tipo == entities.TipoVencimientoTrabajo
		}
		if a.Titulo != b.Titulo {
			return a.Titulo < b.Titulo
		}
		return a.ID < b.ID
	})

	out := entities.ResumenVencimientos{
		Vencimientos: make([]entities.Vencimiento, 0, len(all)),
		Vencidos:     []entities.Vencimiento{},
		Urgentes:     []entities.Vencimiento{},
		Proximos:     []entities.Vencimiento{},
	}
	for _, v := range all {
		out.Vencimientos = append(out.Vencimientos, v)
		switch v.Urgencia {
		case entities.UrgenciaVencido:
			out.Vencidos = append(out.Vencidos, v)
		case entities.UrgenciaUrgente:
			out.Urgentes = append(out.Urgentes, v)
		default:
			out.Proximos = append(out.Proximos, v)
		}
	}
	return out
}

// DiasRestantes counts whole calendar days from now to due, both taken as
// dates in loc.
func DiasRestantes(due, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	dy, dm, dd := due.In(loc).Date()
	ny, nm, nd := now.In(loc).Date()
	// UTC midnights so DST transitions do not produce 23/25h days.
	d := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	n := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}

// ClassifyUrgencia reports false for entries beyond the horizon.
func ClassifyUrgencia(dias, horizonDays int) (entities.Urgencia, bool) {
	switch {
	case dias < 0:
		return entities.UrgenciaVencido, true
	case dias <= 1:
		return entities.UrgenciaUrgente, true
	case dias <= horizonDays:
		return entities.UrgenciaProximo, true
	}
	return "", false
}
