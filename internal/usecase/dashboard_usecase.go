package usecase

import (
	"context"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const dashboardUpcomingWindow = 7 * 24 * time.Hour

type IDashboardUseCase interface {
	Resumen(ctx context.Context) (entities.Dashboard, error)
}

type DashboardUseCase struct {
	clientes interfaces.IClienteRepository
	trabajos interfaces.ITrabajoRepository
	triage   IDueDateTriageUseCase
	eventos  IEventoUseCase
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(clientes interfaces.IClienteRepository, trabajos interfaces.ITrabajoRepository, triage IDueDateTriageUseCase, eventos IEventoUseCase) *DashboardUseCase {
	return &DashboardUseCase{clientes: clientes, trabajos: trabajos, triage: triage, eventos: eventos}
}

func (u *DashboardUseCase) Resumen(ctx context.Context) (entities.Dashboard, error) {
	out := entities.Dashboard{DeudaTotal: decimal.Zero}

	clientes, err := u.clientes.List(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	for _, c := range clientes {
		if c.Activo {
			out.ClientesActivos++
		}
		out.DeudaTotal = out.DeudaTotal.Add(c.DeudaTotalActual)
	}

	trabajos, err := u.trabajos.List(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	for _, t := range trabajos {
		if t.Estado.Activo() {
			out.TrabajosActivos++
		}
	}

	resumen, err := u.triage.Vencimientos(ctx, 0)
	if err != nil {
		return entities.Dashboard{}, err
	}
	out.Vencidos = len(resumen.Vencidos)
	out.Urgentes = len(resumen.Urgentes)
	out.Vencimientos = len(resumen.Vencimientos)

	if out.ProximosEventos, err = u.eventos.Upcoming(ctx, dashboardUpcomingWindow); err != nil {
		return entities.Dashboard{}, err
	}
	return out, nil
}
