package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type EstadoTrabajo string

const (
	EstadoTrabajoBorrador   EstadoTrabajo = "Borrador"
	EstadoTrabajoPendiente  EstadoTrabajo = "Pendiente"
	EstadoTrabajoEnProceso  EstadoTrabajo = "En proceso"
	EstadoTrabajoCompletado EstadoTrabajo = "Completado"
	EstadoTrabajoCancelado  EstadoTrabajo = "Cancelado"
)

func (e EstadoTrabajo) Valid() bool {
	switch e {
	case EstadoTrabajoBorrador, EstadoTrabajoPendiente, EstadoTrabajoEnProceso, EstadoTrabajoCompletado, EstadoTrabajoCancelado:
		return true
	}
	return false
}

// Activo reports whether the trabajo counts as work in progress.
func (e EstadoTrabajo) Activo() bool {
	return e == EstadoTrabajoPendiente || e == EstadoTrabajoEnProceso
}

// Trabajo is a job/case for a cliente.
//
// Balance invariant: SaldoPendiente == CostoFinal - PagadoTotal. Over-payment
// is allowed and shows up as a negative SaldoPendiente.
type Trabajo struct {
	ID                 string          `json:"id"`
	ClienteID          string          `json:"clienteId"`
	Titulo             string          `json:"titulo"`
	Descripcion        string          `json:"descripcion,omitempty"`
	TipoTrabajoID      string          `json:"tipoTrabajoId,omitempty"`
	CategoriaID        string          `json:"categoriaId,omitempty"`
	EstadoKanbanID     string          `json:"estadoKanbanId,omitempty"`
	Estado             EstadoTrabajo   `json:"estado"`
	PresupuestoInicial decimal.Decimal `json:"presupuestoInicial"`
	CostoFinal         decimal.Decimal `json:"costoFinal"`
	PagadoTotal        decimal.Decimal `json:"pagadoTotal"`
	SaldoPendiente     decimal.Decimal `json:"saldoPendiente"`
	FechaInicio        time.Time       `json:"fechaInicio"`
	FechaFinEstimada   *time.Time      `json:"fechaFinEstimada,omitempty"`
	FechaFinReal       *time.Time      `json:"fechaFinReal,omitempty"`
	Version            int64           `json:"version"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// CountsTowardsDebt reports whether the trabajo's saldo is part of the owning
// cliente's deudaTotalActual.
func (t Trabajo) CountsTowardsDebt() bool {
	return t.Estado != EstadoTrabajoCancelado
}
