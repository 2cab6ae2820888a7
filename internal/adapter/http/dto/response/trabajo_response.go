package response

import (
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/shopspring/decimal"
)

type TrabajoResponse struct {
	ID                 string          `json:"id"`
	ClienteID          string          `json:"clienteId"`
	Titulo             string          `json:"titulo"`
	Descripcion        string          `json:"descripcion,omitempty"`
	TipoTrabajoID      string          `json:"tipoTrabajoId,omitempty"`
	CategoriaID        string          `json:"categoriaId,omitempty"`
	EstadoKanbanID     string          `json:"estadoKanbanId,omitempty"`
	Estado             string          `json:"estado"`
	PresupuestoInicial decimal.Decimal `json:"presupuestoInicial" swaggertype:"string"`
	CostoFinal         decimal.Decimal `json:"costoFinal" swaggertype:"string"`
	PagadoTotal        decimal.Decimal `json:"pagadoTotal" swaggertype:"string"`
	SaldoPendiente     decimal.Decimal `json:"saldoPendiente" swaggertype:"string"`
	FechaInicio        time.Time       `json:"fechaInicio"`
	FechaFinEstimada   *time.Time      `json:"fechaFinEstimada,omitempty"`
	FechaFinReal       *time.Time      `json:"fechaFinReal,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func FromTrabajo(t entities.Trabajo) TrabajoResponse {
	return TrabajoResponse{
		ID:                 t.ID,
		ClienteID:          t.ClienteID,
		Titulo:             t.Titulo,
		Descripcion:        t.Descripcion,
		TipoTrabajoID:      t.TipoTrabajoID,
		CategoriaID:        t.CategoriaID,
		EstadoKanbanID:     t.EstadoKanbanID,
		Estado:             string(t.Estado),
		PresupuestoInicial: t.PresupuestoInicial,
		CostoFinal:         t.CostoFinal,
		PagadoTotal:        t.PagadoTotal,
		SaldoPendiente:     t.SaldoPendiente,
		FechaInicio:        t.FechaInicio,
		FechaFinEstimada:   t.FechaFinEstimada,
		FechaFinReal:       t.FechaFinReal,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func FromTrabajos(ts []entities.Trabajo) []TrabajoResponse {
	out := make([]TrabajoResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTrabajo(t))
	}
	return out
}

// TrabajoDetalleResponse is a trabajo with its items and pagos.
type TrabajoDetalleResponse struct {
	TrabajoResponse
	Items []ItemResponse `json:"items"`
	Pagos []PagoResponse `json:"pagos"`
}

func FromTrabajoDetalle(d usecase.TrabajoDetalle) TrabajoDetalleResponse {
	return TrabajoDetalleResponse{
		TrabajoResponse: FromTrabajo(d.Trabajo),
		Items:           FromItems(d.Items),
		Pagos:           FromPagos(d.Pagos),
	}
}
