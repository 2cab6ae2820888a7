package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type EstadoItem string

const (
	EstadoItemPendiente        EstadoItem = "Pendiente"
	EstadoItemEnProceso        EstadoItem = "En proceso"
	EstadoItemEnRevision       EstadoItem = "En revisión"
	EstadoItemEsperandoCliente EstadoItem = "Esperando cliente"
	EstadoItemListoRetirar     EstadoItem = "Listo retirar"
	EstadoItemCompletado       EstadoItem = "Completado"
)

func (e EstadoItem) Valid() bool {
	switch e {
	case EstadoItemPendiente, EstadoItemEnProceso, EstadoItemEnRevision, EstadoItemEsperandoCliente, EstadoItemListoRetirar, EstadoItemCompletado:
		return true
	}
	return false
}

// Terminado reports whether the item no longer has a pending due date.
func (e EstadoItem) Terminado() bool {
	return e == EstadoItemCompletado || e == EstadoItemListoRetirar
}

// Item is a step within a Trabajo. Saldo == CostoTotal - Pagado.
type Item struct {
	ID               string          `json:"id"`
	TrabajoID        string          `json:"trabajoId"`
	Titulo           string          `json:"titulo"`
	Descripcion      string          `json:"descripcion,omitempty"`
	Orden            int             `json:"orden"`
	Estado           EstadoItem      `json:"estado"`
	CostoTotal       decimal.Decimal `json:"costoTotal"`
	Pagado           decimal.Decimal `json:"pagado"`
	Saldo            decimal.Decimal `json:"saldo"`
	FechaFinEstimada *time.Time      `json:"fechaFinEstimada,omitempty"`
	Version          int64           `json:"version"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
