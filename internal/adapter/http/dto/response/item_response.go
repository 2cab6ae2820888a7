package response

import (
	"time"

	"gestion_oficina/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ItemResponse struct {
	ID               string          `json:"id"`
	TrabajoID        string          `json:"trabajoId"`
	Titulo           string          `json:"titulo"`
	Descripcion      string          `json:"descripcion,omitempty"`
	Orden            int             `json:"orden"`
	Estado           string          `json:"estado"`
	CostoTotal       decimal.Decimal `json:"costoTotal" swaggertype:"string"`
	Pagado           decimal.Decimal `json:"pagado" swaggertype:"string"`
	Saldo            decimal.Decimal `json:"saldo" swaggertype:"string"`
	FechaFinEstimada *time.Time      `json:"fechaFinEstimada,omitempty"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func FromItem(i entities.Item) ItemResponse {
	return ItemResponse{
		ID:               i.ID,
		TrabajoID:        i.TrabajoID,
		Titulo:           i.Titulo,
		Descripcion:      i.Descripcion,
		Orden:            i.Orden,
		Estado:           string(i.Estado),
		CostoTotal:       i.CostoTotal,
		Pagado:           i.Pagado,
		Saldo:            i.Saldo,
		FechaFinEstimada: i.FechaFinEstimada,
		UpdatedAt:        i.UpdatedAt,
	}
}

func FromItems(is []entities.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(is))
	for _, i := range is {
		out = append(out, FromItem(i))
	}
	return out
}
