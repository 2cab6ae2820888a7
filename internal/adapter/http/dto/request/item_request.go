package request

import (
	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/shopspring/decimal"
)

type ItemRequest struct {
	Titulo           string          `json:"titulo" binding:"required"`
	Descripcion      string          `json:"descripcion"`
	Orden            *int            `json:"orden" binding:"omitempty,min=1"`
	Estado           string          `json:"estado"`
	CostoTotal       decimal.Decimal `json:"costoTotal" swaggertype:"string" example:"250.00"`
	FechaFinEstimada *string         `json:"fechaFinEstimada" example:"2024-06-15"`
}

func (r ItemRequest) ToInput() (usecase.ItemInput, error) {
	fin, err := ParseFechaOptional("fechaFinEstimada", r.FechaFinEstimada)
	if err != nil {
		return usecase.ItemInput{}, err
	}
	return usecase.ItemInput{
		Titulo:           r.Titulo,
		Descripcion:      r.Descripcion,
		Orden:            r.Orden,
		Estado:           entities.EstadoItem(r.Estado),
		CostoTotal:       r.CostoTotal,
		FechaFinEstimada: fin,
	}, nil
}
