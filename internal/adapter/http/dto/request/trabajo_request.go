package request

import (
	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/shopspring/decimal"
)

// TrabajoRequest is used for both create and update. On update clienteId may
// be omitted; sending a different one is rejected.
type TrabajoRequest struct {
	ClienteID          string           `json:"clienteId"`
	Titulo             string           `json:"titulo" binding:"required"`
	Descripcion        string           `json:"descripcion"`
	TipoTrabajoID      string           `json:"tipoTrabajoId"`
	CategoriaID        string           `json:"categoriaId"`
	EstadoKanbanID     string           `json:"estadoKanbanId"`
	Estado             string           `json:"estado"`
	PresupuestoInicial decimal.Decimal  `json:"presupuestoInicial" swaggertype:"string" example:"1500.00"`
	CostoFinal         *decimal.Decimal `json:"costoFinal" swaggertype:"string" example:"1800.00"`
	FechaInicio        string           `json:"fechaInicio" example:"2024-06-01"`
	FechaFinEstimada   *string          `json:"fechaFinEstimada" example:"2024-06-30"`
}

func (r TrabajoRequest) ToInput() (usecase.TrabajoInput, error) {
	inicio, err := ParseFecha("fechaInicio", r.FechaInicio)
	if err != nil {
		return usecase.TrabajoInput{}, err
	}
	fin, err := ParseFechaOptional("fechaFinEstimada", r.FechaFinEstimada)
	if err != nil {
		return usecase.TrabajoInput{}, err
	}
	return usecase.TrabajoInput{
		ClienteID:          r.ClienteID,
		Titulo:             r.Titulo,
		Descripcion:        r.Descripcion,
		TipoTrabajoID:      r.TipoTrabajoID,
		CategoriaID:        r.CategoriaID,
		EstadoKanbanID:     r.EstadoKanbanID,
		Estado:             entities.EstadoTrabajo(r.Estado),
		PresupuestoInicial: r.PresupuestoInicial,
		CostoFinal:         r.CostoFinal,
		FechaInicio:        inicio,
		FechaFinEstimada:   fin,
	}, nil
}

type EstadoRequest struct {
	Estado string `json:"estado" binding:"required"`
}
