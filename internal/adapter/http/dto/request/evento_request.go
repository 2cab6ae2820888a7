package request

import (
	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"
)

type EventoRequest struct {
	Titulo                 string `json:"titulo" binding:"required"`
	Descripcion            string `json:"descripcion"`
	FechaEvento            string `json:"fechaEvento" binding:"required" example:"2024-06-10T10:00:00Z"`
	Tipo                   string `json:"tipo" example:"audiencia"`
	TrabajoID              string `json:"trabajoId"`
	ClienteID              string `json:"clienteId"`
	RecordatorioHorasAntes *int   `json:"recordatorioHorasAntes" binding:"omitempty,min=0,max=720"`
}

func (r EventoRequest) ToInput() (usecase.EventoInput, error) {
	fecha, err := ParseFecha("fechaEvento", r.FechaEvento)
	if err != nil {
		return usecase.EventoInput{}, err
	}
	return usecase.EventoInput{
		Titulo:                 r.Titulo,
		Descripcion:            r.Descripcion,
		FechaEvento:            fecha,
		Tipo:                   entities.TipoEvento(r.Tipo),
		TrabajoID:              r.TrabajoID,
		ClienteID:              r.ClienteID,
		RecordatorioHorasAntes: r.RecordatorioHorasAntes,
	}, nil
}
