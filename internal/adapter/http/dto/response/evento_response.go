package response

import (
	"time"

	"gestion_oficina/internal/domain/entities"
)

type EventoResponse struct {
	ID                     string    `json:"id"`
	Titulo                 string    `json:"titulo"`
	Descripcion            string    `json:"descripcion,omitempty"`
	FechaEvento            time.Time `json:"fechaEvento"`
	Tipo                   string    `json:"tipo"`
	Origen                 string    `json:"origen"`
	TrabajoID              string    `json:"trabajoId,omitempty"`
	ClienteID              string    `json:"clienteId,omitempty"`
	RecordatorioHorasAntes int       `json:"recordatorioHorasAntes"`
	RecordatorioMostrado   bool      `json:"recordatorioMostrado"`
}

func FromEvento(e entities.Evento) EventoResponse {
	return EventoResponse{
		ID:                     e.ID,
		Titulo:                 e.Titulo,
		Descripcion:            e.Descripcion,
		FechaEvento:            e.FechaEvento,
		Tipo:                   string(e.Tipo),
		Origen:                 string(e.Origen),
		TrabajoID:              e.TrabajoID,
		ClienteID:              e.ClienteID,
		RecordatorioHorasAntes: e.RecordatorioHorasAntes,
		RecordatorioMostrado:   e.RecordatorioMostrado,
	}
}

func FromEventos(es []entities.Evento) []EventoResponse {
	out := make([]EventoResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEvento(e))
	}
	return out
}
