package entities

import "time"

type TipoEvento string

const (
	TipoEventoAudiencia   TipoEvento = "audiencia"
	TipoEventoReunion     TipoEvento = "reunion"
	TipoEventoVencimiento TipoEvento = "vencimiento"
	TipoEventoTarea       TipoEvento = "tarea"
	TipoEventoOtro        TipoEvento = "otro"
)

func (t TipoEvento) Valid() bool {
	switch t {
	case TipoEventoAudiencia, TipoEventoReunion, TipoEventoVencimiento, TipoEventoTarea, TipoEventoOtro:
		return true
	}
	return false
}

// OrigenEvento tells whether an evento was entered by a user or derived from a
// Trabajo/Item due date.
type OrigenEvento string

const (
	OrigenEventoManual  OrigenEvento = "manual"
	OrigenEventoTrabajo OrigenEvento = "trabajo"
	OrigenEventoItem    OrigenEvento = "item"
)

// Evento is a calendar entry.
//
// Reminder lifecycle: pending (RecordatorioMostrado=false) -> fired
// (RecordatorioMostrado=true). A zero RecordatorioHorasAntes disables the
// reminder.
type Evento struct {
	ID                     string       `json:"id"`
	Titulo                 string       `json:"titulo"`
	Descripcion            string       `json:"descripcion,omitempty"`
	FechaEvento            time.Time    `json:"fechaEvento"`
	Tipo                   TipoEvento   `json:"tipo"`
	Origen                 OrigenEvento `json:"origen"`
	TrabajoID              string       `json:"trabajoId,omitempty"`
	ClienteID              string       `json:"clienteId,omitempty"`
	RecordatorioHorasAntes int          `json:"recordatorioHorasAntes"`
	RecordatorioMostrado   bool         `json:"recordatorioMostrado"`
	Version                int64        `json:"version"`
	CreatedAt              time.Time    `json:"createdAt"`
	UpdatedAt              time.Time    `json:"updatedAt"`
}

// ReminderWindowStart is the first instant at which the reminder may fire.
func (e Evento) ReminderWindowStart() time.Time {
	return e.FechaEvento.Add(-time.Duration(e.RecordatorioHorasAntes) * time.Hour)
}
