package entities

import "time"

type TipoVencimiento string

const (
	TipoVencimientoTrabajo TipoVencimiento = "trabajo"
	TipoVencimientoItem    TipoVencimiento = "item"
)

type Urgencia string

const (
	UrgenciaVencido Urgencia = "vencido"
	UrgenciaUrgente Urgencia = "urgente"
	UrgenciaProximo Urgencia = "proximo"
)

// Vencimiento is one due-date triage entry.
type Vencimiento struct {
	ID               string          `json:"id"`
	TrabajoID        string          `json:"trabajoId"`
	Tipo             TipoVencimiento `json:"tipo"`
	Titulo           string          `json:"titulo"`
	FechaVencimiento time.Time       `json:"fechaVencimiento"`
	DiasRestantes    int             `json:"diasRestantes"`
	Estado           string          `json:"estado"`
	Urgencia         Urgencia        `json:"urgencia"`
}

// ResumenVencimientos groups the ordered triage list by urgency tier.
type ResumenVencimientos struct {
	Vencimientos []Vencimiento `json:"vencimientos"`
	Vencidos     []Vencimiento `json:"vencidos"`
	Urgentes     []Vencimiento `json:"urgentes"`
	Proximos     []Vencimiento `json:"proximos"`
}
