package entities

import "github.com/shopspring/decimal"

type Dashboard struct {
	ClientesActivos int             `json:"clientesActivos"`
	TrabajosActivos int             `json:"trabajosActivos"`
	DeudaTotal      decimal.Decimal `json:"deudaTotal"`
	Vencidos        int             `json:"vencidos"`
	Urgentes        int             `json:"urgentes"`
	Vencimientos    int             `json:"vencimientos"`
	ProximosEventos []Evento        `json:"proximosEventos"`
}
