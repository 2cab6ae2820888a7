package response

import (
	"time"

	"gestion_oficina/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type VencimientoResponse struct {
	ID               string    `json:"id"`
	TrabajoID        string    `json:"trabajoId"`
	Tipo             string    `json:"tipo"`
	Titulo           string    `json:"titulo"`
	FechaVencimiento time.Time `json:"fechaVencimiento"`
	DiasRestantes    int       `json:"diasRestantes"`
	Estado           string    `json:"estado"`
	Urgencia         string    `json:"urgencia"`
}

type VencimientosResponse struct {
	Horizonte    int                   `json:"horizonte"`
	Vencimientos []VencimientoResponse `json:"vencimientos"`
	Vencidos     []VencimientoResponse `json:"vencidos"`
	Urgentes     []VencimientoResponse `json:"urgentes"`
	Proximos     []VencimientoResponse `json:"proximos"`
}

func FromVencimientos(horizonte int, r entities.ResumenVencimientos) VencimientosResponse {
	return VencimientosResponse{
		Horizonte:    horizonte,
		Vencimientos: fromVencimientoList(r.Vencimientos),
		Vencidos:     fromVencimientoList(r.Vencidos),
		Urgentes:     fromVencimientoList(r.Urgentes),
		Proximos:     fromVencimientoList(r.Proximos),
	}
}

func fromVencimientoList(vs []entities.Vencimiento) []VencimientoResponse {
	out := make([]VencimientoResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, VencimientoResponse{
			ID:               v.ID,
			TrabajoID:        v.TrabajoID,
			Tipo:             string(v.Tipo),
			Titulo:           v.Titulo,
			FechaVencimiento: v.FechaVencimiento,
			DiasRestantes:    v.DiasRestantes,
			Estado:           v.Estado,
			Urgencia:         string(v.Urgencia),
		})
	}
	return out
}

type DashboardResponse struct {
	ClientesActivos int              `json:"clientesActivos"`
	TrabajosActivos int              `json:"trabajosActivos"`
	DeudaTotal      decimal.Decimal  `json:"deudaTotal" swaggertype:"string"`
	Vencidos        int              `json:"vencidos"`
	Urgentes        int              `json:"urgentes"`
	Vencimientos    int              `json:"vencimientos"`
	ProximosEventos []EventoResponse `json:"proximosEventos"`
}

func FromDashboard(d entities.Dashboard) DashboardResponse {
	return DashboardResponse{
		ClientesActivos: d.ClientesActivos,
		TrabajosActivos: d.TrabajosActivos,
		DeudaTotal:      d.DeudaTotal,
		Vencidos:        d.Vencidos,
		Urgentes:        d.Urgentes,
		Vencimientos:    d.Vencimientos,
		ProximosEventos: FromEventos(d.ProximosEventos),
	}
}
