package response

import (
	"time"

	"gestion_oficina/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ClienteResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Identificacion   string          `json:"identificacion,omitempty"`
	Email            string          `json:"email,omitempty"`
	Telefono         string          `json:"telefono,omitempty"`
	Direccion        string          `json:"direccion,omitempty"`
	TipoClienteID    string          `json:"tipoClienteId,omitempty"`
	Notas            string          `json:"notas,omitempty"`
	Activo           bool            `json:"activo"`
	DeudaTotalActual decimal.Decimal `json:"deudaTotalActual" swaggertype:"string" example:"350.00"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func FromCliente(c entities.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:               c.ID,
		Nombre:           c.Nombre,
		Identificacion:   c.Identificacion,
		Email:            c.Email,
		Telefono:         c.Telefono,
		Direccion:        c.Direccion,
		TipoClienteID:    c.TipoClienteID,
		Notas:            c.Notas,
		Activo:           c.Activo,
		DeudaTotalActual: c.DeudaTotalActual,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromClientes(cs []entities.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCliente(c))
	}
	return out
}

type CanDeactivateResponse struct {
	ClienteID     string `json:"clienteId"`
	CanDeactivate bool   `json:"canDeactivate"`
}
