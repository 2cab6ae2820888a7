package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente is a customer of the practice.
//
// DeudaTotalActual is derived: it always equals the sum of SaldoPendiente over
// the cliente's non-cancelled Trabajos and is only written by the ledger.
type Cliente struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Identificacion   string          `json:"identificacion,omitempty"`
	Email            string          `json:"email,omitempty"`
	Telefono         string          `json:"telefono,omitempty"`
	Direccion        string          `json:"direccion,omitempty"`
	TipoClienteID    string          `json:"tipoClienteId,omitempty"`
	Notas            string          `json:"notas,omitempty"`
	Activo           bool            `json:"activo"`
	DeudaTotalActual decimal.Decimal `json:"deudaTotalActual"`
	Version          int64           `json:"version"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
