package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type MetodoPago string

const (
	MetodoPagoEfectivo      MetodoPago = "efectivo"
	MetodoPagoTransferencia MetodoPago = "transferencia"
	MetodoPagoTarjeta       MetodoPago = "tarjeta"
	MetodoPagoCheque        MetodoPago = "cheque"
	MetodoPagoMercadoPago   MetodoPago = "mercadopago"
)

func (m MetodoPago) Valid() bool {
	switch m {
	case MetodoPagoEfectivo, MetodoPagoTransferencia, MetodoPagoTarjeta, MetodoPagoCheque, MetodoPagoMercadoPago:
		return true
	}
	return false
}

// Pago is a payment against a Trabajo and, optionally, one of its Items.
// A Pago is immutable once created; it can only be deleted, which reverses it.
type Pago struct {
	ID                string          `json:"id"`
	TrabajoID         string          `json:"trabajoId"`
	ItemID            string          `json:"itemId,omitempty"`
	ClienteID         string          `json:"clienteId"`
	Monto             decimal.Decimal `json:"monto"`
	Fecha             time.Time       `json:"fecha"`
	MetodoPago        MetodoPago      `json:"metodoPago"`
	Referencia        string          `json:"referencia,omitempty"`
	Notas             string          `json:"notas,omitempty"`
	ProviderPaymentID string          `json:"providerPaymentId,omitempty"`
	ProviderStatus    string          `json:"providerStatus,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}
