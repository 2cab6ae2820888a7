package response

import (
	"time"

	"gestion_oficina/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PagoResponse struct {
	ID                string          `json:"id"`
	TrabajoID         string          `json:"trabajoId"`
	ItemID            string          `json:"itemId,omitempty"`
	ClienteID         string          `json:"clienteId"`
	Monto             decimal.Decimal `json:"monto" swaggertype:"string"`
	Fecha             time.Time       `json:"fecha"`
	MetodoPago        string          `json:"metodoPago"`
	Referencia        string          `json:"referencia,omitempty"`
	Notas             string          `json:"notas,omitempty"`
	ProviderPaymentID string          `json:"providerPaymentId,omitempty"`
	ProviderStatus    string          `json:"providerStatus,omitempty"`
}

func FromPago(p entities.Pago) PagoResponse {
	return PagoResponse{
		ID:                p.ID,
		TrabajoID:         p.TrabajoID,
		ItemID:            p.ItemID,
		ClienteID:         p.ClienteID,
		Monto:             p.Monto,
		Fecha:             p.Fecha,
		MetodoPago:        string(p.MetodoPago),
		Referencia:        p.Referencia,
		Notas:             p.Notas,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
	}
}

func FromPagos(ps []entities.Pago) []PagoResponse {
	out := make([]PagoResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPago(p))
	}
	return out
}
