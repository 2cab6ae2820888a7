package request

import (
	"encoding/json"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/shopspring/decimal"
)

// PagoRequest registers a payment. For metodoPago "mercadopago" the card
// payment request (token, payment_method_id, payer...) goes in mp_payload.
type PagoRequest struct {
	TrabajoID  string          `json:"trabajoId" binding:"required"`
	ItemID     string          `json:"itemId"`
	Monto      decimal.Decimal `json:"monto" swaggertype:"string" example:"100.00"`
	Fecha      string          `json:"fecha" example:"2024-06-10"`
	MetodoPago string          `json:"metodoPago" binding:"required" example:"efectivo"`
	Referencia string          `json:"referencia"`
	Notas      string          `json:"notas"`
	MPPayload  json.RawMessage `json:"mp_payload" swaggertype:"object"`
}

func (r PagoRequest) ToInput() (usecase.PagoInput, error) {
	fecha, err := ParseFecha("fecha", r.Fecha)
	if err != nil {
		return usecase.PagoInput{}, err
	}
	return usecase.PagoInput{
		TrabajoID:       r.TrabajoID,
		ItemID:          r.ItemID,
		Monto:           r.Monto,
		Fecha:           fecha,
		MetodoPago:      entities.MetodoPago(r.MetodoPago),
		Referencia:      r.Referencia,
		Notas:           r.Notas,
		ProviderPayload: r.MPPayload,
	}, nil
}
