package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"gestion_oficina/internal/adapter/http/handlers/mocks"
	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPagoRouter(t *testing.T) (*gin.Engine, *mocks.MockIPagoUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPagoUseCase(ctrl)
	h := NewPagoHandler(uc, quietLogger())

	r := newTestRouter()
	r.POST("/v1/pagos", h.CreatePago)
	r.GET("/v1/pagos", h.ListPagos)
	r.GET("/v1/pagos/:id", h.GetPago)
	r.DELETE("/v1/pagos/:id", h.DeletePago)
	return r, uc
}

func TestPagoHandler_CreatePago(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newPagoRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/pagos", "{")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("monto of wrong type", func(t *testing.T) {
		r, _ := newPagoRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/pagos", `{"trabajoId":"t-1","metodoPago":"efectivo","monto":true}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("non positive monto", func(t *testing.T) {
		r, uc := newPagoRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Pago{}, entities.ErrInvalidMonto)
		w := doRequest(r, http.MethodPost, "/v1/pagos", `{"trabajoId":"t-1","metodoPago":"efectivo","monto":"0"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("cancelled trabajo", func(t *testing.T) {
		r, uc := newPagoRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Pago{}, entities.ErrTrabajoCancelado)
		w := doRequest(r, http.MethodPost, "/v1/pagos", `{"trabajoId":"t-1","metodoPago":"efectivo","monto":"10"}`)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("mercado pago not approved", func(t *testing.T) {
		r, uc := newPagoRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.PagoInput) (entities.Pago, error) {
			if string(in.ProviderPayload) != `{"payment_method_id":"pix"}` {
				t.Fatalf("payload not forwarded: %s", in.ProviderPayload)
			}
			return entities.Pago{}, entities.ErrPagoNotApproved
		})
		w := doRequest(r, http.MethodPost, "/v1/pagos", `{"trabajoId":"t-1","metodoPago":"mercadopago","monto":"10","mp_payload":{"payment_method_id":"pix"}}`)
		expectStatus(t, w, http.StatusConflict)
		if decodeError(t, w).Code != "PAGO_NOT_APPROVED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		r, uc := newPagoRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Pago{}, usecase.ErrPaymentGatewayUnauthorized)
		w := doRequest(r, http.MethodPost, "/v1/pagos", `{"trabajoId":"t-1","metodoPago":"mercadopago","monto":"10"}`)
		expectStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPagoRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.PagoInput) (entities.Pago, error) {
			if !in.Monto.Equal(decimal.RequireFromString("125.50")) || in.ItemID != "i-1" || in.Fecha.Day() != 10 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Pago{ID: "p-1", TrabajoID: in.TrabajoID, ItemID: in.ItemID, ClienteID: "c-1", Monto: in.Monto, Fecha: in.Fecha, MetodoPago: in.MetodoPago}, nil
		})
		w := doRequest(r, http.MethodPost, "/v1/pagos", `{"trabajoId":"t-1","itemId":"i-1","metodoPago":"transferencia","monto":"125.50","fecha":"2024-06-10"}`)
		expectStatus(t, w, http.StatusCreated)
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p-1" || body["monto"] != "125.5" || body["clienteId"] != "c-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPagoHandler_QueriesAndReversal(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, uc := newPagoRouter(t)
		uc.EXPECT().List(gomock.Any(), "t-1").Return([]entities.Pago{{ID: "p-1"}}, nil)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/pagos?trabajoId=t-1", ""), http.StatusOK)
	})

	t.Run("get missing", func(t *testing.T) {
		r, uc := newPagoRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Pago{}, entities.ErrPagoNotFound)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/pagos/p-9", ""), http.StatusNotFound)
	})

	t.Run("delete twice", func(t *testing.T) {
		r, uc := newPagoRouter(t)
		gomock.InOrder(
			uc.EXPECT().Delete(gomock.Any(), "p-1").Return(entities.Pago{ID: "p-1", Monto: decimal.NewFromInt(10)}, nil),
			uc.EXPECT().Delete(gomock.Any(), "p-1").Return(entities.Pago{}, entities.ErrPagoAlreadyReversed),
		)
		expectStatus(t, doRequest(r, http.MethodDelete, "/v1/pagos/p-1", ""), http.StatusOK)
		w := doRequest(r, http.MethodDelete, "/v1/pagos/p-1", "")
		expectStatus(t, w, http.StatusConflict)
		if decodeError(t, w).Code != "PAGO_ALREADY_REVERSED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
